// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-proxy/internal/logging"
	"github.com/pdiddy/paper-proxy/internal/search"
	"github.com/pdiddy/paper-proxy/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one catalog search and print the results",
	Long: `Search sends a single query to the catalog and prints the results as a
table, JSON or YAML. Use --save to keep the query and results in a YAML
file, and --load to print a saved file again without contacting the catalog.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "catalog search expression (e.g. all:electron, ti:attention)")
	searchCmd.Flags().StringSlice("id", nil, "paper id to fetch (repeatable or comma-separated)")
	searchCmd.Flags().Int("start", types.DefaultStart, "zero-based result offset")
	searchCmd.Flags().Int("max-results", types.DefaultMaxResults, "page size")
	searchCmd.Flags().String("sort-by", string(types.SortRelevance), "relevance, lastUpdatedDate or submittedDate")
	searchCmd.Flags().String("sort-order", string(types.SortDescending), "ascending or descending")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("yaml", false, "output results as YAML")
	searchCmd.Flags().String("save", "", "write the query and results to a YAML file")
	searchCmd.Flags().String("load", "", "print results from a saved YAML file")
	searchCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	searchCmd.MarkFlagsMutuallyExclusive("load", "query")
	searchCmd.MarkFlagsMutuallyExclusive("load", "id")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	var (
		q   types.QueryParams
		res types.SearchResult
	)

	if path, _ := cmd.Flags().GetString("load"); path != "" {
		qf, err := search.ReadQueryFile(path)
		if err != nil {
			return err
		}
		if q, err = qf.Query.ToQuery(); err != nil {
			return fmt.Errorf("saved query: %w", err)
		}
		res = qf.Result()
	} else {
		var err error
		if q, err = queryFromFlags(cmd); err != nil {
			return err
		}
		if res, err = runQuery(cmd, q); err != nil {
			return err
		}
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := search.WriteQueryFile(path, q, res); err != nil {
			return err
		}
	}

	return printResult(cmd, res, cmd.OutOrStdout())
}

func runQuery(cmd *cobra.Command, q types.QueryParams) (types.SearchResult, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return types.SearchResult{}, err
	}
	logger := logging.New(cfg.Log)
	defer logger.Close()

	svc := search.NewService(cfg, &logger.Logger)
	defer svc.Close()

	return svc.Search(cmd.Context(), q)
}

func queryFromFlags(cmd *cobra.Command) (types.QueryParams, error) {
	query, _ := cmd.Flags().GetString("query")
	ids, _ := cmd.Flags().GetStringSlice("id")
	start, _ := cmd.Flags().GetInt("start")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	sortBy, _ := cmd.Flags().GetString("sort-by")
	sortOrder, _ := cmd.Flags().GetString("sort-order")

	if query == "" && len(ids) == 0 {
		return types.QueryParams{}, fmt.Errorf("provide --query, --id or --load")
	}
	return types.NewQueryParams(query, ids, start, maxResults, types.SortBy(sortBy), types.SortOrder(sortOrder))
}

func printResult(cmd *cobra.Command, res types.SearchResult, w io.Writer) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return search.FormatJSON(res, w)
	}
	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		return search.FormatYAML(res, w)
	}
	search.FormatTable(res, w)
	return nil
}
