// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-proxy CLI: an HTTP proxy in
// front of the arXiv search API with an in-memory result cache, plus a
// one-shot search command for the terminal.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paper-proxy CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-proxy",
	Short: "Caching search proxy for the arXiv paper catalog",
	Long: `paper-proxy forwards paper searches to the arXiv query API, parses the Atom
feed into JSON, and caches results in memory for an hour.

Use "serve" to run the HTTP API (/api/papers, /api/paper/{id}, /api/test)
and "search" to run a single query from the terminal.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-proxy.yaml or ~/.config/paper-proxy/paper-proxy.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Ignoring .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	home, _ := os.UserHomeDir()
	configPaths(viper.GetViper(), cfgFile, home)

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix("PAPER_PROXY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configPaths points v at cfgFile, or at paper-proxy.yaml in the working
// directory and then in ~/.config/paper-proxy.
func configPaths(v *viper.Viper, cfgFile, home string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return
	}
	v.SetConfigName("paper-proxy")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home != "" {
		v.AddConfigPath(filepath.Join(home, ".config", "paper-proxy"))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
