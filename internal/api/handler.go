// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api exposes the search service over HTTP with go-restful.
package api

//go:generate mockgen -destination=mock_searcher_test.go -package=api . Searcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-proxy/internal/api/middleware"
	"github.com/pdiddy/paper-proxy/internal/search"
	"github.com/pdiddy/paper-proxy/pkg/types"
)

// Searcher is the subset of search.Service the handlers need.
type Searcher interface {
	Search(ctx context.Context, q types.QueryParams) (types.SearchResult, error)
	GetPaper(ctx context.Context, id string) (types.Paper, error)
}

type Handler struct {
	searcher Searcher
	logger   *zerolog.Logger
}

func NewHandler(searcher Searcher, logger *zerolog.Logger) *Handler {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Handler{
		searcher: searcher,
		logger:   logger,
	}
}

// GET /api/papers
// Query: search_query, id_list (repeatable, comma-separated), start,
// max_results, sortBy, sortOrder
// Returns: SearchResponse
func (h *Handler) Search(req *restful.Request, resp *restful.Response) {
	q, err := parseQuery(req)
	if err != nil {
		h.writeError(req, resp, err)
		return
	}

	h.log(req).Info().Str("query", q.String()).Msg("Searching papers")

	res, err := h.searcher.Search(req.Request.Context(), q)
	if err != nil {
		h.writeError(req, resp, err)
		return
	}

	h.log(req).Info().
		Int("papers", len(res.Papers)).
		Int("total_results", res.Metadata.TotalResults).
		Msg("Search complete")

	resp.WriteHeaderAndEntity(http.StatusOK, newSearchResponse(res))
}

// GET /api/paper/{paper_id}
// Returns: types.Paper
func (h *Handler) GetPaper(req *restful.Request, resp *restful.Response) {
	id := req.PathParameter("paper_id")

	paper, err := h.searcher.GetPaper(req.Request.Context(), id)
	if errors.Is(err, search.ErrPaperNotFound) {
		h.log(req).Info().Str("paper_id", id).Msg("Paper not found")
		middleware.WriteError(resp, http.StatusNotFound, middleware.ErrorResponse{Error: "Paper not found"})
		return
	}
	if err != nil {
		h.writeError(req, resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, paper)
}

// GET /api/test
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, MessageResponse{Message: "Server is running"})
}

func (h *Handler) writeError(req *restful.Request, resp *restful.Response, err error) {
	status, body := errorStatus(err)
	event := h.log(req).Warn()
	if status >= http.StatusInternalServerError {
		event = h.log(req).Error()
	}
	event.Err(err).Int("status", status).Str("kind", body.Kind).Msg("Request failed")
	middleware.WriteError(resp, status, body)
}

// log prefers the request-scoped logger set by middleware.Logger.
func (h *Handler) log(req *restful.Request) *zerolog.Logger {
	if l := zerolog.Ctx(req.Request.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return h.logger
}

// parseQuery builds QueryParams from the request's query string. Absent
// parameters take their defaults; unparseable ones fail with
// types.ErrInvalidQuery.
func parseQuery(req *restful.Request) (types.QueryParams, error) {
	start, err := intParam(req, "start", types.DefaultStart)
	if err != nil {
		return types.QueryParams{}, err
	}
	maxResults, err := intParam(req, "max_results", types.DefaultMaxResults)
	if err != nil {
		return types.QueryParams{}, err
	}

	sortBy := types.SortBy(req.QueryParameter("sortBy"))
	if sortBy == "" {
		sortBy = types.SortRelevance
	}
	sortOrder := types.SortOrder(req.QueryParameter("sortOrder"))
	if sortOrder == "" {
		sortOrder = types.SortDescending
	}

	return types.NewQueryParams(
		req.QueryParameter("search_query"),
		idList(req.QueryParameters("id_list")),
		start,
		maxResults,
		sortBy,
		sortOrder,
	)
}

func intParam(req *restful.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(req.QueryParameter(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", types.ErrInvalidQuery, name, raw)
	}
	return n, nil
}

// idList flattens repeated and comma-separated id_list values.
func idList(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
