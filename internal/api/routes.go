// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/pdiddy/paper-proxy/internal/api/middleware"
	"github.com/pdiddy/paper-proxy/pkg/types"
)

// OpenAPIPath serves the generated API document.
const OpenAPIPath = "/api/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api").
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/papers").
			To(handler.Search).
			Doc("Search the paper catalog").
			Metadata(restfulspec.KeyOpenAPITags, []string{"papers"}).
			Param(ws.QueryParameter("search_query", "Catalog search expression, e.g. all:electron").DataType("string")).
			Param(ws.QueryParameter("id_list", "Paper id; repeatable or comma-separated").DataType("string").AllowMultiple(true)).
			Param(ws.QueryParameter("start", "Zero-based offset (default 0)").DataType("integer").DefaultValue("0")).
			Param(ws.QueryParameter("max_results", "Page size (default 10)").DataType("integer").DefaultValue("10")).
			Param(ws.QueryParameter("sortBy", "relevance, lastUpdatedDate or submittedDate").DataType("string").DefaultValue(string(types.SortRelevance))).
			Param(ws.QueryParameter("sortOrder", "ascending or descending").DataType("string").DefaultValue(string(types.SortDescending))).
			Writes(SearchResponse{}).
			Returns(200, "OK", SearchResponse{}).
			Returns(400, "Invalid Query", middleware.ErrorResponse{}).
			Returns(500, "Catalog Error", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}).
			Returns(504, "Gateway Timeout", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/paper/{paper_id}").
			To(handler.GetPaper).
			Doc("Look up one paper by catalog id").
			Metadata(restfulspec.KeyOpenAPITags, []string{"papers"}).
			Param(ws.PathParameter("paper_id", "Catalog id, e.g. 2301.07041").DataType("string")).
			Writes(types.Paper{}).
			Returns(200, "OK", types.Paper{}).
			Returns(404, "Paper Not Found", middleware.ErrorResponse{}).
			Returns(500, "Catalog Error", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}).
			Returns(504, "Gateway Timeout", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/test").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(MessageResponse{}).
			Returns(200, "OK", MessageResponse{}))

	container.Add(ws)
}
