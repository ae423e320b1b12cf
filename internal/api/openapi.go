// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
)

// NewOpenAPIService documents every web service already registered on
// container. Register the API routes first.
func NewOpenAPIService(container *restful.Container, version string) *restful.WebService {
	config := restfulspec.Config{
		WebServices: container.RegisteredWebServices(),
		APIPath:     OpenAPIPath,
		PostBuildSwaggerObjectHandler: func(swo *spec.Swagger) {
			enrichSwaggerObject(swo, version)
		},
	}
	return restfulspec.NewOpenAPIService(config)
}

func enrichSwaggerObject(swo *spec.Swagger, version string) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Paper Proxy API",
			Description: "Cached search proxy for the arXiv paper catalog",
			Version:     version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "papers", Description: "Catalog search and lookup"}},
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
	}
}
