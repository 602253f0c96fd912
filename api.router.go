package main

import (
	"github.com/julienschmidt/httprouter"
)

// MiddlewareMap contains middlewares chains to
// use for public-facing and ops requests.
type MiddlewareMap struct {
	public MiddlewareFunc
	ops    MiddlewareFunc
}

// SetupRoutes injects catalog and ops related endpoints if required.
func (api *APIHandler) SetupRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.RedirectTrailingSlash = true
	router.NotFound = api.NotFound()
	api.SetupCatalogRoutes(router, m)
	if api.config.OpsEndpointsEnable {
		api.SetupOpsRoutes(router, m)
	}
	return router
}

// SetupCatalogRoutes injects the public api endpoints. The whole
// books/authors contract lives behind the single graphql endpoint.
func (api *APIHandler) SetupCatalogRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.GET("/", m.public(api.Index))
	router.GET("/status", m.public(api.Status))
	router.POST(api.config.GraphQL.Endpoint, m.public(api.ExecGraphQL))
	if api.config.GraphQL.GraphiQLEnable {
		router.GET("/graphiql", m.public(api.GraphiQL))
	}
	return router
}
