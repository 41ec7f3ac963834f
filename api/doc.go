// Package api provides the HTTP layer of the sports news aggregator.
// It uses Huma on a chi router for OpenAPI documentation and
// query parameter validation.
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration, CORS and middleware setup
// - handlers/: /sports, /sports/html, /health and /sources
// - dto/: Response shapes and mappers from domain results
// - middleware/: Request IDs, request logging, outgoing feed logging and feature flags
//
// The OpenAPI document is served at /openapi.json and the interactive
// docs at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger: logger,
//	    Flags:  featureflags.NewEnvManager(""),
//	})
//
//	handlers.NewSportsHandler(service, catalog, defaults, 24*time.Hour, logger).
//	    RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format produced by Huma:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "Unknown sport 'curling'. Valid: baseball, basketball, ..."
//	}
//
// Out-of-range query parameters answer 422.
package api
