// Package api implements the HTTP REST API for the Compass dashboard.
//
// New(data, cfg) returns a handler that serves:
//
//	GET /api/v1/health           dataset size and cache state; 503 if unreadable
//	GET /api/v1/indicators       comparable indicators with descriptions
//	GET /api/v1/regions          sorted unique regions
//	GET /api/v1/countries        countries, optionally filtered by ?region=
//	GET /api/v1/countries/:code  one country by ISO code or name; 404 if unknown
//	GET /api/v1/compare          radar and bar series for ?country= selections
//	GET /api/v1/run              last collector run plus data-quality hints
//	GET /metrics                 request and dataset counters (Prometheus text)
//
// JSON endpoints respond with Content-Type: application/json, return 405 for
// non-GET methods and never modify the cached table.
package api
