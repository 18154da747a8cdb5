// Package api provides the HTTP and WebSocket front end of questpath.
//
// Endpoints:
//
//   - GET  /api/health   liveness probe
//   - GET  /api/species  built-in mover cost tables
//   - POST /api/inspect  grid summary; body {"grid": "1 1\n0 1\n"}
//   - POST /api/search   one route search; body service.SearchRequest
//   - POST /api/plan     multi-agent mission; body service.PlanRequest
//   - GET  /ws/plan      WebSocket: send one service.PlanRequest, receive one
//     "generation" message per genetic generation, then a "plan" (or
//     "error") message; the server then closes the connection
//
// Every response carries an X-Request-ID header (a UUID unless the client
// sent one); error bodies repeat it:
//
//	{
//	  "error": "service: invalid request: grid: malformed grid data: line 1: \"x\"",
//	  "request_id": "0b7c…"
//	}
//
// Status codes: 400 for invalid requests, 504 when the per-request timeout
// expires, 500 otherwise.
//
// Usage:
//
//	srv := api.NewServer(service.New(), api.WithTimeout(10*time.Second))
//	log.Fatal(http.ListenAndServe(":8080", srv))
package api
