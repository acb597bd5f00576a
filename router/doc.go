/*
Package router defines the HTTP route table.

NewRouter wires every endpoint to its handler using Go 1.22+ method
routing:

	mux := router.NewRouter(engine, cfg)
	http.ListenAndServe(addr, middleware.CORS(mux))

Routes:

	GET  /health               liveness probe
	GET  /                     API banner
	POST /contract/initialize  one-time contract setup
	POST /admin/toggle-voting  pause or resume voting (admin)
	POST /admin/options        add a voting option (admin)
	POST /votes                cast a vote (voter)
	GET  /options              all options with aggregates
	GET  /options/{id}         one option
	GET  /votes/{index}        audit record
	GET  /voters/{address}     voter status
	GET  /status               contract status

All non-health routes are wrapped with request logging.
*/
package router
