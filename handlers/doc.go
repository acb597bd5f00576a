/*
Package handlers contains HTTP request handlers for the FundVote API.

# Handler Types

Each handler is a struct with contract and config dependencies:

  - AdminHandler: initialization and admin-gated configuration
  - VotingHandler: vote casting
  - ResultsHandler: read-only projections

Handlers are created via constructor functions that accept the contract
engine and Config:

	adminHandler := handlers.NewAdminHandler(engine, cfg)

# Contract Lifecycle

	POST /contract/initialize → Initialize (once; first caller becomes admin)
	POST /admin/toggle-voting → ToggleVoting (pause/resume)
	POST /admin/options       → AddOption

Admin operations require an X-Auth-Token proving control of the claimed
admin address; the contract additionally matches that address against the
stored admin.

# Voting

	POST /votes → Vote

The voter presents an X-Auth-Token for their address. The contract enforces
the vote preconditions (active, not already voted, positive amount, known
option) and moves the funds; any failure returns the matching status with
no state change.

# Queries

	GET /options           → all options with live aggregates
	GET /options/{id}      → one option, 404 if unknown
	GET /votes/{index}     → audit record, 404 if unknown
	GET /voters/{address}  → has_voted and chosen option
	GET /status            → initialized, active, total_votes

Queries need no auth and never mutate state.
*/
package handlers
