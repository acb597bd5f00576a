/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /votes", middleware.WithLogging(handler.Vote))

Logs method, path, remote address, and duration via slog.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "amount is required")
	middleware.ParseJSONBody(r, &req)

# Contract Error Mapping

ContractError translates the contract's sentinel errors to HTTP statuses:

	401 Unauthorized      ErrUnauthorized
	400 Bad Request       ErrInvalidAmount, ErrInvalidOption
	409 Conflict          ErrAlreadyInitialized, ErrNotInitialized,
	                      ErrVotingInactive, ErrAlreadyVoted, ErrOptionExists
	402 Payment Required  ledger.ErrInsufficientFunds, ledger.ErrInvalidTransfer
	500 Internal Error    anything else (storage faults)

# CORS

CORS wraps the whole mux to allow cross-origin requests, including the
X-Auth-Token header, and answers preflight OPTIONS requests.
*/
package middleware
