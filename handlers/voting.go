package handlers

import (
	"log/slog"
	"net/http"

	"fundvote/auth"
	"fundvote/cliparse"
	"fundvote/contract"
	"fundvote/middleware"
	"fundvote/models"
)

type VotingHandler struct {
	contract *contract.Contract
	cfg      cliparse.Config
}

func NewVotingHandler(c *contract.Contract, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{contract: c, cfg: cfg}
}

// Vote handles POST /votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Voter == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}
	if req.Amount == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "amount is required")
		return
	}
	if req.Token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	// The voter must prove control of the address they vote as; the
	// contract receives the address only after this check passes.
	authToken := r.Header.Get("X-Auth-Token")
	if err := auth.ValidateAddressToken(req.Voter, authToken, h.cfg.AuthTokenSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid auth token")
		return
	}

	index, err := h.contract.Vote(req.Voter, req.OptionID, req.Amount, req.Token)
	if err != nil {
		middleware.ContractError(w, err)
		return
	}

	slog.Info("vote cast",
		"voter", req.Voter,
		"option_id", req.OptionID,
		"amount", req.Amount.String(),
		"vote_index", index,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		VoteIndex: index,
		Message:   "Vote recorded",
	})
}
