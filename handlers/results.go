package handlers

import (
	"net/http"
	"strconv"

	"fundvote/cliparse"
	"fundvote/contract"
	"fundvote/middleware"
	"fundvote/models"
)

type ResultsHandler struct {
	contract *contract.Contract
	cfg      cliparse.Config
}

func NewResultsHandler(c *contract.Contract, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{contract: c, cfg: cfg}
}

func parseUint32(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// GetAllResults handles GET /options
func (h *ResultsHandler) GetAllResults(w http.ResponseWriter, r *http.Request) {
	options, err := h.contract.GetAllResults()
	if err != nil {
		middleware.ContractError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AllResultsResponse{
		Options: options,
	})
}

// GetOptionResults handles GET /options/{id}
func (h *ResultsHandler) GetOptionResults(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUint32(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid option id")
		return
	}

	option, err := h.contract.GetOptionResults(id)
	if err != nil {
		middleware.ContractError(w, err)
		return
	}
	if option == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, option)
}

// GetVoteRecord handles GET /votes/{index}
func (h *ResultsHandler) GetVoteRecord(w http.ResponseWriter, r *http.Request) {
	index, ok := parseUint32(r.PathValue("index"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid vote index")
		return
	}

	record, err := h.contract.GetVoteRecord(index)
	if err != nil {
		middleware.ContractError(w, err)
		return
	}
	if record == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Vote record not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, record)
}

// GetVoterStatus handles GET /voters/{address}
func (h *ResultsHandler) GetVoterStatus(w http.ResponseWriter, r *http.Request) {
	address := models.Address(r.PathValue("address"))
	if address == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}

	optionID, err := h.contract.GetUserVote(address)
	if err != nil {
		middleware.ContractError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterStatusResponse{
		Address:  address,
		HasVoted: optionID != nil,
		OptionID: optionID,
	})
}

// GetStatus handles GET /status
func (h *ResultsHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	initialized, err := h.contract.IsInitialized()
	if err != nil {
		middleware.ContractError(w, err)
		return
	}
	active, err := h.contract.IsActive()
	if err != nil {
		middleware.ContractError(w, err)
		return
	}
	total, err := h.contract.GetTotalVotes()
	if err != nil {
		middleware.ContractError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ContractStatusResponse{
		Initialized: initialized,
		Active:      active,
		TotalVotes:  total,
	})
}
