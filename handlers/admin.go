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

type AdminHandler struct {
	contract *contract.Contract
	cfg      cliparse.Config
}

func NewAdminHandler(c *contract.Contract, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{contract: c, cfg: cfg}
}

// Initialize handles POST /contract/initialize
// One-time setup; no auth token required — the contract accepts its first
// caller as admin, exactly once.
func (h *AdminHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var req models.InitializeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Admin == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "admin is required")
		return
	}
	for _, opt := range req.Options {
		if opt.Name == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "option name is required")
			return
		}
		if opt.Recipient == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "option recipient is required")
			return
		}
	}

	if err := h.contract.Initialize(req.Admin, req.Options); err != nil {
		middleware.ContractError(w, err)
		return
	}

	slog.Info("contract initialized", "admin", req.Admin, "options", len(req.Options))

	middleware.JSONResponse(w, http.StatusCreated, models.InitializeResponse{
		Admin:       req.Admin,
		OptionCount: len(req.Options),
	})
}

// ToggleVoting handles POST /admin/toggle-voting
func (h *AdminHandler) ToggleVoting(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleVotingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Admin == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "admin is required")
		return
	}

	// Prove the caller controls the claimed admin address. The contract
	// separately checks the address against the stored admin.
	token := r.Header.Get("X-Auth-Token")
	if err := auth.ValidateAddressToken(req.Admin, token, h.cfg.AuthTokenSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid auth token")
		return
	}

	active, err := h.contract.ToggleVoting(req.Admin)
	if err != nil {
		middleware.ContractError(w, err)
		return
	}

	slog.Info("voting toggled", "admin", req.Admin, "active", active)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleVotingResponse{
		Active: active,
	})
}

// AddOption handles POST /admin/options
func (h *AdminHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Admin == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "admin is required")
		return
	}
	if req.Option.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option name is required")
		return
	}
	if req.Option.Recipient == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option recipient is required")
		return
	}

	token := r.Header.Get("X-Auth-Token")
	if err := auth.ValidateAddressToken(req.Admin, token, h.cfg.AuthTokenSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid auth token")
		return
	}

	if err := h.contract.AddOption(req.Admin, req.Option); err != nil {
		middleware.ContractError(w, err)
		return
	}

	slog.Info("option added", "admin", req.Admin, "option_id", req.Option.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddOptionResponse{
		OptionID: req.Option.ID,
	})
}
