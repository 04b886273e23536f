package http

import (
	"encoding/json"
	"net/http"

	"prospace-backend/internal/service"

	"github.com/gorilla/mux"
)

type DeskHandler struct {
	deskSvc service.DeskService
}

func NewDeskHandler(deskSvc service.DeskService) *DeskHandler {
	return &DeskHandler{deskSvc: deskSvc}
}

type createDeskRequest struct {
	DeskNumber string `json:"deskNumber"`
}

type updateDeskRequest struct {
	DeskNumber *string `json:"deskNumber"`
	IsActive   *bool   `json:"isActive"`
}

func (h *DeskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeskRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	desk, err := h.deskSvc.Create(r.Context(), req.DeskNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, desk)
}

func (h *DeskHandler) List(w http.ResponseWriter, r *http.Request) {
	desks, err := h.deskSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, desks)
}

func (h *DeskHandler) Get(w http.ResponseWriter, r *http.Request) {
	desk, err := h.deskSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, desk)
}

func (h *DeskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateDeskRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	desk, err := h.deskSvc.Update(r.Context(), mux.Vars(r)["id"], req.DeskNumber, req.IsActive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, desk)
}

func (h *DeskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.deskSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "desk deleted successfully")
}
