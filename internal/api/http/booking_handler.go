package http

import (
	"encoding/json"
	"net/http"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type bookingRequest struct {
	DeskID string `json:"deskId"`
	Date   string `json:"date"`
}

type adminBookingRequest struct {
	UserID string `json:"userId"`
	DeskID string `json:"deskId"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	claims := ClaimsFromContext(r.Context())
	booking, err := h.bookingSvc.Create(r.Context(), claims.UserID, req.DeskID, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) MyHistory(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	bookings, err := h.bookingSvc.MyHistory(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	claims := ClaimsFromContext(r.Context())
	booking, err := h.bookingSvc.Update(r.Context(), mux.Vars(r)["id"], claims.UserID, req.DeskID, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req reasonRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	claims := ClaimsFromContext(r.Context())
	booking, err := h.bookingSvc.Cancel(r.Context(), mux.Vars(r)["id"], claims.UserID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	var req adminBookingRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	booking, err := h.bookingSvc.AdminCreate(r.Context(), req.UserID, req.DeskID, req.Date, domain.BookingStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) AdminAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.AdminAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookingSvc.Approve(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req reasonRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	booking, err := h.bookingSvc.Reject(r.Context(), mux.Vars(r)["id"], req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) AdminCancel(w http.ResponseWriter, r *http.Request) {
	var req reasonRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	booking, err := h.bookingSvc.AdminCancel(r.Context(), mux.Vars(r)["id"], req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) AdminUserHistory(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.AdminUserHistory(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
