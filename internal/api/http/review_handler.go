package http

import (
	"encoding/json"
	"net/http"

	"prospace-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

type createReviewRequest struct {
	Rating int32  `json:"rating"`
	Text   string `json:"text"`
}

type updateReviewRequest struct {
	Rating *int32  `json:"rating"`
	Text   *string `json:"text"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	claims := ClaimsFromContext(r.Context())
	review, err := h.reviewSvc.Create(r.Context(), claims.UserID, req.Rating, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateReviewRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	claims := ClaimsFromContext(r.Context())
	review, err := h.reviewSvc.Update(r.Context(), mux.Vars(r)["id"], claims.UserID, req.Rating, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if err := h.reviewSvc.Delete(r.Context(), mux.Vars(r)["id"], claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "review deleted")
}

func (h *ReviewHandler) Mine(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	review, err := h.reviewSvc.Mine(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	reviews, err := h.reviewSvc.ListAll(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	review, err := h.reviewSvc.ToggleLike(r.Context(), mux.Vars(r)["id"], claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}
