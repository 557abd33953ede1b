package handlers

import (
	"net/http"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/service"
	"github.com/vaughan-dsouza/bistro/internal/utils"
)

type ReservationHandler struct {
	base
	svc Reservations
}

// ---------------------- CREATE ----------------------

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserID(r.Context())
	if !ok {
		h.fail(w, r, apperr.ErrAuthRequired)
		return
	}

	var in service.CreateReservationInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		return
	}

	res, err := h.svc.Create(r.Context(), in, &userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.JSON(w, http.StatusCreated, res)
}

// ---------------------- LIST (own) ----------------------

func (h *ReservationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserID(r.Context())
	if !ok {
		h.fail(w, r, apperr.ErrAuthRequired)
		return
	}

	list, err := h.svc.ListForUser(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}
