package handlers

import (
	"net/http"

	"github.com/vaughan-dsouza/bistro/internal/service"
	"github.com/vaughan-dsouza/bistro/internal/utils"
)

type MenuHandler struct {
	base
	svc Catalog
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateMenuItemInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		return
	}

	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.JSON(w, http.StatusCreated, item)
}
