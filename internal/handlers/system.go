package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/utils"
)

var appTables = []string{"users", "menu_items", "reservations"}

type SystemHandler struct {
	base
	db Database
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(r.Context(), "health check failed", "error", err)
		utils.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  apperr.ErrServiceUnavailable.Error(),
		})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Tables reports which application tables exist and their columns. Only mounted
// in development.
func (h *SystemHandler) Tables(w http.ResponseWriter, r *http.Request) {
	info, err := h.db.DescribeTables(r.Context(), appTables...)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	tables := make(map[string]bool, len(info))
	structure := make(map[string]any, len(info))
	for name, t := range info {
		tables[name] = t.Exists
		structure[name] = t.Columns
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"tables":    tables,
		"structure": structure,
	})
}
