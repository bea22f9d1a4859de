// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/one-pick/middleware"
	"github.com/danielhkuo/one-pick/models"
	"github.com/danielhkuo/one-pick/period"
)

type PeriodHandler struct {
	periods *period.Registry
}

func NewPeriodHandler(periods *period.Registry) *PeriodHandler {
	return &PeriodHandler{periods: periods}
}

// List handles GET /api/one-pick/periods
func (h *PeriodHandler) List(w http.ResponseWriter, r *http.Request) {
	periods, err := h.periods.List(r.Context())
	if err != nil {
		slog.Error("failed to list periods", "error", err)
		middleware.Error(w, http.StatusInternalServerError, models.CodeInternalError, "internal server error")
		return
	}

	middleware.Success(w, http.StatusOK, models.PeriodListResponse{Periods: periods})
}
