package http

import (
	"net/http"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository/rest"
	"mountainride-backoffice/internal/service"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
	view         *Renderer
}

func NewDashboardHandler(dashboardSvc service.DashboardService, view *Renderer) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, view: view}
}

type dashboardView struct {
	Stats *domain.DashboardStats
	Error string
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	var data dashboardView
	stats, err := h.dashboardSvc.GetStats(r.Context())
	if err != nil {
		data.Error = rest.UserMessage(err)
	} else {
		data.Stats = stats
	}
	h.view.Render(w, r, http.StatusOK, "dashboard", "Dashboard", "dashboard", data)
}
