package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/middleware"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

type DashboardHandler struct {
	dashboardUsecase usecasecontract.IDashboardUseCase
}

func NewDashboardHandler(dashboardUsecase usecasecontract.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetOverview returns the role-branching dashboard view.
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	actor := middleware.GetActor(c)
	overview, err := h.dashboardUsecase.GetOverview(c.Request.Context(), actor)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Dashboard fetched", overview)
}

// GetInstituteStats returns the per-institute aggregate view. Admins may
// name any institute via ?institute=.
func (h *DashboardHandler) GetInstituteStats(c *gin.Context) {
	actor := middleware.GetActor(c)
	stats, err := h.dashboardUsecase.GetInstituteStats(c.Request.Context(), actor, c.Query("institute"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Institute stats fetched", stats)
}

// GetPlatformStats returns the admin platform totals.
func (h *DashboardHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.dashboardUsecase.GetPlatformStats(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Platform stats fetched", stats)
}
