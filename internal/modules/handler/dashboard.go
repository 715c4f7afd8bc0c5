package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: s}
}

// Portfolio godoc
//
//	@Summary		Portfolio dashboard
//	@Description	Aggregate delivery state across every client project.
//	@Tags			dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.PortfolioStats}
//	@Router			/dashboard/portfolio [get]
func (h *DashboardHandler) Portfolio(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Portfolio()})
}
