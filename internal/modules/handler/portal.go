package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
)

type PortalHandler struct {
	svc service.PortalService
}

func NewPortalHandler(s service.PortalService) *PortalHandler {
	return &PortalHandler{svc: s}
}

// Projects godoc
//
//	@Summary		Client portal projects
//	@Description	The delivery view scoped to what one client user is allowed to see.
//	@Tags			portal
//	@Produce		json
//	@Param			user_id	path	string	true	"Client user ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.PortalView}
//	@Router			/portal/users/{user_id}/projects [get]
func (h *PortalHandler) Projects(c *gin.Context) {
	view, err := h.svc.ProjectsFor(c.Param("user_id"))
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: view})
}
