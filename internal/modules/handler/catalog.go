package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
)

// CatalogHandler serves the public marketing content. Reads are open;
// mutations sit behind admin auth in the router.
type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: s}
}

// ListDivisions godoc
//
//	@Summary	List divisions
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Division}
//	@Router		/divisions [get]
func (h *CatalogHandler) ListDivisions(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Divisions()})
}

func (h *CatalogHandler) CreateDivision(c *gin.Context) { createJSON(c, h.svc.CreateDivision) }
func (h *CatalogHandler) UpdateDivision(c *gin.Context) { updateJSON(c, h.svc.UpdateDivision) }
func (h *CatalogHandler) DeleteDivision(c *gin.Context) { deleteByID(c, h.svc.DeleteDivision) }

// ListProjects godoc
//
//	@Summary	List case-study projects
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/projects [get]
func (h *CatalogHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Projects()})
}

func (h *CatalogHandler) CreateProject(c *gin.Context) { createJSON(c, h.svc.CreateProject) }
func (h *CatalogHandler) UpdateProject(c *gin.Context) { updateJSON(c, h.svc.UpdateProject) }
func (h *CatalogHandler) DeleteProject(c *gin.Context) { deleteByID(c, h.svc.DeleteProject) }

// ListTeam godoc
//
//	@Summary	List team members
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.TeamMember}
//	@Router		/team [get]
func (h *CatalogHandler) ListTeam(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Team()})
}

func (h *CatalogHandler) CreateTeamMember(c *gin.Context) { createJSON(c, h.svc.CreateTeamMember) }
func (h *CatalogHandler) UpdateTeamMember(c *gin.Context) { updateJSON(c, h.svc.UpdateTeamMember) }
func (h *CatalogHandler) DeleteTeamMember(c *gin.Context) { deleteByID(c, h.svc.DeleteTeamMember) }

// ListInitiatives godoc
//
//	@Summary	List CSR initiatives
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Initiative}
//	@Router		/initiatives [get]
func (h *CatalogHandler) ListInitiatives(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Initiatives()})
}

func (h *CatalogHandler) CreateInitiative(c *gin.Context) { createJSON(c, h.svc.CreateInitiative) }
func (h *CatalogHandler) UpdateInitiative(c *gin.Context) { updateJSON(c, h.svc.UpdateInitiative) }
func (h *CatalogHandler) DeleteInitiative(c *gin.Context) { deleteByID(c, h.svc.DeleteInitiative) }
