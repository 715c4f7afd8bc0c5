package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
)

type ClientProjectHandler struct {
	svc service.ClientProjectService
}

func NewClientProjectHandler(s service.ClientProjectService) *ClientProjectHandler {
	return &ClientProjectHandler{svc: s}
}

// List godoc
//
//	@Summary	List client projects
//	@Tags		client-project
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.ClientProject}
//	@Router		/client-projects [get]
func (h *ClientProjectHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// Get godoc
//
//	@Summary	Get one client project
//	@Tags		client-project
//	@Produce	json
//	@Param		id	path		string	true	"Client project ID"
//	@Success	200	{object}	serializer.Response{data=model.ClientProject}
//	@Router		/client-projects/{id} [get]
func (h *ClientProjectHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Param("id"))
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// Create godoc
//
//	@Summary		Create client project
//	@Description	Create a delivery engagement. Unknown fields are rejected only by the record shape; omitted fields fall back to defaults.
//	@Tags			client-project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	object	true	"Client project payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/client-projects [post]
func (h *ClientProjectHandler) Create(c *gin.Context) {
	payload := map[string]any{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), payload)
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// Update godoc
//
//	@Summary		Update client project
//	@Description	Shallow-merge patch: fields present in the body replace the stored fields, everything else survives. Sending tasks re-derives progress.
//	@Tags			client-project
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Client project ID"
//	@Param			payload	body	object	true	"Patch payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/client-projects/{id} [put]
func (h *ClientProjectHandler) Update(c *gin.Context) {
	patch := map[string]any{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// Delete godoc
//
//	@Summary		Delete client project
//	@Description	Deleting an unknown id succeeds; delete is idempotent.
//	@Tags			client-project
//	@Produce		json
//	@Param			id	path	string	true	"Client project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{}
//	@Router			/client-projects/{id} [delete]
func (h *ClientProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// AddTask godoc
//
//	@Summary	Add task
//	@Tags		client-project
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string				true	"Client project ID"
//	@Param		payload	body	service.TaskInput	true	"Task payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.ClientProject}
//	@Router		/client-projects/{id}/tasks [post]
func (h *ClientProjectHandler) AddTask(c *gin.Context) {
	req := service.TaskInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.AddTask(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// ReplaceTasks godoc
//
//	@Summary		Replace task board
//	@Description	Swap the whole task list in one write.
//	@Tags			client-project
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"Client project ID"
//	@Param			payload	body	[]service.TaskInput	true	"Full task list"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/client-projects/{id}/tasks [put]
func (h *ClientProjectHandler) ReplaceTasks(c *gin.Context) {
	req := []service.TaskInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.ReplaceTasks(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// UpdateTask godoc
//
//	@Summary		Update task
//	@Description	Patch a single task. Only fields present in the body change; any status may move to any other.
//	@Tags			client-project
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"Client project ID"
//	@Param			task_id	path	string				true	"Task ID"
//	@Param			payload	body	service.TaskPatch	true	"Task patch"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/client-projects/{id}/tasks/{task_id} [put]
func (h *ClientProjectHandler) UpdateTask(c *gin.Context) {
	req := service.TaskPatch{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.UpdateTask(c.Request.Context(), c.Param("id"), c.Param("task_id"), req)
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// RemoveTask godoc
//
//	@Summary	Remove task
//	@Tags		client-project
//	@Produce	json
//	@Param		id		path	string	true	"Client project ID"
//	@Param		task_id	path	string	true	"Task ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.ClientProject}
//	@Router		/client-projects/{id}/tasks/{task_id} [delete]
func (h *ClientProjectHandler) RemoveTask(c *gin.Context) {
	p, err := h.svc.RemoveTask(c.Request.Context(), c.Param("id"), c.Param("task_id"))
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// Delivery godoc
//
//	@Summary		Delivery report
//	@Description	Deadline-aware status, health, progress and task counts for one project.
//	@Tags			client-project
//	@Produce		json
//	@Param			id	path	string	true	"Client project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.DeliveryReport}
//	@Router			/client-projects/{id}/delivery [get]
func (h *ClientProjectHandler) Delivery(c *gin.Context) {
	report, err := h.svc.Delivery(c.Param("id"))
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: report})
}
