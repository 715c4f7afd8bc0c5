package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{svc: s}
}

// List godoc
//
//	@Summary	List contact submissions
//	@Tags		contact
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.ContactSubmission}
//	@Router		/contact-submissions [get]
func (h *ContactHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// Submit godoc
//
//	@Summary		Submit contact form
//	@Description	Public endpoint behind no auth; newest submission lands at the top of the inbox.
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	object	true	"Submission payload"
//	@Success		201		{object}	serializer.Response{data=model.ContactSubmission}
//	@Router			/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) { createJSON(c, h.svc.Submit) }

func (h *ContactHandler) Update(c *gin.Context) { updateJSON(c, h.svc.Update) }
func (h *ContactHandler) Delete(c *gin.Context) { deleteByID(c, h.svc.Delete) }
