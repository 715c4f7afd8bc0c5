package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
)

type BillingHandler struct {
	svc service.BillingService
}

func NewBillingHandler(s service.BillingService) *BillingHandler {
	return &BillingHandler{svc: s}
}

// ListInvoices godoc
//
//	@Summary	List invoices
//	@Tags		billing
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.ClientInvoice}
//	@Router		/client-invoices [get]
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Invoices()})
}

// GetInvoice godoc
//
//	@Summary	Get invoice
//	@Tags		billing
//	@Produce	json
//	@Param		id	path	string	true	"Invoice ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.ClientInvoice}
//	@Router		/client-invoices/{id} [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	inv, err := h.svc.GetInvoice(c.Param("id"))
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: inv})
}

func (h *BillingHandler) CreateInvoice(c *gin.Context) { createJSON(c, h.svc.CreateInvoice) }
func (h *BillingHandler) UpdateInvoice(c *gin.Context) { updateJSON(c, h.svc.UpdateInvoice) }
func (h *BillingHandler) DeleteInvoice(c *gin.Context) { deleteByID(c, h.svc.DeleteInvoice) }

// AttachDocument godoc
//
//	@Summary		Attach invoice document
//	@Description	Upload a document for the invoice; the stored key replaces any previous one.
//	@Tags			billing
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Invoice ID"
//	@Param			file	formData	file	true	"Invoice document"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ClientInvoice}
//	@Router			/client-invoices/{id}/document [post]
func (h *BillingHandler) AttachDocument(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	inv, err := h.svc.AttachDocument(c.Request.Context(), c.Param("id"), fh)
	if err != nil {
		if errors.Is(err, service.ErrNoDocumentStore) {
			c.JSON(http.StatusServiceUnavailable, serializer.Err(http.StatusServiceUnavailable, err.Error(), err))
			return
		}
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: inv})
}

type DocumentURLResp struct {
	URL string `json:"url"`
}

// DocumentURL godoc
//
//	@Summary		Get invoice document link
//	@Description	Returns a short-lived presigned URL, or the legacy external link for old records.
//	@Tags			billing
//	@Produce		json
//	@Param			id	path	string	true	"Invoice ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.DocumentURLResp}
//	@Router			/client-invoices/{id}/document [get]
func (h *BillingHandler) DocumentURL(c *gin.Context) {
	url, err := h.svc.DocumentURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNoDocumentStore) {
			c.JSON(http.StatusServiceUnavailable, serializer.Err(http.StatusServiceUnavailable, err.Error(), err))
			return
		}
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: DocumentURLResp{URL: url}})
}

// ListUsers godoc
//
//	@Summary	List client users
//	@Tags		billing
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.ClientUser}
//	@Router		/client-users [get]
func (h *BillingHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Users()})
}

// GetUser godoc
//
//	@Summary	Get client user
//	@Tags		billing
//	@Produce	json
//	@Param		id	path	string	true	"User ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.ClientUser}
//	@Router		/client-users/{id} [get]
func (h *BillingHandler) GetUser(c *gin.Context) {
	user, err := h.svc.GetUser(c.Param("id"))
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: user})
}

func (h *BillingHandler) CreateUser(c *gin.Context) { createJSON(c, h.svc.CreateUser) }
func (h *BillingHandler) UpdateUser(c *gin.Context) { updateJSON(c, h.svc.UpdateUser) }
func (h *BillingHandler) DeleteUser(c *gin.Context) { deleteByID(c, h.svc.DeleteUser) }
