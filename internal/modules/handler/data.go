package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cindral-studio/cindral-api/internal/modules/repo"
	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
)

// DataHandler exposes whole-dataset export, import, and reset for backup and
// environment refresh.
type DataHandler struct {
	store *repo.Store
}

func NewDataHandler(store *repo.Store) *DataHandler {
	return &DataHandler{store: store}
}

// Export godoc
//
//	@Summary	Export dataset
//	@Tags		data
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=repo.Dataset}
//	@Router		/data/export [get]
func (h *DataHandler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.store.Export()})
}

// Import godoc
//
//	@Summary		Import dataset
//	@Description	Replace the whole dataset. Divisions, projects, and team must be present.
//	@Tags			data
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	repo.Dataset	true	"Full dataset"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{}
//	@Router			/data/import [post]
func (h *DataHandler) Import(c *gin.Context) {
	d := &repo.Dataset{}
	if err := c.ShouldBindJSON(d); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.store.Import(c.Request.Context(), d); err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// Reset godoc
//
//	@Summary		Reset dataset
//	@Description	Discard everything and reinstall the seed content.
//	@Tags			data
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=repo.Dataset}
//	@Router			/data/reset [post]
func (h *DataHandler) Reset(c *gin.Context) {
	d, err := h.store.Reset(c.Request.Context())
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: d})
}
