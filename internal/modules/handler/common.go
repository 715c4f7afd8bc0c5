package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
)

// The content collections all share the same JSON-object CRUD shape, so the
// body handling lives here once instead of in every handler method.

func createJSON[T any](c *gin.Context, create func(ctx context.Context, payload map[string]any) (T, error)) {
	payload := map[string]any{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	rec, err := create(c.Request.Context(), payload)
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: rec})
}

func updateJSON[T any](c *gin.Context, update func(ctx context.Context, id string, patch map[string]any) (T, error)) {
	patch := map[string]any{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	rec, err := update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rec})
}

func deleteByID(c *gin.Context, del func(ctx context.Context, id string) error) {
	if err := del(c.Request.Context(), c.Param("id")); err != nil {
		resp := serializer.StoreErr(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
