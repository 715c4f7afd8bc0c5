package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
)

func setupClientProjectRouter(t *testing.T) (*gin.Engine, *repo.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repo.NewStore(repo.NewMemoryAdapter(), zap.NewNop())
	require.NoError(t, store.Open(context.Background()))
	require.NoError(t, store.Import(context.Background(), &repo.Dataset{
		Divisions: []model.Division{},
		Projects:  []model.Project{},
		Team:      []model.TeamMember{},
	}))

	h := NewClientProjectHandler(service.NewClientProjectService(store, zap.NewNop(), nil, ""))

	r := gin.New()
	r.GET("/client-projects", h.List)
	r.GET("/client-projects/:id", h.Get)
	r.POST("/client-projects", h.Create)
	r.PUT("/client-projects/:id", h.Update)
	r.DELETE("/client-projects/:id", h.Delete)
	r.POST("/client-projects/:id/tasks", h.AddTask)
	r.PUT("/client-projects/:id/tasks", h.ReplaceTasks)
	r.PUT("/client-projects/:id/tasks/:task_id", h.UpdateTask)
	r.DELETE("/client-projects/:id/tasks/:task_id", h.RemoveTask)
	r.GET("/client-projects/:id/delivery", h.Delivery)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestClientProjectCRUDOverHTTP(t *testing.T) {
	r, _ := setupClientProjectRouter(t)

	w := doJSON(t, r, http.MethodPost, "/client-projects", map[string]any{
		"name": "Brand Relaunch", "projectId": "p1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := dataOf(t, w)
	id := created["id"].(string)
	assert.Contains(t, id, "client_proj_")
	assert.Equal(t, "Brand Relaunch", created["clientName"], "clientName backfilled")

	w = doJSON(t, r, http.MethodGet, "/client-projects/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/client-projects/"+id, map[string]any{"summary": "new"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", dataOf(t, w)["summary"])

	w = doJSON(t, r, http.MethodGet, "/client-projects/client_proj_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/client-projects/client_proj_missing", map[string]any{"summary": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/client-projects", map[string]any{"name": "no project id"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/client-projects/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/client-projects/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code, "delete is idempotent")
}

func TestTaskEndpoints(t *testing.T) {
	r, _ := setupClientProjectRouter(t)

	w := doJSON(t, r, http.MethodPost, "/client-projects", map[string]any{
		"name": "App", "projectId": "p1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := dataOf(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/client-projects/"+id+"/tasks", map[string]any{
		"id": "t1", "title": "design", "status": "done",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/client-projects/"+id+"/tasks", map[string]any{
		"id": "t2", "title": "build",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(50), dataOf(t, w)["progress"])

	// Missing title is rejected by binding.
	w = doJSON(t, r, http.MethodPost, "/client-projects/"+id+"/tasks", map[string]any{"status": "todo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/client-projects/"+id+"/tasks/t2", map[string]any{"status": "done"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(100), dataOf(t, w)["progress"])

	w = doJSON(t, r, http.MethodPut, "/client-projects/"+id+"/tasks/t_missing", map[string]any{"status": "done"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/client-projects/"+id+"/tasks/t1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/client-projects/"+id+"/tasks", []map[string]any{
		{"id": "n1", "title": "fresh", "status": "todo"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), dataOf(t, w)["progress"])
}

func TestDeliveryEndpoint(t *testing.T) {
	r, _ := setupClientProjectRouter(t)

	w := doJSON(t, r, http.MethodPost, "/client-projects", map[string]any{
		"name": "Portal", "projectId": "p1", "endDate": "2030-01-01",
		"tasks": []map[string]any{
			{"id": "t1", "title": "a", "status": "done"},
			{"id": "t2", "title": "b", "status": "todo"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := dataOf(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodGet, "/client-projects/"+id+"/delivery", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := dataOf(t, w)
	assert.Equal(t, float64(50), report["progress"])
	assert.Equal(t, "On Track", report["status"])
	assert.NotNil(t, report["daysRemaining"])

	w = doJSON(t, r, http.MethodGet, "/client-projects/client_proj_missing/delivery", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
