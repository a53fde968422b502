package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/middleware"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/service"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/store/memory"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/utils"
)

const testSecret = "handler-test-secret"

func newRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := memory.New()
	contentService := service.NewContentService(s, service.HighlightRepeat)
	queryService := service.NewQueryService(s)
	authService := service.NewAuthService(s, testSecret, time.Hour)

	entityHandler := &EntityHandler{Content: contentService}
	queryHandler := &QueryHandler{Queries: queryService}
	authHandler := &AuthHandler{Auth: authService, CookieMaxAge: 3600}
	settingsHandler := &SettingsHandler{Settings: s}

	validator := middleware.JWTValidator(testSecret)

	r := gin.New()
	r.Use(middleware.PageGate("/admin", "/login", validator))

	auth := r.Group("/api/v1/auth")
	auth.POST("/login", authHandler.Login)

	public := r.Group("/api/v1/public")
	public.GET("/entities", entityHandler.ListEntities)
	public.GET("/entities/:id", entityHandler.GetEntity)
	public.POST("/queries", queryHandler.CreateQuery)
	public.GET("/settings", settingsHandler.GetSettings)

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.APIGate(validator))
	admin.POST("/entities", entityHandler.UpsertEntity)
	admin.GET("/queries", queryHandler.ListQueries)
	admin.DELETE("/queries", queryHandler.DeleteQuery)
	admin.PUT("/settings", settingsHandler.UpdateSettings)

	r.GET("/admin/dashboard", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	return r, s
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("u1", testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpsertEntityCreateReturns201(t *testing.T) {
	r, _ := newRouter(t)
	token := adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/v1/admin/entities", token, map[string]any{
		"type":        "brand",
		"Brand":       "Acme",
		"Description": "x",
		"tags":        []string{"tech"},
		"highlighted": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Brand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	// Round-trip through the public detail endpoint.
	w = doJSON(r, http.MethodGet, "/api/v1/public/entities/"+created.ID+"?type=brand", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Brand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Acme", got.Brand)
	assert.Equal(t, []string{"tech"}, got.Tags)
	assert.True(t, got.Highlighted)
}

func TestUpsertEntityUpdateReturns200(t *testing.T) {
	r, _ := newRouter(t)
	token := adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/v1/admin/entities", token, map[string]any{
		"type": "brand", "Brand": "Acme",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Brand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPost, "/api/v1/admin/entities", token, map[string]any{
		"type": "brand", "id": created.ID, "Brand": "Acme v2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Brand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme v2", updated.Brand)
}

func TestUpsertEntityErrors(t *testing.T) {
	r, _ := newRouter(t)
	token := adminToken(t)

	// Unknown kind.
	w := doJSON(r, http.MethodPost, "/api/v1/admin/entities", token, map[string]any{"type": "podcast"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing kind.
	w = doJSON(r, http.MethodPost, "/api/v1/admin/entities", token, map[string]any{"Brand": "Acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Update of an unknown id.
	w = doJSON(r, http.MethodPost, "/api/v1/admin/entities", token, map[string]any{"type": "brand", "id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// No session.
	w = doJSON(r, http.MethodPost, "/api/v1/admin/entities", "", map[string]any{"type": "brand"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListEntitiesEndpoint(t *testing.T) {
	r, s := newRouter(t)
	ctx := context.Background()
	svc := service.NewContentService(s, service.HighlightRepeat)
	for i := 0; i < 3; i++ {
		_, _, err := svc.Upsert(ctx, "websites", map[string]any{
			"Title": "Site", "Description": "shop", "highlighted": i == 0,
		})
		require.NoError(t, err)
	}

	w := doJSON(r, http.MethodGet, "/api/v1/public/entities?type=websites&search=shop", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Items            []json.RawMessage `json:"items"`
		Total            int64             `json:"total"`
		HighlightedCount int64             `json:"highlightedCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Items, 3)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, int64(1), result.HighlightedCount)

	// Kind is required.
	w = doJSON(r, http.MethodGet, "/api/v1/public/entities", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown kind is a client error.
	w = doJSON(r, http.MethodGet, "/api/v1/public/entities?type=podcast", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEntityNotFound(t *testing.T) {
	r, _ := newRouter(t)
	w := doJSON(r, http.MethodGet, "/api/v1/public/entities/missing?type=brand", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQueryEndpoints(t *testing.T) {
	r, _ := newRouter(t)
	token := adminToken(t)

	// Contact form requires every field.
	w := doJSON(r, http.MethodPost, "/api/v1/public/queries", "", map[string]any{"first_name": "Ada"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/public/queries", "", map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"phone":      "555-0100",
		"query":      "Do you build shops?",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var q models.Query
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	require.NotEmpty(t, q.ID)

	// Admin listing sees it.
	w = doJSON(r, http.MethodGet, "/api/v1/admin/queries", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), q.ID)

	// Delete without id is a client error.
	w = doJSON(r, http.MethodDelete, "/api/v1/admin/queries", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Deleting an unknown id surfaces a server error.
	w = doJSON(r, http.MethodDelete, "/api/v1/admin/queries?id=missing", token, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Valid delete removes the record.
	w = doJSON(r, http.MethodDelete, "/api/v1/admin/queries?id="+q.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/admin/queries", token, nil)
	assert.NotContains(t, w.Body.String(), q.ID)
}

func TestSettingsEndpoints(t *testing.T) {
	r, _ := newRouter(t)
	token := adminToken(t)

	// Empty singleton before the first save.
	w := doJSON(r, http.MethodGet, "/api/v1/public/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, "/api/v1/admin/settings", token, map[string]any{
		"title":       "Studio",
		"description": "We build things",
		"logo":        "/uploads/logo.png",
		"footer_logo": "/uploads/footer.png",
		"favicon":     "/uploads/favicon.ico",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/v1/public/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var settings models.Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "Studio", settings.Title)
	assert.Equal(t, "/uploads/favicon.ico", settings.Favicon)
}

func TestLoginEndpoint(t *testing.T) {
	r, s := newRouter(t)

	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)
	require.NoError(t, s.CreateUser(context.Background(), &models.User{
		ID: "u1", Email: "admin@example.com", PasswordHash: hash,
	}))

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email": "admin@example.com", "password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.SessionCookie+"=")

	// Wrong password and unknown email read identically.
	wrong := doJSON(r, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email": "admin@example.com", "password": "nope",
	})
	unknown := doJSON(r, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email": "ghost@example.com", "password": "hunter2",
	})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrong.Body.String(), unknown.Body.String())
}

func TestAdminPagesRedirectWithoutSession(t *testing.T) {
	r, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: adminToken(t)})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
