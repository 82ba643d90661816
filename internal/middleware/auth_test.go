package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogastudio/yoga-backend/internal/config"
	"github.com/yogastudio/yoga-backend/internal/model"
	"github.com/yogastudio/yoga-backend/internal/service"
)

type singleUserStore struct {
	user *model.User
}

func (s *singleUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *singleUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *singleUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	return s.user != nil && s.user.Email == email, nil
}

func (s *singleUserStore) Create(_ context.Context, _ *model.User) error { return nil }
func (s *singleUserStore) Delete(_ context.Context, _ int64) error       { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "filter-test-secret", JWTExpiry: time.Hour}
	store := &singleUserStore{user: &model.User{
		ID:        7,
		Email:     "user@studio.com",
		FirstName: "Regular",
		LastName:  "User",
	}}
	authService := service.NewAuthService(cfg, store, zerolog.Nop())

	r := gin.New()
	r.Use(Authenticate(authService))
	r.GET("/whoami", func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "email": p.Email, "id": p.ID})
	})
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, authService
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func principalOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthenticate_ValidToken(t *testing.T) {
	r, authService := newTestRouter(t)

	token, err := authService.GenerateToken("user@studio.com")
	require.NoError(t, err)

	body := principalOf(t, doRequest(r, "Bearer "+token))
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, "user@studio.com", body["email"])
}

func TestAuthenticate_PrefixEdgeCases(t *testing.T) {
	r, authService := newTestRouter(t)

	token, err := authService.GenerateToken("user@studio.com")
	require.NoError(t, err)

	cases := map[string]string{
		"no header":             "",
		"lowercase bearer":      "bearer " + token,
		"uppercase bearer":      "BEARER " + token,
		"missing space":         "Bearer" + token,
		"bare prefix no space":  "Bearer",
		"prefix with empty tok": "Bearer ",
		"basic scheme":          "Basic dXNlcjpwYXNz",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			body := principalOf(t, doRequest(r, header))
			assert.Equal(t, false, body["authenticated"])
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	r, _ := newTestRouter(t)

	body := principalOf(t, doRequest(r, "Bearer not.a.token"))
	assert.Equal(t, false, body["authenticated"])
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	// A valid token whose subject no longer maps to an account passes
	// through unauthenticated instead of erroring.
	r, authService := newTestRouter(t)

	token, err := authService.GenerateToken("deleted@studio.com")
	require.NoError(t, err)

	body := principalOf(t, doRequest(r, "Bearer "+token))
	assert.Equal(t, false, body["authenticated"])
}

func TestRequireAuth_Unauthenticated(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/protected", body["path"])
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Equal(t, float64(http.StatusUnauthorized), body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestRequireAuth_Authenticated(t *testing.T) {
	r, authService := newTestRouter(t)

	token, err := authService.GenerateToken("user@studio.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
