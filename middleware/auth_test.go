package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/devconnect/devconnect/testutils"
	"github.com/devconnect/devconnect/utils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Exit(m.Run())
}

func setupAuthRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.GET("/secure", AuthRequired(), func(c *gin.Context) {
		userID := c.GetString(ContextUserIDKey)
		utils.Success(c, gin.H{"user_id": userID})
	})
	return r
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	r := setupAuthRouter()

	req, _ := http.NewRequest(http.MethodGet, "/secure", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "authorization header missing")
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	r := setupAuthRouter()

	req, _ := http.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Token abc")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid authorization header format")
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	r := setupAuthRouter()

	req, _ := http.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid token")
}

func TestAuthRequiredValidToken(t *testing.T) {
	r := setupAuthRouter()

	token, err := utils.GenerateToken("user-1", "Alice", time.Hour)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "user-1")
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	r := setupAuthRouter()

	token, err := utils.GenerateToken("user-1", "Alice", -time.Minute)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
