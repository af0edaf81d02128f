package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokenSvc() *service.JWTTokenService {
	return service.NewJWTTokenService("middleware-test-secret-0123456789ab", time.Hour, "savings-ledger")
}

func TestRequestID_Generated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		assert.NotEmpty(t, c.GetString(CtxRequestID))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRequestID_Propagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "fixed-id-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "fixed-id-123", w.Header().Get(HeaderRequestID))
}

func TestJWTAuth_ValidToken(t *testing.T) {
	tokenSvc := newTokenSvc()
	token, _, err := tokenSvc.Generate("GMWUSER")
	require.NoError(t, err)

	r := gin.New()
	r.Use(JWTAuth(tokenSvc, zerolog.Nop()))
	r.GET("/", func(c *gin.Context) {
		principal, ok := ports.PrincipalFromContext(c.Request.Context())
		require.True(t, ok)
		assert.Equal(t, domain.Address("GMWUSER"), principal)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_MissingOrMalformed(t *testing.T) {
	r := gin.New()
	r.Use(JWTAuth(newTokenSvc(), zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer garbage-token"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestJWTAuth_CoSigner(t *testing.T) {
	tokenSvc := newTokenSvc()
	primary, _, err := tokenSvc.Generate("GCURRENT")
	require.NoError(t, err)
	coSigner, _, err := tokenSvc.Generate("GINCOMING")
	require.NoError(t, err)

	r := gin.New()
	r.Use(JWTAuth(tokenSvc, zerolog.Nop()))
	r.GET("/", func(c *gin.Context) {
		ctx := c.Request.Context()
		assert.True(t, ports.ContextAuthorizes(ctx, "GCURRENT"))
		assert.True(t, ports.ContextAuthorizes(ctx, "GINCOMING"))

		// Primary caller stays first.
		principal, ok := ports.PrincipalFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, domain.Address("GCURRENT"), principal)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+primary)
	req.Header.Set(HeaderCoSigner, coSigner)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_BadCoSigner(t *testing.T) {
	tokenSvc := newTokenSvc()
	primary, _, err := tokenSvc.Generate("GCURRENT")
	require.NoError(t, err)

	r := gin.New()
	r.Use(JWTAuth(tokenSvc, zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+primary)
	req.Header.Set(HeaderCoSigner, "garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
