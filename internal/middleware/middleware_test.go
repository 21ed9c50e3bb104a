package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/domain"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/middleware"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	r.GET("/me", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     c.GetString(middleware.ContextUserID),
			"employee_id": c.GetString(middleware.ContextEmployeeID),
			"role":        c.GetString(middleware.ContextRole),
		})
	})

	do := func(header string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid employee token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":     "emp-1",
			"employee_id": "emp-1",
			"role":        domain.RoleEmployee,
			"exp":         time.Now().Add(time.Hour).Unix(),
		})
		w := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":"emp-1"`)
	})

	t.Run("admin token without employee id", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "adm-1",
			"role":    domain.RoleAdmin,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		w := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"admin"`)
	})

	t.Run("missing token", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":     "emp-1",
			"employee_id": "emp-1",
			"role":        domain.RoleEmployee,
			"exp":         time.Now().Add(-time.Hour).Unix(),
		})
		w := do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": "emp-1",
			"role":    domain.RoleEmployee,
		}).SignedString([]byte("other"))
		w := do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("employee token without employee id", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "emp-1",
			"role":    domain.RoleEmployee,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		w := do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type fakeRBAC struct {
	allowed bool
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, nil
}

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "u-1")
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func TestRBACAuthorize(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}
		r := newRouter()
		r.GET("/x", withRole(domain.RoleAdmin), middleware.RBACAuthorize(svc, "report", "read"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{UserID: "u-1", Role: domain.RoleAdmin, Resource: "report", Action: "read"}, svc.got)
	})

	t.Run("denied", func(t *testing.T) {
		r := newRouter()
		r.GET("/x", withRole(domain.RoleEmployee), middleware.RBACAuthorize(&fakeRBAC{}, "report", "read"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "report:read")
	})

	t.Run("no auth context", func(t *testing.T) {
		r := newRouter()
		r.GET("/x", middleware.RBACAuthorize(&fakeRBAC{allowed: true}, "report", "read"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	r := newRouter()
	r.GET("/admin", withRole(domain.RoleEmployee), middleware.RoleMiddleware(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeviceKey(t *testing.T) {
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }

	r := newRouter()
	r.POST("/locked", middleware.DeviceKey("k-123"), handler)
	r.POST("/open", middleware.DeviceKey(""), handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/locked", nil)
	req.Header.Set(middleware.HeaderDeviceKey, "wrong")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/locked", nil)
	req.Header.Set(middleware.HeaderDeviceKey, "k-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitByIP(t *testing.T) {
	r := newRouter()
	r.GET("/pin", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pin", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestContextLogger(t *testing.T) {
	r := newRouter()
	var rid, uid string
	r.GET("/x", middleware.RequestID(), withRole(domain.RoleEmployee), middleware.ContextLogger(zap.NewNop()), func(c *gin.Context) {
		rid = contextutil.GetRequestID(c.Request.Context())
		uid = contextutil.GetUserID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.HeaderRequestID, "rid-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-1", rid)
	assert.Equal(t, "u-1", uid)
	assert.Equal(t, "rid-1", w.Header().Get(middleware.HeaderRequestID))
}

func newIdempotentRouter(rdb *redis.Client, calls *int) *gin.Engine {
	r := newRouter()
	r.POST("/leaves", withRole(domain.RoleEmployee), middleware.Idempotency(rdb, zap.NewNop()), func(c *gin.Context) {
		*calls++
		c.Data(http.StatusCreated, "application/json", []byte(`{"id":1}`))
	})
	return r
}

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/leaves:u-1:key-1"

	t.Run("first request stores response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"status":201,"body":{"id":1}}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat replays stored response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"id":1}}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1}`, w.Body.String())
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no key bypasses redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
