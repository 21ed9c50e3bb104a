package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/auth"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/geo"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/leave"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/middleware"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/rbac"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/rbac/infra"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/report"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/config"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/datetime"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func newEnforcer(cfg config.Config) (*casbin.Enforcer, error) {
	if cfg.RBACModelPath != "" {
		return infra.NewEnforcerFromFile(cfg.RBACModelPath)
	}
	return infra.NewEnforcer()
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	clock := datetime.SystemClock(cfg.Timezone)

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := newEnforcer(cfg)
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicies, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	resolver := geo.NewCachedResolver(geo.NewHTTPResolver(cfg.GeoURL, cfg.GeoTimeout, logger), rdb, logger)

	authService := auth.NewService(authRepo, employeeRepo, cfg.JWTSecret, cfg.TokenTTL, logger)
	employeeService := employee.NewService(db, employeeRepo, rdb, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, outboxRepo, employeeService, resolver, clock, logger)
	leaveService := leave.NewService(db, leaveRepo, attendanceRepo, outboxRepo, clock, logger)
	reportService := report.NewService(reportRepo, attendanceService, leaveService, rdb, clock, logger)

	if cfg.AdminUsername != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return err
		}
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	reportHandler := report.NewHandler(reportService, logger)

	// --- Shared middleware ---
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)
	pinLimiter := middleware.RateLimitByIP(rate.Limit(cfg.PinRateLimit), cfg.PinRateBurst)
	if cfg.BiometricDeviceKey == "" {
		logger.Warn("BIOMETRIC_DEVICE_KEY not set, /biometric/punch accepts any caller")
	}
	deviceKey := middleware.DeviceKey(cfg.BiometricDeviceKey)
	idempotency := middleware.Idempotency(rdb, logger.Named("idempotency"))

	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware, pinLimiter)
		attendance.RegisterRoutes(api, attendanceHandler, authMiddleware, rbacService, pinLimiter, deviceKey, logger)
		employee.RegisterRoutes(api, employeeHandler, authMiddleware, rbacService, pinLimiter, logger)
		leave.RegisterRoutes(api, leaveHandler, authMiddleware, rbacService, idempotency, logger)
		report.RegisterRoutes(api, reportHandler, authMiddleware, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware)
	}

	return nil
}
