package app

import (
	"database/sql"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/auth"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/leave"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/config"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models in migration order; attendance and leaves reference employees.
func Models() []any {
	return []any{
		&employee.Employee{},
		&auth.Admin{},
		&attendance.AttendanceRecord{},
		&leave.LeaveRecord{},
		&kafka.OutboxEvent{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// BuildApp connects the stores, migrates and registers every module on router.
// The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if err := Migrate(gormDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("database migrated")

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DB.MaxRetries, logger)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	} else {
		logger.Warn("REDIS_ADDR not set, caching and idempotency disabled")
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		closeAll(sqlDB, rdb)
		return nil, err
	}

	return func() { closeAll(sqlDB, rdb) }, nil
}

func closeAll(sqlDB *sql.DB, rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
	_ = sqlDB.Close()
}
