package employee

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	employeeerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const (
	ProfileKeyPrefix = "employees:profile:"
	profileTTL       = time.Hour
	maxPINAttempts   = 5
	notAvailable     = "N/A"
)

func GetProfileKey(code string) string {
	return ProfileKeyPrefix + code
}

// PINGenerator returns a candidate quick-login PIN.
type PINGenerator func() (string, error)

// RandomPIN draws a 4 digit PIN from crypto/rand.
func RandomPIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

func ValidPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	LookupByPIN(ctx context.Context, pin string) (EmployeeResponse, error)
	LookupByCode(ctx context.Context, code string) (EmployeeResponse, error)
	Profile(ctx context.Context, code string) (ProfileResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	pinGen PINGenerator
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithPINGenerator(db, repo, rdb, RandomPIN, logger...)
}

func NewServiceWithPINGenerator(
	db *sql.DB,
	repo Repository,
	rdb *redis.Client,
	pinGen PINGenerator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if pinGen == nil {
		pinGen = RandomPIN
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		pinGen: pinGen,
		logger: l,
	}
}

func (s *service) LookupByPIN(ctx context.Context, pin string) (EmployeeResponse, error) {
	pin = strings.TrimSpace(pin)
	if !ValidPIN(pin) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidPIN
	}
	e, err := s.repo.FindByPIN(ctx, pin)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) LookupByCode(ctx context.Context, code string) (EmployeeResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmpCodeRequired
	}
	e, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Profile(ctx context.Context, code string) (ProfileResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return ProfileResponse{}, employeeerrors.ErrEmpCodeRequired
	}
	cacheKey := GetProfileKey(code)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp ProfileResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		e, err := s.repo.FindByCode(ctx, code)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		resp := mapToProfile(*e)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, profileTTL).Err(); err != nil {
					s.logger.Warn("cache employee profile failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return ProfileResponse{}, err
	}

	return v.(ProfileResponse), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	req.Name = strings.TrimSpace(req.Name)
	req.EmpCode = strings.TrimSpace(req.EmpCode)
	if req.Name == "" {
		return CreateEmployeeResponse{}, apperror.RequiredField("name")
	}
	if req.EmpCode == "" {
		return CreateEmployeeResponse{}, employeeerrors.ErrEmpCodeRequired
	}
	if req.Password == "" {
		return CreateEmployeeResponse{}, apperror.RequiredField("password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateEmployeeResponse{}, err
	}

	for attempt := 1; attempt <= maxPINAttempts; attempt++ {
		pin, err := s.pinGen()
		if err != nil {
			return CreateEmployeeResponse{}, err
		}

		empl := &Employee{
			ID:          uuid.New(),
			Name:        req.Name,
			EmpCode:     req.EmpCode,
			Password:    string(hashed),
			PIN:         pin,
			Email:       req.Email,
			Phone:       req.Phone,
			Department:  req.Department,
			Designation: req.Designation,
		}

		err = s.repo.Create(ctx, empl)
		if err == nil {
			log.Info("create employee success",
				zap.String("employee_id", empl.ID.String()),
				zap.String("emp_code", empl.EmpCode),
			)
			return CreateEmployeeResponse{EmployeeResponse: mapToResponse(*empl), PIN: pin}, nil
		}
		if isPINViolation(err) {
			log.Warn("pin collision, retrying", zap.Int("attempt", attempt))
			continue
		}
		log.Error("create employee persist failed", zap.String("emp_code", req.EmpCode), zap.Error(err))
		return CreateEmployeeResponse{}, mapRepositoryError(err)
	}

	return CreateEmployeeResponse{}, employeeerrors.ErrPINExhausted
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	empID, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, empID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, empID); err != nil {
		log.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	if s.rdb != nil {
		cacheKey := GetProfileKey(empl.EmpCode)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			log.Error("failed to invalidate employee profile cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}

	log.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) Search(ctx context.Context, query string) ([]EmployeeResponse, error) {
	list, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error("search employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(list), nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:      e.ID.String(),
		Name:    e.Name,
		EmpCode: e.EmpCode,
	}
}

func mapToListResponse(list []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, mapToResponse(e))
	}
	return out
}

func mapToProfile(e Employee) ProfileResponse {
	return ProfileResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		EmpCode:     e.EmpCode,
		Email:       orNA(e.Email),
		Phone:       orNA(e.Phone),
		Department:  orNA(e.Department),
		Designation: orNA(e.Designation),
	}
}

func orNA(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return notAvailable
	}
	return *v
}
