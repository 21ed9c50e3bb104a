package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	autherrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/auth/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/domain"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/dberr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	LoginPIN(ctx context.Context, pin string) (LoginResponse, error)
	Me(ctx context.Context, userID, role string) (AuthResponse, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, secret string, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
		logger:       l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	username := strings.TrimSpace(req.Username)

	switch req.Role {
	case domain.RoleAdmin:
		admin, err := s.repo.FindByUsername(ctx, username)
		if err != nil {
			if !dberr.IsNotFound(err) {
				s.logger.Error("admin lookup failed", zap.Error(err))
			}
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		if !checkPassword(admin.Password, req.Password) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return s.issue(adminResponse(admin))

	case domain.RoleEmployee:
		emp, err := s.employeeRepo.FindByCode(ctx, username)
		if err != nil {
			if !dberr.IsNotFound(err) {
				s.logger.Error("employee lookup failed", zap.Error(err))
			}
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		if !checkPassword(emp.Password, req.Password) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return s.issue(employeeResponse(emp))
	}

	return LoginResponse{}, autherrors.ErrInvalidRole
}

// LoginPIN tries employees first, then admins.
func (s *service) LoginPIN(ctx context.Context, pin string) (LoginResponse, error) {
	pin = strings.TrimSpace(pin)
	if !employee.ValidPIN(pin) {
		return LoginResponse{}, autherrors.ErrInvalidPIN
	}

	emp, err := s.employeeRepo.FindByPIN(ctx, pin)
	if err == nil {
		return s.issue(employeeResponse(emp))
	}
	if !dberr.IsNotFound(err) {
		s.logger.Error("employee pin lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	admin, err := s.repo.FindByPIN(ctx, pin)
	if err == nil {
		return s.issue(adminResponse(admin))
	}
	if !dberr.IsNotFound(err) {
		s.logger.Error("admin pin lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	return LoginResponse{}, autherrors.ErrInvalidPIN
}

func (s *service) Me(ctx context.Context, userID, role string) (AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	switch role {
	case domain.RoleAdmin:
		admin, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return adminResponse(admin), nil
	case domain.RoleEmployee:
		emp, err := s.employeeRepo.FindByID(ctx, id)
		if err != nil {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return employeeResponse(emp), nil
	}
	return AuthResponse{}, autherrors.ErrInvalidRole
}

// EnsureAdmin creates the bootstrap admin account unless the username is taken.
func (s *service) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !dberr.IsNotFound(err) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, &Admin{ID: uuid.New(), Username: username, Password: string(hashed)}); err != nil {
		return err
	}
	s.logger.Info("bootstrap admin created", zap.String("username", username))
	return nil
}

func (s *service) issue(user AuthResponse) (LoginResponse, error) {
	exp := s.now().Add(s.ttl)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     exp.Unix(),
	}
	if user.EmployeeID != "" {
		claims["employee_id"] = user.EmployeeID
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{User: user, AccessToken: token, ExpiresAt: exp.Unix()}, nil
}

// checkPassword accepts bcrypt hashes and legacy plain-text rows.
func checkPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func adminResponse(a *Admin) AuthResponse {
	return AuthResponse{
		ID:   a.ID.String(),
		Name: a.Username,
		Role: domain.RoleAdmin,
	}
}

func employeeResponse(e *employee.Employee) AuthResponse {
	return AuthResponse{
		ID:         e.ID.String(),
		EmployeeID: e.ID.String(),
		Name:       e.Name,
		EmpCode:    e.EmpCode,
		Role:       domain.RoleEmployee,
	}
}
