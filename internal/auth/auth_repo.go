package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, admin *Admin) error
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	FindByPIN(ctx context.Context, pin string) (*Admin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, admin *Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	var admin Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) FindByPIN(ctx context.Context, pin string) (*Admin, error) {
	var admin Admin
	if err := r.db.WithContext(ctx).Where("pin = ?", pin).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	var admin Admin
	if err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
