package employee

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByCode(ctx context.Context, code string) (*Employee, error)
	FindByPIN(ctx context.Context, pin string) (*Employee, error)
	Search(ctx context.Context, query string) ([]Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var e Employee
	if err := r.conn(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Employee, error) {
	var e Employee
	if err := r.conn(ctx).Where("emp_code = ?", code).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByPIN(ctx context.Context, pin string) (*Employee, error) {
	var e Employee
	if err := r.conn(ctx).Where("pin = ?", pin).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Search(ctx context.Context, query string) ([]Employee, error) {
	var list []Employee
	db := r.conn(ctx).Order("name ASC")
	if q := strings.TrimSpace(query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(emp_code) LIKE ?", like, like)
	}
	err := db.Find(&list).Error
	return list, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
