package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee"
	employeeerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/errors"
	employeeMock "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T, pins ...string) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	next := 0
	pinGen := func() (string, error) {
		if next >= len(pins) {
			return "0000", nil
		}
		pin := pins[next]
		next++
		return pin, nil
	}

	svc := employee.NewServiceWithPINGenerator(db, repo, dbRedis, pinGen)
	t.Cleanup(func() { db.Close() })

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func strPtr(s string) *string { return &s }

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	req := employee.CreateEmployeeRequest{
		Name:     "Asha Rao",
		EmpCode:  "E001",
		Password: "secret1",
		Email:    strPtr("asha@example.com"),
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t, "4821")

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "Asha Rao", e.Name)
				assert.Equal(t, "E001", e.EmpCode)
				assert.Equal(t, "4821", e.PIN)
				assert.NotEqual(t, uuid.Nil, e.ID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.Password), []byte("secret1")))
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "E001", resp.EmpCode)
		assert.Equal(t, "4821", resp.PIN)
	})

	t.Run("pin collision retries with a new pin", func(t *testing.T) {
		deps := setupServiceTest(t, "1111", "2222")
		pinErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_pin"}

		gomock.InOrder(
			deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(pinErr),
			deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "2222", resp.PIN)
	})

	t.Run("pin space exhausted", func(t *testing.T) {
		deps := setupServiceTest(t)
		pinErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_pin"}

		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(pinErr).Times(5)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrPINExhausted)
	})

	t.Run("duplicate emp_code", func(t *testing.T) {
		deps := setupServiceTest(t, "1234")
		codeErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_emp_code"}

		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(codeErr)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmpCodeAlreadyExists)
	})

	t.Run("missing emp_code", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{Name: "X", Password: "secret1"})

		assert.ErrorIs(t, err, employeeerrors.ErrEmpCodeRequired)
	})
}

func TestEmployeeService_LookupByPIN(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByPIN(ctx, "1234").Return(&employee.Employee{ID: id, Name: "Asha", EmpCode: "E001"}, nil)

		resp, err := deps.service.LookupByPIN(ctx, "1234")

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
	})

	t.Run("malformed pin never reaches the store", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.LookupByPIN(ctx, "12a4")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidPIN)
	})

	t.Run("unknown pin", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByPIN(ctx, "9999").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.LookupByPIN(ctx, "9999")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_LookupByCode(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().FindByCode(ctx, "E001").Return(&employee.Employee{ID: uuid.New(), EmpCode: "E001"}, nil)

	resp, err := deps.service.LookupByCode(ctx, " E001 ")
	assert.NoError(t, err)
	assert.Equal(t, "E001", resp.EmpCode)

	_, err = deps.service.LookupByCode(ctx, "")
	assert.ErrorIs(t, err, employeeerrors.ErrEmpCodeRequired)
}

func TestEmployeeService_Profile(t *testing.T) {
	ctx := context.Background()
	key := employee.GetProfileKey("E001")

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached, _ := json.Marshal(employee.ProfileResponse{Name: "Asha", EmpCode: "E001", Email: "N/A"})
		deps.redismock.ExpectGet(key).SetVal(string(cached))

		resp, err := deps.service.Profile(ctx, "E001")

		assert.NoError(t, err)
		assert.Equal(t, "Asha", resp.Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindByCode(ctx, "E001").Return(&employee.Employee{
			ID:         id,
			Name:       "Asha",
			EmpCode:    "E001",
			Phone:      strPtr("  "),
			Department: strPtr("Ops"),
		}, nil)

		want := employee.ProfileResponse{
			ID:          id.String(),
			Name:        "Asha",
			EmpCode:     "E001",
			Email:       "N/A",
			Phone:       "N/A",
			Department:  "Ops",
			Designation: "N/A",
		}
		data, _ := json.Marshal(want)
		deps.redismock.ExpectSet(key, data, time.Hour).SetVal("OK")

		resp, err := deps.service.Profile(ctx, "E001")

		assert.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unknown code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindByCode(ctx, "E001").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Profile(ctx, "E001")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success invalidates profile cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&employee.Employee{ID: id, EmpCode: "E001"}, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.redismock.ExpectDel(employee.GetProfileKey("E001")).SetVal(1)

		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("not found rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Delete(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_Search(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().Search(ctx, "as").Return([]employee.Employee{{ID: uuid.New(), Name: "Asha", EmpCode: "E001"}}, nil)
	resp, err := deps.service.Search(ctx, "as")
	assert.NoError(t, err)
	assert.Len(t, resp, 1)

	deps.repo.EXPECT().Search(ctx, "").Return(nil, errors.New("db down"))
	_, err = deps.service.Search(ctx, "")
	assert.Error(t, err)
}
