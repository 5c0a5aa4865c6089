package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/gorm"

	apperrors "hotelbooking/errors"
)

func TestReferenceReserve(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReferenceRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "booking_references"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	if err := repo.Reserve(context.Background(), "REF0000001"); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Mã trùng unique index phải trả về ErrCodeDuplicate để issuer thử mã khác
func TestReferenceReserveDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReferenceRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "booking_references"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.Reserve(context.Background(), "REF0000001")
	if !errors.Is(err, apperrors.ErrCodeDuplicate) {
		t.Fatalf("expected ErrCodeDuplicate, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReferenceRelease(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReferenceRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "booking_references" WHERE code = \$1`).
		WithArgs("REF0000001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Release(context.Background(), "REF0000001"); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
