package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init failed: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("gorm open failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db, mock
}

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"room_id", "room_number", "type", "price_cents", "capacity"}).
		AddRow(1, 101, models.RoomTypeDouble, int64(10000), 2)
}

func testBooking() *models.Booking {
	return &models.Booking{
		BookingReference: "REF0000001",
		RoomID:           1,
		CustomerID:       7,
		CheckInDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:     time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		TotalCents:       30000,
		BookingStatus:    constants.BookingStatusReserved,
		PaymentStatus:    constants.PaymentStatusPending,
	}
}

func TestCreateIfAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE room_id = \$1.*FOR UPDATE`).
		WillReturnRows(roomRows())
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	b := testBooking()
	if err := repo.CreateIfAvailable(context.Background(), b); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if b.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", b.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateIfAvailableRoomBusy(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE room_id = \$1.*FOR UPDATE`).
		WillReturnRows(roomRows())
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.CreateIfAvailable(context.Background(), testBooking())
	if !errors.Is(err, apperrors.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateIfAvailableRoomMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE room_id = \$1.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}))
	mock.ExpectRollback()

	err := repo.CreateIfAvailable(context.Background(), testBooking())
	if !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplyPatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	b := testBooking()
	b.ID = 1
	b.BookingStatus = constants.BookingStatusCheckedIn

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.ApplyPatch(context.Background(), b, constants.BookingStatusReserved, constants.PaymentStatusPending); err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Trạng thái cũ đã bị request khác đổi mất thì update không trúng row nào
func TestApplyPatchConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	b := testBooking()
	b.ID = 1
	b.BookingStatus = constants.BookingStatusCheckedIn

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.ApplyPatch(context.Background(), b, constants.BookingStatusReserved, constants.PaymentStatusPending)
	if !errors.Is(err, apperrors.ErrStorageConflict) {
		t.Fatalf("expected ErrStorageConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestByReference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	bookingCols := []string{"id", "booking_reference", "room_id", "booking_status", "payment_status"}
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE booking_reference = \$1`).
		WithArgs("REF0000001", 1).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(1, "REF0000001", 1, constants.BookingStatusReserved, constants.PaymentStatusPending))
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE "rooms"\."room_id" = \$1`).
		WillReturnRows(roomRows())

	b, err := repo.ByReference(context.Background(), "REF0000001")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if b.BookingReference != "REF0000001" {
		t.Fatalf("wrong booking: %+v", b)
	}
	if b.Room.RoomId != 1 {
		t.Fatalf("room not preloaded: %+v", b.Room)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestByReferenceNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE booking_reference = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ByReference(context.Background(), "NOPE000000")
	if !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateStorageError(t *testing.T) {
	if err := translateStorageError(nil); err != nil {
		t.Fatalf("nil must stay nil, got %v", err)
	}
	if err := translateStorageError(gorm.ErrDuplicatedKey); !errors.Is(err, apperrors.ErrCodeDuplicate) {
		t.Fatalf("duplicated key not translated: %v", err)
	}
	for _, msg := range []string{
		"ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)",
		"ERROR: deadlock detected (SQLSTATE 40P01)",
	} {
		if err := translateStorageError(errors.New(msg)); !errors.Is(err, apperrors.ErrStorageConflict) {
			t.Fatalf("%q not translated: %v", msg, err)
		}
	}
	passthrough := errors.New("connection refused")
	if err := translateStorageError(passthrough); !errors.Is(err, passthrough) {
		t.Fatalf("unknown error must pass through, got %v", err)
	}
}
