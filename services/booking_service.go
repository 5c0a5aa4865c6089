package services

import (
	"context"
	"errors"
	"time"

	"hotelbooking/builders"
	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
	"hotelbooking/events"
	"hotelbooking/models"
	"hotelbooking/services/logger"
	"hotelbooking/utils"
)

// RoomStore tra cứu catalog phòng, engine chỉ đọc
type RoomStore interface {
	ByID(ctx context.Context, id uint) (*models.Room, error)
	AvailableBetween(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]models.Room, error)
}

// BookingStore lưu trữ booking. CreateIfAvailable phải kiểm tra phòng trống và insert
// trong cùng một đơn vị nguyên tử, trả về ErrRoomUnavailable khi có booking giao nhau
// và ErrStorageConflict khi transaction bị serialization failure.
type BookingStore interface {
	CreateIfAvailable(ctx context.Context, b *models.Booking) error
	ByID(ctx context.Context, id uint) (*models.Booking, error)
	ByReference(ctx context.Context, code string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	ActiveExpiredStays(ctx context.Context, before time.Time) ([]models.Booking, error)
	ApplyPatch(ctx context.Context, b *models.Booking, prevBookingStatus, prevPaymentStatus string) error
}

// BookingService điều phối việc đặt phòng và vòng đời booking
type BookingService struct {
	bookings BookingStore
	rooms    RoomStore
	codes    *CodeIssuer
	sink     events.Sink
	logger   logger.Logger
	now      func() time.Time
}

type BookingServiceOptions struct {
	Bookings BookingStore
	Rooms    RoomStore
	Codes    *CodeIssuer
	Sink     events.Sink
	Logger   logger.Logger
	Now      func() time.Time
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	s := &BookingService{
		bookings: opts.Bookings,
		rooms:    opts.Rooms,
		codes:    opts.Codes,
		sink:     opts.Sink,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if s.logger == nil {
		s.logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Reserve đặt phòng cho khách trong khoảng [checkIn, checkOut).
// Thứ tự validate: phòng tồn tại, checkIn không ở quá khứ, checkOut sau checkIn,
// phòng trống. Bước cuối chạy trong cùng transaction với insert nên hai request
// trùng khoảng ngày chỉ có đúng một request thành công.
func (s *BookingService) Reserve(ctx context.Context, roomID uint, checkIn, checkOut time.Time, customerID uint) (*models.Booking, error) {
	room, err := s.rooms.ByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "room not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not load room", err)
	}

	checkIn = utils.TruncateToDate(checkIn)
	checkOut = utils.TruncateToDate(checkOut)
	today := utils.TruncateToDate(s.now())

	if checkIn.Before(today) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange,
			"check-in date cannot be before today", apperrors.ErrInvalidDateRange)
	}
	if !checkOut.After(checkIn) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange,
			"check-out date must be after check-in date", apperrors.ErrInvalidDateRange)
	}

	builder := builders.NewBookingBuilder().
		WithRoom(room).
		WithCustomer(customerID).
		WithDates(checkIn, checkOut)

	for attempt := 0; attempt < constants.ReserveMaxRetries; attempt++ {
		code, err := s.codes.Issue(ctx)
		if err != nil {
			return nil, err
		}

		b := builder.WithReference(code).Build()
		err = s.bookings.CreateIfAvailable(ctx, b)
		if err == nil {
			b.Room = *room
			s.emit(ctx, events.New(events.KindBookingCreated, b.BookingReference, map[string]interface{}{
				"bookingId":    b.ID,
				"roomId":       b.RoomID,
				"customerId":   b.CustomerID,
				"checkInDate":  utils.FormatDate(b.CheckInDate),
				"checkOutDate": utils.FormatDate(b.CheckOutDate),
				"totalCents":   b.TotalCents,
			}))
			return b, nil
		}

		// booking không được tạo thì mã đặt phòng cũng phải được thu hồi
		if relErr := s.codes.Release(ctx, code); relErr != nil {
			s.logger.Error("could not release booking reference %s: %v", code, relErr)
		}

		switch {
		case errors.Is(err, apperrors.ErrRoomUnavailable):
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable,
				"room is not available for the requested dates", err)
		case errors.Is(err, apperrors.ErrRoomNotFound):
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "room not found", err)
		case errors.Is(err, apperrors.ErrStorageConflict):
			s.logger.Warn("reserve room %d hit a storage conflict, attempt %d", roomID, attempt+1)
			continue
		default:
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not create booking", err)
		}
	}

	return nil, apperrors.NewAppError(apperrors.ErrCodeStorageConflict,
		"reservation kept conflicting with concurrent requests", apperrors.ErrStorageConflict)
}

// AvailableRooms liệt kê các phòng trống trong khoảng [checkIn, checkOut),
// roomType rỗng nghĩa là mọi loại phòng. Không validate checkIn với ngày hiện tại
// vì client được phép duyệt lịch trống trong tương lai lẫn tra cứu quá khứ.
func (s *BookingService) AvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]models.Room, error) {
	checkIn = utils.TruncateToDate(checkIn)
	checkOut = utils.TruncateToDate(checkOut)
	if !checkOut.After(checkIn) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange,
			"check-out date must be after check-in date", apperrors.ErrInvalidDateRange)
	}

	rooms, err := s.rooms.AvailableBetween(ctx, checkIn, checkOut, roomType)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not query available rooms", err)
	}
	return rooms, nil
}

// TransitionBooking áp dụng patch trạng thái lên booking theo state machine.
// Field nil trong patch được giữ nguyên.
func (s *BookingService) TransitionBooking(ctx context.Context, id uint, patch models.StatusPatch) (*models.Booking, error) {
	b, err := s.bookings.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, "booking not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not load booking", err)
	}

	prevBooking := b.BookingStatus
	prevPayment := b.PaymentStatus

	if err := models.Transition(b, patch); err != nil {
		return nil, err
	}

	if err := s.bookings.ApplyPatch(ctx, b, prevBooking, prevPayment); err != nil {
		if errors.Is(err, apperrors.ErrStorageConflict) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeStorageConflict,
				"booking was modified concurrently, retry the operation", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not update booking", err)
	}
	return b, nil
}

// FindByReference tra booking theo mã đặt phòng
func (s *BookingService) FindByReference(ctx context.Context, code string) (*models.Booking, error) {
	b, err := s.bookings.ByReference(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, "booking not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not load booking", err)
	}
	return b, nil
}

// ListBookings trả về toàn bộ booking, mới nhất trước
func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	out, err := s.bookings.List(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not list bookings", err)
	}
	return out, nil
}

// CompleteExpiredStays chuyển các booking CHECKED_IN đã qua ngày trả phòng sang
// CHECKED_OUT, dùng cho cron job cuối ngày. Trả về số booking đã chuyển.
func (s *BookingService) CompleteExpiredStays(ctx context.Context) (int, error) {
	today := utils.TruncateToDate(s.now())
	stays, err := s.bookings.ActiveExpiredStays(ctx, today)
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not load expired stays", err)
	}

	checkedOut := constants.BookingStatusCheckedOut
	done := 0
	for i := range stays {
		if _, err := s.TransitionBooking(ctx, stays[i].ID, models.StatusPatch{BookingStatus: &checkedOut}); err != nil {
			s.logger.Error("auto checkout booking %d failed: %v", stays[i].ID, err)
			continue
		}
		done++
	}
	return done, nil
}

// emit gửi event cho notifier, lỗi chỉ log chứ không làm fail nghiệp vụ chính
func (s *BookingService) emit(ctx context.Context, event events.Event) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Publish(ctx, event); err != nil {
		s.logger.Error("publish event %s for booking %s failed: %v", event.Kind, event.BookingReference, err)
	}
}
