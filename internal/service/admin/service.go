package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
	"github.com/m04kA/EL-BookingFlow/internal/service/admin/models"
)

// Service административные операции над бронированиями и платежами
// Тонкая обертка над удаленным API: фильтрация по имени клиента и
// дедупликация платежей выполняются на нашей стороне
type Service struct {
	client BarberClient
	logger Logger
}

// NewService создает административный сервис
func NewService(client BarberClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// ListBookings возвращает бронирования, опционально отфильтрованные
// по подстроке имени клиента (без учета регистра)
func (s *Service) ListBookings(ctx context.Context, search string) ([]models.BookingView, error) {
	s.logger.Info("ListBookings: search=%q", search)

	records, err := s.client.ListBookings(ctx)
	if err != nil {
		s.logger.Error("ListBookings: remote call failed: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - remote call failed: %v", ErrInternal, err)
	}

	query := strings.ToLower(search)
	views := make([]models.BookingView, 0, len(records))
	for _, r := range records {
		if query != "" && !strings.Contains(strings.ToLower(r.CustomerName), query) {
			continue
		}
		views = append(views, models.FromBookingRecord(r))
	}

	s.logger.Info("ListBookings: returned %d of %d bookings", len(views), len(records))
	return views, nil
}

// DeleteBooking удаляет бронирование по ID
func (s *Service) DeleteBooking(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	s.logger.Info("DeleteBooking: booking_id=%s", bookingID)

	if err := s.client.DeleteBooking(ctx, bookingID); err != nil {
		if errors.Is(err, barbershop.ErrBookingNotFound) {
			s.logger.Warn("DeleteBooking: booking_id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteBooking: remote call failed for booking_id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: DeleteBooking - remote call failed: %v", ErrInternal, err)
	}

	return nil
}

// ListPayments возвращает платежи, дедуплицированные по booking ID
// (удаленный API отдает строку на каждую услугу бронирования) и
// опционально отфильтрованные по подстроке имени клиента
func (s *Service) ListPayments(ctx context.Context, search string) ([]models.PaymentView, error) {
	s.logger.Info("ListPayments: search=%q", search)

	records, err := s.client.ListPayments(ctx)
	if err != nil {
		s.logger.Error("ListPayments: remote call failed: %v", err)
		return nil, fmt.Errorf("%w: ListPayments - remote call failed: %v", ErrInternal, err)
	}

	query := strings.ToLower(search)
	seen := make(map[string]bool, len(records))
	views := make([]models.PaymentView, 0, len(records))
	for _, r := range records {
		// Первая запись бронирования выигрывает
		if seen[r.BookingID] {
			continue
		}
		seen[r.BookingID] = true

		if query != "" && !strings.Contains(strings.ToLower(r.CustomerName), query) {
			continue
		}
		views = append(views, models.FromPaymentRecord(r))
	}

	s.logger.Info("ListPayments: returned %d of %d payment records", len(views), len(records))
	return views, nil
}

// AcceptPayment помечает платеж завершенным
func (s *Service) AcceptPayment(ctx context.Context, bookingID string) error {
	return s.updatePayment(ctx, "AcceptPayment", bookingID, s.client.AcceptPayment)
}

// CancelPayment помечает платеж отмененным
func (s *Service) CancelPayment(ctx context.Context, bookingID string) error {
	return s.updatePayment(ctx, "CancelPayment", bookingID, s.client.CancelPayment)
}

// DeletePayment удаляет запись платежа
func (s *Service) DeletePayment(ctx context.Context, bookingID string) error {
	return s.updatePayment(ctx, "DeletePayment", bookingID, s.client.DeletePayment)
}

func (s *Service) updatePayment(
	ctx context.Context,
	op string,
	bookingID string,
	call func(ctx context.Context, bookingID string) error,
) error {
	if bookingID == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	s.logger.Info("%s: booking_id=%s", op, bookingID)

	if err := call(ctx, bookingID); err != nil {
		if errors.Is(err, barbershop.ErrBookingNotFound) {
			s.logger.Warn("%s: booking_id=%s not found", op, bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("%s: remote call failed for booking_id=%s: %v", op, bookingID, err)
		return fmt.Errorf("%w: %s - remote call failed: %v", ErrInternal, op, err)
	}

	return nil
}
