package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
	"github.com/m04kA/EL-BookingFlow/internal/service/admin"
)

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeBarberClient struct {
	bookings    []barbershop.BookingRecord
	payments    []barbershop.PaymentRecord
	listErr     error
	deleteErr   error
	paymentErr  error
	deletedIDs  []string
	acceptedIDs []string
	canceledIDs []string
	removedIDs  []string
}

func (c *fakeBarberClient) ListBookings(ctx context.Context) ([]barbershop.BookingRecord, error) {
	return c.bookings, c.listErr
}

func (c *fakeBarberClient) DeleteBooking(ctx context.Context, bookingID string) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.deletedIDs = append(c.deletedIDs, bookingID)
	return nil
}

func (c *fakeBarberClient) ListPayments(ctx context.Context) ([]barbershop.PaymentRecord, error) {
	return c.payments, c.listErr
}

func (c *fakeBarberClient) AcceptPayment(ctx context.Context, bookingID string) error {
	if c.paymentErr != nil {
		return c.paymentErr
	}
	c.acceptedIDs = append(c.acceptedIDs, bookingID)
	return nil
}

func (c *fakeBarberClient) CancelPayment(ctx context.Context, bookingID string) error {
	if c.paymentErr != nil {
		return c.paymentErr
	}
	c.canceledIDs = append(c.canceledIDs, bookingID)
	return nil
}

func (c *fakeBarberClient) DeletePayment(ctx context.Context, bookingID string) error {
	if c.paymentErr != nil {
		return c.paymentErr
	}
	c.removedIDs = append(c.removedIDs, bookingID)
	return nil
}

func TestListBookings_SearchIsCaseInsensitive(t *testing.T) {
	client := &fakeBarberClient{bookings: []barbershop.BookingRecord{
		{BookingID: "1", CustomerName: "Juan Dela Cruz", Service: "Haircut"},
		{BookingID: "2", CustomerName: "Maria Santos", Service: "Shave"},
		{BookingID: "3", CustomerName: "juanito", Service: "Haircut"},
	}}
	svc := admin.NewService(client, fakeLogger{})

	views, err := svc.ListBookings(context.Background(), "JUAN")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "1", views[0].BookingID)
	assert.Equal(t, "3", views[1].BookingID)
}

func TestListBookings_EmptySearchReturnsAll(t *testing.T) {
	client := &fakeBarberClient{bookings: []barbershop.BookingRecord{
		{BookingID: "1", CustomerName: "Juan"},
		{BookingID: "2", CustomerName: "Maria"},
	}}
	svc := admin.NewService(client, fakeLogger{})

	views, err := svc.ListBookings(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, views, 2)
}

// Удаленный API отдает строку платежа на каждую услугу бронирования:
// список дедуплицируется по booking ID, первая запись выигрывает
func TestListPayments_DeduplicatesByBookingID(t *testing.T) {
	client := &fakeBarberClient{payments: []barbershop.PaymentRecord{
		{BookingID: "1", CustomerName: "Juan", ServiceType: "Haircut", ServicePrice: 400, Status: barbershop.PaymentStatusPending},
		{BookingID: "1", CustomerName: "Juan", ServiceType: "Shave", ServicePrice: 500, Status: barbershop.PaymentStatusPending},
		{BookingID: "2", CustomerName: "Maria", ServiceType: "Hair Color", ServicePrice: 700, Status: barbershop.PaymentStatusCompleted},
	}}
	svc := admin.NewService(client, fakeLogger{})

	views, err := svc.ListPayments(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Haircut", views[0].ServiceType)
	assert.Equal(t, "2", views[1].BookingID)
}

func TestListPayments_SearchAfterDeduplication(t *testing.T) {
	client := &fakeBarberClient{payments: []barbershop.PaymentRecord{
		{BookingID: "1", CustomerName: "Juan"},
		{BookingID: "2", CustomerName: "Maria"},
	}}
	svc := admin.NewService(client, fakeLogger{})

	views, err := svc.ListPayments(context.Background(), "mar")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "2", views[0].BookingID)
}

func TestDeleteBooking(t *testing.T) {
	client := &fakeBarberClient{}
	svc := admin.NewService(client, fakeLogger{})

	require.NoError(t, svc.DeleteBooking(context.Background(), "42"))
	assert.Equal(t, []string{"42"}, client.deletedIDs)
}

func TestDeleteBooking_EmptyID(t *testing.T) {
	svc := admin.NewService(&fakeBarberClient{}, fakeLogger{})

	err := svc.DeleteBooking(context.Background(), "")

	assert.ErrorIs(t, err, admin.ErrInvalidInput)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	client := &fakeBarberClient{deleteErr: barbershop.ErrBookingNotFound}
	svc := admin.NewService(client, fakeLogger{})

	err := svc.DeleteBooking(context.Background(), "42")

	assert.ErrorIs(t, err, admin.ErrBookingNotFound)
}

func TestPaymentOperations(t *testing.T) {
	client := &fakeBarberClient{}
	svc := admin.NewService(client, fakeLogger{})
	ctx := context.Background()

	require.NoError(t, svc.AcceptPayment(ctx, "1"))
	require.NoError(t, svc.CancelPayment(ctx, "2"))
	require.NoError(t, svc.DeletePayment(ctx, "3"))

	assert.Equal(t, []string{"1"}, client.acceptedIDs)
	assert.Equal(t, []string{"2"}, client.canceledIDs)
	assert.Equal(t, []string{"3"}, client.removedIDs)
}

func TestPaymentOperations_RemoteFailure(t *testing.T) {
	client := &fakeBarberClient{paymentErr: errors.New("remote down")}
	svc := admin.NewService(client, fakeLogger{})

	err := svc.AcceptPayment(context.Background(), "1")

	assert.ErrorIs(t, err, admin.ErrInternal)
}
