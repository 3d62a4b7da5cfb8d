package barbershop_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
	"github.com/m04kA/EL-BookingFlow/pkg/types"
)

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

func newClient(srv *httptest.Server) *barbershop.Client {
	return barbershop.NewClient(srv.URL, 5*time.Second, fakeLogger{})
}

func TestGetStaffDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/staff.php", r.URL.Path)
		json.NewEncoder(w).Encode([]barbershop.StaffMember{
			{StaffID: "b1", StaffName: "Pedro"},
			{StaffID: "b2", StaffName: "Juan"},
		})
	}))
	defer srv.Close()

	staff, err := newClient(srv).GetStaffDirectory(context.Background())

	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "Pedro", staff[0].StaffName)
}

func TestGetStaffDirectory_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(srv).GetStaffDirectory(context.Background())

	assert.ErrorIs(t, err, barbershop.ErrInvalidResponse)
}

func TestGetStaffName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-staff-name.php", r.URL.Path)
		assert.Equal(t, "b1", r.URL.Query().Get("staffID"))
		json.NewEncoder(w).Encode(map[string]string{"staffName": "Pedro"})
	}))
	defer srv.Close()

	name, err := newClient(srv).GetStaffName(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "Pedro", name)
}

func TestGetStaffName_EmptyName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"staffName": ""})
	}))
	defer srv.Close()

	_, err := newClient(srv).GetStaffName(context.Background(), "b1")

	assert.ErrorIs(t, err, barbershop.ErrInvalidResponse)
}

func TestGetServiceByType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/service.php", r.URL.Path)
		assert.Equal(t, "Haircut", r.URL.Query().Get("serviceType"))
		json.NewEncoder(w).Encode([]barbershop.CatalogService{
			{ServiceID: "s1", ServiceType: "Haircut", ServicePrice: 400},
		})
	}))
	defer srv.Close()

	svc, err := newClient(srv).GetServiceByType(context.Background(), "Haircut")

	require.NoError(t, err)
	assert.Equal(t, "s1", svc.ServiceID)
	assert.Equal(t, domain.Price(400), svc.ServicePrice)
}

// Цена может прийти строкой: каталог написан нестрого
func TestGetServiceByType_StringPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"serviceID": "s1", "serviceType": "Haircut", "servicePrice": "400"}]`))
	}))
	defer srv.Close()

	svc, err := newClient(srv).GetServiceByType(context.Background(), "Haircut")

	require.NoError(t, err)
	assert.Equal(t, domain.Price(400), svc.ServicePrice)
}

// Пустой массив каталога означает недоступную услугу, а не ошибку протокола
func TestGetServiceByType_EmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newClient(srv).GetServiceByType(context.Background(), "Massage")

	assert.ErrorIs(t, err, barbershop.ErrServiceUnavailable)
}

func TestGetBookedTimes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/booked-times.php", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2026-09-15", req["date"])

		json.NewEncoder(w).Encode([]string{"9:00 AM", "1:00 PM"})
	}))
	defer srv.Close()

	times, err := newClient(srv).GetBookedTimes(context.Background(), "2026-09-15")

	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM", "1:00 PM"}, times)
}

func TestCheckAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check-availability.php", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2026-09-15", req["date"])
		assert.Equal(t, "13:00", req["time"])

		json.NewEncoder(w).Encode(barbershop.AvailabilityResult{Status: barbershop.StatusAvailable})
	}))
	defer srv.Close()

	slot, err := types.NewTimeStringFromString("13:00")
	require.NoError(t, err)

	result, err := newClient(srv).CheckAvailability(context.Background(), "2026-09-15", slot)

	require.NoError(t, err)
	assert.True(t, result.Available())
}

func TestGetQueuePositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-queue-position.php", r.URL.Path)
		w.Write([]byte(`{"positions": [3, {"Haircut": 1, "Shave": 2}]}`))
	}))
	defer srv.Close()

	services := []barbershop.SubmittedService{
		{ServiceID: "s1", ServiceName: "Haircut"},
		{ServiceID: "s2", ServiceName: "Shave"},
	}
	positions, err := newClient(srv).GetQueuePositions(context.Background(), services)

	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, "3", positions[0].Display("-"))
	assert.Equal(t, "Haircut: 1, Shave: 2", positions[1].Display("-"))
}

// Рассинхронизация длины ответа с запросом считается ошибкой протокола
func TestGetQueuePositions_LengthMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"positions": [3]}`))
	}))
	defer srv.Close()

	services := []barbershop.SubmittedService{
		{ServiceID: "s1", ServiceName: "Haircut"},
		{ServiceID: "s2", ServiceName: "Shave"},
	}
	_, err := newClient(srv).GetQueuePositions(context.Background(), services)

	assert.ErrorIs(t, err, barbershop.ErrInvalidResponse)
}

func TestSubmitBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submit-booking.php", r.URL.Path)

		var sent barbershop.BookingSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, "Juan Dela Cruz", sent.Name)
		assert.Equal(t, "13:00", sent.Time)
		assert.Equal(t, 900.0, sent.TotalPrice)
	}))
	defer srv.Close()

	err := newClient(srv).SubmitBooking(context.Background(), &barbershop.BookingSubmission{
		Name:       "Juan Dela Cruz",
		Email:      "juan@example.com",
		Date:       "2026-09-15",
		Time:       "13:00",
		TotalPrice: 900,
	})

	assert.NoError(t, err)
}

func TestSubmitBooking_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("slot already booked"))
	}))
	defer srv.Close()

	err := newClient(srv).SubmitBooking(context.Background(), &barbershop.BookingSubmission{})

	assert.ErrorIs(t, err, barbershop.ErrSubmitRejected)
	assert.Contains(t, err.Error(), "slot already booked")
}

func TestListBookings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getbook.php", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": [
			{"booking_id": "1", "customer_name": "Juan", "service": "Haircut"},
			{"booking_id": "2", "customer_name": "Maria", "service": "Shave"}
		]}`))
	}))
	defer srv.Close()

	bookings, err := newClient(srv).ListBookings(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "Juan", bookings[0].CustomerName)
}

func TestDeleteBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/deleteBooking.php/42", r.URL.Path)
	}))
	defer srv.Close()

	err := newClient(srv).DeleteBooking(context.Background(), "42")

	assert.NoError(t, err)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newClient(srv).DeleteBooking(context.Background(), "42")

	assert.ErrorIs(t, err, barbershop.ErrBookingNotFound)
}

func TestListPayments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getBookings.php", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": [
			{"bookingID": "1", "customerName": "Juan", "serviceType": "Haircut", "servicePrice": "400", "status": "pending"}
		]}`))
	}))
	defer srv.Close()

	payments, err := newClient(srv).ListPayments(context.Background())

	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, domain.Price(400), payments[0].ServicePrice)
	assert.Equal(t, barbershop.PaymentStatusPending, payments[0].Status)
}

func TestListPayments_RemoteReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "database unavailable", "data": null}`))
	}))
	defer srv.Close()

	_, err := newClient(srv).ListPayments(context.Background())

	assert.ErrorIs(t, err, barbershop.ErrInvalidResponse)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestAcceptPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acceptPayment.php", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "42", req["bookingID"])
		assert.Equal(t, barbershop.PaymentStatusCompleted, req["status"])

		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	err := newClient(srv).AcceptPayment(context.Background(), "42")

	assert.NoError(t, err)
}

func TestCancelPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deleteBooking.php", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, barbershop.PaymentStatusCanceled, req["status"])

		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	err := newClient(srv).CancelPayment(context.Background(), "42")

	assert.NoError(t, err)
}

func TestDeletePayment_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/delete.php", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newClient(srv).DeletePayment(context.Background(), "42")

	assert.ErrorIs(t, err, barbershop.ErrBookingNotFound)
}
