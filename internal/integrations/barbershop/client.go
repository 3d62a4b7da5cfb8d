package barbershop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент удаленного API барбершопа
// Все бизнес-данные (персонал, каталог, занятость слотов, персистентность
// бронирований) живут за этим API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// send выполняет запрос с JSON-телом (body может быть nil)
func (c *Client) send(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	return resp, nil
}

func decodeBody(resp *http.Response, out interface{}) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}

// GetStaffDirectory получает справочник персонала
func (c *Client) GetStaffDirectory(ctx context.Context) ([]StaffMember, error) {
	resp, err := c.send(ctx, http.MethodGet, "/staff.php", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var staff []StaffMember
	if err := decodeBody(resp, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// GetStaffName получает имя сотрудника по его ID
func (c *Client) GetStaffName(ctx context.Context, staffID string) (string, error) {
	endpoint := "/get-staff-name.php?staffID=" + url.QueryEscape(staffID)

	resp, err := c.send(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", unexpectedStatus(resp)
	}

	var body staffNameResponse
	if err := decodeBody(resp, &body); err != nil {
		return "", err
	}
	if body.StaffName == "" {
		return "", fmt.Errorf("%w: empty staff name for staffID=%s", ErrInvalidResponse, staffID)
	}
	return body.StaffName, nil
}

// GetServiceByType получает услугу каталога по типу
// Пустой результат каталога означает, что услуга недоступна
func (c *Client) GetServiceByType(ctx context.Context, serviceType string) (*CatalogService, error) {
	endpoint := "/service.php?serviceType=" + url.QueryEscape(serviceType)

	resp, err := c.send(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var services []CatalogService
	if err := decodeBody(resp, &services); err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrServiceUnavailable, serviceType)
	}
	return &services[0], nil
}

// GetBookedTimes получает занятые слоты на дату (date в формате YYYY-MM-DD)
func (c *Client) GetBookedTimes(ctx context.Context, date string) ([]string, error) {
	resp, err := c.send(ctx, http.MethodPost, "/booked-times.php", bookedTimesRequest{Date: date})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var times []string
	if err := decodeBody(resp, &times); err != nil {
		return nil, err
	}
	return times, nil
}

// CheckAvailability проверяет доступность слота
// date и t уже нормализованы (YYYY-MM-DD / HH:MM)
func (c *Client) CheckAvailability(ctx context.Context, date string, t types.TimeString) (*AvailabilityResult, error) {
	req := availabilityRequest{Date: date, Time: t.String()}

	resp, err := c.send(ctx, http.MethodPost, "/check-availability.php", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var result AvailabilityResult
	if err := decodeBody(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetQueuePositions получает позиции в очереди для услуг
// Позиции возвращаются в порядке входного слайса
func (c *Client) GetQueuePositions(ctx context.Context, services []SubmittedService) ([]domain.QueuePosition, error) {
	resp, err := c.send(ctx, http.MethodPost, "/get-queue-position.php", queuePositionsRequest{Services: services})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var body queuePositionsResponse
	if err := decodeBody(resp, &body); err != nil {
		return nil, err
	}
	if len(body.Positions) != len(services) {
		return nil, fmt.Errorf("%w: expected %d queue positions, got %d",
			ErrInvalidResponse, len(services), len(body.Positions))
	}
	return body.Positions, nil
}

// SubmitBooking отправляет бронирование на персистентность
// Успехом считается только явный статус 200
func (c *Client) SubmitBooking(ctx context.Context, submission *BookingSubmission) error {
	resp, err := c.send(ctx, http.MethodPost, "/submit-booking.php", submission)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status code %d: %s", ErrSubmitRejected, resp.StatusCode, string(body))
	}
	return nil
}

// ListBookings получает список бронирований (административный экран)
func (c *Client) ListBookings(ctx context.Context) ([]BookingRecord, error) {
	resp, err := c.send(ctx, http.MethodGet, "/getbook.php", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var env envelope
	if err := decodeBody(resp, &env); err != nil {
		return nil, err
	}

	var bookings []BookingRecord
	if err := json.Unmarshal(env.Data, &bookings); err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings: %v", ErrInvalidResponse, err)
	}
	return bookings, nil
}

// DeleteBooking удаляет бронирование по ID
func (c *Client) DeleteBooking(ctx context.Context, bookingID string) error {
	resp, err := c.send(ctx, http.MethodDelete, "/deleteBooking.php/"+url.PathEscape(bookingID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrBookingNotFound
	default:
		return unexpectedStatus(resp)
	}
}

// ListPayments получает список платежей (административный экран)
func (c *Client) ListPayments(ctx context.Context) ([]PaymentRecord, error) {
	resp, err := c.send(ctx, http.MethodGet, "/getBookings.php", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var env envelope
	if err := decodeBody(resp, &env); err != nil {
		return nil, err
	}
	if env.Success != nil && !*env.Success {
		return nil, fmt.Errorf("%w: remote API reported failure: %s", ErrInvalidResponse, env.Message)
	}

	var payments []PaymentRecord
	if err := json.Unmarshal(env.Data, &payments); err != nil {
		return nil, fmt.Errorf("%w: failed to decode payments: %v", ErrInvalidResponse, err)
	}
	return payments, nil
}

// AcceptPayment помечает платеж завершенным
func (c *Client) AcceptPayment(ctx context.Context, bookingID string) error {
	req := paymentStatusRequest{BookingID: bookingID, Status: PaymentStatusCompleted}
	return c.updatePayment(ctx, "/acceptPayment.php", req)
}

// CancelPayment помечает платеж отмененным
func (c *Client) CancelPayment(ctx context.Context, bookingID string) error {
	req := paymentStatusRequest{BookingID: bookingID, Status: PaymentStatusCanceled}
	return c.updatePayment(ctx, "/deleteBooking.php", req)
}

// DeletePayment удаляет запись платежа
func (c *Client) DeletePayment(ctx context.Context, bookingID string) error {
	req := paymentStatusRequest{BookingID: bookingID}
	return c.updatePayment(ctx, "/delete.php", req)
}

func (c *Client) updatePayment(ctx context.Context, endpoint string, req paymentStatusRequest) error {
	resp, err := c.send(ctx, http.MethodPost, endpoint, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrBookingNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}

	var env envelope
	if err := decodeBody(resp, &env); err != nil {
		return err
	}
	if env.Success != nil && !*env.Success {
		return fmt.Errorf("%w: remote API reported failure: %s", ErrInvalidResponse, env.Message)
	}
	return nil
}
