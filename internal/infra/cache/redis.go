package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

// Ключи кеша
// Позиции в очереди хранятся по имени услуги; контакт и способ оплаты
// хранятся под фиксированными ключами и читаются при создании новой сессии
const (
	keyQueuePositionPrefix = "queue_position:"
	keyLastContactNo       = "last_contact_no"
	keyLastPaymentMethod   = "last_payment_method"
)

// Repository best-effort кеш поверх redis
// Никогда не является авторитетным источником: черновик в Draft Store
// всегда главнее, промах или ошибка кеша не блокируют флоу
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepository создает кеш-репозиторий поверх готового redis-клиента
func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

// GetQueuePosition читает закешированную позицию в очереди по имени услуги
func (r *Repository) GetQueuePosition(ctx context.Context, serviceName string) (domain.QueuePosition, error) {
	raw, err := r.client.Get(ctx, keyQueuePositionPrefix+serviceName).Result()
	if errors.Is(err, redis.Nil) {
		return domain.UnknownQueuePosition(), ErrCacheMiss
	}
	if err != nil {
		return domain.UnknownQueuePosition(), fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var pos domain.QueuePosition
	if err := json.Unmarshal([]byte(raw), &pos); err != nil {
		return domain.UnknownQueuePosition(), fmt.Errorf("%w: corrupted queue position: %v", ErrInternal, err)
	}
	return pos, nil
}

// SetQueuePosition сохраняет позицию в очереди по имени услуги
func (r *Repository) SetQueuePosition(ctx context.Context, serviceName string, pos domain.QueuePosition) error {
	encoded, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := r.client.Set(ctx, keyQueuePositionPrefix+serviceName, encoded, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return nil
}

// GetContactDetails читает последние использованные контакт и способ оплаты
func (r *Repository) GetContactDetails(ctx context.Context) (string, domain.PaymentMethod, error) {
	contactNo, err := r.client.Get(ctx, keyLastContactNo).Result()
	if errors.Is(err, redis.Nil) {
		return "", "", ErrCacheMiss
	}
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInternal, err)
	}

	payment, err := r.client.Get(ctx, keyLastPaymentMethod).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", "", fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return contactNo, domain.PaymentMethod(payment), nil
}

// SetContactDetails сохраняет последние использованные контакт и способ оплаты
func (r *Repository) SetContactDetails(ctx context.Context, contactNo string, payment domain.PaymentMethod) error {
	if contactNo != "" {
		if err := r.client.Set(ctx, keyLastContactNo, contactNo, r.ttl).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	if payment != "" {
		if err := r.client.Set(ctx, keyLastPaymentMethod, string(payment), r.ttl).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return nil
}
