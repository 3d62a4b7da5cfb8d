package cache

import (
	"context"
	"sync"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

// Memory in-memory реализация кеша
// Используется, когда redis выключен в конфигурации; кеш остается
// best-effort и переживает только жизнь процесса
type Memory struct {
	mu        sync.RWMutex
	positions map[string]domain.QueuePosition
	contactNo string
	payment   domain.PaymentMethod
	hasContact bool
}

// NewMemory создает in-memory кеш
func NewMemory() *Memory {
	return &Memory{
		positions: make(map[string]domain.QueuePosition),
	}
}

// GetQueuePosition читает позицию в очереди по имени услуги
func (m *Memory) GetQueuePosition(_ context.Context, serviceName string) (domain.QueuePosition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pos, ok := m.positions[serviceName]
	if !ok {
		return domain.UnknownQueuePosition(), ErrCacheMiss
	}
	return pos, nil
}

// SetQueuePosition сохраняет позицию в очереди по имени услуги
func (m *Memory) SetQueuePosition(_ context.Context, serviceName string, pos domain.QueuePosition) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.positions[serviceName] = pos
	return nil
}

// GetContactDetails читает последние использованные контакт и способ оплаты
func (m *Memory) GetContactDetails(_ context.Context) (string, domain.PaymentMethod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasContact {
		return "", "", ErrCacheMiss
	}
	return m.contactNo, m.payment, nil
}

// SetContactDetails сохраняет последние использованные контакт и способ оплаты
func (m *Memory) SetContactDetails(_ context.Context, contactNo string, payment domain.PaymentMethod) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if contactNo != "" {
		m.contactNo = contactNo
		m.hasContact = true
	}
	if payment != "" {
		m.payment = payment
		m.hasContact = true
	}
	return nil
}
