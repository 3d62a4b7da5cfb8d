package draft

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/infra/cache"
)

// Manager реестр сессий флоу бронирования
// Одна сессия = одна вкладка браузера = один черновик
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Store

	cache  Cache
	logger Logger
	ttl    time.Duration
	gauge  SessionGauge
}

// NewManager создает менеджер сессий
// gauge может быть nil, если метрики выключены
func NewManager(c Cache, logger Logger, ttl time.Duration, gauge SessionGauge) *Manager {
	return &Manager{
		sessions: make(map[string]*Store),
		cache:    c,
		logger:   logger,
		ttl:      ttl,
		gauge:    gauge,
	}
}

// CreateSession создает новую сессию с пустым черновиком
// Контакт и способ оплаты засеваются из best-effort кеша, чтобы пережить
// полную перезагрузку страницы; промах кеша не является ошибкой
func (m *Manager) CreateSession(ctx context.Context) *Store {
	sessionID := uuid.NewString()

	var initial domain.BookingDraft
	contactNo, payment, err := m.cache.GetContactDetails(ctx)
	switch {
	case err == nil:
		initial.ContactNumber = contactNo
		if payment.IsValid() {
			initial.PaymentMethod = payment
		}
	case errors.Is(err, cache.ErrCacheMiss):
		// Первый визит - кеш пуст
	default:
		m.logger.Warn("Manager: failed to read contact details from cache: %v", err)
	}

	store := newStore(sessionID, initial, m.cache, m.logger)

	m.mu.Lock()
	m.sessions[sessionID] = store
	m.mu.Unlock()

	if m.gauge != nil {
		m.gauge.Inc()
	}

	m.logger.Info("Manager: created session=%s", sessionID)
	return store
}

// GetSession возвращает сессию по идентификатору
func (m *Manager) GetSession(sessionID string) (*Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	store, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return store, nil
}

// DeleteSession удаляет сессию
func (m *Manager) DeleteSession(sessionID string) {
	m.mu.Lock()
	_, existed := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if existed && m.gauge != nil {
		m.gauge.Dec()
	}
}

// RunSessionCleanup запускает фоновую чистку брошенных сессий
// Сессия с выполняющейся отправкой не удаляется
func (m *Manager) RunSessionCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.logger.Info("Manager: session cleanup started, interval=%s, ttl=%s", interval, m.ttl)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Manager: session cleanup stopped")
			return
		case <-ticker.C:
			m.sweepExpired()
		}
	}
}

func (m *Manager) sweepExpired() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []string
	for id, store := range m.sessions {
		if store.SubmissionState() == domain.SubmissionSubmitting {
			continue
		}
		if store.LastTouched().Before(cutoff) {
			expired = append(expired, id)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		if m.gauge != nil {
			m.gauge.Dec()
		}
		m.logger.Info("Manager: expired session=%s removed", id)
	}
}
