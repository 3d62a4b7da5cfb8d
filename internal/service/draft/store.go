package draft

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

// Store владелец канонического черновика бронирования одной сессии
// Все изменения идут через Patch и Resolve*-операции под общим мьютексом:
// конкурентно завершающиеся lookup'ы enrichment'а мержатся по полям и не
// могут затереть результат друг друга или пользовательский ввод
type Store struct {
	mu          sync.Mutex
	sessionID   string
	draft       domain.BookingDraft
	state       domain.SubmissionState
	lastTouched time.Time

	cache  Cache
	logger Logger
}

func newStore(sessionID string, initial domain.BookingDraft, cache Cache, logger Logger) *Store {
	return &Store{
		sessionID:   sessionID,
		draft:       initial,
		state:       domain.SubmissionIdle,
		lastTouched: time.Now(),
		cache:       cache,
		logger:      logger,
	}
}

// SessionID возвращает идентификатор сессии
func (s *Store) SessionID() string {
	return s.sessionID
}

// Get возвращает snapshot текущего черновика
func (s *Store) Get() domain.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// Patch применяет частичное обновление к черновику и возвращает новый snapshot
// Валидация здесь не выполняется - это ответственность Step Validators.
// Side effect: контакт и способ оплаты зеркалируются в best-effort кеш
func (s *Store) Patch(ctx context.Context, p domain.DraftPatch) domain.BookingDraft {
	s.mu.Lock()
	s.draft.Apply(p)
	s.lastTouched = time.Now()
	snapshot := s.draft.Clone()
	s.mu.Unlock()

	s.mirrorContactDetails(ctx, p)

	return snapshot
}

// mirrorContactDetails зеркалирует контакт и способ оплаты в кеш
// Ошибка кеша не блокирует патч
func (s *Store) mirrorContactDetails(ctx context.Context, p domain.DraftPatch) {
	if p.ContactNumber == nil && p.PaymentMethod == nil {
		return
	}

	var contactNo string
	if p.ContactNumber != nil {
		contactNo = *p.ContactNumber
	}
	var payment domain.PaymentMethod
	if p.PaymentMethod != nil {
		payment = *p.PaymentMethod
	}

	if err := s.cache.SetContactDetails(ctx, contactNo, payment); err != nil {
		s.logger.Warn("Store: session=%s failed to mirror contact details to cache: %v", s.sessionID, err)
	}
}

// ResolveStaffName записывает имя сотрудника во все услуги с данным staffID
// Аддитивная операция: уже резолвленное непустое имя не затирается,
// пустое входящее имя игнорируется - повторный запуск enrichment'а
// идемпотентен
func (s *Store) ResolveStaffName(staffID, staffName string) {
	if staffName == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.draft.Services {
		if s.draft.Services[i].StaffID == staffID && s.draft.Services[i].StaffName == "" {
			s.draft.Services[i].StaffName = staffName
		}
	}
	s.lastTouched = time.Now()
}

// ResolveQueuePosition записывает позицию в очереди для услуг с данным именем
// Аддитивная операция: нерезолвленная входящая позиция никогда не затирает
// уже резолвленную
func (s *Store) ResolveQueuePosition(serviceName string, pos domain.QueuePosition) {
	if !pos.IsResolved() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.draft.Services {
		if s.draft.Services[i].ServiceName == serviceName {
			s.draft.Services[i].QueuePosition = pos
		}
	}
	s.lastTouched = time.Now()
}

// SubmissionState возвращает текущее состояние конвейера отправки
func (s *Store) SubmissionState() domain.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// TryBeginSubmit переводит конвейер в состояние submitting
// Повторный вызов во время выполняющейся отправки отклоняется -
// одновременно допустима ровно одна отправка
func (s *Store) TryBeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case domain.SubmissionSubmitting:
		return ErrSubmissionInFlight
	case domain.SubmissionSucceeded:
		return ErrAlreadySubmitted
	}

	s.state = domain.SubmissionSubmitting
	s.lastTouched = time.Now()
	return nil
}

// FinishSubmit завершает отправку
// Успех фиксирует итоговую стоимость и переводит в succeeded; черновик
// сохраняется - его читают квитанция и экран подтверждения. Неуспех
// возвращает конвейер в idle, черновик не тронут
func (s *Store) FinishSubmit(success bool, total float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if success {
		s.state = domain.SubmissionSucceeded
		s.draft.TotalPrice = total
	} else {
		s.state = domain.SubmissionIdle
	}
	s.lastTouched = time.Now()
}

// LastTouched возвращает время последнего обращения к сессии
func (s *Store) LastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}
