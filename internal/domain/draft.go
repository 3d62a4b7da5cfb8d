package domain

// SubmissionState состояние конвейера отправки бронирования
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	// Неуспешная отправка не хранится как отдельное состояние:
	// конвейер сразу возвращается в idle, черновик остается нетронутым
)

// ServiceSelection выбранная услуга в черновике бронирования
type ServiceSelection struct {
	ServiceID     string
	ServiceName   string
	ServicePrice  Price
	StaffID       string
	StaffName     string        // пустая строка до резолва enrichment'ом
	QueuePosition QueuePosition // Unknown до резолва
}

// IsComplete возвращает true, если заполнены все обязательные поля услуги
// StaffName и QueuePosition не обязательны: их заполняет enrichment
func (s *ServiceSelection) IsComplete() bool {
	return s.ServiceID != "" && s.StaffID != "" && s.ServiceName != ""
}

// BookingDraft черновик бронирования
// Единственный мутабельный агрегат сессии; владеет им Draft Store,
// все изменения проходят через патчи
type BookingDraft struct {
	CustomerName  string
	CustomerEmail string
	ContactNumber string

	// Порядок слайса = порядок отображения и порядок в квитанции
	Services []ServiceSelection

	Date          string // YYYY-MM-DD, пустая до шага расписания
	Time          string // display label слота ("1:00 PM"), пустой до выбора
	PaymentMethod PaymentMethod

	// Производное поле; пересчитывается в момент отправки
	TotalPrice float64
}

// HasServices возвращает true, если выбрана хотя бы одна услуга
func (d *BookingDraft) HasServices() bool {
	return len(d.Services) > 0
}

// ServicesComplete возвращает true, если все услуги заполнены полностью
func (d *BookingDraft) ServicesComplete() bool {
	for i := range d.Services {
		if !d.Services[i].IsComplete() {
			return false
		}
	}
	return true
}

// HasCustomerIdentity возвращает true, если указаны имя и email клиента
func (d *BookingDraft) HasCustomerIdentity() bool {
	return d.CustomerName != "" && d.CustomerEmail != ""
}

// HasSchedule возвращает true, если выбраны дата и время
func (d *BookingDraft) HasSchedule() bool {
	return d.Date != "" && d.Time != ""
}

// HasPaymentMethod возвращает true, если выбран поддерживаемый способ оплаты
func (d *BookingDraft) HasPaymentMethod() bool {
	return d.PaymentMethod.IsValid()
}

// Clone возвращает глубокую копию черновика
// Snapshot'ы для конкурентных enrichment-операций не должны разделять
// слайс услуг с канонической копией
func (d *BookingDraft) Clone() BookingDraft {
	clone := *d
	clone.Services = make([]ServiceSelection, len(d.Services))
	copy(clone.Services, d.Services)
	return clone
}

// DraftPatch частичное обновление черновика
// nil-поле означает "не трогать"; Services заменяется целиком (nil = не трогать)
type DraftPatch struct {
	CustomerName  *string
	CustomerEmail *string
	ContactNumber *string
	Date          *string
	Time          *string
	PaymentMethod *PaymentMethod
	Services      []ServiceSelection
}

// Apply применяет патч к черновику (shallow merge по полям верхнего уровня)
func (d *BookingDraft) Apply(p DraftPatch) {
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		d.CustomerEmail = *p.CustomerEmail
	}
	if p.ContactNumber != nil {
		d.ContactNumber = *p.ContactNumber
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Time != nil {
		d.Time = *p.Time
	}
	if p.PaymentMethod != nil {
		d.PaymentMethod = *p.PaymentMethod
	}
	if p.Services != nil {
		d.Services = make([]ServiceSelection, len(p.Services))
		copy(d.Services, p.Services)
	}
}
