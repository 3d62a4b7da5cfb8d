package receipt

import (
	"fmt"
	"strings"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

// Текст фиксированных секций квитанции
const (
	titleLine    = "Emperors Lounge Barbershop"
	subtitleLine = "Official Booking Receipt"

	// queuePlaceholder выводится, если позиция так и не резолвлена -
	// отсутствие данных не блокирует выдачу квитанции
	queuePlaceholder = "Loading..."
)

var footerLines = []string{
	"Thank you for choosing Emperors Lounge Barbershop!",
	"Please show this receipt to the counter upon arrival.",
	"If you have any questions or need to modify your booking, feel free to contact us.",
	"This receipt serves as confirmation of your booking.",
}

// Formatter генерирует квитанцию бронирования фиксированной раскладки
// Презентационная трансформация финализированного черновика: единственная
// логика - маппинг способа оплаты в label и рендеринг позиции в очереди
type Formatter struct{}

// NewFormatter создает форматтер квитанций
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Render генерирует текст квитанции по финализированному черновику
// total - свежевычисленная итоговая стоимость (не хранимая в черновике)
func (f *Formatter) Render(d domain.BookingDraft, total float64) string {
	var b strings.Builder

	// Титульный блок
	b.WriteString(titleLine + "\n")
	b.WriteString(subtitleLine + "\n")
	b.WriteString("\n")

	// Клиент
	fmt.Fprintf(&b, "Customer Name: %s\n", d.CustomerName)
	b.WriteString("\n")

	// Блок на каждую услугу, в порядке выбора
	for i, svc := range d.Services {
		fmt.Fprintf(&b, "* Service %d: %s\n", i+1, svc.ServiceName)
		fmt.Fprintf(&b, "  Barber: %s (ID: %s)\n", svc.StaffName, svc.StaffID)
		fmt.Fprintf(&b, "  Queue Position: %s\n", svc.QueuePosition.Display(queuePlaceholder))
		b.WriteString("\n")
	}

	// Детали записи
	fmt.Fprintf(&b, "Date of Appointment: %s\n", d.Date)
	fmt.Fprintf(&b, "Time of Appointment: %s\n", d.Time)
	b.WriteString("\n")

	// Оплата и контакты
	fmt.Fprintf(&b, "Payment Method: %s\n", d.PaymentMethod.Label())
	fmt.Fprintf(&b, "Customer Email: %s\n", d.CustomerEmail)
	fmt.Fprintf(&b, "Contact Number: %s\n", d.ContactNumber)
	fmt.Fprintf(&b, "Total Price: ₱%.2f\n", total)
	b.WriteString("\n")

	for _, line := range footerLines {
		b.WriteString(line + "\n")
	}

	return b.String()
}
