package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Price цена услуги
// Удаленный API отдает цены то числом, то строкой; нечисловое значение
// декодируется в 0 и никогда не является ошибкой
type Price float64

// UnmarshalJSON принимает число, числовую строку или мусор (мусор -> 0)
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*p = 0
		return nil
	}

	// Числовая строка: "400", "450.50"
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = Price(v)
	return nil
}

// MarshalJSON сериализует цену числом
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// Float64 возвращает значение цены
func (p Price) Float64() float64 {
	return float64(p)
}

// ComputeTotal суммирует цены всех услуг в итоговую стоимость
// Чистая функция: вызывается заново в момент отправки бронирования,
// ранее сохраненный totalPrice не используется
func ComputeTotal(services []ServiceSelection) float64 {
	var total float64
	for _, svc := range services {
		total += svc.ServicePrice.Float64()
	}
	return total
}
