package domain

import (
	"fmt"
	"strings"
)

// PaymentMethod способ оплаты бронирования
type PaymentMethod string

const (
	// PaymentPayInStore единственный поддерживаемый способ оплаты
	PaymentPayInStore PaymentMethod = "pay_in_store"
)

var paymentLabels = map[PaymentMethod]string{
	PaymentPayInStore: "Pay in Store",
}

// ParsePaymentMethod парсит способ оплаты из внутреннего кода или человекочитаемого label
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case string(PaymentPayInStore), "pay in store":
		return PaymentPayInStore, nil
	}
	return "", fmt.Errorf("unsupported payment method: %q", s)
}

// IsValid возвращает true для поддерживаемого способа оплаты
func (m PaymentMethod) IsValid() bool {
	_, ok := paymentLabels[m]
	return ok
}

// Label возвращает человекочитаемое название способа оплаты
func (m PaymentMethod) Label() string {
	if label, ok := paymentLabels[m]; ok {
		return label
	}
	return string(m)
}
