package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type queueKind int

const (
	queueUnknown queueKind = iota
	queueScalar
	queueBreakdown
)

// QueueEntry пара ключ-значение структурированной позиции в очереди
type QueueEntry struct {
	Key   string
	Value string
}

// QueuePosition позиция услуги в очереди
// Удаленный API отдает позицию либо скаляром (число/строка), либо
// структурированной разбивкой (объект); до резолва позиция неизвестна.
// Единая точка рендеринга вместо type-sniffing в каждом месте отображения
type QueuePosition struct {
	kind      queueKind
	scalar    string
	breakdown []QueueEntry
}

// UnknownQueuePosition возвращает нерезолвленную позицию
func UnknownQueuePosition() QueuePosition {
	return QueuePosition{kind: queueUnknown}
}

// ScalarQueuePosition возвращает скалярную позицию
func ScalarQueuePosition(value string) QueuePosition {
	return QueuePosition{kind: queueScalar, scalar: value}
}

// BreakdownQueuePosition возвращает структурированную позицию
// Записи сортируются по ключу для детерминированного рендеринга
func BreakdownQueuePosition(entries []QueueEntry) QueuePosition {
	sorted := make([]QueueEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return QueuePosition{kind: queueBreakdown, breakdown: sorted}
}

// IsResolved возвращает true, если позиция резолвлена
func (q QueuePosition) IsResolved() bool {
	return q.kind != queueUnknown
}

// Display возвращает строку для отображения
// Разбивка рендерится как "key: value, key: value"; для нерезолвленной
// позиции возвращается fallback
func (q QueuePosition) Display(fallback string) string {
	switch q.kind {
	case queueScalar:
		return q.scalar
	case queueBreakdown:
		parts := make([]string, len(q.breakdown))
		for i, e := range q.breakdown {
			parts[i] = fmt.Sprintf("%s: %s", e.Key, e.Value)
		}
		return strings.Join(parts, ", ")
	default:
		return fallback
	}
}

// UnmarshalJSON принимает число, строку, объект или null
func (q *QueuePosition) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*q = UnknownQueuePosition()
		return nil
	}

	if s[0] == '{' {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid queue position object: %v", err)
		}
		entries := make([]QueueEntry, 0, len(raw))
		for k, v := range raw {
			entries = append(entries, QueueEntry{Key: k, Value: scalarToString(v)})
		}
		*q = BreakdownQueuePosition(entries)
		return nil
	}

	*q = ScalarQueuePosition(scalarToString(data))
	return nil
}

// MarshalJSON сериализует позицию в исходную форму wire-формата
func (q QueuePosition) MarshalJSON() ([]byte, error) {
	switch q.kind {
	case queueScalar:
		return json.Marshal(q.scalar)
	case queueBreakdown:
		m := make(map[string]string, len(q.breakdown))
		for _, e := range q.breakdown {
			m[e.Key] = e.Value
		}
		return json.Marshal(m)
	default:
		return []byte("null"), nil
	}
}

func scalarToString(data []byte) string {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return str
	}
	return strings.TrimSpace(string(data))
}
