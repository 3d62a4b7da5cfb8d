package get_available_times

// Request модель запроса доступных слотов
type Request struct {
	Date string // любой поддерживаемый формат даты, нормализуется внутри
}

// Response модель ответа со свободными слотами
type Response struct {
	Date  string   // нормализованная дата YYYY-MM-DD
	Times []string // display labels свободных слотов, в порядке дня
}
