package select_time_slot

// Request модель запроса выбора слота
type Request struct {
	TimeLabel string // display label из фиксированного набора, например "1:00 PM"
}

// Response модель ответа с принятым слотом
type Response struct {
	Date string // нормализованная дата YYYY-MM-DD
	Time string // принятый display label
}
