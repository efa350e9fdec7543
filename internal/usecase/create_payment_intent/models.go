package create_payment_intent

// Request модель запроса на создание платежного намерения
type Request struct {
	MuseumID     string // Идентификатор музея
	TicketTypeID string // Идентификатор типа билета (general, student, ...)
	Quantity     int    // Количество билетов (1..10)
}

// Response модель ответа с созданным платежным намерением
type Response struct {
	PaymentID  string  // Уникальный идентификатор платежа (PAY-XXXXXXXX)
	MuseumID   string  // Идентификатор музея
	TicketName string  // Название типа билета (денормализовано для отображения)
	Quantity   int     // Количество билетов
	Amount     float64 // Сумма к оплате: цена билета x количество
	Currency   string  // Валюта
	Status     string  // Статус намерения (pending)
}
