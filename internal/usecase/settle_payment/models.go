package settle_payment

import (
	"time"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// Request модель запроса на проведение платежа
// Поля draft (дата визита, посетитель) путешествуют с клиентом
// от формы бронирования и прикладываются к settlement-запросу
type Request struct {
	PaymentID string         // Идентификатор платежного намерения
	VisitDate string         // Дата визита YYYY-MM-DD
	Visitor   domain.Visitor // Контактные данные посетителя
}

// Response модель ответа с результатом settlement
type Response struct {
	PaymentID string        // Идентификатор платежа
	Status    string        // Итоговый статус (completed | failed)
	Record    *TicketRecord // Финальная запись о билете (при успехе)
}

// TicketRecord терминальный артефакт завершенного бронирования
type TicketRecord struct {
	BookingID     string
	MuseumID      string
	TicketTypeID  string
	TicketName    string
	Quantity      int
	VisitDate     string
	Visitor       domain.Visitor
	PaymentID     string
	PaymentStatus string
	TotalAmount   float64
	CreatedAt     time.Time
}

func fromDomainRecord(record *domain.TicketRecord) *TicketRecord {
	return &TicketRecord{
		BookingID:     record.BookingID,
		MuseumID:      record.MuseumID,
		TicketTypeID:  record.TicketTypeID,
		TicketName:    record.TicketName,
		Quantity:      record.Quantity,
		VisitDate:     record.VisitDate,
		Visitor:       record.Visitor,
		PaymentID:     record.PaymentID,
		PaymentStatus: string(record.PaymentStatus),
		TotalAmount:   record.TotalAmount,
		CreatedAt:     record.CreatedAt,
	}
}
