package tickets

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// renderReceiptPDF собирает одностраничную квитанцию по записи о билете
// Музей может быть nil, если его удалили из каталога после покупки
func renderReceiptPDF(record *domain.TicketRecord, museum *domain.Museum) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Museum Ticket "+record.BookingID, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Museum E-Ticket", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Booking ID: "+record.BookingID, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	museumName := record.MuseumID
	museumAddress := ""
	if museum != nil {
		museumName = museum.Name
		museumAddress = fmt.Sprintf("%s, %s, %s %s",
			museum.Location.Address, museum.Location.City, museum.Location.State, museum.Location.Pincode)
	}

	rows := [][2]string{
		{"Museum", museumName},
		{"Ticket", fmt.Sprintf("%s x %d", record.TicketName, record.Quantity)},
		{"Visit date", record.VisitDate},
		{"Visitor", record.Visitor.Name},
		{"Email", record.Visitor.Email},
		{"Phone", record.Visitor.Phone},
		{"Payment ID", record.PaymentID},
		{"Payment status", string(record.PaymentStatus)},
		{"Total amount", fmt.Sprintf("%.2f %s", record.TotalAmount, strings.ToUpper(domain.DefaultCurrency))},
		{"Issued at", record.CreatedAt.Format("2006-01-02 15:04:05 MST")},
	}
	if museumAddress != "" {
		rows = append(rows[:1], append([][2]string{{"Address", museumAddress}}, rows[1:]...)...)
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 8, row[1], "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Please present this ticket at the museum entrance along with a valid ID. "+
		"Tickets are non-transferable and valid only for the visit date shown above.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
