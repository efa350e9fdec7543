package domain

import "time"

// Museum represents a museum record in the catalog
type Museum struct {
	ID          string
	Name        string
	Description string
	Location    Location
	Timings     Timings
	Tickets     map[string]Ticket // ключ - идентификатор типа билета (general, student, ...)
	Shows       []Show
	Facilities  []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location represents the physical address of a museum
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Timings represents opening hours and weekly holidays
type Timings struct {
	Opening  string   `json:"opening"`
	Closing  string   `json:"closing"`
	Holidays []string `json:"holidays"`
}

// Ticket represents a single ticket type offered by a museum
type Ticket struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Show represents a show or exhibition hosted by a museum
// Price может быть числом или свободным текстом ("Free"), поэтому строка
type Show struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
	Price       string `json:"price"`
}

// TicketByID returns the ticket type with the given id, if present
func (m *Museum) TicketByID(ticketTypeID string) (Ticket, bool) {
	t, ok := m.Tickets[ticketTypeID]
	return t, ok
}

// HasShows returns true if the museum currently hosts any shows
func (m *Museum) HasShows() bool {
	return len(m.Shows) > 0
}
