package get_museum

import (
	"time"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// MuseumResponse HTTP response model
type MuseumResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Location    domain.Location          `json:"location"`
	Timings     domain.Timings           `json:"timings"`
	Tickets     map[string]domain.Ticket `json:"tickets"`
	Shows       []domain.Show            `json:"shows,omitempty"`
	Facilities  []string                 `json:"facilities,omitempty"`
	CreatedAt   string                   `json:"createdAt"`
	UpdatedAt   string                   `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(m *domain.Museum) *MuseumResponse {
	return &MuseumResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		Timings:     m.Timings,
		Tickets:     m.Tickets,
		Shows:       m.Shows,
		Facilities:  m.Facilities,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
}
