package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

//go:embed museums.json
var museumsJSON []byte

// Museums возвращает встроенный seed-набор музеев
// Каждый вызов возвращает свежие копии, источник не мутируется
func Museums() ([]*domain.Museum, error) {
	var raw []struct {
		ID          string                   `json:"id"`
		Name        string                   `json:"name"`
		Description string                   `json:"description"`
		Location    domain.Location          `json:"location"`
		Timings     domain.Timings           `json:"timings"`
		Tickets     map[string]domain.Ticket `json:"tickets"`
		Shows       []domain.Show            `json:"shows"`
		Facilities  []string                 `json:"facilities"`
	}

	if err := json.Unmarshal(museumsJSON, &raw); err != nil {
		return nil, fmt.Errorf("seed: failed to parse museums.json: %w", err)
	}

	museums := make([]*domain.Museum, 0, len(raw))
	for _, m := range raw {
		museums = append(museums, &domain.Museum{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Location:    m.Location,
			Timings:     m.Timings,
			Tickets:     m.Tickets,
			Shows:       m.Shows,
			Facilities:  m.Facilities,
		})
	}

	return museums, nil
}
