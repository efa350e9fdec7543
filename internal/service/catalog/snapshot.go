package catalog

import "github.com/m04kA/SMC-MuseumService/internal/domain"

// Snapshot неизменяемый версионированный срез каталога
// Сессионные операции (чат, checkout) работают с одним снапшотом
// на протяжении всего действия; админские записи порождают новый
// снапшот, а не мутируют существующий
type Snapshot struct {
	version int64
	museums []*domain.Museum
	byID    map[string]*domain.Museum
}

func newSnapshot(version int64, museums []*domain.Museum) *Snapshot {
	byID := make(map[string]*domain.Museum, len(museums))
	for _, m := range museums {
		byID[m.ID] = m
	}
	return &Snapshot{
		version: version,
		museums: museums,
		byID:    byID,
	}
}

// Version возвращает номер версии снапшота
func (s *Snapshot) Version() int64 {
	return s.version
}

// Museums возвращает все музеи снапшота, отсортированные по имени
func (s *Snapshot) Museums() []*domain.Museum {
	return s.museums
}

// MuseumByID возвращает музей по идентификатору
func (s *Snapshot) MuseumByID(id string) (*domain.Museum, bool) {
	m, ok := s.byID[id]
	return m, ok
}

// Len возвращает количество музеев в снапшоте
func (s *Snapshot) Len() int {
	return len(s.museums)
}
