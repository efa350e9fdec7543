package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// Service сервис каталога музеев
// Держит в памяти актуальный снапшот и перестраивает его после записей
type Service struct {
	repo   MuseumRepository
	seed   SeedSource
	logger Logger

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo MuseumRepository, seed SeedSource, logger Logger) *Service {
	return &Service{
		repo:     repo,
		seed:     seed,
		logger:   logger,
		snapshot: newSnapshot(0, nil),
	}
}

// Load перечитывает каталог из хранилища и публикует новый снапшот
func (s *Service) Load(ctx context.Context) error {
	museums, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Catalog.Load: failed to list museums: %v", err)
		return fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	version := s.snapshot.version + 1
	s.snapshot = newSnapshot(version, museums)
	s.mu.Unlock()

	s.logger.Info("Catalog.Load: published snapshot version=%d with %d museums", version, len(museums))
	return nil
}

// Snapshot возвращает текущий снапшот каталога
func (s *Service) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// GetMuseum возвращает музей по идентификатору из текущего снапшота
func (s *Service) GetMuseum(ctx context.Context, id string) (*domain.Museum, error) {
	museum, ok := s.Snapshot().MuseumByID(id)
	if !ok {
		s.logger.Warn("Catalog.GetMuseum: museum id=%s not found", id)
		return nil, ErrMuseumNotFound
	}
	return museum, nil
}

// ListMuseums возвращает все музеи текущего снапшота
func (s *Service) ListMuseums(ctx context.Context) ([]*domain.Museum, error) {
	return s.Snapshot().Museums(), nil
}

// UpsertMuseum создает или полностью заменяет запись музея
// и публикует новый снапшот каталога
func (s *Service) UpsertMuseum(ctx context.Context, museum *domain.Museum) (*domain.Museum, error) {
	if err := validateMuseum(museum); err != nil {
		s.logger.Warn("Catalog.UpsertMuseum: validation failed for id=%s: %v", museum.ID, err)
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, museum)
	if err != nil {
		s.logger.Error("Catalog.UpsertMuseum: repository error for id=%s: %v", museum.ID, err)
		return nil, fmt.Errorf("%w: UpsertMuseum - repository error: %v", ErrInternal, err)
	}

	if err := s.Load(ctx); err != nil {
		// Запись прошла, но снапшот не обновился - каталог устарел до
		// следующей успешной перезагрузки
		s.logger.Error("Catalog.UpsertMuseum: failed to refresh snapshot: %v", err)
		return nil, err
	}

	s.logger.Info("Catalog.UpsertMuseum: museum id=%s saved", saved.ID)
	return saved, nil
}

// ImportResult результат bulk-импорта seed-данных
type ImportResult struct {
	Imported int
	Failed   int
	Details  []ImportRecord
}

// ImportRecord результат импорта одной записи
type ImportRecord struct {
	ID      string
	Name    string
	Success bool
	Error   string
}

// ImportSeed загружает встроенный seed-набор музеев
// Ошибки отдельных записей не прерывают импорт остальных
func (s *Service) ImportSeed(ctx context.Context) (*ImportResult, error) {
	museums, err := s.seed()
	if err != nil {
		s.logger.Error("Catalog.ImportSeed: failed to read seed data: %v", err)
		return nil, fmt.Errorf("%w: ImportSeed - seed source: %v", ErrInternal, err)
	}

	result := &ImportResult{Details: make([]ImportRecord, 0, len(museums))}

	for _, museum := range museums {
		record := ImportRecord{ID: museum.ID, Name: museum.Name}

		if _, err := s.repo.Upsert(ctx, museum); err != nil {
			s.logger.Error("Catalog.ImportSeed: failed to import museum id=%s: %v", museum.ID, err)
			record.Error = err.Error()
			result.Failed++
		} else {
			record.Success = true
			result.Imported++
		}

		result.Details = append(result.Details, record)
	}

	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Catalog.ImportSeed: import complete, %d imported, %d failed", result.Imported, result.Failed)
	return result, nil
}

func validateMuseum(museum *domain.Museum) error {
	if strings.TrimSpace(museum.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidMuseum)
	}
	if strings.TrimSpace(museum.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMuseum)
	}
	for ticketTypeID, ticket := range museum.Tickets {
		if strings.TrimSpace(ticketTypeID) == "" {
			return fmt.Errorf("%w: empty ticket type id", ErrInvalidMuseum)
		}
		if ticket.Price < 0 {
			return fmt.Errorf("%w: ticket %q has negative price", ErrInvalidMuseum, ticketTypeID)
		}
	}
	return nil
}
