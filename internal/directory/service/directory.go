package service

import (
	"errors"

	directoryerrors "carebook/internal/directory/errors"
	"carebook/internal/directory/repository"
	apperrors "carebook/pkg/errors"
	"carebook/pkg/logger"
	"carebook/pkg/model"
)

type DirectoryService interface {
	List() []model.Provider
	GetByID(id string) (model.Provider, error)
	Search(query string) []model.Provider
}

type directoryService struct {
	repo repository.ProviderRepository
	log  *logger.Logger
}

func NewDirectoryService(repo repository.ProviderRepository, log *logger.Logger) DirectoryService {
	return &directoryService{
		repo: repo,
		log:  log,
	}
}

func (s *directoryService) List() []model.Provider {
	return s.repo.List()
}

// GetByID returns a NOT_FOUND AppError for unknown ids; callers render a
// fallback view for it.
func (s *directoryService) GetByID(id string) (model.Provider, error) {
	provider, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, directoryerrors.ErrNotFound) {
			s.log.Debug("Provider lookup missed", "id", id)
			return model.Provider{}, apperrors.NotFoundWithID("Provider", id)
		}
		return model.Provider{}, apperrors.Internal("Failed to retrieve provider", err)
	}
	return provider, nil
}

func (s *directoryService) Search(query string) []model.Provider {
	results := repository.Filter(query, s.repo.List())
	s.log.Debug("Provider search completed",
		"query", query,
		"count", len(results),
	)
	return results
}
