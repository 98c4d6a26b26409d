package repository

import (
	"fmt"
	"strings"

	directoryerrors "carebook/internal/directory/errors"
	"carebook/pkg/model"
)

type ProviderRepository interface {
	List() []model.Provider
	FindByID(id string) (model.Provider, error)
}

// memoryProviderRepository is the read-only provider catalog. It is filled
// once at construction and never mutated afterwards, so reads need no lock.
type memoryProviderRepository struct {
	providers []model.Provider
	byID      map[string]int
}

func NewMemoryProviderRepository(providers []model.Provider) (ProviderRepository, error) {
	repo := &memoryProviderRepository{
		providers: make([]model.Provider, 0, len(providers)),
		byID:      make(map[string]int, len(providers)),
	}

	for _, p := range providers {
		if _, exists := repo.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", directoryerrors.ErrDuplicateID, p.ID)
		}
		repo.byID[p.ID] = len(repo.providers)
		repo.providers = append(repo.providers, cloneProvider(p))
	}

	return repo, nil
}

func (r *memoryProviderRepository) List() []model.Provider {
	out := make([]model.Provider, len(r.providers))
	for i, p := range r.providers {
		out[i] = cloneProvider(p)
	}
	return out
}

func (r *memoryProviderRepository) FindByID(id string) (model.Provider, error) {
	idx, ok := r.byID[id]
	if !ok {
		return model.Provider{}, directoryerrors.ErrNotFound
	}
	return cloneProvider(r.providers[idx]), nil
}

// Filter returns the providers whose name or specialty contains query,
// ignoring case. An empty query returns providers unchanged. Order is kept.
func Filter(query string, providers []model.Provider) []model.Provider {
	if query == "" {
		return providers
	}

	needle := strings.ToLower(query)
	out := make([]model.Provider, 0, len(providers))
	for _, p := range providers {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Specialty), needle) {
			out = append(out, p)
		}
	}
	return out
}

func cloneProvider(p model.Provider) model.Provider {
	if p.AvailableSlots != nil {
		p.AvailableSlots = append(make([]string, 0, len(p.AvailableSlots)), p.AvailableSlots...)
	}
	return p
}
