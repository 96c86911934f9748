package adapter

import (
	"context"
	"errors"
	"fmt"

	store "snapgram/internal/infrastructure/store/port"
	repository "snapgram/internal/repository/port"
)

// DocProfileRepository reads user profiles from the generic document store.
type DocProfileRepository struct {
	store store.Store
}

func NewDocProfileRepository(s store.Store) *DocProfileRepository {
	return &DocProfileRepository{store: s}
}

// Ensure interface compliance at compile time
var _ repository.ProfileRepository = (*DocProfileRepository)(nil)

func (r *DocProfileRepository) GetByID(ctx context.Context, id string) (repository.Profile, error) {
	if r == nil || r.store == nil {
		return repository.Profile{}, errors.New("DocProfileRepository: nil store")
	}
	doc, err := r.store.Get(ctx, store.CollectionUsers, id)
	if err != nil {
		return repository.Profile{}, fmt.Errorf("profile %s: %w", id, err)
	}
	return docToProfile(doc), nil
}

func (r *DocProfileRepository) List(ctx context.Context, limit int) ([]repository.Profile, int, error) {
	if r == nil || r.store == nil {
		return nil, 0, errors.New("DocProfileRepository: nil store")
	}
	docs, total, err := r.store.List(ctx, store.CollectionUsers, store.Query{
		Order: store.OrderAsc("username"),
		Limit: limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("profile list: %w", err)
	}
	return docsToProfiles(docs), total, nil
}

func (r *DocProfileRepository) Search(ctx context.Context, term string, limit int) ([]repository.Profile, int, error) {
	if r == nil || r.store == nil {
		return nil, 0, errors.New("DocProfileRepository: nil store")
	}
	// The store port exposes one contains-filter per call; search username
	// first and fall back to name when nothing matched.
	docs, total, err := r.store.List(ctx, store.CollectionUsers, store.Query{
		Filters: []store.Filter{store.Contains("username", term)},
		Order:   store.OrderAsc("username"),
		Limit:   limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("profile search: %w", err)
	}
	if len(docs) == 0 {
		docs, total, err = r.store.List(ctx, store.CollectionUsers, store.Query{
			Filters: []store.Filter{store.Contains("name", term)},
			Order:   store.OrderAsc("username"),
			Limit:   limit,
		})
		if err != nil {
			return nil, 0, fmt.Errorf("profile search: %w", err)
		}
	}
	return docsToProfiles(docs), total, nil
}

func docToProfile(doc store.Document) repository.Profile {
	return repository.Profile{
		ID:       doc.ID,
		Name:     doc.String("name"),
		Username: doc.String("username"),
		ImageURL: doc.String("imageUrl"),
		Bio:      doc.String("bio"),
	}
}

func docsToProfiles(docs []store.Document) []repository.Profile {
	profiles := make([]repository.Profile, 0, len(docs))
	for _, doc := range docs {
		profiles = append(profiles, docToProfile(doc))
	}
	return profiles
}
