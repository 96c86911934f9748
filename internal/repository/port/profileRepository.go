package repository

import "context"

// Profile is a user's public profile. Profiles are owned by the external
// account service; this core only reads them.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	ImageURL string `json:"imageUrl"`
	Bio      string `json:"bio,omitempty"`
}

// ProfileRepository reads user public profiles.
type ProfileRepository interface {
	// GetByID fetches one profile. Missing profiles are an error the caller
	// may choose to swallow (e.g. conversation enrichment).
	GetByID(ctx context.Context, id string) (Profile, error)

	// List returns up to limit profiles plus the total count.
	List(ctx context.Context, limit int) ([]Profile, int, error)

	// Search returns profiles whose name or username contains term.
	Search(ctx context.Context, term string, limit int) ([]Profile, int, error)
}
