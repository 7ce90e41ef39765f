package domain

import (
	"context"
	"time"
)

// Publication records one successfully published site. The content hash is
// the SHA-256 of the rendered HTML and deduplicates retried submissions:
// a matching record short-circuits the pipeline and returns the existing URL.
type Publication struct {
	ID          string    `json:"id"`
	RepoName    string    `json:"repo_name"`
	URL         string    `json:"url"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicationRepository persists the publication log.
type PublicationRepository interface {
	Create(ctx context.Context, p *Publication) error
	// GetByContentHash returns nil, nil when no matching record exists.
	GetByContentHash(ctx context.Context, hash string) (*Publication, error)
}
