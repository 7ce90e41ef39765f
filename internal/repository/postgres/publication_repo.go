package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type publicationRepository struct {
	db *pgxpool.Pool
}

func NewPublicationRepository(db *pgxpool.Pool) domain.PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) Create(ctx context.Context, p *domain.Publication) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO publications (id, repo_name, url, content_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())`
	_, err := r.db.Exec(ctx, query, p.ID, p.RepoName, p.URL, p.ContentHash)
	return err
}

func (r *publicationRepository) GetByContentHash(ctx context.Context, hash string) (*domain.Publication, error) {
	query := `SELECT id, repo_name, url, content_hash, created_at
		FROM publications WHERE content_hash = $1
		ORDER BY created_at DESC LIMIT 1`

	var p domain.Publication
	err := r.db.QueryRow(ctx, query, hash).Scan(
		&p.ID, &p.RepoName, &p.URL, &p.ContentHash, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
