package usecase

import (
	"context"

	"go-portfolio-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db *pgxpool.Pool // nil when the publication log is disabled
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
	}

	switch {
	case u.db == nil:
		status["database"] = "unconfigured"
	case u.db.Ping(ctx) != nil:
		status["database"] = "unreachable"
	default:
		status["database"] = "ok"
	}

	if err := redis.HealthCheck(ctx); err != nil {
		status["redis"] = "unavailable"
	} else {
		status["redis"] = "ok"
	}

	return status
}
