package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"game-media-service/internal/core/domain"
	ports "game-media-service/internal/core/ports/output"
)

// Table: player_score
//   id uuid PK, created_at timestamptz, updated_at timestamptz,
//   player_name text UNIQUE, score bigint

type playerScoreRepo struct {
	pool *pgxpool.Pool
}

func NewPlayerScoreRepository(pool *pgxpool.Pool) ports.PlayerScoreRepository {
	return &playerScoreRepo{pool: pool}
}

func (r *playerScoreRepo) Create(ctx context.Context, score *domain.PlayerScore) error {
	query := `
		INSERT INTO player_score (id, created_at, updated_at, player_name, score)
		VALUES ($1,$2,$3,$4,$5)
	`
	_, err := r.pool.Exec(ctx, query,
		score.ID, score.CreatedAt, score.UpdatedAt, score.PlayerName, score.Score,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrScoreConflict
		}
		return fmt.Errorf("create player score: %w", err)
	}
	return nil
}

func (r *playerScoreRepo) GetByName(ctx context.Context, playerName string) (*domain.PlayerScore, error) {
	query := `
		SELECT id, created_at, updated_at, player_name, score
		FROM player_score
		WHERE player_name = $1
	`
	s := &domain.PlayerScore{}
	err := r.pool.QueryRow(ctx, query, playerName).Scan(
		&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.PlayerName, &s.Score,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScoreNotFound
		}
		return nil, fmt.Errorf("get player score: %w", err)
	}
	return s, nil
}

func (r *playerScoreRepo) UpdateScore(ctx context.Context, playerName string, score int64) error {
	query := `
		UPDATE player_score
		SET score=$1, updated_at=NOW()
		WHERE player_name=$2
	`
	result, err := r.pool.Exec(ctx, query, score, playerName)
	if err != nil {
		return fmt.Errorf("update player score: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrScoreNotFound
	}
	return nil
}

func (r *playerScoreRepo) Delete(ctx context.Context, playerName string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM player_score WHERE player_name = $1`, playerName)
	if err != nil {
		return fmt.Errorf("delete player score: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrScoreNotFound
	}
	return nil
}

func (r *playerScoreRepo) List(ctx context.Context, filter ports.ScoreListFilter) ([]*domain.PlayerScore, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM player_score`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count player scores: %w", err)
	}

	query := `
		SELECT id, created_at, updated_at, player_name, score
		FROM player_score
		ORDER BY score DESC, player_name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list player scores: %w", err)
	}
	defer rows.Close()

	var scores []*domain.PlayerScore
	for rows.Next() {
		s := &domain.PlayerScore{}
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.PlayerName, &s.Score); err != nil {
			return nil, 0, fmt.Errorf("scan player score row: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate player score rows: %w", err)
	}

	return scores, total, nil
}
