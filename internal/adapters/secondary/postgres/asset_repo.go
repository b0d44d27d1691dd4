package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"game-media-service/internal/core/domain"
	ports "game-media-service/internal/core/ports/output"
)

// Table: media_asset
//   id uuid PK, created_at timestamptz, updated_at timestamptz,
//   kind text, filename text, content_type text, size_bytes bigint,
//   content bytea

type assetRepo struct {
	pool *pgxpool.Pool
}

func NewAssetRepository(pool *pgxpool.Pool) ports.AssetRepository {
	return &assetRepo{pool: pool}
}

func (r *assetRepo) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO media_asset
			(id, created_at, updated_at, kind, filename, content_type, size_bytes, content)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		asset.ID, asset.CreatedAt, asset.UpdatedAt,
		string(asset.Kind), asset.Filename, asset.ContentType,
		asset.SizeBytes, asset.Content,
	)
	if err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	return nil
}

func (r *assetRepo) GetByID(ctx context.Context, kind domain.AssetKind, id uuid.UUID) (*domain.Asset, error) {
	query := `
		SELECT id, created_at, updated_at, kind, filename, content_type, size_bytes
		FROM media_asset
		WHERE id = $1 AND kind = $2
	`
	a := &domain.Asset{}
	err := r.pool.QueryRow(ctx, query, id, string(kind)).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Kind,
		&a.Filename, &a.ContentType, &a.SizeBytes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("get asset by id: %w", err)
	}
	return a, nil
}

func (r *assetRepo) GetContent(ctx context.Context, kind domain.AssetKind, id uuid.UUID) (*domain.Asset, error) {
	query := `
		SELECT id, created_at, updated_at, kind, filename, content_type, size_bytes, content
		FROM media_asset
		WHERE id = $1 AND kind = $2
	`
	a := &domain.Asset{}
	err := r.pool.QueryRow(ctx, query, id, string(kind)).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Kind,
		&a.Filename, &a.ContentType, &a.SizeBytes, &a.Content,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("get asset content: %w", err)
	}
	return a, nil
}

func (r *assetRepo) Replace(ctx context.Context, asset *domain.Asset) error {
	query := `
		UPDATE media_asset
		SET filename=$1, content_type=$2, size_bytes=$3, content=$4, updated_at=NOW()
		WHERE id=$5 AND kind=$6
	`
	result, err := r.pool.Exec(ctx, query,
		asset.Filename, asset.ContentType, asset.SizeBytes, asset.Content,
		asset.ID, string(asset.Kind),
	)
	if err != nil {
		return fmt.Errorf("replace asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

func (r *assetRepo) Delete(ctx context.Context, kind domain.AssetKind, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM media_asset WHERE id = $1 AND kind = $2`, id, string(kind))
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

var assetSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"filename":   true,
	"size_bytes": true,
}

func (r *assetRepo) List(ctx context.Context, filter ports.AssetListFilter) ([]*domain.Asset, int, error) {
	conditions := []string{"kind = $1"}
	args := []interface{}{string(filter.Kind)}
	argPos := 2

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("filename ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM media_asset WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assets: %w", err)
	}

	orderBy := "created_at DESC"
	if assetSortColumns[filter.SortBy] {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("%s %s", filter.SortBy, dir)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, kind, filename, content_type, size_bytes
		FROM media_asset
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		a := &domain.Asset{}
		if err := rows.Scan(
			&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Kind,
			&a.Filename, &a.ContentType, &a.SizeBytes,
		); err != nil {
			return nil, 0, fmt.Errorf("scan asset row: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate asset rows: %w", err)
	}

	return assets, total, nil
}
