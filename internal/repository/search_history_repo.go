package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"trip-orchestrator/internal/domain"
)

// SearchHistoryRepository persiste el historial de búsquedas para analítica.
type SearchHistoryRepository interface {
	Save(ctx context.Context, record domain.SearchRecord) error
	Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error)
}

type PgSearchHistoryRepository struct {
	pool *pgxpool.Pool
}

func NewPgSearchHistoryRepository(pool *pgxpool.Pool) *PgSearchHistoryRepository {
	return &PgSearchHistoryRepository{pool: pool}
}

func (r *PgSearchHistoryRepository) Save(ctx context.Context, record domain.SearchRecord) error {
	const query = `
		INSERT INTO search_history (id, origin, destination, departure_date, return_date, persona, target_budget, result_count, top_confidence, top_tag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.Origin,
		record.Destination,
		record.DepartureDate,
		record.ReturnDate,
		record.Persona,
		record.TargetBudget,
		record.ResultCount,
		record.TopConfidence,
		record.TopTag,
		record.CreatedAt,
	)
	return err
}

func (r *PgSearchHistoryRepository) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, origin, destination, departure_date, return_date, persona, target_budget, result_count, top_confidence, top_tag, created_at
		FROM search_history
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.SearchRecord
	for rows.Next() {
		var rec domain.SearchRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Origin,
			&rec.Destination,
			&rec.DepartureDate,
			&rec.ReturnDate,
			&rec.Persona,
			&rec.TargetBudget,
			&rec.ResultCount,
			&rec.TopConfidence,
			&rec.TopTag,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ErrHistoryDisabled indica que el servicio corre sin base de datos.
var ErrHistoryDisabled = errors.New("search history disabled")

// DisabledSearchHistory se usa cuando no hay DATABASE_URL configurada:
// descarta escrituras y no devuelve historial.
type DisabledSearchHistory struct{}

func NewDisabledSearchHistory() *DisabledSearchHistory {
	return &DisabledSearchHistory{}
}

func (*DisabledSearchHistory) Save(_ context.Context, _ domain.SearchRecord) error {
	return nil
}

func (*DisabledSearchHistory) Recent(_ context.Context, _ int) ([]domain.SearchRecord, error) {
	return nil, ErrHistoryDisabled
}
