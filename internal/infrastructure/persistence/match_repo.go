package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/pkg/errcodes"
)

const matchColumns = `
	m.id, m.deal_id, m.buyer_id, m.match_score, m.status, m.notified_at,
	m.viewed_at, m.interested_at, m.rejected_at, m.notes, m.created_at, m.updated_at`

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// CreateIfAbsent вставляет совпадение, если пары (deal_id, buyer_id) ещё нет.
// Проверка и вставка атомарны за счёт уникального индекса.
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, m *entity.Match) (bool, error) {
	query := `
		INSERT INTO matches (deal_id, buyer_id, match_score, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (deal_id, buyer_id) DO NOTHING
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query, m.DealID, m.BuyerID, m.MatchScore, m.Status.String(), m.Notes).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to insert match")
	}

	return true, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (*entity.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches m WHERE m.id = $1`

	var schema matchSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.MatchNotFound, "match not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get match")
	}

	m := schema.toDomain()
	return &m, nil
}

// Update сохраняет статус, метки времени и заметки.
func (r *MatchRepository) Update(ctx context.Context, m *entity.Match) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE matches SET
				status = $1,
				notified_at = $2,
				viewed_at = $3,
				interested_at = $4,
				rejected_at = $5,
				notes = $6,
				updated_at = NOW()
			WHERE id = $7
			RETURNING updated_at`

		err := tx.QueryRowxContext(ctx, query,
			m.Status.String(),
			nullTime(m.NotifiedAt),
			nullTime(m.ViewedAt),
			nullTime(m.InterestedAt),
			nullTime(m.RejectedAt),
			m.Notes,
			m.ID,
		).Scan(&m.UpdatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewError(errcodes.MatchNotFound, "match not found")
		}
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update match")
		}

		return nil
	})
}

// ListByDeal возвращает совпадения сделки с данными покупателей.
func (r *MatchRepository) ListByDeal(ctx context.Context, dealID int64) ([]entity.MatchView, error) {
	query := `
		SELECT ` + matchColumns + `, b.name AS buyer_name, b.email AS buyer_email
		FROM matches m
		JOIN buyers b ON b.id = m.buyer_id
		WHERE m.deal_id = $1
		ORDER BY m.match_score DESC, m.id`

	return r.selectViews(ctx, query, dealID)
}

// ListByBuyer возвращает совпадения покупателя с данными сделок.
func (r *MatchRepository) ListByBuyer(ctx context.Context, buyerID int64, filter entity.MatchFilter) ([]entity.MatchView, error) {
	args := []any{buyerID}
	where := []string{"m.buyer_id = $1"}

	if filter.Status != "" {
		args = append(args, filter.Status.String())
		where = append(where, fmt.Sprintf("m.status = $%d", len(args)))
	}
	if filter.MinScore != nil {
		args = append(args, *filter.MinScore)
		where = append(where, fmt.Sprintf("m.match_score >= $%d", len(args)))
	}

	args = append(args, filter.Limit)
	query := `
		SELECT ` + matchColumns + `, d.title, d.price, d.ai_score, d.category, d.location
		FROM matches m
		JOIN deals d ON d.id = m.deal_id
		WHERE ` + strings.Join(where, " AND ") + fmt.Sprintf(`
		ORDER BY m.created_at DESC
		LIMIT $%d`, len(args))

	return r.selectViews(ctx, query, args...)
}

func (r *MatchRepository) List(ctx context.Context, filter entity.MatchFilter) ([]entity.MatchView, error) {
	var (
		where []string
		args  []any
	)

	if filter.Status != "" {
		args = append(args, filter.Status.String())
		where = append(where, fmt.Sprintf("m.status = $%d", len(args)))
	}
	if filter.MinScore != nil {
		args = append(args, *filter.MinScore)
		where = append(where, fmt.Sprintf("m.match_score >= $%d", len(args)))
	}

	query := `SELECT ` + matchColumns + ` FROM matches m`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(` ORDER BY m.match_score DESC, m.created_at DESC LIMIT $%d`, len(args))

	return r.selectViews(ctx, query, args...)
}

// CountByStatus возвращает число совпадений в каждом статусе.
func (r *MatchRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}

	query := `SELECT status, COUNT(*) AS count FROM matches GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to count matches")
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *MatchRepository) selectViews(ctx context.Context, query string, args ...any) ([]entity.MatchView, error) {
	var schemas []matchViewSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list matches")
	}

	views := make([]entity.MatchView, 0, len(schemas))
	for i := range schemas {
		views = append(views, schemas[i].toDomain())
	}

	return views, nil
}
