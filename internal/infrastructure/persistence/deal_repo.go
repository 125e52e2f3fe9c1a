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

const dealColumns = `
	id, title, description, price, market_value, market_value_estimated,
	category, location, source, source_url, image_url, contact_info,
	ai_score, score_factors, urgency_keywords, discount_percentage,
	profit_potential, status, created_at, updated_at`

type DealRepository struct {
	db *sqlx.DB
}

func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

// Create сохраняет сделку и заполняет ID и метки времени.
func (r *DealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	query := `
		INSERT INTO deals (
			title, description, price, market_value, market_value_estimated,
			category, location, source, source_url, image_url, contact_info,
			ai_score, score_factors, urgency_keywords, discount_percentage,
			profit_potential, status
		) VALUES (
			:title, :description, :price, :market_value, :market_value_estimated,
			:category, :location, :source, :source_url, :image_url, :contact_info,
			:ai_score, :score_factors, :urgency_keywords, :discount_percentage,
			:profit_potential, :status
		)
		RETURNING id, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, newDealSchema(deal))
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert deal")
	}
	defer rows.Close()

	if !rows.Next() {
		return domain.WrapError(rows.Err(), errcodes.InternalServerError, "insert deal returned no rows")
	}

	if err := rows.Scan(&deal.ID, &deal.CreatedAt, &deal.UpdatedAt); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to scan deal id")
	}

	return nil
}

func (r *DealRepository) GetByID(ctx context.Context, id int64) (*entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`

	var schema dealSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get deal")
	}

	deal := schema.toDomain()
	return &deal, nil
}

// Update перезаписывает изменяемые поля сделки вместе с оценкой.
func (r *DealRepository) Update(ctx context.Context, deal *entity.Deal) error {
	query := `
		UPDATE deals SET
			title = :title,
			description = :description,
			price = :price,
			market_value = :market_value,
			market_value_estimated = :market_value_estimated,
			category = :category,
			location = :location,
			source = :source,
			source_url = :source_url,
			image_url = :image_url,
			contact_info = :contact_info,
			ai_score = :ai_score,
			score_factors = :score_factors,
			urgency_keywords = :urgency_keywords,
			discount_percentage = :discount_percentage,
			profit_potential = :profit_potential,
			status = :status,
			updated_at = NOW()
		WHERE id = :id
		RETURNING updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, newDealSchema(deal))
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update deal")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update deal")
		}
		return domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	if err := rows.Scan(&deal.UpdatedAt); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to scan deal")
	}

	return nil
}

func (r *DealRepository) Delete(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db,
		domain.NewError(errcodes.DealNotFound, "deal not found"),
		`DELETE FROM deals WHERE id = $1`, id,
	)
}

// List возвращает сделки по фильтру: сначала лучшие, затем новые.
func (r *DealRepository) List(ctx context.Context, filter entity.DealFilter) ([]entity.Deal, error) {
	var (
		where []string
		args  []any
	)

	if filter.Category != "" {
		args = append(args, filter.Category.String())
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.MinScore != nil {
		args = append(args, *filter.MinScore)
		where = append(where, fmt.Sprintf("ai_score >= $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + dealColumns + ` FROM deals`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}

	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY ai_score DESC, created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deals")
	}

	deals := make([]entity.Deal, 0, len(schemas))
	for i := range schemas {
		deals = append(deals, schemas[i].toDomain())
	}

	return deals, nil
}

// Count возвращает число сделок и число сделок с оценкой не ниже minScore.
func (r *DealRepository) Count(ctx context.Context, minScore int) (total, hot int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE ai_score >= $1) FROM deals`

	if err := r.db.QueryRowxContext(ctx, query, minScore).Scan(&total, &hot); err != nil {
		return 0, 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count deals")
	}

	return total, hot, nil
}
