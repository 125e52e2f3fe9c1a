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

const buyerColumns = `
	id, name, email, phone, telegram_chat_id, categories, budget_min,
	budget_max, locations, subscription_tier, is_active, created_at, updated_at`

type BuyerRepository struct {
	db *sqlx.DB
}

func NewBuyerRepository(db *sqlx.DB) *BuyerRepository {
	return &BuyerRepository{db: db}
}

func (r *BuyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	query := `
		INSERT INTO buyers (
			name, email, phone, telegram_chat_id, categories, budget_min,
			budget_max, locations, subscription_tier, is_active
		) VALUES (
			:name, :email, :phone, :telegram_chat_id, :categories, :budget_min,
			:budget_max, :locations, :subscription_tier, :is_active
		)
		RETURNING id, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, newBuyerSchema(buyer))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.WrapError(err, errcodes.BuyerEmailTaken, "email already registered")
		}
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert buyer")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil && isUniqueViolation(err) {
			return domain.WrapError(err, errcodes.BuyerEmailTaken, "email already registered")
		}
		return domain.WrapError(rows.Err(), errcodes.InternalServerError, "insert buyer returned no rows")
	}

	if err := rows.Scan(&buyer.ID, &buyer.CreatedAt, &buyer.UpdatedAt); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to scan buyer id")
	}

	return nil
}

func (r *BuyerRepository) GetByID(ctx context.Context, id int64) (*entity.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE id = $1`

	var schema buyerSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.BuyerNotFound, "buyer not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get buyer")
	}

	buyer := schema.toDomain()
	return &buyer, nil
}

func (r *BuyerRepository) Update(ctx context.Context, buyer *entity.Buyer) error {
	query := `
		UPDATE buyers SET
			name = :name,
			phone = :phone,
			telegram_chat_id = :telegram_chat_id,
			categories = :categories,
			budget_min = :budget_min,
			budget_max = :budget_max,
			locations = :locations,
			subscription_tier = :subscription_tier,
			is_active = :is_active,
			updated_at = NOW()
		WHERE id = :id
		RETURNING updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, newBuyerSchema(buyer))
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update buyer")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update buyer")
		}
		return domain.NewError(errcodes.BuyerNotFound, "buyer not found")
	}

	if err := rows.Scan(&buyer.UpdatedAt); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to scan buyer")
	}

	return nil
}

func (r *BuyerRepository) Delete(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db,
		domain.NewError(errcodes.BuyerNotFound, "buyer not found"),
		`DELETE FROM buyers WHERE id = $1`, id,
	)
}

func (r *BuyerRepository) List(ctx context.Context, filter entity.BuyerFilter) ([]entity.Buyer, error) {
	var (
		where []string
		args  []any
	)

	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.SubscriptionTier != "" {
		args = append(args, filter.SubscriptionTier.String())
		where = append(where, fmt.Sprintf("subscription_tier = $%d", len(args)))
	}

	query := `SELECT ` + buyerColumns + ` FROM buyers`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	return r.selectBuyers(ctx, query, args...)
}

// ListActive возвращает активных покупателей в порядке регистрации.
// Этот порядок задаёт разрешение равных оценок при подборе.
func (r *BuyerRepository) ListActive(ctx context.Context) ([]entity.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE is_active = TRUE ORDER BY id`

	return r.selectBuyers(ctx, query)
}

func (r *BuyerRepository) Count(ctx context.Context) (total, active int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM buyers`

	if err := r.db.QueryRowxContext(ctx, query).Scan(&total, &active); err != nil {
		return 0, 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count buyers")
	}

	return total, active, nil
}

func (r *BuyerRepository) selectBuyers(ctx context.Context, query string, args ...any) ([]entity.Buyer, error) {
	var schemas []buyerSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list buyers")
	}

	buyers := make([]entity.Buyer, 0, len(schemas))
	for i := range schemas {
		buyers = append(buyers, schemas[i].toDomain())
	}

	return buyers, nil
}
