package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/pkg/errcodes"
)

type NotificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create пишет запись журнала уведомлений.
func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (match_id, buyer_id, type, channel, content, status, error_message, sent_at)
		VALUES (:match_id, :buyer_id, :type, :channel, :content, :status, :error_message, :sent_at)
		RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, newNotificationSchema(n))
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert notification")
	}
	defer rows.Close()

	if !rows.Next() {
		return domain.WrapError(rows.Err(), errcodes.InternalServerError, "insert notification returned no rows")
	}

	if err := rows.Scan(&n.ID); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to scan notification id")
	}

	return nil
}

func (r *NotificationRepository) ListByMatch(ctx context.Context, matchID int64) ([]entity.Notification, error) {
	query := `
		SELECT id, match_id, buyer_id, type, channel, content, status, error_message, sent_at
		FROM notifications
		WHERE match_id = $1
		ORDER BY id`

	var schemas []notificationSchema
	if err := r.db.SelectContext(ctx, &schemas, query, matchID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list notifications")
	}

	out := make([]entity.Notification, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, s.toDomain())
	}

	return out, nil
}
