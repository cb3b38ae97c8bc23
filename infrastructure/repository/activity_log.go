package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/automateboss/ops-portal-api/infrastructure/database/postgres"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

const activityLogTable = "activity_log"

type ActivityLogRepository interface {
	Insert(entry *domain.ActivityLogEntry) error
}

type activityLogRepository struct {
	conn *postgres.Connection
}

func NewActivityLogRepository(conn *postgres.Connection) ActivityLogRepository {
	return &activityLogRepository{
		conn: conn,
	}
}

// Insert appends one audit entry. Entries are never updated or
// deleted by this service.
func (a *activityLogRepository) Insert(entry *domain.ActivityLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	insertSQL, insertArgs, err := squirrel.
		Insert(activityLogTable).
		Columns("id", "action", "entity_type", "entity_id", "new_values", "created_at").
		Values(entry.ID, entry.Action, entry.EntityType, entry.EntityID, []byte(entry.NewValues), squirrel.Expr("now()")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = a.conn.Exec(insertSQL, insertArgs...)
	return err
}
