package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/automateboss/ops-portal-api/infrastructure/database/postgres"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

const organizationsTable = "organizations"

const organizationColumns = "id, highlevel_location_id, name, status, created_at, updated_at"

type OrganizationRepository interface {
	UpsertByLocationID(locationID, name string) (*domain.Organization, error)
	GetByLocationID(locationID string) (*domain.Organization, error)
	ListActive() ([]*domain.Organization, error)
}

type organizationRepository struct {
	conn *postgres.Connection
}

func NewOrganizationRepository(conn *postgres.Connection) OrganizationRepository {
	return &organizationRepository{
		conn: conn,
	}
}

// UpsertByLocationID inserts or refreshes an organization keyed on its
// HighLevel location id. An update refreshes the name and forces the
// status back to active.
func (o *organizationRepository) UpsertByLocationID(locationID, name string) (*domain.Organization, error) {
	upsertSQL, upsertArgs, err := squirrel.
		Insert(organizationsTable).
		Columns("id", "highlevel_location_id", "name", "status", "created_at", "updated_at").
		Values(uuid.NewString(), locationID, name, domain.OrganizationActive, squirrel.Expr("now()"), squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (highlevel_location_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			updated_at = now()
		RETURNING ` + organizationColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := o.conn.QueryRow(upsertSQL, upsertArgs...)

	return o.deserializeOrganization(row)
}

func (o *organizationRepository) GetByLocationID(locationID string) (*domain.Organization, error) {
	selectSQL, selectArgs, err := squirrel.
		Select(organizationColumns).
		From(organizationsTable).
		Where(squirrel.Eq{"highlevel_location_id": locationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := o.conn.QueryRow(selectSQL, selectArgs...)

	org, err := o.deserializeOrganization(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return org, nil
}

func (o *organizationRepository) ListActive() ([]*domain.Organization, error) {
	listSQL, listArgs, err := squirrel.
		Select(organizationColumns).
		From(organizationsTable).
		Where(squirrel.Eq{"status": domain.OrganizationActive}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := o.conn.Query(listSQL, listArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	organizations := make([]*domain.Organization, 0)

	for rows.Next() {
		org := &domain.Organization{}
		if err := rows.Scan(
			&org.ID,
			&org.HighLevelLocationID,
			&org.Name,
			&org.Status,
			&org.CreatedAt,
			&org.UpdatedAt,
		); err != nil {
			return nil, err
		}

		organizations = append(organizations, org)
	}

	return organizations, rows.Err()
}

func (o *organizationRepository) deserializeOrganization(row *sql.Row) (*domain.Organization, error) {
	org := &domain.Organization{}

	if err := row.Scan(
		&org.ID,
		&org.HighLevelLocationID,
		&org.Name,
		&org.Status,
		&org.CreatedAt,
		&org.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return org, nil
}
