package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/automateboss/ops-portal-api/infrastructure/database/postgres"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

const trailerRequestsTable = "trailer_requests"

type TrailerRequestRepository interface {
	Create(request *domain.TrailerRequest) (*domain.TrailerRequest, error)
}

type trailerRequestRepository struct {
	conn *postgres.Connection
}

func NewTrailerRequestRepository(conn *postgres.Connection) TrailerRequestRepository {
	return &trailerRequestRepository{
		conn: conn,
	}
}

func (t *trailerRequestRepository) Create(request *domain.TrailerRequest) (*domain.TrailerRequest, error) {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	insertSQL, insertArgs, err := squirrel.
		Insert(trailerRequestsTable).
		Columns("id", "organization_id", "status", "make", "model", "source", "created_at").
		Values(request.ID, request.OrganizationID, request.Status, request.Make, request.Model, request.Source, squirrel.Expr("now()")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := t.conn.Exec(insertSQL, insertArgs...); err != nil {
		return nil, err
	}

	return request, nil
}
