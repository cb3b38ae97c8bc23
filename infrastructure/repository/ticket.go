package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/automateboss/ops-portal-api/infrastructure/database/postgres"
	"github.com/automateboss/ops-portal-api/internal/domain"
	"github.com/automateboss/ops-portal-api/pkg/utils"
)

const (
	ticketsTable  = "tickets"
	messagesTable = "messages"
)

type TicketRepository interface {
	CreateWithMessage(ctx context.Context, ticket *domain.Ticket, messageBody *string) (*domain.Ticket, error)
}

type ticketRepository struct {
	conn *postgres.Connection
}

func NewTicketRepository(conn *postgres.Connection) TicketRepository {
	return &ticketRepository{
		conn: conn,
	}
}

// CreateWithMessage creates the ticket and, when a body is supplied,
// its first thread message in one transaction.
func (t *ticketRepository) CreateWithMessage(ctx context.Context, ticket *domain.Ticket, messageBody *string) (*domain.Ticket, error) {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	if ticket.Reference == "" {
		reference, err := utils.GenerateReference()
		if err != nil {
			return nil, err
		}
		ticket.Reference = reference
	}

	err := t.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		ticketSQL, ticketArgs, err := squirrel.
			Insert(ticketsTable).
			Columns("id", "organization_id", "subject", "ticket_type", "status", "reference", "created_by", "created_at").
			Values(ticket.ID, ticket.OrganizationID, ticket.Subject, ticket.TicketType, ticket.Status, ticket.Reference, ticket.CreatedBy, squirrel.Expr("now()")).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ticketSQL, ticketArgs...); err != nil {
			return err
		}

		if messageBody == nil || *messageBody == "" {
			return nil
		}

		messageSQL, messageArgs, err := squirrel.
			Insert(messagesTable).
			Columns("id", "ticket_id", "content", "sender_id", "created_at").
			Values(uuid.NewString(), ticket.ID, *messageBody, ticket.CreatedBy, squirrel.Expr("now()")).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(messageSQL, messageArgs...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}
