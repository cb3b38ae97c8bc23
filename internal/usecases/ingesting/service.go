package ingesting

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/automateboss/ops-portal-api/infrastructure/repository"
	"github.com/automateboss/ops-portal-api/internal/domain"
	"github.com/automateboss/ops-portal-api/internal/usecases/pipeline"
)

// CRM event types the ingestor dispatches on.
const (
	EventContactCreated  = "ContactCreated"
	EventLocationCreated = "LocationCreated"
	EventFormSubmitted   = "FormSubmitted"
)

const formSourceHighLevel = "highlevel_form"

// Ingestor processes raw CRM webhook payloads.
type Ingestor interface {
	Ingest(ctx context.Context, payload []byte) error
}

type Service struct {
	organizationRepo   repository.OrganizationRepository
	ticketRepo         repository.TicketRepository
	trailerRequestRepo repository.TrailerRequestRepository
	activityLogRepo    repository.ActivityLogRepository
	seeder             pipeline.Seeder
}

func NewService(
	organizationRepo repository.OrganizationRepository,
	ticketRepo repository.TicketRepository,
	trailerRequestRepo repository.TrailerRequestRepository,
	activityLogRepo repository.ActivityLogRepository,
	seeder pipeline.Seeder,
) *Service {
	return &Service{
		organizationRepo:   organizationRepo,
		ticketRepo:         ticketRepo,
		trailerRequestRepo: trailerRequestRepo,
		activityLogRepo:    activityLogRepo,
		seeder:             seeder,
	}
}

// Ingest validates, audits, and dispatches one webhook event. Events
// without a locationId are rejected before anything is written. Every
// event that passes validation is recorded in the activity log before
// its type-specific handler runs, so a handler failure never loses the
// audit trail. Unknown event types are logged no-ops.
func (s *Service) Ingest(ctx context.Context, payload []byte) error {
	if !gjson.ValidBytes(payload) {
		return &domain.ValidationError{Field: "payload", Message: "body is not valid JSON"}
	}

	event := gjson.ParseBytes(payload)
	locationID := event.Get("locationId").String()
	if strings.TrimSpace(locationID) == "" {
		return &domain.ValidationError{Field: "locationId", Message: "locationId is required"}
	}

	eventType := event.Get("type").String()

	if err := s.activityLogRepo.Insert(&domain.ActivityLogEntry{
		Action:     domain.ActionWebhookReceived,
		EntityType: domain.EntityHighLevelEvent,
		EntityID:   locationID,
		NewValues:  payload,
	}); err != nil {
		return errors.Wrap(err, "recording webhook event")
	}

	switch eventType {
	case EventContactCreated, EventLocationCreated:
		return s.syncOrganization(event, locationID)
	case EventFormSubmitted:
		return s.processForm(ctx, event, locationID)
	default:
		logrus.WithFields(logrus.Fields{
			"event_type":  eventType,
			"location_id": locationID,
		}).Info("ingesting: unhandled webhook event type")
		return nil
	}
}

// syncOrganization upserts the organization for the location and seeds
// its default project pipeline. A failed upsert aborts before seeding.
func (s *Service) syncOrganization(event gjson.Result, locationID string) error {
	name := event.Get("name").String()
	if name == "" {
		name = fmt.Sprintf("%s %s's Org",
			event.Get("first_name").String(),
			event.Get("last_name").String(),
		)
	}

	org, err := s.organizationRepo.UpsertByLocationID(locationID, name)
	if err != nil {
		return errors.Wrap(err, "syncing organization")
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": org.ID,
		"location_id":     locationID,
	}).Info("ingesting: organization synced")

	return s.seeder.SeedDefaults(org.ID)
}

// processForm resolves the organization and turns the submission into
// either a trailer request or a support ticket. A form for an unknown
// location is logged and dropped; organizations are never created
// implicitly from forms.
func (s *Service) processForm(ctx context.Context, event gjson.Result, locationID string) error {
	org, err := s.organizationRepo.GetByLocationID(locationID)
	if err != nil {
		return errors.Wrap(err, "resolving organization for form submission")
	}
	if org == nil {
		logrus.WithField("location_id", locationID).
			Warn("ingesting: form submission for unknown organization")
		return nil
	}

	formName := event.Get("formName").String()
	if strings.Contains(strings.ToLower(formName), "trailer") {
		request, err := s.trailerRequestRepo.Create(&domain.TrailerRequest{
			OrganizationID: org.ID,
			Status:         domain.TrailerRequestPending,
			Make:           event.Get("Trailer Make").String(),
			Model:          event.Get("Trailer Model").String(),
			Source:         formSourceHighLevel,
		})
		if err != nil {
			return errors.Wrap(err, "creating trailer request")
		}

		logrus.WithFields(logrus.Fields{
			"trailer_request_id": request.ID,
			"organization_id":    org.ID,
		}).Info("ingesting: trailer request created")

		return nil
	}

	subject := event.Get("subject").String()
	if subject == "" {
		subject = "New External Request"
	}

	var messageBody *string
	if message := event.Get("message").String(); message != "" {
		messageBody = &message
	}

	ticket, err := s.ticketRepo.CreateWithMessage(ctx, &domain.Ticket{
		OrganizationID: org.ID,
		Subject:        subject,
		TicketType:     domain.TicketSupport,
		Status:         domain.TicketOpen,
		CreatedBy:      domain.SystemSenderID,
	}, messageBody)
	if err != nil {
		return errors.Wrap(err, "creating support ticket")
	}

	logrus.WithFields(logrus.Fields{
		"ticket_id":       ticket.ID,
		"reference":       ticket.Reference,
		"organization_id": org.ID,
	}).Info("ingesting: support ticket created")

	return nil
}
