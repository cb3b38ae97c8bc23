package ingesting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/automateboss/ops-portal-api/infrastructure/repository/mocks"
	"github.com/automateboss/ops-portal-api/internal/domain"
	pipelinemocks "github.com/automateboss/ops-portal-api/internal/usecases/pipeline/mocks"
)

type ingestorMocks struct {
	organizationRepo   *repomocks.MockOrganizationRepository
	ticketRepo         *repomocks.MockTicketRepository
	trailerRequestRepo *repomocks.MockTrailerRequestRepository
	activityLogRepo    *repomocks.MockActivityLogRepository
	seeder             *pipelinemocks.MockSeeder
}

func newTestService(ctrl *gomock.Controller) (*Service, ingestorMocks) {
	m := ingestorMocks{
		organizationRepo:   repomocks.NewMockOrganizationRepository(ctrl),
		ticketRepo:         repomocks.NewMockTicketRepository(ctrl),
		trailerRequestRepo: repomocks.NewMockTrailerRequestRepository(ctrl),
		activityLogRepo:    repomocks.NewMockActivityLogRepository(ctrl),
		seeder:             pipelinemocks.NewMockSeeder(ctrl),
	}

	service := NewService(
		m.organizationRepo,
		m.ticketRepo,
		m.trailerRequestRepo,
		m.activityLogRepo,
		m.seeder,
	)

	return service, m
}

func TestService_Ingest_RejectsMissingLocationIDBeforeAnyWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations on any repository: the rejection must happen
	// before the activity log or anything else is touched.
	service, _ := newTestService(ctrl)

	err := service.Ingest(context.Background(), []byte(`{"type":"ContactCreated","first_name":"Jane"}`))

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestService_Ingest_RejectsInvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	err := service.Ingest(context.Background(), []byte(`{not json`))

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestService_Ingest_ContactCreatedSyncsAndSeeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	payload := []byte(`{"type":"ContactCreated","locationId":"loc_1","first_name":"Jane","last_name":"Doe"}`)

	m.activityLogRepo.EXPECT().Insert(gomock.Any()).
		DoAndReturn(func(entry *domain.ActivityLogEntry) error {
			assert.Equal(t, domain.ActionWebhookReceived, entry.Action)
			assert.Equal(t, domain.EntityHighLevelEvent, entry.EntityType)
			assert.Equal(t, "loc_1", entry.EntityID)
			return nil
		})
	// No org name on the payload: the fallback is derived from the
	// contact's name.
	m.organizationRepo.EXPECT().UpsertByLocationID("loc_1", "Jane Doe's Org").
		Return(&domain.Organization{ID: "org_1", Name: "Jane Doe's Org"}, nil)
	m.seeder.EXPECT().SeedDefaults("org_1").Return(nil)

	err := service.Ingest(context.Background(), payload)

	require.NoError(t, err)
}

func TestService_Ingest_LocationCreatedUsesProvidedName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	payload := []byte(`{"type":"LocationCreated","locationId":"loc_1","name":"Acme"}`)

	m.activityLogRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.organizationRepo.EXPECT().UpsertByLocationID("loc_1", "Acme").
		Return(&domain.Organization{ID: "org_1", Name: "Acme"}, nil)
	m.seeder.EXPECT().SeedDefaults("org_1").Return(nil)

	err := service.Ingest(context.Background(), payload)

	require.NoError(t, err)
}

func TestService_Ingest_UpsertFailureAbortsWithoutSeeding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	payload := []byte(`{"type":"ContactCreated","locationId":"loc_1","name":"Acme"}`)

	m.activityLogRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.organizationRepo.EXPECT().UpsertByLocationID("loc_1", "Acme").
		Return(nil, errors.New("unique violation"))
	// No SeedDefaults expectation: a failed upsert must not seed.

	err := service.Ingest(context.Background(), payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "syncing organization")
}

func TestService_Ingest_TrailerFormCreatesTrailerRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	payload := []byte(`{"type":"FormSubmitted","locationId":"loc_1","formName":"Trailer Request","Trailer Make":"BigTex","Trailer Model":"35SA"}`)

	m.activityLogRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.organizationRepo.EXPECT().GetByLocationID("loc_1").
		Return(&domain.Organization{ID: "org_acme", Name: "Acme"}, nil)
	m.trailerRequestRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(request *domain.TrailerRequest) (*domain.TrailerRequest, error) {
			assert.Equal(t, "org_acme", request.OrganizationID)
			assert.Equal(t, domain.TrailerRequestPending, request.Status)
			assert.Equal(t, "BigTex", request.Make)
			assert.Equal(t, "35SA", request.Model)
			assert.Equal(t, "highlevel_form", request.Source)
			request.ID = "tr_1"
			return request, nil
		})
	// No ticket expectation: a trailer form never opens a ticket.

	err := service.Ingest(context.Background(), payload)

	require.NoError(t, err)
}

func TestService_Ingest_NonTrailerFormOpensSupportTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	payload := []byte(`{"type":"FormSubmitted","locationId":"loc_1","formName":"Contact Us","subject":"Billing question","message":"My invoice looks wrong"}`)

	m.activityLogRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.organizationRepo.EXPECT().GetByLocationID("loc_1").
		Return(&domain.Organization{ID: "org_acme"}, nil)
	m.ticketRepo.EXPECT().CreateWithMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ticket *domain.Ticket, messageBody *string) (*domain.Ticket, error) {
			assert.Equal(t, "org_acme", ticket.OrganizationID)
			assert.Equal(t, "Billing question", ticket.Subject)
			assert.Equal(t, domain.TicketSupport, ticket.TicketType)
			assert.Equal(t, domain.TicketOpen, ticket.Status)
			assert.Equal(t, domain.SystemSenderID, ticket.CreatedBy)
			require.NotNil(t, messageBody)
			assert.Equal(t, "My invoice looks wrong", *messageBody)
			ticket.ID = "tick_1"
			ticket.Reference = "AB12CD34"
			return ticket, nil
		})

	err := service.Ingest(context.Background(), payload)

	require.NoError(t, err)
}

func TestService_Ingest_FormSubjectFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	payload := []byte(`{"type":"FormSubmitted","locationId":"loc_1","formName":"Contact Us"}`)

	m.activityLogRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.organizationRepo.EXPECT().GetByLocationID("loc_1").
		Return(&domain.Organization{ID: "org_acme"}, nil)
	m.ticketRepo.EXPECT().CreateWithMessage(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, ticket *domain.Ticket, _ *string) (*domain.Ticket, error) {
			assert.Equal(t, "New External Request", ticket.Subject)
			return ticket, nil
		})

	err := service.Ingest(context.Background(), payload)

	require.NoError(t, err)
}

func TestService_Ingest_FormForUnknownOrganizationIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	payload := []byte(`{"type":"FormSubmitted","locationId":"loc_ghost","formName":"Contact Us"}`)

	m.activityLogRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.organizationRepo.EXPECT().GetByLocationID("loc_ghost").Return(nil, nil)
	// Never create organizations implicitly from forms, and never
	// write a ticket for an unknown location.

	err := service.Ingest(context.Background(), payload)

	require.NoError(t, err)
}

func TestService_Ingest_UnknownEventTypeIsLoggedNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	payload := []byte(`{"type":"OpportunityStageUpdate","locationId":"loc_1"}`)

	// Still audited, then dropped.
	m.activityLogRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	err := service.Ingest(context.Background(), payload)

	require.NoError(t, err)
}

func TestService_Ingest_ActivityLogFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	payload := []byte(`{"type":"ContactCreated","locationId":"loc_1","name":"Acme"}`)

	m.activityLogRepo.EXPECT().Insert(gomock.Any()).Return(errors.New("disk full"))
	// Audit is a precondition for dispatch: no upsert may happen.

	err := service.Ingest(context.Background(), payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording webhook event")
}
