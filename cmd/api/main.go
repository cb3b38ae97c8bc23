package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/automateboss/ops-portal-api/infrastructure/database/postgres"
	"github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel"
	"github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel/highlevelclient"
	"github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe"
	"github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/automateboss/ops-portal-api/infrastructure/repository"
	"github.com/automateboss/ops-portal-api/internal/api"
	"github.com/automateboss/ops-portal-api/internal/config"
	"github.com/automateboss/ops-portal-api/internal/scheduler"
	"github.com/automateboss/ops-portal-api/internal/usecases/ingesting"
	"github.com/automateboss/ops-portal-api/internal/usecases/pipeline"
	"github.com/automateboss/ops-portal-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	organizationRepo := repository.NewOrganizationRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	ticketRepo := repository.NewTicketRepository(pgConn)
	trailerRequestRepo := repository.NewTrailerRequestRepository(pgConn)
	activityLogRepo := repository.NewActivityLogRepository(pgConn)

	stripeClient, err := stripeclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to build Stripe client")
	}
	stripeIntegrator := stripe.New(cfg, stripeClient)

	highLevelClient, err := highlevelclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to build HighLevel client")
	}
	highLevelIntegrator := highlevel.New(cfg, highLevelClient)

	reportService := reporting.NewService(cfg, stripeIntegrator, highLevelIntegrator)

	seeder := pipeline.NewService(projectRepo)

	ingestService := ingesting.NewService(
		organizationRepo,
		ticketRepo,
		trailerRequestRepo,
		activityLogRepo,
		seeder,
	)

	reconcileService := scheduler.NewPipelineReconcileService(organizationRepo, seeder, cfg)
	if err := reconcileService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start pipeline reconciliation scheduler")
	} else {
		logrus.Info("Pipeline reconciliation scheduler started")
	}

	server, err := api.New(cfg, reportService, ingestService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and anchors the working
// directory next to the binary's source so .env resolution works in
// local runs.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
