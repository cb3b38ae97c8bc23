package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	stripedomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/domain"
	"github.com/automateboss/ops-portal-api/internal/config"
	"github.com/automateboss/ops-portal-api/internal/domain"
	"github.com/automateboss/ops-portal-api/pkg/utils"
)

// Service builds the dashboard report: revenue metrics from the
// subscription provider and risk-classified conversations from the
// CRM, fetched in parallel and combined into one snapshot. Nothing is
// cached; every call hits both providers.
type Service struct {
	cfg           *config.Config
	subscriptions SubscriptionSource
	classifier    *Classifier
	clock         func() time.Time
}

func NewService(
	cfg *config.Config,
	subscriptions SubscriptionSource,
	conversations ConversationSource,
) *Service {
	return &Service{
		cfg:           cfg,
		subscriptions: subscriptions,
		classifier:    NewClassifier(conversations, DefaultRuleSet()),
		clock:         time.Now,
	}
}

// WithRules swaps the keyword policy; used to tune or test the
// classification independently of the pipeline.
func (s *Service) WithRules(rules RuleSet) *Service {
	s.classifier.rules = rules
	return s
}

// WithClock fixes the report clock; used by tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// BuildReport runs the revenue and conversation paths concurrently.
// If either path fails outright the whole report fails; a partial
// report is never returned.
func (s *Service) BuildReport(ctx context.Context) (*domain.DashboardReport, error) {
	now := s.clock()

	var (
		revenue     *domain.RevenueMetrics
		risks       []*domain.ConversationRisk
		totalUnread int
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		revenue, err = s.revenueMetrics(groupCtx, now)
		return err
	})

	group.Go(func() error {
		var err error
		risks, totalUnread, err = s.classifier.Scan(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		logrus.WithError(err).Error("reporting: dashboard report generation failed")
		return nil, err
	}

	report := &domain.DashboardReport{
		Date:         utils.ReportDateLabel(now),
		Revenue:      revenue,
		ChurnRisks:   make([]*domain.ConversationRisk, 0),
		HighPriority: make([]*domain.ConversationRisk, 0),
		Normal:       make([]*domain.ConversationRisk, 0),
		TotalUnread:  totalUnread,
	}

	for _, risk := range risks {
		switch risk.Urgency {
		case domain.RiskChurn:
			report.ChurnRisks = append(report.ChurnRisks, risk)
		case domain.RiskHighPriority:
			report.HighPriority = append(report.HighPriority, risk)
		default:
			report.Normal = append(report.Normal, risk)
		}
	}

	logrus.WithFields(logrus.Fields{
		"churn_risks":   len(report.ChurnRisks),
		"high_priority": len(report.HighPriority),
		"normal":        len(report.Normal),
		"total_unread":  report.TotalUnread,
	}).Info("reporting: dashboard report generated")

	return report, nil
}

// revenueMetrics runs the three subscription walks concurrently and
// folds them into the revenue numbers.
func (s *Service) revenueMetrics(ctx context.Context, now time.Time) (*domain.RevenueMetrics, error) {
	lookbackDays := s.cfg.Report.CanceledLookbackDays
	if lookbackDays <= 0 {
		lookbackDays = 30
	}
	threshold := now.Add(-time.Duration(lookbackDays) * 24 * time.Hour)

	var active, canceled, trialing []stripedomain.Subscription

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		active, err = s.subscriptions.ActiveSubscriptions(groupCtx)
		return err
	})

	group.Go(func() error {
		var err error
		canceled, err = s.subscriptions.RecentlyCanceledSubscriptions(groupCtx, threshold)
		return err
	})

	group.Go(func() error {
		var err error
		trialing, err = s.subscriptions.TrialingSubscriptions(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return ComputeRevenueMetrics(active, canceled, trialing, now), nil
}
