package pipeline

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/automateboss/ops-portal-api/infrastructure/repository"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

// Seeder enrolls an organization into the default project pipeline.
type Seeder interface {
	SeedDefaults(organizationID string) error
}

type Service struct {
	projectRepo repository.ProjectRepository
}

func NewService(projectRepo repository.ProjectRepository) *Service {
	return &Service{
		projectRepo: projectRepo,
	}
}

// SeedDefaults creates the default projects the organization does not
// have yet, plus their step-progress rows. Idempotent: already-present
// project types are skipped, so repeated invocations create nothing.
//
// The writes are deliberately not wrapped in one transaction; a
// failure partway leaves a project without progress rows, which the
// reconciliation job repairs on its next pass.
func (s *Service) SeedDefaults(organizationID string) error {
	existingTypes, err := s.projectRepo.ListTypesByOrganization(organizationID)
	if err != nil {
		return errors.Wrap(err, "listing existing projects")
	}

	existing := make(map[domain.ProjectType]struct{}, len(existingTypes))
	for _, projectType := range existingTypes {
		existing[projectType] = struct{}{}
	}

	toCreate := make([]*domain.Project, 0)
	for _, projectType := range domain.DefaultProjectTypes() {
		if _, ok := existing[projectType]; ok {
			continue
		}
		toCreate = append(toCreate, &domain.Project{
			OrganizationID: organizationID,
			ProjectType:    projectType,
			Status:         domain.ProjectPending,
		})
	}

	if len(toCreate) == 0 {
		logrus.WithField("organization_id", organizationID).Debug("pipeline: all default projects already present")
		return nil
	}

	created, err := s.projectRepo.CreateProjects(toCreate)
	if err != nil {
		return errors.Wrap(err, "creating default projects")
	}

	for _, project := range created {
		if err := s.seedStepProgress(project); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": organizationID,
		"created":         len(created),
	}).Info("pipeline: default projects seeded")

	return nil
}

// seedStepProgress bulk-creates the pending progress rows for one new
// project and points it at its first step. A project type with no
// steps defined is left without progress rows and with no current
// step; that is a valid state, not an error.
func (s *Service) seedStepProgress(project *domain.Project) error {
	steps, err := s.projectRepo.ListStepsByType(project.ProjectType)
	if err != nil {
		return errors.Wrapf(err, "listing steps for project type %s", project.ProjectType)
	}

	if len(steps) == 0 {
		logrus.WithFields(logrus.Fields{
			"project_id":   project.ID,
			"project_type": project.ProjectType,
		}).Debug("pipeline: project type has no steps defined")
		return nil
	}

	progressRows := make([]*domain.ProjectStepProgress, 0, len(steps))
	for _, step := range steps {
		progressRows = append(progressRows, &domain.ProjectStepProgress{
			ProjectID: project.ID,
			StepID:    step.ID,
			Status:    domain.StepPending,
		})
	}

	if err := s.projectRepo.CreateStepProgress(progressRows); err != nil {
		return errors.Wrapf(err, "creating step progress for project %s", project.ID)
	}

	if err := s.projectRepo.SetCurrentStep(project.ID, steps[0].ID); err != nil {
		return errors.Wrapf(err, "setting current step for project %s", project.ID)
	}

	return nil
}
