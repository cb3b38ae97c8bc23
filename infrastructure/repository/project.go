package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/automateboss/ops-portal-api/infrastructure/database/postgres"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

const (
	projectsTable     = "projects"
	projectStepsTable = "project_steps"
	stepProgressTable = "project_step_progress"
)

type ProjectRepository interface {
	ListTypesByOrganization(organizationID string) ([]domain.ProjectType, error)
	CreateProjects(projects []*domain.Project) ([]*domain.Project, error)
	ListStepsByType(projectType domain.ProjectType) ([]*domain.ProjectStep, error)
	CreateStepProgress(rows []*domain.ProjectStepProgress) error
	SetCurrentStep(projectID, stepID string) error
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (p *projectRepository) ListTypesByOrganization(organizationID string) ([]domain.ProjectType, error) {
	typesSQL, typesArgs, err := squirrel.
		Select("project_type").
		From(projectsTable).
		Where(squirrel.Eq{"organization_id": organizationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.conn.Query(typesSQL, typesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.ProjectType, 0)

	for rows.Next() {
		var projectType domain.ProjectType
		if err := rows.Scan(&projectType); err != nil {
			return nil, err
		}
		types = append(types, projectType)
	}

	return types, rows.Err()
}

// CreateProjects bulk-inserts the given projects, assigning ids
// client-side so the caller gets them back in input order.
func (p *projectRepository) CreateProjects(projects []*domain.Project) ([]*domain.Project, error) {
	if len(projects) == 0 {
		return nil, nil
	}

	builder := squirrel.
		Insert(projectsTable).
		Columns("id", "organization_id", "project_type", "status", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, project := range projects {
		if project.ID == "" {
			project.ID = uuid.NewString()
		}
		builder = builder.Values(project.ID, project.OrganizationID, project.ProjectType, project.Status, squirrel.Expr("now()"))
	}

	insertSQL, insertArgs, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := p.conn.Exec(insertSQL, insertArgs...); err != nil {
		return nil, err
	}

	return projects, nil
}

func (p *projectRepository) ListStepsByType(projectType domain.ProjectType) ([]*domain.ProjectStep, error) {
	stepsSQL, stepsArgs, err := squirrel.
		Select("id, project_type, step_order, step_name, description, video_url").
		From(projectStepsTable).
		Where(squirrel.Eq{"project_type": projectType}).
		OrderBy("step_order ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.conn.Query(stepsSQL, stepsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	steps := make([]*domain.ProjectStep, 0)

	for rows.Next() {
		step := &domain.ProjectStep{}
		if err := rows.Scan(
			&step.ID,
			&step.ProjectType,
			&step.StepOrder,
			&step.StepName,
			&step.Description,
			&step.VideoURL,
		); err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return steps, rows.Err()
}

func (p *projectRepository) CreateStepProgress(progressRows []*domain.ProjectStepProgress) error {
	if len(progressRows) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(stepProgressTable).
		Columns("id", "project_id", "step_id", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range progressRows {
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		builder = builder.Values(row.ID, row.ProjectID, row.StepID, row.Status)
	}

	insertSQL, insertArgs, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = p.conn.Exec(insertSQL, insertArgs...)
	return err
}

func (p *projectRepository) SetCurrentStep(projectID, stepID string) error {
	updateSQL, updateArgs, err := squirrel.
		Update(projectsTable).
		Set("current_step_id", stepID).
		Where(squirrel.Eq{"id": projectID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = p.conn.Exec(updateSQL, updateArgs...)
	return err
}
