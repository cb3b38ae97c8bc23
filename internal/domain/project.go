package domain

import "time"

type ProjectType string

const (
	ProjectOnboarding      ProjectType = "onboarding"
	ProjectA2PVerification ProjectType = "a2p_verification"
	ProjectWebsiteBuild    ProjectType = "website_build"
)

// DefaultProjectTypes is the pipeline every new organization is
// enrolled into, in board order.
func DefaultProjectTypes() []ProjectType {
	return []ProjectType{ProjectOnboarding, ProjectA2PVerification, ProjectWebsiteBuild}
}

type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "pending"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
)

// Project is one workflow lane on an organization's pipeline board.
// CurrentStepID is a weak reference into project_steps and stays nil
// for project types with no steps defined.
type Project struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organization_id"`
	ProjectType    ProjectType   `json:"project_type"`
	Status         ProjectStatus `json:"status"`
	CurrentStepID  *string       `json:"current_step_id"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ProjectStep is static reference data describing one step of a
// project type's workflow. Rows are managed outside this service.
type ProjectStep struct {
	ID          string      `json:"id"`
	ProjectType ProjectType `json:"project_type"`
	StepOrder   int         `json:"step_order"`
	StepName    string      `json:"step_name"`
	Description string      `json:"description"`
	VideoURL    *string     `json:"video_url"`
}

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
)

// ProjectStepProgress tracks one project's position on one step. One
// row per (project, step), bulk-created when the project is seeded.
type ProjectStepProgress struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	StepID      string     `json:"step_id"`
	Status      StepStatus `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
}
