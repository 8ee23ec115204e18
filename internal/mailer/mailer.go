package mailer

import "embed"

const (
	FROM_NAME = "Projects ID Dashboard"
	MAX_RETRY = 3

	PROJECT_APPROVED_TEMPLATE       = "project_approved.tmpl"
	PROJECT_REJECTED_TEMPLATE       = "project_rejected.tmpl"
	PROJECT_NEEDS_REVISION_TEMPLATE = "project_needs_revision.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toUsername, toEmail string, data any) (int, error)
}

// ApprovalMailData feeds the three workflow notification templates.
type ApprovalMailData struct {
	Username     string
	ProjectName  string
	GeneratedPID string
	Remarks      string
}
