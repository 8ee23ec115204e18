package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderApprovalTemplates(t *testing.T) {
	data := ApprovalMailData{
		Username:     "admin1",
		ProjectName:  "Core Platform",
		GeneratedPID: "DSC100-ACPL-25-0001",
		Remarks:      "Budget confirmed",
	}

	tests := []struct {
		template    string
		wantSubject string
		wantInBody  string
	}{
		{PROJECT_APPROVED_TEMPLATE, "Project Core Platform approved", "DSC100-ACPL-25-0001"},
		{PROJECT_REJECTED_TEMPLATE, "Project Core Platform rejected", "Budget confirmed"},
		{PROJECT_NEEDS_REVISION_TEMPLATE, "Project Core Platform needs revision", "generate its PID again"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			subject, body, err := renderTemplate(tt.template, data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, subject)
			assert.Contains(t, body, "admin1")
			assert.Contains(t, body, tt.wantInBody)
		})
	}
}

func TestRenderTemplateUnknownFile(t *testing.T) {
	_, _, err := renderTemplate("missing.tmpl", nil)
	assert.Error(t, err)
}
