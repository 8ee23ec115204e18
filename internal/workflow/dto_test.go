package workflow

import (
	"testing"

	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/datenorm"
	"github.com/stretchr/testify/assert"
)

func TestDecodeProjectToleratesNumericStrings(t *testing.T) {
	raw := map[string]any{
		"projectInternalID": "42",
		"coreProjectID":     float64(7),
		"projectName":       "Core Platform",
		"buid":              "5",
		"status":            "PendingPIDGeneration",
		"createdDate":       "/Date(1700000000000)/",
	}

	p := DecodeProject(raw)
	assert.Equal(t, int64(42), p.ProjectInternalID)
	assert.Equal(t, int64(7), p.CoreProjectID)
	assert.Equal(t, int64(5), p.BUID)
	assert.Equal(t, constant.StatusPendingPIDGeneration, p.Status)
	assert.Equal(t, int64(1700000000000), p.CreatedTS)
}

func TestDecodeProjectMissingFieldsAreZero(t *testing.T) {
	p := DecodeProject(map[string]any{})
	assert.Zero(t, p.ProjectInternalID)
	assert.Empty(t, p.ProjectName)
	assert.Empty(t, string(p.Status))
	assert.Zero(t, p.CreatedTS)
}

func TestDecodeProjectPrefersFirstCreatedCandidate(t *testing.T) {
	raw := map[string]any{
		"createdDate":     "2024-01-02",
		"createdDateTime": "2020-01-01",
	}

	p := DecodeProject(raw)
	assert.Equal(t, datenorm.ToEpochMillis("2024-01-02"), p.CreatedTS)
}
