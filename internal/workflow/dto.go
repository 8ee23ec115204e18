package workflow

import (
	"encoding/json"
	"strconv"

	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/datenorm"
)

// The project resource hands back loosely typed JSON objects; DecodeProject
// is the mapping layer between that wire shape and the typed view model.
// Identifier fields tolerate both JSON numbers and numeric strings, and the
// created date is normalized once here.

func DecodeProject(raw map[string]any) Project {
	return Project{
		ProjectInternalID:   intField(raw, "projectInternalID"),
		CoreProjectID:       intField(raw, "coreProjectID"),
		ProjectName:         stringField(raw, "projectName"),
		ProjectAbbreviation: stringField(raw, "projectAbbreviation"),
		LocationCity:        stringField(raw, "locationCity"),
		CustomerAddress:     stringField(raw, "customerAddress"),
		ProjectStartDate:    stringField(raw, "projectStartDate"),
		ProjectEndDate:      stringField(raw, "projectEndDate"),
		ResourceRequirement: stringField(raw, "resourceRequirement"),
		CustomerID:          intField(raw, "customerID"),
		BUID:                intField(raw, "buid"),
		BillingTypeID:       intField(raw, "billingTypeID"),
		SegmentID:           intField(raw, "segmentID"),
		Status:              constant.ProjectStatus(stringField(raw, "status")),
		GeneratedPID:        stringField(raw, "generatedPID"),
		ApprovalRemarks:     stringField(raw, "approvalRemarks"),
		CreatedDate:         stringField(raw, "createdDate"),
		CreatedTS:           datenorm.CreatedTimestamp(raw),
	}
}

func DecodeProjects(raw []map[string]any) []Project {
	projects := make([]Project, 0, len(raw))
	for _, r := range raw {
		projects = append(projects, DecodeProject(r))
	}
	return projects
}

func stringField(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func intField(raw map[string]any, key string) int64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
