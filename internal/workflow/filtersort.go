package workflow

import (
	"sort"
	"strconv"
	"strings"
)

// Filters are the dashboard's predicate filters. Each set (non-empty) value
// keeps only records whose field stringwise-equals it; filters compose with
// logical AND. Values arrive as strings straight from the query string.
type Filters struct {
	CustomerID    string `form:"customerID"`
	BUID          string `form:"buid"`
	BillingTypeID string `form:"billingTypeID"`
	SegmentID     string `form:"segmentID"`
	Status        string `form:"status"`
}

type SortBy string

const (
	SortByCreatedDate  SortBy = "createdDate"
	SortByProjectName  SortBy = "projectName"
	SortByCustomerName SortBy = "customerName"
	SortByBUName       SortBy = "buName"
	SortByStatus       SortBy = "status"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Apply filters and sorts the enriched list, returning the rows the dashboard
// renders. The input slice is never mutated.
func Apply(projects []Project, f Filters, sortBy SortBy, order SortOrder) []Project {
	list := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.matches(p) {
			list = append(list, p)
		}
	}

	if sortBy == "" {
		return list
	}

	asc := order != SortDesc
	sort.SliceStable(list, func(i, j int) bool {
		return less(list[i], list[j], sortBy, asc)
	})

	return list
}

func (f Filters) matches(p Project) bool {
	if f.CustomerID != "" && strconv.FormatInt(p.CustomerID, 10) != f.CustomerID {
		return false
	}
	if f.BUID != "" && strconv.FormatInt(p.BUID, 10) != f.BUID {
		return false
	}
	if f.BillingTypeID != "" && strconv.FormatInt(p.BillingTypeID, 10) != f.BillingTypeID {
		return false
	}
	if f.SegmentID != "" && strconv.FormatInt(p.SegmentID, 10) != f.SegmentID {
		return false
	}
	if f.Status != "" && string(p.Status) != f.Status {
		return false
	}
	return true
}

// less is a strict weak ordering. createdDate compares the precomputed
// normalized timestamps and breaks ties on the internal identifier in the
// same direction, so the order is deterministic even when timestamps collide
// or both normalize to zero. String keys compare case-insensitively.
func less(a, b Project, sortBy SortBy, asc bool) bool {
	if sortBy == SortByCreatedDate {
		if a.CreatedTS != b.CreatedTS {
			if asc {
				return a.CreatedTS < b.CreatedTS
			}
			return a.CreatedTS > b.CreatedTS
		}
		if a.ProjectInternalID != b.ProjectInternalID {
			if asc {
				return a.ProjectInternalID < b.ProjectInternalID
			}
			return a.ProjectInternalID > b.ProjectInternalID
		}
		return false
	}

	va := strings.ToLower(sortKey(a, sortBy))
	vb := strings.ToLower(sortKey(b, sortBy))
	if va == vb {
		return false
	}
	if asc {
		return va < vb
	}
	return va > vb
}

func sortKey(p Project, sortBy SortBy) string {
	switch sortBy {
	case SortByProjectName:
		return p.ProjectName
	case SortByCustomerName:
		return p.CustomerName
	case SortByBUName:
		return p.BUName
	case SortByStatus:
		return string(p.Status)
	default:
		return ""
	}
}

// StatusOptions returns the distinct non-empty status values present in the
// list, in first-seen order; the dashboard feeds these to the status filter
// dropdown and recomputes them whenever the enriched list changes.
func StatusOptions(projects []Project) []string {
	seen := make(map[string]struct{})
	options := make([]string, 0)
	for _, p := range projects {
		s := string(p.Status)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		options = append(options, s)
	}
	return options
}
