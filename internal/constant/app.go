package constant

import "time"

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"

	QUERY_TIMEOUT_DURATION = 5 * time.Second

	DefaultPageSize uint = 20

	JWT_TYPE_ACCESS  = "access"
	JWT_TYPE_REFRESH = "refresh"
)

// Minimum gap between a project's start and end date, enforced on create
// and update. The server is authoritative; the dashboard applies the same
// rule before submitting.
const MinProjectDurationDays = 14
