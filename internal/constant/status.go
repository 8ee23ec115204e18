package constant

// ProjectStatus enumerates every status a project record can occupy. The
// values are wire strings, compared verbatim by the dashboard.
//
// TODO: product to confirm whether StatusPendingSubmission's lowercased value
// is intentional; it reached production as a distinct state gating the
// submit-for-review step, so it is preserved as-is rather than merged with
// StatusPendingSuperAdminApproval.
type ProjectStatus string

const (
	StatusPendingPIDGeneration      ProjectStatus = "PendingPIDGeneration"
	StatusNeedsRevision             ProjectStatus = "NeedsRevision"
	StatusPendingSubmission         ProjectStatus = "pendingsuperadminapproval"
	StatusPendingSuperAdminApproval ProjectStatus = "PendingSuperAdminApproval"
	StatusPendingAdminApproval      ProjectStatus = "PendingAdminApproval"
	StatusApproved                  ProjectStatus = "Approved"
	StatusRejected                  ProjectStatus = "Rejected"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPendingPIDGeneration, StatusNeedsRevision, StatusPendingSubmission,
		StatusPendingSuperAdminApproval, StatusPendingAdminApproval,
		StatusApproved, StatusRejected:
		return true
	}
	return false
}
