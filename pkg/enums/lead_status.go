package enums

import "strings"

// LeadStatus tracks where a lead sits in the sales funnel. The capture sheet
// feeds free-form values, so statuses are normalized to lowercase rather than
// strictly validated; `confirmed` is the one state reporting depends on.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusFollowup  LeadStatus = "followup"
	LeadStatusConfirmed LeadStatus = "confirmed"
	LeadStatusRejected  LeadStatus = "rejected"
	LeadStatusClosed    LeadStatus = "closed"
)

// NormalizeLeadStatus lowercases and trims raw status input.
func NormalizeLeadStatus(value string) LeadStatus {
	return LeadStatus(strings.ToLower(strings.TrimSpace(value)))
}

// String implements fmt.Stringer.
func (s LeadStatus) String() string {
	return string(s)
}
