package entity

// PermissionDecision represents the user's stored decision for a feature
// on a given origin.
type PermissionDecision string

const (
	// PermissionGranted means the feature was allowed.
	PermissionGranted PermissionDecision = "granted"

	// PermissionDenied means the feature was denied.
	PermissionDenied PermissionDecision = "denied"

	// PermissionPrompt means no decision has been made yet (default state).
	PermissionPrompt PermissionDecision = "prompt"
)

// ParsePermissionDecision maps a stored or user-supplied value to a decision.
func ParsePermissionDecision(s string) (PermissionDecision, bool) {
	switch PermissionDecision(s) {
	case PermissionGranted, PermissionDenied, PermissionPrompt:
		return PermissionDecision(s), true
	default:
		return "", false
	}
}

// Toggled returns the decision after a user toggle: granted becomes
// denied, everything else becomes granted.
func (d PermissionDecision) Toggled() PermissionDecision {
	if d == PermissionGranted {
		return PermissionDenied
	}
	return PermissionGranted
}

// PermissionRecord stores one decision for a specific origin and feature.
type PermissionRecord struct {
	Origin    string             // the origin this decision applies to
	Feature   Feature            // the feature the decision covers
	Decision  PermissionDecision // granted, denied, or prompt
	UpdatedAt int64              // Unix seconds of the last change
}

// IsGranted returns true if the permission is granted.
func (r *PermissionRecord) IsGranted() bool {
	return r.Decision == PermissionGranted
}

// IsDenied returns true if the permission is denied.
func (r *PermissionRecord) IsDenied() bool {
	return r.Decision == PermissionDenied
}
