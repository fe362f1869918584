package domain

// AuditResult is the verdict of the external content-understanding service
// on a campaign creative. IsSafe is derived by the service, never recomputed
// locally. Scores are clamped to [0,100].
type AuditResult struct {
	IsSafe       bool     `json:"is_safe"`
	SafetyScore  int      `json:"safety_score"`
	QualityScore int      `json:"quality_score"`
	Issues       []string `json:"issues,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
	Reason       string   `json:"reason,omitempty"`
}
