package types

// Severity classifies how serious a single finding is. Severities map to fixed
// score deductions; see the scoring package.
type Severity string

// Severity levels ordered from harmless to blocking.
const (
	SeverityNone     Severity = "none"
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
)

// Scope names the rule that determines which document sections are submitted
// to the model for a given criterion.
type Scope string

// Scope constants define the supported evaluation scopes.
const (
	// ScopeFullDocument submits summary, story and body together.
	ScopeFullDocument Scope = "FULL_DOCUMENT"
	// ScopeSummaryOnly submits only the summary block.
	ScopeSummaryOnly Scope = "SUMMARY_ONLY"
	// ScopeSummaryAndStory submits summary and numbered story paragraphs.
	ScopeSummaryAndStory Scope = "SUMMARY_AND_STORY"
	// ScopeStoryAndBody submits story paragraphs and the full body.
	ScopeStoryAndBody Scope = "STORY_AND_BODY"
)

// Judgment is the OK/NG verdict derived from comparing a score to the fixed
// pass threshold.
type Judgment string

// Judgment verdicts.
const (
	JudgmentOK Judgment = "OK"
	JudgmentNG Judgment = "NG"
)

// Span locates a finding inside the document's concatenated text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Finding is one structured issue (or the explicit absence of issues)
// extracted from a model reply. Findings are immutable once created.
type Finding struct {
	CriterionID string   `json:"criterion_id"`
	TargetText  string   `json:"target_text"`
	Severity    Severity `json:"severity"`
	Feedback    []string `json:"feedback"`
	Suggestions []string `json:"suggestions"`
	Position    *Span    `json:"position,omitempty"`
}
