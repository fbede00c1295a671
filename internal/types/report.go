package types

// Evaluation is one per-criterion entry in the final report.
type Evaluation struct {
	CategoryID string   `json:"categoryId"`
	CriteriaID string   `json:"criteriaId"`
	Score      float64  `json:"score"`
	Feedback   []string `json:"feedback"`
	Location   string   `json:"location"`
}

// CategorySummary carries display metadata for a category alongside its
// normalized 0-100 score, ordered by priority in the report.
type CategorySummary struct {
	CategoryID   string `json:"categoryId"`
	DisplayName  string `json:"displayName"`
	Priority     int    `json:"priority"`
	DisplayScore int    `json:"displayScore"`
}

// CategoryResult is the per-category aggregate: a [0,1] score and the OK/NG
// judgment derived from it. Recomputed each run from the category's findings.
type CategoryResult struct {
	CategoryID   string   `json:"categoryId"`
	CategoryName string   `json:"categoryName"`
	Score        float64  `json:"score"`
	Judgment     Judgment `json:"judgment"`
}

// EvaluationReport is the terminal artifact of one pipeline run. It is
// immutable once returned. Error is set only for whole-run failures; partial
// per-criterion failures surface as lowered scores instead.
type EvaluationReport struct {
	RunID          string           `json:"runId,omitempty"`
	Evaluations    []Evaluation     `json:"evaluations"`
	Categories     []CategorySummary `json:"categories"`
	CategoryScores []CategoryResult `json:"categoryScores"`
	TotalScore     float64          `json:"totalScore"`
	TotalJudgment  Judgment         `json:"totalJudgment"`
	Error          string           `json:"error,omitempty"`
}
