// Package pipeline orchestrates a full evaluation run: scope selection,
// model calls, reply parsing, scoring, and aggregation into the final report.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kmatsu/story-checker/internal/catalog"
	"github.com/kmatsu/story-checker/internal/document"
	"github.com/kmatsu/story-checker/internal/llm"
	"github.com/kmatsu/story-checker/internal/observability"
	"github.com/kmatsu/story-checker/internal/parsing"
	"github.com/kmatsu/story-checker/internal/prompts"
	"github.com/kmatsu/story-checker/internal/scoring"
	"github.com/kmatsu/story-checker/internal/types"
)

// ProgressEvent represents a progress update during an evaluation run
type ProgressEvent struct {
	RunID     string `json:"run_id,omitempty"`
	Category  string `json:"category"`
	Criterion string `json:"criterion"`
	Message   string `json:"message"`
}

// ProgressCallback is called when evaluation progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for constructing a Pipeline.
type Options struct {
	Catalog     *catalog.Catalog // nil uses the embedded default catalog
	Client      llm.Client       // required
	Tier        llm.ModelTier
	Concurrency int // max in-flight model calls per category; <=0 means sequential
	Verbose     bool
	Printer     *observability.Printer
	OnProgress  ProgressCallback
}

// Pipeline evaluates documents against the criteria catalog. It is stateless
// per invocation and safe for concurrent use.
type Pipeline struct {
	opts Options
}

// New constructs a Pipeline. Returns an error when the catalog cannot be
// loaded or no model client is configured.
func New(opts Options) (*Pipeline, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if opts.Catalog == nil {
		cat, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		opts.Catalog = cat
	}
	if opts.Tier == "" {
		opts.Tier = llm.TierStandard
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &Pipeline{opts: opts}, nil
}

// categoryOutcome pairs a category with its resolved criterion outcomes.
type categoryOutcome struct {
	category types.Category
	outcomes []scoring.CriterionOutcome
}

// Evaluate runs the full evaluation for one document and returns the report.
// Input validation failure and all-criteria failure produce a report with the
// error field set rather than a Go error; the returned error is non-nil only
// when the context is canceled mid-run.
func (p *Pipeline) Evaluate(ctx context.Context, doc *types.Document) (*types.EvaluationReport, error) {
	runID := uuid.New().String()

	if err := doc.Validate(); err != nil {
		return failedReport(runID, err.Error()), nil
	}

	structure := document.NewStructure(doc)

	var resolved []categoryOutcome
	for _, category := range p.opts.Catalog.Categories() {
		criteria := p.opts.Catalog.Criteria(category)
		if len(criteria) == 0 {
			// Misconfigured category: skip it and keep going.
			continue
		}

		outcomes, err := p.evaluateCategory(ctx, structure, category, criteria)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, categoryOutcome{category: category, outcomes: outcomes})
	}

	report := p.assembleReport(runID, resolved)
	if p.opts.Verbose && p.opts.Printer != nil {
		p.opts.Printer.PrintReport(report)
	}
	return report, nil
}

// evaluateCategory resolves every criterion of one category. Criteria fan out
// up to the configured concurrency; each outcome lands at its criterion's
// index, so report order stays deterministic. Only context cancellation
// aborts the run; per-criterion failures degrade into errored outcomes.
func (p *Pipeline) evaluateCategory(ctx context.Context, structure *document.Structure, category types.Category, criteria []types.Criterion) ([]scoring.CriterionOutcome, error) {
	scopeText := document.SelectText(structure, category.Scope)

	outcomes := make([]scoring.CriterionOutcome, len(criteria))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for i, criterion := range criteria {
		i, criterion := i, criterion
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = p.evaluateCriterion(gCtx, structure, category, criterion, scopeText)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// evaluateCriterion runs one model call and folds the reply into an outcome.
func (p *Pipeline) evaluateCriterion(ctx context.Context, structure *document.Structure, category types.Category, criterion types.Criterion, scopeText string) scoring.CriterionOutcome {
	if scopeText == "" {
		// Nothing to evaluate for this scope; terminal for the criterion.
		return p.erroredOutcome(category, criterion, fmt.Errorf("評価対象のテキストがありません"))
	}

	messages := prompts.BuildEvaluationMessages(criterion, scopeText)
	raw, err := p.opts.Client.Complete(ctx, messages, p.opts.Tier)
	if err != nil {
		return p.erroredOutcome(category, criterion, err)
	}

	findings := parsing.ParseFindings(raw, criterion.ID, structure)
	p.emitProgress(category.ID, criterion.ID, "evaluated")
	return scoring.CriterionOutcome{
		CriterionID: criterion.ID,
		Score:       scoring.CriterionScore(findings),
		Findings:    findings,
	}
}

// erroredOutcome converts a failed criterion into a degraded outcome that
// stays visible in the report but is excluded from score aggregation.
func (p *Pipeline) erroredOutcome(category types.Category, criterion types.Criterion, err error) scoring.CriterionOutcome {
	p.emitProgress(category.ID, criterion.ID, fmt.Sprintf("failed: %v", err))
	return scoring.CriterionOutcome{
		CriterionID: criterion.ID,
		Score:       0.0,
		Findings: []types.Finding{{
			CriterionID: criterion.ID,
			Severity:    types.SeverityMajor,
			Feedback:    []string{fmt.Sprintf("評価中にエラーが発生しました: %v", err)},
		}},
		Err: err,
	}
}

// assembleReport folds resolved categories into the final report. Categories
// whose criteria all errored are omitted from the score lists; their degraded
// evaluations remain visible. When nothing at all succeeded the run is a
// whole-run failure.
func (p *Pipeline) assembleReport(runID string, resolved []categoryOutcome) *types.EvaluationReport {
	report := &types.EvaluationReport{
		RunID:          runID,
		Evaluations:    []types.Evaluation{},
		Categories:     []types.CategorySummary{},
		CategoryScores: []types.CategoryResult{},
	}

	var recordedScores []float64
	for _, rc := range resolved {
		succeeded := 0
		for _, outcome := range rc.outcomes {
			report.Evaluations = append(report.Evaluations, evaluationEntry(rc.category.ID, outcome))
			if outcome.Err == nil {
				recordedScores = append(recordedScores, outcome.Score)
				succeeded++
			}
		}
		if succeeded == 0 {
			continue
		}

		result := scoring.AggregateCategory(&rc.category, rc.outcomes)
		report.CategoryScores = append(report.CategoryScores, result)
		report.Categories = append(report.Categories, types.CategorySummary{
			CategoryID:   rc.category.ID,
			DisplayName:  rc.category.DisplayName,
			Priority:     rc.category.Priority,
			DisplayScore: scoring.DisplayScore(result.Score),
		})
	}

	if len(recordedScores) == 0 {
		return failedReport(runID, "すべての評価基準でエラーが発生しました")
	}

	report.TotalScore, report.TotalJudgment = scoring.AggregateOverall(recordedScores)
	return report
}

// evaluationEntry flattens one criterion outcome into a report row. Feedback
// and suggestions from every finding are merged; the location is the first
// non-empty target text.
func evaluationEntry(categoryID string, outcome scoring.CriterionOutcome) types.Evaluation {
	entry := types.Evaluation{
		CategoryID: categoryID,
		CriteriaID: outcome.CriterionID,
		Score:      outcome.Score,
		Feedback:   []string{},
	}
	for _, finding := range outcome.Findings {
		entry.Feedback = append(entry.Feedback, finding.Feedback...)
		entry.Feedback = append(entry.Feedback, finding.Suggestions...)
		if entry.Location == "" && finding.TargetText != "" {
			entry.Location = finding.TargetText
		}
	}
	return entry
}

// failedReport builds the whole-run failure artifact: empty evaluations,
// zero score, NG, error populated.
func failedReport(runID, message string) *types.EvaluationReport {
	return &types.EvaluationReport{
		RunID:          runID,
		Evaluations:    []types.Evaluation{},
		Categories:     []types.CategorySummary{},
		CategoryScores: []types.CategoryResult{},
		TotalScore:     0.0,
		TotalJudgment:  types.JudgmentNG,
		Error:          message,
	}
}

func (p *Pipeline) emitProgress(categoryID, criterionID, message string) {
	if p.opts.OnProgress != nil {
		p.opts.OnProgress(ProgressEvent{
			Category:  categoryID,
			Criterion: criterionID,
			Message:   message,
		})
	}
}
