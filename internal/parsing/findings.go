// Package parsing turns the model's free-text evaluation reply into
// structured findings. The reply follows a loose line-oriented grammar; the
// parser tolerates deviations and degrades to a low-confidence finding rather
// than failing, so a single garbled reply never aborts a run.
package parsing

import (
	"strings"

	"github.com/kmatsu/story-checker/internal/document"
	"github.com/kmatsu/story-checker/internal/prompts"
	"github.com/kmatsu/story-checker/internal/types"
)

// Field keys of the reply grammar, matched case-sensitively at line start.
const (
	keyTargetText  = "対象文："
	keyProblem     = "問題あり："
	keyFeedback    = "問題点："
	keySuggestions = "改善提案："
)

// Severity keywords scanned in the 問題あり field value.
var (
	majorKeywords = []string{"重大", "深刻"}
	minorKeywords = []string{"軽微", "小さな"}
)

// bulletField tracks which list field accumulates bullet lines.
type bulletField int

const (
	fieldNone bulletField = iota
	fieldFeedback
	fieldSuggestions
)

// ParseFindings parses a raw model reply into findings for one criterion.
// It always returns at least one finding and never an error.
//
// The null-result sentinel wins over everything else: a reply containing
// 問題なし anywhere parses to a single severity-none finding even when
// structured segments surround it. Otherwise the reply is split on the
// finding separator and each segment yields one finding; segments carrying
// neither a target text nor any bullet line are noise and dropped. When
// nothing usable remains the reply degrades to a single moderate-severity
// finding so the criterion still scores.
func ParseFindings(raw string, criterionID string, st *document.Structure) []types.Finding {
	if strings.Contains(raw, prompts.NoIssues) {
		return []types.Finding{noIssuesFinding(criterionID)}
	}

	var findings []types.Finding
	for _, segment := range strings.Split(raw, prompts.FindingSeparator) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if finding, ok := parseSegment(segment, criterionID, st); ok {
			findings = append(findings, finding)
		}
	}

	if len(findings) == 0 {
		return []types.Finding{unclearFinding(criterionID)}
	}
	return findings
}

// parseSegment scans one segment line by line. Field detection is
// order-independent and last-write-wins; bullet lines accumulate into
// whichever list field a key switched to most recently. Reports ok=false for
// segments with no target text and no bullets.
func parseSegment(segment, criterionID string, st *document.Structure) (types.Finding, bool) {
	finding := types.Finding{
		CriterionID: criterionID,
		Severity:    types.SeverityModerate,
	}
	active := fieldNone

	for _, line := range strings.Split(segment, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, keyTargetText):
			finding.TargetText = strings.TrimSpace(strings.TrimPrefix(line, keyTargetText))
			active = fieldNone
		case strings.HasPrefix(line, keyProblem):
			finding.Severity = classifySeverity(strings.TrimPrefix(line, keyProblem))
			active = fieldNone
		case strings.HasPrefix(line, keyFeedback):
			active = fieldFeedback
		case strings.HasPrefix(line, keySuggestions):
			active = fieldSuggestions
		default:
			item, ok := bulletText(line)
			if !ok {
				continue
			}
			switch active {
			case fieldFeedback:
				finding.Feedback = append(finding.Feedback, item)
			case fieldSuggestions:
				finding.Suggestions = append(finding.Suggestions, item)
			}
		}
	}

	if finding.TargetText == "" && len(finding.Feedback) == 0 && len(finding.Suggestions) == 0 {
		return types.Finding{}, false
	}
	if st != nil {
		finding.Position = st.FindSpan(finding.TargetText)
	}
	return finding, true
}

// classifySeverity scans the 問題あり field value for severity keywords.
func classifySeverity(value string) types.Severity {
	for _, kw := range majorKeywords {
		if strings.Contains(value, kw) {
			return types.SeverityMajor
		}
	}
	for _, kw := range minorKeywords {
		if strings.Contains(value, kw) {
			return types.SeverityMinor
		}
	}
	return types.SeverityModerate
}

// bulletText strips a leading bullet marker, reporting whether line had one.
func bulletText(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") {
		return strings.TrimSpace(strings.TrimPrefix(line, "- ")), true
	}
	if strings.HasPrefix(line, "・") {
		return strings.TrimSpace(strings.TrimPrefix(line, "・")), true
	}
	return "", false
}

func noIssuesFinding(criterionID string) types.Finding {
	return types.Finding{
		CriterionID: criterionID,
		Severity:    types.SeverityNone,
		Feedback:    []string{"問題は見つかりませんでした"},
	}
}

func unclearFinding(criterionID string) types.Finding {
	return types.Finding{
		CriterionID: criterionID,
		Severity:    types.SeverityModerate,
		Feedback:    []string{"評価結果を解析できませんでした"},
	}
}
