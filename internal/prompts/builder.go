package prompts

import (
	"github.com/kmatsu/story-checker/internal/llm"
	"github.com/kmatsu/story-checker/internal/types"
)

// Sentinels of the reply grammar. The builder embeds them in the request
// contract; the parser recognizes them in replies. Keep the two in sync.
const (
	// NoIssues is the null-result sentinel.
	NoIssues = "問題なし"
	// FindingSeparator separates individual findings in a reply.
	FindingSeparator = "---"
)

// BuildEvaluationMessages composes the completion request for one criterion:
// a fixed system instruction and a user instruction embedding the criterion
// description, the output grammar, and the selected scope text. The grammar is
// invariant across criteria.
func BuildEvaluationMessages(criterion types.Criterion, scopeText string) []llm.Message {
	system := MustGet("evaluation.json", "evaluate-system")
	user := Format(MustGet("evaluation.json", "evaluate-user"), map[string]string{
		"Criterion": criterion.Description,
		"ScopeText": scopeText,
	})

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}
}
