package document

import (
	"fmt"
	"strings"

	"github.com/kmatsu/story-checker/internal/types"
)

// Section labels used when rendering scope text for the model. These match
// the labels the evaluation prompts describe.
const (
	labelSummary = "【サマリー】"
	labelStory   = "【ストーリー"
	labelBody    = "【本文】"

	summaryStoryNote = "※サマリーとストーリーは同じ番号同士が対応しています。"
	storyBodyNote    = "※各ストーリーは本文の対応する箇所を要約しています。"
)

// SelectText renders the text submitted to the model for one criterion,
// according to the category's scope. Blocks whose underlying text is empty
// after trimming are omitted; when nothing remains the result is the empty
// string and the caller must treat the criterion as failed, not retry it.
func SelectText(st *Structure, scope types.Scope) string {
	switch scope {
	case types.ScopeFullDocument:
		return joinBlocks(summaryBlock(st), storyBlock(st), bodyBlock(st))
	case types.ScopeSummaryOnly:
		return joinBlocks(summaryBlock(st))
	case types.ScopeSummaryAndStory:
		return withNote(joinBlocks(summaryBlock(st), storyBlock(st)), summaryStoryNote)
	case types.ScopeStoryAndBody:
		return withNote(joinBlocks(storyBlock(st), bodyBlock(st)), storyBodyNote)
	default:
		return ""
	}
}

func summaryBlock(st *Structure) string {
	if st.Summary == "" {
		return ""
	}
	return labelSummary + "\n" + st.Summary
}

// storyBlock labels each paragraph with its 1-based index.
func storyBlock(st *Structure) string {
	if len(st.Story) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(st.Story))
	for i, paragraph := range st.Story {
		blocks = append(blocks, fmt.Sprintf("%s%d】\n%s", labelStory, i+1, paragraph))
	}
	return strings.Join(blocks, "\n\n")
}

func bodyBlock(st *Structure) string {
	if st.Body == "" {
		return ""
	}
	return labelBody + "\n" + st.Body
}

// joinBlocks drops empty blocks and separates the rest with a blank line.
func joinBlocks(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if strings.TrimSpace(b) != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}

// withNote appends the correspondence note, but only when there is text.
func withNote(text, note string) string {
	if text == "" {
		return ""
	}
	return text + "\n\n" + note
}
