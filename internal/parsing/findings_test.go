package parsing

import (
	"testing"

	"github.com/kmatsu/story-checker/internal/document"
	"github.com/kmatsu/story-checker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStructure() *document.Structure {
	return document.NewStructure(&types.Document{
		Title:      "四半期報告",
		Summary:    "売上は前年比で増加した。",
		Paragraphs: []string{"第一四半期は好調だった。", "第二四半期は横ばいだった。"},
		FullText:   "詳細な本文。第一四半期は好調だった。",
	})
}

func TestParseFindings_NoIssuesSentinel(t *testing.T) {
	findings := ParseFindings("問題なし", "SCQA有無", testStructure())

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityNone, findings[0].Severity)
	assert.Equal(t, "SCQA有無", findings[0].CriterionID)
	assert.Empty(t, findings[0].TargetText)
	assert.Nil(t, findings[0].Position)
	assert.NotEmpty(t, findings[0].Feedback)
}

func TestParseFindings_SentinelWinsOverSegments(t *testing.T) {
	raw := "対象文：売上は前年比で増加した。\n問題あり：重大な欠陥\n---\n問題なし"

	findings := ParseFindings(raw, "c1", testStructure())

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityNone, findings[0].Severity)
}

func TestParseFindings_SingleSegment(t *testing.T) {
	raw := "対象文：Foo\n問題あり：重大な欠陥\n問題点：\n- bad\n改善提案：\n- fix"

	findings := ParseFindings(raw, "c1", nil)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, types.SeverityMajor, f.Severity)
	assert.Equal(t, "Foo", f.TargetText)
	assert.Equal(t, []string{"bad"}, f.Feedback)
	assert.Equal(t, []string{"fix"}, f.Suggestions)
}

func TestParseFindings_MultipleSegments(t *testing.T) {
	raw := "対象文：一つ目\n問題点：\n- 主張が曖昧\n---\n対象文：二つ目\n問題あり：軽微な表記ゆれ\n改善提案：\n・表記を統一する"

	findings := ParseFindings(raw, "c1", nil)

	require.Len(t, findings, 2)
	assert.Equal(t, types.SeverityModerate, findings[0].Severity)
	assert.Equal(t, []string{"主張が曖昧"}, findings[0].Feedback)
	assert.Equal(t, types.SeverityMinor, findings[1].Severity)
	assert.Equal(t, []string{"表記を統一する"}, findings[1].Suggestions)
}

func TestParseFindings_FieldOrderInsensitive(t *testing.T) {
	a := "対象文：Foo\n問題点：\n- bad\n改善提案：\n- fix"
	b := "改善提案：\n- fix\n問題点：\n- bad\n対象文：Foo"

	fa := ParseFindings(a, "c1", nil)
	fb := ParseFindings(b, "c1", nil)

	require.Len(t, fa, 1)
	require.Len(t, fb, 1)
	assert.Equal(t, fa[0], fb[0])
}

func TestParseFindings_LastWriteWins(t *testing.T) {
	raw := "対象文：最初\n対象文：最後\n問題点：\n- 問題"

	findings := ParseFindings(raw, "c1", nil)

	require.Len(t, findings, 1)
	assert.Equal(t, "最後", findings[0].TargetText)
}

func TestParseFindings_NoiseSegmentsDropped(t *testing.T) {
	raw := "前置きの文章です。\n形式に従っていません。\n---\n対象文：Foo\n問題点：\n- bad"

	findings := ParseFindings(raw, "c1", nil)

	require.Len(t, findings, 1)
	assert.Equal(t, "Foo", findings[0].TargetText)
}

func TestParseFindings_AllSegmentsNoiseFallsBack(t *testing.T) {
	raw := "了解しました。\n---\n問題点：\n箇条書きではない行"

	findings := ParseFindings(raw, "c1", nil)

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityModerate, findings[0].Severity)
	assert.NotEmpty(t, findings[0].Feedback)
}

func TestParseFindings_EmptyReplyFallsBack(t *testing.T) {
	findings := ParseFindings("", "c1", nil)

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityModerate, findings[0].Severity)
}

func TestParseFindings_PositionResolution(t *testing.T) {
	st := testStructure()

	findings := ParseFindings("対象文：第二四半期は横ばいだった。\n問題点：\n- 根拠がない", "c1", st)

	require.Len(t, findings, 1)
	require.NotNil(t, findings[0].Position)

	// Story text starts after the summary plus the separator; the second
	// paragraph follows the first plus another separator.
	wantStart := len(st.Summary) + 2 + len(st.Story[0]) + 2
	assert.Equal(t, wantStart, findings[0].Position.Start)
	assert.Equal(t, wantStart+len("第二四半期は横ばいだった。"), findings[0].Position.End)
}

func TestParseFindings_UnresolvedTargetHasNoPosition(t *testing.T) {
	findings := ParseFindings("対象文：文書に存在しない文\n問題点：\n- 不一致", "c1", testStructure())

	require.Len(t, findings, 1)
	assert.Nil(t, findings[0].Position)
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		value string
		want  types.Severity
	}{
		{"重大な欠陥があります", types.SeverityMajor},
		{"深刻な論理矛盾", types.SeverityMajor},
		{"軽微な表記ゆれ", types.SeverityMinor},
		{"小さな誤字", types.SeverityMinor},
		{"構成に問題があります", types.SeverityModerate},
		{"", types.SeverityModerate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifySeverity(tt.value), "value %q", tt.value)
	}
}
