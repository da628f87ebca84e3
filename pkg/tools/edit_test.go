package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEdit_ReplacesUniqueSubstring(t *testing.T) {
	content := "func main() {\n\tfmt.Println(\"hello\")\n}\n"
	updated, err := applyEdit(content, `fmt.Println("hello")`, `fmt.Println("goodbye")`, false)
	require.NoError(t, err)
	assert.Equal(t, "func main() {\n\tfmt.Println(\"goodbye\")\n}\n", updated)
}

func TestApplyEdit_RejectsIdenticalStrings(t *testing.T) {
	_, err := applyEdit("content", "same", "same", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identical")
}

func TestApplyEdit_RejectsEmptyOldString(t *testing.T) {
	_, err := applyEdit("content", "", "new", false)
	require.Error(t, err)
}

func TestApplyEdit_RejectsMissingSubstring(t *testing.T) {
	_, err := applyEdit("abc", "xyz", "123", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyEdit_RejectsAmbiguousMatch(t *testing.T) {
	_, err := applyEdit("aa bb aa", "aa", "cc", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 times")
}

func TestApplyEdit_ReplaceAll(t *testing.T) {
	updated, err := applyEdit("aa bb aa", "aa", "cc", true)
	require.NoError(t, err)
	assert.Equal(t, "cc bb cc", updated)
}

func TestNumberLines(t *testing.T) {
	out := numberLines("first\nsecond\nthird\n", 0, 0)
	assert.Contains(t, out, "     1\tfirst\n")
	assert.Contains(t, out, "     3\tthird\n")
}

func TestNumberLines_OffsetAndLimit(t *testing.T) {
	out := numberLines("a\nb\nc\nd\n", 2, 2)
	assert.NotContains(t, out, "\ta\n")
	assert.Contains(t, out, "     2\tb\n")
	assert.Contains(t, out, "     3\tc\n")
	assert.Contains(t, out, "use offset=4 to continue")
}

func TestNumberLines_OffsetPastEnd(t *testing.T) {
	out := numberLines("a\nb\n", 10, 0)
	assert.Contains(t, out, "past the end")
}

func TestHeredocFor_DefaultDelimiter(t *testing.T) {
	assert.Equal(t, "STRATUS_EOF", heredocFor("package main\n\nfunc main() {}"))
}

func TestHeredocFor_AvoidsCollidingLines(t *testing.T) {
	content := "before\nSTRATUS_EOF\nafter"
	delim := heredocFor(content)
	assert.Equal(t, "STRATUS_EOF_1", delim)
	assert.False(t, containsLine(content, delim))
}

func TestHeredocFor_WalksPastEveryCollision(t *testing.T) {
	content := "STRATUS_EOF\nSTRATUS_EOF_1\nSTRATUS_EOF_2"
	delim := heredocFor(content)
	assert.Equal(t, "STRATUS_EOF_3", delim)
	assert.False(t, containsLine(content, delim))
}

func TestHeredocFor_IgnoresPartialLineMatches(t *testing.T) {
	// Only a full line terminates a heredoc.
	assert.Equal(t, "STRATUS_EOF", heredocFor("x STRATUS_EOF y\n  STRATUS_EOF"))
}
