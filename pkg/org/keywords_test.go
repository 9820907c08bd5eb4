package org

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTodoKeywordConfig_NonConfigLines(t *testing.T) {
	for _, line := range []string{
		"* TODO a headline",
		"plain text",
		"#+STARTUP: indent",
		"#+TITLE: notes",
		"#+TODO no colon",
		"#+TODO:",
		"#+TODO:    ",
	} {
		assert.Nil(t, ParseTodoKeywordConfig(line), "line %q", line)
	}
}

func TestParseTodoKeywordConfig_WithSeparator(t *testing.T) {
	set := ParseTodoKeywordConfig("#+TODO: TODO NEXT | DONE CANCELLED")
	require.NotNil(t, set)
	assert.Equal(t, []string{"TODO", "NEXT", "DONE", "CANCELLED"}, set.KeywordNames())
	assert.Equal(t, []string{"DONE", "CANCELLED"}, set.CompletedKeywords)
	assert.False(t, set.Default)
	assert.Equal(t, "#+TODO: TODO NEXT | DONE CANCELLED", set.ConfigLine)
}

func TestParseTodoKeywordConfig_WithoutSeparator(t *testing.T) {
	// Without a separator the last keyword is the completed one.
	set := ParseTodoKeywordConfig("#+TODO: TODO DOING DONE")
	require.NotNil(t, set)
	assert.Equal(t, []string{"TODO", "DOING", "DONE"}, set.KeywordNames())
	assert.Equal(t, []string{"DONE"}, set.CompletedKeywords)
}

func TestParseTodoKeywordConfig_TypTodo(t *testing.T) {
	set := ParseTodoKeywordConfig("#+TYP_TODO: BUG FEATURE | FIXED")
	require.NotNil(t, set)
	assert.Equal(t, []string{"BUG", "FEATURE", "FIXED"}, set.KeywordNames())
	assert.Equal(t, []string{"FIXED"}, set.CompletedKeywords)
}

func TestParseTodoKeywordConfig_DirectiveNameCaseInsensitive(t *testing.T) {
	set := ParseTodoKeywordConfig("#+todo: OPEN | CLOSED")
	require.NotNil(t, set)
	assert.Equal(t, []string{"OPEN", "CLOSED"}, set.KeywordNames())
}

func TestParseTodoKeywordConfig_ShortcutAnnotations(t *testing.T) {
	set := ParseTodoKeywordConfig("#+TODO: TODO(t) WAIT(w@) NEXT(n!) | DONE(d!/@) KILL(k@/!)")
	require.NotNil(t, set)
	require.Len(t, set.Keywords, 5)

	todo := set.Keywords[0]
	assert.Equal(t, "TODO", todo.Name)
	assert.Equal(t, "t", todo.Shortcut)
	assert.False(t, todo.TimestampOnEntry)
	assert.False(t, todo.NoteOnEntry)

	wait := set.Keywords[1]
	assert.Equal(t, "w", wait.Shortcut)
	assert.True(t, wait.NoteOnEntry)
	assert.False(t, wait.TimestampOnEntry)

	next := set.Keywords[2]
	assert.True(t, next.TimestampOnEntry)

	done := set.Keywords[3]
	assert.Equal(t, "d", done.Shortcut)
	assert.True(t, done.TimestampOnEntry)
	assert.True(t, done.NoteOnExit)
	assert.False(t, done.TimestampOnExit)

	kill := set.Keywords[4]
	assert.True(t, kill.NoteOnEntry)
	assert.True(t, kill.TimestampOnExit)
}

func TestParseTodoKeywordConfig_ExitOnlyAnnotation(t *testing.T) {
	set := ParseTodoKeywordConfig("#+TODO: TODO | DONE(d/!)")
	require.NotNil(t, set)
	done := set.Keywords[1]
	assert.Equal(t, "d", done.Shortcut)
	assert.False(t, done.TimestampOnEntry)
	assert.True(t, done.TimestampOnExit)
}

func TestParseTodoKeywordConfig_KeywordsStayCaseSensitive(t *testing.T) {
	set := ParseTodoKeywordConfig("#+TODO: Todo | Done")
	require.NotNil(t, set)
	assert.Equal(t, []string{"Todo", "Done"}, set.KeywordNames())
	assert.True(t, set.Contains("Todo"))
	assert.False(t, set.Contains("TODO"))
}

// TestTodoKeywordSet_WellFormedness locks the set invariants: no
// duplicates, and CompletedKeywords a non-empty subset of Keywords.
func TestTodoKeywordSet_WellFormedness(t *testing.T) {
	lines := []string{
		"#+TODO: TODO TODO | DONE DONE",
		"#+TODO: A B C | D E",
		"#+TODO: ONLY",
		"#+TYP_TODO: X(x!) | Y(y@)",
	}
	for _, line := range lines {
		set := ParseTodoKeywordConfig(line)
		require.NotNil(t, set, "line %q", line)

		seen := map[string]bool{}
		for _, name := range set.KeywordNames() {
			assert.False(t, seen[name], "duplicate keyword %q in %q", name, line)
			seen[name] = true
		}
		require.NotEmpty(t, set.CompletedKeywords, "line %q", line)
		doneSeen := map[string]bool{}
		for _, name := range set.CompletedKeywords {
			assert.False(t, doneSeen[name], "duplicate completed %q in %q", name, line)
			doneSeen[name] = true
			assert.True(t, set.Contains(name), "completed %q not in keywords for %q", name, line)
		}
	}
}

func TestDefaultTodoKeywordSet(t *testing.T) {
	set := DefaultTodoKeywordSet(nil)
	assert.True(t, set.Default)
	assert.Empty(t, set.ConfigLine)
	assert.Equal(t, []string{"TODO", "DONE"}, set.KeywordNames())
	assert.Equal(t, []string{"DONE"}, set.CompletedKeywords)
}

func TestDefaultTodoKeywordSet_CustomKeywords(t *testing.T) {
	set := DefaultTodoKeywordSet([]string{"OPEN", "WIP", "SHIPPED"})
	assert.True(t, set.Default)
	assert.Equal(t, []string{"OPEN", "WIP", "SHIPPED"}, set.KeywordNames())
	assert.Equal(t, []string{"SHIPPED"}, set.CompletedKeywords)
}
