package org

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== Boundary scenarios ====================

func TestParse_HeadlineWithoutNewline(t *testing.T) {
	doc := Parse("* headline")
	require.Len(t, doc.Headers, 1)
	assert.Empty(t, doc.Headers[0].Description)
	assert.Equal(t, "", doc.Headers[0].RawDescription)
	assert.True(t, doc.NoFinalNewline)
}

func TestParse_HeadlineWithNewline(t *testing.T) {
	doc := Parse("* headline\n")
	require.Len(t, doc.Headers, 1)
	assert.Empty(t, doc.Headers[0].Description)
	assert.Equal(t, "", doc.Headers[0].RawDescription)
}

func TestParse_HeadlineWithOneBlankLine(t *testing.T) {
	doc := Parse("* headline\n\n")
	require.Len(t, doc.Headers, 1)
	require.Len(t, doc.Headers[0].Description, 1)
	assert.Equal(t, "\n", doc.Headers[0].RawDescription)
}

func TestParse_AdjacentHeadlines(t *testing.T) {
	doc := Parse("* headline\n* headline 2")
	require.Len(t, doc.Headers, 2)
	assert.Empty(t, doc.Headers[0].Description)
	assert.Equal(t, "", doc.Headers[0].RawDescription)
	assert.Equal(t, "headline 2", doc.Headers[1].Title.RawTitle)
}

func TestParse_EmptyInput(t *testing.T) {
	doc := Parse("")
	assert.Empty(t, doc.Headers)
	assert.Equal(t, "", doc.Preamble)
	require.Len(t, doc.TodoKeywordSets, 1)
	assert.True(t, doc.TodoKeywordSets[0].Default)
}

// ==================== Structure ====================

func TestParse_Preamble(t *testing.T) {
	doc := Parse("some text\n# a comment\n\n* headline\n")
	assert.Equal(t, "some text\n# a comment\n\n", doc.Preamble)
	assert.Equal(t, []string{"some text", "# a comment", ""}, doc.LinesBeforeHeadings())
	require.Len(t, doc.Headers, 1)
}

func TestParse_NoHeadlines(t *testing.T) {
	doc := Parse("only body text\nno stars here\n")
	assert.Empty(t, doc.Headers)
	assert.Equal(t, "only body text\nno stars here\n", doc.Preamble)
}

func TestParse_Levels(t *testing.T) {
	doc := Parse("* one\n** two\n*** three\n* back\n")
	require.Len(t, doc.Headers, 4)
	assert.Equal(t, []int{1, 2, 3, 1}, []int{
		doc.Headers[0].Level, doc.Headers[1].Level,
		doc.Headers[2].Level, doc.Headers[3].Level,
	})
}

func TestParse_StarsWithoutSpaceAreNotHeadlines(t *testing.T) {
	doc := Parse("*not a headline\n* real\n")
	require.Len(t, doc.Headers, 1)
	assert.Equal(t, "*not a headline\n", doc.Preamble)
}

func TestParse_BodyStopsAtNextHeadlineAnyLevel(t *testing.T) {
	doc := Parse("* top\nbody of top\n** child\nchild body\n")
	require.Len(t, doc.Headers, 2)
	assert.Equal(t, "body of top\n", doc.Headers[0].RawDescription)
	assert.Equal(t, "child body\n", doc.Headers[1].RawDescription)
}

// ==================== Title line ====================

func TestParse_TitleKeywordPriorityTags(t *testing.T) {
	doc := Parse("* TODO [#A] Fix the *parser* :work:urgent:\n")
	require.Len(t, doc.Headers, 1)
	title := doc.Headers[0].Title
	assert.Equal(t, "TODO", title.Todo)
	assert.Equal(t, "A", title.Priority)
	assert.Equal(t, "Fix the *parser*", title.RawTitle)
	assert.Equal(t, []string{"work", "urgent"}, title.Tags)
	require.Len(t, title.Title, 2)
	assert.Equal(t, InlineBold, title.Title[1].Kind)
}

func TestParse_KeywordMustBeInActiveSet(t *testing.T) {
	doc := Parse("* NEXT not a keyword here\n")
	assert.Equal(t, "", doc.Headers[0].Title.Todo)
	assert.Equal(t, "NEXT not a keyword here", doc.Headers[0].Title.RawTitle)
}

func TestParse_KeywordOnlyHeadline(t *testing.T) {
	doc := Parse("* TODO\n")
	assert.Equal(t, "TODO", doc.Headers[0].Title.Todo)
	assert.Equal(t, "", doc.Headers[0].Title.RawTitle)
}

// A token fused to a markup delimiter is plain title text: keyword
// recognition runs strictly before inline scanning and requires a
// space or end of line after the keyword.
func TestParse_KeywordFusedToDelimiterStaysTitleText(t *testing.T) {
	doc := Parse("* TODO*x* title\n")
	title := doc.Headers[0].Title
	assert.Equal(t, "", title.Todo)
	assert.Equal(t, "TODO*x* title", title.RawTitle)
}

func TestParse_TagsOnlyTitle(t *testing.T) {
	doc := Parse("* :tag:\n")
	title := doc.Headers[0].Title
	assert.Equal(t, "", title.RawTitle)
	assert.Equal(t, []string{"tag"}, title.Tags)
}

func TestParse_CustomKeywordSet(t *testing.T) {
	doc := Parse("#+TODO: OPEN | SHIPPED\n* OPEN thing\n* TODO other\n")
	require.Len(t, doc.Headers, 2)
	assert.Equal(t, "OPEN", doc.Headers[0].Title.Todo)
	// TODO is not in the explicit set, so it stays title text.
	assert.Equal(t, "", doc.Headers[1].Title.Todo)
	assert.Equal(t, "TODO other", doc.Headers[1].Title.RawTitle)
}

// ==================== Body pipeline ====================

func TestParse_PlanningItems(t *testing.T) {
	doc := Parse("* TODO task\n  SCHEDULED: <2024-03-01 Fri>\n  body\n")
	h := doc.Headers[0]
	require.Len(t, h.Planning, 1)
	assert.Equal(t, PlanningScheduled, h.Planning[0].Keyword)
	assert.Equal(t, "2024-03-01", h.Planning[0].Timestamp.Date)
	assert.Equal(t, "  body\n", h.RawDescription)
}

func TestParse_PropertyDrawer(t *testing.T) {
	doc := Parse("* task\n  :PROPERTIES:\n  :ID: abc-123\n  :Custom_ID: has: colons\n  :FLAG:\n  :END:\n  body\n")
	h := doc.Headers[0]
	require.NotNil(t, h.Properties)
	require.Len(t, h.Properties.Properties, 3)

	id, ok := h.Properties.Get("id") // case-insensitive lookup
	require.True(t, ok)
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "ID", h.Properties.Properties[0].Key) // stored as written

	custom, ok := h.Properties.Get("CUSTOM_ID")
	require.True(t, ok)
	assert.Equal(t, "has: colons", custom)

	flag, ok := h.Properties.Get("flag")
	require.True(t, ok)
	assert.Equal(t, "", flag)

	assert.Equal(t, "  body\n", h.RawDescription)
}

func TestParse_UnterminatedDrawerIsBodyText(t *testing.T) {
	doc := Parse("* task\n:PROPERTIES:\n:ID: abc\nno end marker\n")
	h := doc.Headers[0]
	assert.Nil(t, h.Properties)
	assert.Equal(t, ":PROPERTIES:\n:ID: abc\nno end marker\n", h.RawDescription)
}

func TestParse_Logbook(t *testing.T) {
	body := "* task\n" +
		"  :LOGBOOK:\n" +
		"  CLOCK: [2024-02-27 Tue 09:00]--[2024-02-27 Tue 10:12] =>  1:12\n" +
		"  - State \"DONE\"       from \"TODO\"       [2024-02-26 Mon]\n" +
		"  some free-form note\n" +
		"  :END:\n"
	doc := Parse(body)
	h := doc.Headers[0]
	require.NotNil(t, h.Logbook)
	require.Len(t, h.Logbook.Entries, 3)
	assert.Equal(t, LogbookClock, h.Logbook.Entries[0].Kind)
	assert.Equal(t, LogbookState, h.Logbook.Entries[1].Kind)
	assert.Equal(t, LogbookNote, h.Logbook.Entries[2].Kind)
	assert.Equal(t, "  some free-form note", h.Logbook.Entries[2].Raw)
	assert.Equal(t, "", h.RawDescription)
}

func TestParse_PlanningThenDrawersThenDescription(t *testing.T) {
	text := "* TODO task\n" +
		"  SCHEDULED: <2024-03-01 Fri>\n" +
		"  :PROPERTIES:\n" +
		"  :ID: 1\n" +
		"  :END:\n" +
		"  :LOGBOOK:\n" +
		"  CLOCK: [2024-02-27 Tue 09:00]\n" +
		"  :END:\n" +
		"  the description\n"
	doc := Parse(text)
	h := doc.Headers[0]
	require.Len(t, h.Planning, 1)
	require.NotNil(t, h.Properties)
	require.NotNil(t, h.Logbook)
	assert.Equal(t, "  the description\n", h.RawDescription)
	require.NotEmpty(t, h.Description)
}

// ==================== Keyword set scoping ====================

func TestParse_DefaultKeywordSetWhenNoConfig(t *testing.T) {
	doc := Parse("* TODO a\n* DONE b\n")
	require.Len(t, doc.TodoKeywordSets, 1)
	assert.True(t, doc.TodoKeywordSets[0].Default)
	assert.Equal(t, "TODO", doc.Headers[0].Title.Todo)
	assert.Equal(t, "DONE", doc.Headers[1].Title.Todo)
}

func TestParse_CustomDefaultKeywords(t *testing.T) {
	doc := ParseWithOptions("* WIP a\n", ParseOptions{
		DefaultTodoKeywords: []string{"WIP", "SHIPPED"},
	})
	assert.Equal(t, "WIP", doc.Headers[0].Title.Todo)
}

// TestParse_InterspersedConfigLines places three config lines before,
// between and after 15 headers: each produces an independent set in
// file order, and headers switch sets as the scanner passes each line.
func TestParse_InterspersedConfigLines(t *testing.T) {
	var b strings.Builder
	b.WriteString("#+TODO: AAA | ZZZ\n")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&b, "* AAA task %d\n", i)
	}
	b.WriteString("#+TYP_TODO: BBB MID | YYY\n")
	for i := 7; i < 15; i++ {
		fmt.Fprintf(&b, "* BBB task %d\n", i)
	}
	b.WriteString("#+TODO: CCC | XXX\n")

	doc := Parse(b.String())
	require.Len(t, doc.Headers, 15)
	require.Len(t, doc.TodoKeywordSets, 3)

	assert.Equal(t, []string{"AAA", "ZZZ"}, doc.TodoKeywordSets[0].KeywordNames())
	assert.Equal(t, []string{"ZZZ"}, doc.TodoKeywordSets[0].CompletedKeywords)
	assert.Equal(t, []string{"BBB", "MID", "YYY"}, doc.TodoKeywordSets[1].KeywordNames())
	assert.Equal(t, []string{"YYY"}, doc.TodoKeywordSets[1].CompletedKeywords)
	assert.Equal(t, []string{"CCC", "XXX"}, doc.TodoKeywordSets[2].KeywordNames())

	for i := 0; i < 7; i++ {
		assert.Equal(t, "AAA", doc.Headers[i].Title.Todo, "header %d", i)
	}
	for i := 7; i < 15; i++ {
		assert.Equal(t, "BBB", doc.Headers[i].Title.Todo, "header %d", i)
	}
}

func TestParse_ConfigLineInsideHeaderBody(t *testing.T) {
	text := "* AAA before switch\n#+TODO: AAA | ZZZ\n* AAA after switch\n"
	doc := Parse(text)
	require.Len(t, doc.Headers, 2)
	// Before the config line only the default set is active.
	assert.Equal(t, "", doc.Headers[0].Title.Todo)
	assert.Equal(t, "AAA", doc.Headers[1].Title.Todo)
	// The config line stays part of the first header's body.
	assert.Equal(t, "#+TODO: AAA | ZZZ\n", doc.Headers[0].RawDescription)
}

func TestParse_ConfigLineAsFinalLine(t *testing.T) {
	doc := Parse("* a headline\n#+TODO: LAST | OVER")
	require.Len(t, doc.TodoKeywordSets, 1)
	assert.Equal(t, []string{"LAST", "OVER"}, doc.TodoKeywordSets[0].KeywordNames())
}

func TestParse_IsDoneKeyword(t *testing.T) {
	doc := Parse("#+TODO: OPEN | SHIPPED\n* OPEN a\n")
	assert.True(t, doc.IsDoneKeyword("SHIPPED"))
	assert.False(t, doc.IsDoneKeyword("OPEN"))
}
