// Package org parses Org outline text into a queryable document tree
// and exports that tree back to text. Parsing is permissive: malformed
// syntax degrades to literal text. A parse and export cycle of a
// document written with the standard formatting conventions is
// byte-exact.
package org

import "strings"

// Document is the result of parsing a full Org file.
// All fields are value trees built once per parse; nothing is shared
// between documents and nothing is mutated after Parse returns.
type Document struct {
	Preamble        string            // raw text before the first headline, verbatim
	Headers         []*Header         // outline nodes in file order
	TodoKeywordSets []*TodoKeywordSet // keyword sets in order of first appearance

	// NoFinalNewline records that the source text did not end with a
	// newline, so export can reproduce the file byte for byte.
	NoFinalNewline bool
}

// LinesBeforeHeadings returns the preamble split into lines (without
// terminators). The raw Preamble field stays authoritative for export.
func (d *Document) LinesBeforeHeadings() []string {
	if d.Preamble == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(d.Preamble, "\n"), "\n")
}

// IsDoneKeyword reports whether kw is a completed keyword in any of the
// document's keyword sets.
func (d *Document) IsDoneKeyword(kw string) bool {
	for _, set := range d.TodoKeywordSets {
		if set.IsCompleted(kw) {
			return true
		}
	}
	return false
}

// Header is one outline node: a title line plus its attached metadata
// and body content.
type Header struct {
	Level       int            // number of leading stars, always >= 1
	Title       TitleLine      // parsed first line of the header
	Planning    []PlanningItem // SCHEDULED/DEADLINE/CLOSED items, source order
	Properties  *PropertyDrawer
	Logbook     *Logbook
	Description []InlineNode // parsed body after planning and drawers
	// RawDescription is the exact source span of the body after planning
	// items and drawers were split off. It is authoritative for round
	// trips; Description is derived from it.
	RawDescription string
}

// TitleLine is the decomposed first line of a header.
type TitleLine struct {
	Raw      string       // full source line without its newline
	Todo     string       // TODO keyword, "" if none recognized
	Priority string       // priority cookie letter ("A"), "" if none
	RawTitle string       // title text between keyword/priority and tags
	Title    []InlineNode // inline parse of RawTitle
	Tags     []string     // trailing :tag1:tag2: list, nil if none
}

// PlanningKeyword is one of the three planning line keywords.
type PlanningKeyword string

const (
	PlanningScheduled PlanningKeyword = "SCHEDULED"
	PlanningDeadline  PlanningKeyword = "DEADLINE"
	PlanningClosed    PlanningKeyword = "CLOSED"
)

// PlanningItem is a single KEYWORD: <timestamp> pair from a planning line.
type PlanningItem struct {
	Keyword   PlanningKeyword
	Timestamp Timestamp
	Raw       string // exact source substring of this item
}

// Property is a single key/value pair from a :PROPERTIES: drawer.
// Keys compare case-insensitively but are stored as written.
type Property struct {
	Key   string
	Value string
}

// PropertyDrawer is an ordered :PROPERTIES: ... :END: block.
type PropertyDrawer struct {
	Properties []Property
}

// Get returns the value for key, comparing keys case-insensitively.
func (d *PropertyDrawer) Get(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, p := range d.Properties {
		if strings.EqualFold(p.Key, key) {
			return p.Value, true
		}
	}
	return "", false
}

// LogbookEntryKind classifies a logbook line.
type LogbookEntryKind int

const (
	LogbookNote  LogbookEntryKind = iota // unrecognized line, kept verbatim
	LogbookClock                         // CLOCK: ... line
	LogbookState                         // - State "DONE" from "TODO" ... line
)

// LogbookEntry is one line of a :LOGBOOK: drawer, raw text preserved.
type LogbookEntry struct {
	Raw  string // full source line without its newline
	Kind LogbookEntryKind
}

// Logbook is an ordered :LOGBOOK: ... :END: block.
type Logbook struct {
	Entries []LogbookEntry
}

// InlineKind tags the variant of an InlineNode.
type InlineKind int

const (
	InlineText          InlineKind = iota // plain text run
	InlineBold                            // *bold*
	InlineItalic                          // /italic/
	InlineUnderline                       // _underline_
	InlineStrikethrough                   // +struck+
	InlineCode                            // ~code~
	InlineVerbatim                        // =verbatim=
	InlineLink                            // [[url][description]]
	InlineURL                             // bare http:// or https:// URL
	InlineWWWURL                          // bare www. URL
	InlineEmail                           // bare email address
	InlinePhone                           // bare +digits phone number
	InlineCookie                          // statistics cookie [n/m] or [n%]
	InlineTimestamp                       // <date> or [date]
)

// InlineNode is one node of the inline markup tree. The Raw spans of a
// parsed sequence exactly partition their source string, so export can
// reconstruct it without consulting anything else.
type InlineNode struct {
	Kind InlineKind
	Raw  string // exact source span of this node

	// Delimiter is the markup character actually used in the source
	// (one of * / _ + = ~) for the markup variants.
	Delimiter byte
	// Children holds the nested inline parse of a markup span's content.
	Children []InlineNode

	// LinkURL and LinkDesc are set for InlineLink nodes.
	LinkURL  string
	LinkDesc string

	// Timestamp is set for InlineTimestamp nodes.
	Timestamp *Timestamp
}
