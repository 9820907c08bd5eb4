// keywords.go parses #+TODO in-buffer configuration lines into keyword sets.
package org

import (
	"regexp"
	"strings"
)

// TodoKeyword is one keyword of a set, with its optional shortcut and
// logging annotations from a (x!/@)-style suffix.
type TodoKeyword struct {
	Name             string
	Shortcut         string // single shortcut character, "" if none
	NoteOnEntry      bool   // @ before the slash
	TimestampOnEntry bool   // ! before the slash
	NoteOnExit       bool   // @ after the slash
	TimestampOnExit  bool   // ! after the slash
}

// TodoKeywordSet is one ordered keyword configuration, either parsed
// from a #+TODO/#+TYP_TODO line or synthesized as the default set.
type TodoKeywordSet struct {
	ConfigLine        string // raw source line, "" for the default set
	Keywords          []TodoKeyword
	CompletedKeywords []string // keywords after the | separator
	Default           bool
}

// KeywordNames returns the keyword names in source order.
func (s *TodoKeywordSet) KeywordNames() []string {
	names := make([]string, len(s.Keywords))
	for i, kw := range s.Keywords {
		names[i] = kw.Name
	}
	return names
}

// Contains reports whether name is a keyword of this set.
func (s *TodoKeywordSet) Contains(name string) bool {
	for _, kw := range s.Keywords {
		if kw.Name == name {
			return true
		}
	}
	return false
}

// IsCompleted reports whether name is one of the set's completed keywords.
func (s *TodoKeywordSet) IsCompleted(name string) bool {
	for _, done := range s.CompletedKeywords {
		if done == name {
			return true
		}
	}
	return false
}

// The directive name matches case-insensitively; the keyword tokens in
// the value are case-sensitive and stored as written.
var todoConfigRegexp = regexp.MustCompile(`^#\+(?i:TODO|TYP_TODO):[ \t]*(.*?)[ \t]*$`)

// ParseTodoKeywordConfig parses a single source line as a keyword
// configuration. It returns nil for any line that is not a #+TODO or
// #+TYP_TODO setting, or whose value holds no keywords.
func ParseTodoKeywordConfig(line string) *TodoKeywordSet {
	m := todoConfigRegexp.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	value := m[1]

	var notDone, done []string
	if i := strings.IndexByte(value, '|'); i >= 0 {
		notDone = strings.Fields(value[:i])
		done = strings.Fields(value[i+1:])
	} else {
		// Without a separator all keywords but the last are not-done.
		all := strings.Fields(value)
		if len(all) > 0 {
			notDone = all[:len(all)-1]
			done = all[len(all)-1:]
		}
	}
	if len(notDone)+len(done) == 0 {
		return nil
	}

	set := &TodoKeywordSet{ConfigLine: line}
	seen := map[string]bool{}
	add := func(tokens []string, completed bool) {
		for _, tok := range tokens {
			kw := parseKeywordToken(tok)
			if kw.Name == "" || seen[kw.Name] {
				continue
			}
			seen[kw.Name] = true
			set.Keywords = append(set.Keywords, kw)
			if completed {
				set.CompletedKeywords = append(set.CompletedKeywords, kw.Name)
			}
		}
	}
	add(notDone, false)
	add(done, true)
	if len(set.Keywords) == 0 || len(set.CompletedKeywords) == 0 {
		return nil
	}
	return set
}

// DefaultTodoKeywordSet builds the implicit set used when a document has
// no explicit #+TODO line. The keyword list comes from application
// configuration; the no-separator rule applies, so the last keyword is
// the completed one.
func DefaultTodoKeywordSet(keywords []string) *TodoKeywordSet {
	if len(keywords) == 0 {
		keywords = []string{"TODO", "DONE"}
	}
	set := ParseTodoKeywordConfig("#+TODO: " + strings.Join(keywords, " "))
	if set == nil {
		set = &TodoKeywordSet{
			Keywords:          []TodoKeyword{{Name: "TODO"}, {Name: "DONE"}},
			CompletedKeywords: []string{"DONE"},
		}
	}
	set.ConfigLine = ""
	set.Default = true
	return set
}

// parseKeywordToken splits a keyword token like DONE(d!/@) into the
// keyword name and its shortcut/logging annotations.
func parseKeywordToken(tok string) TodoKeyword {
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return TodoKeyword{Name: tok}
	}
	kw := TodoKeyword{Name: tok[:open]}
	ann := tok[open+1 : len(tok)-1]

	entry, exit := ann, ""
	if i := strings.IndexByte(ann, '/'); i >= 0 {
		entry, exit = ann[:i], ann[i+1:]
	}
	if entry != "" && entry[0] != '!' && entry[0] != '@' {
		kw.Shortcut = entry[:1]
		entry = entry[1:]
	}
	for _, c := range entry {
		switch c {
		case '!':
			kw.TimestampOnEntry = true
		case '@':
			kw.NoteOnEntry = true
		}
	}
	for _, c := range exit {
		switch c {
		case '!':
			kw.TimestampOnExit = true
		case '@':
			kw.NoteOnExit = true
		}
	}
	return kw
}
