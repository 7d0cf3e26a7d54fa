package engine

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// InputMethodScope restricts a shortcut to one or both input methods.
type InputMethodScope uint8

const (
	ScopeAll InputMethodScope = iota
	ScopeTelexOnly
	ScopeVniOnly
)

// TriggerCondition controls when a shortcut fires: only once the word
// is complete (a break character follows), or as soon as the typed
// prefix matches (useful for short abbreviations the user never
// continues typing past).
type TriggerCondition uint8

const (
	TriggerAtWordBoundary TriggerCondition = iota
	TriggerImmediate
)

// CaseMode controls how a shortcut's trigger is matched against what
// was typed.
type CaseMode uint8

const (
	// CaseExact requires the typed word to match the trigger's case
	// exactly.
	CaseExact CaseMode = iota
	// CaseMatchCase matches case-insensitively, then re-cases the
	// replacement to mirror what was typed (all lower, all upper, or
	// capitalized).
	CaseMatchCase
)

// ShortcutEntry is one trigger -> replacement mapping. Grounded on
// original_source/core/src/engine/shortcut.rs's ShortcutEntry.
type ShortcutEntry struct {
	ID          uuid.UUID
	Trigger     string
	Replacement string
	Scope       InputMethodScope
	Condition   TriggerCondition
	Case        CaseMode
}

// ShortcutTable holds the shortcuts known to an Engine and resolves
// the longest matching trigger first, so "vd" and "vdu" can coexist
// without the shorter one always winning.
type ShortcutTable struct {
	entries map[uuid.UUID]ShortcutEntry
}

// NewShortcutTable returns an empty table. SPEC_FULL.md §5.2 decides
// that shortcuts ship disabled by default; callers that want the demo
// set use DefaultShortcuts() explicitly.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{entries: make(map[uuid.UUID]ShortcutEntry)}
}

// DefaultShortcuts returns a small demonstration set with stable,
// deterministic IDs (derived from the trigger text, so the same
// defaults carry the same ID across process restarts). Opt-in only —
// see SPEC_FULL.md §5.2.
func DefaultShortcuts() []ShortcutEntry {
	defaults := []struct {
		trigger, replacement string
	}{
		{"vn", "Việt Nam"},
		{"vd", "ví dụ"},
		{"vnd", "Việt Nam Đồng"},
	}
	var namespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	out := make([]ShortcutEntry, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, ShortcutEntry{
			ID:          uuid.NewSHA1(namespace, []byte(d.trigger)),
			Trigger:     d.trigger,
			Replacement: d.replacement,
			Scope:       ScopeAll,
			Condition:   TriggerAtWordBoundary,
			Case:        CaseMatchCase,
		})
	}
	return out
}

// Add registers entry, assigning it a fresh ID if entry.ID is the
// zero UUID. It returns an error if the trigger is empty.
func (t *ShortcutTable) Add(entry ShortcutEntry) (uuid.UUID, error) {
	if entry.Trigger == "" {
		return uuid.Nil, fmt.Errorf("engine: shortcut trigger must not be empty")
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	t.entries[entry.ID] = entry
	return entry.ID, nil
}

// Remove deletes the entry with the given ID, reporting whether one
// was found.
func (t *ShortcutTable) Remove(id uuid.UUID) bool {
	if _, ok := t.entries[id]; !ok {
		return false
	}
	delete(t.entries, id)
	return true
}

// Merge adds every entry from others into t, keeping their IDs.
func (t *ShortcutTable) Merge(others []ShortcutEntry) {
	for _, e := range others {
		t.entries[e.ID] = e
	}
}

// Entries returns a copy of every registered shortcut.
func (t *ShortcutTable) Entries() []ShortcutEntry {
	out := make([]ShortcutEntry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Trigger < out[j].Trigger })
	return out
}

// Match looks up the longest trigger that matches word under the
// given method and trigger condition, returning the replacement text
// to substitute (already re-cased per the entry's CaseMode) and true,
// or ("", false) if nothing matches.
func (t *ShortcutTable) Match(word string, method string, condition TriggerCondition) (string, bool) {
	var best *ShortcutEntry
	for _, e := range t.entries {
		if e.Condition != condition {
			continue
		}
		if e.Scope == ScopeTelexOnly && method != "Telex" {
			continue
		}
		if e.Scope == ScopeVniOnly && method != "VNI" {
			continue
		}
		if !matchesTrigger(e, word) {
			continue
		}
		if best == nil || len(e.Trigger) > len(best.Trigger) {
			ec := e
			best = &ec
		}
	}
	if best == nil {
		return "", false
	}
	return recase(best.Replacement, word, best.Case), true
}

func matchesTrigger(e ShortcutEntry, word string) bool {
	switch e.Case {
	case CaseExact:
		return word == e.Trigger
	default:
		return strings.EqualFold(word, e.Trigger)
	}
}

func recase(replacement, typed string, mode CaseMode) string {
	if mode == CaseExact || replacement == "" {
		return replacement
	}
	typedFirst, _ := utf8.DecodeRuneInString(typed)
	switch {
	case typed == strings.ToUpper(typed) && typed != strings.ToLower(typed):
		return strings.ToUpper(replacement)
	case unicode.IsUpper(typedFirst):
		first, size := utf8.DecodeRuneInString(replacement)
		return string(unicode.ToUpper(first)) + replacement[size:]
	default:
		return replacement
	}
}
