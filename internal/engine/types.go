// Package engine provides the core input method engine for Vietnamese
// typing: a per-keystroke transformer that turns ASCII keys into
// Vietnamese Unicode text, for a host to apply to whatever text field
// currently has focus.
package engine

// Tone represents a vowel-shape diacritic applied independently of
// tone marks: the circumflex (â, ê, ô) and the horn (ơ, ư) or breve
// (ă), collapsed into one field since a vowel never carries both at
// once.
type Tone uint8

const (
	ToneFlat Tone = iota
	ToneCircumflex
	ToneHorn
)

// Mark represents one of the five Vietnamese tone marks, or their
// absence (thanh ngang).
type Mark uint8

const (
	MarkNone Mark = iota
	MarkSac
	MarkHuyen
	MarkHoi
	MarkNga
	MarkNang
)

// Char is one logical character in the word currently being typed.
// It is deliberately small and copyable: Buffer stores these by value
// in a fixed array so word-history snapshots and undo are just
// struct copies, not allocations.
type Char struct {
	Key    Key
	Caps   bool
	Tone   Tone
	Mark   Mark
	Stroke bool // true once 'd' has become 'đ'

	// wAsVowel records that this char's current Tone == ToneHorn was
	// produced by a bare 'w' acting as a vowel by itself (not by 'w'
	// horning an existing a/o/u). It is the provenance flag decided
	// in SPEC_FULL.md §5.1: it tracks how the horn was produced, not
	// merely whether one is present.
	wAsVowel bool
}

// HasTone reports whether the char carries a circumflex or horn/breve.
func (c Char) HasTone() bool { return c.Tone != ToneFlat }

// HasMark reports whether the char carries a tone mark.
func (c Char) HasMark() bool { return c.Mark != MarkNone }

// Action describes what a Result asks the host to do.
type Action uint8

const (
	// ActionNone means the key was not handled; the host should let
	// it fall through to normal text insertion.
	ActionNone Action = iota
	// ActionSend means the host should delete Backspace runes of
	// already-committed preedit text and then insert Chars.
	ActionSend
)

// Result is the engine's per-keystroke answer: how many characters
// the host must delete from what it already displayed, and what to
// type in their place. An empty Result with Action == ActionNone
// means "do nothing, pass the key through".
type Result struct {
	Action    Action
	Backspace int
	Chars     []rune
}

func noResult() Result { return Result{Action: ActionNone} }

func sendResult(backspace int, chars []rune) Result {
	return Result{Action: ActionSend, Backspace: backspace, Chars: chars}
}

// transformKind tags the single most recent modifier transform
// applied to the buffer, so one Backspace can undo exactly it without
// deleting the whole word (the Last-Transform rule).
type transformKind uint8

const (
	transformNone transformKind = iota
	transformMark
	transformTone
	transformStroke
	transformWAsVowel
	transformWShortcutSkipped
)

// lastTransform records enough to reverse the most recent modifier
// keystroke: which char it touched and what it looked like before.
type lastTransform struct {
	kind   transformKind
	pos    int
	before Char
}
