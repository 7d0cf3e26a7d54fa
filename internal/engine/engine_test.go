package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineSetMethodResetsBuffer(t *testing.T) {
	e := newTelexEngine()
	typeSequence(e, "as")
	require.NotEmpty(t, e.GetPreedit())

	e.SetMethod("VNI")
	assert.Empty(t, e.GetPreedit(), "switching input methods mid-word should clear the buffer")
}

func TestEngineDisabledPassesThrough(t *testing.T) {
	e := newTelexEngine()
	e.SetEnabled(false)
	res := e.OnKey(KeyA, false, false, false)
	assert.Equal(t, ActionNone, res.Action)
}

func TestEngineEscapeRestoresRawText(t *testing.T) {
	e := newTelexEngine()
	typeSequence(e, "as") // composes "á"
	res := e.OnKey(KeyEscape, false, false, false)
	require.Equal(t, ActionSend, res.Action)
	assert.Equal(t, "as", string(res.Chars))
	assert.Empty(t, e.GetPreedit())
}

func TestEngineBackspaceOverSpaceResumesPreviousWord(t *testing.T) {
	e := newTelexEngine()
	typeSequence(e, "as")
	e.OnKey(KeySpace, false, false, false)
	assert.Empty(t, e.GetPreedit())

	res := e.OnKey(KeyBackspace, false, false, false)
	require.Equal(t, ActionSend, res.Action, "backspace over the single space deletes it from the host")
	assert.Equal(t, 1, res.Backspace)
	assert.Empty(t, res.Chars)
	assert.Equal(t, "á", e.GetPreedit(), "the previous word's composition state should be restored")
}

func TestEngineBackspaceOverMultipleSpacesDoesNotRestoreEarly(t *testing.T) {
	e := newTelexEngine()
	typeSequence(e, "as")
	e.OnKey(KeySpace, false, false, false)
	e.OnKey(KeySpace, false, false, false)
	assert.Empty(t, e.GetPreedit())

	res := e.OnKey(KeyBackspace, false, false, false)
	require.Equal(t, ActionSend, res.Action)
	assert.Equal(t, 1, res.Backspace, "deletes one of the two trailing spaces")
	assert.Empty(t, e.GetPreedit(), "the word isn't restored until every trailing space is gone")

	res = e.OnKey(KeyBackspace, false, false, false)
	require.Equal(t, ActionSend, res.Action)
	assert.Equal(t, 1, res.Backspace)
	assert.Equal(t, "á", e.GetPreedit(), "restores only once spacesAfterCommit reaches zero")
}

func TestEngineBackspaceAfterPunctuationDoesNotRestore(t *testing.T) {
	e := newTelexEngine()
	typeSequence(e, "ab")
	e.OnKey(KeyDot, false, false, false)
	assert.Empty(t, e.GetPreedit())

	res := e.OnKey(KeyBackspace, false, false, false)
	assert.Equal(t, ActionNone, res.Action, "punctuation breaks never seed word history")
	assert.Empty(t, e.GetPreedit(), "nothing should be restored into the compose buffer")

	res = e.OnKey(KeyS, false, false, false)
	require.Equal(t, ActionSend, res.Action)
	assert.Equal(t, "s", string(res.Chars), "a fresh word after punctuation starts clean, not composing against 'ab'")
}

func TestEngineEditedPrefixSuppressesShortcutMatch(t *testing.T) {
	e := newTelexEngine()
	_, err := e.Shortcuts().Add(ShortcutEntry{
		Trigger:     "a",
		Replacement: "MATCHED",
		Scope:       ScopeAll,
		Condition:   TriggerAtWordBoundary,
		Case:        CaseExact,
	})
	require.NoError(t, err)

	typeSequence(e, "dd") // "đ"
	e.OnKey(KeySpace, false, false, false)
	e.OnKey(KeyBackspace, false, false, false) // undoes the space, restores "đ"
	e.OnKey(KeyBackspace, false, false, false) // pops "đ", buffer now empty
	e.OnKey(KeyBackspace, false, false, false) // empty-buffer backspace: marks the prefix as untracked

	res := e.OnKey(KeyA, false, false, false)
	require.Equal(t, ActionSend, res.Action)
	res = e.OnKey(KeySpace, false, false, false)
	assert.Equal(t, ActionNone, res.Action, "shortcut 'a' must not match after editing into untracked text")
}

func TestEngineEscapeNoOpWithoutTransform(t *testing.T) {
	e := newTelexEngine()
	typeSequence(e, "bo") // no tone/mark/stroke ever applied
	res := e.OnKey(KeyEscape, false, false, false)
	assert.Equal(t, ActionNone, res.Action, "ESC with no modifiers applied is a no-op")
	assert.Equal(t, "bo", e.GetPreedit())
}

func TestEngineShortcutUppercaseReplacement(t *testing.T) {
	e := newTelexEngine()
	_, err := e.Shortcuts().Add(ShortcutEntry{
		Trigger:     "vd",
		Replacement: "ví dụ",
		Scope:       ScopeAll,
		Condition:   TriggerAtWordBoundary,
		Case:        CaseMatchCase,
	})
	require.NoError(t, err)

	e.OnKey(KeyV, true, false, false)
	e.OnKey(KeyD, true, false, false)
	res := e.OnKey(KeySpace, false, false, false)
	require.Equal(t, ActionSend, res.Action)
	assert.Equal(t, "VÍ DỤ ", string(res.Chars))
}

func TestEngineRestoreWordReseedsComposition(t *testing.T) {
	e := newTelexEngine()
	e.RestoreWord("tưới")
	assert.Equal(t, "tưới", e.GetPreedit())

	// A further tone-mark keystroke should still apply against the
	// restored composition state, not against raw ASCII.
	res := e.OnKey(KeyF, false, false, false)
	require.Equal(t, ActionSend, res.Action)
	assert.NotEqual(t, "tưới", string(res.Chars))
}

func TestEngineShortcutAtWordBoundary(t *testing.T) {
	e := newTelexEngine()
	e.Shortcuts().Merge(DefaultShortcuts())
	typeSequence(e, "vn")
	res := e.OnKey(KeySpace, false, false, false)
	require.Equal(t, ActionSend, res.Action)
	assert.Equal(t, "Việt Nam ", string(res.Chars))
}

func TestEngineDefaultShortcutsAreOptIn(t *testing.T) {
	e := newTelexEngine()
	typeSequence(e, "vn")
	res := e.OnKey(KeySpace, false, false, false)
	assert.Equal(t, ActionNone, res.Action, "shortcuts must be off by default per SPEC_FULL")
}

func TestEngineCtrlKeyNeverTransforms(t *testing.T) {
	e := newTelexEngine()
	res := e.OnKey(KeyA, false, true, false)
	assert.Equal(t, ActionNone, res.Action)
}

func TestEngineResetClearsUndoState(t *testing.T) {
	e := newTelexEngine()
	typeSequence(e, "as")
	e.Reset()
	res := e.OnKey(KeyBackspace, false, false, false)
	assert.Equal(t, ActionNone, res.Action, "nothing left to undo after Reset")
}
