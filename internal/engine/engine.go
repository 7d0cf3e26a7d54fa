package engine

// Engine is the per-word state machine that turns a stream of
// keystrokes into Vietnamese text. One Engine tracks exactly one
// in-progress word at a time; committed words only live on in the
// word-history ring, for post-space Backspace recovery.
//
// Grounded end-to-end on original_source/core/src/engine/mod.rs,
// which is the single most load-bearing source for this file (see
// DESIGN.md).
type Engine struct {
	config *EngineConfig
	method Method

	buf     Buffer
	rawKeys rawKeyLog
	history wordHistory

	// spacesAfterCommit counts consecutive SPACEs typed since the last
	// word commit. Backspace decrements it on an empty buffer and only
	// restores from history once it reaches zero, so "abc  " (two
	// trailing spaces) followed by one Backspace deletes a space
	// instead of prematurely pulling "abc" back into the buffer.
	spacesAfterCommit int

	// hasNonLetterPrefix is set once an empty-buffer Backspace reaches
	// into text the engine never composed, so it no longer knows what
	// actually precedes the cursor. Shortcut matching is suppressed
	// until this clears on the next full Reset.
	hasNonLetterPrefix bool

	rawMode bool

	// lastLen is the rune length of the composed word as last sent to
	// the host, so the next Result knows exactly how many trailing
	// preedit characters to delete before sending the new composition
	// — simpler and more robust than trying to infer it from which
	// position a transform touched.
	lastLen int

	last *lastTransform

	skipWShortcut bool
	enabled       bool

	shortcuts *ShortcutTable
}

// NewEngine creates an Engine with the given configuration. A nil
// config uses DefaultConfig().
func NewEngine(config *EngineConfig) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	e := &Engine{
		config:    config,
		enabled:   true,
		shortcuts: NewShortcutTable(),
	}
	e.applyMethodName(config.Method)
	if config.UseDefaultShortcuts {
		e.shortcuts.Merge(DefaultShortcuts())
	}
	return e
}

func (e *Engine) applyMethodName(name string) {
	if name == "VNI" {
		e.method = NewVNIMethod()
	} else {
		e.method = NewTelexMethod()
	}
}

// SetMethod switches the active input method ("Telex" or "VNI") and
// clears any in-progress word, since a half-typed word under one
// method's trigger keys has no meaningful interpretation under the
// other.
func (e *Engine) SetMethod(name string) {
	e.applyMethodName(name)
	e.Reset()
}

// SetEnabled turns key processing on or off. Disabling clears the
// in-progress word, its undo state, and the word history, so
// re-enabling always starts from a fresh word.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
	if !enabled {
		e.Reset()
		e.clearHistory()
	}
}

// SetSkipWShortcut disables bare 'w' from ever becoming 'ư' by
// itself; with it enabled, 'w' only ever acts as a horn modifier on
// an existing a/o/u, never as a standalone vowel, and the ww->w
// revert path never triggers because there is never a w-as-vowel
// transform to undo (SPEC_FULL.md §5.3).
func (e *Engine) SetSkipWShortcut(skip bool) { e.skipWShortcut = skip }

// Shortcuts returns the engine's shortcut table for the host to
// inspect or mutate (add/remove entries).
func (e *Engine) Shortcuts() *ShortcutTable { return e.shortcuts }

// Reset clears the in-progress word and its undo state. Word history
// and spacesAfterCommit survive a Reset deliberately — a SPACE commit
// calls Reset right after seeding history with the word it just
// finished, and a later Backspace needs that entry still there.
func (e *Engine) Reset() {
	e.buf.Clear()
	e.rawKeys.clear()
	e.rawMode = false
	e.last = nil
	e.lastLen = 0
	e.hasNonLetterPrefix = false
}

// clearHistory drops the word-history ring and the pending-space
// counter, so a later Backspace has no stale word left to restore.
// Called on ESC, non-space word breaks, and disable — every place
// that ends a word without a SPACE commit.
func (e *Engine) clearHistory() {
	e.history.clear()
	e.spacesAfterCommit = 0
}

// GetPreedit returns the Vietnamese text composed so far for the
// in-progress word.
func (e *Engine) GetPreedit() string { return string(e.buf.ToRunes()) }

// RestoreWord re-seeds the buffer from plain text typed or corrected
// outside the engine (SPEC_FULL.md §4), decomposing each rune back
// into a Char via DecomposeVowel so that subsequent modifier
// keystrokes continue to behave correctly against it. The word did
// not arrive as engine keystrokes, so there is no raw ASCII to log;
// an ESC immediately after RestoreWord has nothing to replay.
func (e *Engine) RestoreWord(word string) {
	e.Reset()
	for _, r := range word {
		if key, tone, mark, caps, ok := DecomposeVowel(r); ok {
			e.buf.Push(Char{Key: key, Tone: tone, Mark: mark, Caps: caps})
			continue
		}
		if r == 'đ' || r == 'Đ' {
			e.buf.Push(Char{Key: KeyD, Stroke: true, Caps: r == 'Đ'})
			continue
		}
		lower := r
		caps := false
		if r >= 'A' && r <= 'Z' {
			lower = r + 0x20
			caps = true
		}
		if lower >= 'a' && lower <= 'z' {
			e.buf.Push(Char{Key: Key(lower), Caps: caps})
		}
	}
	e.lastLen = len(e.buf.ToRunes())
}

// OnKey processes one keystroke and reports what the host should do.
func (e *Engine) OnKey(key Key, caps bool, ctrl bool, shift bool) Result {
	if !e.enabled || ctrl {
		e.Reset()
		e.clearHistory()
		return noResult()
	}

	switch key {
	case KeyEscape:
		return e.handleEscape()
	case KeyBackspace:
		return e.handleBackspace()
	}

	if e.buf.IsEmpty() && IsRawModePrefix(key) {
		e.rawMode = true
		e.buf.Push(Char{Key: key, Caps: caps})
		e.rawKeys.push(key, caps)
		return noResult()
	}

	if key == KeySpace {
		return e.handleSpace()
	}
	if IsWordBreak(key) {
		return e.handleBreak()
	}

	if e.rawMode {
		e.buf.Push(Char{Key: key, Caps: caps})
		e.rawKeys.push(key, caps)
		return noResult()
	}

	if !IsLetter(key) && !IsDigit(key) {
		// Unrecognized key inside a word: flush and pass through.
		return e.handleBreak()
	}

	return e.handleContentKey(key, caps)
}

// handleEscape restores the literal ASCII typed for the word, but
// only when some tone/mark/stroke transform actually changed it — an
// untouched buffer has nothing for ESC to undo.
func (e *Engine) handleEscape() Result {
	if e.buf.IsEmpty() || !hasAnyTransform(&e.buf) {
		return noResult()
	}
	raw := e.rawKeys.toRunes()
	backspace := e.lastLen
	e.Reset()
	e.clearHistory()
	return sendResult(backspace, raw)
}

func hasAnyTransform(b *Buffer) bool {
	for _, c := range b.Chars() {
		if c.HasTone() || c.HasMark() || c.Stroke {
			return true
		}
	}
	return false
}

func (e *Engine) handleBackspace() Result {
	if e.last != nil {
		pos := e.last.pos
		before := e.last.before
		e.last = nil
		if c := e.buf.At(pos); c != nil {
			*c = before
		}
		e.rawKeys.pop()
		composed := e.buf.ToRunes()
		res := sendResult(e.lastLen, composed)
		e.lastLen = len(composed)
		return res
	}

	if e.buf.IsEmpty() {
		if e.spacesAfterCommit > 0 {
			e.spacesAfterCommit--
			if e.spacesAfterCommit == 0 {
				if prev, ok := e.history.popLast(); ok {
					e.buf = prev.buf
					e.rawKeys = prev.raw
					e.lastLen = len(e.buf.ToRunes())
				}
			}
			return sendResult(1, nil)
		}
		// Backspacing past text the engine never composed: a later
		// shortcut match can no longer trust what precedes the cursor.
		e.hasNonLetterPrefix = true
		return noResult()
	}

	e.buf.Pop()
	e.rawKeys.pop()
	e.lastLen = len(e.buf.ToRunes())
	return noResult()
}

// handleSpace ends the current word on a SPACE: it is the only break
// key that seeds word history, since only a SPACE commit is eligible
// for post-space Backspace recovery.
func (e *Engine) handleSpace() Result {
	if e.buf.IsEmpty() {
		if e.spacesAfterCommit > 0 {
			e.spacesAfterCommit++
		}
		return noResult()
	}

	result := e.matchWordBoundaryShortcut()
	if result.Action == ActionSend {
		// The Result consumes the SPACE key, so it types the space too.
		result.Chars = append(result.Chars, ' ')
	}
	e.history.push(e.buf, e.rawKeys)
	e.spacesAfterCommit = 1
	e.Reset()
	return result
}

// handleBreak ends the current word on any non-space break key
// (punctuation, ESC-like control keys routed here, or an unrecognized
// key). Unlike handleSpace it never seeds word history: only a SPACE
// commit is recoverable, so any stale history from an earlier SPACE is
// dropped here too.
func (e *Engine) handleBreak() Result {
	if e.buf.IsEmpty() {
		e.clearHistory()
		return noResult()
	}

	result := e.matchWordBoundaryShortcut()
	e.Reset()
	e.clearHistory()
	return result
}

// matchWordBoundaryShortcut checks the current word against the
// shortcut table without touching buffer/history state, so both break
// paths can share it before they diverge on what happens next.
func (e *Engine) matchWordBoundaryShortcut() Result {
	if e.hasNonLetterPrefix {
		return noResult()
	}
	word := composedWord(&e.buf)
	repl, ok := e.shortcuts.Match(word, e.method.Name(), TriggerAtWordBoundary)
	if !ok {
		return noResult()
	}
	return sendResult(e.lastLen, []rune(repl))
}

// composedWord renders the buffer's composed Vietnamese text exactly
// as typed, case included, so ShortcutTable.Match can tell an
// all-uppercase or title-case trigger apart from a lowercase one.
func composedWord(b *Buffer) string {
	rs := make([]rune, 0, b.Len())
	for _, c := range b.Chars() {
		r, ok := Compose(c)
		if ok {
			rs = append(rs, r)
		}
	}
	return string(rs)
}

func (e *Engine) handleContentKey(key Key, caps bool) Result {
	e.rawKeys.push(key, caps)
	if mt := e.method.Mark(key); mt.Trigger {
		if res, ok := e.tryMark(key, caps, mt); ok {
			return res
		}
	}
	if tt := e.method.Tone(key); tt.Trigger {
		if res, ok := e.tryTone(key, caps, tt); ok {
			return res
		}
	}
	if e.method.IsStrokeKey(key) {
		if res, ok := e.tryStroke(caps); ok {
			return res
		}
	}
	if IsLetter(key) && e.method.IsHornKey(key) && !e.skipWShortcut {
		if res, ok := e.tryWRevert(key, caps); ok {
			return res
		}
		if res, ok := e.tryWAsVowel(key, caps); ok {
			return res
		}
	}

	e.pushLiteral(key, caps)
	return e.emitWord()
}

func (e *Engine) pushLiteral(key Key, caps bool) {
	e.buf.Push(Char{Key: key, Caps: caps})
	e.last = nil
	// An 'o' typed right after 'ư' takes the horn too: ưo becomes ươ.
	if key == KeyO {
		last, prev := e.buf.Last(), e.buf.At(e.buf.Len()-2)
		if last.Key == KeyO && prev != nil && prev.Key == KeyU && prev.Tone == ToneHorn {
			last.Tone = ToneHorn
		}
	}
}

func (e *Engine) emitWord() Result {
	if !e.hasNonLetterPrefix {
		word := composedWord(&e.buf)
		if repl, ok := e.shortcuts.Match(word, e.method.Name(), TriggerImmediate); ok {
			backspace := e.lastLen
			e.Reset()
			return sendResult(backspace, []rune(repl))
		}
	}
	composed := e.buf.ToRunes()
	res := sendResult(e.lastLen, composed)
	e.lastLen = len(composed)
	return res
}

// tryMark applies a tone-mark trigger key. If key can't validly
// transform the buffer right now (no vowel yet, structurally invalid
// syllable, or a foreign-word pattern), ok is false and the caller
// falls through to literal insertion.
func (e *Engine) tryMark(key Key, caps bool, mt MarkTrigger) (Result, bool) {
	if e.buf.IsEmpty() {
		return Result{}, false
	}
	if e.config.EnableValidation {
		if !IsValidForTransform(&e.buf) {
			return Result{}, false
		}
		if !hasModifierMarkedVowel(&e.buf) && IsForeignWordPattern(&e.buf, key) {
			return Result{}, false
		}
	}
	pos := TonePosition(&e.buf)
	if pos < 0 {
		return Result{}, false
	}
	c := e.buf.At(pos)
	before := *c
	if mt.Remove {
		c.Mark = MarkNone
	} else {
		c.Mark = mt.Mark
	}
	e.last = &lastTransform{kind: transformMark, pos: pos, before: before}
	return e.emitWord(), true
}

// hasModifierMarkedVowel reports whether any vowel in the buffer
// already carries a circumflex or horn — used to gate
// IsForeignWordPattern the same way try_mark does in
// original_source: once a word has a genuine Vietnamese-only
// modifier on it, the foreign-word heuristic no longer applies.
func hasModifierMarkedVowel(b *Buffer) bool {
	for _, c := range b.Chars() {
		if IsVowel(c.Key) && c.HasTone() {
			return true
		}
	}
	return false
}

// tryTone applies a circumflex/horn/breve trigger key to whichever of
// its Targets is eligible: for a doubling trigger (Telex a/e/o) that
// means the most recently typed char matching one of Targets and not
// yet carrying this Tone; for a free-standing trigger (Telex w, VNI
// 6/7/8) it means the most recent matching vowel anywhere in the
// buffer, plus uo-compound normalization for a horn trigger whose
// Targets include both u and o (Telex w, VNI 7).
func (e *Engine) tryTone(key Key, caps bool, tt ToneTrigger) (Result, bool) {
	if e.config.EnableValidation && !IsValidForTransform(&e.buf) {
		return Result{}, false
	}
	if p1, p2, ok := hornPairPositions(&e.buf); ok && tt.Tone == ToneHorn && keyIn(KeyU, tt.Targets) && keyIn(KeyO, tt.Targets) {
		c1, c2 := e.buf.At(p1), e.buf.At(p2)
		if c1.Tone != ToneHorn || c2.Tone != ToneHorn {
			before2 := *c2
			c1.Tone, c2.Tone = ToneHorn, ToneHorn
			// Only the second position is undoable in one Backspace;
			// matches the Last-Transform granularity used everywhere
			// else in the engine.
			e.last = &lastTransform{kind: transformTone, pos: p2, before: before2}
			return e.emitWord(), true
		}
	}

	target := -1
	for i := e.buf.Len() - 1; i >= 0; i-- {
		c := e.buf.At(i)
		if !keyIn(c.Key, tt.Targets) {
			continue
		}
		if c.Tone == tt.Tone {
			continue
		}
		target = i
		break
	}
	if target < 0 {
		return Result{}, false
	}
	c := e.buf.At(target)
	before := *c
	c.Tone = tt.Tone
	e.last = &lastTransform{kind: transformTone, pos: target, before: before}
	return e.emitWord(), true
}

func keyIn(k Key, targets []Key) bool {
	for _, t := range targets {
		if k == t {
			return true
		}
	}
	return false
}

func (e *Engine) tryStroke(caps bool) (Result, bool) {
	last := e.buf.Last()
	if last == nil || last.Key != KeyD || last.Stroke {
		return Result{}, false
	}
	before := *last
	last.Stroke = true
	e.last = &lastTransform{kind: transformStroke, pos: e.buf.Len() - 1, before: before}
	return e.emitWord(), true
}

// tryWRevert implements the ww->w revert path (SPEC_FULL.md §5.3):
// a second horn-trigger key right after a w-as-vowel transform undoes
// that transform, turning 'ư' back into a literal 'w'.
func (e *Engine) tryWRevert(key Key, caps bool) (Result, bool) {
	if e.last == nil || e.last.kind != transformWAsVowel {
		return Result{}, false
	}
	pos := e.last.pos
	last := e.buf.Last()
	if last == nil || e.buf.Len()-1 != pos || !last.wAsVowel {
		return Result{}, false
	}
	before := *last
	*last = Char{Key: key, Caps: caps}
	e.last = &lastTransform{kind: transformWShortcutSkipped, pos: pos, before: before}
	return e.emitWord(), true
}

// tryWAsVowel implements a bare 'w' becoming 'ư' on its own, when
// there is no eligible a/o/u in the buffer for it to horn instead.
func (e *Engine) tryWAsVowel(key Key, caps bool) (Result, bool) {
	for i := e.buf.Len() - 1; i >= 0; i-- {
		c := e.buf.At(i)
		if keyIn(c.Key, []Key{KeyA, KeyO, KeyU}) && c.Tone != ToneHorn {
			return Result{}, false // a genuine horn target exists; let tryTone handle it
		}
	}
	if !e.config.EnableWAsVowel {
		return Result{}, false
	}
	c := Char{Key: KeyU, Tone: ToneHorn, Caps: caps, wAsVowel: true}
	e.buf.Push(c)
	e.last = &lastTransform{kind: transformWAsVowel, pos: e.buf.Len() - 1, before: Char{Key: key, Caps: caps}}
	return e.emitWord(), true
}
