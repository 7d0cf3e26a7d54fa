package engine

// MaxChars bounds how many keystrokes a single word buffer can hold;
// no Vietnamese word typed through a normal keyboard comes close to
// this in practice, but the fixed array keeps the hot path
// allocation-free, mirroring the teacher's array-backed syllable
// parsing and original_source/engine/buffer.rs's fixed MAX.
const MaxChars = 64

// Buffer holds the characters of the word currently being composed.
// It is a value type (a fixed array, not a slice) so that copying one
// — for word history, for speculative try-then-revert transforms — is
// just an assignment, never an allocation.
type Buffer struct {
	data [MaxChars]Char
	len  int
}

// Len returns the number of characters currently in the buffer.
func (b *Buffer) Len() int { return b.len }

// IsEmpty reports whether the buffer holds no characters.
func (b *Buffer) IsEmpty() bool { return b.len == 0 }

// Push appends c to the buffer. Pushes past MaxChars are silently
// dropped; the chars already in the buffer are left as they are.
func (b *Buffer) Push(c Char) {
	if b.len < MaxChars {
		b.data[b.len] = c
		b.len++
	}
}

// Pop removes and returns the last character, if any.
func (b *Buffer) Pop() (Char, bool) {
	if b.len == 0 {
		return Char{}, false
	}
	b.len--
	return b.data[b.len], true
}

// Clear empties the buffer without touching its backing array.
func (b *Buffer) Clear() { b.len = 0 }

// At returns a pointer to the char at position i so callers can
// mutate it in place (applying a mark, a tone, a stroke).
func (b *Buffer) At(i int) *Char {
	if i < 0 || i >= b.len {
		return nil
	}
	return &b.data[i]
}

// Last returns a pointer to the most recently pushed char.
func (b *Buffer) Last() *Char {
	if b.len == 0 {
		return nil
	}
	return &b.data[b.len-1]
}

// Chars returns the buffer's characters as a slice. The slice aliases
// the buffer's backing array; callers must not retain it past the
// next mutation.
func (b *Buffer) Chars() []Char { return b.data[:b.len] }

// VowelPositions returns the indices of every vowel key in the
// buffer, in order. Grounded on original_source/engine/buffer.rs's
// find_vowels.
func (b *Buffer) VowelPositions() []int {
	var out []int
	for i := 0; i < b.len; i++ {
		if IsVowel(b.data[i].Key) {
			out = append(out, i)
		}
	}
	return out
}

// HasFinalConsonant reports whether any consonant key follows
// position after. Grounded on original_source/utils.rs's
// has_final_consonant.
func (b *Buffer) HasFinalConsonant(after int) bool {
	for i := after + 1; i < b.len; i++ {
		if IsConsonant(b.data[i].Key) {
			return true
		}
	}
	return false
}

// HasQuInitial reports whether the vowel at the given position is
// immediately preceded by 'q' (the "qu" initial, whose 'u' is a glide
// and never takes the tone mark). Grounded on
// original_source/utils.rs's has_qu_initial, generalized to a
// specific position since the engine needs to ask this about whatever
// vowel it is currently deciding tone placement for, not only the
// first one.
func (b *Buffer) HasQuInitial(pos int) bool {
	if pos <= 0 || pos >= b.len {
		return false
	}
	if b.data[pos].Key != KeyU {
		return false
	}
	return b.data[pos-1].Key == KeyQ
}

// HasGiInitial reports whether the vowel at pos is immediately
// preceded by 'g','i' forming the "gi" initial, whose 'i' likewise
// never takes the tone mark (spec.md §4.3 gi-initial medial-skipping).
func (b *Buffer) HasGiInitial(pos int) bool {
	if pos <= 0 || pos >= b.len {
		return false
	}
	if b.data[pos].Key != KeyI {
		return false
	}
	if b.data[pos-1].Key != KeyG {
		return false
	}
	if pos-1 == 0 {
		return true
	}
	// only a gi-initial when 'g' itself starts the syllable (no
	// consonant before it other than another 'g' as in "ngi" is not
	// a real Vietnamese initial, so this is effectively pos-1==0)
	return false
}

// ToRunes renders the full buffer as displayable runes via Compose,
// skipping any char that has no printable form.
func (b *Buffer) ToRunes() []rune {
	out := make([]rune, 0, b.len)
	for i := 0; i < b.len; i++ {
		if r, ok := Compose(b.data[i]); ok {
			out = append(out, r)
		}
	}
	return out
}

// rawKeystroke is one literal keystroke as it arrived at the engine,
// before any mark/tone/stroke interpretation.
type rawKeystroke struct {
	key  Key
	caps bool
}

// rawKeyLog retains every keystroke typed for the word currently being
// composed, in order, so ESC can replay the literal ASCII even though
// most of those keystrokes never became their own Char in Buffer —
// a mark or tone trigger mutates an existing Char in place rather than
// appending one (SPEC_FULL.md's raw-keystroke-log supplement).
type rawKeyLog struct {
	data [MaxChars]rawKeystroke
	len  int
}

func (r *rawKeyLog) push(key Key, caps bool) {
	if r.len < MaxChars {
		r.data[r.len] = rawKeystroke{key: key, caps: caps}
		r.len++
	}
}

func (r *rawKeyLog) pop() {
	if r.len > 0 {
		r.len--
	}
}

func (r *rawKeyLog) clear() { r.len = 0 }

// toRunes renders the logged keystrokes as the literal ASCII the user
// typed, honoring caps.
func (r *rawKeyLog) toRunes() []rune {
	out := make([]rune, 0, r.len)
	for i := 0; i < r.len; i++ {
		if rn, ok := ToRune(r.data[i].key, r.data[i].caps); ok {
			out = append(out, rn)
		}
	}
	return out
}

// historyCapacity bounds the word-history ring (SPEC_FULL.md §4):
// enough to recover several words back after backspacing through
// spaces, without holding an unbounded amount of typing history.
const historyCapacity = 10

// wordSnapshot is everything Backspace needs to resume a previously
// committed word: its composed state and the raw keystrokes that
// built it (so a subsequent ESC still replays correctly).
type wordSnapshot struct {
	buf Buffer
	raw rawKeyLog
}

// wordHistory is a fixed-capacity ring buffer of committed words,
// consulted when Backspace deletes a space and the engine needs to
// resume editing the word before it with its composition state
// intact (tone/mark/stroke), not just its plain text.
type wordHistory struct {
	entries [historyCapacity]wordSnapshot
	count   int // number of valid entries, capped at historyCapacity
	next    int // ring write cursor
}

func (h *wordHistory) push(b Buffer, raw rawKeyLog) {
	h.entries[h.next] = wordSnapshot{buf: b, raw: raw}
	h.next = (h.next + 1) % historyCapacity
	if h.count < historyCapacity {
		h.count++
	}
}

// popLast returns and removes the most recently pushed word, if any
// history remains.
func (h *wordHistory) popLast() (wordSnapshot, bool) {
	if h.count == 0 {
		return wordSnapshot{}, false
	}
	h.next = (h.next - 1 + historyCapacity) % historyCapacity
	h.count--
	return h.entries[h.next], true
}

// clear drops every entry. Called whenever a word ends without a
// SPACE commit (punctuation, ESC, disable), since only a SPACE commit
// is eligible for post-space Backspace recovery.
func (h *wordHistory) clear() { h.count = 0; h.next = 0 }
