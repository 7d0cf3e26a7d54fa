package engine

// vowelAt reports whether the char at i is a vowel, for readability
// at call sites that already hold a *Buffer.
func vowelAt(b *Buffer, i int) bool {
	c := b.At(i)
	return c != nil && IsVowel(c.Key)
}

// hornPairPositions returns the two buffer positions of an adjacent
// u-o (or o-u) pair eligible for the "uo must always normalize to
// ươ" rule (spec.md §4.3), or ok=false if no such pair exists. Only
// immediately adjacent u,o / o,u vowels qualify; a third vowel
// between them (already handled by the nucleus scan in
// TonePosition) does not.
func hornPairPositions(b *Buffer) (first, second int, ok bool) {
	vowels := b.VowelPositions()
	for i := 0; i+1 < len(vowels); i++ {
		p1, p2 := vowels[i], vowels[i+1]
		if p2 != p1+1 {
			continue
		}
		k1, k2 := b.At(p1).Key, b.At(p2).Key
		if (k1 == KeyU && k2 == KeyO) || (k1 == KeyO && k2 == KeyU) {
			return p1, p2, true
		}
	}
	return 0, 0, false
}

// TonePosition chooses which vowel in the buffer the next tone mark
// should land on, following spec.md §4.3:
//
//  1. If exactly one vowel currently carries a circumflex or horn,
//     the tone goes there.
//  2. If more than one vowel carries a circumflex or horn (a
//     horn-pair compound like ươ), the tone goes on the second one —
//     the main vowel of the compound (âm chính), matching "được",
//     "nước", "tưới" (see DESIGN.md for the one example in spec.md's
//     own testable-properties table that appears inconsistent with
//     this and is treated as a typo).
//  3. Otherwise (no modifier-marked vowel): in a closed syllable (one
//     with a final consonant) the tone goes on the last vowel before
//     the coda; in an open syllable it goes on the second-to-last
//     vowel, except the qu-/gi-initial glide is never a tone target.
//
// Returns -1 if the buffer has no vowel at all.
func TonePosition(b *Buffer) int {
	vowels := b.VowelPositions()
	if len(vowels) == 0 {
		return -1
	}

	var marked []int
	for _, p := range vowels {
		if b.At(p).HasTone() {
			marked = append(marked, p)
		}
	}
	if len(marked) == 1 {
		return marked[0]
	}
	if len(marked) > 1 {
		return marked[len(marked)-1]
	}

	// Filter out qu-/gi-initial glides: they never take the tone.
	eligible := vowels[:0:0]
	for _, p := range vowels {
		if b.HasQuInitial(p) || b.HasGiInitial(p) {
			continue
		}
		eligible = append(eligible, p)
	}
	if len(eligible) == 0 {
		eligible = vowels
	}

	last := eligible[len(eligible)-1]
	if b.HasFinalConsonant(last) {
		return last
	}
	if len(eligible) == 1 {
		return eligible[0]
	}
	return eligible[len(eligible)-2]
}

// invalidVowelPairs lists adjacent-vowel-key pairs (in typed order)
// that never occur as a genuine Vietnamese nucleus, used by
// IsForeignWordPattern. Grounded on spec.md §4.3's explicit examples
// ("ou" as in "your", "yo").
var invalidVowelPairs = map[[2]Key]bool{
	{KeyO, KeyU}: true,
	{KeyY, KeyO}: true,
	{KeyY, KeyU}: true,
}

// validTriphthongs whitelists the handful of 3-vowel nuclei Vietnamese
// actually has (by base key, ignoring which of them later gets a
// horn/circumflex): uyê, ươi, uay, oai, oay, ươu.
var validTriphthongs = map[[3]Key]bool{
	{KeyU, KeyY, KeyE}: true,
	{KeyU, KeyO, KeyI}: true,
	{KeyU, KeyA, KeyY}: true,
	{KeyO, KeyA, KeyI}: true,
	{KeyO, KeyA, KeyY}: true,
	{KeyU, KeyO, KeyU}: true,
}

// englishClustersAfterFinal lists (final-consonant, next-literal-
// letter) pairs that form a consonant cluster no Vietnamese coda can
// ever extend into, signaling the word being typed is probably
// English. Grounded on spec.md §4.3's named examples (tr, pr, cr).
var englishClustersAfterFinal = map[[2]Key]bool{
	{KeyT, KeyR}: true,
	{KeyP, KeyR}: true,
	{KeyC, KeyR}: true,
}

// IsForeignWordPattern reports whether applying nextKey as a modifier
// right now would be riding along with what looks like an English
// word rather than genuine Vietnamese. It implements the two
// structural signals spec.md names explicitly (invalid adjacent vowel
// pairs, and an English consonant cluster completing after an
// existing final consonant); it does not attempt dictionary-based
// disambiguation of structurally-valid-either-way cases (see
// DESIGN.md's note on the "text" example).
func IsForeignWordPattern(b *Buffer, nextKey Key) bool {
	vowels := b.VowelPositions()
	for i := 0; i+1 < len(vowels); i++ {
		p1, p2 := vowels[i], vowels[i+1]
		if p2 != p1+1 {
			continue
		}
		pair := [2]Key{b.At(p1).Key, b.At(p2).Key}
		if invalidVowelPairs[pair] {
			return true
		}
	}
	if last := b.Last(); last != nil && IsConsonant(last.Key) && IsLetter(nextKey) {
		if englishClustersAfterFinal[[2]Key{last.Key, nextKey}] {
			return true
		}
	}
	return false
}

// IsValidNucleus reports whether the vowel keys collected so far form
// a structurally plausible Vietnamese nucleus: any single vowel is
// fine; any 2-vowel pair not in invalidVowelPairs is fine; a 3-vowel
// run must match validTriphthongs.
func IsValidNucleus(keys []Key) bool {
	switch len(keys) {
	case 0, 1:
		return true
	case 2:
		return !invalidVowelPairs[[2]Key{keys[0], keys[1]}]
	default:
		n := len(keys)
		return validTriphthongs[[3]Key{keys[n-3], keys[n-2], keys[n-1]}]
	}
}
