package engine

// validInitials are valid Vietnamese initial consonant clusters,
// lowercased single Key letters joined as a string. Grounded
// directly on the teacher's validation.go validInitials table.
var validInitials = map[string]bool{
	"b": true, "c": true, "d": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,
	"ngh": true,
}

// validFinals are valid Vietnamese final consonants/semivowels.
// Grounded directly on the teacher's validation.go validFinals table.
var validFinals = map[string]bool{
	"c": true, "m": true, "n": true, "p": true, "t": true,
	"ch": true, "ng": true, "nh": true,
	"i": true, "y": true, "o": true, "u": true,
}

func keyRune(k Key) rune {
	if k == KeyD {
		return 'd' // đ is validated as plain d; stroke is orthogonal to syllable shape
	}
	return rune(k)
}

// splitSyllable walks buf and returns the onset (leading consonants),
// the vowel-key nucleus, and the coda (trailing consonants) as plain
// key runs, for structural validation ahead of a transform.
func splitSyllable(keys []Key) (onset, nucleus, coda []Key) {
	i := 0
	for i < len(keys) && IsConsonant(keys[i]) {
		onset = append(onset, keys[i])
		i++
	}
	for i < len(keys) && IsVowel(keys[i]) {
		nucleus = append(nucleus, keys[i])
		i++
	}
	for i < len(keys) && IsConsonant(keys[i]) {
		coda = append(coda, keys[i])
		i++
	}
	return
}

func runesToString(keys []Key) string {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		rs[i] = keyRune(k)
	}
	return string(rs)
}

// IsValidForTransform reports whether the buffer's current keys form
// a structurally plausible Vietnamese syllable skeleton: a legal
// initial (if any), at least one vowel forming a valid nucleus shape,
// and a legal final (if any). It is checked before applying any mark
// or tone, mirroring spec.md §4.3's "structural syllable validation"
// gate. Grounded on the teacher's ValidateVietnamese, adapted from
// string onset/nucleus/coda fields to the Key-buffer model.
func IsValidForTransform(b *Buffer) bool {
	keys := make([]Key, b.Len())
	for i := range keys {
		keys[i] = b.At(i).Key
	}
	onset, nucleus, coda := splitSyllable(keys)
	if len(nucleus) == 0 {
		return false
	}
	if len(onset) > 0 && !validInitials[runesToString(onset)] {
		return false
	}
	if len(coda) > 0 && !validFinals[runesToString(coda)] {
		return false
	}
	if !IsValidNucleus(nucleus) {
		return false
	}
	return true
}
