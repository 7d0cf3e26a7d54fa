package engine

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperCaser does Unicode-aware single-letter uppercasing for
// composed Vietnamese glyphs (Đ, Ẫ, Ỡ, ...), rather than assuming the
// ASCII-only shortcut of subtracting 0x20 works on every composed
// rune. Vietnamese has no casing rules distinct from its Latin-script
// default, so cases.Upper with the neutral tag is exactly what the
// teacher's stack (golang.org/x/text, via boxesandglue-typesetting's
// use of the same module) is for.
var upperCaser = cases.Upper(language.Und)

func toUpperRune(r rune) rune {
	upped := upperCaser.String(string(r))
	for _, u := range upped {
		return u
	}
	return r
}

// vowelTones maps every base vowel (lowercase) to its six tone-mark
// forms, indexed by Mark. Grounded directly on the teacher's
// unicodeVowelTones table (internal/engine/unicode.go), trimmed to
// lowercase since case is applied separately via toUpperRune.
var vowelTones = map[rune][6]rune{
	'a': {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	'ă': {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	'â': {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	'e': {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	'ê': {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	'i': {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	'o': {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	'ô': {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	'ơ': {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	'u': {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	'ư': {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	'y': {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// reverseTone maps every composed vowel rune back to (base, Mark).
var reverseTone = func() map[rune][2]rune {
	m := make(map[rune][2]rune)
	for base, tones := range vowelTones {
		for mark, r := range tones {
			m[r] = [2]rune{base, rune(mark)}
		}
	}
	return m
}()

// toneBase maps a circumflex/horn-marked vowel to its flat base and
// the Tone it carries; the inverse, baseToTone, goes the other way.
var toneBase = map[rune]struct {
	base rune
	tone Tone
}{
	'ă': {'a', ToneHorn}, // breve shares the Horn slot (spec: a/o/u horn family)
	'â': {'a', ToneCircumflex},
	'ê': {'e', ToneCircumflex},
	'ô': {'o', ToneCircumflex},
	'ơ': {'o', ToneHorn},
	'ư': {'u', ToneHorn},
}

var baseToTone = map[rune]map[Tone]rune{
	'a': {ToneCircumflex: 'â', ToneHorn: 'ă'},
	'e': {ToneCircumflex: 'ê'},
	'o': {ToneCircumflex: 'ô', ToneHorn: 'ơ'},
	'u': {ToneHorn: 'ư'},
}

func applyTone(base rune, tone Tone) rune {
	if tone == ToneFlat {
		return base
	}
	if m, ok := baseToTone[base]; ok {
		if r, ok := m[tone]; ok {
			return r
		}
	}
	return base
}

func applyMark(r rune, mark Mark) rune {
	tones, ok := vowelTones[r]
	if !ok {
		return r
	}
	return tones[mark]
}

// Compose renders a Char as the rune it should display. ok is false
// for a Char whose Key is neither a letter nor a digit (such as the
// punctuation key that starts a raw-mode word, or an unassigned Key).
func Compose(c Char) (rune, bool) {
	if c.Key == KeyD {
		r := rune('d')
		if c.Stroke {
			r = 'đ'
		}
		if c.Caps {
			r = toUpperRune(r)
		}
		return r, true
	}
	if !IsVowel(c.Key) {
		if !IsLetter(c.Key) && !IsDigit(c.Key) {
			return 0, false
		}
		r, _ := ToRune(c.Key, c.Caps)
		return r, true
	}
	base := rune(c.Key)
	base = applyTone(base, c.Tone)
	r := applyMark(base, c.Mark)
	if c.Caps {
		r = toUpperRune(r)
	}
	return r, true
}

// DecomposeVowel reports the flat key and Tone that a (possibly
// toned, possibly marked) Vietnamese vowel rune was built from. It is
// used by RestoreWord to re-seed a Buffer from plain text typed
// outside the engine.
func DecomposeVowel(r rune) (key Key, tone Tone, mark Mark, caps bool, ok bool) {
	lower := r
	isCaps := false
	if lowered := []rune(cases.Lower(language.Und).String(string(r))); len(lowered) == 1 && lowered[0] != r {
		lower = lowered[0]
		isCaps = true
	}
	if tb, ok := reverseTone[lower]; ok {
		base, m := tb[0], Mark(tb[1])
		flatKey := base
		flatTone := ToneFlat
		if tb2, ok := toneBase[base]; ok {
			flatKey = tb2.base
			flatTone = tb2.tone
		}
		return Key(flatKey), flatTone, m, isCaps, true
	}
	return 0, 0, 0, false, false
}
