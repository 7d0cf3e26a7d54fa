package engine

// Key identifies a single keystroke in the engine's own alphabet,
// independent of whatever keycode system the host frontend uses.
// Letter and digit keys carry their lowercase ASCII value, and the
// punctuation keys carry their own ASCII value; non-printable keys are
// named constants above 0x100 so they never collide with either.
type Key rune

const (
	KeyNone Key = 0
)

// Letter keys, always stored lowercase; Char.Caps records shift state
// separately.
const (
	KeyA Key = 'a'
	KeyB Key = 'b'
	KeyC Key = 'c'
	KeyD Key = 'd'
	KeyE Key = 'e'
	KeyF Key = 'f'
	KeyG Key = 'g'
	KeyH Key = 'h'
	KeyI Key = 'i'
	KeyJ Key = 'j'
	KeyK Key = 'k'
	KeyL Key = 'l'
	KeyM Key = 'm'
	KeyN Key = 'n'
	KeyO Key = 'o'
	KeyP Key = 'p'
	KeyQ Key = 'q'
	KeyR Key = 'r'
	KeyS Key = 's'
	KeyT Key = 't'
	KeyU Key = 'u'
	KeyV Key = 'v'
	KeyW Key = 'w'
	KeyX Key = 'x'
	KeyY Key = 'y'
	KeyZ Key = 'z'

	KeyN0 Key = '0'
	KeyN1 Key = '1'
	KeyN2 Key = '2'
	KeyN3 Key = '3'
	KeyN4 Key = '4'
	KeyN5 Key = '5'
	KeyN6 Key = '6'
	KeyN7 Key = '7'
	KeyN8 Key = '8'
	KeyN9 Key = '9'

	KeySpace      Key = ' '
	KeyDot        Key = '.'
	KeyComma      Key = ','
	KeySemicolon  Key = ';'
	KeyColon      Key = ':'
	KeyQuote      Key = '\''
	KeyMinus      Key = '-'
	KeyEqual      Key = '='
	KeySlash      Key = '/'
	KeyBackslash  Key = '\\'
	KeyLBracket   Key = '['
	KeyRBracket   Key = ']'
	KeyBackquote  Key = '`'
	KeyAt         Key = '@'
	KeyHash       Key = '#'
)

// Non-printable keys live above the ASCII range so they can never be
// mistaken for a typed letter.
const (
	KeyBackspace Key = 0x100 + iota
	KeyEscape
	KeyReturn
	KeyTab
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUnknown
)

// X11 keysym values for the subset the host daemon translates from.
// Kept from the teacher's keysym table; the engine itself never sees
// raw keysyms, only the Key values FromKeysym maps them to.
const (
	KeysymBackspace uint32 = 0xff08
	KeysymTab       uint32 = 0xff09
	KeysymReturn    uint32 = 0xff0d
	KeysymEscape    uint32 = 0xff1b
	KeysymSpace     uint32 = 0x0020
	KeysymDelete    uint32 = 0xffff
	KeysymLeft      uint32 = 0xff51
	KeysymUp        uint32 = 0xff52
	KeysymRight     uint32 = 0xff53
	KeysymDown      uint32 = 0xff54
	KeysymHome      uint32 = 0xff50
	KeysymEnd       uint32 = 0xff57
	KeysymPageUp    uint32 = 0xff55
	KeysymPageDown  uint32 = 0xff56
)

var keysymSpecials = map[uint32]Key{
	KeysymBackspace: KeyBackspace,
	KeysymTab:       KeyTab,
	KeysymReturn:    KeyReturn,
	KeysymEscape:    KeyEscape,
	KeysymSpace:     KeySpace,
	KeysymDelete:    KeyBackspace,
	KeysymLeft:      KeyArrowLeft,
	KeysymUp:        KeyArrowUp,
	KeysymRight:     KeyArrowRight,
	KeysymDown:      KeyArrowDown,
	KeysymHome:      KeyHome,
	KeysymEnd:       KeyEnd,
	KeysymPageUp:    KeyPageUp,
	KeysymPageDown:  KeyPageDown,
}

var asciiPunctKeys = map[rune]Key{
	'.': KeyDot, ',': KeyComma, ';': KeySemicolon, ':': KeyColon,
	'\'': KeyQuote, '-': KeyMinus, '=': KeyEqual, '/': KeySlash,
	'\\': KeyBackslash, '[': KeyLBracket, ']': KeyRBracket,
	'`': KeyBackquote, '@': KeyAt, '#': KeyHash,
}

// FromKeysym translates an X11 keysym into the engine's Key alphabet.
// caps reports whether the shifted (uppercase) letter was pressed.
func FromKeysym(keysym uint32) (key Key, caps bool) {
	if k, ok := keysymSpecials[keysym]; ok {
		return k, false
	}
	if keysym >= 0x0061 && keysym <= 0x007a { // a-z
		return Key(keysym), false
	}
	if keysym >= 0x0041 && keysym <= 0x005a { // A-Z
		return Key(keysym + 0x20), true
	}
	if keysym >= 0x0030 && keysym <= 0x0039 { // 0-9
		return Key(keysym), false
	}
	if keysym >= 0x20 && keysym <= 0x7e {
		r := rune(keysym)
		if k, ok := asciiPunctKeys[r]; ok {
			return k, false
		}
		return KeyUnknown, false
	}
	return KeyUnknown, false
}

// IsLetter reports whether k is one of a-z.
func IsLetter(k Key) bool { return k >= KeyA && k <= KeyZ }

// IsDigit reports whether k is one of 0-9.
func IsDigit(k Key) bool { return k >= KeyN0 && k <= KeyN9 }

// IsVowel reports whether k is one of the six Vietnamese base vowel
// letters (a, e, i, o, u, y).
func IsVowel(k Key) bool {
	switch k {
	case KeyA, KeyE, KeyI, KeyO, KeyU, KeyY:
		return true
	}
	return false
}

// IsConsonant reports whether k is a letter but not a vowel.
func IsConsonant(k Key) bool { return IsLetter(k) && !IsVowel(k) }

// IsWordBreak reports whether k ends the current word outright
// (anything that is neither a letter, a digit, nor one of the
// transform-sensitive punctuation marks handled specially by the
// engine).
func IsWordBreak(k Key) bool {
	if IsLetter(k) || IsDigit(k) {
		return false
	}
	switch k {
	case KeySpace, KeyDot, KeyComma, KeySemicolon, KeyColon, KeyQuote,
		KeyMinus, KeyEqual, KeySlash, KeyBackslash, KeyLBracket,
		KeyRBracket, KeyBackquote, KeyReturn, KeyTab,
		KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown,
		KeyHome, KeyEnd, KeyPageUp, KeyPageDown:
		return true
	}
	return false
}

// IsRawModePrefix reports whether k, as the first key of a new word,
// switches the engine into raw (untransformed) passthrough for the
// rest of that word: '/', ':', '@' and '#' qualify. Only the Key is
// consulted; shift state plays no part, since each of these glyphs
// already has its own Key.
func IsRawModePrefix(k Key) bool {
	switch k {
	case KeySlash, KeyAt, KeyHash, KeyColon:
		return true
	}
	return false
}

// ToRune returns the literal ASCII character a letter or digit key
// types when it is not being consumed as a modifier, honoring caps.
func ToRune(k Key, caps bool) (rune, bool) {
	if IsLetter(k) {
		r := rune(k)
		if caps {
			r -= 0x20
		}
		return r, true
	}
	if IsDigit(k) {
		return rune(k), true
	}
	for r, pk := range asciiPunctKeys {
		if pk == k {
			return r, true
		}
	}
	if k == KeySpace {
		return ' ', true
	}
	return 0, false
}
