package engine

// typeSequence feeds s through e one rune at a time, as a host would
// relay keystrokes, and returns the final preedit text. Punctuation
// and space in s are forwarded as their own keys, which OnKey treats
// as word breaks (or, at the start of a word, as raw-mode prefixes).
func typeSequence(e *Engine, s string) string {
	var last string
	for _, r := range s {
		key, caps := runeToKey(r)
		e.OnKey(key, caps, false, false)
		last = e.GetPreedit()
	}
	return last
}

// typeWord is an alias for typeSequence, named for readability at call
// sites that only care about one composed word.
func typeWord(e *Engine, s string) string {
	return typeSequence(e, s)
}

func runeToKey(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Key(r), false
	case r >= 'A' && r <= 'Z':
		return Key(r + 0x20), true
	case r >= '0' && r <= '9':
		return Key(r), false
	case r == ' ':
		return KeySpace, false
	}
	if k, ok := asciiPunctKeys[r]; ok {
		return k, false
	}
	return KeyUnknown, false
}
