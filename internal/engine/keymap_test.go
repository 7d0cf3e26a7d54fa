package engine

import "testing"

func TestFromKeysym(t *testing.T) {
	cases := []struct {
		name     string
		keysym   uint32
		wantKey  Key
		wantCaps bool
	}{
		{"lowercase a", 0x0061, KeyA, false},
		{"uppercase A", 0x0041, KeyA, true},
		{"digit 7", 0x0037, KeyN7, false},
		{"backspace", KeysymBackspace, KeyBackspace, false},
		{"delete maps to backspace", KeysymDelete, KeyBackspace, false},
		{"escape", KeysymEscape, KeyEscape, false},
		{"space", KeysymSpace, KeySpace, false},
		{"slash", uint32('/'), KeySlash, false},
		{"unmapped control char", 0x01, KeyUnknown, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, caps := FromKeysym(tc.keysym)
			if key != tc.wantKey || caps != tc.wantCaps {
				t.Errorf("FromKeysym(%#x) = (%v, %v), want (%v, %v)", tc.keysym, key, caps, tc.wantKey, tc.wantCaps)
			}
		})
	}
}

func TestIsRawModePrefix(t *testing.T) {
	for _, k := range []Key{KeySlash, KeyAt, KeyHash, KeyColon} {
		if !IsRawModePrefix(k) {
			t.Errorf("IsRawModePrefix(%v) = false, want true", k)
		}
	}
	if IsRawModePrefix(KeyA) {
		t.Error("IsRawModePrefix(KeyA) = true, want false")
	}
}

func TestIsVowelAndConsonant(t *testing.T) {
	for _, k := range []Key{KeyA, KeyE, KeyI, KeyO, KeyU, KeyY} {
		if !IsVowel(k) {
			t.Errorf("IsVowel(%v) = false, want true", k)
		}
		if IsConsonant(k) {
			t.Errorf("IsConsonant(%v) = true, want false", k)
		}
	}
	if !IsConsonant(KeyB) || IsVowel(KeyB) {
		t.Error("KeyB should be a consonant, not a vowel")
	}
}

func TestToRuneRoundTrip(t *testing.T) {
	for k := KeyA; k <= KeyZ; k++ {
		r, ok := ToRune(k, false)
		if !ok {
			t.Fatalf("ToRune(%v, false) returned ok=false", k)
		}
		if r != rune(k) {
			t.Errorf("ToRune(%v, false) = %q, want %q", k, r, rune(k))
		}
		upper, _ := ToRune(k, true)
		if upper != rune(k)-0x20 {
			t.Errorf("ToRune(%v, true) = %q, want uppercase", k, upper)
		}
	}
}
