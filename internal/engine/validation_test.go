package engine

import "testing"

func TestIsValidForTransformAcceptsRealSyllables(t *testing.T) {
	cases := [][]Key{
		{KeyT, KeyU, KeyO, KeyI},       // tuoi
		{KeyN, KeyG, KeyH, KeyI, KeyA}, // nghia
		{KeyQ, KeyU, KeyA, KeyN},       // quan
	}
	for _, keys := range cases {
		var b Buffer
		pushWord(&b, keys...)
		if !IsValidForTransform(&b) {
			t.Errorf("%v should be a structurally valid syllable skeleton", keys)
		}
	}
}

func TestIsValidForTransformRejectsBadOnset(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyB, KeyX, KeyA) // "bx" is not a real Vietnamese initial
	if IsValidForTransform(&b) {
		t.Error("'bxa' should not be a structurally valid syllable")
	}
}

func TestIsValidForTransformRejectsBadFinal(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyB, KeyA, KeyF) // "f" is not a valid final
	if IsValidForTransform(&b) {
		t.Error("'baf' should not be a structurally valid syllable")
	}
}

func TestIsValidForTransformRequiresVowel(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyT, KeyH)
	if IsValidForTransform(&b) {
		t.Error("a buffer with no vowel yet cannot be a valid transform target")
	}
}
