package engine

import "testing"

func pushWord(b *Buffer, keys ...Key) {
	for _, k := range keys {
		b.Push(Char{Key: k})
	}
}

func TestTonePositionSingleMarkedVowel(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyD, KeyI, KeyE, KeyM)
	b.At(2).Tone = ToneCircumflex // điêm -> ê marked
	if pos := TonePosition(&b); pos != 2 {
		t.Errorf("TonePosition = %d, want 2 (the circumflexed e)", pos)
	}
}

func TestTonePositionHornPairPicksSecond(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyT, KeyU, KeyO, KeyI)
	b.At(1).Tone = ToneHorn
	b.At(2).Tone = ToneHorn
	if pos := TonePosition(&b); pos != 2 {
		t.Errorf("TonePosition = %d, want 2 (main vowel of the uo horn pair)", pos)
	}
}

func TestTonePositionClosedSyllable(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyH, KeyO, KeyA, KeyN, KeyG)
	if pos := TonePosition(&b); pos != 2 {
		t.Errorf("TonePosition = %d, want 2 (last vowel before the final consonant)", pos)
	}
}

func TestTonePositionOpenSyllableTwoVowels(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyH, KeyO, KeyA)
	if pos := TonePosition(&b); pos != 1 {
		t.Errorf("TonePosition = %d, want 1 (second-to-last vowel in an open syllable)", pos)
	}
}

func TestTonePositionSkipsQuInitial(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyQ, KeyU, KeyA, KeyN)
	if pos := TonePosition(&b); pos != 2 {
		t.Errorf("TonePosition = %d, want 2 ('u' in 'qu' is a glide, never the tone target)", pos)
	}
}

func TestIsForeignWordPatternInvalidVowelPair(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyY, KeyO)
	if !IsForeignWordPattern(&b, KeyU) {
		t.Error("a 'yo' adjacent vowel pair should be flagged as a foreign-word pattern")
	}
}

func TestIsForeignWordPatternEnglishClusterAfterFinal(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyS, KeyT, KeyA, KeyT)
	if !IsForeignWordPattern(&b, KeyR) {
		t.Error("'tr' completing after a final consonant should be flagged as a foreign-word pattern")
	}
}

func TestIsForeignWordPatternOrdinaryWord(t *testing.T) {
	var b Buffer
	pushWord(&b, KeyH, KeyO, KeyA)
	if IsForeignWordPattern(&b, KeyN) {
		t.Error("'hoa' + n should not be flagged as a foreign-word pattern")
	}
}

func TestIsValidNucleusTriphthongs(t *testing.T) {
	if !IsValidNucleus([]Key{KeyU, KeyY, KeyE}) {
		t.Error("uye should be a valid nucleus (as in 'khuyết')")
	}
	if IsValidNucleus([]Key{KeyY, KeyO, KeyU}) {
		t.Error("yo-starting triphthong should not be a valid nucleus")
	}
}
