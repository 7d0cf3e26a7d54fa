package engine

// TelexMethod implements the Telex input method: s/f/r/x/j mark
// triggers, a/e/o double-letter circumflex, w horn, dd stroke, z
// remove. Grounded on the teacher's telex.go trigger tables
// (telexToneKeys, telexVowelModifiers, telexHornPatterns), retargeted
// from teacher's rune/Syllable model onto the Key/Char model.
type TelexMethod struct{}

// NewTelexMethod creates a new Telex input method.
func NewTelexMethod() *TelexMethod { return &TelexMethod{} }

func (t *TelexMethod) Name() string { return "Telex" }

var telexMarks = map[Key]Mark{
	KeyS: MarkSac,
	KeyF: MarkHuyen,
	KeyR: MarkHoi,
	KeyX: MarkNga,
	KeyJ: MarkNang,
}

func (t *TelexMethod) Mark(key Key) MarkTrigger {
	if m, ok := telexMarks[key]; ok {
		return MarkTrigger{Mark: m, Trigger: true}
	}
	if key == KeyZ {
		return MarkTrigger{Remove: true, Trigger: true}
	}
	return MarkTrigger{}
}

func (t *TelexMethod) Tone(key Key) ToneTrigger {
	switch key {
	case KeyA:
		return ToneTrigger{Tone: ToneCircumflex, Targets: []Key{KeyA}, Trigger: true} // aa -> â
	case KeyE:
		return ToneTrigger{Tone: ToneCircumflex, Targets: []Key{KeyE}, Trigger: true}
	case KeyO:
		return ToneTrigger{Tone: ToneCircumflex, Targets: []Key{KeyO}, Trigger: true}
	case KeyW:
		return ToneTrigger{Tone: ToneHorn, Targets: []Key{KeyA, KeyO, KeyU}, Trigger: true}
	}
	return ToneTrigger{}
}

func (t *TelexMethod) IsStrokeKey(key Key) bool { return key == KeyD }
func (t *TelexMethod) IsHornKey(key Key) bool   { return key == KeyW }
