package engine

// VNIMethod implements the VNI input method: digit-keyed tone marks
// (1-5), circumflex (6), horn (7), breve (8), stroke/remove (9/0).
// Grounded on the teacher's vni.go table shape, retargeted onto the
// Key/Char model; the VNI digit triggers never collide with a
// literal letter the way Telex's s/f/r/x/j do, so VNI has no
// is-this-actually-English ambiguity of its own — only buffers
// composed through VNI ever reach the foreign-word-pattern checks via
// shared vowel-pair structure, not via digit collision.
type VNIMethod struct{}

// NewVNIMethod creates a new VNI input method.
func NewVNIMethod() *VNIMethod { return &VNIMethod{} }

func (v *VNIMethod) Name() string { return "VNI" }

var vniMarks = map[Key]Mark{
	KeyN1: MarkSac,
	KeyN2: MarkHuyen,
	KeyN3: MarkHoi,
	KeyN4: MarkNga,
	KeyN5: MarkNang,
}

func (v *VNIMethod) Mark(key Key) MarkTrigger {
	if m, ok := vniMarks[key]; ok {
		return MarkTrigger{Mark: m, Trigger: true}
	}
	if key == KeyN0 {
		return MarkTrigger{Remove: true, Trigger: true}
	}
	return MarkTrigger{}
}

func (v *VNIMethod) Tone(key Key) ToneTrigger {
	switch key {
	case KeyN6:
		return ToneTrigger{Tone: ToneCircumflex, Targets: []Key{KeyA, KeyE, KeyO}, Trigger: true}
	case KeyN7:
		return ToneTrigger{Tone: ToneHorn, Targets: []Key{KeyO, KeyU}, Trigger: true}
	case KeyN8:
		return ToneTrigger{Tone: ToneHorn, Targets: []Key{KeyA}, Trigger: true} // breve shares the Horn slot, see telex.go
	}
	return ToneTrigger{}
}

func (v *VNIMethod) IsStrokeKey(key Key) bool { return key == KeyN9 }
func (v *VNIMethod) IsHornKey(key Key) bool   { return false } // VNI has no w-as-vowel equivalent
