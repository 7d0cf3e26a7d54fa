package engine

// MarkTrigger describes what a key does when it is interpreted as a
// tone-mark (or mark-removal) trigger.
type MarkTrigger struct {
	Mark    Mark
	Remove  bool // true for Telex's 'z' / VNI's '0': strip any existing mark
	Trigger bool
}

// ToneTrigger describes what a key does when it is interpreted as a
// circumflex/horn trigger, and which base vowels it can apply to.
type ToneTrigger struct {
	Tone    Tone
	Targets []Key
	Trigger bool
}

// Method is the set of per-key rules that distinguish Telex from VNI.
// Unlike the teacher's InputMethod/OutputFormat interface pair (which
// modeled a method as something that transforms one rune against a
// half-built Syllable string), a Method here only answers "what would
// this key do", leaving the engine's own pipeline (engine.go) in sole
// charge of buffer mutation, undo bookkeeping, and foreign-word
// reversion — those are cross-cutting concerns no single method
// variant should have to reimplement.
type Method interface {
	Name() string
	// Mark reports what key does as a tone-mark trigger.
	Mark(key Key) MarkTrigger
	// Tone reports what key does as a circumflex/horn/breve trigger.
	Tone(key Key) ToneTrigger
	// IsStrokeKey reports whether key is this method's d-stroke
	// trigger (Telex: second 'd'; VNI: '9').
	IsStrokeKey(key Key) bool
	// IsHornKey reports whether key is this method's horn trigger
	// that can also stand alone as a vowel (Telex: 'w'; VNI has none,
	// its '7' only horns an existing o/u).
	IsHornKey(key Key) bool
}
