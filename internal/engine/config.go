package engine

// ToneRule selects which historical convention places the tone mark
// in open syllables with a horn/circumflex pair — kept from the
// teacher's config.go, though this engine's TonePosition implements
// a single placement (in an open syllable without a circumflex or horn
// the tone goes on the second-to-last vowel, so "hoaf" gives "hòa").
// TonePosition does not consult ToneRule: ToneRuleOld and ToneRuleNew
// behave identically here; see DESIGN.md's tone-placement decision.
type ToneRule int

const (
	ToneRuleOld ToneRule = iota
	ToneRuleNew
)

// EngineConfig holds the programmatic, in-process configuration
// toggles for an Engine. Per SPEC_FULL.md §2.2, this is populated by
// the host (cmd/daemon), never read from disk, environment, or a CLI
// flag by the engine package itself.
type EngineConfig struct {
	ToneRule ToneRule

	// EnableValidation gates IsValidForTransform/IsForeignWordPattern
	// before a mark/tone is applied. Disabling it lets every modifier
	// key always transform, useful for a host that wants raw Telex/
	// VNI behavior without Vietnamese-specific guards.
	EnableValidation bool

	// EnableWAsVowel allows a bare 'w' (Telex) to become 'ư' by
	// itself when no a/o/u is available to horn.
	EnableWAsVowel bool

	// UseDefaultShortcuts opts into DefaultShortcuts() at
	// construction time (SPEC_FULL.md §5.2 — off by default).
	UseDefaultShortcuts bool

	// Method selects the starting input method; defaults to Telex.
	Method string
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		ToneRule:            ToneRuleNew,
		EnableValidation:    true,
		EnableWAsVowel:      true,
		UseDefaultShortcuts: false,
		Method:              "Telex",
	}
}
