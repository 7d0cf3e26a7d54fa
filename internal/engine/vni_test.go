package engine

import "testing"

func newVNIEngine() *Engine {
	cfg := DefaultConfig()
	cfg.Method = "VNI"
	return NewEngine(cfg)
}

func TestVNIWords(t *testing.T) {
	cases := []struct {
		typed string
		want  string
	}{
		{"a1", "á"},
		{"a2", "à"},
		{"d9", "đ"},
		{"d9o6ng", "đông"},
		{"vie65t", "việt"},
		{"tuo7i1", "tưới"}, // VNI 7 horns the u,o pair; 1 lands the sac on the main vowel
		{"a6", "â"},
		{"a8", "ă"},
		{"o7", "ơ"},
		{"u7", "ư"},
	}
	for _, tc := range cases {
		t.Run(tc.typed, func(t *testing.T) {
			e := newVNIEngine()
			got := typeWord(e, tc.typed)
			if got != tc.want {
				t.Errorf("typeWord(%q) = %q, want %q", tc.typed, got, tc.want)
			}
		})
	}
}

func TestVNIMarkRemoval(t *testing.T) {
	e := newVNIEngine()
	got := typeWord(e, "a10")
	if got != "a" {
		t.Errorf("typeWord(a10) = %q, want %q (0 removes the mark)", got, "a")
	}
}

func TestVNIHasNoHornKey(t *testing.T) {
	m := NewVNIMethod()
	if m.IsHornKey(KeyN7) {
		t.Error("VNI's horn digit is not a standalone-vowel key like Telex's w")
	}
}
