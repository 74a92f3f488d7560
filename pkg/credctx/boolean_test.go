package credctx

import "testing"

func TestParseTrue(t *testing.T) {
	for _, tc := range []struct {
		value string
		want  bool
	}{
		{"yes", true},
		{"YES", true},
		{"Yes", true},
		{"on", true},
		{"On", true},
		{"true", true},
		{"TRUE", true},
		{"no", false},
		{"", false},
		{"1", false},
		{"banana", false},
	} {
		if got := parseTrue([]byte(tc.value)); got != tc.want {
			t.Errorf("parseTrue(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestParseFalse(t *testing.T) {
	for _, tc := range []struct {
		value string
		want  bool
	}{
		{"no", true},
		{"No", true},
		{"off", true},
		{"OFF", true},
		{"false", true},
		{"False", true},
		{"", true},
		{"yes", false},
		{"0", false},
		{"banana", false},
	} {
		if got := parseFalse([]byte(tc.value)); got != tc.want {
			t.Errorf("parseFalse(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

// The folding is ASCII-only: U+017F LATIN SMALL LETTER LONG S folds to
// 's' under Unicode simple folding but must not match here.
func TestParse_ASCIIFoldOnly(t *testing.T) {
	if parseTrue([]byte("yeſ")) {
		t.Error("parseTrue should not apply Unicode folding")
	}
}

func TestQuitVocabulary(t *testing.T) {
	for _, tc := range []struct {
		value string
		want  bool
	}{
		{"quit=On", true},
		{"quit=YES", true},
		{"quit=true", true},
		{"quit=off", false},
		{"quit=No", false},
		{"quit=", false},
		// Unrecognized non-empty values default to true. Deliberate:
		// producers of the format count on it.
		{"quit=banana", true},
		{"quit=1", true},
	} {
		ctx, err := FromBytes([]byte(tc.value + "\n"))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.value, err)
		}
		if ctx.Quit == nil {
			t.Fatalf("%s: quit not set", tc.value)
		}
		if *ctx.Quit != tc.want {
			t.Errorf("%s: got %v, want %v", tc.value, *ctx.Quit, tc.want)
		}
	}
}
