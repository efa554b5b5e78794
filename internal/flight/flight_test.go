package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDelay(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		present bool
		want    Delay
	}{
		{"null column", "", false, Delay{}},
		{"empty string", "", true, Delay{}},
		{"whitespace only", "   ", true, Delay{}},
		{"unparsable", "soon", true, Delay{}},
		{"zero", "0", true, Delay{Minutes: 0, Present: true}},
		{"positive", "45", true, Delay{Minutes: 45, Present: true}},
		{"negative early departure", "-7", true, Delay{Minutes: -7, Present: true}},
		{"padded", " 21 ", true, Delay{Minutes: 21, Present: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDelay(tt.raw, tt.present))
		})
	}
}

func TestDelayed(t *testing.T) {
	tests := []struct {
		name  string
		delay Delay
		want  bool
	}{
		{"absent", Delay{}, false},
		{"below threshold", Delay{Minutes: 19, Present: true}, false},
		{"at threshold", Delay{Minutes: 20, Present: true}, true},
		{"above threshold", Delay{Minutes: 21, Present: true}, true},
		{"absent but large minutes", Delay{Minutes: 90, Present: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.delay.Delayed())
		})
	}
}

func TestValidIATA(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"JFK", true},
		{"lax", true}, // case handled by callers; letters are letters
		{"JF", false},
		{"JFKX", false},
		{"J1K", false},
		{"", false},
		{"J-K", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidIATA(tt.code))
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "Spirit Air Lines", NormalizeLabel("  Spirit Air Lines \n"))

	// NFC: decomposed e + combining acute collapses to the precomposed rune.
	assert.Equal(t, "América", NormalizeLabel("América"))
}
