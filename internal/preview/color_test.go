package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/taruca/internal/card"
)

func TestBlend(t *testing.T) {
	tests := []struct {
		bg, accent string
		opacity    float64
		expected   string
	}{
		{"#000000", "#ffffff", 0.2, "#333333"},
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#ffffff", "#ffffff", 0.2, "#ffffff"},
		{"not-a-color", "#3b82f6", 0.2, "#3b82f6"},
		{"#000000", "blue", 0.2, "blue"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Blend(test.bg, test.accent, test.opacity),
			"blend %s over %s", test.accent, test.bg)
	}
}

func TestContrast(t *testing.T) {
	t.Run("black on white", func(t *testing.T) {
		ratio, ok := Contrast(card.Record{TextColor: "#000000", BackgroundColor: "#ffffff"})
		assert.True(t, ok)
		assert.InDelta(t, 21.0, ratio, 0.01)
	})

	t.Run("order does not matter", func(t *testing.T) {
		a, _ := Contrast(card.Record{TextColor: "#1f2937", BackgroundColor: "#ffffff"})
		b, _ := Contrast(card.Record{TextColor: "#ffffff", BackgroundColor: "#1f2937"})
		assert.InDelta(t, a, b, 1e-9)
	})

	t.Run("default card", func(t *testing.T) {
		ratio, ok := Contrast(card.DefaultRecord())
		assert.True(t, ok)
		assert.InDelta(t, 8.72, ratio, 0.05)
	})

	t.Run("unparseable colors", func(t *testing.T) {
		_, ok := Contrast(card.Record{TextColor: "white", BackgroundColor: "#000000"})
		assert.False(t, ok)
	})
}
