package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinCapped(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		maxDist int
		want    int
	}{
		{"identical strings", "python", "python", 2, 0},
		{"single substitution", "paris", "parts", 2, 1},
		{"single insertion", "pari", "paris", 2, 1},
		{"adjacent transposition counts once", "pyhton", "python", 2, 1},
		{"two substitutions", "badger", "budgee", 2, 2},
		{"distance over cap returns sentinel", "kitten", "sitting", 2, 3},
		{"length difference over cap short-circuits", "go", "golang", 2, 3},
		{"empty against short", "", "go", 2, 2},
		{"both empty", "", "", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levenshteinCapped(tt.a, tt.b, tt.maxDist))
		})
	}
}

func TestMinEditDistance(t *testing.T) {
	t.Run("picks the closest word", func(t *testing.T) {
		words := []string{"cooking", "python", "recipes"}
		assert.Equal(t, 1, minEditDistance("pyhton", words, 2))
	})

	t.Run("exact hit short-circuits at 0", func(t *testing.T) {
		words := []string{"alpha", "python"}
		assert.Equal(t, 0, minEditDistance("python", words, 2))
	})

	t.Run("nothing in tolerance returns sentinel", func(t *testing.T) {
		words := []string{"cooking", "recipes"}
		assert.Equal(t, 3, minEditDistance("python", words, 2))
	})

	t.Run("empty corpus returns sentinel", func(t *testing.T) {
		assert.Equal(t, 3, minEditDistance("python", nil, 2))
	})
}
