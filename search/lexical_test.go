package search

import (
	"testing"
	"time"

	"github.com/poiesic/recall/core"
	"github.com/stretchr/testify/assert"
)

func TestBuildVariants(t *testing.T) {
	t.Run("phrase, stripped, and tokens", func(t *testing.T) {
		v := buildVariants("Git Hub Actions")
		assert.Equal(t, "git hub actions", v.phrase)
		assert.Equal(t, "githubactions", v.stripped)
		assert.Equal(t, []string{"git", "hub", "actions"}, v.tokens)
	})

	t.Run("splits on non-letter non-digit boundaries", func(t *testing.T) {
		v := buildVariants("badger-go_v4.2")
		assert.Equal(t, []string{"badger", "go", "v4"}, v.tokens)
	})

	t.Run("drops single character tokens", func(t *testing.T) {
		v := buildVariants("a b golang c")
		assert.Equal(t, []string{"golang"}, v.tokens)
	})

	t.Run("empty query yields empty variants", func(t *testing.T) {
		v := buildVariants("   ")
		assert.True(t, v.empty())
	})
}

func TestMatchesVariants(t *testing.T) {
	item := &core.Item{
		Title:    "Python tutorial for beginners",
		Content:  "Learning the basics of the language",
		Link:     "https://realpython.com/start",
		Tags:     []string{"programming", "python"},
		Summary:  "An introductory programming guide",
		Keywords: []string{"tutorial", "python"},
		Site:     core.SiteMetadata{Description: "Real Python", Domain: "realpython.com"},
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"phrase hit in title", "python tutorial", true},
		{"space-stripped variant matches domain", "real python", true},
		{"all tokens across different fields", "python guide", true},
		{"one token missing fails conjunctive filter", "python kubernetes", false},
		{"token hit in link", "realpython", true},
		{"no overlap at all", "woodworking", false},
		{"empty query matches nothing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesVariants(item, buildVariants(tt.query)))
		})
	}
}

func TestScoreLexical(t *testing.T) {
	now := time.Now().UTC()
	cfg := DefaultConfig()

	t.Run("content-only match earns the base score", func(t *testing.T) {
		item := &core.Item{Title: "Weekly notes", Content: "thoughts about gardening"}
		score := scoreLexical(item, buildVariants("gardening"), cfg, now)
		assert.InDelta(t, 0.1, score, 1e-9)
	})

	t.Run("title phrase hit", func(t *testing.T) {
		item := &core.Item{Title: "Python tutorial"}
		score := scoreLexical(item, buildVariants("python tutorial"), cfg, now)
		// base 0.1 + title phrase 0.6 + title token 0.2
		assert.InDelta(t, 0.9, score, 1e-9)
	})

	t.Run("summary phrase hit", func(t *testing.T) {
		item := &core.Item{Content: "...", Summary: "a python tutorial for beginners"}
		score := scoreLexical(item, buildVariants("python tutorial"), cfg, now)
		// base 0.1 + summary phrase 0.3
		assert.InDelta(t, 0.4, score, 1e-9)
	})

	t.Run("tag and keyword equality", func(t *testing.T) {
		item := &core.Item{
			Title:    "Reading list",
			Tags:     []string{"Python"},
			Keywords: []string{"python"},
		}
		score := scoreLexical(item, buildVariants("python"), cfg, now)
		// base 0.1 + tag 0.2 + keyword 0.15 + fuzzy exact? no: distance 0 earns nothing
		assert.InDelta(t, 0.45, score, 1e-9)
	})

	t.Run("domain equality", func(t *testing.T) {
		item := &core.Item{
			Link: "https://news.ycombinator.com",
			Site: core.SiteMetadata{Domain: "hn"},
		}
		score := scoreLexical(item, buildVariants("hn"), cfg, now)
		// base 0.1 + domain 0.1
		assert.InDelta(t, 0.2, score, 1e-9)
	})

	t.Run("fuzzy match at distance 1", func(t *testing.T) {
		item := &core.Item{Title: "Python guide"}
		score := scoreLexical(item, buildVariants("pyhton"), cfg, now)
		// base 0.1 + fuzzy 0.12; "pyhton" is not a substring so no title token hit
		assert.InDelta(t, 0.22, score, 1e-9)
	})

	t.Run("fuzzy match at distance 2", func(t *testing.T) {
		item := &core.Item{Title: "Badger internals"}
		score := scoreLexical(item, buildVariants("bodgor"), cfg, now)
		// base 0.1 + fuzzy 0.06
		assert.InDelta(t, 0.16, score, 1e-9)
	})

	t.Run("short tokens never fuzzy match", func(t *testing.T) {
		item := &core.Item{Title: "cart cast coat"}
		score := scoreLexical(item, buildVariants("cat"), cfg, now)
		assert.InDelta(t, 0.1, score, 1e-9)
	})

	t.Run("score is capped at 1", func(t *testing.T) {
		item := &core.Item{
			Title:    "Python tutorial",
			Summary:  "python tutorial",
			Tags:     []string{"python", "tutorial"},
			Keywords: []string{"python"},
			Site:     core.SiteMetadata{Domain: "python"},
		}
		score := scoreLexical(item, buildVariants("python tutorial"), cfg, now)
		assert.Equal(t, 1.0, score)
	})

	t.Run("recency term respects its weight", func(t *testing.T) {
		boosted := cfg
		boosted.TextRecencyWeight = 0.3

		fresh := &core.Item{Title: "Weekly notes", Content: "gardening", CreatedAt: now}
		old := &core.Item{Title: "Weekly notes", Content: "gardening", CreatedAt: now.AddDate(-1, 0, 0)}

		freshScore := scoreLexical(fresh, buildVariants("gardening"), boosted, now)
		oldScore := scoreLexical(old, buildVariants("gardening"), boosted, now)
		assert.Greater(t, freshScore, oldScore)
	})
}
