package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "use **ripe** tomatoes", "use ripe tomatoes"},
		{"italic", "simmer *gently*", "simmer gently"},
		{"underscore", "stir _well_", "stir well"},
		{"inline code", "add `1 tsp` salt", "add 1 tsp salt"},
		{"heading", "## Ingredients\nflour", "Ingredients\nflour"},
		{"rule", "step one\n---\nstep two", "step one\n\nstep two"},
		{"link keeps text", "see [this recipe](http://x.test/r)", "see this recipe"},
		{"collapse blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMarkdown(tt.in))
		})
	}
}

func TestSegment(t *testing.T) {
	content := "📝 Ingredients\n\n1. Soak the rice\n2. Grind the batter\n• Salt to taste\n- Oil for the pan\nFor the filling:\nJust mix everything"

	lines := Segment(content)
	require.Len(t, lines, 8)

	assert.Equal(t, LineHeading, lines[0].Kind)
	assert.Equal(t, "📝 Ingredients", lines[0].Text)

	assert.Equal(t, LineBlank, lines[1].Kind)

	assert.Equal(t, LineNumbered, lines[2].Kind)
	assert.Equal(t, "1", lines[2].Number)
	assert.Equal(t, "Soak the rice", lines[2].Text)

	assert.Equal(t, LineNumbered, lines[3].Kind)
	assert.Equal(t, "2", lines[3].Number)

	assert.Equal(t, LineBullet, lines[4].Kind)
	assert.Equal(t, "Salt to taste", lines[4].Text)

	assert.Equal(t, LineBullet, lines[5].Kind)
	assert.Equal(t, "Oil for the pan", lines[5].Text)

	assert.Equal(t, LineSubHeading, lines[6].Kind)
	assert.Equal(t, LineText, lines[7].Kind)
}

func TestSegmentPlainText(t *testing.T) {
	lines := Segment("Hello there")
	require.Len(t, lines, 1)
	assert.Equal(t, LineText, lines[0].Kind)
	assert.Equal(t, "Hello there", lines[0].Text)
}
