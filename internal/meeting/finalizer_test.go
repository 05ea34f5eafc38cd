// internal/meeting/finalizer_test.go
package meeting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workbenchlabs/workbench/internal/transcript"
)

func TestRenderMarkdown(t *testing.T) {
	entities := transcript.Entities{
		People:    []string{"John", "Sarah"},
		Dates:     []string{"March 15th, 2024"},
		Decisions: []string{"we decided to ship"},
		Risks:     []string{},
	}
	actions := []transcript.ActionItem{
		{Title: "We need to update the docs", Priority: "high"},
		{Title: "Sarah will follow up with legal", Priority: "med"},
	}

	md := renderMarkdown("Release planning", "Meeting summary: short. (2 words transcribed)", "raw text", entities, actions)

	assert.True(t, strings.HasPrefix(md, "# Release planning\n"))
	for _, section := range []string{
		"## Summary",
		"## Transcript",
		"## Key People",
		"## Decisions Made",
		"## Action Items",
	} {
		assert.Contains(t, md, section)
	}
	assert.Contains(t, md, "John, Sarah")
	assert.Contains(t, md, "- we decided to ship")
	assert.Contains(t, md, "- We need to update the docs (Priority: high)")
	assert.Contains(t, md, "- Sarah will follow up with legal (Priority: med)")
	assert.NotContains(t, md, "None identified")
}

func TestRenderMarkdown_EmptySections(t *testing.T) {
	md := renderMarkdown("Empty call", transcript.FallbackSummary, "", transcript.Entities{}, nil)

	// Every empty section falls back to the same placeholder.
	assert.Equal(t, 3, strings.Count(md, "None identified\n"))
	assert.Contains(t, md, "## Key People\nNone identified")
	assert.Contains(t, md, "## Decisions Made\nNone identified")
	assert.Contains(t, md, "## Action Items\nNone identified")
}
