// internal/transcript/processor_test.go
package transcript

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{
			name:       "empty transcript",
			transcript: "",
			want:       FallbackSummary,
		},
		{
			name:       "whitespace only",
			transcript: "   \n\t  ",
			want:       FallbackSummary,
		},
		{
			name:       "periods only",
			transcript: "...",
			want:       FallbackSummary,
		},
		{
			name:       "single sentence",
			transcript: "We shipped the release.",
			want:       "Meeting summary: We shipped the release. (4 words transcribed)",
		},
		{
			name:       "takes first sentence only",
			transcript: "First point here. Second point there.",
			want:       "Meeting summary: First point here. (6 words transcribed)",
		},
		{
			name:       "no trailing period",
			transcript: "short note",
			want:       "Meeting summary: short note. (2 words transcribed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.transcript))
		})
	}
}

func TestSummarize_Shape(t *testing.T) {
	got := Summarize("Alice talked about roadmap items. Bob disagreed.")
	assert.True(t, strings.HasPrefix(got, "Meeting summary: "))
	assert.True(t, strings.HasSuffix(got, "words transcribed)"))
}

func TestExtractEntities_AllKeysPresent(t *testing.T) {
	entities := ExtractEntities("")
	assert.NotNil(t, entities.People)
	assert.NotNil(t, entities.Dates)
	assert.NotNil(t, entities.Decisions)
	assert.NotNil(t, entities.Risks)
	assert.Empty(t, entities.People)
	assert.Empty(t, entities.Dates)
	assert.Empty(t, entities.Decisions)
	assert.Empty(t, entities.Risks)
}

func TestExtractEntities_People(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       []string
	}{
		{
			name:       "stoplist words excluded",
			transcript: "The Meeting started. We agreed Today. They left.",
			want:       []string{},
		},
		{
			name:       "names found and deduplicated",
			transcript: "Alice spoke. Bob answered. Alice nodded.",
			want:       []string{"Alice", "Bob"},
		},
		{
			name:       "capped at five",
			transcript: "Alice Bob Carol Dave Erin Frank Grace",
			want:       []string{"Alice", "Bob", "Carol", "Dave", "Erin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEntities(tt.transcript).People)
		})
	}
}

func TestExtractEntities_Dates(t *testing.T) {
	entities := ExtractEntities(
		"Deadline is March 15th, 2024 and review on April 2. March 15th, 2024 again.")
	assert.Equal(t, []string{"March 15th, 2024", "April 2"}, entities.Dates)
}

func TestExtractEntities_Decisions(t *testing.T) {
	transcript := "We decided to ship. It was agreed to delay QA. " +
		"The team concluded testing. We resolved the dispute. We decided nothing else."
	entities := ExtractEntities(transcript)
	require.Len(t, entities.Decisions, 3)
	assert.Contains(t, entities.Decisions[0], "decided")
	assert.Contains(t, entities.Decisions[1], "agreed")
	assert.Contains(t, entities.Decisions[2], "concluded")
}

func TestExtractEntities_RisksAlwaysEmpty(t *testing.T) {
	entities := ExtractEntities("There is a huge risk we might slip the date.")
	assert.Empty(t, entities.Risks)
}

func TestExtractActions(t *testing.T) {
	t.Run("no actionable sentences", func(t *testing.T) {
		assert.Empty(t, ExtractActions("Nothing much happened in this one."))
	})

	t.Run("positional priority", func(t *testing.T) {
		transcript := "We need to update docs. Bob should review the PR. " +
			"Carol will deploy on Friday. We must also rotate keys."
		actions := ExtractActions(transcript)
		require.Len(t, actions, 3)
		assert.Equal(t, "high", actions[0].Priority)
		assert.Equal(t, "med", actions[1].Priority)
		assert.Equal(t, "low", actions[2].Priority)
		for _, a := range actions {
			assert.Nil(t, a.DueAt)
		}
	})

	t.Run("title truncation", func(t *testing.T) {
		long := "We need to " + strings.Repeat("very ", 40) + "carefully refactor the importer"
		actions := ExtractActions(long + ".")
		require.Len(t, actions, 1)
		assert.Len(t, actions[0].Title, 100)
		assert.True(t, strings.HasSuffix(actions[0].Title, "..."))
	})

	t.Run("truncation keeps multi-byte runes intact", func(t *testing.T) {
		// 12 ASCII bytes followed by two-byte runes puts a rune
		// straddling the cut point.
		long := "We need to x" + strings.Repeat("é", 50)
		actions := ExtractActions(long + ".")
		require.Len(t, actions, 1)
		title := actions[0].Title
		assert.True(t, utf8.ValidString(title))
		assert.True(t, strings.HasSuffix(title, "..."))
		assert.LessOrEqual(t, len(title), 100)
	})

	t.Run("short titles untouched", func(t *testing.T) {
		actions := ExtractActions("Follow up with legal.")
		require.Len(t, actions, 1)
		assert.Equal(t, "Follow up with legal", actions[0].Title)
		assert.LessOrEqual(t, len(actions[0].Title), 100)
	})
}

func TestEntitiesMap(t *testing.T) {
	entities := ExtractEntities("Alice decided to ship on March 3.")
	m := entities.Map()
	for _, key := range []string{"people", "dates", "decisions", "risks"} {
		assert.Contains(t, m, key)
	}
}
