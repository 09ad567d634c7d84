package roast

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/itinerary-roaster/internal/domain/persona"
)

func TestBuildPromptContainsPersonaAndDelimitedItinerary(t *testing.T) {
	p := persona.Persona{ID: "critic", PromptFragment: "You are a grumpy critic named Test."}
	itinerary := "Day 1: Eiffel Tower\nDay 2: Louvre"

	for _, kind := range []TaskKind{TaskManual, TaskSheet, TaskVoice} {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()
			prompt := BuildPrompt(p, itinerary, kind)

			require.True(t, strings.HasPrefix(prompt, p.PromptFragment+"\n"))
			require.Contains(t, prompt, "\n---\n"+itinerary+"\n---\n")
			require.True(t, strings.HasSuffix(prompt, itinerary+"\n---\n"))
			require.Contains(t, prompt, "MUST be a JSON array of strings")
			require.Contains(t, prompt, `Start these with "Real Talk: "`)
			require.Less(t, strings.Index(prompt, p.PromptFragment), strings.Index(prompt, "MUST be a JSON array"))
		})
	}
}

func TestBuildPromptFramingPerKind(t *testing.T) {
	p := persona.Persona{PromptFragment: "persona"}

	manual := BuildPrompt(p, "x", TaskManual)
	require.Contains(t, manual, "structured travel itinerary")
	require.NotContains(t, manual, "spreadsheet")

	sheet := BuildPrompt(p, "x", TaskSheet)
	require.Contains(t, sheet, "raw text content from a user's spreadsheet")
	require.Contains(t, sheet, "based on the itinerary you inferred")

	voice := BuildPrompt(p, "x", TaskVoice)
	require.Contains(t, voice, "transcript of a user's voice note")

	require.Equal(t, manual, BuildPrompt(p, "x", TaskKind("fax")))
}

func TestBuildPromptExampleIsValidJSON(t *testing.T) {
	for kind, tmpl := range taskTemplates {
		rendered := renderExample(tmpl.example)
		var decoded []string
		require.NoError(t, json.Unmarshal([]byte(rendered), &decoded), string(kind))
		require.Equal(t, tmpl.example, decoded)
		require.True(t, IsAdvice(decoded[len(decoded)-1]))

		prompt := BuildPrompt(persona.Persona{PromptFragment: "p"}, "it", kind)
		require.Contains(t, prompt, rendered)
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	p := persona.NewDefaultCatalog().Default()
	require.Equal(t, BuildPrompt(p, "Day 1: beach", TaskVoice), BuildPrompt(p, "Day 1: beach", TaskVoice))
}

func TestBuildPromptOutputContractWordingPerKind(t *testing.T) {
	tests := []struct {
		kind     TaskKind
		want     []string
		excluded []string
	}{
		{
			kind: TaskManual,
			want: []string{
				"\nThe output MUST be a JSON array of strings.\n",
				"\nInclude 3-4 of these roast statements.\n",
				"genuinely useful pieces of advice. Start these with",
			},
			excluded: []string{"Your final output", "related to the inferred itinerary"},
		},
		{
			kind: TaskSheet,
			want: []string{
				"\nYour final output MUST be a JSON array of strings.\n",
				"\nInclude 3-4 of these roast statements based on the itinerary you inferred.\n",
				"genuinely useful pieces of advice related to the inferred itinerary. Start these with",
			},
		},
		{
			kind: TaskVoice,
			want: []string{
				"\nYour final output MUST be a JSON array of strings.\n",
				"genuinely useful pieces of advice related to the inferred itinerary. Start these with",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			prompt := BuildPrompt(persona.Persona{PromptFragment: "p"}, "it", tt.kind)
			for _, s := range tt.want {
				require.Contains(t, prompt, s)
			}
			for _, s := range tt.excluded {
				require.NotContains(t, prompt, s)
			}
		})
	}
}
