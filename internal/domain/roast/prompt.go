package roast

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/yanqian/itinerary-roaster/internal/domain/persona"
)

// PromptDelimiter fences the itinerary text inside the prompt.
const PromptDelimiter = "---"

type taskTemplate struct {
	framing      []string
	outputLead   string
	scope        string
	adviceScope  string
	exampleIntro string
	example      []string
	closing      string
}

var taskTemplates = map[TaskKind]taskTemplate{
	TaskManual: {
		framing: []string{
			"Your job is to roast the user's structured travel itinerary based on this persona.",
		},
		outputLead:   "The output",
		exampleIntro: "Example output format:",
		example: []string{
			"Your Day 1 sounds less like a vacation and more like a cry for help.",
			"Did you plan this with a blindfold and a dartboard?",
			AdvicePrefix + "Consider adding some downtime on Day 3, you're not a robot.",
		},
		closing: "Here is the structured itinerary to roast:",
	},
	TaskSheet: {
		framing: []string{
			"Your first task is to interpret the raw text content from a user's spreadsheet to understand their travel itinerary. The content might be messy or unstructured. Do your best to make sense of it and identify daily plans or distinct activities.",
			"Once you've inferred the itinerary, your second task is to roast it based on your character persona.",
		},
		outputLead:   "Your final output",
		scope:        " based on the itinerary you inferred",
		adviceScope:  " related to the inferred itinerary",
		exampleIntro: `Example output format if the sheet contained "Paris Day 1: Eiffel Tower, Day 2: Louvre":`,
		example: []string{
			"Interpreting your spreadsheet was an adventure in itself. So, Eiffel Tower on day one, huh? Groundbreaking.",
			"The Louvre on Day 2? Hope you enjoy crowds and getting lost.",
			AdvicePrefix + "Pre-book tickets for popular attractions like the Eiffel Tower and Louvre to save time.",
			AdvicePrefix + "Wear comfortable shoes; you'll be doing a lot of walking.",
		},
		closing: "Here is the raw spreadsheet content to interpret and then roast:",
	},
	TaskVoice: {
		framing: []string{
			"Your first task is to interpret the following unstructured text, which is a transcript of a user's voice note describing their travel itinerary. The content might be conversational, messy, or unstructured. Do your best to make sense of it and identify daily plans or distinct activities.",
			"Once you've inferred the itinerary, your second task is to roast it based on your character persona.",
		},
		outputLead:   "Your final output",
		scope:        " based on the itinerary you inferred",
		adviceScope:  " related to the inferred itinerary",
		exampleIntro: `Example output format if the voice note was "Okay so like, day one, Eiffel Tower, maybe some croissants. Then day two, gotta hit the Louvre.":`,
		example: []string{
			"Listening to that was... an experience. Eiffel Tower and croissants, groundbreaking stuff for day one.",
			"The Louvre on day two? Hope you enjoy crowds and feeling lost in a giant building. Riveting.",
			AdvicePrefix + "Pre-book tickets for popular attractions like the Eiffel Tower and Louvre to save time.",
			AdvicePrefix + "Consider using a travel app to organize your thoughts before dictating next time.",
		},
		closing: "Here is the voice note transcript to interpret and then roast:",
	},
}

// BuildPrompt assembles the completion prompt: persona fragment, task framing,
// the shared JSON output contract, an example array, then the itinerary
// between delimiter lines. Unknown kinds use the manual template.
func BuildPrompt(p persona.Persona, itinerary string, kind TaskKind) string {
	tmpl, ok := taskTemplates[kind]
	if !ok {
		tmpl = taskTemplates[TaskManual]
	}

	var b strings.Builder
	b.WriteString(p.PromptFragment)
	b.WriteString("\n")
	for _, line := range tmpl.framing {
		b.WriteString(line)
		b.WriteString("\n")
	}
	writeOutputContract(&b, tmpl)
	b.WriteString("\n")
	b.WriteString(tmpl.exampleIntro)
	b.WriteString("\n")
	b.WriteString(renderExample(tmpl.example))
	b.WriteString("\n\n")
	b.WriteString(tmpl.closing)
	b.WriteString("\n")
	b.WriteString(PromptDelimiter)
	b.WriteString("\n")
	b.WriteString(itinerary)
	b.WriteString("\n")
	b.WriteString(PromptDelimiter)
	b.WriteString("\n")
	return b.String()
}

func writeOutputContract(b *strings.Builder, tmpl taskTemplate) {
	lines := []string{
		tmpl.outputLead + " MUST be a JSON array of strings.",
		"Each string in the array should be a short, punchy statement (max 1-2 sentences) reflecting your character.",
		"Include 3-4 of these roast statements" + tmpl.scope + ".",
		`After the roast statements, include 1-2 strings in the array that are genuinely useful pieces of advice` + tmpl.adviceScope + `. Start these with "` + AdvicePrefix + `". These advice lines should be neutral and not necessarily in character.`,
		"Do NOT include any other text, preamble, or sign-off outside of the JSON array.",
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func renderExample(items []string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return "[]"
	}
	return strings.TrimSpace(buf.String())
}
