package roast

import (
	"context"
	"strings"

	"github.com/yanqian/itinerary-roaster/internal/domain/persona"
	apperrors "github.com/yanqian/itinerary-roaster/pkg/errors"
	"github.com/yanqian/itinerary-roaster/pkg/metrics"
)

// AdvicePrefix marks an output line as practical advice rather than a roast.
const AdvicePrefix = "Real Talk: "

// Generation parameters sent with every completion request.
const (
	DefaultModel           = "gpt-4o"
	DefaultMaxOutputTokens = 2000
	DefaultTemperature     = 0.78
)

// TaskKind identifies which input variant a request carries.
type TaskKind string

const (
	TaskManual TaskKind = "manual"
	TaskSheet  TaskKind = "sheet"
	TaskVoice  TaskKind = "voice"
)

// Day is one entry of a manually typed itinerary.
type Day struct {
	ID      int    `json:"id"`
	Details string `json:"details"`
}

// Input is a tagged union over the three itinerary shapes. Only the field
// matching Kind is read.
type Input struct {
	Kind       TaskKind
	Days       []Day
	SheetURL   string
	Transcript string
}

// ManualInput wraps a day-by-day itinerary.
func ManualInput(days []Day) Input {
	return Input{Kind: TaskManual, Days: days}
}

// SheetInput wraps a published spreadsheet URL.
func SheetInput(sheetURL string) Input {
	return Input{Kind: TaskSheet, SheetURL: sheetURL}
}

// VoiceInput wraps a dictated transcript.
func VoiceInput(transcript string) Input {
	return Input{Kind: TaskVoice, Transcript: transcript}
}

// Request is a single roast invocation.
type Request struct {
	Input     Input
	PersonaID string
}

// Result is the outbound roast payload. Exactly one of RoastItems or Error is set.
type Result struct {
	RoastItems []string `json:"roastItems,omitempty"`
	Error      string   `json:"error,omitempty"`
	Code       string   `json:"code,omitempty"`
}

// Success builds a result from roast lines.
func Success(items []string) Result {
	return Result{RoastItems: items}
}

// Failure converts an error into the user facing result shape.
func Failure(err error) Result {
	msg := apperrors.MessageOf(err)
	if strings.TrimSpace(msg) == "" {
		msg = "Could not generate a roast. Try again!"
	}
	return Result{Error: msg, Code: apperrors.CodeOf(err)}
}

// IsAdvice reports whether an output line carries the advice marker.
func IsAdvice(item string) bool {
	return strings.HasPrefix(item, AdvicePrefix)
}

// SplitAdvice strips the advice marker and reports whether it was present.
func SplitAdvice(item string) (string, bool) {
	if IsAdvice(item) {
		return strings.TrimPrefix(item, AdvicePrefix), true
	}
	return item, false
}

// CompletionRequest carries one prompt and its generation parameters.
type CompletionRequest struct {
	Prompt          string
	MaxOutputTokens int
	Temperature     float32
	Model           string
}

// Completion is the buffered provider output.
type Completion struct {
	Text  string
	Usage metrics.TokenUsage
}

// CompletionClient invokes the text generation provider.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

// SheetExport is the raw response of a spreadsheet export download.
type SheetExport struct {
	StatusCode int
	Body       string
}

// SheetFetcher downloads spreadsheet exports.
type SheetFetcher interface {
	Fetch(ctx context.Context, exportURL string) (SheetExport, error)
}

// PersonaCatalog resolves persona ids.
type PersonaCatalog interface {
	Find(id string) persona.Persona
}

// TokenEstimator estimates prompt token counts for diagnostics.
type TokenEstimator interface {
	Count(text string) int
}

// Config configures the roast pipeline.
type Config struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int
}
