package roast

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/itinerary-roaster/pkg/errors"
)

// Stage names a step of the per-request pipeline.
type Stage string

const (
	StageValidating Stage = "validating"
	StagePrompting  Stage = "prompting"
	StageCompleting Stage = "completing"
	StageParsing    Stage = "parsing"
	StageDone       Stage = "done"
)

// Service exposes the roast pipeline.
type Service interface {
	// Roast runs one request end to end. The returned Result is always
	// populated; on failure it carries the user facing message and err is the
	// underlying *errors.AppError.
	Roast(ctx context.Context, req Request) (Result, error)
}

type service struct {
	cfg     Config
	catalog PersonaCatalog
	client  CompletionClient
	sheets  SheetFetcher
	tokens  TokenEstimator
	logger  *slog.Logger
}

// NewService wires up the roast pipeline. tokens may be nil.
func NewService(cfg Config, catalog PersonaCatalog, client CompletionClient, sheets SheetFetcher, tokens TokenEstimator, logger *slog.Logger) Service {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &service{
		cfg:     cfg,
		catalog: catalog,
		client:  client,
		sheets:  sheets,
		tokens:  tokens,
		logger:  logger.With("component", "roast.service"),
	}
}

func (s *service) Roast(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	kind := req.Input.Kind
	log := s.logger.With("kind", kind, "persona", req.PersonaID)

	stage := StageValidating
	s.enter(log, stage)
	if strings.TrimSpace(s.cfg.APIKey) == "" {
		return s.fail(log, stage, errMissingCredential())
	}
	itinerary, err := s.normalize(ctx, log, req.Input)
	if err != nil {
		return s.fail(log, stage, err)
	}

	stage = StagePrompting
	s.enter(log, stage)
	p := s.catalog.Find(req.PersonaID)
	prompt := BuildPrompt(p, itinerary, kind)
	// Loading the tokenizer may hit the network, so only estimate when it will be logged.
	if s.tokens != nil && log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("roast prompt built", "persona_resolved", p.ID, "prompt_tokens_estimated", s.tokens.Count(prompt))
	}

	stage = StageCompleting
	s.enter(log, stage)
	completion, err := s.client.Complete(ctx, CompletionRequest{
		Prompt:          prompt,
		MaxOutputTokens: s.cfg.MaxOutputTokens,
		Temperature:     s.cfg.Temperature,
		Model:           s.cfg.Model,
	})
	if err != nil {
		return s.fail(log, stage, errProvider(err))
	}
	if !completion.Usage.IsZero() {
		log.Info("roast completion usage",
			"prompt_tokens", completion.Usage.PromptTokens,
			"completion_tokens", completion.Usage.CompletionTokens,
			"total_tokens", completion.Usage.TotalTokens,
		)
	}

	stage = StageParsing
	s.enter(log, stage)
	result, outcome, err := ParseResponse(completion.Text)
	switch outcome {
	case OutcomeWrongShape:
		log.Warn("roast response parsed but not an array of strings", "cleaned", StripCodeFences(completion.Text))
	case OutcomeLineSplit:
		log.Warn("roast response was not JSON, fell back to line splitting", "cleaned", StripCodeFences(completion.Text))
	}
	if err != nil {
		return s.fail(log, stage, err)
	}

	s.enter(log, StageDone)
	log.Info("roast generated", "items", len(result.RoastItems), "outcome", outcome, "duration_ms", time.Since(start).Milliseconds())
	return result, nil
}

func (s *service) normalize(ctx context.Context, log *slog.Logger, in Input) (string, error) {
	switch in.Kind {
	case TaskManual:
		return NormalizeManual(in.Days)
	case TaskVoice:
		return NormalizeVoice(in.Transcript)
	case TaskSheet:
		ref, err := ParseSheetURL(in.SheetURL)
		if err != nil {
			return "", err
		}
		log.Debug("fetching sheet export", "sheet_id", ref.ID)
		export, err := s.sheets.Fetch(ctx, ref.ExportURL)
		if err != nil {
			return "", errSheetTransport(err)
		}
		if export.StatusCode < 200 || export.StatusCode >= 300 {
			return "", errSheetStatus(export.StatusCode, ref.ExportURL)
		}
		return NormalizeSheetText(export.Body)
	default:
		return "", errUnknownKind(in.Kind)
	}
}

func (s *service) enter(log *slog.Logger, stage Stage) {
	log.Debug("roast stage", "stage", stage)
}

func (s *service) fail(log *slog.Logger, stage Stage, err error) (Result, error) {
	code := apperrors.CodeOf(err)
	switch code {
	case CodeEmptyInput, CodeInvalidURL:
		log.Warn("roast rejected", "stage", stage, "code", code, "error", err)
	default:
		log.Error("roast failed", "stage", stage, "code", code, "error", err)
	}
	return Failure(err), err
}
