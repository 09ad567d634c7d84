package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanqian/itinerary-roaster/internal/domain/persona"
	"github.com/yanqian/itinerary-roaster/internal/domain/roast"
	"github.com/yanqian/itinerary-roaster/internal/infra/config"
	"github.com/yanqian/itinerary-roaster/internal/infra/llm"
	"github.com/yanqian/itinerary-roaster/internal/infra/sheets"
	"github.com/yanqian/itinerary-roaster/pkg/logger"
	"github.com/yanqian/itinerary-roaster/pkg/metrics"
)

// environment holds what the commands need so tests can swap the pipeline.
type environment struct {
	catalog    *persona.Catalog
	newService func(ctx context.Context) (roast.Service, error)
	stdin      io.Reader
}

func defaultEnvironment() environment {
	catalog := persona.NewDefaultCatalog()
	return environment{
		catalog: catalog,
		stdin:   os.Stdin,
		newService: func(ctx context.Context) (roast.Service, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			level := os.Getenv("LOG_LEVEL")
			if level == "" {
				level = "warn"
			}
			log := logger.NewWithWriter(os.Stderr, level)
			completer, err := llm.NewCompleter(ctx, cfg.LLM)
			if err != nil {
				return nil, err
			}
			roastCfg := roast.Config{
				APIKey:          cfg.LLM.APIKey,
				Model:           cfg.LLM.Model,
				Temperature:     cfg.LLM.Temperature,
				MaxOutputTokens: cfg.LLM.MaxOutputTokens,
			}
			return roast.NewService(
				roastCfg,
				catalog,
				completer,
				sheets.NewClient(cfg.Sheets.Timeout, cfg.Sheets.MaxBytes),
				metrics.NewTokenCounter(cfg.LLM.Model),
				log,
			), nil
		},
	}
}

func newRootCmd(env environment) *cobra.Command {
	var (
		personaID string
		timeout   time.Duration
	)

	root := &cobra.Command{
		Use:           "roastctl",
		Short:         "Roast a travel itinerary in the voice of a persona",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&personaID, "persona", "p", "", "persona id (see `roastctl personas`)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for one roast, 0 disables it")

	run := func(cmd *cobra.Command, input roast.Input) error {
		var (
			ctx    context.Context
			cancel context.CancelFunc
		)
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(cmd.Context(), timeout)
		} else {
			ctx, cancel = context.WithCancel(cmd.Context())
		}
		defer cancel()
		svc, err := env.newService(ctx)
		if err != nil {
			return err
		}
		result, err := svc.Roast(ctx, roast.Request{Input: input, PersonaID: personaID})
		if err != nil {
			return fmt.Errorf("%s (%s)", result.Error, result.Code)
		}
		printResult(cmd.OutOrStdout(), result)
		return nil
	}

	var days []string
	manual := &cobra.Command{
		Use:     "manual",
		Short:   "Roast a day-by-day itinerary",
		Example: `  roastctl manual --day "Eiffel Tower, croissants" --day "Louvre"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := make([]roast.Day, 0, len(days))
			for i, details := range days {
				input = append(input, roast.Day{ID: i + 1, Details: details})
			}
			return run(cmd, roast.ManualInput(input))
		},
	}
	manual.Flags().StringArrayVarP(&days, "day", "d", nil, "details for one day, repeat in order")

	sheet := &cobra.Command{
		Use:   "sheet <url>",
		Short: "Roast a publicly shared Google Sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, roast.SheetInput(args[0]))
		},
	}

	var file string
	voice := &cobra.Command{
		Use:   "voice",
		Short: "Roast a dictated transcript read from --file or stdin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transcript, err := readTranscript(file, env.stdin)
			if err != nil {
				return err
			}
			return run(cmd, roast.VoiceInput(transcript))
		},
	}
	voice.Flags().StringVarP(&file, "file", "f", "", "transcript file, defaults to stdin")

	personas := &cobra.Command{
		Use:   "personas",
		Short: "List available personas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			def := env.catalog.Default().ID
			for _, p := range env.catalog.List() {
				marker := " "
				if p.ID == def {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-22s %s\n", marker, p.ID, p.DisplayName)
			}
			return nil
		},
	}

	root.AddCommand(manual, sheet, voice, personas)
	return root
}

func readTranscript(path string, stdin io.Reader) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read transcript: %w", err)
		}
		return string(data), nil
	}
	if stdin == nil {
		return "", errors.New("no transcript: pass --file or pipe text on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}

func printResult(w io.Writer, result roast.Result) {
	for _, item := range result.RoastItems {
		if text, ok := roast.SplitAdvice(item); ok {
			fmt.Fprintf(w, "  tip: %s\n", strings.TrimSpace(text))
			continue
		}
		fmt.Fprintf(w, "- %s\n", item)
	}
}
