package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"matchreel/internal/config"
	"matchreel/internal/deps"
	"matchreel/internal/journal"
	"matchreel/internal/logging"
	"matchreel/internal/media/ffmpeg"
	"matchreel/internal/notifications"
	"matchreel/internal/overlay"
	"matchreel/internal/pipeline"
	"matchreel/internal/preflight"
	"matchreel/internal/record"
	"matchreel/internal/services"
	"matchreel/internal/services/ytdlp"
	"matchreel/internal/workspace"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var skipPreflight bool
	var legacyPath string

	cmd := &cobra.Command{
		Use:   "run [record]",
		Short: "Process a record into an annotated highlight video",
		Long: "Run loads the record document (a .json, .yaml, or .yml file, or a\n" +
			"directory containing exactly one), fetches each segment, renders the\n" +
			"scoreboard overlay, and merges the clips into one video beside the record.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := "."
			if len(args) == 1 {
				target = args[0]
			}
			return runPipeline(cmd, cfg, target, skipPreflight)
		},
	}

	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Skip environment checks before running")
	cmd.Flags().StringVarP(&legacyPath, "path", "p", "", "Accepted for compatibility with older scripts; use the positional argument")
	_ = cmd.Flags().MarkHidden("path")
	return cmd
}

func runPipeline(cmd *cobra.Command, cfg *config.Config, target string, skipPreflight bool) error {
	out := cmd.OutOrStdout()

	recordPath, err := record.Find(target)
	if err != nil {
		return err
	}
	rec, err := record.Load(recordPath)
	if err != nil {
		return err
	}
	if rec.Mode == record.ModeLocal {
		source := rec.LocalSourcePath()
		if _, err := os.Stat(source); err != nil {
			return services.Wrap(services.ErrInput, "run", "source",
				"local source video missing: "+source, err)
		}
	}

	if !skipPreflight {
		results := preflight.RunAll(cfg, rec)
		for _, result := range results {
			if !result.Passed {
				fmt.Fprintf(out, "preflight: %s failed: %s\n", result.Name, result.Detail)
			}
		}
		if !preflight.AllPassed(results) {
			return errors.New("preflight checks failed")
		}
	}
	deps.EnsureExecutable(cfg.FFmpegBinary)
	deps.EnsureExecutable(cfg.FFprobeBinary)

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	ws := workspace.New(rec.Path, logger)
	if err := ws.Acquire(); err != nil {
		return err
	}
	if err := ws.Prepare(); err != nil {
		ws.Cleanup()
		return err
	}
	defer ws.Cleanup()

	store, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cli := ffmpeg.NewCLI(ffmpeg.WithBinary(cfg.FFmpegBinary))
	ytClient := ytdlp.NewCLI(
		ytdlp.WithBinary(cfg.YtDlpBinary),
		ytdlp.WithFormat(cfg.DownloadFormat),
	)
	fetcher := pipeline.NewFetcherForRecord(rec, ytClient, cli)
	renderer := pipeline.NewOverlayRenderer(cli, cfg.FFprobeBinary, styleFromConfig(cfg))
	merger := pipeline.NewStreamMerger(cli)

	events := notifications.NewChannelPublisher(64)
	runner := pipeline.NewRunner(fetcher, renderer, merger,
		pipeline.WithJournal(store),
		pipeline.WithPublisher(events),
		pipeline.WithLogger(logger),
	)

	signals := make(chan os.Signal, 2)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			fmt.Fprintln(out, "Stopping after the current clip...")
			runner.RequestAbort()
		}
	}()

	var consumer sync.WaitGroup
	consumer.Add(1)
	go func() {
		defer consumer.Done()
		for ev := range events.Events() {
			fmt.Fprintf(out, "[%3.0f%%] %s\n", ev.Percent, ev.Message)
		}
	}()

	result, runErr := runner.Run(cmd.Context(), rec, ws.Layout)
	events.Close()
	consumer.Wait()

	notifyOutcome(cmd.Context(), cfg, result, runErr)

	fmt.Fprintf(out, "Clips: %d rendered, %d cached, %d failed\n",
		result.Rendered, result.Cached, result.Failed)
	if runErr != nil {
		return runErr
	}
	fmt.Fprintf(out, "Saved %s\n", result.OutputPath)
	return nil
}

func notifyOutcome(ctx context.Context, cfg *config.Config, result pipeline.Result, runErr error) {
	push := notifications.NewPushService(cfg)
	switch result.Outcome {
	case journal.OutcomeCompleted:
		_ = push.NotifyRunCompleted(ctx, result.OutputPath)
	case journal.OutcomeAborted:
		_ = push.NotifyRunAborted(ctx)
	case journal.OutcomeFailed:
		reason := "unknown failure"
		if runErr != nil {
			reason = runErr.Error()
		}
		_ = push.NotifyRunFailed(ctx, reason)
	}
}

func styleFromConfig(cfg *config.Config) overlay.Style {
	style := overlay.DefaultStyle(cfg.FontFile)
	if cfg.Overlay.Team1Color != "" {
		style.Team1Color = cfg.Overlay.Team1Color
	}
	if cfg.Overlay.Team2Color != "" {
		style.Team2Color = cfg.Overlay.Team2Color
	}
	if cfg.Overlay.BarColor != "" {
		style.BarColor = cfg.Overlay.BarColor
	}
	if cfg.Overlay.AccentColor != "" {
		style.AccentColor = cfg.Overlay.AccentColor
	}
	if cfg.Overlay.LineColor != "" {
		style.LineColor = cfg.Overlay.LineColor
	}
	return style
}
