// Package pipeline drives a record through fetch, render, and merge.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"matchreel/internal/journal"
	"matchreel/internal/logging"
	"matchreel/internal/notifications"
	"matchreel/internal/record"
	"matchreel/internal/services"
	"matchreel/internal/workspace"
)

// ClipStatus is the per-segment outcome within a run.
type ClipStatus string

const (
	ClipPending  ClipStatus = "pending"
	ClipRendered ClipStatus = "rendered"
	ClipCached   ClipStatus = "cached"
	ClipFailed   ClipStatus = "failed"
)

// ClipRef tracks one segment's clip through the run.
type ClipRef struct {
	Index     int
	Processed string
	Status    ClipStatus
	Err       error
}

// Result is what a finished run reports back to the caller.
type Result struct {
	RunID      string
	Outcome    string
	OutputPath string
	Clips      []ClipRef
	Rendered   int
	Cached     int
	Failed     int
}

// Fetcher produces the raw clip for one segment.
type Fetcher interface {
	Fetch(ctx context.Context, seg record.DerivedSegment, dest string) error
}

// Renderer turns a raw clip into an annotated one.
type Renderer interface {
	Render(ctx context.Context, seg record.DerivedSegment, segments []record.DerivedSegment, raw, dest string) error
}

// Merger concatenates rendered clips into the final output.
type Merger interface {
	Merge(ctx context.Context, clips []string, playlistPath, outputPath string) error
}

// Journal is the subset of the run journal the pipeline writes to.
type Journal interface {
	StartRun(ctx context.Context, id, recordPath string, startedAt time.Time) error
	FinishRun(ctx context.Context, id, outcome, message string, rendered, cached, failed int, finishedAt time.Time) error
	RecordClip(ctx context.Context, runID string, index int, status, detail string) error
}

var _ Journal = (*journal.Store)(nil)

// Runner executes one record end to end. A Runner is single-use.
type Runner struct {
	fetcher   Fetcher
	renderer  Renderer
	merger    Merger
	journal   Journal
	publisher notifications.Publisher
	logger    *slog.Logger

	abort atomic.Bool
}

// Option adjusts Runner construction.
type Option func(*Runner)

// WithJournal records run and clip history to the given journal.
func WithJournal(j Journal) Option {
	return func(r *Runner) { r.journal = j }
}

// WithPublisher streams progress events to the given publisher.
func WithPublisher(p notifications.Publisher) Option {
	return func(r *Runner) { r.publisher = p }
}

// WithLogger attaches a logger; a nop logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner wires a runner from its stage implementations.
func NewRunner(fetcher Fetcher, renderer Renderer, merger Merger, opts ...Option) *Runner {
	r := &Runner{
		fetcher:   fetcher,
		renderer:  renderer,
		merger:    merger,
		publisher: notifications.NopPublisher{},
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.publisher == nil {
		r.publisher = notifications.NopPublisher{}
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	return r
}

// RequestAbort asks the run to stop at the next loop boundary. Safe from any
// goroutine; in-flight tool invocations are allowed to finish.
func (r *Runner) RequestAbort() {
	r.abort.Store(true)
}

// Run processes the record inside the prepared workspace. The returned Result
// is valid even when err is non-nil. Segment failures are absorbed; the run
// only fails when nothing merges or concatenation itself breaks.
func (r *Runner) Run(ctx context.Context, rec *record.GameRecord, layout workspace.Layout) (Result, error) {
	result := Result{RunID: uuid.NewString(), Outcome: journal.OutcomeRunning}
	segments := record.Derive(rec)
	total := len(segments)

	r.journalStart(ctx, result.RunID, rec.Path)
	r.publish(result.RunID, "loading", 10,
		fmt.Sprintf("Processing %d segments from %s", total, rec.BaseName()), false, "")

	for i, seg := range segments {
		if r.abort.Load() {
			return r.finish(ctx, result, journal.OutcomeAborted, "",
				services.Wrap(services.ErrAborted, "pipeline", "segment",
					fmt.Sprintf("stopped before segment %d", i), nil))
		}

		ref := r.processSegment(ctx, seg, segments, layout)
		result.Clips = append(result.Clips, ref)
		switch ref.Status {
		case ClipRendered:
			result.Rendered++
		case ClipCached:
			result.Cached++
		case ClipFailed:
			result.Failed++
		}
		r.journalClip(ctx, result.RunID, ref)

		percent := 10 + 80*float64(i+1)/float64(total)
		r.publish(result.RunID, "segment", percent,
			fmt.Sprintf("Processing Clip %d of %d...", i+1, total), false, "")
	}

	if r.abort.Load() {
		return r.finish(ctx, result, journal.OutcomeAborted, "",
			services.Wrap(services.ErrAborted, "pipeline", "merge", "stopped before merge", nil))
	}

	clips := make([]string, 0, len(result.Clips))
	for _, ref := range result.Clips {
		if ref.Status == ClipFailed {
			continue
		}
		clips = append(clips, ref.Processed)
	}
	if len(clips) == 0 {
		err := services.Wrap(services.ErrConcat, "pipeline", "merge", "no clips processed", nil)
		return r.finish(ctx, result, journal.OutcomeFailed, err.Error(), err)
	}

	r.publish(result.RunID, "merging", 90, "Merging clips...", false, "")
	if err := r.merger.Merge(ctx, clips, layout.PlaylistPath, layout.OutputPath); err != nil {
		return r.finish(ctx, result, journal.OutcomeFailed, err.Error(), err)
	}

	result.OutputPath = layout.OutputPath
	return r.finish(ctx, result, journal.OutcomeCompleted, layout.OutputPath, nil)
}

// processSegment fetches and renders one segment. A processed clip already on
// disk short-circuits the segment, which is what makes reruns resume.
func (r *Runner) processSegment(ctx context.Context, seg record.DerivedSegment, segments []record.DerivedSegment, layout workspace.Layout) ClipRef {
	ref := ClipRef{Index: seg.Index, Processed: layout.ProcessedClipPath(seg.Index), Status: ClipPending}
	logger := r.logger.With(logging.Int("segment", seg.Index))

	if _, err := os.Stat(ref.Processed); err == nil {
		logger.Info("processed clip exists, skipping")
		ref.Status = ClipCached
		return ref
	}

	raw := layout.RawClipPath(seg.Index)
	if err := r.fetcher.Fetch(ctx, seg, raw); err != nil {
		return r.failSegment(logger, ref, err)
	}
	if err := r.renderer.Render(ctx, seg, segments, raw, ref.Processed); err != nil {
		return r.failSegment(logger, ref, err)
	}

	ref.Status = ClipRendered
	return ref
}

func (r *Runner) failSegment(logger *slog.Logger, ref ClipRef, err error) ClipRef {
	if !services.SegmentScoped(err) {
		err = services.Wrap(services.ErrRender, "pipeline", "segment", "unclassified failure", err)
	}
	logger.Warn("segment failed, continuing", logging.Error(err))
	ref.Status = ClipFailed
	ref.Err = err
	return ref
}

func (r *Runner) finish(ctx context.Context, result Result, outcome, message string, err error) (Result, error) {
	result.Outcome = outcome
	if r.journal != nil {
		if jerr := r.journal.FinishRun(ctx, result.RunID, outcome, message,
			result.Rendered, result.Cached, result.Failed, time.Now()); jerr != nil {
			r.logger.Warn("journal finish failed", logging.Error(jerr))
		}
	}
	r.publish(result.RunID, "done", 100, terminalMessage(outcome, message), true, outcome)
	return result, err
}

func (r *Runner) journalStart(ctx context.Context, runID, recordPath string) {
	if r.journal == nil {
		return
	}
	if err := r.journal.StartRun(ctx, runID, recordPath, time.Now()); err != nil {
		r.logger.Warn("journal start failed", logging.Error(err))
	}
}

func (r *Runner) journalClip(ctx context.Context, runID string, ref ClipRef) {
	if r.journal == nil {
		return
	}
	detail := ""
	if ref.Err != nil {
		detail = ref.Err.Error()
	}
	if err := r.journal.RecordClip(ctx, runID, ref.Index, string(ref.Status), detail); err != nil {
		r.logger.Warn("journal clip failed", logging.Error(err))
	}
}

func (r *Runner) publish(runID, stage string, percent float64, message string, terminal bool, outcome string) {
	r.publisher.Publish(notifications.Event{
		RunID:    runID,
		Stage:    stage,
		Percent:  percent,
		Message:  message,
		Terminal: terminal,
		Outcome:  outcome,
	})
}

func terminalMessage(outcome, message string) string {
	switch outcome {
	case journal.OutcomeCompleted:
		return "Saved: " + message
	case journal.OutcomeAborted:
		return "Run aborted"
	default:
		if message != "" {
			return message
		}
		return "Run failed"
	}
}
