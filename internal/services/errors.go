package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInput marks bad, ambiguous, or missing input (record file or local
	// source video). Startup-fatal: nothing is created before this surfaces.
	ErrInput = errors.New("input error")
	// ErrFetch marks a remote range download failure. Segment-scoped.
	ErrFetch = errors.New("fetch error")
	// ErrExtract marks a local range cut failure. Segment-scoped.
	ErrExtract = errors.New("extract error")
	// ErrRender marks an overlay render failure. Segment-scoped.
	ErrRender = errors.New("render error")
	// ErrConcat marks a concatenation failure. Run-fatal.
	ErrConcat = errors.New("concat error")
	// ErrAborted marks a user-requested stop observed at a loop boundary.
	ErrAborted = errors.New("abort requested")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrRender
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// SegmentScoped reports whether an error is absorbed at the segment boundary
// instead of ending the run.
func SegmentScoped(err error) bool {
	return errors.Is(err, ErrFetch) || errors.Is(err, ErrExtract) || errors.Is(err, ErrRender)
}

// RunFatal reports whether an error must terminate the whole run.
func RunFatal(err error) bool {
	return errors.Is(err, ErrInput) || errors.Is(err, ErrConcat)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "stage failure"
	}
	return strings.Join(parts, ": ")
}
