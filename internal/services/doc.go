// Package services defines the error taxonomy shared by pipeline stages.
//
// Stage implementations wrap failures with a sentinel marker so the
// orchestrator can classify them without inspecting message text: input and
// concatenation failures end the run, fetch/extract/render failures are
// absorbed per segment, and an abort request is reported as its own terminal
// outcome rather than a failure.
package services
