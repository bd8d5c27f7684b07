// Package overlay computes the scoreboard and progress indicator drawn onto
// each clip.
//
// Plan is a pure function of the video dimensions, the segment position, and
// the derived segment list; identical inputs always yield the identical
// primitive list, and every dimension scales linearly with the video height.
// Compile serializes the planned primitives into an ffmpeg filter chain; the
// list order is the paint order, so later stages draw over earlier ones.
package overlay
