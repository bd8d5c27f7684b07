// Package ffmpeg wraps the three transcoder invocations the pipeline needs:
// cutting a time range out of a local source (with a lightweight re-encode,
// since seeking a compressed stream is not frame-accurate otherwise),
// rendering an overlay filter chain onto a raw clip, and stream-copy
// concatenation of the processed clips via the concat demuxer.
package ffmpeg
