// Package ffprobe wraps ffprobe's JSON inspection mode. The pipeline uses it
// to read the dimensions of each raw clip before planning the overlay.
package ffprobe
