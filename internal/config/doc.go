// Package config loads and validates the TOML configuration file.
//
// Everything has a working default: a missing config file is not an error,
// and Default() produces a runnable configuration that resolves ffmpeg,
// ffprobe, and yt-dlp from PATH. The file only exists to override binary
// locations, the overlay font and colors, logging, and notification settings.
package config
