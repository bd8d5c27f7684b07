package config

import "runtime"

const (
	defaultLogDir          = "~/.local/share/matchreel/logs"
	defaultLogLevel        = "info"
	defaultJournalPath     = "~/.local/share/matchreel/journal.db"
	defaultFFmpegBinary    = "ffmpeg"
	defaultFFprobeBinary   = "ffprobe"
	defaultYtDlpBinary     = "yt-dlp"
	defaultDownloadFormat  = "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	defaultMinFreeSpaceGiB = 2
	defaultNtfyTimeout     = 10

	defaultTeam1Color  = "red@0.8"
	defaultTeam2Color  = "blue@0.8"
	defaultBarColor    = "black@0.8"
	defaultAccentColor = "orange@1"
	defaultLineColor   = "white@1"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LogDir:          defaultLogDir,
		LogLevel:        defaultLogLevel,
		JournalPath:     defaultJournalPath,
		FFmpegBinary:    defaultFFmpegBinary,
		FFprobeBinary:   defaultFFprobeBinary,
		YtDlpBinary:     defaultYtDlpBinary,
		FontFile:        defaultFontFile(),
		DownloadFormat:  defaultDownloadFormat,
		MinFreeSpaceGiB: defaultMinFreeSpaceGiB,

		NtfyRequestTimeout: defaultNtfyTimeout,

		Overlay: Overlay{
			Team1Color:  defaultTeam1Color,
			Team2Color:  defaultTeam2Color,
			BarColor:    defaultBarColor,
			AccentColor: defaultAccentColor,
			LineColor:   defaultLineColor,
		},
	}
}

// defaultFontFile picks a system font usable by drawtext on the current OS.
func defaultFontFile() string {
	switch runtime.GOOS {
	case "windows":
		return `C\:/Windows/Fonts/arial.ttf`
	case "darwin":
		return "/System/Library/Fonts/Helvetica.ttc"
	default:
		return "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
	}
}
