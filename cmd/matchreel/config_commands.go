package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"matchreel/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "log_dir = %s\n", cfg.LogDir)
			fmt.Fprintf(out, "log_level = %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "log_format = %s\n", cfg.LogFormat)
			fmt.Fprintf(out, "journal_path = %s\n", cfg.JournalPath)
			fmt.Fprintf(out, "ffmpeg_binary = %s\n", cfg.FFmpegBinary)
			fmt.Fprintf(out, "ffprobe_binary = %s\n", cfg.FFprobeBinary)
			fmt.Fprintf(out, "ytdlp_binary = %s\n", cfg.YtDlpBinary)
			fmt.Fprintf(out, "font_file = %s\n", cfg.FontFile)
			fmt.Fprintf(out, "download_format = %s\n", cfg.DownloadFormat)
			fmt.Fprintf(out, "min_free_space_gib = %d\n", cfg.MinFreeSpaceGiB)
			if cfg.NtfyTopic != "" {
				fmt.Fprintf(out, "ntfy_topic = %s\n", cfg.NtfyTopic)
			}
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = config.DefaultPath()
			}
			if err := config.WriteSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}
