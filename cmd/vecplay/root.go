package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynarray/script"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd builds the command tree; tests execute it with SetArgs.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vecplay",
		Short:        "Replay dynamic array operation scripts",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", os.Getenv("VECPLAY_LOG_LEVEL"), "Log level: debug|info|warn|error")
	root.PersistentFlags().Bool("color", false, "Style the outcome column")

	runCmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a YAML script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			keepGoing, _ := cmd.Flags().GetBool("continue-on-error")
			err = replay(cmd, s, keepGoing)
			var se *script.StepError
			if keepGoing && errors.As(err, &se) {
				return nil
			}
			return err
		},
	}
	runCmd.Flags().Bool("continue-on-error", false, "Keep running after a failing step and exit 0")
	root.AddCommand(runCmd)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in insert/erase/pop scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The last PopBack fails on purpose; that is part of the demo.
			err := replay(cmd, script.Demo(), true)
			var se *script.StepError
			if errors.As(err, &se) {
				return nil
			}
			return err
		},
	}
	root.AddCommand(demoCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "vecplay", version)
		},
	}
	root.AddCommand(versionCmd)

	return root
}

// replay runs s and renders the trace to the command output, also when a
// step fails, so the failing state is visible.
func replay(cmd *cobra.Command, s *script.Script, keepGoing bool) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := parseLevel(levelName)
	if err != nil {
		return err
	}
	color, _ := cmd.Flags().GetBool("color")

	r := &script.Runner{
		Logger:          newLogger(cmd.ErrOrStderr(), level),
		ContinueOnError: keepGoing,
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	trace, runErr := r.Run(ctx, s)
	if trace != nil {
		if err := script.Render(cmd.OutOrStdout(), trace, color); err != nil {
			return err
		}
	}

	return runErr
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseLevel maps a flag value to a slog level; empty means warn so that
// only failing steps are reported by default.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("invalid --log-level %q; use debug|info|warn|error", s)
}
