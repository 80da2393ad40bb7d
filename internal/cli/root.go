// Package cli provides the command-line interface for treeview.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"treeview/internal/config"
	"treeview/internal/logging"
	"treeview/internal/outline"
	"treeview/internal/resource"
	"treeview/internal/store"
	"treeview/internal/tui"
)

// Version information (set at build time).
var Version = "0.1.0"

type envKey struct{}

// env is what PersistentPreRunE hands to every command.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	logFile io.Closer
}

func getEnv(cmd *cobra.Command) *env {
	if e, ok := cmd.Context().Value(envKey{}).(*env); ok {
		return e
	}
	return &env{cfg: &config.Config{AppID: config.DefaultAppID, Title: config.DefaultTitle, Roots: store.DefaultRoots}, logger: slog.Default()}
}

// ExitError carries a process exit status out of a command.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// GUIRunner opens the window and returns the main loop's exit status.
type GUIRunner func(cfg *config.Config, logger *slog.Logger) int

// NewRootCmd builds the command tree. Running the root without a subcommand
// opens the GTK window through gui.
func NewRootCmd(gui GUIRunner) *cobra.Command {
	runGUI := func(cmd *cobra.Command, _ []string) error {
		e := getEnv(cmd)
		if status := gui(e.cfg, e.logger); status != 0 {
			return &ExitError{Code: status}
		}
		return nil
	}

	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "treeview",
		Short:   "Two synchronized tree views",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(wd, cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			out, closer, err := logOutput(cmd, cfg)
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: out})
			if err != nil {
				return err
			}
			if f := cfg.FileUsed(); f != "" {
				logger.Debug("config loaded", "file", f)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, &env{cfg: cfg, logger: logger, logFile: closer}))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if e := getEnv(cmd); e.logFile != nil {
				return e.logFile.Close()
			}
			return nil
		},
		RunE:          runGUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./treeview.yaml)")
	pf.String("app-id", "", "application identifier registered with GTK")
	pf.String("title", "", "window title")
	pf.String("image", "", "image file to use instead of the bundled icon")
	pf.Int("roots", store.DefaultRoots, "number of top-level rows in each pane")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.String("log-format", "", "log format (text|json)")
	pf.String("log-file", "", "append logs to this file instead of stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "gui",
		Short: "Open the GTK window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	})
	rootCmd.AddCommand(newTUICommand())
	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// logOutput picks the log destination. The terminal frontend owns the
// screen, so without a log file its logs are dropped.
func logOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, io.Closer, error) {
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
	if cmd.Name() == "tui" {
		return io.Discard, nil, nil
	}
	return cmd.ErrOrStderr(), nil, nil
}

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Show the panes in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := getEnv(cmd)
			return tui.Run(e.cfg, resource.NewLoader(e.cfg.Image), e.logger)
		},
	}
}

func newDumpCommand() *cobra.Command {
	var expect string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print both panes as outlines",
		Long: `Print the contents of both panes as indented outlines.

With --expect the outline is compared with the given file instead and a line
diff is printed when they differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := getEnv(cmd)
			panes := store.BuildPanes(e.cfg.Roots, resource.NewLoader(e.cfg.Image), e.cfg.ImageName(), logReporter{e.logger}, e.logger)
			doc := outline.Document(panes.Left, panes.Right)

			if expect == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), doc)
				return err
			}
			want, err := os.ReadFile(expect)
			if err != nil {
				return fmt.Errorf("read expected outline: %w", err)
			}
			if err := outline.Check(string(want), doc); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "outline matches", expect)
			return nil
		},
	}
	cmd.Flags().StringVar(&expect, "expect", "", "compare against this outline file")
	return cmd
}

// logReporter reports errors where there is no window to show them in.
type logReporter struct {
	logger *slog.Logger
}

func (r logReporter) ReportError(err error) {
	r.logger.Warn("continuing without icon", "err", err)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "treeview", Version)
		},
	}
}

// Execute runs the root command and returns the process exit status.
func Execute(gui GUIRunner) int {
	if err := NewRootCmd(gui).Execute(); err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			return exit.Code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
