package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wgraph/config"
	"github.com/katalvlaran/wgraph/shell"
	"github.com/katalvlaran/wgraph/watch"
)

// newRootCmd builds the wgraph command. Each call returns an independent
// command tree so tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wgraph [script...]",
		Short: "Weighted undirected graph command processor",
		Long: "wgraph executes the numeric graph command protocol (add vertices and edges, " +
			"traverse, MST, shortest path) from the named script files in order, or from stdin.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	cmd.PersistentFlags().String("config", "", "config file (default .wgraph.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log rejected commands to stderr")
	cmd.Flags().Bool("fresh", false, "start each script file with an empty graph")
	cmd.Flags().Bool("watch", false, "re-run the script files whenever one changes")
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	cmd.AddCommand(newConfigCmd())

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		return initConfig(cfgFile)
	}

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".wgraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must load.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	fresh, _ := cmd.Flags().GetBool("fresh")
	watching, _ := cmd.Flags().GetBool("watch")
	if watching && len(args) == 0 {
		return errors.New("--watch needs at least one script file")
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	newSession := func() *shell.Session {
		return shell.New(
			shell.WithOutput(cmd.OutOrStdout()),
			shell.WithLogger(logger),
			shell.WithGraphLabel(cfg.GraphLabel),
			shell.WithMSTLabel(cfg.MSTLabel),
			shell.WithMSTMethod(cfg.MSTMethod),
		)
	}

	if len(args) == 0 {
		return newSession().Run(cmd.InOrStdin())
	}
	if err := runScripts(newSession(), args, fresh); err != nil {
		return err
	}
	if !watching {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return watchScripts(ctx, args, logger, func() error {
		return runScripts(newSession(), args, fresh)
	})
}

// runScripts feeds each file to sess in order, stopping early on the
// terminate command.
func runScripts(sess *shell.Session, paths []string, fresh bool) error {
	for _, path := range paths {
		if sess.Stopped() {
			break
		}
		if fresh {
			sess.Reset()
		}
		if err := runFile(sess, path); err != nil {
			return err
		}
	}

	return nil
}

// watchScripts calls rerun after every reported change until ctx is done.
// A failing re-run is logged, not returned, so an edit in progress does not
// end the session.
func watchScripts(ctx context.Context, paths []string, logger *slog.Logger, rerun func() error) error {
	w, err := watch.New(paths...)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case file, ok := <-w.Changes:
			if !ok {
				return nil
			}
			logger.Info("script changed", "file", file)
			if err := rerun(); err != nil {
				logger.Warn("re-run failed", "err", err)
			}
		}
	}
}

func runFile(sess *shell.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	if err := sess.Run(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// newLogger writes text records to w: Debug and up when verbose, else Warn.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
