package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dirjump/internal/config"
	"dirjump/internal/discovery"
	"dirjump/internal/domain"
	"dirjump/internal/fuzzy"
	"dirjump/internal/logging"
	"dirjump/internal/ui"
	"dirjump/internal/ui/logic"
	"dirjump/internal/ui/services/search"
)

// errCancelled makes the process exit 1 without printing anything
var errCancelled = errors.New("cancelled")

type options struct {
	configPath string
	logFile    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dirjump [dir]",
		Short: "Pick a directory interactively and print it for the shell to cd into",
		Long: `dirjump browses directories in the terminal. Type to jump to the best
matching directory, enter picks the directory being shown, alt+enter picks
the highlighted one. The picked path is written to stderr; run
'dirjump init' for a shell function that cds into it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return run(opts, dir)
		},
	}

	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/dirjump/config.toml)")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	svc := config.NewConfigService()
	if path != "" {
		return svc.LoadFromPath(path)
	}
	return svc.Load()
}

func run(opts *options, dir string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logPath := cfg.LogFile
	if opts.logFile != "" {
		logPath = opts.logFile
	}
	logger, closer, err := logging.New(logPath, opts.debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	lister := discovery.NewFSLister(cfg.ShowHidden)
	start, err := lister.Canonicalize(dir)
	if err != nil {
		return err
	}

	scorer, err := fuzzy.New(cfg.Scorer)
	if err != nil {
		return err
	}

	machine := logic.NewMachine(lister, search.NewService(scorer), logger)
	initial, err := machine.Start(start)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"path": start, "scorer": cfg.Scorer}).Info("Starting")

	model := ui.NewModel(cfg, machine, initial, ui.NewEmitter(os.Stderr), logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, runErr := p.Run()
	return finish(model, runErr, logger)
}

// finish maps how the program ended to the process result
func finish(model *ui.Model, runErr error, logger logrus.FieldLogger) error {
	switch model.Outcome() {
	case ui.OutcomeEmitted:
		if runErr != nil {
			logger.WithError(runErr).Error("Terminal teardown failed after emitting")
		}
		return model.Err()
	case ui.OutcomeCancelled:
		if runErr != nil {
			logger.WithError(runErr).Error("Terminal teardown failed after cancel")
		}
		return errCancelled
	}

	if runErr != nil {
		return &domain.TerminalError{Op: "run", Err: runErr}
	}
	return errCancelled
}
