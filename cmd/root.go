package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"movie-booking-cli/config"
	"movie-booking-cli/logging"
	"movie-booking-cli/service"
	"movie-booking-cli/tui"
)

// BuildInfo is stamped by the linker in release builds.
type BuildInfo struct {
	Version string
	Commit  string
}

type runner struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        *zap.Logger
	booking    *service.Booking
}

// NewRootCmd assembles the command tree. Running the root command starts the TUI.
func NewRootCmd(info BuildInfo) *cobra.Command {
	r := &runner{v: config.New()}

	root := &cobra.Command{
		Use:           "movie-booking",
		Short:         "Movie Ticket Booking System",
		Long:          `Pick a movie and reserve a seat from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if r.log != nil {
				_ = r.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runTUI()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&r.configFile, "config", "", "config file (yaml, json or toml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-dir", "", "directory for the log file")
	_ = r.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = r.v.BindPFlag("log_dir", flags.Lookup("log-dir"))

	root.AddCommand(newMoviesCmd(r), newVersionCmd(info))
	return root
}

func (r *runner) setup() error {
	cfg, err := config.Load(r.v, r.configFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogDir, cfg.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	booking, err := service.NewSampleBooking(log)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	r.cfg = cfg
	r.log = log
	r.booking = booking
	return nil
}

func (r *runner) runTUI() error {
	opts := []tea.ProgramOption{}
	if r.cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if r.cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	r.log.Info("Starting booking session", zap.Int("seats_per_row", r.cfg.SeatsPerRow))
	model := tui.New(r.booking, tui.Options{SeatsPerRow: r.cfg.SeatsPerRow, Logger: r.log})
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		r.log.Error("TUI exited with error", zap.Error(err))
		return err
	}
	return nil
}
