package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/csheth/wiki/internal/config"
	"github.com/csheth/wiki/internal/log"
	"github.com/csheth/wiki/internal/prefs"
	"github.com/csheth/wiki/internal/profile"
	"github.com/csheth/wiki/internal/tui"
	"github.com/csheth/wiki/internal/watch"
)

// app carries the state shared by the root command and its subcommands.
type app struct {
	root    *cobra.Command
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	out     io.Writer

	closeLog func()
}

func newApp(out io.Writer) *app {
	a := &app{v: viper.New(), out: out}

	a.root = &cobra.Command{
		Use:               "wiki",
		Short:             "A personal wiki in the terminal",
		Long:              `Browse a single-page personal wiki with a section sidebar, smooth scrolling and a persisted light/dark theme.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}
	a.root.SetOut(out)

	flags := a.root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: .wiki/config.yaml, then ~/.config/wiki/config.yaml)")
	flags.String("content", "", "profile YAML to display (default: built-in profile)")
	flags.String("state", "", "preference file (default: ~/.config/wiki/state.yaml)")
	flags.Bool("no-persist", false, "keep theme changes for this session only")
	flags.Bool("debug", false, "write debug logs to log_file")
	a.root.Flags().Bool("watch", false, "reload the content file when it changes")
	a.root.Flags().Bool("no-alt-screen", false, "render inline instead of on the alternate screen")

	_ = a.v.BindPFlag("content", flags.Lookup("content"))
	_ = a.v.BindPFlag("state_file", flags.Lookup("state"))
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = a.v.BindPFlag("watch", a.root.Flags().Lookup("watch"))

	a.root.AddCommand(newThemeCmd(a), newTOCCmd(a))
	return a
}

// Execute runs the command line and releases the log file afterwards.
func (a *app) Execute() error {
	defer a.close()
	return a.root.Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if log.Enabled(cfg.Debug) && a.closeLog == nil {
		closeLog, err := log.Init(cfg.LogFile)
		if err != nil {
			return err
		}
		a.closeLog = closeLog
		log.Info(log.CatConfig, "starting", "command", cmd.Name(), "version", version)
	}
	return nil
}

func (a *app) close() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

func (a *app) prefsStore(cmd *cobra.Command) prefs.Store {
	if noPersist, _ := cmd.Flags().GetBool("no-persist"); noPersist || !a.cfg.Persist {
		return prefs.Logged(prefs.NewMemoryStore())
	}
	path := a.cfg.StateFile
	if path == "" {
		path = prefs.DefaultPath()
	}
	return prefs.Logged(prefs.NewFileStore(path))
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	// Query the background colour before the program owns stdin, otherwise
	// the OSC 11 reply can land in the input loop.
	_ = lipgloss.HasDarkBackground()

	p, err := profile.Load(a.cfg.Content)
	if err != nil {
		return err
	}

	var changes <-chan struct{}
	if a.cfg.Watch && a.cfg.Content != "" {
		w, err := watch.New(watch.DefaultConfig(a.cfg.Content))
		if err != nil {
			return fmt.Errorf("watching content: %w", err)
		}
		changes, err = w.Start()
		if err != nil {
			return fmt.Errorf("watching content: %w", err)
		}
		defer func() { _ = w.Stop() }()
	}

	model := tui.New(tui.Config{
		Profile:      p,
		ProfilePath:  a.cfg.Content,
		Prefs:        a.prefsStore(cmd),
		Options:      a.cfg.ViewOptions(),
		SidebarWidth: a.cfg.Layout.SidebarWidth,
		ScrollStep:   a.cfg.Layout.ScrollStep,
		Changes:      changes,
	})

	var opts []tea.ProgramOption
	if noAlt, _ := cmd.Flags().GetBool("no-alt-screen"); a.cfg.AltScreen && !noAlt {
		opts = append(opts, tea.WithAltScreen())
	}
	if a.cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	_, err = tea.NewProgram(model, opts...).Run()
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
