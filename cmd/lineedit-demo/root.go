package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/lineedit"
	"github.com/iw2rmb/lineedit/internal/config"
	"github.com/iw2rmb/lineedit/internal/demo"
	"github.com/iw2rmb/lineedit/internal/log"
)

func init() {
	// Query the background color before the program owns stdin so the
	// terminal's reply cannot land in an input.
	_ = lipgloss.HasDarkBackground()
}

type rootOptions struct {
	configFile  string
	writeConfig string
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "lineedit-demo",
		Short:        "Interactive demo of the lineedit text input",
		Version:      lineedit.Version(),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, opts)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.writeConfig != "" {
				if err := config.WriteDefault(opts.writeConfig); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.writeConfig)
				return nil
			}
			return runDemo(config.Load(v))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configFile, "config", "c", "", "config file (YAML)")
	f.StringVar(&opts.writeConfig, "write-config", "", "write the default config to this path and exit")
	f.Bool("debug", false, "write debug logs to the log file")
	f.String("log-file", "", "debug log path")
	f.Int("width", 0, "input width in cells, prompt included (0 follows the terminal)")
	f.String("prompt", "", "prompt shown before each input")
	f.Bool("clear-on-enter", true, "clear an input after enter")

	_ = v.BindPFlag(config.KeyDebug, f.Lookup("debug"))
	_ = v.BindPFlag(config.KeyLogFile, f.Lookup("log-file"))
	_ = v.BindPFlag(config.KeyWidth, f.Lookup("width"))
	_ = v.BindPFlag(config.KeyPrompt, f.Lookup("prompt"))
	_ = v.BindPFlag(config.KeyClearOnEnter, f.Lookup("clear-on-enter"))

	return cmd
}

func initConfig(v *viper.Viper, opts *rootOptions) error {
	config.SetDefaults(v)
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return config.ReadFile(v, opts.configFile, opts.configFile != "")
}

func runDemo(cfg config.Config) error {
	if cfg.Debug {
		cleanup, err := log.InitWithTeaLog(cfg.LogFile, "lineedit")
		if err != nil {
			return err
		}
		defer cleanup()
		log.Info(log.CatApp, "Starting demo", "version", lineedit.Version())
	}

	m := demo.New(cfg)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
