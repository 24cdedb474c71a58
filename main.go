package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/andareed/winman/config"
	"github.com/andareed/winman/logging"
	"github.com/andareed/winman/registry"
	"github.com/andareed/winman/web"
)

var Version = "dev"

var (
	cfgFile string
	logFile string
	cfg     config.Config
	cleanup = func() {}
)

var rootCmd = &cobra.Command{
	Use:               "winman",
	Short:             "A floating dialog window manager for the terminal",
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { cleanup() },
	RunE:              runDesktop,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the window manager to a browser",
	RunE:  runServe,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	// Skips the root's config loading: the file may not exist yet.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		return nil
	},
}

func init() {
	// Query the background color before bubbletea owns stdin, otherwise
	// the OSC 11 reply can leak into the input stream.
	_ = lipgloss.HasDarkBackground()

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/winman/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "debug", "", "write debug logs to file")
	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(serveCmd, configCmd)
}

func setup(*cobra.Command, []string) error {
	c, err := logging.SetupLogging(logFile)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	cleanup = c

	loaded, path, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded
	logging.Infof("winman %s: started (config %q)", Version, path)
	return nil
}

// newRegistry builds the session registry from the loaded configuration.
func newRegistry() (*registry.Registry[string], error) {
	layout, err := cfg.Layout.RegistryLayout()
	if err != nil {
		return nil, err
	}
	content := cfg.UI.Content
	return registry.New(
		registry.WithLayout[string](layout),
		registry.WithContent(func(int) string { return content }),
	), nil
}

func runDesktop(cmd *cobra.Command, _ []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	zone.NewGlobal()

	m := newModel(reg, cfg.UI)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		logging.Errorf("tea program error: %v", err)
		return fmt.Errorf("running desktop: %w", err)
	}
	logging.Infof("winman: exited with %d dialogs (%d open)", reg.Len(), len(reg.Visible()))
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		addr = a
	}
	// Without --debug the server still reports to stderr.
	if !logging.IsDebugMode() {
		logging.SetOutput(cmd.ErrOrStderr())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "winman: serving on http://%s\n", addr)
	return web.New(reg, cfg.Server.MetricsNamespace).ListenAndServe(ctx, addr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
