package main

import (
	"errors"
	"fmt"

	"github.com/derdilla/setwlkbmap/internal/desktop"
	"github.com/derdilla/setwlkbmap/internal/inspect"
	"github.com/derdilla/setwlkbmap/internal/keymap"
	"github.com/derdilla/setwlkbmap/internal/system"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the detected desktop and its current keymap",
	Args:  cobra.NoArgs,
	RunE:  showStatus,
}

// backendTools lists the program each command-line backend invokes.
var backendTools = map[desktop.Environment]string{
	desktop.Kde:      "kwriteconfig6",
	desktop.Xfce:     "xfconf-query",
	desktop.Gnome:    "gsettings",
	desktop.Sway:     "swaymsg",
	desktop.Hyprland: "hyprctl",
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// backendStatus describes whether env can be served. missing is the tool the
// backend needs but exists could not find.
func backendStatus(setter *keymap.Setter, env desktop.Environment, exists func(string) bool) (status, missing string) {
	if _, err := setter.Backend(env); err != nil {
		return "not implemented", ""
	}
	tool, ok := backendTools[env]
	if !ok {
		return "available", ""
	}
	if !exists(tool) {
		return fmt.Sprintf("%s not installed", tool), tool
	}
	return fmt.Sprintf("available (%s)", tool), ""
}

func showStatus(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	env, err := app.Desktop()
	if err != nil {
		return err
	}

	app.UI.Header("Keymap Status")
	app.UI.Field("Desktop", env.String())

	setter, err := app.Setter()
	if err != nil {
		return err
	}
	status, missing := backendStatus(setter, env, system.CommandExists)
	app.UI.Field("Backend", status)
	if missing != "" {
		app.UI.Warningf("%s was not found in PATH, setting the keymap will fail", missing)
	}
	app.UI.Field("COSMIC", fmt.Sprintf("compiled in: %t", keymap.CosmicEnabled))
	app.UI.Field("Config", app.Config.FilePath())

	keymaps, err := inspect.New(app.Runner, app.Log).Current(cmd.Context(), env)
	switch {
	case errors.Is(err, inspect.ErrNotSupported):
		app.UI.Warning("Reading the current keymap is not supported on this desktop")
		return nil
	case err != nil:
		return fmt.Errorf("read current keymap: %w", err)
	}

	if len(keymaps) == 0 {
		app.UI.Info("No keyboard layout configured")
		return nil
	}
	for _, km := range keymaps {
		app.UI.Print("")
		if km.Device != "" {
			app.UI.Field("Device", km.Device)
		}
		app.UI.Field("Layout", km.Layout)
		app.UI.Field("Variant", km.Variant)
		if km.Description != "" {
			app.UI.Field("Active", km.Description)
		}
	}
	return nil
}
