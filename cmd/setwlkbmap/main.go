package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/derdilla/setwlkbmap/internal/common"
	"github.com/derdilla/setwlkbmap/internal/keymap"
	"github.com/derdilla/setwlkbmap/pkg/version"
	"github.com/spf13/cobra"
)

var (
	detectOnly  bool
	desktopName string
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "setwlkbmap [layout] [variant]",
	Short: "Set Wayland Keyboard Map",
	Long: `Set Wayland Keyboard Map - A unified interface for setting keyboard layouts
in Wayland compositors.

The layout and variant are handed to whatever desktop environment is running:
  KDE       kwriteconfig6 (kxkbrc)
  XFCE      xfconf-query (keyboard-layout channel)
  GNOME     gsettings (org.gnome.desktop.input-sources)
  Sway      swaymsg
  Hyprland  hyprland.conf followed by hyprctl reload
  COSMIC    cosmic-comp xkb_config (when built with -tags cosmic)

A variant combines with the layout, e.g. "de nodeadkeys" for de(nodeadkeys).
Without arguments DEFAULT_LAYOUT and DEFAULT_VARIANT from the config file are used.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSetKeymap,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&detectOnly, "detect", "d", false, "Detect the current Wayland compositor/desktop environment and exit")
	rootCmd.PersistentFlags().StringVar(&desktopName, "desktop", "", "Skip detection and use this desktop environment (e.g. Sway, Kde)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

func runSetKeymap(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	env, err := app.Desktop()
	if err != nil {
		return err
	}

	if detectOnly {
		fmt.Printf("Detected desktop environment: %s\n", env)
		return nil
	}

	req := keymap.Request{}
	if len(args) > 0 {
		req.Layout = args[0]
	}
	if len(args) > 1 {
		req.Variant = args[1]
	}
	if len(args) == 0 {
		req = app.DefaultRequest()
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("please provide a layout or variant, or use --detect (see --help)")
	}
	if err := checkRequest(req); err != nil {
		return err
	}

	return app.Apply(env, req)
}

// checkRequest rejects names that would break the files and lists they are
// written into. The same check guards DEFAULT_LAYOUT and DEFAULT_VARIANT.
func checkRequest(req keymap.Request) error {
	for _, token := range []string{req.Layout, req.Variant} {
		if err := common.ValidateKeymapToken(token); err != nil {
			return fmt.Errorf("invalid keymap %q: %w", req, err)
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
