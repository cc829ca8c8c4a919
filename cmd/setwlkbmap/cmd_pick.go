package main

import (
	"fmt"

	"github.com/derdilla/setwlkbmap/internal/config"
	"github.com/derdilla/setwlkbmap/internal/keymap"
	"github.com/derdilla/setwlkbmap/internal/xkb"
	"github.com/spf13/cobra"
)

const noVariant = "(none)"

var saveDefault bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a layout and variant interactively",
	Long: `Choose a keyboard layout and variant from the XKB rules registry
(XKB_RULES, default /usr/share/X11/xkb/rules/evdev.xml) and apply it.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().BoolVar(&saveDefault, "save", false, "Store the choice as DEFAULT_LAYOUT/DEFAULT_VARIANT")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	env, err := app.Desktop()
	if err != nil {
		return err
	}

	registry, err := xkb.Load(app.Config.GetOrDefault(config.KeyXKBRules, xkb.DefaultRulesPath))
	if err != nil {
		return fmt.Errorf("load xkb rules: %w", err)
	}

	layouts := registry.Layouts()
	options := make([]string, len(layouts))
	current := -1
	defaultLayout := app.Config.GetOrDefault(config.KeyDefaultLayout, "")
	for i, l := range layouts {
		options[i] = l.String()
		if l.Code == defaultLayout {
			current = i
		}
	}

	idx, err := app.UI.PromptSelect("Keyboard layout:", options, current)
	if err != nil {
		return err
	}
	req := keymap.Request{Layout: layouts[idx].Code}

	variants, _ := registry.Variants(req.Layout)
	if len(variants) > 0 {
		options := []string{noVariant}
		for _, v := range variants {
			options = append(options, v.String())
		}
		idx, err := app.UI.PromptSelect("Variant:", options, 0)
		if err != nil {
			return err
		}
		if idx > 0 {
			req.Variant = variants[idx-1].Code
		}
	}

	app.UI.Infof("Applying %s", registry.Describe(req.Layout, req.Variant))
	if err := app.Apply(env, req); err != nil {
		return err
	}

	if !saveDefault {
		return nil
	}
	ok, err := confirmSave(app.Config, req, app.UI.PromptYesNo)
	if err != nil {
		return err
	}
	if !ok {
		app.UI.Info("Default keymap unchanged")
		return nil
	}
	if err := saveDefaultRequest(app.Config, req); err != nil {
		return err
	}
	app.UI.Successf("Saved %s as default keymap", req)
	return nil
}

// confirmSave asks before a different stored default is overwritten.
func confirmSave(cfg *config.Config, req keymap.Request, confirm func(prompt string, defaultYes bool) (bool, error)) (bool, error) {
	current := keymap.Request{
		Layout:  cfg.GetOrDefault(config.KeyDefaultLayout, ""),
		Variant: cfg.GetOrDefault(config.KeyDefaultVariant, ""),
	}
	if !current.HasLayout() || current == req {
		return true, nil
	}
	return confirm(fmt.Sprintf("Replace default keymap %s with %s?", current, req), true)
}

func saveDefaultRequest(cfg *config.Config, req keymap.Request) error {
	if err := cfg.Set(config.KeyDefaultLayout, req.Layout); err != nil {
		return fmt.Errorf("failed to set %s: %w", config.KeyDefaultLayout, err)
	}
	if req.HasVariant() {
		if err := cfg.Set(config.KeyDefaultVariant, req.Variant); err != nil {
			return fmt.Errorf("failed to set %s: %w", config.KeyDefaultVariant, err)
		}
		return nil
	}
	return cfg.Delete(config.KeyDefaultVariant)
}
