package main

import (
	"fmt"

	"github.com/derdilla/setwlkbmap/internal/common"
	"github.com/derdilla/setwlkbmap/internal/config"
	"github.com/derdilla/setwlkbmap/internal/keymap"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change setwlkbmap settings",
	Long: `Show or change setwlkbmap settings.

Keys:
  DEFAULT_LAYOUT        layout used when no arguments are given
  DEFAULT_VARIANT       variant used when no arguments are given
  HYPRLAND_CONFIG       hyprland.conf path (default $XDG_CONFIG_HOME/hypr/hyprland.conf)
  HYPRLAND_BLOCK_MODE   "append" adds a block on every run, "replace" keeps one
  XKB_RULES             XKB registry used by "pick"`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		all := cfg.GetAll()
		for _, key := range config.Keys {
			value, ok := all[key]
			if !ok {
				value = config.Defaults[key]
			}
			fmt.Printf("%s=%s\n", key, value)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkKey(args[0]); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Println(cfg.GetOrDefault(args[0], ""))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := checkKey(key); err != nil {
			return err
		}
		value, err := validateValue(key, value)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Set(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Reset one setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkKey(args[0]); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to unset %s: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd, configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	cfg := config.New("")
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func checkKey(key string) error {
	if !config.IsKnownKey(key) {
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// validateValue checks a value before it is stored and returns its canonical form.
func validateValue(key, value string) (string, error) {
	switch key {
	case config.KeyDefaultLayout, config.KeyDefaultVariant:
		if err := common.ValidateKeymapToken(value); err != nil {
			return "", fmt.Errorf("invalid %s: %w", key, err)
		}
	case config.KeyHyprlandConfig, config.KeyXKBRules:
		if err := common.ValidateNotEmpty(value); err != nil {
			return "", fmt.Errorf("invalid %s: %w", key, err)
		}
		if err := common.ValidatePath(value); err != nil {
			return "", fmt.Errorf("invalid %s: %w", key, err)
		}
	case config.KeyHyprlandBlockMode:
		mode, err := keymap.ParseBlockMode(value)
		if err != nil {
			return "", err
		}
		return string(mode), nil
	}
	return value, nil
}
