package main

import (
	"errors"
	"fmt"

	"github.com/derdilla/setwlkbmap/internal/config"
	"github.com/derdilla/setwlkbmap/internal/desktop"
	"github.com/derdilla/setwlkbmap/internal/keymap"
	"github.com/derdilla/setwlkbmap/internal/system"
	"github.com/derdilla/setwlkbmap/internal/ui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errNoDesktop = errors.New("failed to detect desktop environment (use --desktop to set it)")

// app holds the dependencies shared by all subcommands
type app struct {
	Config *config.Config
	UI     *ui.UI
	Log    *zap.SugaredLogger
	Runner system.CommandRunner
}

func newApp() (*app, error) {
	log, err := newLogger(debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cfg := config.New("")
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Debugw("loaded config", "path", cfg.FilePath())

	return &app{
		Config: cfg,
		UI:     ui.New(),
		Log:    log,
		Runner: system.NewCommandRunner(log),
	}, nil
}

func (a *app) Close() {
	_ = a.Log.Sync()
}

// Desktop returns the --desktop override or the detected environment.
func (a *app) Desktop() (desktop.Environment, error) {
	if desktopName != "" {
		return desktop.Parse(desktopName)
	}

	env, ok := desktop.Detect()
	if !ok {
		return desktop.Unknown, errNoDesktop
	}
	a.Log.Debugw("detected desktop", "desktop", env)
	return env, nil
}

// DefaultRequest builds a request from the configured defaults.
func (a *app) DefaultRequest() keymap.Request {
	return keymap.Request{
		Layout:  a.Config.GetOrDefault(config.KeyDefaultLayout, ""),
		Variant: a.Config.GetOrDefault(config.KeyDefaultVariant, ""),
	}
}

func (a *app) Setter() (*keymap.Setter, error) {
	mode, err := keymap.ParseBlockMode(a.Config.GetOrDefault(config.KeyHyprlandBlockMode, ""))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.KeyHyprlandBlockMode, err)
	}

	return keymap.NewSetter(keymap.Options{
		Runner:         a.Runner,
		Log:            a.Log,
		KDENotifier:    keymap.DBusReloadNotifier{},
		HyprlandConfig: a.Config.GetOrDefault(config.KeyHyprlandConfig, ""),
		HyprlandMode:   mode,
	}), nil
}

// Apply sets the keymap on env and reports the outcome.
func (a *app) Apply(env desktop.Environment, req keymap.Request) error {
	setter, err := a.Setter()
	if err != nil {
		return err
	}

	a.Log.Debugw("setting keymap", "desktop", env, "layout", req.Layout, "variant", req.Variant)
	if err := setter.Apply(env, req); err != nil {
		return err
	}

	a.UI.Success("Keymap set")
	return nil
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
