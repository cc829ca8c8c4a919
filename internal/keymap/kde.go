package keymap

import (
	"fmt"

	"github.com/derdilla/setwlkbmap/internal/system"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	kwriteconfig = "kwriteconfig6"
	kxkbrc       = "kxkbrc"
	kxkbGroup    = "Layout"
)

// ReloadNotifier asks a running desktop to re-read its keyboard settings.
type ReloadNotifier interface {
	ReloadKeyboardConfig() error
}

// KDE writes the layout and variant into kxkbrc with kwriteconfig6.
//
// Both keys are list typed but receive a single value, so existing
// multi-layout setups are replaced rather than merged.
type KDE struct {
	runner   system.CommandRunner
	notifier ReloadNotifier
	log      *zap.SugaredLogger
}

// NewKDE creates the KDE backend. notifier may be nil.
func NewKDE(runner system.CommandRunner, notifier ReloadNotifier, log *zap.SugaredLogger) *KDE {
	return &KDE{runner: runner, notifier: notifier, log: log}
}

func (k *KDE) SetKeymap(req Request) error {
	if req.HasLayout() {
		if err := k.writeKey("LayoutList", req.Layout); err != nil {
			return err
		}
	}

	if req.HasVariant() {
		if err := k.writeKey("VariantList", req.Variant); err != nil {
			return err
		}
	}

	if k.notifier != nil {
		// the file is already written, plasma picks it up on next login
		if err := k.notifier.ReloadKeyboardConfig(); err != nil {
			k.log.Warnw("failed to notify plasma about keyboard change", "error", err)
		}
	}

	return nil
}

func (k *KDE) writeKey(key, value string) error {
	return k.runner.Run(kwriteconfig,
		"--file", kxkbrc,
		"--group", kxkbGroup,
		"--key", key,
		value)
}

// DBusReloadNotifier emits org.kde.keyboard.reloadConfig on the session bus.
type DBusReloadNotifier struct{}

func (DBusReloadNotifier) ReloadKeyboardConfig() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	if err := conn.Emit("/Layouts", "org.kde.keyboard.reloadConfig"); err != nil {
		return fmt.Errorf("emit reloadConfig: %w", err)
	}
	return nil
}
