package inspect

import (
	"context"
	"fmt"

	"github.com/joshuarubin/go-sway"
	"github.com/thiagokokada/hyprland-go"
	"github.com/thiagokokada/hyprland-go/helpers"
)

const swayKeyboardType = "keyboard"

func swayKeymaps(ctx context.Context) ([]Keymap, error) {
	client, err := sway.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to sway: %w", err)
	}

	inputs, err := client.GetInputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get inputs: %w", err)
	}

	var keymaps []Keymap
	for _, in := range inputs {
		if in.Type != swayKeyboardType {
			continue
		}
		km := Keymap{Device: in.Identifier}
		if in.XKBActiveLayoutName != nil {
			km.Description = *in.XKBActiveLayoutName
		}
		keymaps = append(keymaps, km)
	}
	return keymaps, nil
}

func hyprlandKeymaps(context.Context) ([]Keymap, error) {
	socket, err := helpers.GetSocket(helpers.RequestSocket)
	if err != nil {
		return nil, fmt.Errorf("get hyprland socket: %w", err)
	}

	devices, err := hyprland.NewClient(socket).Devices()
	if err != nil {
		return nil, fmt.Errorf("get devices: %w", err)
	}

	var keymaps []Keymap
	for _, kb := range devices.Keyboards {
		if !kb.Main {
			continue
		}
		keymaps = append(keymaps, Keymap{
			Device:      kb.Name,
			Layout:      kb.Layout,
			Variant:     kb.Variant,
			Description: kb.ActiveKeymap,
		})
	}
	return keymaps, nil
}
