package keymap

import (
	"fmt"
	"strconv"

	"github.com/derdilla/setwlkbmap/internal/system"
	"go.uber.org/zap"
)

const (
	gsettings        = "gsettings"
	gnomeInputSchema = "org.gnome.desktop.input-sources"
	gnomeSourcesKey  = "sources"
	gnomeCurrentKey  = "current"
)

// GNOME makes sure the requested layout is one of the configured input
// sources and then selects it as the current one.
//
// The sources list is read, possibly extended and the current index written
// in separate gsettings calls. A concurrent change to the list between those
// calls can make the index point at the wrong entry.
type GNOME struct {
	runner system.CommandRunner
	log    *zap.SugaredLogger
}

func NewGNOME(runner system.CommandRunner, log *zap.SugaredLogger) *GNOME {
	return &GNOME{runner: runner, log: log}
}

func (g *GNOME) SetKeymap(req Request) error {
	if !req.HasLayout() {
		return ErrLayoutRequired
	}

	raw, err := g.runner.Output(gsettings, "get", gnomeInputSchema, gnomeSourcesKey)
	if err != nil {
		return fmt.Errorf("read input sources: %w", err)
	}
	sources := ParseInputSources(raw)

	index, found := sources.Find(req.Layout, req.Variant)
	if found {
		g.log.Debugw("input source already configured", "request", req.String(), "index", index)
	} else {
		updated := AppendInputSource(raw, req.Layout, req.Variant)
		if err := g.runner.Run(gsettings, "set", gnomeInputSchema, gnomeSourcesKey, updated); err != nil {
			return fmt.Errorf("add input source: %w", err)
		}
		index = sources.Total
		g.log.Debugw("appended input source", "request", req.String(), "index", index, "sources", updated)
	}

	if err := g.runner.Run(gsettings, "set", gnomeInputSchema, gnomeCurrentKey, strconv.Itoa(index)); err != nil {
		return fmt.Errorf("select input source: %w", err)
	}
	return nil
}
