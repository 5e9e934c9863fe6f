package datestamp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lucax88x/datestamp/cmd/cli/config"
	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/lucax88x/datestamp/internal/encoding"
	"github.com/lucax88x/datestamp/internal/provider"
	"github.com/lucax88x/datestamp/internal/stream"
	"github.com/lucax88x/datestamp/internal/timestamp"
	"github.com/spf13/afero"
)

type Datestamp struct {
	Logger   *slog.Logger
	Config   *config.Cfg
	Fs       afero.Fs
	Clock    clock.Clock
	Renderer *timestamp.Renderer
	Provider *provider.Provider
	Stream   *stream.Reader
}

func NewDatestamp(
	logger *slog.Logger,
	cfg *config.Cfg,
	fs afero.Fs,
	clk clock.Clock,
) (*Datestamp, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	if _, err := encoding.Lookup(cfg.Charset); err != nil {
		return nil, fmt.Errorf("datestamp: invalid charset: %w", err)
	}

	if _, err := encoding.Lookup(cfg.InputCharset); err != nil {
		return nil, fmt.Errorf("datestamp: invalid input charset: %w", err)
	}

	if clk == nil {
		clk = clock.NewSystemClock()
	}
	clk = clock.InLocation(clk, loc)

	renderer := timestamp.New(clk).WithDefault(cfg.Pattern)

	return &Datestamp{
		Logger:   logger,
		Config:   cfg,
		Fs:       fs,
		Clock:    clk,
		Renderer: renderer,
		Provider: provider.NewProvider(renderer, cfg.Env),
		Stream:   stream.NewReader(logger, cfg.InputCharset),
	}, nil
}

// Render resolves aliases and renders the current instant.
func (d *Datestamp) Render(pattern string) (string, error) {
	resolved, err := d.Config.ResolvePattern(pattern)
	if err != nil {
		return "", err
	}

	return d.Renderer.Render(resolved), nil
}

// Encode converts s into the configured charset.
func (d *Datestamp) Encode(s string) ([]byte, error) {
	return encoding.Encode(s, d.Config.Charset)
}

// Write encodes s into the configured charset before writing it to w.
func (d *Datestamp) Write(w io.Writer, s string) error {
	out, err := d.Encode(s)
	if err != nil {
		return err
	}

	return d.WriteEncoded(w, out)
}

// WriteEncoded writes output already produced by Encode.
func (d *Datestamp) WriteEncoded(w io.Writer, out []byte) error {
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("datestamp: could not write output: %w", err)
	}

	return nil
}

func (d *Datestamp) Println(w io.Writer, s string) error {
	return d.Write(w, s+"\n")
}
