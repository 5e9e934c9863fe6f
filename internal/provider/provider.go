package provider

import (
	"fmt"

	"github.com/lucax88x/datestamp/internal/phpdate"
	"github.com/lucax88x/datestamp/internal/timestamp"
)

const Name = "provider.Provider"

const DefaultEnv = "DEVELOPMENT"

type Pinger interface {
	Ping() string
}

type Dumper interface {
	Dump() string
}

type Provider struct {
	renderer *timestamp.Renderer
	env      string
}

func NewProvider(renderer *timestamp.Renderer, env string) *Provider {
	if env == "" {
		env = DefaultEnv
	}

	return &Provider{
		renderer,
		env,
	}
}

func (p *Provider) Ping() string {
	return "pong"
}

// Dump returns a newline terminated log line stamped with the current time.
func (p *Provider) Dump() string {
	date := p.renderer.Render(phpdate.LogDateTime)
	line := fmt.Sprintf("Executed method [ %s ] in [ %s ] mode\n", "dump", p.env)

	return fmt.Sprintf("[%s] %s: %s", date, Name, line)
}

var _ Pinger = (*Provider)(nil)
var _ Dumper = (*Provider)(nil)
