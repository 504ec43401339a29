// Package fields supplies the device, location and weather values written
// into a new entry's header.
//
// Values come from jrn.yaml: fixed strings, or commands run through the
// user's shell. Nothing here fails; a value that cannot be determined is
// Unknown.
package fields

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/shellquote"
)

// Unknown is written for a field that could not be determined.
const Unknown = "unknown"

const defaultShellPath = "/bin/sh"

// Runner runs a shell command and returns its stdout.
type Runner func(ctx context.Context, command string) (string, error)

// Provider resolves header fields from a journal config.
type Provider struct {
	cfg *config.JournalConfig
	log zerolog.Logger

	// Hostname and Run are replaceable for tests.
	Hostname func() (string, error)
	Run      Runner
}

// New returns a Provider for cfg. A nil logger discards diagnostics.
func New(cfg *config.JournalConfig, logger *zerolog.Logger) *Provider {
	if cfg == nil {
		cfg = config.DefaultJournalConfig()
	}
	log := zerolog.Nop()
	if logger != nil {
		log = *logger
	}
	return &Provider{
		cfg:      cfg,
		log:      log,
		Hostname: os.Hostname,
		Run:      ShellRunner,
	}
}

// ShellRunner runs command with $SHELL -c (falling back to /bin/sh).
func ShellRunner(ctx context.Context, command string) (string, error) {
	shell := strings.TrimSpace(os.Getenv("SHELL"))
	if shell == "" {
		shell = defaultShellPath
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Device returns the label configured for this machine's hostname. The bare
// hostname is used when no label matches.
func (p *Provider) Device() string {
	host, err := p.Hostname()
	if err != nil || strings.TrimSpace(host) == "" {
		p.log.Warn().Err(err).Msg("could not determine hostname")
		return Unknown
	}

	short, _, _ := strings.Cut(host, ".")
	for name, label := range p.cfg.Devices {
		if strings.EqualFold(name, host) || strings.EqualFold(name, short) {
			return label
		}
	}
	return short
}

// Location returns the configured location, running location_command when set.
func (p *Provider) Location(ctx context.Context) string {
	if p.cfg.LocationCommand != "" {
		return p.run(ctx, "location_command", p.cfg.LocationCommand)
	}
	if v := strings.TrimSpace(p.cfg.Location); v != "" {
		return v
	}
	return Unknown
}

// Weather returns the configured weather, running weather_command when set.
// "{{location}}" in the command is replaced with the quoted location. The
// result is decorated with a condition emoji.
func (p *Provider) Weather(ctx context.Context, location string) string {
	var value string
	switch {
	case p.cfg.WeatherCommand != "":
		command := strings.ReplaceAll(p.cfg.WeatherCommand, "{{location}}", shellquote.Quote(location))
		value = p.run(ctx, "weather_command", command)
	case strings.TrimSpace(p.cfg.Weather) != "":
		value = strings.TrimSpace(p.cfg.Weather)
	default:
		return Unknown
	}
	return DecorateWeather(value)
}

// Fill sets the device, location and weather of vars.
func (p *Provider) Fill(ctx context.Context, vars *entry.Variables) {
	vars.Device = p.Device()
	vars.Location = p.Location(ctx)
	vars.Weather = p.Weather(ctx, vars.Location)
}

func (p *Provider) run(ctx context.Context, name, command string) string {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.GetCommandTimeout())
	defer cancel()

	start := time.Now()
	out, err := p.Run(ctx, command)
	if err != nil {
		p.log.Warn().Str("setting", name).Str("command", command).Err(err).Msg("header field command failed")
		return Unknown
	}
	p.log.Debug().Str("setting", name).Dur("took", time.Since(start)).Msg("header field command finished")

	// Table cells are single-line.
	out = strings.Join(strings.Fields(out), " ")
	if out == "" {
		return Unknown
	}
	return out
}
