package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"

	domain "github.com/oshokin/catpoint/internal/domain/security"
)

// Printer writes status lines to a terminal. It implements the engine
// status listener interfaces so a server can echo every change.
type Printer struct {
	out     io.Writer
	noColor bool
	mu      sync.Mutex
}

// Option configures a Printer.
type Option func(*Printer)

// WithoutColor disables ANSI colors.
func WithoutColor() Option {
	return func(p *Printer) {
		p.noColor = true
	}
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, opts ...Option) *Printer {
	p := &Printer{out: out}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// AlarmStatusChanged prints the new alarm status.
func (p *Printer) AlarmStatusChanged(_ context.Context, status domain.AlarmStatus) {
	p.printf("Alarm: %s\n", p.alarm(status))
}

// CatDetected prints the camera result.
func (p *Printer) CatDetected(_ context.Context, cat bool) {
	p.printf("Camera: %s\n", p.cat(cat))
}

// SensorStatusChanged prints a sensor refresh marker.
func (p *Printer) SensorStatusChanged(context.Context) {
	p.printf("Sensors: %s\n", p.paint(color.New(color.FgCyan), "updated"))
}

// PrintSnapshot prints the full controller state.
func (p *Printer) PrintSnapshot(snapshot *domain.Snapshot) {
	var b strings.Builder

	fmt.Fprintf(&b, "Alarm:  %s\n", p.alarm(snapshot.AlarmStatus))
	fmt.Fprintf(&b, "Arming: %s\n", p.arming(snapshot.ArmingStatus))
	fmt.Fprintf(&b, "Camera: %s\n", p.cat(snapshot.CatDetected))

	b.WriteString(p.sensors(snapshot.Sensors))

	p.printf("%s", b.String())
}

// PrintSensors prints a sensor table.
func (p *Printer) PrintSensors(sensors []*domain.Sensor) {
	p.printf("%s", p.sensors(sensors))
}

func (p *Printer) sensors(sensors []*domain.Sensor) string {
	if len(sensors) == 0 {
		return "No sensors\n"
	}

	var b strings.Builder

	b.WriteString("Sensors:\n")

	for _, s := range sensors {
		state := p.paint(color.New(color.FgHiBlack), "inactive")
		if s.Active {
			state = p.paint(color.New(color.FgYellow, color.Bold), "active")
		}

		fmt.Fprintf(&b, "  %-36s  %-20s  %-6s  %s\n", s.ID, s.Name, s.Type, state)
	}

	return b.String()
}

func (p *Printer) alarm(status domain.AlarmStatus) string {
	presentation := domain.DescribeAlarm(status)

	return p.paint(hexColor(presentation.Color), fmt.Sprintf("%s (%s)", presentation.Description, status))
}

func (p *Printer) arming(status domain.ArmingStatus) string {
	presentation := domain.DescribeArming(status)

	return p.paint(hexColor(presentation.Color), presentation.Description)
}

func (p *Printer) cat(cat bool) string {
	if cat {
		return p.paint(color.New(color.FgRed), "cat detected")
	}

	return p.paint(color.New(color.FgGreen), "no cat")
}

func (p *Printer) paint(c *color.Color, text string) string {
	if p.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}

	return c.Sprint(text)
}

func (p *Printer) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintf(p.out, format, args...)
}

// hexColor converts a #RRGGBB string to a true-color foreground.
// Malformed values fall back to the default color.
func hexColor(hex string) *color.Color {
	value, ok := strings.CutPrefix(hex, "#")
	if !ok || len(value) != 6 {
		return color.New(color.Reset)
	}

	rgb, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return color.New(color.Reset)
	}

	return color.RGB(int(rgb>>16&0xFF), int(rgb>>8&0xFF), int(rgb&0xFF))
}
