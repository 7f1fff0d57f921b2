package console

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/catpoint/internal/domain/security"
)

// TestPrinter_Listener checks the listener output without colors.
func TestPrinter_Listener(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := NewPrinter(&buf, WithoutColor())
	ctx := context.Background()

	p.AlarmStatusChanged(ctx, domain.AlarmStatusAlarm)
	p.CatDetected(ctx, true)
	p.CatDetected(ctx, false)
	p.SensorStatusChanged(ctx)

	require.Equal(t,
		"Alarm: Awooga! (ALARM)\nCamera: cat detected\nCamera: no cat\nSensors: updated\n",
		buf.String())
}

// TestPrinter_Snapshot renders the full state.
func TestPrinter_Snapshot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := NewPrinter(&buf, WithoutColor())

	p.PrintSnapshot(&domain.Snapshot{
		AlarmStatus:  domain.AlarmStatusPendingAlarm,
		ArmingStatus: domain.ArmingStatusArmedHome,
		Sensors: []*domain.Sensor{
			{ID: "id-1", Name: "Door", Type: domain.SensorTypeDoor, Active: true},
		},
	})

	out := buf.String()
	require.Contains(t, out, "Alarm:  I'm in Danger... (PENDING_ALARM)")
	require.Contains(t, out, "Arming: Armed - At Home")
	require.Contains(t, out, "Camera: no cat")
	require.Contains(t, out, "Door")
	require.Contains(t, out, "active")

	buf.Reset()
	p.PrintSensors(nil)
	require.Equal(t, "No sensors\n", buf.String())
}

// TestPrinter_Colors emits ANSI sequences when colors are enabled.
func TestPrinter_Colors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	NewPrinter(&buf).AlarmStatusChanged(context.Background(), domain.AlarmStatusNoAlarm)

	// #78C81E is rgb(120,200,30).
	require.Contains(t, buf.String(), "\x1b[38;2;120;200;30m")
}

// TestHexColor rejects malformed values.
func TestHexColor(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "78C81E", "#78C8", "#GGGGGG"} {
		c := hexColor(value)
		c.DisableColor()
		require.Equal(t, "x", c.Sprint("x"))
	}
}
