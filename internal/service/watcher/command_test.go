package watcher

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pb "github.com/oshokin/catpoint/internal/pb/v1"
)

// TestHandleEvent prints events and stops on alarm when asked.
func TestHandleEvent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	printer := newPrinter(&Options{Out: &buf, NoColor: true})
	ctx := context.Background()

	require.NoError(t, handleEvent(ctx, printer, &pb.Event{Kind: pb.EventKind_EVENT_KIND_SENSORS}, true))
	require.NoError(t, handleEvent(ctx, printer, &pb.Event{Kind: pb.EventKind_EVENT_KIND_CAT_DETECTED, CatDetected: true}, true))
	require.NoError(t, handleEvent(ctx, printer,
		&pb.Event{Kind: pb.EventKind_EVENT_KIND_ALARM_STATUS, AlarmStatus: pb.AlarmStatus_ALARM_STATUS_PENDING_ALARM}, true))
	require.NoError(t, handleEvent(ctx, printer, &pb.Event{Kind: pb.EventKind_EVENT_KIND_UNSPECIFIED}, true))
	require.NoError(t, handleEvent(ctx, printer, &pb.Event{Kind: pb.EventKind_EVENT_KIND_ALARM_STATUS}, true))
	require.NoError(t, handleEvent(ctx, printer,
		&pb.Event{Kind: pb.EventKind_EVENT_KIND_ALARM_STATUS, AlarmStatus: pb.AlarmStatus_ALARM_STATUS_ALARM}, false))

	err := handleEvent(ctx, printer, &pb.Event{Kind: pb.EventKind_EVENT_KIND_ALARM_STATUS, AlarmStatus: pb.AlarmStatus_ALARM_STATUS_ALARM}, true)
	require.ErrorIs(t, err, errAlarmRaised)

	require.Equal(t, "Sensors: updated\n"+
		"Camera: cat detected\n"+
		"Alarm: I'm in Danger... (PENDING_ALARM)\n"+
		"Alarm: Awooga! (ALARM)\n"+
		"Alarm: Awooga! (ALARM)\n", buf.String())
}
