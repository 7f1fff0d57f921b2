package security

// Presentation is the display metadata attached to a status value.
type Presentation struct {
	// Description is the label shown to users.
	Description string `json:"description"`
	// Color is the RGB hex color used to render the status.
	Color string `json:"color"`
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	alarmPresentations = map[AlarmStatus]Presentation{
		AlarmStatusNoAlarm:      {Description: "Cool and Good", Color: "#78C81E"},
		AlarmStatusPendingAlarm: {Description: "I'm in Danger...", Color: "#C89614"},
		AlarmStatusAlarm:        {Description: "Awooga!", Color: "#FA5032"},
	}

	armingPresentations = map[ArmingStatus]Presentation{
		ArmingStatusDisarmed:  {Description: "Disarmed", Color: "#78C81E"},
		ArmingStatusArmedHome: {Description: "Armed - At Home", Color: "#BE3232"},
		ArmingStatusArmedAway: {Description: "Armed - Away", Color: "#BE3232"},
	}
)

// DescribeAlarm returns the presentation of an alarm status.
// Unknown values get their raw name and no color.
func DescribeAlarm(status AlarmStatus) Presentation {
	if p, ok := alarmPresentations[status]; ok {
		return p
	}

	return Presentation{Description: string(status)}
}

// DescribeArming returns the presentation of an arming status.
func DescribeArming(status ArmingStatus) Presentation {
	if p, ok := armingPresentations[status]; ok {
		return p
	}

	return Presentation{Description: string(status)}
}
