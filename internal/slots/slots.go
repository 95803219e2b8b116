package slots

import "fmt"

// Stride is the distance between consecutive slot starts. It is fixed at one
// hour whatever the slot width, so multi-hour slots overlap each other and
// every hourly start time is offered.
const Stride = MinutesPerHour

type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
}

// Generate lists every slot of the given width in hours that fits between
// openAt and closeAt, in chronological order.
func Generate(openAt, closeAt string, hours int) ([]TimeSlot, error) {
	if hours <= 0 {
		return nil, ErrInvalidDuration
	}

	open, closing, err := Window(openAt, closeAt)
	if err != nil {
		return nil, err
	}

	width := hours * MinutesPerHour

	var slots []TimeSlot
	for start := open; start+width <= closing; start += Stride {
		end := start + width
		slots = append(slots, TimeSlot{
			StartTime: FormatMinutes(start),
			EndTime:   FormatMinutes(end),
			Label:     fmt.Sprintf("%s - %s", Label(start), Label(end)),
		})
	}

	return slots, nil
}
