package game

import "strings"

// Events is the set of things that happened during one Update.
type Events uint8

const (
	EventPaddleHit Events = 1 << iota
	EventWallBounce
	EventLeftScored
	EventRightScored
)

var eventNames = []struct {
	event Events
	name  string
}{
	{EventPaddleHit, "paddleHit"},
	{EventWallBounce, "wallBounce"},
	{EventLeftScored, "leftScored"},
	{EventRightScored, "rightScored"},
}

func (e Events) Has(event Events) bool {
	return e&event != 0
}

func (e Events) Scored() bool {
	return e.Has(EventLeftScored | EventRightScored)
}

func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	names := make([]string, 0, len(eventNames))
	for _, entry := range eventNames {
		if e.Has(entry.event) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}
