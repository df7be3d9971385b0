package game

import "fmt"

type Score struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// String formats the score as shown on screen, e.g. "3 - 1".
func (s Score) String() string {
	return fmt.Sprintf("%d - %d", s.Left, s.Right)
}
