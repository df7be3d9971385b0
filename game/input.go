package game

// Action is a paddle movement a player can request.
type Action int

const (
	ActionLeftUp Action = iota
	ActionLeftDown
	ActionRightUp
	ActionRightDown
)

func (a Action) String() string {
	switch a {
	case ActionLeftUp:
		return "leftUp"
	case ActionLeftDown:
		return "leftDown"
	case ActionRightUp:
		return "rightUp"
	case ActionRightDown:
		return "rightDown"
	}
	return "unknown"
}

// Input is the snapshot of held movement keys for one frame.
type Input struct {
	LeftUp    bool `json:"leftUp"`
	LeftDown  bool `json:"leftDown"`
	RightUp   bool `json:"rightUp"`
	RightDown bool `json:"rightDown"`
}

func (in *Input) Set(action Action, held bool) {
	switch action {
	case ActionLeftUp:
		in.LeftUp = held
	case ActionLeftDown:
		in.LeftDown = held
	case ActionRightUp:
		in.RightUp = held
	case ActionRightDown:
		in.RightDown = held
	}
}

func (in Input) Held(action Action) bool {
	switch action {
	case ActionLeftUp:
		return in.LeftUp
	case ActionLeftDown:
		return in.LeftDown
	case ActionRightUp:
		return in.RightUp
	case ActionRightDown:
		return in.RightDown
	}
	return false
}

// Bindings maps each action to the keys that trigger it. Several keys may
// trigger the same action; any one of them being held is enough.
type Bindings[K comparable] map[Action][]K

// Resolve builds the frame's Input by asking held about every bound key.
func (b Bindings[K]) Resolve(held func(K) bool) Input {
	var in Input
	for action, keys := range b {
		for _, key := range keys {
			if held(key) {
				in.Set(action, true)
				break
			}
		}
	}
	return in
}

// Actions returns the actions bound to key.
func (b Bindings[K]) Actions(key K) []Action {
	var actions []Action
	for action, keys := range b {
		for _, bound := range keys {
			if bound == key {
				actions = append(actions, action)
				break
			}
		}
	}
	return actions
}
