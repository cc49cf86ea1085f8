package system

import "strings"

// Command is a discrete camera input. Each value is applied once per input event.
type Command int

const (
	CommandNone Command = iota
	CommandMoveForward
	CommandMoveBackward
	CommandStrafeLeft
	CommandStrafeRight
	CommandTurnLeft
	CommandTurnRight
)

var commandNames = map[Command]string{
	CommandMoveForward:  "move_forward",
	CommandMoveBackward: "move_backward",
	CommandStrafeLeft:   "strafe_left",
	CommandStrafeRight:  "strafe_right",
	CommandTurnLeft:     "turn_left",
	CommandTurnRight:    "turn_right",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// Commands lists every camera command in a stable order.
func Commands() []Command {
	return []Command{
		CommandMoveForward,
		CommandMoveBackward,
		CommandStrafeLeft,
		CommandStrafeRight,
		CommandTurnLeft,
		CommandTurnRight,
	}
}

// ParseCommand maps a config name such as "turn_left" to its command.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for cmd, n := range commandNames {
		if n == name {
			return cmd, true
		}
	}
	return CommandNone, false
}
