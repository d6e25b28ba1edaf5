package race

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/driftline/vmath"
)

// Kind distinguishes the start/finish gate from checkpoints
type Kind uint8

const (
	KindCheckpoint Kind = iota
	KindStartFinish
)

func (k Kind) String() string {
	if k == KindStartFinish {
		return "startFinish"
	}
	return "checkpoint"
}

// ParseKind accepts the names used in course files
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "startfinish", "start_finish", "start-finish", "start", "finish":
		return KindStartFinish, nil
	case "checkpoint", "cp":
		return KindCheckpoint, nil
	default:
		return 0, fmt.Errorf("unknown control line kind %q", s)
	}
}

// ControlLine is a sensor gate in the course geometry
// ID, Points and Kind are fixed after load; Passed resets every lap
type ControlLine struct {
	ID     string
	Points []vmath.Vec2
	Kind   Kind
	Passed bool
}
