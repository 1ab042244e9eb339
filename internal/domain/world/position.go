package world

import "strings"

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Step(d Direction) Position {
	dr, dc := d.delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

const DefaultDirection = DirectionDown

// ParseDirection accepts the direction names and the w/a/s/d key aliases.
func ParseDirection(raw string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up", "w", "north":
		return DirectionUp, true
	case "down", "s", "south":
		return DirectionDown, true
	case "left", "a", "west":
		return DirectionLeft, true
	case "right", "d", "east":
		return DirectionRight, true
	default:
		return "", false
	}
}

func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	default:
		return false
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	default:
		return d
	}
}

func (d Direction) delta() (int, int) {
	switch d {
	case DirectionUp:
		return -1, 0
	case DirectionDown:
		return 1, 0
	case DirectionLeft:
		return 0, -1
	case DirectionRight:
		return 0, 1
	default:
		return 0, 0
	}
}
