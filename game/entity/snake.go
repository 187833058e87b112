package entity

import (
	"snake-arcade/game/types"
)

type Color struct {
	R, G, B uint8
}

// DefaultColor is the neon green the body is drawn with
var DefaultColor = Color{R: 113, G: 247, B: 159}

// Snake holds the body head first. Direction is the heading applied on the
// last step, Pending the one the next step will adopt.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Pending   types.Direction
	Color     Color
}

func NewSnake(body []types.Point, dir types.Direction, color Color) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
		Pending:   dir,
		Color:     color,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move prepends newHead; the tail stays until RemoveTail is called
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// SetDirection queues dir for the next step. A reversal against the active
// heading is dropped while the body is longer than one cell.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !types.IsUnit(dir) {
		return false
	}
	if types.Opposite(dir, s.Direction) && len(s.Body) > 1 {
		return false
	}
	s.Pending = dir
	return true
}

// AdoptPending makes the queued direction active and returns it
func (s *Snake) AdoptPending() types.Direction {
	s.Direction = s.Pending
	return s.Direction
}

// NextHead is the cell the head would enter on the next step
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction)
}

// Occupies reports whether p is any cell of the body
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// BodyCopy returns a copy of the body safe to hand to readers
func (s *Snake) BodyCopy() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
