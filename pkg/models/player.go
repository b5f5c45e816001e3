// Package models holds the plain data types shared by the simulation packages.
package models

// Player represents the player's car on the road.
type Player struct {
	X, Y          float64 // Top-left corner on the canvas
	Width, Height float64
	LateralSpeed  float64 // Pixels moved per frame while steering
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() Rect {
	return NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the car.
func (p Player) CenterX() float64 {
	return p.X + p.Width/2
}
