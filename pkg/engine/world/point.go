package world

import (
	"fmt"
	"math"
)

// TileSizeInFeet is the edge length of one tile. Vision and light radii are
// expressed in feet and converted to tiles with this factor.
const TileSizeInFeet = 5

// Unit is a distance unit
type Unit int

// Distance units
const (
	Feet Unit = iota
	Miles
	Tiles
)

// Point is a grid coordinate. X grows eastwards, Y grows southwards.
type Point struct {
	X int
	Y int
}

// Add returns p translated by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Neighbor returns the adjacent point in the given direction
func (p Point) Neighbor(dir Direction) Point {
	return p.Add(dir.Delta())
}

// String returns "x,y"
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// DistanceSquared returns the squared Euclidean distance in tiles
func DistanceSquared(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean (Pythagoras) distance in tiles
func Distance(a, b Point) float64 {
	return math.Sqrt(float64(DistanceSquared(a, b)))
}

// FeetPerMile is used when converting to Miles
const FeetPerMile = 5280

// DistanceBetweenPoints returns the Euclidean distance between two points in feet
func DistanceBetweenPoints(a, b Point) float64 {
	return DistanceIn(a, b, Feet)
}

// DistanceIn returns the Euclidean distance between two points in the given unit
func DistanceIn(a, b Point, u Unit) float64 {
	tiles := Distance(a, b)
	switch u {
	case Feet:
		return tiles * TileSizeInFeet
	case Miles:
		return tiles * TileSizeInFeet / FeetPerMile
	default:
		return tiles
	}
}

// FeetToTiles converts a radius in feet to a whole number of tiles
func FeetToTiles(feet int) int {
	return feet / TileSizeInFeet
}
