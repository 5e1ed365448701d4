package entities

import (
	"github.com/zyedidia/generic/mapset"

	"encounters/pkg/engine/world"
)

// FieldOfView is an observer's sight. Radii are in feet.
// VisibleTiles holds the result of the last computation and is only
// current while Dirty is false.
type FieldOfView struct {
	VisibleTiles mapset.Set[world.Point]
	NormalVision uint16
	DimVision    *uint16
	DarkVision   *uint16
	Dirty        bool
}

// NewFieldOfView creates a dirty field of view. dim and dark may be nil.
func NewFieldOfView(normal uint16, dim, dark *uint16) *FieldOfView {
	return &FieldOfView{
		VisibleTiles: mapset.New[world.Point](),
		NormalVision: normal,
		DimVision:    dim,
		DarkVision:   dark,
		Dirty:        true,
	}
}

// Feet returns a pointer to a vision radius
func Feet(f uint16) *uint16 {
	return &f
}

// CloneDirty copies the radii into a fresh dirty field of view with no visible tiles
func (f *FieldOfView) CloneDirty() *FieldOfView {
	return NewFieldOfView(f.NormalVision, copyRadius(f.DimVision), copyRadius(f.DarkVision))
}

// Radius returns the sight range in whole tiles
func (f *FieldOfView) Radius() int {
	return world.FeetToTiles(int(f.NormalVision))
}

// WithinDarkVision returns true if a tile feet away is inside dark vision
func (f *FieldOfView) WithinDarkVision(feet float64) bool {
	return f.DarkVision != nil && feet <= float64(*f.DarkVision)
}

// SetNormalVision changes the sight radius and marks the view dirty
func (f *FieldOfView) SetNormalVision(feet uint16) {
	f.NormalVision = feet
	f.Dirty = true
}

// SetDarkVision changes the dark vision radius and marks the view dirty. nil removes it.
func (f *FieldOfView) SetDarkVision(feet *uint16) {
	f.DarkVision = copyRadius(feet)
	f.Dirty = true
}

func copyRadius(r *uint16) *uint16 {
	if r == nil {
		return nil
	}
	v := *r
	return &v
}
