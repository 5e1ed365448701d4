package entities

import (
	"testing"

	"encounters/pkg/engine/world"
)

func TestFieldOfView_CloneDirty(t *testing.T) {
	f := NewFieldOfView(60, Feet(10), Feet(30))
	f.VisibleTiles.Put(world.Point{X: 1, Y: 1})
	f.Dirty = false

	c := f.CloneDirty()
	if !c.Dirty {
		t.Error("clone is not dirty")
	}
	if c.VisibleTiles.Size() != 0 {
		t.Errorf("clone has %d visible tiles, want 0", c.VisibleTiles.Size())
	}
	if c.NormalVision != 60 || *c.DimVision != 10 || *c.DarkVision != 30 {
		t.Errorf("clone radii = %d/%d/%d, want 60/10/30", c.NormalVision, *c.DimVision, *c.DarkVision)
	}
	*c.DarkVision = 5
	if *f.DarkVision != 30 {
		t.Error("clone shares dark vision with the original")
	}
}

func TestFieldOfView_Radius(t *testing.T) {
	if got := NewFieldOfView(60, nil, nil).Radius(); got != 12 {
		t.Errorf("Radius() = %d, want 12", got)
	}
	if got := NewFieldOfView(7, nil, nil).Radius(); got != 1 {
		t.Errorf("Radius() = %d, want 1", got)
	}
}

func TestFieldOfView_WithinDarkVision(t *testing.T) {
	f := NewFieldOfView(60, nil, nil)
	if f.WithinDarkVision(0) {
		t.Error("no dark vision should never be within range")
	}
	f.SetDarkVision(Feet(10))
	if !f.WithinDarkVision(10) || f.WithinDarkVision(10.5) {
		t.Error("dark vision boundary is inclusive at 10 feet")
	}
	if !f.Dirty {
		t.Error("SetDarkVision did not mark dirty")
	}
}

func TestProvidesIllumination_LevelAt(t *testing.T) {
	l := NewProvidesIllumination(30, 60, InfiniteDuration)
	tests := []struct {
		feet float64
		want world.IlluminationLevel
	}{
		{0, world.IlluminationNormal},
		{30, world.IlluminationNormal},
		{31, world.IlluminationDim},
		{90, world.IlluminationDim},
		{91, world.IlluminationNone},
	}
	for _, tt := range tests {
		if got := l.LevelAt(tt.feet); got != tt.want {
			t.Errorf("LevelAt(%v) = %v, want %v", tt.feet, got, tt.want)
		}
	}
	if l.Radius() != 18 {
		t.Errorf("Radius() = %d, want 18", l.Radius())
	}
}

func TestProvidesIllumination_Burn(t *testing.T) {
	l := NewProvidesIllumination(10, 10, 30)
	l.Dirty = false
	if l.Burn(20) {
		t.Error("Burn(20) of 30 reported burnt out")
	}
	if l.Duration != 10 || l.Dirty {
		t.Errorf("Duration = %d, Dirty = %v, want 10, false", l.Duration, l.Dirty)
	}
	if !l.Burn(15) || l.Lit() || !l.Dirty {
		t.Error("Burn(15) of 10 should put the light out and mark it dirty")
	}
	if l.Burn(1) {
		t.Error("an extinguished light cannot burn out again")
	}

	inf := NewProvidesIllumination(10, 10, InfiniteDuration)
	if inf.Burn(1<<31) || inf.Duration != InfiniteDuration {
		t.Error("infinite light burned down")
	}
}

func TestEntity_MarkDirty(t *testing.T) {
	e := &Entity{FOV: NewFieldOfView(10, nil, nil), Light: NewProvidesIllumination(5, 5, 1)}
	e.FOV.Dirty, e.Light.Dirty = false, false
	e.MarkDirty()
	if !e.FOV.Dirty || !e.Light.Dirty {
		t.Error("MarkDirty did not flag both components")
	}
	(&Entity{}).MarkDirty()
}
