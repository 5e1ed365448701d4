package world

import (
	"math/rand"
	"testing"
)

// pillarMap builds an open map with a few opaque tiles scattered in it.
func pillarMap(width, height int, seed int64) *Map {
	m := NewMap(width, height, DungeonTheme)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < width*height/6; i++ {
		m.Carve(Point{X: rng.Intn(width), Y: rng.Intn(height)}, ThemeWall)
	}
	return m
}

func TestFieldOfViewSet_OpenMap(t *testing.T) {
	m := NewMap(11, 11, DungeonTheme)
	set := FieldOfViewSet(m, Point{5, 5}, 2)
	// 13 tiles lie within Euclidean radius 2
	if set.Size() != 13 {
		t.Errorf("Size() = %d, want 13", set.Size())
	}
	if !set.Has(Point{5, 5}) {
		t.Error("origin not visible")
	}
	if set.Has(Point{7, 7}) {
		t.Error("(7,7) is outside radius 2 but visible")
	}
}

func TestFieldOfViewSet_WallBlocksSight(t *testing.T) {
	m := NewMap(7, 1, DungeonTheme)
	m.Carve(Point{3, 0}, ThemeWall)
	set := FieldOfViewSet(m, Point{0, 0}, 6)
	if !set.Has(Point{3, 0}) {
		t.Error("wall face should be visible")
	}
	if set.Has(Point{4, 0}) {
		t.Error("tile behind wall should not be visible")
	}
}

func TestFieldOfViewSet_OutOfBoundsOrigin(t *testing.T) {
	m := NewMap(3, 3, DungeonTheme)
	if got := FieldOfViewSet(m, Point{-1, 4}, 3).Size(); got != 0 {
		t.Errorf("Size() = %d, want 0 for out of bounds origin", got)
	}
}

func TestFieldOfViewSet_Symmetric(t *testing.T) {
	const radius = 6
	m := pillarMap(24, 18, 11)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			a := Point{x, y}
			if !m.CanEnter(a) {
				continue
			}
			fromA := FieldOfViewSet(m, a, radius)
			fromA.Each(func(b Point) {
				if !m.CanEnter(b) {
					return
				}
				if !FieldOfViewSet(m, b, radius).Has(a) {
					t.Errorf("%v sees %v but not the reverse", a, b)
				}
			})
		}
	}
}
