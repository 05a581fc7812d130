package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceAreaCm2(t *testing.T) {
	t.Run("round uses diameter", func(t *testing.T) {
		pizza := Pizza{Shape: ShapeRound, DiameterCm: 32}
		assert.InDelta(t, math.Pi*16*16, pizza.SurfaceAreaCm2(), 1e-9)
	})

	t.Run("rectangle uses width and length", func(t *testing.T) {
		pizza := Pizza{Shape: ShapeRectangle, WidthCm: 25, LengthCm: 35}
		assert.InDelta(t, 875.0, pizza.SurfaceAreaCm2(), 1e-9)
	})

	t.Run("rectangle ignores a stale diameter", func(t *testing.T) {
		pizza := Pizza{Shape: ShapeRectangle, WidthCm: 20, LengthCm: 30, DiameterCm: 40}
		assert.InDelta(t, 600.0, pizza.SurfaceAreaCm2(), 1e-9)
	})

	t.Run("unknown shape yields zero", func(t *testing.T) {
		pizza := Pizza{Shape: "", DiameterCm: 32}
		assert.Zero(t, pizza.SurfaceAreaCm2())
	})
}
