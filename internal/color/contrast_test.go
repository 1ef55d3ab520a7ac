package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativeLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, White().RelativeLuminance(), 1e-9)
	assert.InDelta(t, 0.0, Black().RelativeLuminance(), 1e-9)
	assert.InDelta(t, 0.2126, Red().RelativeLuminance(), 1e-9)

	// low channel values use the linear segment
	low := RGB(10, 10, 10)
	assert.InDelta(t, (10.0/255)/12.92, low.RelativeLuminance(), 1e-9)
}

func TestLighterDarkerThan(t *testing.T) {
	assert.True(t, White().IsLighterThan(Black()))
	assert.True(t, Black().IsDarkerThan(White()))
	assert.False(t, White().IsLighterThan(White()))
	assert.False(t, White().IsDarkerThan(White()))
}

func TestLighterColor(t *testing.T) {
	t.Run("already lighter is returned unchanged", func(t *testing.T) {
		assert.Equal(t, White(), LighterColor(White(), Black(), 0.5))
	})

	t.Run("darker color moves up in lightness", func(t *testing.T) {
		of := MustParseHex("#264F78")
		got := LighterColor(of, MustParseHex("#FFFFFE"), 0.3)
		assert.Greater(t, got.HSLA().L, of.HSLA().L)
	})

	t.Run("black relative does not divide by zero", func(t *testing.T) {
		assert.Equal(t, Black(), LighterColor(Black(), Black(), 0.5))
	})
}

func TestDarkerColor(t *testing.T) {
	t.Run("already darker is returned unchanged", func(t *testing.T) {
		assert.Equal(t, Black(), DarkerColor(Black(), White(), 0.5))
	})

	t.Run("lighter color moves down in lightness", func(t *testing.T) {
		of := MustParseHex("#ADD6FF")
		got := DarkerColor(of, MustParseHex("#1E1E1E"), 0.3)
		assert.Less(t, got.HSLA().L, of.HSLA().L)
	})

	t.Run("zero factor behaves as half", func(t *testing.T) {
		of := MustParseHex("#ADD6FF")
		bg := MustParseHex("#1E1E1E")
		assert.Equal(t, DarkerColor(of, bg, 0.5), DarkerColor(of, bg, 0))
	})
}

func TestSVGFill(t *testing.T) {
	assert.Equal(t, `fill=""`, SVGFill(nil))

	white := White()
	assert.Equal(t, `fill="rgb(255, 255, 255)" fill-opacity="1"`, SVGFill(&white))

	faded := RGB(12, 34, 56).Transparent(0.4)
	assert.Equal(t, `fill="rgb(12, 34, 56)" fill-opacity="0.4"`, SVGFill(&faded))
}
