package registry

import (
	"testing"

	"github.com/shaharia-lab/vstyle/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBase(t *testing.T, register func(b *Base)) *Base {
	t.Helper()
	b := NewBase()
	register(b)
	return b.Freeze()
}

func resolveOne(t *testing.T, r *Registry, id string, v Variant) *color.Color {
	t.Helper()
	c, err := r.ResolveRole(id, v)
	require.NoError(t, err)
	return c
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{in: "dark", want: Dark},
		{in: "Light", want: Light},
		{in: " hc ", want: HighContrast},
		{in: "sepia", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseRegister(t *testing.T) {
	b := NewBase()
	ref, err := b.Register("foreground", Same(Hex("#CCCCCC")))
	require.NoError(t, err)
	assert.Equal(t, Ref("foreground"), ref)

	_, err = b.Register("foreground", Same(Hex("#000000")))
	assert.ErrorIs(t, err, ErrDuplicateRole)

	_, err = b.Register("", Same(Hex("#000000")))
	assert.Error(t, err)

	b.Freeze()
	assert.True(t, b.Frozen())
	_, err = b.Register("background", Same(Hex("#000000")))
	assert.ErrorIs(t, err, ErrFrozen)
	assert.Panics(t, func() { b.MustRegister("background", Same(Hex("#000000"))) })

	assert.Equal(t, []string{"foreground"}, b.IDs())
	assert.True(t, b.Has("foreground"))
	assert.False(t, b.Has("background"))
}

func TestResolveLiterals(t *testing.T) {
	b := newTestBase(t, func(b *Base) {
		b.MustRegister("fg", Defaults{Dark: Hex("#CCCCCC"), Light: Hex("#616161"), HC: Lit(color.White())})
		b.MustRegister("border", Defaults{Dark: TransparentColor, HC: Hex("#6FC3DF")})
	})
	r := b.NewRegistry()

	assert.Equal(t, color.MustParseHex("#CCCCCC"), *resolveOne(t, r, "fg", Dark))
	assert.Equal(t, color.MustParseHex("#616161"), *resolveOne(t, r, "fg", Light))
	assert.Equal(t, color.White(), *resolveOne(t, r, "fg", HighContrast))

	assert.Equal(t, color.Transparent(), *resolveOne(t, r, "border", Dark))
	assert.Nil(t, resolveOne(t, r, "border", Light))
}

func TestResolveTransforms(t *testing.T) {
	b := newTestBase(t, func(b *Base) {
		base := b.MustRegister("base", Same(Hex("#808080")))
		b.MustRegister("darker", Same(Darken(base, 0.5)))
		b.MustRegister("lighter", Same(Lighten(base, 0.2)))
		b.MustRegister("faded", Same(Transparent(Transparent(base, 0.5), 0.5)))
		b.MustRegister("none", Defaults{})
		b.MustRegister("faded.none", Same(Transparent(Ref("none"), 0.5)))
	})
	r := b.NewRegistry()
	base := color.MustParseHex("#808080")

	assert.Equal(t, base.Darken(0.5), *resolveOne(t, r, "darker", Dark))
	assert.Equal(t, base.Lighten(0.2), *resolveOne(t, r, "lighter", Dark))
	assert.InDelta(t, 0.25, resolveOne(t, r, "faded", Dark).Alpha(), 1e-9)
	assert.Nil(t, resolveOne(t, r, "faded.none", Dark), "transforms of nil stay nil")
}

func TestResolveOneOf(t *testing.T) {
	b := newTestBase(t, func(b *Base) {
		b.MustRegister("a", Defaults{})
		b.MustRegister("b", Defaults{})
		c := b.MustRegister("c", Same(Hex("#123456")))
		b.MustRegister("pick", Same(OneOf(Ref("a"), Ref("b"), c)))
		b.MustRegister("empty", Same(OneOf(Ref("a"), Ref("b"))))
		b.MustRegister("first", Same(OneOf(c, Ref("missing"))))
	})
	r := b.NewRegistry()

	assert.Equal(t, color.MustParseHex("#123456"), *resolveOne(t, r, "pick", Dark))
	assert.Nil(t, resolveOne(t, r, "empty", Dark))
	// later operands are not evaluated once one has a color
	assert.Equal(t, color.MustParseHex("#123456"), *resolveOne(t, r, "first", Dark))
}

func TestResolveIfDefined(t *testing.T) {
	b := newTestBase(t, func(b *Base) {
		sel := b.MustRegister("list.activeSelectionBackground", Same(Hex("#0060C0")))
		b.MustRegister("list.focusHighlightForeground", Same(IfDefinedThenElse(sel, Hex("#FF0000"), Hex("#9DDDFF"))))
	})

	t.Run("default value takes the else branch", func(t *testing.T) {
		r := b.NewRegistry()
		assert.False(t, r.IsDefined("list.activeSelectionBackground", Light))
		assert.Equal(t, color.MustParseHex("#9DDDFF"), *resolveOne(t, r, "list.focusHighlightForeground", Light))
	})

	t.Run("override takes the then branch", func(t *testing.T) {
		r := b.NewRegistry()
		require.True(t, r.Override("list.activeSelectionBackground", Hex("#00FF00"), Light))
		assert.True(t, r.IsDefined("list.activeSelectionBackground", Light))
		assert.Equal(t, color.MustParseHex("#FF0000"), *resolveOne(t, r, "list.focusHighlightForeground", Light))
		assert.Equal(t, color.MustParseHex("#9DDDFF"), *resolveOne(t, r, "list.focusHighlightForeground", Dark))
	})

	t.Run("override with the default value is not defined", func(t *testing.T) {
		r := b.NewRegistry()
		require.True(t, r.Override("list.activeSelectionBackground", Hex("#0060C0"), Light))
		assert.False(t, r.IsDefined("list.activeSelectionBackground", Light))
	})
}

func TestResolveLessProminent(t *testing.T) {
	b := newTestBase(t, func(b *Base) {
		fg := b.MustRegister("fg", Same(Lit(color.White())))
		bg := b.MustRegister("bg", Defaults{Dark: Lit(color.Black())})
		b.MustRegister("selection", Same(LessProminent(fg, bg, 0.5, 0.6)))
	})
	r := b.NewRegistry()

	t.Run("nil background scales alpha by factor and transparency", func(t *testing.T) {
		got := resolveOne(t, r, "selection", Light)
		require.NotNil(t, got)
		assert.Equal(t, color.White().RGBA().R, got.RGBA().R)
		assert.InDelta(t, 0.3, got.Alpha(), 1e-9)
	})

	t.Run("background moves the color and sets alpha", func(t *testing.T) {
		got := resolveOne(t, r, "selection", Dark)
		require.NotNil(t, got)
		assert.Less(t, got.HSLA().L, color.White().HSLA().L)
		assert.InDelta(t, 0.6, got.Alpha(), 1e-9)
	})
}

func TestOverride(t *testing.T) {
	b := newTestBase(t, func(b *Base) {
		b.MustRegister("fg", Defaults{Dark: Hex("#CCCCCC"), Light: Hex("#616161")})
		b.MustRegister("derived", Same(Darken(Ref("fg"), 0.1)))
	})
	r := b.NewRegistry()

	assert.True(t, r.Override("fg", Hex("#FFFFFF"), Dark))
	assert.False(t, r.Override("fg", Hex("#FFFFFF"), HighContrast), "no default for hc")
	assert.False(t, r.Override("unknown.role", Hex("#FFFFFF"), Dark))

	assert.Equal(t, []DroppedOverride{
		{ID: "fg", Variant: HighContrast},
		{ID: "unknown.role", Variant: Dark},
	}, r.Dropped())

	assert.Equal(t, color.White(), *resolveOne(t, r, "fg", Dark))
	assert.Equal(t, color.White().Darken(0.1), *resolveOne(t, r, "derived", Dark))
	assert.Nil(t, resolveOne(t, r, "fg", HighContrast))

	// a second overlay does not see the first one's overrides
	other := b.NewRegistry()
	assert.Equal(t, color.MustParseHex("#CCCCCC"), *resolveOne(t, other, "fg", Dark))
}

func TestResolveErrors(t *testing.T) {
	t.Run("cycle", func(t *testing.T) {
		b := newTestBase(t, func(b *Base) {
			b.MustRegister("a", Same(Ref("b")))
			b.MustRegister("b", Same(Lighten(Ref("c"), 0.1)))
			b.MustRegister("c", Same(Ref("a")))
		})
		_, err := b.NewRegistry().Resolve(Dark)
		require.ErrorIs(t, err, ErrCycle)
		assert.Contains(t, err.Error(), "a -> b -> c -> a")
	})

	t.Run("unknown reference", func(t *testing.T) {
		b := newTestBase(t, func(b *Base) {
			b.MustRegister("a", Same(Ref("nope")))
		})
		_, err := b.NewRegistry().Resolve(Dark)
		require.ErrorIs(t, err, ErrUnknownRole)
		assert.Contains(t, err.Error(), `"nope"`)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := NewBase().Freeze().NewRegistry().ResolveRole("missing", Dark)
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("bad hex", func(t *testing.T) {
		b := newTestBase(t, func(b *Base) {
			b.MustRegister("a", Same(Hex("#12")))
		})
		_, err := b.NewRegistry().Resolve(Dark)
		assert.ErrorIs(t, err, color.ErrInvalidHex)
	})

	t.Run("bad variant", func(t *testing.T) {
		_, err := NewBase().Freeze().NewRegistry().Resolve(Variant("sepia"))
		assert.ErrorIs(t, err, ErrUnknownVariant)
	})
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, TransparentColor, ParseValue("transparent"))
	assert.Equal(t, TransparentColor, ParseValue(" Transparent "))
	assert.Equal(t, Hex("#fff"), ParseValue("#fff"))
}

func TestDefaultBase(t *testing.T) {
	b := Default()
	require.True(t, b.Frozen())
	assert.Same(t, b, Default())

	for _, id := range []string{
		"foreground",
		"focusBorder",
		"editor.background",
		"list.focusHighlightForeground",
		"settings.focusedRowBorder",
		"inputValidation.errorBorder.disabled",
	} {
		assert.True(t, b.Has(id), id)
	}

	for _, v := range Variants {
		colors, err := b.NewRegistry().Resolve(v)
		require.NoError(t, err, v)
		assert.Len(t, colors, len(b.IDs()))
	}

	dark, err := b.NewRegistry().ResolveRole("editor.background", Dark)
	require.NoError(t, err)
	assert.Equal(t, "1e1e1eff", dark.Hex())
}
