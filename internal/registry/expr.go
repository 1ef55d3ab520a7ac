package registry

import (
	"strings"

	"github.com/shaharia-lab/vstyle/internal/color"
)

// Expr is a declarative color expression. A nil Expr means "no color".
//
// The set of implementations is closed: Literal, Hex, Ref, the transparent
// sentinel and the transform nodes below.
type Expr interface {
	isExpr()
}

// Literal is a concrete color
type Literal struct {
	Color color.Color
}

// Hex is a hex color string such as #3C3C3C
type Hex string

// Ref refers to another color role
type Ref string

type transparentSentinel struct{}

// TransparentColor resolves to black with zero alpha
var TransparentColor Expr = transparentSentinel{}

// DarkenExpr multiplies the HSL lightness of Value by (1-Factor)
type DarkenExpr struct {
	Value  Expr
	Factor float64
}

// LightenExpr multiplies the HSL lightness of Value by (1+Factor)
type LightenExpr struct {
	Value  Expr
	Factor float64
}

// TransparentExpr multiplies the alpha of Value by Factor
type TransparentExpr struct {
	Value  Expr
	Factor float64
}

// OneOfExpr resolves to the first operand with a color
type OneOfExpr struct {
	Values []Expr
}

// IfDefinedExpr resolves Then when the role If was overridden by the
// loaded theme, Else otherwise.
type IfDefinedExpr struct {
	If   Ref
	Then Expr
	Else Expr
}

// LessProminentExpr moves Value towards Background by Factor and sets its
// alpha to Transparency.
type LessProminentExpr struct {
	Value        Expr
	Background   Expr
	Factor       float64
	Transparency float64
}

func (Literal) isExpr()             {}
func (Hex) isExpr()                 {}
func (Ref) isExpr()                 {}
func (transparentSentinel) isExpr() {}
func (DarkenExpr) isExpr()          {}
func (LightenExpr) isExpr()         {}
func (TransparentExpr) isExpr()     {}
func (OneOfExpr) isExpr()           {}
func (IfDefinedExpr) isExpr()       {}
func (LessProminentExpr) isExpr()   {}

// Lit wraps a color as an expression
func Lit(c color.Color) Expr {
	return Literal{Color: c}
}

// Darken builds a darken transform
func Darken(value Expr, factor float64) Expr {
	return DarkenExpr{Value: value, Factor: factor}
}

// Lighten builds a lighten transform
func Lighten(value Expr, factor float64) Expr {
	return LightenExpr{Value: value, Factor: factor}
}

// Transparent builds an alpha transform
func Transparent(value Expr, factor float64) Expr {
	return TransparentExpr{Value: value, Factor: factor}
}

// OneOf builds a fallback chain
func OneOf(values ...Expr) Expr {
	return OneOfExpr{Values: values}
}

// IfDefinedThenElse builds a branch on whether role has been overridden
func IfDefinedThenElse(role Ref, then, otherwise Expr) Expr {
	return IfDefinedExpr{If: role, Then: then, Else: otherwise}
}

// LessProminent builds a contrast-reducing transform
func LessProminent(value, background Expr, factor, transparency float64) Expr {
	return LessProminentExpr{Value: value, Background: background, Factor: factor, Transparency: transparency}
}

// ParseValue converts a theme file value into an expression.
// "transparent" maps to the sentinel, anything else is treated as hex.
func ParseValue(value string) Expr {
	if strings.EqualFold(strings.TrimSpace(value), "transparent") {
		return TransparentColor
	}
	return Hex(value)
}

// sameExpr reports whether two expressions are the same value. Only leaf
// expressions can compare equal; transform nodes are distinct per registration.
func sameExpr(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Hex:
		bv, ok := b.(Hex)
		return ok && av == bv
	case Ref:
		bv, ok := b.(Ref)
		return ok && av == bv
	case Literal:
		bv, ok := b.(Literal)
		return ok && av == bv
	case transparentSentinel:
		_, ok := b.(transparentSentinel)
		return ok
	default:
		return false
	}
}
