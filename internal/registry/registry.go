package registry

import (
	"fmt"
	"strings"

	"github.com/shaharia-lab/vstyle/internal/color"
)

// DroppedOverride records an override that had no default to replace
type DroppedOverride struct {
	ID      string
	Variant Variant
}

// Registry is a per-load overlay of overrides on top of a Base
type Registry struct {
	base      *Base
	overrides map[Variant]map[string]Expr
	dropped   []DroppedOverride
}

// Base returns the underlying default table
func (r *Registry) Base() *Base {
	return r.base
}

// Override replaces the expression of a role for a variant.
//
// The override only applies when the role currently has a non-nil value for
// that variant. Overrides of unknown roles, or of roles without a default for
// the variant, are dropped and reported by Dropped. It returns whether the
// override was applied.
func (r *Registry) Override(id string, value Expr, v Variant) bool {
	current, ok := r.current(id, v)
	if !ok || current == nil {
		r.dropped = append(r.dropped, DroppedOverride{ID: id, Variant: v})
		return false
	}

	layer, ok := r.overrides[v]
	if !ok {
		layer = make(map[string]Expr)
		r.overrides[v] = layer
	}
	layer[id] = value
	return true
}

// Dropped returns the overrides ignored so far
func (r *Registry) Dropped() []DroppedOverride {
	dropped := make([]DroppedOverride, len(r.dropped))
	copy(dropped, r.dropped)
	return dropped
}

// IsDefined reports whether a role's current value differs from the
// variant's default, i.e. it was explicitly overridden.
func (r *Registry) IsDefined(id string, v Variant) bool {
	override, ok := r.overrides[v][id]
	if !ok {
		return false
	}
	def, _ := r.base.Default(id, v)
	return !sameExpr(def, override)
}

// Resolve evaluates every role for a variant. Roles without a color map to nil.
func (r *Registry) Resolve(v Variant) (map[string]*color.Color, error) {
	if _, err := ParseVariant(string(v)); err != nil {
		return nil, err
	}

	res := newResolver(r, v)
	colors := make(map[string]*color.Color, len(r.base.ids))
	for _, id := range r.base.ids {
		c, err := res.role(id)
		if err != nil {
			return nil, err
		}
		colors[id] = c
	}
	return colors, nil
}

// ResolveRole evaluates a single role for a variant
func (r *Registry) ResolveRole(id string, v Variant) (*color.Color, error) {
	if _, err := ParseVariant(string(v)); err != nil {
		return nil, err
	}
	return newResolver(r, v).role(id)
}

func (r *Registry) current(id string, v Variant) (Expr, bool) {
	if override, ok := r.overrides[v][id]; ok {
		return override, true
	}
	return r.base.Default(id, v)
}

type resolver struct {
	reg      *Registry
	variant  Variant
	memo     map[string]*color.Color
	visiting map[string]bool
	stack    []string
}

func newResolver(r *Registry, v Variant) *resolver {
	return &resolver{
		reg:      r,
		variant:  v,
		memo:     make(map[string]*color.Color),
		visiting: make(map[string]bool),
	}
}

func (rs *resolver) role(id string) (*color.Color, error) {
	if c, ok := rs.memo[id]; ok {
		return c, nil
	}
	if rs.visiting[id] {
		path := append(append([]string{}, rs.stack...), id)
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(path, " -> "))
	}

	expr, ok := rs.reg.current(id, rs.variant)
	if !ok {
		if len(rs.stack) > 0 {
			return nil, fmt.Errorf("%w: %q referenced by %q", ErrUnknownRole, id, rs.stack[len(rs.stack)-1])
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, id)
	}

	rs.visiting[id] = true
	rs.stack = append(rs.stack, id)
	c, err := rs.eval(expr)
	rs.stack = rs.stack[:len(rs.stack)-1]
	delete(rs.visiting, id)
	if err != nil {
		return nil, err
	}

	rs.memo[id] = c
	return c, nil
}

func (rs *resolver) eval(e Expr) (*color.Color, error) {
	switch x := e.(type) {
	case nil:
		return nil, nil
	case Literal:
		c := x.Color
		return &c, nil
	case transparentSentinel:
		c := color.Transparent()
		return &c, nil
	case Hex:
		c, err := color.ParseHex(string(x))
		if err != nil {
			return nil, fmt.Errorf("color role %q: %w", rs.current(), err)
		}
		return &c, nil
	case Ref:
		return rs.role(string(x))
	case DarkenExpr:
		return rs.apply(x.Value, func(c color.Color) color.Color { return c.Darken(x.Factor) })
	case LightenExpr:
		return rs.apply(x.Value, func(c color.Color) color.Color { return c.Lighten(x.Factor) })
	case TransparentExpr:
		return rs.apply(x.Value, func(c color.Color) color.Color { return c.Transparent(x.Factor) })
	case OneOfExpr:
		for _, candidate := range x.Values {
			c, err := rs.eval(candidate)
			if err != nil {
				return nil, err
			}
			if c != nil {
				return c, nil
			}
		}
		return nil, nil
	case IfDefinedExpr:
		if !rs.reg.base.Has(string(x.If)) {
			return nil, fmt.Errorf("%w: %q referenced by %q", ErrUnknownRole, x.If, rs.current())
		}
		if rs.reg.IsDefined(string(x.If), rs.variant) {
			return rs.eval(x.Then)
		}
		return rs.eval(x.Else)
	case LessProminentExpr:
		return rs.lessProminent(x)
	default:
		return nil, fmt.Errorf("color role %q: unsupported expression %T", rs.current(), e)
	}
}

func (rs *resolver) apply(value Expr, fn func(color.Color) color.Color) (*color.Color, error) {
	c, err := rs.eval(value)
	if err != nil || c == nil {
		return nil, err
	}
	out := fn(*c)
	return &out, nil
}

func (rs *resolver) lessProminent(x LessProminentExpr) (*color.Color, error) {
	from, err := rs.eval(x.Value)
	if err != nil || from == nil {
		return nil, err
	}

	background, err := rs.eval(x.Background)
	if err != nil {
		return nil, err
	}
	if background == nil {
		out := from.Transparent(x.Factor * x.Transparency)
		return &out, nil
	}

	var out color.Color
	if from.IsDarkerThan(*background) {
		out = color.LighterColor(*from, *background, x.Factor)
	} else {
		out = color.DarkerColor(*from, *background, x.Factor)
	}
	out = out.Transparent(x.Transparency)
	return &out, nil
}

func (rs *resolver) current() string {
	if len(rs.stack) == 0 {
		return ""
	}
	return rs.stack[len(rs.stack)-1]
}
