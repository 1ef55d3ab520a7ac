package theme

import (
	"strings"
	"sync"

	"github.com/shaharia-lab/vstyle/internal/color"
)

// Recolorer receives the color of the role it subscribed to every time a
// theme is loaded.
type Recolorer interface {
	SetColor(c color.Color)
}

// RecolorFunc adapts a function to Recolorer
type RecolorFunc func(c color.Color)

// SetColor calls f(c)
func (f RecolorFunc) SetColor(c color.Color) {
	f(c)
}

// Palette holds the colors of the last loaded theme and pushes them to
// subscribed icons.
type Palette struct {
	mu          sync.RWMutex
	colors      map[string]*color.Color
	subscribers map[string][]*subscription
}

type subscription struct {
	r Recolorer
}

// NewPalette creates an empty palette
func NewPalette() *Palette {
	return &Palette{
		colors:      map[string]*color.Color{},
		subscribers: map[string][]*subscription{},
	}
}

// Subscribe registers r for the role id. If a theme is already loaded r
// receives the current color right away. The returned function removes
// the subscription.
func (p *Palette) Subscribe(id string, r Recolorer) func() {
	sub := &subscription{r: r}

	p.mu.Lock()
	p.subscribers[id] = append(p.subscribers[id], sub)
	current, loaded := p.colors[id]
	p.mu.Unlock()

	if loaded {
		r.SetColor(orWhite(current))
	}

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		subs := p.subscribers[id]
		for i, s := range subs {
			if s == sub {
				p.subscribers[id] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		if len(p.subscribers[id]) == 0 {
			delete(p.subscribers, id)
		}
	}
}

// Publish replaces the current colors and notifies every subscriber. Roles
// without a color are sent as white.
func (p *Palette) Publish(colors map[string]*color.Color) {
	p.mu.Lock()
	p.colors = make(map[string]*color.Color, len(colors))
	for id, c := range colors {
		p.colors[id] = c
	}
	type notification struct {
		r Recolorer
		c color.Color
	}
	var pending []notification
	for id, subs := range p.subscribers {
		c := orWhite(p.colors[id])
		for _, s := range subs {
			pending = append(pending, notification{r: s.r, c: c})
		}
	}
	p.mu.Unlock()

	for _, n := range pending {
		n.r.SetColor(n.c)
	}
}

// Color returns the current color of a role. ok is false for unknown roles.
func (p *Palette) Color(id string) (c *color.Color, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok = p.colors[id]
	return c, ok
}

// Colors returns a copy of the current colors
func (p *Palette) Colors() map[string]*color.Color {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]*color.Color, len(p.colors))
	for id, c := range p.colors {
		out[id] = c
	}
	return out
}

// Subscribers returns the number of subscriptions for a role
func (p *Palette) Subscribers(id string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subscribers[id])
}

// RecolorSVG fills the currentColor shapes of an icon with c. Disabled icons
// are drawn at 30% of the color's alpha.
func RecolorSVG(svg string, c color.Color, disabled bool) string {
	if disabled {
		c = c.Transparent(0.3)
	}
	return strings.ReplaceAll(svg, `fill="currentColor"`, color.SVGFill(&c))
}

func orWhite(c *color.Color) color.Color {
	if c == nil {
		return color.White()
	}
	return *c
}
