package layout

// Listener is notified when a PreferredSize changes.
type Listener interface {
	PreferredSizeChanged()
}

// ListenerFunc adapts a plain function to the Listener interface. Register
// the same *ListenerFunc that will later be removed; identity is what the
// listener list compares.
type ListenerFunc struct {
	F func()
}

// PreferredSizeChanged implements Listener.
func (l *ListenerFunc) PreferredSizeChanged() {
	if l.F != nil {
		l.F()
	}
}

// PreferredSize is the per-widget sizing contract consumed by parent
// layouts: minimum and preferred extents per axis, a flexible weight per
// axis, and a flag excluding the widget from layout entirely.
//
// Setters take a notify flag so widgets can initialize silently; value
// setters only notify when the value actually changes. Flexible weights are
// clamped to be non-negative.
type PreferredSize struct {
	ignoreLayout    bool
	minWidth        int
	minHeight       int
	preferredWidth  int
	preferredHeight int
	flexibleWidth   int
	flexibleHeight  int
	listeners       []Listener
}

// IgnoreLayout reports whether the widget is excluded from all layout passes.
func (p *PreferredSize) IgnoreLayout() bool { return p.ignoreLayout }

// SetIgnoreLayout sets the exclusion flag, notifying listeners when asked.
func (p *PreferredSize) SetIgnoreLayout(v, notify bool) *PreferredSize {
	p.ignoreLayout = v
	if notify {
		p.notifyListeners()
	}
	return p
}

// MinWidth returns the minimum width in pixels.
func (p *PreferredSize) MinWidth() int { return p.minWidth }

// SetMinWidth sets the minimum width in pixels.
func (p *PreferredSize) SetMinWidth(v int, notify bool) *PreferredSize {
	if p.minWidth != v {
		p.minWidth = v
		if notify {
			p.notifyListeners()
		}
	}
	return p
}

// MinHeight returns the minimum height in pixels.
func (p *PreferredSize) MinHeight() int { return p.minHeight }

// SetMinHeight sets the minimum height in pixels.
func (p *PreferredSize) SetMinHeight(v int, notify bool) *PreferredSize {
	if p.minHeight != v {
		p.minHeight = v
		if notify {
			p.notifyListeners()
		}
	}
	return p
}

// MinSize returns the minimum size as a point.
func (p *PreferredSize) MinSize() (w, h int) { return p.minWidth, p.minHeight }

// SetMinSize sets both minimum extents.
func (p *PreferredSize) SetMinSize(w, h int, notify bool) *PreferredSize {
	p.minWidth = w
	p.minHeight = h
	if notify {
		p.notifyListeners()
	}
	return p
}

// PreferredWidth returns the preferred width in pixels.
func (p *PreferredSize) PreferredWidth() int { return p.preferredWidth }

// SetPreferredWidth sets the preferred width in pixels.
func (p *PreferredSize) SetPreferredWidth(v int, notify bool) *PreferredSize {
	if p.preferredWidth != v {
		p.preferredWidth = v
		if notify {
			p.notifyListeners()
		}
	}
	return p
}

// PreferredHeight returns the preferred height in pixels.
func (p *PreferredSize) PreferredHeight() int { return p.preferredHeight }

// SetPreferredHeight sets the preferred height in pixels.
func (p *PreferredSize) SetPreferredHeight(v int, notify bool) *PreferredSize {
	if p.preferredHeight != v {
		p.preferredHeight = v
		if notify {
			p.notifyListeners()
		}
	}
	return p
}

// SetPreferredSize sets both preferred extents.
func (p *PreferredSize) SetPreferredSize(w, h int, notify bool) *PreferredSize {
	p.preferredWidth = w
	p.preferredHeight = h
	if notify {
		p.notifyListeners()
	}
	return p
}

// FlexibleWidth returns the horizontal flexible weight.
func (p *PreferredSize) FlexibleWidth() int { return p.flexibleWidth }

// SetFlexibleWidth sets the horizontal flexible weight. Negative weights
// clamp to zero.
func (p *PreferredSize) SetFlexibleWidth(v int, notify bool) *PreferredSize {
	v = max(v, 0)
	if p.flexibleWidth != v {
		p.flexibleWidth = v
		if notify {
			p.notifyListeners()
		}
	}
	return p
}

// FlexibleHeight returns the vertical flexible weight.
func (p *PreferredSize) FlexibleHeight() int { return p.flexibleHeight }

// SetFlexibleHeight sets the vertical flexible weight. Negative weights
// clamp to zero.
func (p *PreferredSize) SetFlexibleHeight(v int, notify bool) *PreferredSize {
	v = max(v, 0)
	if p.flexibleHeight != v {
		p.flexibleHeight = v
		if notify {
			p.notifyListeners()
		}
	}
	return p
}

// SetFlexibleSize sets both flexible weights. Negative weights clamp to zero.
func (p *PreferredSize) SetFlexibleSize(w, h int, notify bool) *PreferredSize {
	p.flexibleWidth = max(w, 0)
	p.flexibleHeight = max(h, 0)
	if notify {
		p.notifyListeners()
	}
	return p
}

// AddListener registers a change listener. Adding the same listener twice is
// a no-op.
func (p *PreferredSize) AddListener(l Listener) *PreferredSize {
	if l == nil {
		return p
	}
	for _, existing := range p.listeners {
		if existing == l {
			return p
		}
	}
	p.listeners = append(p.listeners, l)
	return p
}

// RemoveListener unregisters a change listener. Removing a listener that was
// never registered is a no-op.
func (p *PreferredSize) RemoveListener(l Listener) *PreferredSize {
	for i, existing := range p.listeners {
		if existing == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return p
		}
	}
	return p
}

func (p *PreferredSize) notifyListeners() {
	for _, l := range p.listeners {
		if l != nil {
			l.PreferredSizeChanged()
		}
	}
}
