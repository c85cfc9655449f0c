package ui

// redrawTimer drives the counter view's periodic repaint. It is not an
// independent execution context: the dispatcher advances it from the same
// serialized step loop that handles input, so stop is synchronous and no
// callback can fire after it.
//
// Start/stop pairing is a programmer invariant; breaking it means a broken
// enter/exit hook pairing, so both sides panic rather than recover.
type redrawTimer struct {
	active bool
	period uint64
	acc    uint64
}

func (t *redrawTimer) start() {
	if t.active {
		panic("ui: redraw timer already active")
	}
	t.active = true
	t.acc = 0
}

func (t *redrawTimer) stop() {
	if !t.active {
		panic("ui: redraw timer stopped without start")
	}
	t.active = false
}

// tick advances one base tick and reports whether the period elapsed.
func (t *redrawTimer) tick() bool {
	if !t.active {
		return false
	}
	t.acc++
	if t.acc >= t.period {
		t.acc = 0
		return true
	}
	return false
}
