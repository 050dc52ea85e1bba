package game

// Key is one of the four logical inputs the simulation understands.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyEsc
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyEsc:
		return "esc"
	}
	return "unknown"
}

// Keys is the set of currently held keys.
type Keys uint8

func (ks Keys) Has(k Key) bool { return ks&(1<<k) != 0 }

// With returns ks with k set to down.
func (ks Keys) With(k Key, down bool) Keys {
	if down {
		return ks | 1<<k
	}
	return ks &^ (1 << k)
}

// KeysOf builds a held set from a list of keys.
func KeysOf(keys ...Key) Keys {
	var ks Keys
	for _, k := range keys {
		ks = ks.With(k, true)
	}
	return ks
}

// Input remembers the previous tick's held set for edge detection.
type Input struct {
	prev Keys
	cur  Keys
}

// Update latches a new held set; call once per tick before querying.
func (in *Input) Update(keys Keys) {
	in.prev = in.cur
	in.cur = keys
}

func (in *Input) Held(k Key) bool { return in.cur.Has(k) }

// JustPressed reports a rising edge: held now, not held last tick.
func (in *Input) JustPressed(k Key) bool {
	return in.cur.Has(k) && !in.prev.Has(k)
}
