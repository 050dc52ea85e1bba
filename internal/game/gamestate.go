package game

// Sim is one self-contained simulation: the dolphin, its splash, the sea
// and the camera. Independent Sims share nothing but immutable tables.
type Sim struct {
	Dolphin *Dolphin
	Splash  Splash
	Water   Water
	Camera  Camera
	Bus     *EventBus

	Tick      uint64
	Crossings uint64

	input Input
	rng   *Rand
}

// NewSim places the dolphin at (0, StartY) and wires the splash to the
// crossing events. The seed drives every burst's particle layout.
func NewSim(seed uint64) *Sim {
	s := &Sim{
		Dolphin: NewDolphin(0, StartY),
		Bus:     NewEventBus(),
		rng:     NewRand(seed),
	}
	s.Camera.Follow(s.Dolphin)
	s.Bus.SubscribeCrossings(func(e Event) {
		s.Crossings++
		s.Splash.Spawn(s.rng.Uint32(), e.X, e.Impulse)
	})
	return s
}

// Step integrates one tick of physics with the given held keys.
func (s *Sim) Step(keys Keys) {
	s.input.Update(keys)
	if cr, ok := s.Dolphin.Step(&s.input); ok {
		e := Event{Type: EventWaterExit, Tick: s.Tick, X: cr.X, Impulse: cr.Impulse}
		if cr.Entered {
			e.Type = EventWaterEntry
		}
		s.Bus.Emit(e)
	}
	s.Water.Advance()
	s.Camera.Follow(s.Dolphin)
	s.Tick++
}

// Draw paints the frame: sea and sky first, then the dolphin, then spray.
// Drawing the splash also ages it by one tick.
func (s *Sim) Draw(buf *Buffer, scratch []float64) []float64 {
	s.Water.Render(buf, s.Camera)
	scratch = DrawDolphin(buf, s.Dolphin, scratch)
	s.Splash.Update(buf, s.Camera)
	return scratch
}
