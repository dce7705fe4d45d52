package component

// Clip is one animation track of a model. Time loops over Duration while the
// clip is enabled.
type Clip struct {
	Duration float64
	Time     float64
	Enabled  bool
}

// Animator stands in for a model's animation mixer.
type Animator struct {
	Clips   map[string]*Clip
	Current string
	// Paused animators are skipped by Advance callers; the player pauses
	// while the drone has control.
	Paused bool
}

var AnimatorComponent = NewComponent[Animator]()

// NewAnimator creates an animator with every clip disabled.
func NewAnimator(durations map[string]float64) *Animator {
	a := &Animator{Clips: make(map[string]*Clip, len(durations))}
	for name, d := range durations {
		a.Clips[name] = &Clip{Duration: d}
	}
	return a
}

// SetAnimation disables every clip, then resets and enables name. It reports
// false when the model has no such clip.
func (a *Animator) SetAnimation(name string) bool {
	if a == nil {
		return false
	}
	clip, ok := a.Clips[name]
	if !ok {
		return false
	}
	for _, c := range a.Clips {
		c.Enabled = false
	}
	clip.Enabled = true
	clip.Time = 0
	a.Current = name
	return true
}

// Advance moves enabled clips forward by dt.
func (a *Animator) Advance(dt float64) {
	if a == nil || dt <= 0 {
		return
	}
	for _, c := range a.Clips {
		if !c.Enabled {
			continue
		}
		c.Time += dt
		if c.Duration > 0 {
			for c.Time >= c.Duration {
				c.Time -= c.Duration
			}
		}
	}
}
