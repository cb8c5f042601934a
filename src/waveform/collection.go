package waveform

// Collection is the session's ordered set of waveforms awaiting rendering.
// Standard and custom waveforms are kept in separate insertion-ordered lists.
type Collection struct {
	standard []StandardWaveform
	custom   []CustomWaveform
}

func NewCollection() *Collection { return &Collection{} }

func (c *Collection) AddStandard(w StandardWaveform) { c.standard = append(c.standard, w) }

func (c *Collection) AddCustom(w CustomWaveform) { c.custom = append(c.custom, w) }

// Clear empties both lists.
func (c *Collection) Clear() {
	c.standard = nil
	c.custom = nil
}

func (c *Collection) IsEmpty() bool { return len(c.standard) == 0 && len(c.custom) == 0 }

// TotalCount is the number of panels a render will produce.
func (c *Collection) TotalCount() int { return len(c.standard) + len(c.custom) }

func (c *Collection) StandardCount() int { return len(c.standard) }

func (c *Collection) CustomCount() int { return len(c.custom) }

// Standard returns a copy of the standard waveforms in insertion order.
func (c *Collection) Standard() []StandardWaveform {
	out := make([]StandardWaveform, len(c.standard))
	copy(out, c.standard)
	return out
}

// Custom returns a copy of the custom waveforms in insertion order.
func (c *Collection) Custom() []CustomWaveform {
	out := make([]CustomWaveform, len(c.custom))
	copy(out, c.custom)
	return out
}

// Waveforms returns panel order: every standard waveform, then every custom one.
func (c *Collection) Waveforms() []Waveform {
	out := make([]Waveform, 0, c.TotalCount())
	for _, w := range c.standard {
		out = append(out, w)
	}
	for _, w := range c.custom {
		out = append(out, w)
	}
	return out
}
