package waveform

// PointBuilder stages breakpoints for one custom waveform in entry order.
// Nothing is sorted until Commit.
type PointBuilder struct {
	staged []Point
}

// Add appends an already validated point.
func (b *PointBuilder) Add(p Point) { b.staged = append(b.staged, p) }

func (b *PointBuilder) Clear() { b.staged = nil }

func (b *PointBuilder) Size() int { return len(b.staged) }

// Points returns a copy of the staged points.
func (b *PointBuilder) Points() []Point {
	out := make([]Point, len(b.staged))
	copy(out, b.staged)
	return out
}

// TakeAndClear hands the staged points over and empties the builder.
func (b *PointBuilder) TakeAndClear() []Point {
	out := b.Points()
	b.staged = nil
	return out
}

// Labels is the display view of the staged list.
func (b *PointBuilder) Labels() []string {
	out := make([]string, len(b.staged))
	for i, p := range b.staged {
		out[i] = p.String()
	}
	return out
}

// Commit turns the staged points into a CustomWaveform and clears the builder.
// On failure the staged points are left untouched.
func (b *PointBuilder) Commit() (CustomWaveform, error) {
	w, err := CommitCustom(b.staged)
	if err != nil {
		return CustomWaveform{}, err
	}
	b.staged = nil
	return w, nil
}
