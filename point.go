package geopack

// Point is a single named place.
type Point struct {
	Entity

	// Loc is the point position.
	Loc Location
}

// NewPoint returns an enabled, visible point at loc.
func NewPoint(name string, loc Location) *Point {
	p := &Point{Loc: loc}
	p.applyDefaults(name)
	return p
}

func (p *Point) Version() int { return 0 }

func (p *Point) Write(w *Writer) error {
	if err := p.WriteBase(w); err != nil {
		return err
	}
	return w.WriteStorable(&p.Loc)
}

func (p *Point) Read(version int, r *Reader) error {
	if err := p.ReadBase(r); err != nil {
		return err
	}
	return r.ReadStorable(&p.Loc)
}
