package geopack

// Circle is a circular region around a center position.
type Circle struct {
	Entity

	// Center is the circle center.
	Center Location

	// Radius is in meters, always positive.
	Radius float32

	// Precise marks the circle as an exact geodesic shape rather than
	// a drawing approximation.
	Precise bool
}

// NewCircle returns an enabled, visible circle. The radius must be
// positive.
func NewCircle(name string, center Location, radius float32) (*Circle, error) {
	if radius <= 0 {
		return nil, encodeErrf(nil, "circle radius %v must be positive", radius)
	}
	c := &Circle{Center: center, Radius: radius}
	c.applyDefaults(name)
	return c, nil
}

// Contains reports whether loc lies within the circle.
func (c *Circle) Contains(loc Location) bool {
	return c.Center.DistanceTo(loc) <= float64(c.Radius)
}

func (c *Circle) Version() int { return 0 }

func (c *Circle) Write(w *Writer) error {
	if err := c.WriteBase(w); err != nil {
		return err
	}
	if err := w.WriteStorable(&c.Center); err != nil {
		return err
	}
	w.WriteFloat32(c.Radius)
	w.WriteBool(c.Precise)
	return nil
}

func (c *Circle) Read(version int, r *Reader) error {
	if err := c.ReadBase(r); err != nil {
		return err
	}
	if err := r.ReadStorable(&c.Center); err != nil {
		return err
	}

	radius, err := r.ReadFloat32()
	if err != nil {
		return err
	}
	precise, err := r.ReadBool()
	if err != nil {
		return err
	}
	c.Radius, c.Precise = radius, precise
	return nil
}
