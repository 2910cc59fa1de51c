package geopack

// Track is an ordered sequence of recorded positions with optional
// named waypoints. Routes are tracks whose waypoints carry rte
// attributes (AttrRteAction, AttrRteIndex).
type Track struct {
	Entity

	// Points is the recorded polyline.
	Points []Location

	// Waypoints are named markers along the track.
	Waypoints []*Point
}

// NewTrack returns an enabled, visible track with no points.
func NewTrack(name string) *Track {
	t := new(Track)
	t.applyDefaults(name)
	return t
}

// Length returns the track length in meters.
func (t *Track) Length() float64 {
	var total float64
	for i := 1; i < len(t.Points); i++ {
		total += t.Points[i-1].DistanceTo(t.Points[i])
	}
	return total
}

func (t *Track) Version() int { return 0 }

func (t *Track) Write(w *Writer) error {
	if err := t.WriteBase(w); err != nil {
		return err
	}
	if err := writeLocations(w, t.Points); err != nil {
		return err
	}

	w.WriteInt32(int32(len(t.Waypoints)))
	for i, wp := range t.Waypoints {
		if wp == nil {
			return encodeErrf(nil, "nil waypoint at index %d", i)
		}
		if err := w.WriteStorable(wp); err != nil {
			return err
		}
	}
	return nil
}

func (t *Track) Read(version int, r *Reader) error {
	if err := t.ReadBase(r); err != nil {
		return err
	}

	points, err := readLocations(r)
	if err != nil {
		return err
	}
	t.Points = points

	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if n < 0 {
		return decodeErrf(r.Pos()-4, errNegativeLength, "waypoint count %d", n)
	}
	wps := make([]*Point, 0, min(int(n), maxPrealloc))
	for i := 0; i < int(n); i++ {
		wp := new(Point)
		if err := r.ReadStorable(wp); err != nil {
			return err
		}
		wps = append(wps, wp)
	}
	t.Waypoints = wps
	return nil
}
