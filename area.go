package geopack

import (
	"github.com/golang/geo/s2"
)

// Area is a closed polygon region. The ring is implicitly closed and
// wound counter-clockwise, the first point is not repeated at the end.
type Area struct {
	Entity

	// Points is the polygon ring.
	Points []Location
}

// NewArea returns an enabled, visible area over the given ring.
func NewArea(name string, points ...Location) *Area {
	a := &Area{Points: points}
	a.applyDefaults(name)
	return a
}

// Contains reports whether loc lies inside the polygon. Rings with
// fewer than three points contain nothing.
func (a *Area) Contains(loc Location) bool {
	if len(a.Points) < 3 {
		return false
	}

	pts := make([]s2.Point, 0, len(a.Points))
	for i := range a.Points {
		pts = append(pts, s2.PointFromLatLng(a.Points[i].LatLng()))
	}
	return s2.LoopFromPoints(pts).ContainsPoint(s2.PointFromLatLng(loc.LatLng()))
}

func (a *Area) Version() int { return 0 }

func (a *Area) Write(w *Writer) error {
	if err := a.WriteBase(w); err != nil {
		return err
	}
	return writeLocations(w, a.Points)
}

func (a *Area) Read(version int, r *Reader) error {
	if err := a.ReadBase(r); err != nil {
		return err
	}

	points, err := readLocations(r)
	if err != nil {
		return err
	}
	a.Points = points
	return nil
}
