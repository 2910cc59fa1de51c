package geopack

import (
	"math"

	"github.com/golang/geo/s2"
)

// earthRadius is the mean earth radius in meters, used to convert
// angular distances.
const earthRadius = 6371000.0

// Location is a single measured position. Altitude is optional and
// presence-framed on the wire.
type Location struct {
	// Time is the measurement time in Unix milliseconds, zero when
	// unknown.
	Time int64

	// Lat and Lon are WGS84 degrees.
	Lat float64
	Lon float64

	alt    float64
	hasAlt bool
}

// Altitude returns the altitude in meters and whether one is set.
func (l *Location) Altitude() (float64, bool) { return l.alt, l.hasAlt }

// SetAltitude sets the altitude in meters.
func (l *Location) SetAltitude(v float64) { l.alt, l.hasAlt = v, true }

// ClearAltitude removes the altitude.
func (l *Location) ClearAltitude() { l.alt, l.hasAlt = 0, false }

// LatLng returns the position as an s2.LatLng.
func (l *Location) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(l.Lat, l.Lon)
}

// DistanceTo returns the great-circle distance to other in meters.
func (l *Location) DistanceTo(other Location) float64 {
	return l.LatLng().Distance(other.LatLng()).Radians() * earthRadius
}

func (l *Location) Version() int { return 0 }

func (l *Location) Write(w *Writer) error {
	w.WriteInt64(l.Time)
	w.WriteFloat64(l.Lat)
	w.WriteFloat64(l.Lon)
	w.WriteBool(l.hasAlt)
	if l.hasAlt {
		w.WriteFloat64(l.alt)
	}
	return nil
}

func (l *Location) Read(version int, r *Reader) error {
	ts, err := r.ReadInt64()
	if err != nil {
		return err
	}
	lat, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	lon, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	l.Time, l.Lat, l.Lon = ts, lat, lon

	hasAlt, err := r.ReadBool()
	if err != nil {
		return err
	}
	if !hasAlt {
		l.ClearAltitude()
		return nil
	}
	alt, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	l.SetAltitude(alt)
	return nil
}

// --------------------------------------------------------------------

func writeLocations(w *Writer, locs []Location) error {
	if len(locs) > math.MaxInt32 {
		return encodeErrf(nil, "location count %d exceeds count prefix", len(locs))
	}
	w.WriteInt32(int32(len(locs)))
	for i := range locs {
		if err := w.WriteStorable(&locs[i]); err != nil {
			return err
		}
	}
	return nil
}

func readLocations(r *Reader) ([]Location, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, decodeErrf(r.Pos()-4, errNegativeLength, "location count %d", n)
	}

	locs := make([]Location, 0, min(int(n), maxPrealloc))
	for i := 0; i < int(n); i++ {
		var loc Location
		if err := r.ReadStorable(&loc); err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, nil
}
