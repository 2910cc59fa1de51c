package geopack

// Style describes how an entity is rendered. Both sub-blocks are
// optional and presence-framed on the wire.
type Style struct {
	Name string
	Line *LineStyle
	Poly *PolyStyle
}

// LineStyle describes stroke rendering.
type LineStyle struct {
	Color uint32 // ARGB
	Width float32
}

// PolyStyle describes area fill rendering.
type PolyStyle struct {
	Color   uint32 // ARGB
	Fill    bool
	Outline bool
}

// Version implements Storable.
func (s *Style) Version() int { return 0 }

// Write implements Storable.
func (s *Style) Write(w *Writer) error {
	if err := w.WriteString(s.Name); err != nil {
		return err
	}

	w.WriteBool(s.Line != nil)
	if s.Line != nil {
		if err := w.WriteStorable(s.Line); err != nil {
			return err
		}
	}

	w.WriteBool(s.Poly != nil)
	if s.Poly != nil {
		if err := w.WriteStorable(s.Poly); err != nil {
			return err
		}
	}
	return nil
}

// Read implements Storable.
func (s *Style) Read(version int, r *Reader) error {
	name, err := r.ReadString()
	if err != nil {
		return err
	}
	s.Name, s.Line, s.Poly = name, nil, nil

	if ok, err := r.ReadBool(); err != nil {
		return err
	} else if ok {
		s.Line = new(LineStyle)
		if err := r.ReadStorable(s.Line); err != nil {
			return err
		}
	}

	if ok, err := r.ReadBool(); err != nil {
		return err
	} else if ok {
		s.Poly = new(PolyStyle)
		if err := r.ReadStorable(s.Poly); err != nil {
			return err
		}
	}
	return nil
}

func (s *LineStyle) Version() int { return 0 }

func (s *LineStyle) Write(w *Writer) error {
	w.WriteInt32(int32(s.Color))
	w.WriteFloat32(s.Width)
	return nil
}

func (s *LineStyle) Read(version int, r *Reader) error {
	color, err := r.ReadInt32()
	if err != nil {
		return err
	}
	width, err := r.ReadFloat32()
	if err != nil {
		return err
	}
	s.Color, s.Width = uint32(color), width
	return nil
}

func (s *PolyStyle) Version() int { return 0 }

func (s *PolyStyle) Write(w *Writer) error {
	w.WriteInt32(int32(s.Color))
	w.WriteBool(s.Fill)
	w.WriteBool(s.Outline)
	return nil
}

func (s *PolyStyle) Read(version int, r *Reader) error {
	color, err := r.ReadInt32()
	if err != nil {
		return err
	}
	fill, err := r.ReadBool()
	if err != nil {
		return err
	}
	outline, err := r.ReadBool()
	if err != nil {
		return err
	}
	s.Color, s.Fill, s.Outline = uint32(color), fill, outline
	return nil
}
