package geopack

import (
	"strconv"
	"time"
)

// ReadWriteMode advises whether an entity may be modified. It is
// process-local and never persisted.
type ReadWriteMode byte

// Supported modes. ReadWrite is the zero value and the default.
const (
	ReadWrite ReadWriteMode = iota
	ReadOnly
)

const (
	stateEnabled  = 1 << 0
	stateVisible  = 1 << 1
	stateSelected = 1 << 2
)

// Entity is the shared core of geographic items. It owns identity, a
// packed display state register, the optional attribute container and
// the two style slots. Concrete types embed it and serialize it via
// WriteBase/ReadBase as the fixed prefix of their own encoding.
type Entity struct {
	// ID is the caller-assigned identifier. Uniqueness is a caller
	// invariant, the codec does not enforce it.
	ID int64

	// Name is the display name.
	Name string

	// TimeCreated is the creation time in Unix milliseconds.
	TimeCreated int64

	// Mode advises whether the entity may be modified. Not persisted.
	Mode ReadWriteMode

	// Tag is transient scratch storage. Never traverses the wire.
	Tag any

	// Dist is transient scratch space for spatial sorting. Never
	// traverses the wire.
	Dist float64

	// StyleNormal and StyleHighlight hold the default and the
	// highlighted rendering style. Either may be nil.
	StyleNormal    *Style
	StyleHighlight *Style

	state byte
	extra *Attributes
	tags  map[string]any
}

func (e *Entity) applyDefaults(name string) {
	e.Name = name
	e.TimeCreated = time.Now().UnixMilli()
	e.state = stateEnabled | stateVisible
}

// --------------------------------------------------------------------

// IsEnabled reports whether the entity participates in its dataset.
func (e *Entity) IsEnabled() bool {
	return e.state&stateEnabled != 0
}

// SetEnabled sets or clears the enabled bit.
func (e *Entity) SetEnabled(v bool) { e.setState(stateEnabled, v) }

// IsVisible reports whether the entity is enabled and should be drawn.
func (e *Entity) IsVisible() bool {
	return e.state&(stateEnabled|stateVisible) == stateEnabled|stateVisible
}

// SetVisible sets or clears the visible bit. The bit is stored as-is,
// IsVisible derives the effective value at read time.
func (e *Entity) SetVisible(v bool) { e.setState(stateVisible, v) }

// IsSelected reports whether the entity is visible and selected.
func (e *Entity) IsSelected() bool {
	const mask = stateEnabled | stateVisible | stateSelected
	return e.state&mask == mask
}

// SetSelected sets or clears the selected bit.
func (e *Entity) SetSelected(v bool) { e.setState(stateSelected, v) }

func (e *Entity) setState(bit byte, v bool) {
	if v {
		e.state |= bit
	} else {
		e.state &^= bit
	}
}

// --------------------------------------------------------------------

// TagFor returns the transient value stored under key, or nil.
func (e *Entity) TagFor(key string) any {
	if key == "" {
		logWarn("geopack: tag key must not be empty")
		return nil
	}
	return e.tags[key]
}

// SetTagFor stores a transient value under key. A nil value removes
// the entry. Empty keys are reported as a no-op with a diagnostic.
func (e *Entity) SetTagFor(key string, value any) {
	if key == "" {
		logWarn("geopack: tag key must not be empty")
		return
	}
	if value == nil {
		delete(e.tags, key)
		return
	}
	if e.tags == nil {
		e.tags = make(map[string]any)
	}
	e.tags[key] = value
}

// --------------------------------------------------------------------

// HasExtraData reports whether an attribute container is present.
func (e *Entity) HasExtraData() bool { return e.extra != nil }

// ExtraData returns the attribute container, or nil when absent.
func (e *Entity) ExtraData() *Attributes { return e.extra }

// SetExtraData replaces the attribute container.
func (e *Entity) SetExtraData(extra *Attributes) { e.extra = extra }

// AddParameter stores a single string attribute, replacing any
// previous value under id. It reports whether the value was stored, a
// rejected insert leaves the entity unchanged.
func (e *Entity) AddParameter(id int, value string) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.Add(id, value), created)
}

// AddParameterBytes stores a single raw attribute under id.
func (e *Entity) AddParameterBytes(id int, value []byte) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddBytes(id, value), created)
}

// AddParameterByte stores a single byte attribute under id.
func (e *Entity) AddParameterByte(id int, value byte) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddByte(id, value), created)
}

// AddParameterInt stores an integer attribute under id, encoded as a
// decimal string.
func (e *Entity) AddParameterInt(id int, value int) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddInt(id, value), created)
}

// Parameter returns the string attribute stored under id, or "" when
// absent.
func (e *Entity) Parameter(id int) string {
	if e.extra == nil {
		return ""
	}
	return e.extra.Get(id)
}

// ParameterBytes returns the raw attribute stored under id, or nil
// when absent.
func (e *Entity) ParameterBytes(id int) []byte {
	if e.extra == nil {
		return nil
	}
	return e.extra.GetBytes(id)
}

// HasParameter reports whether a non-empty attribute is stored under
// id.
func (e *Entity) HasParameter(id int) bool {
	return e.extra != nil && e.extra.Has(id)
}

// RemoveParameter deletes the attribute stored under id and returns
// the removed value, or "" when none was present.
func (e *Entity) RemoveParameter(id int) string {
	if e.extra == nil {
		return ""
	}
	return e.extra.Remove(id)
}

// AddEmail appends an email contact. The label is optional.
func (e *Entity) AddEmail(label, email string) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddEmail(label, email), created)
}

// AddPhone appends a phone contact. The label is optional.
func (e *Entity) AddPhone(label, phone string) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddPhone(label, phone), created)
}

// AddURL appends a URL. The label is optional.
func (e *Entity) AddURL(label, url string) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddURL(label, url), created)
}

// AddAttachmentAudio appends an audio attachment URI.
func (e *Entity) AddAttachmentAudio(uri string) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddAudio(uri), created)
}

// AddAttachmentPhoto appends a photo attachment URI.
func (e *Entity) AddAttachmentPhoto(uri string) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddPhoto(uri), created)
}

// AddAttachmentVideo appends a video attachment URI.
func (e *Entity) AddAttachmentVideo(uri string) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddVideo(uri), created)
}

// AddAttachmentOther appends a generic file attachment URI.
func (e *Entity) AddAttachmentOther(uri string) bool {
	created := e.ensureExtra()
	return e.afterAdd(e.extra.AddOtherFile(uri), created)
}

// ensureExtra creates the attribute container when absent and reports
// whether it was just created.
func (e *Entity) ensureExtra() bool {
	if e.extra == nil {
		e.extra = new(Attributes)
		return true
	}
	return false
}

// afterAdd reverts a just-created container after a rejected insert,
// so a failed add never leaves an observable empty container behind.
func (e *Entity) afterAdd(added, created bool) bool {
	if !added && created {
		e.extra = nil
	}
	return added
}

// --------------------------------------------------------------------

// ParameterSource returns the source code, or SourceUnknown when unset
// or not a single byte.
func (e *Entity) ParameterSource() byte {
	if e.extra == nil {
		return SourceUnknown
	}
	if v := e.extra.GetBytes(AttrSource); len(v) == 1 {
		return v[0]
	}
	return SourceUnknown
}

// SetParameterSource stores the source code.
func (e *Entity) SetParameterSource(src byte) {
	e.AddParameterByte(AttrSource, src)
}

// IsParameterSource reports whether the stored source code matches
// src.
func (e *Entity) IsParameterSource(src byte) bool {
	return e.ParameterSource() == src
}

// RemoveParameterSource deletes the stored source code.
func (e *Entity) RemoveParameterSource() {
	e.RemoveParameter(AttrSource)
}

// ParameterStyleName returns the style name, or "" when unset.
func (e *Entity) ParameterStyleName() string {
	return e.Parameter(AttrStyleName)
}

// SetParameterStyleName stores the style name.
func (e *Entity) SetParameterStyleName(name string) {
	e.AddParameter(AttrStyleName, name)
}

// RemoveParameterStyleName deletes the stored style name.
func (e *Entity) RemoveParameterStyleName() {
	e.RemoveParameter(AttrStyleName)
}

// ParameterDescription returns the description, or "" when unset.
func (e *Entity) ParameterDescription() string {
	return e.Parameter(AttrDescription)
}

// SetParameterDescription stores the description.
func (e *Entity) SetParameterDescription(desc string) {
	e.AddParameter(AttrDescription, desc)
}

// HasParameterDescription reports whether a description is stored.
func (e *Entity) HasParameterDescription() bool {
	return e.ParameterDescription() != ""
}

// ParameterRteAction returns the navigation action, or
// RteActionUndefined when unset or unparseable.
func (e *Entity) ParameterRteAction() RteAction {
	if v := e.Parameter(AttrRteAction); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			return RteActionByID(id)
		}
	}
	return RteActionUndefined
}

// SetParameterRteAction stores the navigation action. Storing
// RteActionUndefined is reported as a no-op with a diagnostic.
func (e *Entity) SetParameterRteAction(action RteAction) {
	if action == RteActionUndefined {
		logWarn("geopack: attempt to store an undefined rte action")
		return
	}
	e.AddParameterInt(AttrRteAction, int(action))
}

// ParameterRteIndex returns the point index within its track, or -1
// when unset or unparseable.
func (e *Entity) ParameterRteIndex() int {
	if v := e.Parameter(AttrRteIndex); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return -1
}

// SetParameterRteIndex stores the point index within its track.
func (e *Entity) SetParameterRteIndex(index int) {
	e.AddParameterInt(AttrRteIndex, index)
}

// --------------------------------------------------------------------

// WriteBase appends the shared entity prefix: identity fields, the
// state register, the presence-framed attribute block and the two
// presence-framed style blocks. Concrete types must call it first from
// Write and append their own fields after.
func (e *Entity) WriteBase(w *Writer) error {
	w.WriteInt64(e.ID)
	if err := w.WriteString(e.Name); err != nil {
		return err
	}
	w.WriteInt64(e.TimeCreated)
	w.WriteByte(e.state)

	if err := e.writeExtra(w); err != nil {
		return err
	}
	return e.writeStyles(w)
}

// ReadBase consumes the shared entity prefix written by WriteBase.
// Concrete types must call it first from Read.
func (e *Entity) ReadBase(r *Reader) error {
	id, err := r.ReadInt64()
	if err != nil {
		return err
	}
	name, err := r.ReadString()
	if err != nil {
		return err
	}
	ts, err := r.ReadInt64()
	if err != nil {
		return err
	}
	state, err := r.ReadByte()
	if err != nil {
		return err
	}
	e.ID, e.Name, e.TimeCreated, e.state = id, name, ts, state

	if err := e.readExtra(r); err != nil {
		return err
	}
	return e.readStyles(r)
}

func (e *Entity) writeExtra(w *Writer) error {
	if e.extra != nil && e.extra.Count() > 0 {
		w.WriteBool(true)
		return w.WriteStorable(e.extra)
	}
	w.WriteBool(false)
	return nil
}

func (e *Entity) readExtra(r *Reader) error {
	ok, err := r.ReadBool()
	if err != nil {
		return err
	}
	if !ok {
		e.extra = nil
		return nil
	}

	extra := new(Attributes)
	if err := r.ReadStorable(extra); err != nil {
		return err
	}
	e.extra = extra
	return nil
}

func (e *Entity) writeStyles(w *Writer) error {
	w.WriteBool(e.StyleNormal != nil)
	if e.StyleNormal != nil {
		if err := w.WriteStorable(e.StyleNormal); err != nil {
			return err
		}
	}

	w.WriteBool(e.StyleHighlight != nil)
	if e.StyleHighlight != nil {
		if err := w.WriteStorable(e.StyleHighlight); err != nil {
			return err
		}
	}
	return nil
}

func (e *Entity) readStyles(r *Reader) error {
	e.StyleNormal, e.StyleHighlight = nil, nil

	if ok, err := r.ReadBool(); err != nil {
		return err
	} else if ok {
		e.StyleNormal = new(Style)
		if err := r.ReadStorable(e.StyleNormal); err != nil {
			return err
		}
	}

	if ok, err := r.ReadBool(); err != nil {
		return err
	} else if ok {
		e.StyleHighlight = new(Style)
		if err := r.ReadStorable(e.StyleHighlight); err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------------------------

// ExtraDataRaw returns the presence-framed attribute block exactly as
// persisted inside entity blobs. Other subsystems use the raw pair to
// move auxiliary data without knowing its layout. It returns nil when
// encoding fails.
func (e *Entity) ExtraDataRaw() []byte {
	w := NewWriter()
	if err := e.writeExtra(w); err != nil {
		logWarn("geopack: failed to encode extra data block", "err", err)
		return nil
	}
	return w.Bytes()
}

// SetExtraDataRaw replaces the attribute container from a block
// obtained via ExtraDataRaw. Corrupt input degrades the container to
// absent with a diagnostic, it is never reported as an error.
func (e *Entity) SetExtraDataRaw(data []byte) {
	if err := e.readExtra(NewReader(data)); err != nil {
		e.extra = nil
		logWarn("geopack: dropping corrupt extra data block", "err", err)
	}
}

// StylesRaw returns both presence-framed style blocks exactly as
// persisted inside entity blobs, or nil when encoding fails.
func (e *Entity) StylesRaw() []byte {
	w := NewWriter()
	if err := e.writeStyles(w); err != nil {
		logWarn("geopack: failed to encode style blocks", "err", err)
		return nil
	}
	return w.Bytes()
}

// SetStylesRaw replaces both styles from a block obtained via
// StylesRaw. Corrupt input degrades the styles to absent with a
// diagnostic, it is never reported as an error.
func (e *Entity) SetStylesRaw(data []byte) {
	if err := e.readStyles(NewReader(data)); err != nil {
		e.StyleNormal, e.StyleHighlight = nil, nil
		logWarn("geopack: dropping corrupt style blocks", "err", err)
	}
}
