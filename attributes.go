package geopack

import (
	"math"
	"strconv"
	"strings"
)

// Attribute identifiers. Scalar attributes hold a single value each,
// identifiers within the category range hold repeated values.
const (
	AttrSource      = 0   // single byte, see the Source codes
	AttrStyleName   = 5   // string
	AttrDescription = 30  // string
	AttrComment     = 31  // string
	AttrRteIndex    = 100 // decimal string, point index within a track
	AttrRteDistance = 101 // decimal string, meters along the track
	AttrRteTime     = 102 // decimal string, seconds along the track
	AttrRteAction   = 110 // decimal string of an RteAction code

	AttrEmail           = 1000 // repeatable, "label|value" or "value"
	AttrPhone           = 1001 // repeatable, "label|value" or "value"
	AttrURL             = 1002 // repeatable, "label|value" or "value"
	AttrAttachmentAudio = 1010 // repeatable, URI
	AttrAttachmentPhoto = 1011 // repeatable, URI
	AttrAttachmentVideo = 1012 // repeatable, URI
	AttrAttachmentOther = 1013 // repeatable, URI

	attrCatMin = 1000
	attrCatMax = 1999
)

// LabeledValue is a contact attribute value with an optional label.
type LabeledValue struct {
	Label string
	Value string
}

type attrEntry struct {
	id  int
	val []byte
}

// Attributes is an ordered container of entity attributes keyed by
// numeric identifiers. Entry order is preserved across round-trips.
// Zero-length values are reported as absent by accessors even when
// physically stored. The zero value is an empty container.
type Attributes struct {
	entries []attrEntry
}

// Add stores a single string value under id, replacing any previous
// value. It reports false, leaving the container unchanged, when id is
// negative or reserved for repeatable categories, or when the trimmed
// value is empty.
func (a *Attributes) Add(id int, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return a.AddBytes(id, []byte(value))
}

// AddBytes stores a single raw value under id, replacing any previous
// value. The same id and emptiness rules as Add apply.
func (a *Attributes) AddBytes(id int, value []byte) bool {
	if !scalarID(id) || len(value) == 0 {
		return false
	}
	a.removeAll(id)
	a.entries = append(a.entries, attrEntry{id: id, val: value})
	return true
}

// AddByte stores a single byte value under id.
func (a *Attributes) AddByte(id int, value byte) bool {
	return a.AddBytes(id, []byte{value})
}

// AddInt stores an integer value under id, encoded as a decimal string.
func (a *Attributes) AddInt(id int, value int) bool {
	return a.Add(id, strconv.Itoa(value))
}

// Get returns the stored string value for id, or "" when absent.
func (a *Attributes) Get(id int) string {
	return string(a.lookup(id))
}

// GetBytes returns the stored raw value for id, or nil when absent.
func (a *Attributes) GetBytes(id int) []byte {
	if v := a.lookup(id); len(v) != 0 {
		return v
	}
	return nil
}

// Has reports whether a non-empty value is stored under id.
func (a *Attributes) Has(id int) bool {
	return len(a.lookup(id)) != 0
}

// Remove deletes all values stored under id and returns the first
// removed value as a string, or "" when none was present.
func (a *Attributes) Remove(id int) string {
	return string(a.removeAll(id))
}

// Count returns the number of stored entries.
func (a *Attributes) Count() int { return len(a.entries) }

// --------------------------------------------------------------------

// AddEmail appends an email contact. The label is optional, the value
// is required.
func (a *Attributes) AddEmail(label, value string) bool {
	return a.addCategory(AttrEmail, joinLabeled(label, value))
}

// AddPhone appends a phone contact. The label is optional, the value
// is required.
func (a *Attributes) AddPhone(label, value string) bool {
	return a.addCategory(AttrPhone, joinLabeled(label, value))
}

// AddURL appends a URL. The label is optional, the value is required.
func (a *Attributes) AddURL(label, value string) bool {
	return a.addCategory(AttrURL, joinLabeled(label, value))
}

// AddAudio appends an audio attachment URI.
func (a *Attributes) AddAudio(uri string) bool {
	return a.addCategory(AttrAttachmentAudio, strings.TrimSpace(uri))
}

// AddPhoto appends a photo attachment URI.
func (a *Attributes) AddPhoto(uri string) bool {
	return a.addCategory(AttrAttachmentPhoto, strings.TrimSpace(uri))
}

// AddVideo appends a video attachment URI.
func (a *Attributes) AddVideo(uri string) bool {
	return a.addCategory(AttrAttachmentVideo, strings.TrimSpace(uri))
}

// AddOtherFile appends a generic file attachment URI.
func (a *Attributes) AddOtherFile(uri string) bool {
	return a.addCategory(AttrAttachmentOther, strings.TrimSpace(uri))
}

// Emails returns all stored email contacts in insertion order.
func (a *Attributes) Emails() []LabeledValue { return a.labeled(AttrEmail) }

// Phones returns all stored phone contacts in insertion order.
func (a *Attributes) Phones() []LabeledValue { return a.labeled(AttrPhone) }

// URLs returns all stored URLs in insertion order.
func (a *Attributes) URLs() []LabeledValue { return a.labeled(AttrURL) }

// Attachments returns all stored attachment URIs in insertion order.
func (a *Attributes) Attachments() []string {
	var uris []string
	for _, ent := range a.entries {
		if ent.id >= AttrAttachmentAudio && ent.id <= AttrAttachmentOther && len(ent.val) != 0 {
			uris = append(uris, string(ent.val))
		}
	}
	return uris
}

// --------------------------------------------------------------------

// Version implements Storable.
func (a *Attributes) Version() int { return 0 }

// Write implements Storable.
func (a *Attributes) Write(w *Writer) error {
	if len(a.entries) > math.MaxInt32 {
		return encodeErrf(nil, "attribute count %d exceeds prefix", len(a.entries))
	}
	w.WriteInt32(int32(len(a.entries)))
	for _, ent := range a.entries {
		w.WriteInt32(int32(ent.id))
		if err := w.WriteBytes(ent.val); err != nil {
			return err
		}
	}
	return nil
}

// Read implements Storable.
func (a *Attributes) Read(version int, r *Reader) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if n < 0 {
		return decodeErrf(r.Pos()-4, errNegativeLength, "attribute count %d", n)
	}

	entries := make([]attrEntry, 0, min(int(n), maxPrealloc))
	for i := 0; i < int(n); i++ {
		id, err := r.ReadInt32()
		if err != nil {
			return err
		}
		val, err := r.ReadBytes()
		if err != nil {
			return err
		}
		entries = append(entries, attrEntry{id: int(id), val: val})
	}
	a.entries = entries
	return nil
}

// --------------------------------------------------------------------

func scalarID(id int) bool {
	return id >= 0 && (id < attrCatMin || id > attrCatMax)
}

func (a *Attributes) addCategory(id int, value string) bool {
	if value == "" {
		return false
	}
	a.entries = append(a.entries, attrEntry{id: id, val: []byte(value)})
	return true
}

func (a *Attributes) lookup(id int) []byte {
	for _, ent := range a.entries {
		if ent.id == id {
			return ent.val
		}
	}
	return nil
}

func (a *Attributes) removeAll(id int) []byte {
	var first []byte
	kept := a.entries[:0]
	for _, ent := range a.entries {
		if ent.id == id {
			if first == nil {
				first = ent.val
			}
			continue
		}
		kept = append(kept, ent)
	}
	a.entries = kept
	return first
}

func (a *Attributes) labeled(id int) []LabeledValue {
	var vals []LabeledValue
	for _, ent := range a.entries {
		if ent.id == id && len(ent.val) != 0 {
			vals = append(vals, splitLabeled(string(ent.val)))
		}
	}
	return vals
}

func joinLabeled(label, value string) string {
	label, value = strings.TrimSpace(label), strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if label == "" {
		return value
	}
	return label + "|" + value
}

func splitLabeled(s string) LabeledValue {
	if i := strings.IndexByte(s, '|'); i >= 0 {
		return LabeledValue{Label: s[:i], Value: s[i+1:]}
	}
	return LabeledValue{Value: s}
}
