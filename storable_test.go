package geopack_test

import (
	"github.com/bsm/geopack"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Marshal/Unmarshal", func() {
	It("should round-trip objects", func() {
		src := &geopack.Location{Time: 1500000000000, Lat: 50.0755, Lon: 14.4378}
		src.SetAltitude(235.5)

		var dst geopack.Location
		Expect(reencode(src, &dst)).To(Succeed())
		Expect(dst).To(Equal(*src))
	})

	It("should be deterministic", func() {
		src := &geopack.Location{Time: 42, Lat: 1, Lon: 2}
		b1, err := geopack.Marshal(src)
		Expect(err).NotTo(HaveOccurred())
		b2, err := geopack.Marshal(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(b1).To(Equal(b2))
	})

	It("should reject trailing bytes", func() {
		blob, err := geopack.Marshal(&geopack.Location{Time: 7, Lat: 1, Lon: 2})
		Expect(err).NotTo(HaveOccurred())

		err = geopack.Unmarshal(append(blob, 0), new(geopack.Location))
		Expect(err).To(MatchError(`geopack: 1 trailing bytes after object at offset 33`))
	})

	It("should read blobs written by newer schema versions", func() {
		blob, err := geopack.Marshal(&locationNext{
			Location: geopack.Location{Time: 99, Lat: 48.1, Lon: 17.1},
			Accuracy: 3.5,
		})
		Expect(err).NotTo(HaveOccurred())

		var loc geopack.Location
		Expect(geopack.Unmarshal(blob, &loc)).To(Succeed())
		Expect(loc.Time).To(Equal(int64(99)))
		Expect(loc.Lat).To(Equal(48.1))
		Expect(loc.Lon).To(Equal(17.1))
		_, hasAlt := loc.Altitude()
		Expect(hasAlt).To(BeFalse())
	})
})

var _ = Describe("MarshalList/UnmarshalList", func() {
	It("should round-trip batches in order", func() {
		src := []*geopack.Point{
			seedPoint("one", 50.1, 14.1),
			seedPoint("two", 50.2, 14.2),
			seedPoint("three", 50.3, 14.3),
		}
		blob, err := geopack.MarshalList(src)
		Expect(err).NotTo(HaveOccurred())

		dst, err := geopack.UnmarshalList[geopack.Point](blob)
		Expect(err).NotTo(HaveOccurred())
		Expect(dst).To(HaveLen(3))
		Expect(dst[0].Name).To(Equal("one"))
		Expect(dst[1].Name).To(Equal("two"))
		Expect(dst[2].Name).To(Equal("three"))
	})

	It("should round-trip empty batches", func() {
		var src []*geopack.Point
		blob, err := geopack.MarshalList(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(blob).To(Equal([]byte{0, 0, 0, 0}))

		dst, err := geopack.UnmarshalList[geopack.Point](blob)
		Expect(err).NotTo(HaveOccurred())
		Expect(dst).To(BeEmpty())
	})

	It("should reject nil items", func() {
		_, err := geopack.MarshalList([]*geopack.Point{seedPoint("ok", 1, 1), nil})
		Expect(err).To(MatchError(`geopack: nil item at index 1`))
	})

	It("should reject negative counts", func() {
		_, err := geopack.UnmarshalList[geopack.Point]([]byte{255, 255, 255, 255})
		Expect(err).To(MatchError(`geopack: batch count -1 at offset 0: negative length prefix`))
	})

	It("should not allocate ahead of truncated counts", func() {
		_, err := geopack.UnmarshalList[geopack.Point]([]byte{127, 255, 255, 255})
		beDecodeError(err)
	})

	It("should abort the whole batch on a malformed element", func() {
		blob, err := geopack.MarshalList([]*geopack.Point{
			seedPoint("one", 50.1, 14.1),
			seedPoint("two", 50.2, 14.2),
		})
		Expect(err).NotTo(HaveOccurred())

		items, err := geopack.UnmarshalList[geopack.Point](blob[:len(blob)-3])
		beDecodeError(err)
		Expect(items).To(BeNil())
	})

	It("should reject trailing bytes", func() {
		blob, err := geopack.MarshalList([]*geopack.Point{seedPoint("one", 50.1, 14.1)})
		Expect(err).NotTo(HaveOccurred())

		_, err = geopack.UnmarshalList[geopack.Point](append(blob, 1, 2))
		beDecodeError(err)
	})
})

// --------------------------------------------------------------------

// locationNext simulates a future schema revision which appends an
// accuracy field to the location body.
type locationNext struct {
	geopack.Location
	Accuracy float32
}

func (l *locationNext) Version() int { return 1 }

func (l *locationNext) Write(w *geopack.Writer) error {
	if err := l.Location.Write(w); err != nil {
		return err
	}
	w.WriteFloat32(l.Accuracy)
	return nil
}
