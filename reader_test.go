package geopack_test

import (
	"errors"

	"github.com/bsm/geopack"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reader", func() {
	It("should mirror the writer", func() {
		w := geopack.NewWriter()
		w.WriteBool(true)
		Expect(w.WriteByte(42)).To(Succeed())
		w.WriteInt32(-75000)
		w.WriteInt64(1600000000000)
		w.WriteFloat32(2.5)
		w.WriteFloat64(-14.4378)
		Expect(w.WriteString("žluťoučký kůň")).To(Succeed())
		Expect(w.WriteBytes([]byte{0, 1, 2})).To(Succeed())

		r := geopack.NewReader(w.Bytes())
		Expect(r.ReadBool()).To(BeTrue())
		Expect(r.ReadByte()).To(Equal(byte(42)))
		Expect(r.ReadInt32()).To(Equal(int32(-75000)))
		Expect(r.ReadInt64()).To(Equal(int64(1600000000000)))
		Expect(r.ReadFloat32()).To(Equal(float32(2.5)))
		Expect(r.ReadFloat64()).To(Equal(-14.4378))
		Expect(r.ReadString()).To(Equal("žluťoučký kůň"))
		Expect(r.ReadBytes()).To(Equal([]byte{0, 1, 2}))
		Expect(r.Remaining()).To(Equal(0))
	})

	It("should track position", func() {
		r := geopack.NewReader([]byte{0, 0, 0, 1, 9})
		Expect(r.Pos()).To(Equal(0))
		Expect(r.Remaining()).To(Equal(5))

		Expect(r.ReadInt32()).To(Equal(int32(1)))
		Expect(r.Pos()).To(Equal(4))
		Expect(r.Remaining()).To(Equal(1))
	})

	It("should skip", func() {
		r := geopack.NewReader([]byte{1, 2, 3, 4})
		Expect(r.Skip(3)).To(Succeed())
		Expect(r.ReadByte()).To(Equal(byte(4)))

		Expect(r.Skip(1)).To(MatchError(`geopack: need 1 bytes, have 0 at offset 4: unexpected end of data`))
		Expect(r.Skip(-1)).To(MatchError(`geopack: skip of -1 bytes at offset 4: negative length prefix`))
	})

	It("should detach byte arrays from the input buffer", func() {
		w := geopack.NewWriter()
		Expect(w.WriteBytes([]byte{7, 7})).To(Succeed())

		src := w.Bytes()
		r := geopack.NewReader(src)
		out, err := r.ReadBytes()
		Expect(err).NotTo(HaveOccurred())

		src[4] = 9
		Expect(out).To(Equal([]byte{7, 7}))
	})

	Describe("malformed input", func() {
		It("should fail on truncated fixed-width fields", func() {
			_, err := geopack.NewReader([]byte{0, 0}).ReadInt32()
			Expect(err).To(MatchError(`geopack: need 4 bytes, have 2 at offset 0: unexpected end of data`))

			_, err = geopack.NewReader(nil).ReadByte()
			beDecodeError(err)

			_, err = geopack.NewReader([]byte{0, 0, 0, 0}).ReadInt64()
			beDecodeError(err)
		})

		It("should fail on negative length prefixes", func() {
			_, err := geopack.NewReader([]byte{255, 255, 255, 255}).ReadString()
			Expect(err).To(MatchError(`geopack: string length -1 at offset 0: negative length prefix`))

			_, err = geopack.NewReader([]byte{255, 255, 255, 254}).ReadBytes()
			Expect(err).To(MatchError(`geopack: byte array length -2 at offset 0: negative length prefix`))
		})

		It("should fail on overlong length prefixes", func() {
			_, err := geopack.NewReader([]byte{0, 0, 0, 5, 'a'}).ReadString()
			Expect(err).To(MatchError(`geopack: need 5 bytes, have 1 at offset 4: unexpected end of data`))
		})

		It("should report the failure offset", func() {
			r := geopack.NewReader([]byte{1, 255, 255, 255, 255})
			_, err := r.ReadBool()
			Expect(err).NotTo(HaveOccurred())

			_, err = r.ReadString()
			var de *geopack.DecodeError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Off).To(Equal(1))
		})
	})

	Describe("ReadStorable", func() {
		It("should read framed objects", func() {
			w := geopack.NewWriter()
			Expect(w.WriteStorable(&geopack.LineStyle{Color: 0xff0000, Width: 2})).To(Succeed())

			var ls geopack.LineStyle
			r := geopack.NewReader(w.Bytes())
			Expect(r.ReadStorable(&ls)).To(Succeed())
			Expect(ls).To(Equal(geopack.LineStyle{Color: 0xff0000, Width: 2}))
			Expect(r.Remaining()).To(Equal(0))
		})

		It("should skip unknown trailing fields", func() {
			blob := []byte{
				0, 0, 0, 9, // a future version
				0, 0, 0, 10, // body size
				0, 0, 0, 1, // color
				0x40, 0, 0, 0, // width
				7, 7, // fields this reader does not know
				0, 0, 0, 3, // next field after the frame
			}

			var ls geopack.LineStyle
			r := geopack.NewReader(blob)
			Expect(r.ReadStorable(&ls)).To(Succeed())
			Expect(ls).To(Equal(geopack.LineStyle{Color: 1, Width: 2}))
			Expect(r.ReadInt32()).To(Equal(int32(3)))
		})

		It("should confine objects to their frame", func() {
			blob := []byte{
				0, 0, 0, 0,
				0, 0, 0, 2, // frame claims 2 bytes
				0, 0, 0xaa, 0xbb, // buffer holds more
			}
			err := geopack.NewReader(blob).ReadStorable(new(geopack.LineStyle))
			Expect(err).To(MatchError(`geopack: need 4 bytes, have 2 at offset 8: unexpected end of data`))
		})

		It("should fail on invalid versions", func() {
			blob := []byte{255, 255, 255, 254, 0, 0, 0, 0}
			err := geopack.NewReader(blob).ReadStorable(new(geopack.LineStyle))
			Expect(err).To(MatchError(`geopack: invalid object version -2 at offset 0`))
		})

		It("should fail on invalid sizes", func() {
			err := geopack.NewReader([]byte{0, 0, 0, 0, 255, 255, 255, 255}).ReadStorable(new(geopack.LineStyle))
			Expect(err).To(MatchError(`geopack: object size -1 at offset 4: negative length prefix`))

			err = geopack.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 9, 1}).ReadStorable(new(geopack.LineStyle))
			Expect(err).To(MatchError(`geopack: object size 9 exceeds remaining 1 bytes at offset 4: unexpected end of data`))
		})
	})
})
