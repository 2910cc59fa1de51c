package geopack_test

import (
	"github.com/bsm/geopack"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Track", func() {
	var subject *geopack.Track

	BeforeEach(func() {
		subject = geopack.NewTrack("Morning run")
		subject.TimeCreated = 1600000000000
		subject.Points = []geopack.Location{
			{Time: 1600000000000, Lat: 0, Lon: 0},
			{Time: 1600000060000, Lat: 0, Lon: 1},
			{Time: 1600000120000, Lat: 0, Lon: 2},
		}
	})

	It("should measure length", func() {
		Expect(subject.Length()).To(BeNumerically("~", 222390, 10))
		Expect(geopack.NewTrack("empty").Length()).To(BeZero())
	})

	It("should round-trip", func() {
		var dst geopack.Track
		Expect(reencode(subject, &dst)).To(Succeed())
		Expect(dst.Name).To(Equal("Morning run"))
		Expect(dst.Points).To(Equal(subject.Points))
		Expect(dst.Waypoints).To(BeEmpty())
	})

	It("should round-trip waypoints with rte attributes", func() {
		turn := seedPoint("sharp turn", 0, 1)
		turn.SetParameterRteAction(geopack.RteActionRightSharp)
		turn.SetParameterRteIndex(1)
		subject.Waypoints = append(subject.Waypoints, turn)

		var dst geopack.Track
		Expect(reencode(subject, &dst)).To(Succeed())
		Expect(dst.Waypoints).To(HaveLen(1))
		Expect(dst.Waypoints[0].Name).To(Equal("sharp turn"))
		Expect(dst.Waypoints[0].ParameterRteAction()).To(Equal(geopack.RteActionRightSharp))
		Expect(dst.Waypoints[0].ParameterRteIndex()).To(Equal(1))
	})

	It("should reject nil waypoints", func() {
		subject.Waypoints = append(subject.Waypoints, nil)
		_, err := geopack.Marshal(subject)
		Expect(err).To(MatchError(`geopack: nil waypoint at index 0`))
	})

	It("should abort on malformed point lists", func() {
		blob, err := geopack.Marshal(subject)
		Expect(err).NotTo(HaveOccurred())

		err = geopack.Unmarshal(blob[:len(blob)-6], new(geopack.Track))
		beDecodeError(err)
	})
})
