package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/orbit"
	"github.com/san-kum/orbitgen/internal/vec"
)

var _ = Describe("Speed", func() {
	It("matches sqrt(G*M/d)", func() {
		v, err := orbit.Speed(1e24, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", math.Sqrt(6.67e-11*1e24/10), 1e-6))
	})

	It("decreases with distance for a fixed positive mass", func() {
		prev := math.Inf(1)
		for d := 1.0; d <= 1e6; d *= 3 {
			v, err := orbit.Speed(5.97e24, d)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNumerically("<", prev))
			prev = v
		}
	})

	It("is zero around a massless center", func() {
		v, err := orbit.Speed(0, 42)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeZero())
	})

	DescribeTable("rejects invalid input",
		func(m, d float64) {
			_, err := orbit.Speed(m, d)
			Expect(err).To(MatchError(celestial.ErrInvalidInput))
		},
		Entry("zero distance", 1e24, 0.0),
		Entry("negative distance", 1e24, -1.0),
		Entry("infinite distance", 1e24, math.Inf(1)),
		Entry("negative mass", -1.0, 10.0),
		Entry("NaN mass", math.NaN(), 10.0),
	)
})

var _ = Describe("LegacyPerpendicular", func() {
	DescribeTable("is orthogonal to r in every branch",
		func(r, want vec.Vec3) {
			p := orbit.LegacyPerpendicular(r)
			Expect(p).To(Equal(want))
			Expect(p.Dot(r)).To(BeZero())
		},
		Entry("x == 0 swaps y,z", vec.New(0, 3, 4), vec.New(0, 4, -3)),
		Entry("y == 0 swaps x,z", vec.New(-10, 0, 0), vec.New(0, 0, 10)),
		Entry("y == 0 with z", vec.New(2, 0, 5), vec.New(5, 0, -2)),
		Entry("else swaps x,y", vec.New(3, -7, 0), vec.New(-7, -3, 0)),
	)

	It("keeps z in the else branch", func() {
		r := vec.New(1, 2, 3)
		p := orbit.LegacyPerpendicular(r)
		Expect(p).To(Equal(vec.New(2, -1, 3)))
		Expect(p.Dot(r)).To(Equal(r.Z * r.Z))
	})

	It("prefers the x branch when several components are zero", func() {
		Expect(orbit.LegacyPerpendicular(vec.New(0, 0, 6))).To(Equal(vec.New(0, 6, 0)))
	})
})

var _ = Describe("CrossPerpendicular", func() {
	DescribeTable("is orthogonal and non-zero",
		func(r vec.Vec3) {
			p := orbit.CrossPerpendicular(r)
			Expect(p.Dot(r)).To(BeZero())
			Expect(p.Norm()).To(BeNumerically(">", 0))
		},
		Entry("general", vec.New(1, 2, 3)),
		Entry("negative", vec.New(-4.5, 1e9, -0.25)),
		Entry("on x axis", vec.New(7, 0, 0)),
		Entry("on y axis", vec.New(0, -7, 0)),
		Entry("on z axis", vec.New(0, 0, 7)),
	)
})

var _ = Describe("Strategy", func() {
	It("parses names", func() {
		s, err := orbit.ParseStrategy("Cross")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(orbit.StrategyCross))

		s, err = orbit.ParseStrategy("")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(orbit.StrategyLegacy))
	})

	It("rejects unknown names", func() {
		_, err := orbit.ParseStrategy("spiral")
		Expect(err).To(MatchError(celestial.ErrInvalidInput))
	})

	It("round-trips through text", func() {
		var s orbit.Strategy
		Expect(s.UnmarshalText([]byte("cross"))).To(Succeed())
		text, err := s.MarshalText()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(text)).To(Equal("cross"))
	})
})

var _ = Describe("Place", func() {
	It("places a satellite on the x axis", func() {
		v, err := orbit.Place(1e24, vec.Vec3{}, vec.New(10, 0, 0), vec.Vec3{})
		Expect(err).NotTo(HaveOccurred())

		speed := math.Sqrt(orbit.G * 1e24 / 10)
		Expect(v.X).To(BeZero())
		Expect(v.Y).To(BeZero())
		Expect(v.Z).To(BeNumerically("~", speed, 1e-6))
	})

	It("adds the parent velocity", func() {
		parent := vec.New(100, -50, 25)
		still, err := orbit.Place(1e24, vec.Vec3{}, vec.New(10, 0, 0), vec.Vec3{})
		Expect(err).NotTo(HaveOccurred())
		moving, err := orbit.Place(1e24, vec.Vec3{}, vec.New(10, 0, 0), parent)
		Expect(err).NotTo(HaveOccurred())
		diff := moving.Sub(still)
		Expect(diff.X).To(BeNumerically("~", parent.X, 1e-6))
		Expect(diff.Y).To(BeNumerically("~", parent.Y, 1e-6))
		Expect(diff.Z).To(BeNumerically("~", parent.Z, 1e-6))
	})

	It("uses the offset from the center, not the origin", func() {
		center := vec.New(1e6, -2e6, 3e6)
		v, err := orbit.Place(1e24, center, center.Add(vec.New(10, 0, 0)), vec.Vec3{})
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Norm()).To(BeNumerically("~", math.Sqrt(orbit.G*1e24/10), 1e-3))
	})

	It("rejects a satellite on top of its center", func() {
		c := vec.New(1, 2, 3)
		_, err := orbit.Place(1e24, c, c, vec.Vec3{})
		Expect(err).To(MatchError(celestial.ErrInvalidInput))
	})

	It("rejects a negative central mass", func() {
		_, err := orbit.Place(-1, vec.Vec3{}, vec.New(1, 0, 0), vec.Vec3{})
		Expect(err).To(MatchError(celestial.ErrInvalidInput))
	})

	It("produces circular speed perpendicular to r with the cross strategy", func() {
		p := orbit.NewPlacer(orbit.StrategyCross)
		sat := vec.New(3, -4, 12)
		v, err := p.Place(2e30, vec.Vec3{}, sat, vec.Vec3{})
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Norm()).To(BeNumerically("~", math.Sqrt(orbit.G*2e30/13), 1e-3))
		Expect(v.Unit().Dot(sat.Unit())).To(BeNumerically("~", 0, 1e-12))
	})

	It("places satellites at distances whose squares overflow", func() {
		v, err := orbit.Place(1e30, vec.Vec3{}, vec.New(1e160, 0, 0), vec.Vec3{})
		Expect(err).NotTo(HaveOccurred())
		Expect(v.IsFinite()).To(BeTrue())
		Expect(v.Z).To(BeNumerically(">", 0))
	})

	It("honors a custom gravitational constant", func() {
		p := orbit.Placer{G: 1}
		v, err := p.Place(4, vec.Vec3{}, vec.New(0, 1, 0), vec.Vec3{})
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Norm()).To(BeNumerically("~", 2, 1e-12))
	})
})
