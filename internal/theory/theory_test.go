package theory_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jmpark/venuslab/internal/theory"
)

func rad(deg float64) float64 { return deg * math.Pi / 180 }

var _ = Describe("Evaluate", func() {
	const planetRadius = 0.72

	DescribeTable("applies the compatibility rule table",
		func(phaseAngle, observerRadius float64, wantCase theory.Case, wantGeo bool) {
			v := theory.Evaluate(phaseAngle, observerRadius, planetRadius)
			Expect(v.Case).To(Equal(wantCase))
			Expect(v.GeocentricCompatible).To(Equal(wantGeo))
			Expect(v.HeliocentricCompatible).To(BeTrue())
		},
		Entry("inner observer, gibbous phase",
			rad(135), 0.39, theory.InnerObserverAllPhases, true),
		Entry("inner observer, barely beyond quarter",
			rad(90.1), 0.39, theory.InnerObserverAllPhases, true),
		Entry("inner observer, crescent phase",
			rad(40), 0.39, theory.InnerObserverCrescentOnly, false),
		Entry("inner observer, exactly quarter phase counts as crescent",
			math.Pi/2, 0.39, theory.InnerObserverCrescentOnly, false),
		Entry("outer observer, gibbous phase",
			rad(135), 1.0, theory.OuterObserverImpossible, false),
		Entry("outer observer, barely beyond quarter",
			rad(90.1), 1.0, theory.OuterObserverImpossible, false),
		Entry("outer observer, crescent phase",
			rad(40), 1.0, theory.OuterObserverCrescentOnly, false),
		Entry("outer observer, exactly quarter phase counts as crescent",
			math.Pi/2, 1.0, theory.OuterObserverCrescentOnly, false),
		Entry("co-orbital, gibbous phase",
			rad(135), 0.72, theory.CoOrbital, false),
		Entry("co-orbital, crescent phase",
			rad(40), 0.72, theory.CoOrbital, false),
		Entry("distant outer observer, gibbous phase",
			rad(120), 2.0, theory.OuterObserverImpossible, false),
		Entry("close inner observer, near-full phase",
			rad(178), 0.3, theory.InnerObserverAllPhases, true),
	)

	It("always explains the observation heliocentrically", func() {
		for _, r := range []float64{0.3, 0.72, 1.0, 2.0} {
			for deg := 0.0; deg <= 180; deg += 15 {
				v := theory.Evaluate(rad(deg), r, planetRadius)
				Expect(v.HeliocentricCompatible).To(BeTrue())
				Expect(v.HeliocentricRationale).NotTo(BeEmpty())
			}
		}
	})

	It("fills a rationale for every geocentric verdict", func() {
		cases := []struct {
			phase, radius float64
		}{
			{rad(135), 0.39},
			{rad(40), 0.39},
			{rad(135), 1.0},
			{rad(40), 1.0},
			{rad(90), 0.72},
		}
		for _, c := range cases {
			v := theory.Evaluate(c.phase, c.radius, planetRadius)
			Expect(v.GeocentricRationale).NotTo(BeEmpty())
		}
	})

	It("treats exact radius equality as co-orbital regardless of phase", func() {
		v := theory.Evaluate(rad(179.9), 0.72, 0.72)
		Expect(v.Case).To(Equal(theory.CoOrbital))
		Expect(v.GeocentricCompatible).To(BeFalse())
	})
})

var _ = Describe("Case", func() {
	DescribeTable("renders a stable name",
		func(c theory.Case, want string) {
			Expect(c.String()).To(Equal(want))
		},
		Entry("inner all phases", theory.InnerObserverAllPhases, "inner-observer-all-phases"),
		Entry("inner crescent", theory.InnerObserverCrescentOnly, "inner-observer-crescent-only"),
		Entry("outer impossible", theory.OuterObserverImpossible, "outer-observer-impossible"),
		Entry("outer crescent", theory.OuterObserverCrescentOnly, "outer-observer-crescent-only"),
		Entry("co-orbital", theory.CoOrbital, "co-orbital"),
		Entry("out of range", theory.Case(42), "unknown"),
	)
})
