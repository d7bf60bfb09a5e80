package sim

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/physics"
)

var _ = Describe("Runner", func() {
	var cfg RunConfig

	BeforeEach(func() {
		cfg = DefaultRunConfig()
		cfg.Seed = 5
	})

	DescribeTable("rejects invalid configs",
		func(mutate func(*RunConfig)) {
			mutate(&cfg)
			_, err := NewRunner().Run(context.Background(), cfg)
			Expect(errors.Is(err, dynamo.ErrInvalidConfig)).To(BeTrue())
		},
		Entry("zero frames", func(c *RunConfig) { c.Frames = 0 }),
		Entry("negative fps", func(c *RunConfig) { c.FPS = -1 }),
		Entry("negative width", func(c *RunConfig) { c.Width = -10 }),
	)

	It("fades an untouched field just after a minute", func() {
		cfg.Frames = 3700
		res, err := NewRunner().Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Final).To(Equal(Faded))
		Expect(res.FadeFrame).To(BeNumerically("~", 3601, 1))
		Expect(res.Frames).To(Equal(3700))
	})

	It("keeps the airflow alive while someone keeps tapping", func() {
		cfg.Frames = 6000
		cfg.Script = Tap{Every: 1800, Hold: 2}
		res, err := NewRunner().Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Final).To(Equal(Active))
		Expect(res.FadeFrame).To(Equal(-1))
	})

	It("never shrinks the population under a continuous drag", func() {
		cfg.Frames = 600
		cfg.Script = Orbit{Period: 120}
		rec := &recorder{}
		r := NewRunner()
		r.AddObserver(rec)
		_, err := r.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.infos).To(HaveLen(600))
		for _, info := range rec.infos {
			Expect(info.Population).To(Equal(physics.ParticleCount))
		}
	})

	It("stops on cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		res, err := NewRunner().Run(ctx, cfg)
		Expect(err).To(MatchError(context.Canceled))
		Expect(res.Frames).To(BeZero())
	})

	It("survives a zero-sized canvas", func() {
		cfg.Width, cfg.Height = 0, 0
		cfg.Frames = 30
		cfg.Script = Orbit{}
		res, err := NewRunner().Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Final).To(Equal(Active))
	})
})

var _ = Describe("Scripts", func() {
	geom := physics.Geometry{Width: 700, Height: 700}

	It("taps on schedule", func() {
		tap := Tap{Every: 10, Hold: 2, Offset: 5}
		Expect(tap.Input(4, geom).Active).To(BeFalse())
		Expect(tap.Input(5, geom).Active).To(BeTrue())
		Expect(tap.Input(6, geom).Active).To(BeTrue())
		Expect(tap.Input(7, geom).Active).To(BeFalse())
		Expect(tap.Input(15, geom).Active).To(BeTrue())
	})

	It("orbits at twice the blade radius by default", func() {
		ptr := Orbit{Period: 4}.Input(1, geom)
		Expect(ptr.Active).To(BeTrue())
		Expect(ptr.Pos.Dist(geom.Center())).To(BeNumerically("~", 2*geom.BladeRadius(), 1e-9))
		Expect(Orbit{Until: 3}.Input(3, geom).Active).To(BeFalse())
	})

	It("never presses when still", func() {
		Expect(Still{}.Input(100, geom).Active).To(BeFalse())
	})
})

var _ = Describe("Ensemble", func() {
	It("runs one session per seed", func() {
		cfg := DefaultRunConfig()
		cfg.Frames = 120
		results, err := NewEnsemble(3, 40).Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(3))
		for i, r := range results {
			Expect(r.Seed).To(Equal(int64(40 + i)))
			Expect(r.Frames).To(Equal(120))
		}
	})
})
