package sim

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/noise"
	"github.com/san-kum/hidden/internal/physics"
)

type manualClock struct {
	now time.Duration
}

func (c *manualClock) Now() time.Duration { return c.now }

func (c *manualClock) Set(d time.Duration) { c.now = d }

type recorder struct {
	infos []FrameInfo
}

func (r *recorder) OnFrame(_ *physics.Field, info FrameInfo) { r.infos = append(r.infos, info) }

var _ = Describe("Driver", func() {
	var (
		clock  *manualClock
		field  *physics.Field
		driver *Driver
		geom   physics.Geometry
	)

	BeforeEach(func() {
		geom = physics.Geometry{Width: 1280, Height: 720}
		clock = &manualClock{}
		field = physics.NewField(geom, rand.New(rand.NewSource(11)), noise.NewPerlin(11))
		driver = NewDriver(field, clock)
	})

	Context("on the title screen", func() {
		It("starts idle with an empty field", func() {
			Expect(driver.Phase()).To(Equal(Idle))
			Expect(field.Empty()).To(BeTrue())
		})

		It("ticks without populating or fading", func() {
			clock.Set(2 * time.Minute)
			info := driver.Tick()
			Expect(info.Phase).To(Equal(Idle))
			Expect(info.Population).To(BeZero())
			Expect(driver.Phase()).To(Equal(Idle))
		})

		It("resets the timer and fills the field on start", func() {
			clock.Set(90 * time.Second)
			Expect(driver.Start()).To(BeTrue())
			Expect(driver.Phase()).To(Equal(Active))
			Expect(driver.LastActivity()).To(Equal(90 * time.Second))
			Expect(field.Len()).To(Equal(physics.ParticleCount))
		})
	})

	Context("while active", func() {
		BeforeEach(func() {
			Expect(driver.Start()).To(BeTrue())
		})

		It("ignores a second start", func() {
			driver.Tick()
			Expect(driver.Start()).To(BeFalse())
			Expect(driver.Phase()).To(Equal(Active))
		})

		It("fades after more than a minute without a press", func() {
			clock.Set(60001 * time.Millisecond)
			info := driver.Tick()
			Expect(info.Phase).To(Equal(Faded))
			Expect(info.Population).To(BeZero())
		})

		It("does not fade at exactly the threshold", func() {
			clock.Set(physics.FadeAfter)
			Expect(driver.Tick().Phase).To(Equal(Active))
			Expect(field.Len()).To(Equal(physics.ParticleCount))
		})

		It("restarts the countdown on a press", func() {
			clock.Set(59 * time.Second)
			driver.PointerDown(dynamo.V(10, 10))
			driver.PointerUp()
			driver.Tick()

			clock.Set(60001 * time.Millisecond)
			info := driver.Tick()
			Expect(info.Phase).To(Equal(Active))
			Expect(info.Population).To(Equal(physics.ParticleCount))
			Expect(info.UntilFade()).To(BeNumerically(">", 57*time.Second))
		})

		It("treats a held pointer as continuous activity", func() {
			driver.PointerDown(geom.Center())
			for i := 1; i <= 5; i++ {
				clock.Set(time.Duration(i) * 50 * time.Second)
				Expect(driver.Tick().Phase).To(Equal(Active))
			}
			Expect(driver.LastActivity()).To(Equal(250 * time.Second))
		})

		It("never loses particles to the blade", func() {
			for i := 0; i < 300; i++ {
				clock.Set(time.Duration(i) * 16 * time.Millisecond)
				if i%20 == 0 {
					driver.PointerDown(geom.Center())
				}
				driver.PointerMove(geom.Center().Add(dynamo.V(float64(i%100), float64(i%50))))
				if i%20 == 10 {
					driver.PointerUp()
				}
				info := driver.Tick()
				Expect(info.Population).To(Equal(physics.ParticleCount))
			}
			for _, p := range field.Particles() {
				Expect(p.Trail.Len()).To(BeNumerically("<=", physics.TrailLength))
				Expect(p.Speed()).To(BeNumerically("<=", physics.MaxSpeed+1e-9))
			}
		})

		It("moves the attractor on resize without moving particles", func() {
			driver.Tick()
			before := field.Particles()[0].Pos
			driver.Resize(800, 600)
			Expect(field.Particles()[0].Pos).To(Equal(before))
			Expect(field.Geometry().Center()).To(Equal(dynamo.V(400, 300)))
		})

		It("notifies observers every frame", func() {
			rec := &recorder{}
			driver.AddObserver(rec)
			for i := 0; i < 3; i++ {
				driver.Tick()
			}
			Expect(rec.infos).To(HaveLen(3))
			Expect(rec.infos[2].Frame).To(Equal(2))
			Expect(driver.Frame()).To(Equal(3))
		})
	})

	Context("after fading", func() {
		BeforeEach(func() {
			driver.Start()
			clock.Set(61 * time.Second)
			driver.Tick()
			Expect(driver.Phase()).To(Equal(Faded))
		})

		It("stays empty when the user comes back", func() {
			clock.Set(62 * time.Second)
			driver.PointerDown(geom.Center())
			info := driver.Tick()
			Expect(info.Phase).To(Equal(Faded))
			Expect(info.Population).To(BeZero())
			Expect(info.UntilFade()).To(BeZero())
		})

		It("refuses to start again", func() {
			Expect(driver.Start()).To(BeFalse())
			Expect(field.Empty()).To(BeTrue())
		})
	})
})

var _ = Describe("Phase", func() {
	It("has readable names", func() {
		Expect(Idle.String()).To(Equal("idle"))
		Expect(Active.String()).To(Equal("active"))
		Expect(Faded.String()).To(Equal("faded"))
		Expect(Phase(9).String()).To(Equal("unknown"))
	})
})

var _ = Describe("FrameClock", func() {
	It("advances one frame at a time", func() {
		c := NewFrameClock(50)
		Expect(c.Now()).To(BeZero())
		c.Advance()
		c.Advance()
		Expect(c.Now()).To(Equal(40 * time.Millisecond))
	})

	It("falls back to 60 fps", func() {
		Expect(NewFrameClock(0).Step()).To(Equal(time.Second / 60))
	})
})
