package particles

// Config holds the tuning of the ambient particle background.
type Config struct {
	// AreaPerParticle is the viewport area, in px², that yields one particle.
	AreaPerParticle float64
	MinParticles    int
	MaxParticles    int

	// WrapMargin is how far past an edge a particle may drift before it
	// reappears on the opposite side.
	WrapMargin float64

	// MaxAxisSpeed is the full width of the per-axis velocity range, so
	// each axis is sampled from [-MaxAxisSpeed/2, MaxAxisSpeed/2].
	MaxAxisSpeed float64
	RadiusMin    float64
	RadiusSpan   float64

	LinkDistance float64
	LinkAlpha    float64
	LinkWidth    float64
	LinkColor    RGBA
	DotColor     RGBA

	// MaxPixelRatio caps the device pixel ratio used for the backing buffer.
	MaxPixelRatio float64
}

// DefaultConfig returns the tuning used by the site.
func DefaultConfig() Config {
	return Config{
		AreaPerParticle: 22000,
		MinParticles:    26,
		MaxParticles:    70,
		WrapMargin:      40,
		MaxAxisSpeed:    0.35,
		RadiusMin:       1,
		RadiusSpan:      1.4,
		LinkDistance:    130,
		LinkAlpha:       0.12,
		LinkWidth:       1,
		LinkColor:       RGBA{R: 110, G: 231, B: 255, A: 1},
		DotColor:        RGBA{R: 255, G: 255, B: 255, A: 0.35},
		MaxPixelRatio:   2,
	}
}
