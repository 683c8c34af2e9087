package ui

// Stats carries the per-frame readouts shown at the top of the HUD.
type Stats struct {
	SeedText string
	Seed     uint32
	Hash     uint32
	FPS      float64
	Source   string
	Zoom     float64
}
