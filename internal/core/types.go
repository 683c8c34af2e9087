package core

// Size describes grid or viewport dimensions.
type Size struct {
	W int
	H int
}
