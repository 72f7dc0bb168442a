package core

// Size describes the dimensions of a grid in pixels-friendly W/H form.
type Size struct {
	W int
	H int
}
