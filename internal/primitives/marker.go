package primitives

// Marker is the sentinel "present" value stored for every member of a set
// shaped table. It is an empty comparable struct, so it equals only itself
// and can never collide with a caller-supplied value.
type Marker struct{}

// Present is the shared sentinel instance. All set members point at this one
// value; the engine compares against it with plain ==.
var Present = Marker{}

func (Marker) String() string {
	return "present"
}
