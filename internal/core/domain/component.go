package domain

// Component names a single element of a fixed-size vector.
type Component string

// Vector components in storage order.
const (
	ComponentX Component = "x"
	ComponentY Component = "y"
	ComponentZ Component = "z"
	ComponentW Component = "w"
)

// AllComponents returns every component in storage order.
func AllComponents() []Component {
	return []Component{ComponentX, ComponentY, ComponentZ, ComponentW}
}

// Index returns the zero-based position of the component, or -1 if unknown.
func (c Component) Index() int {
	switch c {
	case ComponentX:
		return 0
	case ComponentY:
		return 1
	case ComponentZ:
		return 2
	case ComponentW:
		return 3
	default:
		return -1
	}
}

// IsValid returns true if the component is one of x, y, z or w.
func (c Component) IsValid() bool {
	return c.Index() >= 0
}

// In reports whether the component exists on a vector of the given size.
func (c Component) In(size int) bool {
	i := c.Index()
	return i >= 0 && i < size
}

// String returns the string representation.
func (c Component) String() string {
	return string(c)
}
