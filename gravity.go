package fold

// Gravity names the panel edge that acts as the fold hinge.
type Gravity uint8

const (
	// GravityTop hinges the panel on its top edge.
	GravityTop Gravity = iota + 1

	// GravityBottom hinges the panel on its bottom edge.
	GravityBottom
)

// String returns a string representation of the gravity.
func (g Gravity) String() string {
	switch g {
	case GravityTop:
		return "Top"
	case GravityBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// ParseGravity parses "top" or "bottom" (case-sensitive, lower case).
// ok is false for anything else.
func ParseGravity(s string) (g Gravity, ok bool) {
	switch s {
	case "top":
		return GravityTop, true
	case "bottom":
		return GravityBottom, true
	default:
		return 0, false
	}
}
