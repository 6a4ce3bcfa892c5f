package strview

// State classifies a View.
//
// The three sentinel outcomes of the library (Invalid, NotFound, Empty) are
// modelled as states of the View itself, so callers can switch on the result
// of any operation:
//
//	switch before.State() {
//	case strview.StateInvalid:
//	    // malformed input
//	case strview.StateNotFound:
//	    // no split point
//	default:
//	    // use before
//	}
type State uint8

const (
	StateInvalid  State = 0x0 // StateInvalid marks malformed input or an unrepresentable result.
	StateNotFound State = 0x1 // StateNotFound marks a split that found no split point; see View.State.
	StateEmpty    State = 0x2 // StateEmpty marks a valid, zero-length view.
	StateValid    State = 0x3 // StateValid marks a valid, non-empty view.
)

func (s State) String() string {
	switch s {
	case StateInvalid:
		return "Invalid"
	case StateNotFound:
		return "NotFound"
	case StateEmpty:
		return "Empty"
	case StateValid:
		return "Valid"
	default:
		return "Unknown"
	}
}
