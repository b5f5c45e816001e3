// Package input tracks which driving keys are held down.
package input

// Key identifies one of the driving controls.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp

	numKeys
)

// String returns the key's name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	}
	return "unknown"
}

// KeyState holds one pressed flag per key. The host writes it between
// frames; the simulation reads it at the start of each frame.
type KeyState struct {
	down [numKeys]bool
}

// Set records whether k is held. Out-of-range keys are ignored.
func (s *KeyState) Set(k Key, pressed bool) {
	if k < 0 || k >= numKeys {
		return
	}
	s.down[k] = pressed
}

// Down reports whether k is held.
func (s KeyState) Down(k Key) bool {
	if k < 0 || k >= numKeys {
		return false
	}
	return s.down[k]
}

// Release clears every key.
func (s *KeyState) Release() {
	s.down = [numKeys]bool{}
}
