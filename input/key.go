// Package input translates terminal key events into game key identifiers and
// buffers the most recent one for the next simulation tick.
package input

// Key identifies a key event relevant to the simulation
type Key uint8

const (
	KeyNone  Key = iota // Empty mailbox
	KeyUp               // Arrow up
	KeyDown             // Arrow down
	KeyK                // Letter k, alias of up
	KeyJ                // Letter j, alias of down
	KeyOther            // Any other key, stored but never moves a paddle
)

var keyNames = map[Key]string{
	KeyNone:  "",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyK:     "k",
	KeyJ:     "j",
	KeyOther: "other",
}

func (k Key) String() string {
	return keyNames[k]
}

// ParseKey maps a key identifier back to its Key, unknown names are KeyOther
func ParseKey(name string) Key {
	if name == "" {
		return KeyNone
	}
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyOther
}

// Direction returns the vertical paddle step the key requests: -1 up, +1 down, 0 none
func (k Key) Direction() int {
	switch k {
	case KeyUp, KeyK:
		return -1
	case KeyDown, KeyJ:
		return 1
	}
	return 0
}
