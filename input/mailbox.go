package input

// Mailbox is a single-slot buffer for the last key observed between ticks
// Repeated writes coalesce (last write wins); Take empties the slot
// Not safe for concurrent use, the game loop is its only reader and writer
type Mailbox struct {
	key Key
}

// Put stores k, replacing any unread key
func (m *Mailbox) Put(k Key) {
	m.key = k
}

// Take returns the stored key and clears the slot
func (m *Mailbox) Take() Key {
	k := m.key
	m.key = KeyNone
	return k
}

// Peek returns the stored key without clearing it
func (m *Mailbox) Peek() Key {
	return m.key
}
