package input

import "github.com/gdamore/tcell/v2"

// Intent classifies what a terminal key event asks for
type Intent uint8

const (
	IntentNone   Intent = iota
	IntentMove          // Goes to the mailbox for the next tick
	IntentPause         // Toggle pause, handled by the loop
	IntentMute          // Toggle sound
	IntentQuit          // Leave the game
)

// KeyEntry describes a key binding
type KeyEntry struct {
	Key    Key
	Intent Intent
}

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {KeyUp, IntentMove},
			tcell.KeyDown:   {KeyDown, IntentMove},
			tcell.KeyEscape: {KeyNone, IntentQuit},
			tcell.KeyCtrlC:  {KeyNone, IntentQuit},
			tcell.KeyCtrlQ:  {KeyNone, IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'k': {KeyK, IntentMove},
			'j': {KeyJ, IntentMove},
			'p': {KeyNone, IntentPause},
			'm': {KeyNone, IntentMute},
			'q': {KeyNone, IntentQuit},
		},
	}
}

// Lookup resolves a tcell key event
// Unbound keys still produce IntentMove with KeyOther so the mailbox records them
func (t *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev == nil {
		return KeyEntry{}
	}
	if ev.Key() == tcell.KeyRune {
		if entry, ok := t.Runes[ev.Rune()]; ok {
			return entry
		}
		return KeyEntry{KeyOther, IntentMove}
	}
	if entry, ok := t.SpecialKeys[ev.Key()]; ok {
		return entry
	}
	return KeyEntry{KeyOther, IntentMove}
}

var defaultTable = DefaultKeyTable()

// FromEvent returns the game key for a tcell event using the default bindings
func FromEvent(ev *tcell.EventKey) Key {
	return defaultTable.Lookup(ev).Key
}
