package board

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// ShortcutFromEvent normalises a key event into a KeyShortcut.
func ShortcutFromEvent(e key.Event) KeyShortcut {
	return KeyShortcut{Rune: unicode.ToLower(e.Rune), Code: e.Code, Modifiers: e.Modifiers}
}

// HandleKey runs the history shortcuts. Control or Meta with Z undoes and
// adding Shift redoes. Keys are left alone while text is being entered. The
// result reports whether the key was consumed.
func (b *Board) HandleKey(k KeyShortcut) bool {
	if b.state == StateWriting {
		return false
	}
	if unicode.ToLower(k.Rune) != 'z' && k.Code != key.CodeZ {
		return false
	}
	if k.Modifiers&(key.ModControl|key.ModMeta) == 0 {
		return false
	}
	if k.Modifiers&key.ModShift != 0 {
		b.Redo()
	} else {
		b.Undo()
	}
	return true
}

// HandleTextKey feeds a key press to the text entry box. Return and Escape
// end editing like losing focus does.
func (b *Board) HandleTextKey(e key.Event) (bool, error) {
	if b.state != StateWriting || e.Direction == key.DirRelease {
		return false, nil
	}
	switch e.Code {
	case key.CodeReturnEnter, key.CodeEscape:
		return true, b.CommitText()
	case key.CodeDeleteBackspace:
		b.Backspace()
		return true, nil
	}
	if e.Rune > 0 && unicode.IsPrint(e.Rune) {
		return b.TypeRune(e.Rune), nil
	}
	return true, nil
}
