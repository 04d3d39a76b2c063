package terminal

import "testing"

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEscape, "Escape"},
		{KeyBacktab, "Shift+Tab"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyCtrlA, "Ctrl+A"},
		{KeyCtrlZ, "Ctrl+Z"},
		{KeyNone, "None"},
	}

	for _, tt := range tests {
		if got := tt.key.Name(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestEventConstructors(t *testing.T) {
	ev := RuneEvent('x')
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'x' {
		t.Errorf("Expected rune event, got %+v", ev)
	}

	ev = KeyEvent(KeyLeft, 0, ModCtrl)
	if ev.Key != KeyLeft || ev.Mod != ModCtrl {
		t.Errorf("Expected ctrl+left event, got %+v", ev)
	}

	ev = ResizeEvent(80, 24)
	if ev.Type != EventResize || ev.Width != 80 || ev.Height != 24 {
		t.Errorf("Expected resize event, got %+v", ev)
	}
}
