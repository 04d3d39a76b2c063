package driver

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/loom/scene"
	"github.com/lixenwraith/loom/style"
	"github.com/lixenwraith/loom/terminal"
	"github.com/lixenwraith/loom/widget"
)

// fakeTerminal is a scriptable backend for loop tests
type fakeTerminal struct {
	mu      sync.Mutex
	flushes int
	events  chan terminal.Event
}

func newFakeTerminal() *fakeTerminal {
	return &fakeTerminal{events: make(chan terminal.Event, 8)}
}

func (f *fakeTerminal) MoveCursor(row, col int) {}

func (f *fakeTerminal) OpenStyle(fg, bg terminal.RGB, attr terminal.Attr) {}

func (f *fakeTerminal) WriteRune(r rune) {}

func (f *fakeTerminal) ResetStyle() {}

func (f *fakeTerminal) Size() (int, int) { return 20, 6 }

func (f *fakeTerminal) Events() <-chan terminal.Event { return f.events }

func (f *fakeTerminal) Flush() error {
	f.mu.Lock()
	f.flushes++
	f.mu.Unlock()
	return nil
}

func (f *fakeTerminal) flushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushes
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

func newTestDriver(term *fakeTerminal) *Driver {
	sc := scene.New(style.DefaultTheme(), widget.Erased{})
	return New(term, sc, NewRouter())
}

// TestRunRendersInitialFrame verifies the first frame flushes without
// any input
func TestRunRendersInitialFrame(t *testing.T) {
	term := newFakeTerminal()
	d := newTestDriver(term)

	done := make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()

	waitFor(t, func() bool { return term.flushCount() >= 1 }, "Expected initial frame flushed")

	d.Stop()
	<-done
}

// TestPostRunsOnLoopAndTriggersRender verifies posted work runs on the
// sequencing goroutine and marks the frame dirty
func TestPostRunsOnLoopAndTriggersRender(t *testing.T) {
	term := newFakeTerminal()
	d := newTestDriver(term)

	done := make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()
	waitFor(t, func() bool { return term.flushCount() >= 1 }, "Expected initial frame")

	ran := make(chan struct{})
	before := term.flushCount()
	d.Post(func() { close(ran) })

	<-ran
	waitFor(t, func() bool { return term.flushCount() > before }, "Expected render after post")

	d.Stop()
	<-done
}

// TestConsumedKeyTriggersRender verifies a routed token re-renders
func TestConsumedKeyTriggersRender(t *testing.T) {
	term := newFakeTerminal()
	sc := scene.New(style.DefaultTheme(), widget.Erased{})
	router := NewRouter()
	consumed := make(chan struct{}, 1)
	router.SetFallback(func(terminal.Event) bool {
		consumed <- struct{}{}
		return true
	})
	d := New(term, sc, router)

	done := make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()
	waitFor(t, func() bool { return term.flushCount() >= 1 }, "Expected initial frame")

	before := term.flushCount()
	term.events <- terminal.KeyEvent(terminal.KeyTab, 0, 0)

	<-consumed
	waitFor(t, func() bool { return term.flushCount() > before }, "Expected render after consumed key")

	d.Stop()
	<-done
}

// TestRunExitsOnClosedEvents verifies the loop ends when the backend's
// event channel closes
func TestRunExitsOnClosedEvents(t *testing.T) {
	term := newFakeTerminal()
	d := newTestDriver(term)

	done := make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()
	waitFor(t, func() bool { return term.flushCount() >= 1 }, "Expected initial frame")

	close(term.events)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to exit on closed event channel")
	}
}

// TestResizeEventReshapesSurface verifies resize flows through the loop
func TestResizeEventReshapesSurface(t *testing.T) {
	term := newFakeTerminal()
	d := newTestDriver(term)

	done := make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()
	waitFor(t, func() bool { return term.flushCount() >= 1 }, "Expected initial frame")

	term.events <- terminal.ResizeEvent(30, 10)
	// Read the viewport on the loop goroutine to stay race-free
	waitFor(t, func() bool {
		ok := make(chan bool, 1)
		d.Post(func() {
			vp := d.Scene().Viewport()
			ok <- vp.W == 30 && vp.H == 10
		})
		return <-ok
	}, "Expected viewport to track resize")

	d.Stop()
	<-done
}
