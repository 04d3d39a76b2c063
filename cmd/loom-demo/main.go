package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/lixenwraith/loom/driver"
	"github.com/lixenwraith/loom/focus"
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/modal"
	"github.com/lixenwraith/loom/scene"
	"github.com/lixenwraith/loom/style"
	"github.com/lixenwraith/loom/terminal"
	"github.com/lixenwraith/loom/widget"
)

const (
	logDir      = "logs"
	logFileName = "loom-demo.log"
)

var (
	debugFlag = flag.Bool("debug", false, "Enable debug logging to "+logDir)
	themeFlag = flag.String("theme", "", "Path to a TOML theme file")
)

// setupLogging routes log output to a file when debugging, else discards
// The terminal itself is owned by the UI, so stdout is never an option
func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	// Panic recovery: restore the terminal before printing the trace
	var term *terminal.TcellTerminal
	defer func() {
		if r := recover(); r != nil {
			if term != nil {
				term.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nloom-demo crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	theme := style.DefaultTheme()
	if *themeFlag != "" {
		loaded, err := style.LoadTheme(*themeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loom-demo: %v\n", err)
			os.Exit(1)
		}
		theme = loaded
	}

	var err error
	term, err = terminal.NewTcellTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loom-demo: %v\n", err)
		os.Exit(1)
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "loom-demo: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	app := newApp(theme)
	d := driver.New(term, app.sc, app.router)
	app.drv = d

	w, _ := term.Size()
	app.menu.SetBarBounds(geom.NewRect(1, 1, w, 1))

	log.Printf("loom-demo starting")
	d.Run()
}

// app wires the demo scene, menus, and dialogs together
type app struct {
	sc     *scene.Scene
	drv    *driver.Driver
	router *driver.Router

	menu    *modal.MenuController
	message *modal.MessageBoxController
	selects *modal.SelectionListController
	entry   *modal.TextEntryBoxController

	status string
}

func newApp(theme style.Theme) *app {
	a := &app{status: "TAB cycles focus, Alt+F opens the menu, q quits"}

	a.sc = scene.New(theme, widget.Erased{})
	a.message = modal.NewMessageBoxController(a.sc)
	a.selects = modal.NewSelectionListController(a.sc)
	a.entry = modal.NewTextEntryBoxController(a.sc)

	items := []widget.MenuItem{
		{
			Title: "File", Rune: 'f',
			Entries: []widget.MenuEntry{
				{Label: "Open…", Rune: 'o'},
				{Label: "Save As…", Rune: 'a'},
				{Label: "Quit", Rune: 'q'},
			},
		},
		{Title: "Edit", Rune: 'e'}, // Inert: no entries yet
		{
			Title: "Help", Rune: 'h',
			Entries: []widget.MenuEntry{
				{Label: "About", Rune: 'b'},
			},
		},
	}
	a.menu = modal.NewMenuController(a.sc, items, a.onMenu)

	for _, id := range []focus.ID{"alpha", "beta", "gamma"} {
		a.sc.Focus().Register(focus.Node{ID: id, Enabled: true, InTraversal: true})
	}

	a.sc.SetRoot(widget.Erase(rootWidget{app: a}))

	a.router = driver.NewRouter(a.message, a.entry, a.selects, a.menu)
	a.router.SetFallback(a.handleKey)
	return a
}

// onMenu dispatches menu activations back onto the app
func (a *app) onMenu(item, entry int) {
	switch {
	case item == 0 && entry == 0:
		a.selects.Present("Open", []modal.Choice{
			{Label: "notes.txt", Action: func() { a.status = "opened notes.txt" }},
			{Label: "todo.md", Action: func() { a.status = "opened todo.md" }},
			{Label: "journal.md", Action: func() { a.status = "opened journal.md" }},
		})
	case item == 0 && entry == 1:
		a.entry.Present("Save as:", "untitled.txt", []modal.Choice{
			{Label: "Save", Rune: 's', Action: func() { a.status = "saved " + a.entry.Value() }},
			{Label: "Cancel", Rune: 'c'},
		})
	case item == 0 && entry == 2:
		a.confirmQuit()
	case item == 2 && entry == 0:
		a.message.Present("About", []string{"loom demo", "a terminal UI framework"}, []modal.Choice{
			{Label: "OK", Rune: 'o'},
		})
	}
}

func (a *app) confirmQuit() {
	a.message.Present("Quit", []string{"Leave the demo?"}, []modal.Choice{
		{Label: "Yes", Rune: 'y', Action: func() { a.drv.Stop() }},
		{Label: "No", Rune: 'n'},
	})
}

// handleKey is the application fallback behind the modal chain
func (a *app) handleKey(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	switch {
	case ev.Key == terminal.KeyTab:
		a.sc.Focus().Advance()
		return true
	case ev.Key == terminal.KeyBacktab:
		a.sc.Focus().Retreat()
		return true
	case ev.Key == terminal.KeyRune && ev.Rune == 'q', ev.Key == terminal.KeyCtrlC:
		a.confirmQuit()
		return true
	}
	return false
}

// rootWidget is the demo's scaffolded base layer
type rootWidget struct {
	app *app
}

func (r rootWidget) Layout(ctx widget.Context) widget.Result {
	a := r.app

	buttons := widget.HStack(
		widget.Erase(widget.Button{FocusID: "alpha", Label: "Alpha"}),
		widget.Erase(widget.Button{FocusID: "beta", Label: "Beta"}),
		widget.Erase(widget.Button{FocusID: "gamma", Label: "Gamma"}),
	).WithSpacing(2)

	content := widget.Padding{
		Insets: geom.UniformInsets(1),
		Child: widget.Erase(widget.VStack(
			widget.Erase(widget.Label("Focused: "+string(ctx.Focus.Active()), ctx.Theme.Base())),
			widget.Erase(widget.Text{Content: ""}),
			widget.Erase(buttons),
		).WithSpacing(1)),
	}

	return widget.Scaffold{
		MenuBar:   widget.Erase(a.menu.Bar()),
		Content:   widget.Erase(content),
		StatusBar: widget.Erase(widget.StatusBar{Left: a.status, Right: "loom"}),
	}.Layout(ctx)
}
