package terminal

// Writer consumes the draw primitives produced by the diff renderer
// All coordinates are 1-based to match surface addressing
type Writer interface {
	// MoveCursor positions the cursor at row, col (1-based)
	MoveCursor(row, col int)

	// OpenStyle switches subsequent writes to the given appearance
	OpenStyle(fg, bg RGB, attr Attr)

	// WriteRune writes one character at the cursor and advances it
	WriteRune(r rune)

	// ResetStyle returns subsequent writes to the terminal default
	ResetStyle()

	// Flush pushes buffered output to the terminal
	Flush() error
}
