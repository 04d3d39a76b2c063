// Package terminal holds the boundary types between the UI core and the
// terminal itself: parsed input tokens, cell appearance values, and the
// draw-primitive Writer the diff renderer targets.
//
// The core never parses raw bytes and never emits escape sequences directly.
// Backends translate in both directions: TcellTerminal adapts a tcell.Screen,
// AnsiWriter emits CSI sequences to any io.Writer.
package terminal
