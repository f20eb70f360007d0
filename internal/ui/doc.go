// Package ui contains the Bubble Tea program that powers the branch browser.
// Model is a thin shell: it owns terminal concerns (size, the filter caret,
// the help footer) and forwards every key press to screen.Controller, which
// holds the navigation stack and decides what happens.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (key presses and window resizes).
//   - Key presses are translated into screen.Input values by the key map in
//     keys.go. Ctrl+C is handled here and never reaches the controller.
//   - Git commands run synchronously inside the controller, so the effects of
//     one key are complete before the next one is read.
//
// Rendering reads the controller's top frame: the Main and Exiting screens
// are static, listings are windowed through the frame's viewport, and the
// errors screen lays out the accumulated records as a table.
package ui
