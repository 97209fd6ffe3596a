// Package ui contains the Bubble Tea program that presents a tree menu in the
// terminal.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are decoded into the five semantic tree events (move up,
//     down, left, right, activate) and handed to the tree's Controller. The
//     model never mutates focus, selection or expansion itself.
//   - While the search prompt is open, keystrokes edit the query instead and
//     each edit jumps focus to the best visible match by issuing the same
//     move events a user would.
//
// Rendering reads the controller's last snapshot for focus, selection and
// expansion state, so the terminal view and the exported markup never
// disagree.
package ui
