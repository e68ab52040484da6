// Package ui contains the Bubble Tea program that shows the stacked bar
// charts in the terminal.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (mouse, keys, window size, backend reloads).
//   - Every handled message ends with a render pass: the compose.Composer lays
//     out the charts onto a fresh terminal.Canvas, which also records the cell
//     rectangles of every segment and legend row. View only returns the result
//     of the last pass.
//
// Interaction:
//   - Mouse motion is hit-tested against the last pass. Landing on a segment
//     or legend row calls Hover on the interaction controller; landing on
//     anything else calls Leave. Hovering the key that is already active is a
//     no-op inside the controller, so repeated motion events over one segment
//     never churn the state.
//   - A left click on a legend row selects it, which highlights like a hover.
//   - Typed text fuzzy-filters the legend; esc clears the filter.
//
// Backend interactions:
//   - A backend.Watcher polls the data file; Update waits for its events and
//     hands them to the dispatcher, which refreshes the chart store. The
//     composer then receives the new series and drops any highlight.
package ui
