// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI drives a single import run end to end:
//  1. [RunningView] : Live progress while tracks are fetched and matched
//  2. [ResultView] : Success metrics and unmatched tracks
//
// The [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Progress events flow from the importer's bus into a channel
// consumed by a wait command, so status reporting never blocks the
// import itself. Esc requests cooperative cancellation; q quits.
package ui
