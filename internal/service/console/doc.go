// Package console is the terminal front end of the countdown.
//
// Panel raises the presentation events (duration input, Set, Start, Pause,
// Reset) into a timer.Machine and holds nothing but the draft input text.
// Run wires a Panel to line-oriented commands read from stdin and renders
// every published snapshot as "MM:SS  [Start|Resume]".
package console
