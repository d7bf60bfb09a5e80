// Package viz renders the airflow in a terminal.
//
// [Model] is a Bubble Tea program that runs a session on a braille
// [Canvas]. Every cell carries 2x4 dots and the dot grid is the session's
// screen, so a 100x30 terminal gives the airflow a 130x116 pixel world
// once the side panel takes its share.
//
// # Controls
//
//	S     - leave the title screen
//	drag  - slice with the blade (left button)
//	B     - toggle the backdrop lines
//	T     - cycle themes
//	Q     - quit
package viz
