// Package describe turns a change record into short human-readable phrases.
//
// [Describe] lists what changed in a cell in a fixed order (value, font
// color, background, bold, strikethrough); [Text] joins that list for single
// line display. [ColorName] maps well-known hex colors to names, and
// [ValueDiff] renders a character-level diff of a cell's old and new value.
package describe
