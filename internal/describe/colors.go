package describe

import "strings"

var colorNames = map[string]string{
	"#000000": "Black",
	"#FFFFFF": "White",
	"#FF0000": "Red",
	"#00FF00": "Green",
	"#0000FF": "Blue",
	"#FFFF00": "Yellow",
	"#FFA500": "Orange",
	"#800080": "Purple",
	"#808080": "Gray",
	"#C0C0C0": "Silver",
	"#FFC0CB": "Pink",
	"#A52A2A": "Brown",
	"#00FFFF": "Cyan",
	"#FF00FF": "Magenta",
}

// ColorName returns the display name of a hex color. Lookup ignores case.
// Unknown colors are returned unchanged and an empty input returns "".
func ColorName(hex string) string {
	if hex == "" {
		return ""
	}
	if name, ok := colorNames[strings.ToUpper(hex)]; ok {
		return name
	}
	return hex
}
