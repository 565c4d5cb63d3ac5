package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#ff0000", "Red"},
		{"#FF0000", "Red"},
		{"#Ff0000", "Red"},
		{"#000000", "Black"},
		{"#ffffff", "White"},
		{"#00ff00", "Green"},
		{"#0000FF", "Blue"},
		{"#FFFF00", "Yellow"},
		{"#FFA500", "Orange"},
		{"#800080", "Purple"},
		{"#808080", "Gray"},
		{"#c0c0c0", "Silver"},
		{"#FFC0CB", "Pink"},
		{"#A52A2A", "Brown"},
		{"#00FFFF", "Cyan"},
		{"#FF00FF", "Magenta"},
		{"#123456", "#123456"},
		{"#abcdef", "#abcdef"},
		{"red", "red"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorName(tt.in), tt.in)
	}
}
