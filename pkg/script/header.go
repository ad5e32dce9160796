package script

import (
	"math"
	"strings"
)

// Header defaults.
const (
	DefaultDelimiter = "!"
	DefaultWidth     = 71
)

// Header centres the upper-cased title between two runs of delimiter,
// sized so the line is about limit characters wide. Halves round to even,
// so both runs always have the same length.
func Header(title, delimiter string, limit int) string {
	symbols := int(math.RoundToEven(float64(limit-len(title)) / 2))
	if symbols < 0 {
		symbols = 0
	}
	run := strings.Repeat(delimiter, symbols)
	return run + " " + strings.ToUpper(title) + " " + run
}

// SectionTitle is the header title of a configuration section.
func SectionTitle(section string) string {
	return section + " configuration"
}
