package formatter

import "strings"

// ColorMapper translates in-message color codes for display.
type ColorMapper interface {
	Map(s string) string
}

// ColorCode is the prefix of a two-character color directive such as "§c"
const ColorCode = "§"

// NewColorMapper returns an ANSI mapper when enabled, otherwise a mapper
// that leaves messages untouched.
func NewColorMapper(enabled bool) ColorMapper {
	if enabled {
		return ansiMapper{}
	}
	return noColorMapper{}
}

type noColorMapper struct{}

func (noColorMapper) Map(s string) string { return s }

type ansiMapper struct{}

// ansiCodes maps color directive characters to ANSI escape sequences
var ansiCodes = map[byte]string{
	'0': "\x1b[0;30;22m", // black
	'1': "\x1b[0;34;22m", // dark blue
	'2': "\x1b[0;32;22m", // dark green
	'3': "\x1b[0;36;22m", // dark aqua
	'4': "\x1b[0;31;22m", // dark red
	'5': "\x1b[0;35;22m", // dark purple
	'6': "\x1b[0;33;22m", // gold
	'7': "\x1b[0;37;22m", // gray
	'8': "\x1b[0;30;1m",  // dark gray
	'9': "\x1b[0;34;1m",  // blue
	'a': "\x1b[0;32;1m",  // green
	'b': "\x1b[0;36;1m",  // aqua
	'c': "\x1b[0;31;1m",  // red
	'd': "\x1b[0;35;1m",  // light purple
	'e': "\x1b[0;33;1m",  // yellow
	'f': "\x1b[0;37;1m",  // white
	'k': "\x1b[5m",       // obfuscated
	'l': "\x1b[21m",      // bold
	'm': "\x1b[9m",       // strikethrough
	'n': "\x1b[4m",       // underline
	'o': "\x1b[3m",       // italic
	'r': "\x1b[0m",       // reset
}

var ansiReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(ansiCodes)*4)
	for c, seq := range ansiCodes {
		pairs = append(pairs, ColorCode+string(c), seq)
		if upper := strings.ToUpper(string(c)); upper != string(c) {
			pairs = append(pairs, ColorCode+upper, seq)
		}
	}
	return strings.NewReplacer(pairs...)
}()

func (ansiMapper) Map(s string) string {
	if !strings.Contains(s, ColorCode) {
		return s
	}
	return ansiReplacer.Replace(s) + ansiCodes['r']
}
