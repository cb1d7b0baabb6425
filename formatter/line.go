package formatter

import "github.com/philipp01105/pluginlog/core"

// Header is the constant token written first when headers are enabled
const Header = "[SLF4J]"

// pre-formatted tags for the levels a sink cannot tell apart from INFO
var levelTags = [...]string{
	core.TraceLevel: "[TRACE] ",
	core.DebugLevel: "[DEBUG] ",
}

// Line describes the decorations prepended to a formatted message.
type Line struct {
	Header   bool
	Level    core.Level
	Thread   string
	Name     string
	ShowName bool
	Message  string
}

// AppendTo appends the decorated line to dst. Tokens appear in fixed order:
// header, level tag (TRACE and DEBUG only), [thread], {name}, message.
func (l *Line) AppendTo(dst []byte) []byte {
	if l.Header {
		dst = append(dst, Header...)
		dst = append(dst, ' ')
	}
	if l.Level >= 0 && int(l.Level) < len(levelTags) {
		dst = append(dst, levelTags[l.Level]...)
	}
	if l.Thread != "" {
		dst = append(dst, '[')
		dst = append(dst, l.Thread...)
		dst = append(dst, "] "...)
	}
	if l.ShowName {
		dst = append(dst, '{')
		dst = append(dst, l.Name...)
		dst = append(dst, "} "...)
	}
	return append(dst, l.Message...)
}

// String returns the decorated line.
func (l *Line) String() string {
	if !l.Header && l.Thread == "" && !l.ShowName && l.Level > core.DebugLevel {
		return l.Message
	}
	buf := getBuffer()
	defer putBuffer(buf)
	buf.Write(l.AppendTo(buf.AvailableBuffer()))
	return buf.String()
}
