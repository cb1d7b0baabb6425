package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/pluginlog/core"
)

// TextFormatter formats records as human-readable text
type TextFormatter struct {
	Config
	colors ColorMapper
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg, colors: NewColorMapper(cfg.Colors)}
}

// Format formats a record as text
func (f *TextFormatter) Format(r *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(r, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(r *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(r, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.SinkInfo:    " [INFO] ",
	core.SinkWarning: " [WARNING] ",
	core.SinkSevere:  " [SEVERE] ",
}

func (f *TextFormatter) formatToBuffer(r *core.Record, buf *bytes.Buffer) {
	buf.Write(r.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if r.Level >= 0 && int(r.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[r.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if f.IncludeCaller && r.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(r.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(r.Caller.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(f.colors.Map(r.Message))

	if r.Err != nil {
		buf.WriteString("\n\t")
		buf.WriteString(r.Err.Error())
	}

	buf.WriteByte('\n')
}
