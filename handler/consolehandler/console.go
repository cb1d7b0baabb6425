package consolehandler

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/formatter"
	"github.com/philipp01105/pluginlog/handler"
)

// ColorMode selects when color codes in messages are rendered as ANSI sequences
type ColorMode int

const (
	// ColorAuto renders colors only when the writer is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways renders colors regardless of the writer
	ColorAlways
	// ColorNever leaves color codes untouched
	ColorNever
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter, colored per Color)
	Formatter formatter.Formatter
	// Level is the lowest sink level written (default: SinkInfo)
	Level core.SinkLevel
	// Color controls color translation for the default formatter
	Color ColorMode
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// ConsoleHandler writes formatted records synchronously to a writer.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	level           core.SinkLevel
	concurrentSafe  bool // true if writer is safe for concurrent Write calls
	stats           *handler.Stats
	mu              sync.Mutex
	lw              lockedWriter
	closed          atomic.Bool
}

// lockedWriter wraps an io.Writer with the handler mutex, acquiring the lock
// only for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{
			Colors: useColor(cfg.Color, cfg.Writer),
		})
	}

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		level:          cfg.Level,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          handler.NewStats(),
	}
	// Cache WriterFormatter for the pooled-buffer path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}
	return h
}

// Handle formats and writes a record.
func (h *ConsoleHandler) Handle(r *core.Record) error {
	if h.closed.Load() {
		return nil
	}
	err := h.write(r)
	h.stats.Record(r.Level, err)
	return err
}

func (h *ConsoleHandler) write(r *core.Record) error {
	w := io.Writer(&h.lw)
	if h.concurrentSafe {
		w = h.writer
	}

	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(r, w)
	}

	data, err := h.formatter.Format(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Enabled reports whether level reaches the handler threshold
func (h *ConsoleHandler) Enabled(level core.SinkLevel) bool {
	return level >= h.level && !h.closed.Load()
}

// Stats returns the handler counters
func (h *ConsoleHandler) Stats() *handler.Stats {
	return h.stats
}

// Close stops the handler from writing. The underlying writer is not
// closed because it is usually shared with the rest of the process.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// useColor resolves a ColorMode against the writer
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
