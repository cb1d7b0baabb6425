// Package logger is the call surface plugin code logs through.
//
// Loggers are obtained from a Factory by dotted name and cached, so every
// GetLogger call with the same name returns the same *Logger. "ROOT" (in any
// case) names the root logger, whose name is empty.
//
// Each level has four call shapes plus an enabled check:
//
//	log.Info("ready")                      // message used verbatim
//	log.Infof("loaded {} chunks", n)       // {} placeholders
//	log.Infof("save failed", err)          // trailing error is attached
//	log.InfoErr("save failed", err)        // explicit error
//	if log.IsDebugEnabled() { ... }
//
// Every call first asks the factory's binder to bind to the owning plugin,
// then checks the requested level against the level configured for the
// logger name (slf4j.log.<name>, inherited from parent names) and against
// the sink's own filter. Disabled calls return before any formatting.
//
// Enabled calls are decorated according to the plugin's properties: an
// optional [SLF4J] header, a [TRACE] or [DEBUG] tag (the sink cannot tell
// those apart from INFO), an optional [goroutine N] token, and the full or
// abbreviated logger name in braces:
//
//	[SLF4J] [DEBUG] {c.e.t.Service} x=1
//
// The level methods have no error result. Errors, such as a plugin.yml
// that cannot be read, go to the factory's error handler (stderr unless
// WithErrorHandler is given) and the call is dropped. Log returns them.
//
// The package keeps a default factory bound to manifest.Default() and
// host.Default(); Get and GetFor use it. FXModule wires a factory into an
// Fx application instead.
package logger
