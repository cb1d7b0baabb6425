// Package config resolves logger configuration from a flat, string-keyed
// property source supplied by the host.
//
// Six keys are understood:
//
//	slf4j.defaultLogLevel     trace|debug|info|warn|error   (default info)
//	slf4j.log.<name>          level for logger <name> and its descendants
//	slf4j.showHeader          true|false                    (default false)
//	slf4j.showThreadName      true|false                    (default false)
//	slf4j.showLogName         true|false                    (default false)
//	slf4j.showShortLogName    true|false                    (default true)
//
// Anything missing or malformed falls back to the defaults above; loading
// configuration never fails.
//
// A Snapshot is built wholesale by Load and never mutated afterwards. The
// Resolver holds the current Snapshot and swaps it atomically on Refresh,
// so concurrent readers always see one complete configuration.
//
// Per-logger levels are resolved hierarchically on every call: for
// "a.b.c" the keys slf4j.log.a.b.c, slf4j.log.a.b, slf4j.log.a and
// slf4j.log. are consulted in that order.
//
// Property sources are provided for Go maps, environment variables and
// YAML documents. YAML files may nest keys; they are flattened with dots:
//
//	slf4j:
//	  defaultLogLevel: debug
//	  log:
//	    com.example.db: warn
package config
