package config

import (
	"strings"
	"sync"

	"github.com/philipp01105/pluginlog/core"
)

// Property keys
const (
	KeyPrefix           = "slf4j."
	KeyDefaultLogLevel  = KeyPrefix + "defaultLogLevel"
	KeyLogPrefix        = KeyPrefix + "log."
	KeyShowHeader       = KeyPrefix + "showHeader"
	KeyShowThreadName   = KeyPrefix + "showThreadName"
	KeyShowLogName      = KeyPrefix + "showLogName"
	KeyShowShortLogName = KeyPrefix + "showShortLogName"
)

// Fallback values used when a key is absent or malformed
const (
	DefaultLevel               = core.InfoLevel
	DefaultShowHeader          = false
	DefaultShowThreadName      = false
	DefaultShowLoggerName      = false
	DefaultShowShortLoggerName = true
)

// Snapshot is an immutable view of the logger configuration. Per-name
// levels are captured when the snapshot is loaded; later edits to the
// source are not observed until the next Load.
type Snapshot struct {
	DefaultLevel        core.Level
	ShowHeader          bool
	ShowThreadName      bool
	ShowLoggerName      bool
	ShowShortLoggerName bool

	// levels maps a logger name prefix to its configured level
	levels map[string]core.Level

	// lazy is set for sources that cannot list their keys. Each candidate
	// is read from src at most once.
	src  PropertySource
	lazy *sync.Map
}

type levelLookup struct {
	level core.Level
	ok    bool
}

// Defaults returns the configuration used before any host properties are known.
func Defaults() *Snapshot {
	return &Snapshot{
		DefaultLevel:        DefaultLevel,
		ShowHeader:          DefaultShowHeader,
		ShowThreadName:      DefaultShowThreadName,
		ShowLoggerName:      DefaultShowLoggerName,
		ShowShortLoggerName: DefaultShowShortLoggerName,
	}
}

// Load builds a Snapshot from src. A nil src yields Defaults().
func Load(src PropertySource) *Snapshot {
	s := Defaults()
	if src == nil {
		return s
	}

	s.DefaultLevel = parseLevel(src, KeyDefaultLogLevel, DefaultLevel)
	s.ShowHeader = parseBool(src, KeyShowHeader, DefaultShowHeader)
	s.ShowThreadName = parseBool(src, KeyShowThreadName, DefaultShowThreadName)
	s.ShowLoggerName = parseBool(src, KeyShowLogName, DefaultShowLoggerName)
	s.ShowShortLoggerName = parseBool(src, KeyShowShortLogName, DefaultShowShortLoggerName)

	var complete bool
	if e, ok := src.(Enumerable); ok {
		var keys []string
		keys, complete = e.Keys()
		for _, k := range keys {
			name, ok := strings.CutPrefix(k, KeyLogPrefix)
			if !ok {
				continue
			}
			if _, seen := s.levels[name]; seen {
				continue
			}
			if v, ok := src.Property(k); ok {
				if s.levels == nil {
					s.levels = make(map[string]core.Level)
				}
				s.levels[name] = levelOf(v)
			}
		}
	}
	if !complete {
		s.src = src
		s.lazy = new(sync.Map)
	}
	return s
}

// ResolveLevel returns the effective level for the named logger by walking
// from the full name up to the root and taking the first configured level.
func (s *Snapshot) ResolveLevel(name string) core.Level {
	if s.levels == nil && s.src == nil {
		return s.DefaultLevel
	}

	candidate := name
	for {
		if l, ok := s.lookup(candidate); ok {
			return l
		}
		if candidate == "" {
			return s.DefaultLevel
		}
		if i := strings.LastIndexByte(candidate, '.'); i >= 0 {
			candidate = candidate[:i]
		} else {
			candidate = ""
		}
	}
}

func (s *Snapshot) lookup(candidate string) (core.Level, bool) {
	if l, ok := s.levels[candidate]; ok {
		return l, true
	}
	if s.src == nil {
		return 0, false
	}
	if v, ok := s.lazy.Load(candidate); ok {
		r := v.(levelLookup)
		return r.level, r.ok
	}
	var r levelLookup
	if v, ok := s.src.Property(KeyLogPrefix + candidate); ok {
		r = levelLookup{level: levelOf(v), ok: true}
	}
	v, _ := s.lazy.LoadOrStore(candidate, r)
	r = v.(levelLookup)
	return r.level, r.ok
}

// levelOf parses a per-name value. Unrecognized values mean info.
func levelOf(v string) core.Level {
	if l, ok := core.ParseLevel(v); ok {
		return l
	}
	return DefaultLevel
}

func parseLevel(src PropertySource, key string, fallback core.Level) core.Level {
	v, ok := src.Property(key)
	if !ok {
		return fallback
	}
	if l, ok := core.ParseLevel(v); ok {
		return l
	}
	return fallback
}

// parseBool accepts only "true" and "false", case-insensitively.
func parseBool(src PropertySource, key string, fallback bool) bool {
	v, ok := src.Property(key)
	if !ok {
		return fallback
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true
	case strings.EqualFold(v, "false"):
		return false
	default:
		return fallback
	}
}
