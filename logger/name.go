package logger

import (
	"reflect"
	"strings"
)

// ShortName abbreviates every segment of a dotted name except the last to
// its first character: "org.example.Foo" becomes "o.e.Foo".
func ShortName(name string) string {
	if strings.IndexByte(name, '.') < 0 {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	for {
		i := strings.IndexByte(name, '.')
		if i < 0 {
			b.WriteString(name)
			return b.String()
		}
		if i > 0 {
			b.WriteString(name[:1])
		}
		b.WriteByte('.')
		name = name[i+1:]
	}
}

// shortName returns the memoized short form of the logger name.
// Concurrent first calls may both compute it; the results are identical.
func (l *Logger) shortName() string {
	if p := l.short.Load(); p != nil {
		return *p
	}
	s := ShortName(l.name)
	l.short.Store(&s)
	return s
}

// NameOf derives a dotted logger name from the dynamic type of v, e.g.
// "github.com.acme.store.DB" for a *store.DB.
func NameOf(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if pkg := t.PkgPath(); pkg != "" {
		name = pkg + "." + name
	}
	if name == "" {
		name = t.String()
	}
	return strings.ReplaceAll(name, "/", ".")
}
