package logger_test

import (
	"errors"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/pluginlog/binder"
	"github.com/philipp01105/pluginlog/config"
	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/formatter"
	"github.com/philipp01105/pluginlog/host"
	"github.com/philipp01105/pluginlog/logger"
	"github.com/philipp01105/pluginlog/manifest"
)

var noName = config.Properties{config.KeyShowShortLogName: "false"}

func TestFactory_SameInstance(t *testing.T) {
	f, _, _ := newBound(nil)

	if f.GetLogger("a.b") != f.GetLogger("a.b") {
		t.Error("Expected the same instance for the same name")
	}
	if f.GetLogger("a.b") == f.GetLogger("a.c") {
		t.Error("Expected different instances for different names")
	}
}

func TestFactory_Root(t *testing.T) {
	f, _, _ := newBound(nil)

	root := f.Root()
	if root.Name() != "" {
		t.Errorf("Expected empty root name, got: %q", root.Name())
	}
	for _, name := range []string{"ROOT", "root", "Root", ""} {
		if f.GetLogger(name) != root {
			t.Errorf("Expected %q to return the root logger", name)
		}
	}
}

func TestFactory_ConcurrentGetLogger(t *testing.T) {
	f, _, _ := newBound(nil)

	var g errgroup.Group
	got := make([]*logger.Logger, 64)
	for i := range got {
		g.Go(func() error {
			got[i] = f.GetLogger("com.example.Shared")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i, l := range got {
		if l != got[0] {
			t.Fatalf("goroutine %d got a different instance", i)
		}
	}
}

type named struct{}

func TestFactory_GetLoggerFor(t *testing.T) {
	f, _, _ := newBound(nil)

	l := f.GetLoggerFor(&named{})
	want := "github.com.philipp01105.pluginlog.logger_test.named"
	if l.Name() != want {
		t.Errorf("Expected %q, got: %q", want, l.Name())
	}
	if f.GetLoggerFor(named{}) != l {
		t.Error("Expected pointer and value to share a logger")
	}
}

func TestLogger_LevelGateMonotonic(t *testing.T) {
	levels := []logger.Level{logger.TraceLevel, logger.DebugLevel, logger.InfoLevel, logger.WarnLevel, logger.ErrorLevel}

	for _, configured := range levels {
		t.Run(configured.String(), func(t *testing.T) {
			f, _, _ := newBound(config.Properties{config.KeyDefaultLogLevel: configured.String()})
			l := f.GetLogger("x")

			enabled := false
			for _, level := range levels {
				got := l.IsEnabled(level)
				if got != (level >= configured) {
					t.Errorf("IsEnabled(%v) = %v with level %v", level, got, configured)
				}
				if enabled && !got {
					t.Errorf("%v disabled although a lower level is enabled", level)
				}
				enabled = got
			}
		})
	}
}

func TestLogger_LevelPredicates(t *testing.T) {
	f, _, _ := newBound(config.Properties{config.KeyDefaultLogLevel: "info"})
	l := f.GetLogger("x")

	if l.IsTraceEnabled() || l.IsDebugEnabled() {
		t.Error("Expected TRACE and DEBUG to be disabled")
	}
	if !l.IsInfoEnabled() || !l.IsWarnEnabled() || !l.IsErrorEnabled() {
		t.Error("Expected INFO, WARN and ERROR to be enabled")
	}
}

func TestLogger_SinkFilter(t *testing.T) {
	f, own, _ := newBound(config.Properties{config.KeyDefaultLogLevel: "trace"})
	own.threshold = core.SinkWarning
	l := f.GetLogger("x")

	if l.IsInfoEnabled() || l.IsTraceEnabled() {
		t.Error("Expected the sink threshold to disable INFO")
	}
	if !l.IsWarnEnabled() {
		t.Error("Expected WARN to be enabled")
	}

	l.Info("dropped")
	l.Warn("kept")
	if msgs := own.messages(); len(msgs) != 1 || !strings.HasSuffix(msgs[0], "kept") {
		t.Errorf("Expected only the warning, got: %v", msgs)
	}
}

func TestLogger_Hierarchy(t *testing.T) {
	f, _, _ := newBound(config.Properties{"slf4j.log.a": "warn"})

	l := f.GetLogger("a.b.c")
	if l.IsInfoEnabled() {
		t.Error("Expected a.b.c to inherit WARN from a")
	}
	if !l.IsWarnEnabled() {
		t.Error("Expected WARN to be enabled for a.b.c")
	}
	if !f.GetLogger("other").IsInfoEnabled() {
		t.Error("Expected the default level for unrelated names")
	}
}

type countingStringer struct{ n *atomic.Int32 }

func (c countingStringer) String() string {
	c.n.Add(1)
	return "v"
}

func TestLogger_NoFormattingWhenDisabled(t *testing.T) {
	f, own, _ := newBound(nil)
	own.threshold = core.SinkSevere
	l := f.GetLogger("x")

	var n atomic.Int32
	l.Debugf("v={}", countingStringer{&n})
	l.Infof("v={}", countingStringer{&n})
	l.Warnf("v={}", countingStringer{&n})
	if n.Load() != 0 {
		t.Errorf("Expected no argument rendering, got %d calls", n.Load())
	}

	l.Errorf("v={}", countingStringer{&n})
	if n.Load() != 1 {
		t.Errorf("Expected one rendering for the enabled call, got %d", n.Load())
	}
}

func TestLogger_CallShapes(t *testing.T) {
	f, own, _ := newBound(noName)
	l := f.GetLogger("x")
	boom := errors.New("boom")

	l.Info("literal {}")
	l.Infof("x={}", 1)
	l.Infof("x={} y={}", 1, 2)
	l.Infof("x={} y={} z={}", 1, 2, 3)
	l.InfoErr("failed {}", boom)
	l.Infof("oops", boom)

	records := own.all()
	want := []struct {
		msg string
		err error
	}{
		{"literal {}", nil},
		{"x=1", nil},
		{"x=1 y=2", nil},
		{"x=1 y=2 z=3", nil},
		{"failed {}", boom},
		{"oops", boom},
	}
	if len(records) != len(want) {
		t.Fatalf("Expected %d records, got: %d", len(want), len(records))
	}
	for i, w := range want {
		if records[i].Message != w.msg {
			t.Errorf("record %d: expected %q, got: %q", i, w.msg, records[i].Message)
		}
		if records[i].Err != w.err {
			t.Errorf("record %d: expected error %v, got: %v", i, w.err, records[i].Err)
		}
		if records[i].LoggerName != "x" {
			t.Errorf("record %d: expected logger name x, got: %q", i, records[i].LoggerName)
		}
	}
}

func TestLogger_LevelMapping(t *testing.T) {
	f, own, _ := newBound(config.Properties{config.KeyDefaultLogLevel: "trace", config.KeyShowShortLogName: "false"})
	l := f.GetLogger("x")

	l.Trace("t")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	want := []struct {
		level core.SinkLevel
		msg   string
	}{
		{core.SinkInfo, "[TRACE] t"},
		{core.SinkInfo, "[DEBUG] d"},
		{core.SinkInfo, "i"},
		{core.SinkWarning, "w"},
		{core.SinkSevere, "e"},
	}
	records := own.all()
	if len(records) != len(want) {
		t.Fatalf("Expected %d records, got: %d", len(want), len(records))
	}
	for i, w := range want {
		if records[i].Level != w.level || records[i].Message != w.msg {
			t.Errorf("record %d: expected %v %q, got: %v %q", i, w.level, w.msg, records[i].Level, records[i].Message)
		}
	}
}

func TestLogger_Decoration(t *testing.T) {
	tests := []struct {
		name  string
		props config.Properties
		call  func(l *logger.Logger)
		want  string
	}{
		{
			name:  "short name by default",
			props: nil,
			call:  func(l *logger.Logger) { l.Info("m") },
			want:  "{o.e.Foo} m",
		},
		{
			name:  "no name",
			props: noName,
			call:  func(l *logger.Logger) { l.Info("m") },
			want:  "m",
		},
		{
			name:  "full name wins",
			props: config.Properties{config.KeyShowLogName: "true"},
			call:  func(l *logger.Logger) { l.Info("m") },
			want:  "{org.example.Foo} m",
		},
		{
			name:  "header and trace tag",
			props: config.Properties{config.KeyShowHeader: "TRUE", config.KeyShowShortLogName: "false", config.KeyDefaultLogLevel: "trace"},
			call:  func(l *logger.Logger) { l.Trace("m") },
			want:  "[SLF4J] [TRACE] m",
		},
		{
			name:  "debug tag before name",
			props: config.Properties{config.KeyDefaultLogLevel: "debug"},
			call:  func(l *logger.Logger) { l.Debugf("m{}", 1) },
			want:  "[DEBUG] {o.e.Foo} m1",
		},
		{
			name:  "header without tag for warn",
			props: config.Properties{config.KeyShowHeader: "true"},
			call:  func(l *logger.Logger) { l.Warn("m") },
			want:  "[SLF4J] {o.e.Foo} m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, own, _ := newBound(tt.props)
			tt.call(f.GetLogger("org.example.Foo"))

			msgs := own.messages()
			if len(msgs) != 1 || msgs[0] != tt.want {
				t.Errorf("Expected %q, got: %q", tt.want, msgs)
			}
		})
	}
}

func TestLogger_ThreadName(t *testing.T) {
	f, own, _ := newBound(config.Properties{
		config.KeyShowThreadName:   "true",
		config.KeyShowHeader:       "true",
		config.KeyShowShortLogName: "true",
	})
	f.GetLogger("a.b").Info("m")

	msgs := own.messages()
	re := regexp.MustCompile(`^\[SLF4J\] \[goroutine \d+\] \{a\.b\} m$`)
	if len(msgs) != 1 || !re.MatchString(msgs[0]) {
		t.Errorf("Expected thread token, got: %q", msgs)
	}
}

func TestLogger_Caller(t *testing.T) {
	f, own, _ := newBound(nil)
	f.GetLogger("x").Info("here")

	r := own.all()[0]
	if !r.Caller.Defined {
		t.Fatal("Expected caller information")
	}
	if !strings.HasSuffix(r.Caller.Function, "logger_test.TestLogger_Caller") {
		t.Errorf("Expected the test function as caller, got: %s", r.Caller.Function)
	}
	if r.Caller.ShortFile != "logger_test.go" {
		t.Errorf("Expected logger_test.go, got: %s", r.Caller.ShortFile)
	}
	if r.Caller.Method() != "TestLogger_Caller" {
		t.Errorf("Expected method name, got: %s", r.Caller.Method())
	}
}

func TestLogger_WithoutCaller(t *testing.T) {
	f, own, _ := newBound(nil, logger.WithCaller(false))
	f.GetLogger("x").Info("here")

	if own.all()[0].Caller.Defined {
		t.Error("Expected no caller information")
	}
}

func TestLogger_Timestamp(t *testing.T) {
	before := time.Now()
	f, own, _ := newBound(nil)
	f.GetLogger("x").Info("now")

	ts := own.all()[0].Time
	if ts.Before(before) || ts.After(time.Now()) {
		t.Errorf("Expected a current timestamp, got: %v", ts)
	}

	f, own, _ = newBound(nil, logger.WithCoarseClock(true))
	f.GetLogger("x").Info("coarse")
	if ts := own.all()[0].Time; ts.IsZero() || time.Since(ts) > time.Second {
		t.Errorf("Expected a coarse timestamp, got: %v", ts)
	}
}

func TestLogger_Log(t *testing.T) {
	f, own, _ := newBound(noName)
	l := f.GetLogger("x")
	explicit := errors.New("explicit")
	trailing := errors.New("trailing")

	if err := l.Log(logger.WarnLevel, explicit, "failed {}", "job"); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if err := l.Log(logger.ErrorLevel, nil, "oops", trailing); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	records := own.all()
	if records[0].Message != "failed job" || records[0].Err != explicit {
		t.Errorf("Unexpected first record: %+v", records[0])
	}
	if records[1].Message != "oops" || records[1].Err != trailing {
		t.Errorf("Unexpected second record: %+v", records[1])
	}
}

func TestLogger_AmbiguousError(t *testing.T) {
	f, own, _ := newBound(noName)
	l := f.GetLogger("x")

	err := l.Log(logger.ErrorLevel, errors.New("explicit"), "failed {}", "job", errors.New("trailing"))
	var amb *formatter.AmbiguousThrowableError
	if !errors.As(err, &amb) {
		t.Fatalf("Expected AmbiguousThrowableError, got: %v", err)
	}
	if len(own.all()) != 0 {
		t.Error("Expected nothing to be emitted")
	}
}

func TestLogger_SinkError(t *testing.T) {
	var reported []error
	f, own, _ := newBound(nil, logger.WithErrorHandler(func(err error) { reported = append(reported, err) }))
	own.err = errors.New("write failed")
	l := f.GetLogger("x")

	if err := l.Log(logger.InfoLevel, nil, "m"); err == nil {
		t.Error("Expected the sink error from Log")
	}
	l.Info("m")
	if len(reported) != 1 {
		t.Errorf("Expected the level method to report the sink error, got: %v", reported)
	}
}

type flakyDiscoverer struct {
	err   error
	calls atomic.Int32
}

func (d *flakyDiscoverer) OwnerName() (string, error) {
	d.calls.Add(1)
	if d.err != nil {
		return "", d.err
	}
	return owner, nil
}

func TestLogger_DiscoveryError(t *testing.T) {
	def := &capture{}
	own := &capture{}
	reg := host.NewRegistry(def)
	if err := reg.Register(&host.Plugin{Name: owner, Handler: own, Properties: noName}); err != nil {
		t.Fatal(err)
	}
	d := &flakyDiscoverer{err: errors.New("plugin.yml missing")}

	var reported []error
	f := logger.NewFactory(binder.New(d, reg), logger.WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))
	l := f.GetLogger("x")

	l.Info("dropped")
	var de *binder.DiscoveryError
	if len(reported) != 1 || !errors.As(reported[0], &de) {
		t.Fatalf("Expected one DiscoveryError, got: %v", reported)
	}
	if err := l.Log(logger.InfoLevel, nil, "dropped"); !errors.As(err, &de) {
		t.Errorf("Expected DiscoveryError from Log, got: %v", err)
	}
	if l.IsErrorEnabled() {
		t.Error("Expected nothing enabled while discovery fails")
	}
	if len(def.all())+len(own.all()) != 0 {
		t.Error("Expected no emission")
	}
	if got := d.calls.Load(); got != 3 {
		t.Errorf("Expected discovery on every call, got: %d", got)
	}

	d.err = nil
	l.Info("recovered")
	if msgs := own.messages(); len(msgs) != 1 || msgs[0] != "recovered" {
		t.Errorf("Expected recovery after discovery succeeds, got: %v", msgs)
	}
}

func TestEndToEnd(t *testing.T) {
	def := &capture{}
	reg := host.NewRegistry(def)
	b := binder.New(manifest.Static(owner), reg)
	f := logger.NewFactory(b)
	l := f.GetLogger("com.example.Tracker")

	l.Info("hello")
	if b.CurrentSink() != def {
		t.Fatal("Expected the default sink before registration")
	}
	msgs := def.messages()
	if len(msgs) != 1 || msgs[0] != "{c.e.Tracker} hello" {
		t.Fatalf("Expected short-name decorated line, got: %q", msgs)
	}
	if def.all()[0].Level != core.SinkInfo {
		t.Errorf("Expected INFO, got: %v", def.all()[0].Level)
	}

	own := &capture{}
	if err := reg.Register(&host.Plugin{Name: owner, Handler: own, Properties: noName}); err != nil {
		t.Fatal(err)
	}
	if err := b.Initialize(true); err != nil {
		t.Fatalf("Initialize(true) error = %v", err)
	}

	l.Warnf("x={}", 1)
	records := own.all()
	if len(records) != 1 {
		t.Fatalf("Expected one record at the owner sink, got: %d", len(records))
	}
	if records[0].Level != core.SinkWarning || records[0].Message != "x=1" {
		t.Errorf("Expected WARNING x=1, got: %v %q", records[0].Level, records[0].Message)
	}
	if len(def.all()) != 1 {
		t.Error("Expected nothing new at the default sink")
	}
}

func TestLogger_ConfigFrozenUntilReinitialize(t *testing.T) {
	props := config.Properties{"slf4j.log.a": "warn"}
	f, own, _ := newBound(props)
	l := f.GetLogger("a.b")

	l.Info("before")
	props["slf4j.log.a"] = "trace"
	props[config.KeyDefaultLogLevel] = "error"
	l.Info("after")
	if l.IsTraceEnabled() {
		t.Error("Expected TRACE to stay disabled until reinitialization")
	}
	if got := own.messages(); len(got) != 0 {
		t.Errorf("Expected no output at the old WARN level, got: %v", got)
	}

	if err := f.Binder().Initialize(true); err != nil {
		t.Fatal(err)
	}
	l.Info("reloaded")
	if got := own.messages(); len(got) != 1 || got[0] != "{a.b} reloaded" {
		t.Errorf("Expected the refreshed level to apply, got: %v", got)
	}
}

func TestInitializeIdempotent(t *testing.T) {
	f, own, _ := newBound(config.Properties{config.KeyShowHeader: "true"})
	b := f.Binder()

	if err := b.Initialize(false); err != nil {
		t.Fatal(err)
	}
	sink, level, snap := b.Resolve("x")
	if err := b.Initialize(false); err != nil {
		t.Fatal(err)
	}
	sink2, level2, snap2 := b.Resolve("x")
	if sink != sink2 || level != level2 || snap != snap2 || sink != own {
		t.Error("Expected no state change from a second Initialize(false)")
	}
}

func TestLogger_ConcurrentLogging(t *testing.T) {
	f, own, _ := newBound(noName)
	b := f.Binder()

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			l := f.GetLogger("a.b")
			for j := 0; j < 100; j++ {
				l.Infof("n={}", j)
			}
			return nil
		})
	}
	g.Go(func() error {
		for j := 0; j < 20; j++ {
			if err := b.Initialize(true); err != nil {
				return err
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := len(own.all()); got != 800 {
		t.Errorf("Expected 800 records, got: %d", got)
	}
}

func TestShortName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"org.example.Foo", "o.e.Foo"},
		{"a.b.c", "a.b.c"},
		{"Foo", "Foo"},
		{"", ""},
		{"com.example.db.Pool", "c.e.d.Pool"},
		{"alpha..Beta", "a..Beta"},
	}
	for _, tt := range tests {
		if got := logger.ShortName(tt.in); got != tt.want {
			t.Errorf("ShortName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if logger.ParseLevel("WARN") != logger.WarnLevel {
		t.Error("Expected WARN")
	}
	if logger.ParseLevel("verbose") != logger.InfoLevel {
		t.Error("Expected INFO fallback")
	}
}
