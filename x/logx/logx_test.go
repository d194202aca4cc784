package logx

import "testing"

func capture(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	prev, prevLevel := Sink, threshold
	Sink = func(s string) { lines = append(lines, s) }
	t.Cleanup(func() { Sink, threshold = prev, prevLevel })
	return &lines
}

func TestFormat(t *testing.T) {
	lines := capture(t)
	New("comp").Info("window", "inside", Bool(true), "above_lower", "false", "dangling")
	if len(*lines) != 1 {
		t.Fatalf("got %d lines", len(*lines))
	}
	want := "[comp] window inside=true above_lower=false"
	if (*lines)[0] != want {
		t.Fatalf("got %q want %q", (*lines)[0], want)
	}
}

func TestLevelFilter(t *testing.T) {
	lines := capture(t)
	l := New("x")
	l.Debug("hidden")
	SetLevel(LevelDebug)
	l.Debug("shown")
	SetLevel(LevelError)
	l.Warn("hidden")
	l.Error("shown")
	if len(*lines) != 2 {
		t.Fatalf("got %v", *lines)
	}
}
