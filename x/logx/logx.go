// Package logx is the tagged println logger used by services and firmware
// entry points. It avoids fmt so it stays cheap on MCU builds.
package logx

// Level orders log severities.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	threshold = LevelInfo

	// Sink receives each formatted line. Defaults to the builtin println.
	Sink = func(line string) { println(line) }
)

// SetLevel drops lines below l.
func SetLevel(l Level) { threshold = l }

// Logger prefixes every line with "[tag]".
type Logger struct{ tag string }

func New(tag string) Logger { return Logger{tag: tag} }

func (l Logger) Debug(msg string, kv ...string) { l.emit(LevelDebug, msg, kv) }
func (l Logger) Info(msg string, kv ...string)  { l.emit(LevelInfo, msg, kv) }
func (l Logger) Warn(msg string, kv ...string)  { l.emit(LevelWarn, msg, kv) }
func (l Logger) Error(msg string, kv ...string) { l.emit(LevelError, msg, kv) }

// emit renders "[tag] msg k=v k=v". A trailing key without value is dropped.
func (l Logger) emit(lv Level, msg string, kv []string) {
	if lv < threshold {
		return
	}
	n := len(l.tag) + len(msg) + 3
	for _, s := range kv {
		n += len(s) + 1
	}
	b := make([]byte, 0, n)
	b = append(b, '[')
	b = append(b, l.tag...)
	b = append(b, "] "...)
	b = append(b, msg...)
	for i := 0; i+1 < len(kv); i += 2 {
		b = append(b, ' ')
		b = append(b, kv[i]...)
		b = append(b, '=')
		b = append(b, kv[i+1]...)
	}
	Sink(string(b))
}

// Bool renders b for key/value pairs.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
