package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

/*
 * a small leveled logger. Lines go to a file when one is configured,
 * otherwise to stderr. A nil *Logger is valid and discards everything,
 * so library code can log without checking.
 */
const (
	Error   = 1
	Warning = 2
	Info    = 4

	RedColor    = "\033[31m"
	YellowColor = "\033[33m"
	CyanColor   = "\033[36m"
	ResetColor  = "\033[0m"
)

type LoggerInfo struct {
	Filename  string `yaml:"filename"`
	IsColored bool   `yaml:"is_colored"`
	SaveTime  bool   `yaml:"save_time"`
	Mode      uint8  `yaml:"mode"`
}

type Logger struct {
	li  *LoggerInfo
	out io.Writer // used instead of li.Filename when set
	mtx sync.Mutex
	now func() time.Time
}

func NewLogger(li *LoggerInfo) *Logger {
	return &Logger{
		li:  li,
		now: time.Now,
	}
}

// NewWriterLogger logs into w regardless of the configured filename.
func NewWriterLogger(li *LoggerInfo, w io.Writer) *Logger {
	l := NewLogger(li)
	l.out = w
	return l
}

func (l *Logger) colorize(line string, color string) string {
	if l.li.IsColored {
		return color + line + ResetColor
	}
	return line
}

func (l *Logger) prepareString(str string, clr string) string {
	toWrite := l.colorize(str, clr) + " "
	if l.li.SaveTime {
		toWrite += l.now().Format(time.RFC3339) + " "
	}
	return toWrite
}

func (l *Logger) LogString(s string) {
	if l == nil {
		return
	}
	l.mtx.Lock()
	defer l.mtx.Unlock()
	switch {
	case l.out != nil:
		fmt.Fprintln(l.out, s)
	case l.li.Filename == "":
		fmt.Fprintln(os.Stderr, s)
	default:
		// just append line
		f, err := os.OpenFile(l.li.Filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err == nil {
			defer f.Close()
			f.WriteString(s + "\n")
		}
	}
}

func (l *Logger) enabled(level uint8) bool {
	return l != nil && l.li != nil && l.li.Mode&level == level
}

func (l *Logger) LogError(err error) {
	if l.enabled(Error) {
		l.LogString(l.prepareString("[ERROR]", RedColor) + err.Error())
	}
}

func (l *Logger) LogWarning(warning string) {
	if l.enabled(Warning) {
		l.LogString(l.prepareString("[WARNING]", YellowColor) + warning)
	}
}

func (l *Logger) LogInfo(info string) {
	if l.enabled(Info) {
		l.LogString(l.prepareString("[INFO]", CyanColor) + info)
	}
}

func (l *Logger) LogWarningf(format string, args ...any) {
	if l.enabled(Warning) {
		l.LogWarning(fmt.Sprintf(format, args...))
	}
}

func (l *Logger) LogInfof(format string, args ...any) {
	if l.enabled(Info) {
		l.LogInfo(fmt.Sprintf(format, args...))
	}
}
