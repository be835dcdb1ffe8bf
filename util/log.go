package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

/*
 * a small levelled logger. Lines go to the file named in LoggerInfo, or to
 * stderr if there is none.
 */
const (
	Error   = 1
	Warning = 2
	Info    = 4

	RedColor     = "\033[31m"
	YellowColor  = "\033[33m"
	GreenColor   = "\033[32m"
	CyanColor    = "\033[36m"
	BlueColor    = "\033[34m"
	MagentaColor = "\033[35m"
	ResetColor   = "\033[0m"
)

type LoggerInfo struct {
	Filename  string `yaml:"filename"`
	IsColored bool   `yaml:"is_colored"`
	SaveTime  bool   `yaml:"save_time"`
	Mode      uint8  `yaml:"mode"`
}

type Logger struct {
	li      *LoggerInfo
	out     io.Writer // used instead of the file when set
	colored bool
	mtx     sync.Mutex
}

func NewLogger(li *LoggerInfo) *Logger {
	l := &Logger{li: li}
	if li.Filename == "" {
		l.out = os.Stderr
		// no escape codes into pipes and dumb terminals
		l.colored = li.IsColored && termenv.NewOutput(os.Stderr).Profile != termenv.Ascii
	} else {
		l.colored = li.IsColored
	}
	return l
}

// NewWriterLogger logs into w, without colors.
func NewWriterLogger(li *LoggerInfo, w io.Writer) *Logger {
	return &Logger{li: li, out: w}
}

func (l *Logger) colorize(line string, color string) string {
	if l.colored {
		return color + line + ResetColor
	}
	return line
}

func (l *Logger) prepareString(str string, clr string) string {
	toWrite := l.colorize(str, clr) + " "
	if l.li.SaveTime {
		toWrite += time.Now().Format(time.RFC3339) + " "
	}
	return toWrite
}

func (l *Logger) LogString(s string) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.out != nil {
		fmt.Fprintln(l.out, s)
		return
	}
	// just append line
	f, err := os.OpenFile(l.li.Filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err == nil {
		defer f.Close()
		f.WriteString(s + "\n")
	}
}

func (l *Logger) LogError(err error) {
	if l.li.Mode&Error == Error {
		toWrite := l.prepareString("[ERROR]", RedColor) + err.Error()
		l.LogString(toWrite)
	}
}

func (l *Logger) LogWarning(warning string) {
	if l.li.Mode&Warning == Warning {
		toWrite := l.prepareString("[WARNING]", YellowColor) + warning
		l.LogString(toWrite)
	}
}

func (l *Logger) LogInfo(info string) {
	if l.li.Mode&Info == Info {
		toWrite := l.prepareString("[INFO]", CyanColor) + info
		l.LogString(toWrite)
	}
}

func (l *Logger) LogInfof(format string, args ...any) {
	l.LogInfo(fmt.Sprintf(format, args...))
}
