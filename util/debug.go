package util

import (
	"log"
	"os"
	"sync/atomic"
)

const (
	DebugVariableName = "HIDDENMSG_DEBUG"
)

var debugMode atomic.Bool

func init() {
	debugMode.Store(os.Getenv(DebugVariableName) != "")
}

func SetDebug(enabled bool) {
	debugMode.Store(enabled)
}

func DebugPrintln(args ...any) {
	if debugMode.Load() {
		log.Println(args...)
	}
}

func DebugPrintf(format string, args ...any) {
	if debugMode.Load() {
		log.Printf(format, args...)
	}
}
