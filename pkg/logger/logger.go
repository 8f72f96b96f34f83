package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Logger struct {
	level  string
	prefix string
}

func New(level string) *Logger {
	return &Logger{level: strings.ToLower(level)}
}

// Named returns a logger that tags every line with the component name.
func (l *Logger) Named(component string) *Logger {
	return &Logger{level: l.level, prefix: "[" + component + "] "}
}

func (l *Logger) Info(msg string) {
	log.Printf("[INFO] %s%s", l.prefix, msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) {
	log.Printf("[ERROR] %s%s", l.prefix, msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(msg string) {
	if l.level == "debug" {
		log.Printf("[DEBUG] %s%s", l.prefix, msg)
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.level == "debug" {
		l.Debug(fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Warn(msg string) {
	log.Printf("[WARN] %s%s", l.prefix, msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Fatal(msg string) {
	log.Printf("[FATAL] %s%s", l.prefix, msg)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.Fatal(fmt.Sprintf(format, args...))
}
