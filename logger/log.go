package logger

import (
	"fmt"
)

// Level ordering: debug < info < error.
var level string = "info"

func GetLevel() string {
	return level
}

func SetLevel(lvl string) {
	if lvl == "" {
		lvl = "info"
	}
	level = lvl
	Debugf("Set logger level to %v\n", level)
}

func Debug(args ...interface{}) {
	if level == "debug" {
		fmt.Println(args...)
	}
}

func Info(args ...interface{}) {
	if level != "error" {
		fmt.Println(args...)
	}
}

func Error(args ...interface{}) {
	fmt.Println(args...)
}

func Debugf(template string, args ...interface{}) {
	if level == "debug" {
		fmt.Printf(template, args...)
	}
}

func Infof(template string, args ...interface{}) {
	if level != "error" {
		fmt.Printf(template, args...)
	}
}

func Errorf(template string, args ...interface{}) {
	fmt.Printf(template, args...)
}
