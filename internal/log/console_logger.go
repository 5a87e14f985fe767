package log

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// ConsoleLogger represents the console log
type ConsoleLogger log.Logger

func NewConsoleLogger() *ConsoleLogger {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile)
	return (*ConsoleLogger)(logger)
}

func (c *ConsoleLogger) Info(args ...any) {
	_ = (*log.Logger)(c).Output(2, formatArgs(args...))
}

func (c *ConsoleLogger) Error(args ...any) {
	_ = (*log.Logger)(c).Output(2, formatArgs(args...))
}

// formatArgs 首个参数为带占位符的格式串时按 Sprintf 格式化, 否则以空格拼接
func formatArgs(args ...any) string {
	if len(args) == 0 {
		return ""
	}
	if format, ok := args[0].(string); ok && len(args) > 1 && strings.ContainsRune(format, '%') {
		return fmt.Sprintf(format, args[1:]...)
	}
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
