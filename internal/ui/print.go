// Package ui prints user-facing notices for the CLI. Celebrations (level
// ups, unlocked achievements) get color; plain data output stays on the
// command's writer.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

func Success(format string, args ...any) {
	color.Green("✓ %s", fmt.Sprintf(format, args...))
}

func Info(format string, args ...any) {
	color.Cyan(format, args...)
}

func Warn(format string, args ...any) {
	color.Yellow("⚠ %s", fmt.Sprintf(format, args...))
}

// Celebrate highlights a gamification event: +XP, new badge, level up.
func Celebrate(format string, args ...any) {
	color.New(color.FgHiMagenta, color.Bold).Printf("★ %s\n", fmt.Sprintf(format, args...))
}
