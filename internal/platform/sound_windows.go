//go:build windows

package platform

import "strings"

func playerCommands(path string) [][]string {
	escaped := strings.ReplaceAll(path, "'", "''")
	return [][]string{
		{"powershell", "-NoProfile", "-NonInteractive", "-Command", "(New-Object Media.SoundPlayer '" + escaped + "').PlaySync()"},
	}
}
