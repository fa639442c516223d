//go:build linux

package platform

func playerCommands(path string) [][]string {
	return [][]string{
		{"paplay", path},
		{"pw-play", path},
		{"aplay", "-q", path},
	}
}
