//go:build darwin

package platform

func playerCommands(path string) [][]string {
	return [][]string{
		{"afplay", path},
	}
}
