//go:build !linux && !darwin && !windows

package platform

func playerCommands(string) [][]string {
	return nil
}
