package cli

import (
	"os"
	"path/filepath"
)

func userConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sdl3-go"), nil
}
