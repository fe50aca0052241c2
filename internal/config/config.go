package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/ubesthelp/winstonjson/internal/render"
)

const defaultThemePath = "~/.config/winstonjson/theme.toml"

// Load locates and parses the theme file, falling back to the built-in theme
// when the file is missing. Entries in the file override the defaults; level
// entries for labels the defaults do not know extend the table.
func Load(path string) (render.Theme, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return render.Theme{}, err
	}

	theme := render.DefaultTheme()

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return theme, nil
		}
		return render.Theme{}, fmt.Errorf("read theme: %w", err)
	}

	var raw struct {
		Time   string            `toml:"time"`
		Source string            `toml:"source"`
		Levels map[string]string `toml:"levels"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return render.Theme{}, fmt.Errorf("parse theme: %w", err)
	}

	if value := strings.TrimSpace(raw.Time); value != "" {
		theme.Time = value
	}
	if value := strings.TrimSpace(raw.Source); value != "" {
		theme.Source = value
	}
	for label, color := range raw.Levels {
		if value := strings.TrimSpace(color); value != "" {
			theme.Levels[label] = value
		}
	}

	return theme, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultThemePath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
