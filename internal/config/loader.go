package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a render profile.
// Search order: customPath -> ~/.mandelzoom/profile.yaml -> ./profile.yaml -> embedded default
func Load(customPath string) (Profile, error) {
	var p Profile

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return p, fmt.Errorf("failed to read profile %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("failed to parse profile %s: %w", customPath, err)
		}
		return p, nil
	}

	// Try user config directory
	if userPath := userProfilePath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &p); err == nil {
				return p, nil
			}
		}
	}

	// Try local profile
	if data, err := os.ReadFile("profile.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &p); err == nil {
			return p, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultProfileYAML, &p); err != nil {
		return DefaultProfile(), nil // Fallback to hardcoded if embed fails
	}
	return p, nil
}

// userProfilePath returns the path to the user profile file, or empty if
// home is unavailable.
func userProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mandelzoom", "profile.yaml")
}
