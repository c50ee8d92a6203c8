package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Home returns the carrego home directory ($CARREGO_HOME or ~/.carrego)
func Home() string {
	if home := os.Getenv("CARREGO_HOME"); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".carrego" // Fallback to relative path
	}
	return filepath.Join(homeDir, ".carrego")
}

// GetSettingsPath returns the path to settings.json
func GetSettingsPath() string {
	return filepath.Join(Home(), "settings.json")
}

// GetSessionPath returns the path of the persisted session blob
func GetSessionPath() string {
	return filepath.Join(Home(), "session.json")
}

// GetCacheDBPath returns the path of the offline listing cache database
func GetCacheDBPath() string {
	return filepath.Join(Home(), "cache.db")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return homeDir
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
