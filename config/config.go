// Package config is responsible for setting the program config from the
// config file and command-line arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

const Version = "v0.1.0"

var (
	configDir      = "bump"
	configFileName = "config.yml"
	dbFileName     = "bump.db"
	logFileName    = "bump.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the config, database, and log file locations. A
// BUMP_ENV value suffixes the filenames so development and test data never
// collide with real records.
func InitializePaths() {
	bumpEnv := strings.TrimSpace(os.Getenv("BUMP_ENV"))
	if bumpEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", bumpEnv)
		dbFileName = fmt.Sprintf("bump_%s.db", bumpEnv)
		logFileName = fmt.Sprintf("bump_%s.log", bumpEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}
