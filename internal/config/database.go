package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Veraticus/tally/internal/common"
	"github.com/spf13/viper"
)

const (
	// DefaultDataDir is where per-user data files live unless configured.
	DefaultDataDir = "$HOME/.local/share/tally"
	// DefaultUser names the data file used when no user is selected.
	DefaultUser = "default"
	// DefaultCurrency is appended to absolute amounts in the chart legend.
	DefaultCurrency = "฿"
)

// Database holds the settings that select the data file.
type Database struct {
	Path string
	Dir  string
	User string
}

// LoadDatabaseConfig loads database settings from Viper.
// It follows this precedence:
// 1. database.path (an explicit file wins)
// 2. database.dir + database.user (one file per user)
// 3. Default values
func LoadDatabaseConfig() Database {
	cfg := Database{
		Dir:  DefaultDataDir,
		User: DefaultUser,
	}

	if v := viper.GetString("database.path"); v != "" {
		cfg.Path = v
	}
	if v := viper.GetString("database.dir"); v != "" {
		cfg.Dir = v
	}
	if v := viper.GetString("database.user"); v != "" {
		cfg.User = v
	}

	return cfg
}

// DatabasePath resolves the data file for the configured user.
func (d Database) DatabasePath() (string, error) {
	if d.Path != "" {
		return ExpandPath(d.Path), nil
	}

	user := strings.TrimSpace(d.User)
	if user == "" {
		user = DefaultUser
	}
	if strings.ContainsAny(user, `/\`) || user == "." || user == ".." {
		return "", fmt.Errorf("%w: user name %q cannot be used as a file name", common.ErrInvalidConfig, user)
	}

	dir := d.Dir
	if dir == "" {
		dir = DefaultDataDir
	}

	return filepath.Join(ExpandPath(dir), user+".db"), nil
}

// Currency returns the configured currency symbol for chart labels.
func Currency() string {
	if v := viper.GetString("display.currency"); v != "" {
		return v
	}
	return DefaultCurrency
}
