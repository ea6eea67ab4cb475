package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the configuration directory.
const AppName = "quarto-docker-render"

// ConfigDirEnv overrides ConfigDir when set.
const ConfigDirEnv = "QDR_CONFIG_DIR"

// ConfigFileName is the configuration file looked up in ConfigDir.
const ConfigFileName = "config.yaml"

// ErrInvalidPath indicates the provided path is malformed or invalid.
var ErrInvalidPath = errors.New("invalid path")

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding the parse-yaml configuration.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// Validate checks that path is syntactically usable as a file path.
// It does not check that the path exists.
func Validate(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return errors.Mark(errors.Newf("invalid path: %q contains a NUL byte", path), ErrInvalidPath)
	}
	cleaned := filepath.Clean(path)
	if path == "" || cleaned == "." {
		return errors.Mark(errors.Newf("invalid path: %q", path), ErrInvalidPath)
	}
	return nil
}
