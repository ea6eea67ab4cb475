// Package paths resolves where parse-yaml looks for its own configuration.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance:
//
//	| OS      | ConfigDir                                              |
//	|---------|--------------------------------------------------------|
//	| Linux   | ~/.config/quarto-docker-render                         |
//	| macOS   | ~/Library/Application Support/quarto-docker-render     |
//	| Windows | %LOCALAPPDATA%\quarto-docker-render                    |
//
// QDR_CONFIG_DIR overrides the directory on every platform.
package paths
