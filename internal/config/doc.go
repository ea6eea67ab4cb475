// Package config loads the parse-yaml configuration with Viper.
//
// Configuration is optional. Values come from, in increasing precedence:
// built-in defaults, the config file, and QDR_* environment variables.
// Command-line flags are applied on top by the caller.
//
// # Configuration File
//
// The file is config.yaml in [paths.ConfigDir], or any file passed to
// --config. The current directory is never searched, so a document
// directory's own config.yaml cannot interfere.
//
//	version: 1
//	max_file_size: 16777216   # bytes
//	log_format: text          # text or json
//
// # Environment
//
//	QDR_MAX_FILE_SIZE=1048576
//	QDR_LOG_FORMAT=json
package config
