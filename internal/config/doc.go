// Package config loads the runtime settings of the ambient stack (YAML file,
// environment variables) with precedence: Environment variables > YAML config >
// Defaults. None of the settings change what the program prints.
package config
