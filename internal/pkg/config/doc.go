// Package config provides the configuration settings for the application,
// including logger, database and HTTP server settings. Settings are loaded
// from YAML files via viper and validated with struct tags.
package config
