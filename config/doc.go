// Package config loads settings for applications embedding streamkit.
//
// Settings are layered: an optional YAML file provides the base, a .env file
// (loaded via godotenv) and process environment variables override it, and
// defaults fill the gaps. The stream engine itself takes no configuration;
// this package configures the ambient concerns (logging, telemetry).
//
//	var s config.Settings
//	if err := config.Load("my-app", &s); err != nil {
//	    ...
//	}
//	log := logger.New(&s.Logging, s.Base.Name)
package config
