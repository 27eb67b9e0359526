// Package config loads provider configuration for idkit integrators.
//
// It uses Viper to read a YAML file plus environment overlays (a .env
// file via godotenv, then real environment variables, which win). The
// result is a Settings struct: logging configuration, per-provider
// caller configuration, and deployment-scoped API-domain overrides.
//
//	settings, err := config.Load(config.WithConfigFile("idkit.yml"))
//	desc, err := keyp.New(settings.Providers["keyp"],
//	    keyp.WithAPIDomain(settings.APIDomains["keyp"]))
//
// Environment variables use the IDKIT_ prefix with underscore-separated
// paths, e.g. IDKIT_API_DOMAINS_KEYP overrides api_domains.keyp.
package config
