// Package config loads typed configuration from environment variables using
// struct tags (github.com/caarlos0/env), after reading an optional .env file
// (github.com/joho/godotenv).
//
//	var app config.App
//	config.MustLoad(&app)
//
//	var http httpserver.Config
//	config.MustLoad(&http)
//
// Results are cached per type, so packages can call Load freely.
package config
