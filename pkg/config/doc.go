// Package config loads typed configuration structs from environment
// variables using caarlos0/env struct tags, with optional .env file support
// via godotenv.
//
// Each config struct declares its variables through `env` tags:
//
//	type ServerConfig struct {
//		Addr        string        `env:"HTTP_ADDR" envDefault:":8080"`
//		SendTimeout time.Duration `env:"SEND_TIMEOUT" envDefault:"30s"`
//		APIKey      string        `env:"API_KEY,required"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// A .env file in the working directory is read once per process before the
// first parse. A missing .env file is not an error; real environment
// variables always take precedence.
package config
