// Package config provides configuration management for the AI service.
//
// Configuration is loaded from environment variables using the env package.
// A .env file in the working directory is applied first when present.
// All configuration values have sensible defaults for development use;
// optional dependencies (Redis, LLM provider) stay disabled until their
// address or key is set.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
