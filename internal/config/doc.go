// Package config provides configuration management for the calculation service.
//
// Configuration is loaded from environment variables using the env package.
// Defaults bind the server to all interfaces on port 5000 with debug mode off.
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
