// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Host: Bind address (default: 0.0.0.0)
  - Port: Server listen port (default: 5000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: toilettalk.db)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)
  - CORSOrigins: Allowed origins (default: *)
  - ShutdownTimeout: Graceful shutdown budget (default: 5s)

# Sources

Values are resolved in this order, later sources winning:

 1. env-default struct tags
 2. variables from the .env file (ENV_FILE overrides the path)
 3. process environment
 4. CLI flags

The .env file never overrides a variable that is already set.

# CLI Flags

	-host        Bind address
	-p           Server port
	-d           Database URL
	-t           Database type
	-log-level   Log level
	-log-format  Log format

# Environment Variables

	HOST, PORT, DATABASE_TYPE, DATABASE_URL, LOG_LEVEL, LOG_FORMAT,
	CORS_ORIGINS (comma separated), SHUTDOWN_TIMEOUT, ENV_FILE

# Validation

ParseFlags returns an error for an out-of-range port, an unknown database
type, log format or log level, or an empty database URL.
*/
package cliparse
