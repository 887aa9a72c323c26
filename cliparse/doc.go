// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (godotenv), then CLI
flags, then environment variables; flags take precedence.

# Config Fields

  - APIBaseURL: Alizè backend base URL (required)
  - StateDir: directory for the local state database (default: ~/.alize)
  - PageSize: list page size, 1-100 (default: 20)
  - HTTPTimeout: per-request timeout (default: 15s)
  - NoColor: disable ANSI colors

# CLI Flags

	-u          API base URL
	-s          State directory
	-n          Page size
	--timeout   HTTP timeout
	--no-color  Disable color output

# Environment Variables

	ALIZE_API_URL      → -u
	ALIZE_STATE_DIR    → -s
	ALIZE_PAGE_SIZE    → -n
	ALIZE_HTTP_TIMEOUT → --timeout
	NO_COLOR           → --no-color

# Validation

ParseFlags returns an error if the API base URL is missing, the page size
is out of range, or the timeout does not parse.
*/
package cliparse
