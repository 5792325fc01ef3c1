// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type (sqlite or postgres)
	-no-rate-limits  Disable all rate governance (dev only)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	DISABLE_RATE_LIMITS → -no-rate-limits

CLI flags take precedence over environment variables.

Tuning knobs are env-only, with defaults:

	MAX_ITEMS                  Maximum items per list (500)
	MAX_LIST_KB                Serialized document ceiling in KB (64)
	SCALE_MIN_LIMIT            Upper clamp bound for scale.min (5)
	SCALE_MAX_LIMIT            Upper clamp bound for scale.max (10)
	LIST_TTL_DAYS              Sliding list expiry (30)
	SAVE_LIMIT_PER_MINUTE      Per-user save quota (10)
	SAVE_LIMIT_PER_HOUR        Per-user save quota (100)
	CREATE_LIMIT_PER_DAY       Per-user creation quota (20)
	LIST_SAVE_LIMIT_PER_MINUTE Per-list save quota (30)

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - numeric env variables must parse as integers
*/
package cliparse
