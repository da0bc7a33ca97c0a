// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags take priority, then env vars, then defaults:

  - -p / PORT: server port (default 3324)
  - -t / DATABASE_TYPE: sqlite or postgres (default sqlite)
  - -d / DATABASE_URL: connection string; required for postgres,
    defaults to a local file for sqlite

Example:

	cfg, err := cliparse.ParseFlags(os.Args[1:])
*/
package cliparse
