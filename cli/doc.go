// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cli implements the pollbooth command line.

# Commands

	pollbooth serve                     Run the HTTP API
	pollbooth migrate                   Create the schema
	pollbooth seed <file.yaml>          Create questions from a fixture
	pollbooth export [--format yaml]    Dump questions, choices and tallies
	pollbooth list [--format text]      Show questions with their status

Configuration comes from .env and the environment (see package cliparse);
the persistent flags --port, --database-url, --database-type, --admin-salt,
--ip-salt, --list-limit and --environment override it.

# Fixtures

seed reads, and export writes, this shape:

	questions:
	  - text: Favourite colour?
	    pub_date: 2025-05-01T09:00:00Z
	    end_date: 2025-07-01T09:00:00Z
	    choices:
	      - text: Red
	      - text: Blue

Exports carry vote tallies but no ids. Seeding ignores tallies, and prints
the id and admin key of every question it creates.

# Logging

Commands log through zap: JSON production output by default, console output
when ENVIRONMENT=dev. serve installs the logger as the zap global.
*/
package cli
