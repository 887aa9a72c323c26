// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Alizè terminal client.

Alizè matches your CV against fresh job listings and tracks applications
through campaign pipelines. This client talks to the Alizè backend over
its REST API and keeps the session and theme in a local sqlite state file.

# Getting Started

The client needs the backend URL, via flag or environment:

	ALIZE_API_URL=https://api.alize.dev alize login

Or with flags:

	alize -u https://api.alize.dev login

# Configuration

Required settings:

  - ALIZE_API_URL (-u): backend base URL

Optional settings:

  - ALIZE_STATE_DIR (-s): state directory (default: ~/.alize)
  - ALIZE_PAGE_SIZE (-n): list page size (default: 20)
  - ALIZE_HTTP_TIMEOUT (--timeout): request timeout (default: 15s)
  - NO_COLOR (--no-color): disable ANSI color

A .env file in the working directory is loaded first.

# Architecture

The client uses a view-based architecture with dependency injection:

  - api: typed REST client with error normalization and auth handling
  - apierr: the error taxonomy every call resolves to
  - store: sqlite-backed session and theme state with change broadcast
  - confirm: the confirm-then-mutate flow for destructive actions
  - listview: server-paginated list controller with stale-response guard
  - ui: terminal views, one per screen
  - models: request/response types and status enums
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
