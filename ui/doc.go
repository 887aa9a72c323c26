// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ui contains the terminal views, one per screen.

# Views

Each view is a struct holding its output writer, input reader, the API
client, and a Palette, created via a constructor:

  - AuthView: login, register, logout, OAuth, password reset, verification
  - DashboardView: stat cards, match cards, filters, pagination
  - MatchActions: visit/save/unsave/delete/status on one match
  - CampaignsView: campaign CRUD, pipeline board, templates, dashboard
  - CVView: CV show/upload, AI analysis panel
  - PrefsView: matching preferences
  - ProfileView: account show/edit/delete
  - SearchView: on-demand runs and history
  - NotifyView: notification settings
  - ThemeView: persisted color theme

Views render to an io.Writer and read prompts from an io.Reader, so tests
drive them with bytes.Buffer and strings.Reader.

# Destructive Actions

Anything that loses data runs through a confirm.Controller: CV upload
over a populated feed, preference edits, match/campaign/account deletion.
The pre-check result becomes the prompt's summary line.

# Rendering

Color comes from Palette, which emits ANSI codes only on a real terminal
with color enabled; the stored theme picks the accent. Relative times
and byte sizes use humanize.
*/
package ui
