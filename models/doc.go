// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types exchanged
with the Alizè API.

All of these are mirrored from the backend; the client does not own their
lifecycle. Optional backend fields (anything the server may omit or null)
are pointers so that render code has to handle their absence explicitly.

# Request Types

Payloads the client sends:

  - RegisterRequest / LoginRequest: credentials
  - PreferenceUpdate: partial preference edit (PUT /preferences)
  - ProfileUpdate: email / password / notification toggle
  - CampaignCreate, CampaignUpdate: saved-search campaign payloads
  - CampaignJobCreate, CampaignJobUpdate: campaign job tracking
  - PasswordResetRequest/Confirm, EmailVerifyConfirm
  - EmailTemplateCreate, DashboardConfigUpdate

# Response Types

Payloads the client decodes:

  - TokenResponse: access_token + token_type from login/register
  - MatchesPage, MatchesCount, DashboardStats
  - CampaignList, CampaignJobsPage, CampaignStats
  - UploadedCV, JobSearchResult
  - ErrorResponse: {"detail": ...} error envelope

# Domain Types

  - Job: a scored match (score 0-10, source, status, flags)
  - Preference: per-user search preferences (singleton)
  - Campaign: user-defined saved search with styling and counters
  - CampaignJob: join of Campaign and Job with pipeline status
  - CV, Analysis, Profile, JobSearchRun, EmailTemplate, DashboardConfig

# Status Enums

MatchStatus covers the dashboard lifecycle:

	new → viewed → saved → deleted

PipelineStatus covers the application pipeline inside a campaign:

	new → saved → applied → interview → hired

with rejected reachable from any non-terminal state. ParseMatchStatus and
ParsePipelineStatus validate raw strings; PipelineTransitionAllowed and
NextPipelineStatuses expose the transition table. The table is advisory:
the backend applies any status, so views confirm off-path moves rather
than refuse them.
*/
package models
