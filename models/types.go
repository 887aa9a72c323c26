// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Theme constants
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PreferenceUpdate struct {
	Role                  *string `json:"role,omitempty"`
	Location              *string `json:"location,omitempty"`
	ContractType          *string `json:"contract_type,omitempty"`
	SalaryMin             *int    `json:"salary_min,omitempty"`
	MustKeywords          *string `json:"must_keywords,omitempty"`
	AvoidKeywords         *string `json:"avoid_keywords,omitempty"`
	NotificationFrequency *string `json:"notification_frequency,omitempty"`
	SendEmptyDigest       *bool   `json:"send_empty_digest,omitempty"`
	NotificationMaxJobs   *int    `json:"notification_max_jobs,omitempty"`
}

type ProfileUpdate struct {
	Email                *string `json:"email,omitempty"`
	CurrentPassword      *string `json:"current_password,omitempty"`
	NewPassword          *string `json:"new_password,omitempty"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type EmailVerifyConfirm struct {
	Token string `json:"token"`
}

type CampaignCreate struct {
	Name                    string  `json:"name"`
	Description             *string `json:"description,omitempty"`
	Color                   *string `json:"color,omitempty"`
	Icon                    *string `json:"icon,omitempty"`
	TargetRole              *string `json:"target_role,omitempty"`
	TargetLocation          *string `json:"target_location,omitempty"`
	ContractType            *string `json:"contract_type,omitempty"`
	SalaryMin               *int    `json:"salary_min,omitempty"`
	SalaryMax               *int    `json:"salary_max,omitempty"`
	ExperienceLevel         *string `json:"experience_level,omitempty"`
	RemotePreference        *string `json:"remote_preference,omitempty"`
	MustKeywords            *string `json:"must_keywords,omitempty"`
	NiceKeywords            *string `json:"nice_keywords,omitempty"`
	AvoidKeywords           *string `json:"avoid_keywords,omitempty"`
	EmailNotifications      *bool   `json:"email_notifications,omitempty"`
	EmailFrequency          *string `json:"email_frequency,omitempty"`
	MinScoreForNotification *int    `json:"min_score_for_notification,omitempty"`
	IsDefault               bool    `json:"is_default"`
	Priority                *int    `json:"priority,omitempty"`
}

// CampaignUpdate shares the CampaignCreate shape; the backend applies only
// the fields that are present.
type CampaignUpdate = CampaignCreate

type CampaignJobCreate struct {
	JobID  int     `json:"job_id"`
	Status string  `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type CampaignJobUpdate struct {
	Status        *string    `json:"status,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	AppliedAt     *time.Time `json:"applied_at,omitempty"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
}

type EmailTemplateCreate struct {
	CampaignID *int   `json:"campaign_id,omitempty"`
	Name       string `json:"name"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

type DashboardConfigUpdate struct {
	Layout          *string `json:"layout,omitempty"`
	VisibleWidgets  *string `json:"visible_widgets,omitempty"`
	DefaultCampaign *int    `json:"default_campaign,omitempty"`
}

// Response types

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type OAuthProviders struct {
	Providers []string `json:"providers"`
}

type MatchesCount struct {
	Count    int `json:"count"`
	NewCount int `json:"new_count"`
}

type MatchesPage struct {
	Items            []Job    `json:"items"`
	Total            int      `json:"total"`
	Page             int      `json:"page"`
	PageSize         int      `json:"page_size"`
	AvailableSources []string `json:"available_sources"`
	NewCount         int      `json:"new_count"`
}

type DashboardStats struct {
	TotalJobs    int        `json:"total_jobs"`
	NewJobs      int        `json:"new_jobs"`
	ViewedJobs   int        `json:"viewed_jobs"`
	SavedJobs    int        `json:"saved_jobs"`
	LastSearchAt *time.Time `json:"last_search_at,omitempty"`
	NextEmailAt  *time.Time `json:"next_email_at,omitempty"`
}

type UploadedCV struct {
	ID       int    `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type JobSearchResult struct {
	Inserted     int            `json:"inserted"`
	TriedQueries []string       `json:"tried_queries"`
	Sources      map[string]int `json:"sources"`
	Analysis     Analysis       `json:"analysis"`
}

type CampaignList struct {
	Campaigns   []Campaign `json:"campaigns"`
	Total       int        `json:"total"`
	ActiveCount int        `json:"active_count"`
}

type CampaignJobsPage struct {
	Items    []CampaignJob  `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Stats    map[string]int `json:"stats"`
}

type CampaignStats struct {
	CampaignID      int            `json:"campaign_id"`
	JobsFound       int            `json:"jobs_found"`
	JobsApplied     int            `json:"jobs_applied"`
	JobsInterviewed int            `json:"jobs_interviewed"`
	StatusCounts    map[string]int `json:"status_counts"`
	AverageScore    *float64       `json:"average_score,omitempty"`
	LastSearchAt    *time.Time     `json:"last_search_at,omitempty"`
}

type NotifyConfig struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency"`
	SMTPReady bool   `json:"smtp_ready"`
}

// Domain types

type Job struct {
	ID           int        `json:"id"`
	Source       string     `json:"source"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     *string    `json:"location,omitempty"`
	URL          string     `json:"url"`
	Description  *string    `json:"description,omitempty"`
	SalaryMin    *int       `json:"salary_min,omitempty"`
	Score        *int       `json:"score,omitempty"` // 0-10, assigned by the matcher
	IsRemote     *bool      `json:"is_remote,omitempty"`
	IsNew        *bool      `json:"is_new,omitempty"`
	IsSaved      *bool      `json:"is_saved,omitempty"`
	Status       string     `json:"status,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	MatchReasons []string   `json:"match_reasons,omitempty"`
}

type Preference struct {
	ID                    int     `json:"id"`
	UserID                int     `json:"user_id"`
	Role                  *string `json:"role,omitempty"`
	Location              *string `json:"location,omitempty"`
	ContractType          *string `json:"contract_type,omitempty"`
	SalaryMin             *int    `json:"salary_min,omitempty"`
	MustKeywords          *string `json:"must_keywords,omitempty"` // comma-separated
	AvoidKeywords         *string `json:"avoid_keywords,omitempty"`
	NotificationFrequency *string `json:"notification_frequency,omitempty"`
	SendEmptyDigest       *bool   `json:"send_empty_digest,omitempty"`
	NotificationMaxJobs   *int    `json:"notification_max_jobs,omitempty"`
}

type CV struct {
	ID        int       `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
	Text      *string   `json:"text,omitempty"` // truncated extract, first 2000 chars
	URL       string    `json:"url"`
}

type Analysis struct {
	CVPresent        bool     `json:"cv_present"`
	TopKeywords      []string `json:"top_keywords"`
	InferredRoles    []string `json:"inferred_roles"`
	SuggestedQueries []string `json:"suggested_queries"`
	MustHits         []string `json:"must_hits"`
	MissingMust      []string `json:"missing_must"`
	Summary          string   `json:"summary"`
	LLMUsed          bool     `json:"llm_used"`
}

type JobSearchRun struct {
	ID           int            `json:"id"`
	Inserted     int            `json:"inserted"`
	TriedQueries []string       `json:"tried_queries"`
	Sources      map[string]int `json:"sources"`
	CreatedAt    time.Time      `json:"created_at"`
}

type Profile struct {
	ID                   int       `json:"id"`
	Email                string    `json:"email"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	EmailVerified        bool      `json:"email_verified"`
	CreatedAt            time.Time `json:"created_at"`
}

type Campaign struct {
	ID                      int        `json:"id"`
	UserID                  int        `json:"user_id"`
	Name                    string     `json:"name"`
	Description             *string    `json:"description,omitempty"`
	Color                   *string    `json:"color,omitempty"`
	Icon                    *string    `json:"icon,omitempty"`
	TargetRole              *string    `json:"target_role,omitempty"`
	TargetLocation          *string    `json:"target_location,omitempty"`
	ContractType            *string    `json:"contract_type,omitempty"`
	SalaryMin               *int       `json:"salary_min,omitempty"`
	SalaryMax               *int       `json:"salary_max,omitempty"`
	ExperienceLevel         *string    `json:"experience_level,omitempty"`
	RemotePreference        *string    `json:"remote_preference,omitempty"`
	MustKeywords            *string    `json:"must_keywords,omitempty"`
	NiceKeywords            *string    `json:"nice_keywords,omitempty"`
	AvoidKeywords           *string    `json:"avoid_keywords,omitempty"`
	EmailNotifications      bool       `json:"email_notifications"`
	EmailFrequency          *string    `json:"email_frequency,omitempty"`
	MinScoreForNotification *int       `json:"min_score_for_notification,omitempty"`
	IsActive                bool       `json:"is_active"`
	IsDefault               bool       `json:"is_default"`
	Priority                int        `json:"priority"`
	JobsFound               int        `json:"jobs_found"`
	JobsApplied             int        `json:"jobs_applied"`
	JobsInterviewed         int        `json:"jobs_interviewed"`
	LastSearchAt            *time.Time `json:"last_search_at,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty"`
}

type CampaignJob struct {
	ID            int        `json:"id"`
	CampaignID    int        `json:"campaign_id"`
	JobID         int        `json:"job_id"`
	Score         *int       `json:"score,omitempty"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes,omitempty"`
	AppliedAt     *time.Time `json:"applied_at,omitempty"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
	VisitedAt     *time.Time `json:"visited_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	Job           *Job       `json:"job,omitempty"`
}

type EmailTemplate struct {
	ID         int        `json:"id"`
	CampaignID *int       `json:"campaign_id,omitempty"`
	Name       string     `json:"name"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type DashboardConfig struct {
	ID              int     `json:"id"`
	UserID          int     `json:"user_id"`
	Layout          *string `json:"layout,omitempty"`
	VisibleWidgets  *string `json:"visible_widgets,omitempty"`
	DefaultCampaign *int    `json:"default_campaign,omitempty"`
}

// Error response

type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}
