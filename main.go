// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/danielhkuo/alize-cli/api"
	"github.com/danielhkuo/alize-cli/apierr"
	"github.com/danielhkuo/alize-cli/cliparse"
	"github.com/danielhkuo/alize-cli/models"
	"github.com/danielhkuo/alize-cli/store"
	"github.com/danielhkuo/alize-cli/ui"
)

func main() {
	setupLogging()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if err := cliparse.EnsureStateDir(cfg); err != nil {
		slog.Error("state directory setup failed", "error", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.StatePath())
	if err != nil {
		slog.Error("state store open failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, st, func() {
		fmt.Fprintln(os.Stderr, "Session expired. Run 'alize login' to continue.")
	})

	// Ctrl-C cancels the in-flight request instead of killing the process
	// mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(cfg, st, client)
	if err := app.run(ctx, flagRemainder(os.Args[1:])); err != nil {
		// The exact sentinel means an expired session; onAuthExpired has
		// already told the user to log in again. Any other failure,
		// including a bad login's 401, still carries a message to show.
		if err != apierr.ErrNotAuthenticated {
			fmt.Fprintln(os.Stderr, "Error:", apierr.Message(err))
		}
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if os.Getenv("ALIZE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// flagRemainder strips the leading flags already consumed by cliparse and
// returns everything from the first command word on. Stripping stops at
// the first non-flag token, like flag.Parse, so a dash-prefixed word
// inside command arguments (a note starting with "-") survives.
func flagRemainder(args []string) []string {
	skip := false
	for i, a := range args {
		if skip {
			skip = false
			continue
		}
		if !strings.HasPrefix(a, "-") {
			return args[i:]
		}
		// Boolean flags take no value.
		if a != "-no-color" && a != "--no-color" && !strings.Contains(a, "=") {
			skip = true
		}
	}
	return nil
}

// app holds every view, wired once per invocation.
type app struct {
	cfg    cliparse.Config
	store  *store.Store
	client *api.Client

	auth      *ui.AuthView
	dashboard *ui.DashboardView
	matches   *ui.MatchActions
	campaigns *ui.CampaignsView
	cv        *ui.CVView
	prefs     *ui.PrefsView
	profile   *ui.ProfileView
	search    *ui.SearchView
	notify    *ui.NotifyView
	theme     *ui.ThemeView
}

func newApp(cfg cliparse.Config, st *store.Store, client *api.Client) *app {
	out := os.Stdout
	in := os.Stdin
	palette := ui.NewPalette(out, cfg.NoColor, st.Theme())

	dashboard := ui.NewDashboardView(out, client, palette, cfg.PageSize)
	return &app{
		cfg:       cfg,
		store:     st,
		client:    client,
		auth:      ui.NewAuthView(out, in, client, palette),
		dashboard: dashboard,
		matches:   ui.NewMatchActions(out, in, client, palette, dashboard),
		campaigns: ui.NewCampaignsView(out, in, client, palette, cfg.PageSize),
		cv:        ui.NewCVView(out, in, client, palette),
		prefs:     ui.NewPrefsView(out, in, client, palette),
		profile:   ui.NewProfileView(out, in, client, palette),
		search:    ui.NewSearchView(out, client, palette),
		notify:    ui.NewNotifyView(out, client, palette),
		theme:     ui.NewThemeView(out, st),
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "login":
		return a.auth.Login(ctx, arg(rest, 0), arg(rest, 1))
	case "register":
		return a.auth.Register(ctx, arg(rest, 0), arg(rest, 1))
	case "logout":
		return a.auth.Logout()
	case "oauth":
		return a.auth.OAuth(ctx, arg(rest, 0))
	case "reset-password":
		return a.resetPassword(ctx, rest)
	case "verify-email":
		return a.verifyEmail(ctx, rest)

	case "dashboard", "matches":
		page, filters, err := parseMatchArgs(rest)
		if err != nil {
			return err
		}
		return a.dashboard.Show(ctx, page, filters)
	case "visit":
		return a.withID(rest, func(id int) error { return a.matches.Visit(ctx, id) })
	case "save":
		return a.withID(rest, func(id int) error { return a.matches.Save(ctx, id) })
	case "unsave":
		return a.withID(rest, func(id int) error { return a.matches.Unsave(ctx, id) })
	case "delete":
		return a.withID(rest, func(id int) error { return a.matches.Delete(ctx, id) })
	case "status":
		return a.withID(rest, func(id int) error { return a.matches.SetStatus(ctx, id, arg(rest, 1)) })

	case "campaigns":
		return a.runCampaigns(ctx, rest)

	case "cv":
		switch arg(rest, 0) {
		case "", "show":
			return a.cv.Show(ctx)
		case "upload":
			if arg(rest, 1) == "" {
				return errors.New("usage: alize cv upload <file>")
			}
			return a.cv.Upload(ctx, arg(rest, 1))
		}
		return fmt.Errorf("unknown cv command %q", arg(rest, 0))
	case "analysis":
		return a.cv.Analysis(ctx, hasWord(rest, "force"))

	case "prefs":
		switch arg(rest, 0) {
		case "", "show":
			return a.prefs.Show(ctx)
		case "edit":
			upd, err := parsePrefArgs(rest[1:])
			if err != nil {
				return err
			}
			return a.prefs.Edit(ctx, upd)
		}
		return fmt.Errorf("unknown prefs command %q", arg(rest, 0))

	case "profile":
		switch arg(rest, 0) {
		case "", "show":
			return a.profile.Show(ctx)
		case "edit":
			upd, err := parseProfileArgs(rest[1:])
			if err != nil {
				return err
			}
			return a.profile.Edit(ctx, upd)
		case "delete":
			return a.profile.Delete(ctx)
		}
		return fmt.Errorf("unknown profile command %q", arg(rest, 0))

	case "search":
		return a.search.Run(ctx)
	case "refresh":
		return a.search.Refresh(ctx)
	case "runs":
		return a.search.Runs(ctx)

	case "notify":
		switch arg(rest, 0) {
		case "", "config":
			return a.notify.Config(ctx)
		case "test":
			return a.notify.Test(ctx)
		}
		return fmt.Errorf("unknown notify command %q", arg(rest, 0))

	case "theme":
		if arg(rest, 0) == "" {
			a.theme.Show()
			return nil
		}
		return a.theme.Set(arg(rest, 0))
	}

	usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func (a *app) resetPassword(ctx context.Context, rest []string) error {
	switch arg(rest, 0) {
	case "request":
		return a.auth.RequestPasswordReset(ctx, arg(rest, 1))
	case "confirm":
		return a.auth.ConfirmPasswordReset(ctx, arg(rest, 1))
	}
	return errors.New("usage: alize reset-password request|confirm")
}

func (a *app) verifyEmail(ctx context.Context, rest []string) error {
	switch arg(rest, 0) {
	case "request":
		return a.auth.RequestEmailVerification(ctx)
	case "confirm":
		return a.auth.ConfirmEmailVerification(ctx, arg(rest, 1))
	}
	return errors.New("usage: alize verify-email request|confirm")
}

func (a *app) runCampaigns(ctx context.Context, rest []string) error {
	switch arg(rest, 0) {
	case "", "list":
		return a.campaigns.List(ctx)
	case "create":
		if arg(rest, 1) == "" {
			return errors.New("usage: alize campaigns create <name> [k=v ...]")
		}
		in, err := parseCampaignArgs(arg(rest, 1), rest[2:])
		if err != nil {
			return err
		}
		return a.campaigns.Create(ctx, in)
	case "show":
		return a.withID(rest[1:], func(id int) error { return a.campaigns.Show(ctx, id) })
	case "edit":
		return a.withID(rest[1:], func(id int) error {
			upd, err := parseCampaignArgs("", rest[2:])
			if err != nil {
				return err
			}
			return a.campaigns.Edit(ctx, id, upd)
		})
	case "delete":
		return a.withID(rest[1:], func(id int) error { return a.campaigns.Delete(ctx, id) })
	case "jobs":
		return a.withID(rest[1:], func(id int) error {
			page, filters, err := parseCampaignJobArgs(rest[2:])
			if err != nil {
				return err
			}
			return a.campaigns.Jobs(ctx, id, page, filters)
		})
	case "add-job":
		return a.withTwoIDs(rest[1:], func(campaignID, jobID int) error {
			return a.campaigns.AddJob(ctx, campaignID, jobID)
		})
	case "move-job":
		return a.withTwoIDs(rest[1:], func(campaignID, jobID int) error {
			return a.campaigns.MoveJob(ctx, campaignID, jobID, arg(rest, 3), arg(rest, 4))
		})
	case "note-job":
		return a.withTwoIDs(rest[1:], func(campaignID, jobID int) error {
			return a.campaigns.NoteJob(ctx, campaignID, jobID, strings.Join(rest[3:], " "))
		})
	case "remove-job":
		return a.withTwoIDs(rest[1:], func(campaignID, jobID int) error {
			return a.campaigns.RemoveJob(ctx, campaignID, jobID)
		})
	case "templates":
		return a.withID(rest[1:], func(id int) error { return a.campaigns.Templates(ctx, id) })
	case "template-create":
		if arg(rest, 1) == "" {
			return errors.New("usage: alize campaigns template-create <name> [k=v ...]")
		}
		in, err := parseTemplateArgs(arg(rest, 1), rest[2:])
		if err != nil {
			return err
		}
		return a.campaigns.CreateTemplate(ctx, in)
	case "template-edit":
		return a.withID(rest[1:], func(id int) error {
			in, err := parseTemplateArgs("", rest[2:])
			if err != nil {
				return err
			}
			return a.campaigns.EditTemplate(ctx, id, in)
		})
	case "template-delete":
		return a.withID(rest[1:], func(id int) error { return a.campaigns.DeleteTemplate(ctx, id) })
	case "dashboard":
		return a.campaigns.Dashboard(ctx)
	case "dashboard-config":
		upd, err := parseDashboardConfigArgs(rest[1:])
		if err != nil {
			return err
		}
		return a.campaigns.SetDashboardConfig(ctx, upd)
	}
	return fmt.Errorf("unknown campaigns command %q", arg(rest, 0))
}

// withID parses args[0] as a numeric id and runs fn.
func (a *app) withID(args []string, fn func(int) error) error {
	id, err := strconv.Atoi(arg(args, 0))
	if err != nil {
		return errors.New("a numeric id is required")
	}
	return fn(id)
}

// withTwoIDs parses args[0] and args[1] as numeric ids and runs fn.
func (a *app) withTwoIDs(args []string, fn func(int, int) error) error {
	first, err := strconv.Atoi(arg(args, 0))
	if err != nil {
		return errors.New("a numeric campaign id is required")
	}
	second, err := strconv.Atoi(arg(args, 1))
	if err != nil {
		return errors.New("a numeric job id is required")
	}
	return fn(first, second)
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func hasWord(args []string, word string) bool {
	for _, a := range args {
		if a == word {
			return true
		}
	}
	return false
}

// parseMatchArgs reads "[page] [k=v ...]" for the dashboard:
// text=, min-score=, source=, sort=, status=, new-only.
func parseMatchArgs(args []string) (int, api.MatchFilters, error) {
	page := 1
	var filters api.MatchFilters

	for i, a := range args {
		if i == 0 {
			if n, err := strconv.Atoi(a); err == nil {
				page = n
				continue
			}
		}
		if a == "new-only" {
			filters.NewOnly = true
			continue
		}
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return 0, filters, fmt.Errorf("unknown argument %q", a)
		}
		switch key {
		case "text":
			filters.FilterText = value
		case "min-score":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 || n > 10 {
				return 0, filters, errors.New("min-score must be 0-10")
			}
			filters.MinScore = n
		case "source":
			filters.Source = value
		case "sort":
			filters.SortBy = value
		case "status":
			if _, err := models.ParseMatchStatus(value); err != nil {
				return 0, filters, err
			}
			filters.Status = value
		default:
			return 0, filters, fmt.Errorf("unknown filter %q", key)
		}
	}
	return page, filters, nil
}

// parseCampaignJobArgs reads "[page] [k=v ...]" for a pipeline board:
// status=, min-score=, search=.
func parseCampaignJobArgs(args []string) (int, api.CampaignJobFilters, error) {
	page := 1
	var filters api.CampaignJobFilters

	for i, a := range args {
		if i == 0 {
			if n, err := strconv.Atoi(a); err == nil {
				page = n
				continue
			}
		}
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return 0, filters, fmt.Errorf("unknown argument %q", a)
		}
		switch key {
		case "status":
			if _, err := models.ParsePipelineStatus(value); err != nil {
				return 0, filters, err
			}
			filters.Status = value
		case "min-score":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 || n > 10 {
				return 0, filters, errors.New("min-score must be 0-10")
			}
			filters.MinScore = n
		case "search":
			filters.Search = value
		default:
			return 0, filters, fmt.Errorf("unknown filter %q", key)
		}
	}
	return page, filters, nil
}

// parseCampaignArgs reads "k=v" pairs into a campaign create/update body.
func parseCampaignArgs(name string, args []string) (models.CampaignCreate, error) {
	in := models.CampaignCreate{Name: name}
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			if a == "default" {
				in.IsDefault = true
				continue
			}
			return in, fmt.Errorf("unknown argument %q", a)
		}
		v := value
		switch key {
		case "name":
			in.Name = v
		case "role":
			in.TargetRole = &v
		case "location":
			in.TargetLocation = &v
		case "contract":
			in.ContractType = &v
		case "salary-min":
			n, err := strconv.Atoi(v)
			if err != nil {
				return in, errors.New("salary-min must be a number")
			}
			in.SalaryMin = &n
		case "salary-max":
			n, err := strconv.Atoi(v)
			if err != nil {
				return in, errors.New("salary-max must be a number")
			}
			in.SalaryMax = &n
		case "must":
			in.MustKeywords = &v
		case "nice":
			in.NiceKeywords = &v
		case "avoid":
			in.AvoidKeywords = &v
		case "remote":
			in.RemotePreference = &v
		case "description":
			in.Description = &v
		default:
			return in, fmt.Errorf("unknown campaign field %q", key)
		}
	}
	return in, nil
}

// parseTemplateArgs reads "k=v" pairs into a template body:
// name=, subject=, body=, campaign=<id>.
func parseTemplateArgs(name string, args []string) (models.EmailTemplateCreate, error) {
	in := models.EmailTemplateCreate{Name: name}
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return in, fmt.Errorf("unknown argument %q", a)
		}
		switch key {
		case "name":
			in.Name = value
		case "subject":
			in.Subject = value
		case "body":
			in.Body = value
		case "campaign":
			n, err := strconv.Atoi(value)
			if err != nil {
				return in, errors.New("campaign must be a numeric id")
			}
			in.CampaignID = &n
		default:
			return in, fmt.Errorf("unknown template field %q", key)
		}
	}
	return in, nil
}

// parseDashboardConfigArgs reads "k=v" pairs into a widget-layout update:
// widgets=, layout=, default-campaign=<id>.
func parseDashboardConfigArgs(args []string) (models.DashboardConfigUpdate, error) {
	var upd models.DashboardConfigUpdate
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return upd, fmt.Errorf("unknown argument %q", a)
		}
		v := value
		switch key {
		case "widgets":
			upd.VisibleWidgets = &v
		case "layout":
			upd.Layout = &v
		case "default-campaign":
			n, err := strconv.Atoi(v)
			if err != nil {
				return upd, errors.New("default-campaign must be a numeric id")
			}
			upd.DefaultCampaign = &n
		default:
			return upd, fmt.Errorf("unknown config field %q", key)
		}
	}
	return upd, nil
}

// parsePrefArgs reads "k=v" pairs into a preference update.
func parsePrefArgs(args []string) (models.PreferenceUpdate, error) {
	var upd models.PreferenceUpdate
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return upd, fmt.Errorf("unknown argument %q", a)
		}
		v := value
		switch key {
		case "role":
			upd.Role = &v
		case "location":
			upd.Location = &v
		case "contract":
			upd.ContractType = &v
		case "salary-min":
			n, err := strconv.Atoi(v)
			if err != nil {
				return upd, errors.New("salary-min must be a number")
			}
			upd.SalaryMin = &n
		case "must":
			upd.MustKeywords = &v
		case "avoid":
			upd.AvoidKeywords = &v
		case "digest":
			upd.NotificationFrequency = &v
		default:
			return upd, fmt.Errorf("unknown preference %q", key)
		}
	}
	return upd, nil
}

// parseProfileArgs reads "k=v" pairs into a profile update.
func parseProfileArgs(args []string) (models.ProfileUpdate, error) {
	var upd models.ProfileUpdate
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return upd, fmt.Errorf("unknown argument %q", a)
		}
		v := value
		switch key {
		case "email":
			upd.Email = &v
		case "password":
			upd.NewPassword = &v
		case "current-password":
			upd.CurrentPassword = &v
		case "notifications":
			b := v == "on" || v == "true"
			upd.NotificationsEnabled = &b
		default:
			return upd, fmt.Errorf("unknown profile field %q", key)
		}
	}
	return upd, nil
}

func usage() {
	fmt.Println(`alize - job matching from the terminal

Usage: alize [-u url] [-s dir] [-n size] [--timeout d] [--no-color] <command>

Auth:       login, register, logout, oauth [token],
            reset-password request|confirm, verify-email request|confirm
Matches:    dashboard [page] [text= min-score= source= sort= status= new-only]
            visit|save|unsave|delete|status <id> [status]
Campaigns:  campaigns [list|create|show|edit|delete|jobs|add-job|move-job|
            note-job|remove-job|templates|template-create|template-edit|
            template-delete|dashboard|dashboard-config]
CV:         cv [show|upload <file>], analysis [force]
Settings:   prefs [show|edit], profile [show|edit|delete], theme [light|dark]
Search:     search, refresh, runs
Other:      notify [config|test]`)
}
