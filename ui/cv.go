// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/alize-cli/api"
	"github.com/danielhkuo/alize-cli/apierr"
	"github.com/danielhkuo/alize-cli/confirm"
)

// CVView shows the current CV, uploads a replacement, and renders the AI
// analysis panel.
type CVView struct {
	out     io.Writer
	in      *bufio.Reader
	client  *api.Client
	palette *Palette
}

func NewCVView(out io.Writer, in io.Reader, client *api.Client, palette *Palette) *CVView {
	return &CVView{out: out, in: bufio.NewReader(in), client: client, palette: palette}
}

// Show renders the latest CV, or the empty state when none was uploaded.
func (v *CVView) Show(ctx context.Context) error {
	cv, err := v.client.LatestCV(ctx)
	if apierr.IsNotFound(err) {
		fmt.Fprintln(v.out, "No CV uploaded yet. Run 'alize cv upload <file>'.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(v.out, "%s  uploaded %s\n", v.palette.Title(cv.Filename), relTime(&cv.CreatedAt))
	if cv.Text != nil {
		rule(v.out)
		fmt.Fprintln(v.out, *cv.Text)
	}
	return nil
}

// Upload replaces the CV. Replacing a CV rescores the existing matches,
// so when matches exist the user is asked first; with an empty feed the
// upload goes through without a prompt.
func (v *CVView) Upload(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}

	ctrl := confirm.New(confirm.Flow{
		Check: func(ctx context.Context) (bool, string, error) {
			count, err := v.client.MatchesCount(ctx)
			if err != nil {
				return false, "", err
			}
			if count.Count == 0 {
				return false, "", nil
			}
			return true, fmt.Sprintf("%d existing matches will be rescored against the new CV", count.Count), nil
		},
		Save: func(ctx context.Context) error {
			uploaded, err := v.client.UploadCV(ctx, filepath.Base(path), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(v.out, "%s uploaded (%s).\n",
				uploaded.Filename, humanize.Bytes(uint64(info.Size())))
			return nil
		},
	})

	if err := ctrl.Submit(ctx); err != nil {
		return err
	}
	if ctrl.State() == confirm.StateConfirming {
		if !askYesNo(v.out, v.in, v.palette, ctrl.Summary()) {
			fmt.Fprintln(v.out, "Upload cancelled.")
			return ctrl.Cancel()
		}
		return ctrl.Confirm(ctx)
	}
	return nil
}

// Analysis renders the AI panel. force bypasses the backend cache.
func (v *CVView) Analysis(ctx context.Context, force bool) error {
	a, err := v.client.Analysis(ctx, force)
	if err != nil {
		return err
	}
	if !a.CVPresent {
		fmt.Fprintln(v.out, "Upload a CV first to get an analysis.")
		return nil
	}

	fmt.Fprintln(v.out, v.palette.Title("CV analysis"))
	if a.Summary != "" {
		fmt.Fprintln(v.out, a.Summary)
	}
	rule(v.out)
	if len(a.TopKeywords) > 0 {
		fmt.Fprintf(v.out, "Keywords:   %s\n", v.palette.Accent(joinReasons(a.TopKeywords)))
	}
	if len(a.InferredRoles) > 0 {
		fmt.Fprintf(v.out, "Roles:      %s\n", joinReasons(a.InferredRoles))
	}
	if len(a.SuggestedQueries) > 0 {
		fmt.Fprintf(v.out, "Queries:    %s\n", joinReasons(a.SuggestedQueries))
	}
	if len(a.MustHits) > 0 {
		fmt.Fprintf(v.out, "Must hits:  %s\n", v.palette.Good(joinReasons(a.MustHits)))
	}
	if len(a.MissingMust) > 0 {
		fmt.Fprintf(v.out, "Missing:    %s\n", v.palette.Bad(joinReasons(a.MissingMust)))
	}
	if !a.LLMUsed {
		fmt.Fprintln(v.out, v.palette.Dim("(keyword analysis only, no LLM configured)"))
	}
	return nil
}
