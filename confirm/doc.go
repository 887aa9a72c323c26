// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package confirm implements the confirm-then-mutate flow used before
destructive actions (CV replacement, campaign deletion, account deletion).

# States

A controller moves through four states:

	idle ──► checking ──► confirming ──► saving ──► idle
	            │                           ▲
	            └── non-destructive ────────┘

Submit runs the pre-check. A non-destructive result (or a nil check)
saves immediately; a destructive one waits in confirming until the user
calls Confirm or Cancel. A failing pre-check also waits in confirming:
when in doubt, ask.

# Usage

	ctrl := confirm.New(confirm.Flow{
		Check: func(ctx context.Context) (bool, string, error) {
			count, err := client.MatchesCount(ctx)
			if err != nil {
				return false, "", err
			}
			return count.Count > 0, fmt.Sprintf("%d matches will be rescored", count.Count), nil
		},
		Save: func(ctx context.Context) error {
			_, err := client.UploadCV(ctx, filename, f)
			return err
		},
	})

	if err := ctrl.Submit(ctx); err != nil { ... }
	if ctrl.State() == confirm.StateConfirming {
		// prompt the user, then ctrl.Confirm(ctx) or ctrl.Cancel()
	}
*/
package confirm
