// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package listview implements the server-paginated list controller behind
the dashboard and campaign-job screens.

# Controller

A Controller is generic over the item type and the filter struct:

	ctrl := listview.New(cfg.PageSize,
		func(j models.Job) int { return j.ID },
		func(ctx context.Context, page, pageSize int, f api.MatchFilters) (listview.Page[models.Job], error) {
			resp, err := client.Matches(ctx, page, pageSize, f)
			if err != nil {
				return listview.Page[models.Job]{}, err
			}
			return listview.Page[models.Job]{Items: resp.Items, Total: resp.Total}, nil
		})

The server is the source of truth: filtering and pagination happen
there, and the controller renders whatever the last response said. An
out-of-range page is an empty page with an accurate total, not an error.

# Stale Responses

Every fetch carries a generation token. A response whose generation is
no longer current is dropped, so a slow response can never overwrite
state from a newer navigation or filter change.

# Row Mutations

ApplyUpdate and Remove patch the current page after the server confirmed
a single-row mutation, avoiding a full reload. They are not optimistic:
call them only once the request has resolved.
*/
package listview
