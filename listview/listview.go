// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package listview

import (
	"context"
	"sync"
)

// Page is one server response worth of items. Total is the filtered
// total across all pages, not len(Items).
type Page[T any] struct {
	Items []T
	Total int
}

// Fetch loads one page from the server with the current filters. F is the
// view-specific filter struct (api.MatchFilters, api.CampaignJobFilters).
type Fetch[T, F any] func(ctx context.Context, page, pageSize int, filters F) (Page[T], error)

// Controller owns the pagination, filter, and item state behind a list
// screen. The server is the source of truth: the controller renders
// whatever the last non-stale response said, including an empty page
// with a non-zero total when the requested page is out of range.
type Controller[T, F any] struct {
	fetch    Fetch[T, F]
	identify func(T) int
	pageSize int

	mu         sync.Mutex
	generation uint64
	page       int
	total      int
	filters    F
	items      []T
}

// New creates a controller starting at page 1 with zero-value filters.
// identify extracts the server id used by ApplyUpdate and Remove.
func New[T, F any](pageSize int, identify func(T) int, fetch Fetch[T, F]) *Controller[T, F] {
	return &Controller[T, F]{
		fetch:    fetch,
		identify: identify,
		pageSize: pageSize,
		page:     1,
	}
}

// Load fetches the current page. A response that arrives after a newer
// fetch has started is discarded: without this, a slow page-1 response
// could overwrite the page-2 state the user has already navigated to.
func (c *Controller[T, F]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	page := c.page
	filters := c.filters
	c.mu.Unlock()

	result, err := c.fetch(ctx, page, c.pageSize, filters)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		// Stale response; a newer fetch owns the state now.
		return nil
	}
	if err != nil {
		return err
	}
	c.items = result.Items
	c.total = result.Total
	return nil
}

// SetPage navigates to the given page (clamped to >= 1) and fetches it.
func (c *Controller[T, F]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	return c.Load(ctx)
}

// NextPage advances one page and fetches it.
func (c *Controller[T, F]) NextPage(ctx context.Context) error {
	c.mu.Lock()
	page := c.page + 1
	c.mu.Unlock()
	return c.SetPage(ctx, page)
}

// PrevPage goes back one page and fetches it.
func (c *Controller[T, F]) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	page := c.page - 1
	c.mu.Unlock()
	return c.SetPage(ctx, page)
}

// SetFilters replaces the filter state, resets to page 1, and refetches.
func (c *Controller[T, F]) SetFilters(ctx context.Context, filters F) error {
	c.mu.Lock()
	c.filters = filters
	c.page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// Reset sets filters and page (clamped to >= 1) without fetching, for
// callers that know both up front and want a single Load instead of a
// fetch per setter.
func (c *Controller[T, F]) Reset(filters F, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.filters = filters
	c.page = page
	c.mu.Unlock()
}

// Filters returns the current filter state.
func (c *Controller[T, F]) Filters() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Items returns the current page's items.
func (c *Controller[T, F]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Total returns the filtered total across all pages.
func (c *Controller[T, F]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Page returns the current page number (1-based).
func (c *Controller[T, F]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageSize returns the fixed page size.
func (c *Controller[T, F]) PageSize() int {
	return c.pageSize
}

// TotalPages returns ceil(total / pageSize), 0 when the list is empty.
func (c *Controller[T, F]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return (c.total + c.pageSize - 1) / c.pageSize
}

// ApplyUpdate replaces the item with the given id in place, after the
// server confirmed the mutation. No reload, no effect if the id is not
// on the current page.
func (c *Controller[T, F]) ApplyUpdate(id int, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.identify(c.items[i]) == id {
			c.items[i] = item
			return
		}
	}
}

// Remove drops the item with the given id from the current page and
// decrements the total, after the server confirmed the deletion.
func (c *Controller[T, F]) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.identify(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			if c.total > 0 {
				c.total--
			}
			return
		}
	}
}
