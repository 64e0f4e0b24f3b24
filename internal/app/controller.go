// Package app holds the view-state machine that ties user intents to the
// listing repository and the browse query logic.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"propluxe/internal/browse"
	"propluxe/internal/domain"
)

// listingRepository is the subset of service.ListingService that the
// controller requires.
type listingRepository interface {
	List(ctx context.Context) []domain.Listing
	Upsert(ctx context.Context, listing domain.Listing) ([]domain.Listing, error)
	Remove(ctx context.Context, id string) ([]domain.Listing, error)
}

// Confirmer is the synchronous yes/no collaborator consulted before a
// destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// MapView is the interactive map collaborator. It consumes geo-tagged
// listings and reports pin clicks through the callback it was constructed
// with; listings without coordinates are never handed to it.
type MapView interface {
	ShowListings(listings []domain.Listing)
}

// Controller runs the screen state machine. It starts on the browse screen
// and never terminates; every intent runs to completion before the next.
//
// The state machine itself assumes a single caller at a time; the mutex only
// serializes intents arriving concurrently from the HTTP surface.
type Controller struct {
	repo    listingRepository
	confirm Confirmer
	logger  *slog.Logger

	mu         sync.Mutex
	listings   []domain.Listing
	view       domain.ViewState
	selectedID string
	filter     domain.FilterState
	page       int
	mapView    bool
}

func NewController(ctx context.Context, repo listingRepository, confirm Confirmer, logger *slog.Logger) *Controller {
	c := &Controller{
		repo:    repo,
		confirm: confirm,
		logger:  logger,
		view:    domain.ViewBrowse,
		filter:  domain.DefaultFilter(),
		page:    1,
	}
	c.listings = repo.List(ctx)
	return c
}

func (c *Controller) View() domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Controller) Filter() domain.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

func (c *Controller) PageNumber() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) MapViewActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mapView
}

// Navigate switches to the target screen. The listing selection only
// survives navigation into the detail view.
func (c *Controller) Navigate(target domain.ViewState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = target
	if target != domain.ViewViewListing {
		c.selectedID = ""
	}
}

// SelectListing opens the detail view for the given id, whether the intent
// came from a card or a map pin.
func (c *Controller) SelectListing(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedID = id
	c.view = domain.ViewViewListing
}

func (c *Controller) EditListing(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedID = id
	c.view = domain.ViewEditListing
}

// SaveListing persists through the repository and lands on the admin
// dashboard whether the form was adding or editing.
func (c *Controller) SaveListing(ctx context.Context, listing domain.Listing) error {
	updated, err := c.repo.Upsert(ctx, listing)
	if err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.listings = updated
	c.view = domain.ViewAdminDashboard
	c.selectedID = ""
	return nil
}

// DeleteListing asks the confirmation collaborator first; a declined
// confirmation leaves everything untouched. The current screen does not
// change either way. Returns whether the deletion went through.
func (c *Controller) DeleteListing(ctx context.Context, id string) (bool, error) {
	if !c.confirm.Confirm("Are you sure you want to delete this listing?") {
		return false, nil
	}

	updated, err := c.repo.Remove(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete listing: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.listings = updated
	return true, nil
}

// CancelForm abandons the add/edit form without persisting.
func (c *Controller) CancelForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = domain.ViewAdminDashboard
	c.selectedID = ""
}

// SetFilter replaces the active filter and rewinds to the first page;
// pagination is never preserved across a filter change.
func (c *Controller) SetFilter(f domain.FilterState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
	c.page = 1
}

func (c *Controller) ClearFilter() {
	c.SetFilter(domain.DefaultFilter())
}

// SetMapView toggles between the list and map presentation; like a filter
// change, it rewinds to the first page.
func (c *Controller) SetMapView(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mapView = on
	c.page = 1
}

// SetPage clamps the requested page into the range the current filtered
// collection allows.
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := browse.Paginate(browse.Apply(c.listings, c.filter), browse.PageSize, 1).TotalPages
	if page < 1 || total == 0 {
		page = 1
	} else if page > total {
		page = total
	}
	c.page = page
}

// Refresh reloads the snapshot from the repository.
func (c *Controller) Refresh(ctx context.Context) {
	listings := c.repo.List(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listings = listings
}

// VisibleListings returns the current page of the filtered collection.
func (c *Controller) VisibleListings() browse.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return browse.Paginate(browse.Apply(c.listings, c.filter), browse.PageSize, c.page)
}

// AllListings returns the unfiltered snapshot, newest first, as the admin
// dashboard shows it.
func (c *Controller) AllListings() []domain.Listing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listings
}

// SelectedListing resolves the current selection against the snapshot. A
// stale id (deleted elsewhere) reports ok=false; the caller renders a
// not-found display, it is not a machine failure.
func (c *Controller) SelectedListing() (*domain.Listing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.listings {
		if c.listings[i].ID == c.selectedID {
			l := c.listings[i]
			return &l, true
		}
	}
	return nil, false
}

// MapPoints returns the filtered listings that carry coordinates, in
// collection order, ready for the map collaborator. Listings without
// coordinates are silently skipped.
func (c *Controller) MapPoints() []domain.Listing {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := browse.Apply(c.listings, c.filter)
	points := make([]domain.Listing, 0, len(filtered))
	for _, l := range filtered {
		if l.HasCoordinates() {
			points = append(points, l)
		}
	}
	return points
}

// ShowOnMap hands the current geo-tagged points to the map collaborator.
// Pin clicks come back through SelectListing, wired at construction time.
func (c *Controller) ShowOnMap(mv MapView) {
	mv.ShowListings(c.MapPoints())
}
