package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propluxe/internal/browse"
	"propluxe/internal/domain"
	"propluxe/internal/kv"
	"propluxe/internal/service"
	"propluxe/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestController wires a controller over a real repository holding the
// given listings, with a confirmer whose answer the test can flip.
func newTestController(t *testing.T, listings []domain.Listing) (*Controller, *bool) {
	t.Helper()

	backend, err := kv.OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	logger := testLogger()
	ls := store.NewListingStore(backend, logger)
	require.NoError(t, ls.ReplaceAll(context.Background(), listings))

	answer := true
	confirm := ConfirmFunc(func(string) bool { return answer })
	ctrl := NewController(context.Background(), service.NewListingService(ls, logger), confirm, logger)
	return ctrl, &answer
}

func makeListings(n int) []domain.Listing {
	listings := make([]domain.Listing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, domain.Listing{
			ID:           fmt.Sprintf("l%d", i+1),
			Title:        fmt.Sprintf("Listing %d", i+1),
			Price:        1000,
			Location:     "Kemang, Jakarta",
			PropertyType: "Apartment",
		})
	}
	return listings
}

func TestControllerInitialState(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(3))

	assert.Equal(t, domain.ViewBrowse, ctrl.View())
	assert.Equal(t, 1, ctrl.PageNumber())
	assert.Equal(t, domain.DefaultFilter(), ctrl.Filter())
	assert.False(t, ctrl.MapViewActive())
	assert.Len(t, ctrl.AllListings(), 3)
}

func TestNavigateClearsSelection(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(2))

	ctrl.SelectListing("l1")
	assert.Equal(t, domain.ViewViewListing, ctrl.View())

	ctrl.Navigate(domain.ViewAdminDashboard)
	assert.Equal(t, domain.ViewAdminDashboard, ctrl.View())
	_, ok := ctrl.SelectedListing()
	assert.False(t, ok)
}

func TestNavigateToDetailKeepsSelection(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(2))

	ctrl.SelectListing("l2")
	ctrl.Navigate(domain.ViewViewListing)

	l, ok := ctrl.SelectedListing()
	require.True(t, ok)
	assert.Equal(t, "l2", l.ID)
}

func TestSelectedListingStaleID(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(1))

	ctrl.SelectListing("deleted-in-another-tab")

	l, ok := ctrl.SelectedListing()
	assert.False(t, ok)
	assert.Nil(t, l)
	// The machine itself stays on the detail screen.
	assert.Equal(t, domain.ViewViewListing, ctrl.View())
}

func TestEditListing(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(1))

	ctrl.EditListing("l1")

	assert.Equal(t, domain.ViewEditListing, ctrl.View())
	l, ok := ctrl.SelectedListing()
	require.True(t, ok)
	assert.Equal(t, "l1", l.ID)
}

func TestSaveListingLandsOnDashboard(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(1))

	for _, from := range []domain.ViewState{domain.ViewAddListing, domain.ViewEditListing} {
		ctrl.Navigate(from)
		err := ctrl.SaveListing(context.Background(), domain.Listing{Title: "New", Location: "PIK", Price: 900})
		require.NoError(t, err)
		assert.Equal(t, domain.ViewAdminDashboard, ctrl.View())
	}

	// Both saves went through the repository and refreshed the snapshot.
	assert.Len(t, ctrl.AllListings(), 3)
}

func TestDeleteListingConfirmed(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(2))
	ctrl.Navigate(domain.ViewAdminDashboard)

	deleted, err := ctrl.DeleteListing(context.Background(), "l1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, ctrl.AllListings(), 1)
	assert.Equal(t, domain.ViewAdminDashboard, ctrl.View())
}

func TestDeleteListingDeclined(t *testing.T) {
	ctrl, answer := newTestController(t, makeListings(2))
	*answer = false

	deleted, err := ctrl.DeleteListing(context.Background(), "l1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, ctrl.AllListings(), 2)
}

func TestCancelForm(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(1))

	ctrl.EditListing("l1")
	ctrl.CancelForm()

	assert.Equal(t, domain.ViewAdminDashboard, ctrl.View())
	_, ok := ctrl.SelectedListing()
	assert.False(t, ok)
}

func TestFilterChangeRewindsPage(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(23))

	ctrl.SetPage(3)
	require.Equal(t, 3, ctrl.PageNumber())

	f := domain.DefaultFilter()
	f.Location = "kemang"
	ctrl.SetFilter(f)
	assert.Equal(t, 1, ctrl.PageNumber())

	ctrl.SetPage(2)
	ctrl.SetMapView(true)
	assert.Equal(t, 1, ctrl.PageNumber())
	assert.True(t, ctrl.MapViewActive())

	ctrl.SetPage(2)
	ctrl.ClearFilter()
	assert.Equal(t, 1, ctrl.PageNumber())
}

func TestSetPageClamps(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(23))

	ctrl.SetPage(99)
	assert.Equal(t, 3, ctrl.PageNumber())

	ctrl.SetPage(-5)
	assert.Equal(t, 1, ctrl.PageNumber())
}

func TestVisibleListings(t *testing.T) {
	ctrl, _ := newTestController(t, makeListings(23))

	page := ctrl.VisibleListings()
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, browse.PageSize)
	assert.Equal(t, "l1", page.Items[0].ID)

	ctrl.SetPage(3)
	page = ctrl.VisibleListings()
	assert.Len(t, page.Items, 3)
	assert.Equal(t, "l23", page.Items[2].ID)
}

func TestVisibleListingsFiltered(t *testing.T) {
	listings := makeListings(4)
	listings[1].PropertyType = "Villa"
	listings[3].PropertyType = "Villa"
	ctrl, _ := newTestController(t, listings)

	f := domain.DefaultFilter()
	f.PropertyTypes = []string{"Villa"}
	ctrl.SetFilter(f)

	page := ctrl.VisibleListings()
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "l2", page.Items[0].ID)
	assert.Equal(t, "l4", page.Items[1].ID)
}

func TestMapPointsSkipsMissingCoordinates(t *testing.T) {
	listings := makeListings(3)
	listings[0].SetCoordinates(-6.21, 106.84)
	listings[2].SetCoordinates(-6.25, 106.80)
	ctrl, _ := newTestController(t, listings)

	points := ctrl.MapPoints()
	require.Len(t, points, 2)
	assert.Equal(t, "l1", points[0].ID)
	assert.Equal(t, "l3", points[1].ID)
}

type recordingMapView struct {
	shown []domain.Listing
}

func (m *recordingMapView) ShowListings(listings []domain.Listing) { m.shown = listings }

func TestShowOnMapFeedsCollaborator(t *testing.T) {
	listings := makeListings(2)
	listings[1].SetCoordinates(-6.19, 106.82)
	ctrl, _ := newTestController(t, listings)

	mv := &recordingMapView{}
	ctrl.ShowOnMap(mv)
	require.Len(t, mv.shown, 1)
	assert.Equal(t, "l2", mv.shown[0].ID)

	// A pin click routes back through the selection intent.
	ctrl.SelectListing(mv.shown[0].ID)
	selected, ok := ctrl.SelectedListing()
	require.True(t, ok)
	assert.Equal(t, "l2", selected.ID)
}
