package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/repository"
	"github.com/anonimax/anonimax-server/internal/testutil"
)

func TestService_RunNow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	subRepo := repository.NewSubscriptionRepository(db)
	listingRepo := repository.NewListingRepository(db)
	svc := NewService(subRepo, listingRepo)

	user := testutil.TestUser(t, db)
	expired := testutil.TestSubscription(t, db, user.ID,
		testutil.WithMonthly(0, "", "2020-01-01"))
	current := testutil.TestSubscription(t, db, testutil.TestUser(t, db).ID,
		testutil.WithMonthly(0, "", "2099-12-31"))

	past := time.Now().AddDate(0, 0, -1)
	staleListing := testutil.TestListing(t, db, user,
		testutil.WithListingStatus(model.ListingActive, model.ListingPaymentVerified))
	require.NoError(t, db.Model(staleListing).Update("expires_at", past).Error)

	svc.RunNow()

	sub, err := subRepo.GetByID(expired.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionExpired, sub.Status)

	sub, err = subRepo.GetByID(current.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionActive, sub.Status)

	listing, err := listingRepo.GetByID(staleListing.ID)
	require.NoError(t, err)
	assert.NotEqual(t, model.ListingActive, listing.Status)
}

func TestService_StartStop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewService(
		repository.NewSubscriptionRepository(db),
		repository.NewListingRepository(db))

	svc.Start()
	svc.Stop()
}
