package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/testutil"
)

func TestListingRepository_Review(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewListingRepository(db)

	t.Run("approve pending listing", func(t *testing.T) {
		user := testutil.TestUser(t, db)
		listing := testutil.TestListing(t, db, user)

		expiresAt := time.Now().AddDate(0, 1, 0)
		err := repo.Review(listing.ID, model.ListingActive, &expiresAt)
		require.NoError(t, err)

		stored, err := repo.GetByID(listing.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ListingActive, stored.Status)
		assert.NotNil(t, stored.ExpiresAt)
	})

	t.Run("reviewed listing cannot be reviewed again", func(t *testing.T) {
		user := testutil.TestUser(t, db)
		listing := testutil.TestListing(t, db, user,
			testutil.WithListingStatus(model.ListingActive, model.ListingPaymentPending))

		err := repo.Review(listing.ID, model.ListingRejected, nil)
		assert.ErrorIs(t, err, ErrNotReviewable)
	})

	t.Run("review does not touch payment status", func(t *testing.T) {
		user := testutil.TestUser(t, db)
		listing := testutil.TestListing(t, db, user)

		require.NoError(t, repo.Review(listing.ID, model.ListingActive, nil))

		stored, err := repo.GetByID(listing.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ListingPaymentPending, stored.PaymentStatus)
	})
}

func TestListingRepository_SetPaymentStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewListingRepository(db)
	user := testutil.TestUser(t, db)
	listing := testutil.TestListing(t, db, user)

	err := repo.SetPaymentStatus(listing.ID, model.ListingPaymentVerified)
	require.NoError(t, err)

	stored, err := repo.GetByID(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ListingPaymentVerified, stored.PaymentStatus)
	// A moderação de conteúdo segue intocada.
	assert.Equal(t, model.ListingPending, stored.Status)
	assert.False(t, stored.Live())
}

func TestListingRepository_MarkFeePaid(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewListingRepository(db)
	user := testutil.TestUser(t, db)

	t.Run("pending becomes paid", func(t *testing.T) {
		listing := testutil.TestListing(t, db, user)

		require.NoError(t, repo.MarkFeePaid(listing.ID))

		stored, err := repo.GetByID(listing.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ListingPaymentPaid, stored.PaymentStatus)
	})

	t.Run("rejected becomes paid", func(t *testing.T) {
		listing := testutil.TestListing(t, db, user,
			testutil.WithListingStatus(model.ListingPending, model.ListingPaymentRejected))

		require.NoError(t, repo.MarkFeePaid(listing.ID))

		stored, err := repo.GetByID(listing.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ListingPaymentPaid, stored.PaymentStatus)
	})

	t.Run("verified stays verified", func(t *testing.T) {
		listing := testutil.TestListing(t, db, user,
			testutil.WithListingStatus(model.ListingActive, model.ListingPaymentVerified))

		require.NoError(t, repo.MarkFeePaid(listing.ID))

		stored, err := repo.GetByID(listing.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ListingPaymentVerified, stored.PaymentStatus)
		assert.True(t, stored.Live())
	})
}

func TestListingRepository_ListLive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewListingRepository(db)
	user := testutil.TestUser(t, db)

	// Só aprovado E verificado aparece ao público.
	live := testutil.TestListing(t, db, user,
		testutil.WithListingStatus(model.ListingActive, model.ListingPaymentVerified),
		testutil.WithTitle("Aulas de violão"))
	testutil.TestListing(t, db, user,
		testutil.WithListingStatus(model.ListingActive, model.ListingPaymentPending))
	testutil.TestListing(t, db, user,
		testutil.WithListingStatus(model.ListingPending, model.ListingPaymentVerified))
	testutil.TestListing(t, db, user,
		testutil.WithListingStatus(model.ListingRejected, model.ListingPaymentVerified))

	t.Run("only live listings", func(t *testing.T) {
		listings, total, err := repo.ListLive(LiveFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, listings, 1)
		assert.Equal(t, live.ID, listings[0].ID)
	})

	t.Run("filter by category", func(t *testing.T) {
		testutil.TestListing(t, db, user,
			testutil.WithListingStatus(model.ListingActive, model.ListingPaymentVerified),
			testutil.WithCategory("produtos"))

		listings, total, err := repo.ListLive(LiveFilter{Category: "produtos"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "produtos", listings[0].Category)
	})

	t.Run("search in title", func(t *testing.T) {
		listings, total, err := repo.ListLive(LiveFilter{Search: "violão"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, live.ID, listings[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		listings, total, err := repo.ListLive(LiveFilter{Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, listings, 1)
	})
}

func TestListingRepository_DeactivateExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewListingRepository(db)
	user := testutil.TestUser(t, db)

	past := time.Now().AddDate(0, 0, -1)
	future := time.Now().AddDate(0, 1, 0)

	expired := testutil.TestListing(t, db, user,
		testutil.WithListingStatus(model.ListingActive, model.ListingPaymentVerified))
	require.NoError(t, db.Model(expired).Update("expires_at", past).Error)

	current := testutil.TestListing(t, db, user,
		testutil.WithListingStatus(model.ListingActive, model.ListingPaymentVerified))
	require.NoError(t, db.Model(current).Update("expires_at", future).Error)

	n, err := repo.DeactivateExpired(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stored, err := repo.GetByID(expired.ID)
	require.NoError(t, err)
	assert.NotEqual(t, model.ListingActive, stored.Status)

	stored, err = repo.GetByID(current.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ListingActive, stored.Status)
}

func TestListingRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewListingRepository(db)
	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	listing := testutil.TestListing(t, db, owner)

	t.Run("other user cannot delete", func(t *testing.T) {
		err := repo.Delete(listing.ID, other.ID)
		assert.Error(t, err)
	})

	t.Run("owner can delete", func(t *testing.T) {
		err := repo.Delete(listing.ID, owner.ID)
		require.NoError(t, err)

		_, err = repo.GetByID(listing.ID)
		assert.Error(t, err)
	})
}
