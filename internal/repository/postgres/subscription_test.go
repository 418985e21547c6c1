package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/service/subscription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*SubscriptionRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSubscriptionRepo(db), mock
}

func newSubscriber(t *testing.T) domain.NewSubscriber {
	t.Helper()
	s, err := domain.ParseNewSubscriber("le guin", "ursula_le_guin@gmail.com")
	require.NoError(t, err)
	return s
}

func TestSubscriptionRepo_Insert(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("INSERT INTO subscriptions").
		WithArgs(sqlmock.AnyArg(), "ursula_le_guin@gmail.com", "le guin", sqlmock.AnyArg(), "pending_confirmation").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec, err := repo.Insert(context.Background(), newSubscriber(t))
	require.NoError(t, err)

	_, err = uuid.Parse(rec.ID)
	assert.NoError(t, err, "id should be a uuid")
	assert.Equal(t, domain.SubscriptionPendingConfirmation, rec.Status)
	assert.Equal(t, "UTC", rec.SubscribedAt.Location().String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_InsertTwiceUsesDistinctIDs(t *testing.T) {
	repo, mock := setupRepo(t)

	for i := 0; i < 2; i++ {
		mock.ExpectExec("INSERT INTO subscriptions").WillReturnResult(sqlmock.NewResult(0, 1))
	}

	a, err := repo.Insert(context.Background(), newSubscriber(t))
	require.NoError(t, err)
	b, err := repo.Insert(context.Background(), newSubscriber(t))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_InsertFailure(t *testing.T) {
	repo, mock := setupRepo(t)
	cause := errors.New("pq: connection refused")

	mock.ExpectExec("INSERT INTO subscriptions").WillReturnError(cause)

	rec, err := repo.Insert(context.Background(), newSubscriber(t))
	assert.Nil(t, rec)

	var rerr *subscription.RepositoryError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "insert subscription", rerr.Op)
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	repo := NewSubscriptionRepo(db)

	mock.ExpectPing()
	assert.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.Error(t, repo.Ping(context.Background()))
}
