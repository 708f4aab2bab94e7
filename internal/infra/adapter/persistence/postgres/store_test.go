package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sk-api/internal/domain/entity"
	pg "sk-api/internal/infra/adapter/persistence/postgres"
	"sk-api/internal/infra/db"
	"sk-api/internal/repository"
	"sk-api/internal/resilience/circuitbreaker"
)

/* ─────────────────────────── helpers ─────────────────────────── */

func newStore(t *testing.T, cb *circuitbreaker.CircuitBreaker) (*pg.Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := db.NewGorm(sqlDB, nil)
	require.NoError(t, err)
	return pg.NewStore(gdb, cb), mock
}

func articleRows(articles ...*entity.Article) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "abstract", "image", "content",
		"created_by", "created", "last_modified_by", "last_modified",
	})
	for _, a := range articles {
		var image, modifiedBy, modified any
		if a.Image != nil {
			image = *a.Image
		}
		if a.LastModifiedBy != nil {
			modifiedBy = *a.LastModifiedBy
		}
		if a.LastModified != nil {
			modified = *a.LastModified
		}
		rows.AddRow(a.ID.String(), a.Title, a.Abstract, image, a.Content,
			a.CreatedBy, a.Created, modifiedBy, modified)
	}
	return rows
}

/* ─────────────────────────── articles ─────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	store, mock := newStore(t, nil)
	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Article{
		ID: uuid.New(), Title: "Go 1.24 released", Abstract: "abs", Content: "body",
		Audit: entity.Audit{CreatedBy: "scott", Created: now},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "articles" WHERE id = $1`)).
		WillReturnRows(articleRows(want))

	got, err := store.Articles().Get(context.Background(), want.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	store, mock := newStore(t, nil)

	mock.ExpectQuery(`FROM "articles"`).WillReturnRows(articleRows())

	got, err := store.Articles().Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_List_NewestFirst(t *testing.T) {
	store, mock := newStore(t, nil)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "articles" ORDER BY created DESC, id`) + "$").
		WillReturnRows(articleRows(
			&entity.Article{ID: uuid.New(), Title: "new", Audit: entity.Audit{Created: now}},
			&entity.Article{ID: uuid.New(), Title: "old", Audit: entity.Audit{Created: now.Add(-time.Hour)}},
		))

	got, err := store.Articles().List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_Exists(t *testing.T) {
	store, mock := newStore(t, nil)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "articles" WHERE id = $1`)).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := store.Articles().Exists(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_Delete_Missing(t *testing.T) {
	store, mock := newStore(t, nil)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "articles" WHERE id = $1`)).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Articles().Delete(context.Background(), id)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_Update(t *testing.T) {
	store, mock := newStore(t, nil)
	a := &entity.Article{ID: uuid.New(), Title: "t", Abstract: "a", Content: "c"}

	mock.ExpectExec(`UPDATE "articles" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Articles().Update(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ─────────────────────────── events ─────────────────────────── */

func TestEventRepo_List_LatestDateFirst(t *testing.T) {
	store, mock := newStore(t, nil)

	// equal dates are broken by id so repeated listings agree
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "events" ORDER BY date DESC, id`) + "$").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "date"}))

	got, err := store.Events().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ─────────────────────────── posts ─────────────────────────── */

func TestPostRepo_List_FilteredByEvent(t *testing.T) {
	store, mock := newStore(t, nil)
	eventID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE event_id = $1 ORDER BY created DESC, id`) + "$").
		WithArgs(eventID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "title"}).
			AddRow(uuid.NewString(), eventID.String(), "p"))

	got, err := store.Posts().List(context.Background(), repository.PostFilter{EventID: &eventID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, eventID, got[0].EventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ─────────────────────────── users ─────────────────────────── */

func TestUserRepo_GetByEmail_CaseInsensitive(t *testing.T) {
	store, mock := newStore(t, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE LOWER(email) = LOWER($1)`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(uuid.NewString(), "scott", "scott@localhost"))

	u, err := store.Users().GetByEmail(context.Background(), "Scott@Localhost")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "scott", u.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_Duplicate(t *testing.T) {
	store, mock := newStore(t, nil)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := store.Users().Create(context.Background(), &entity.AppUser{ID: uuid.New(), Username: "scott"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ─────────────────────────── test values ─────────────────────────── */

func TestTestValueRepo_Create_ReturnsGeneratedID(t *testing.T) {
	store, mock := newStore(t, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "test_values" ("name") VALUES ($1) RETURNING "id"`)).
		WithArgs("Do yoga").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	tv := &entity.TestValue{Name: "Do yoga"}
	require.NoError(t, store.TestValues().Create(context.Background(), tv))
	assert.Equal(t, int64(7), tv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestValueRepo_List_OrderedByID(t *testing.T) {
	store, mock := newStore(t, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "test_values" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "a").AddRow(2, "b"))

	got, err := store.TestValues().List(context.Background())
	require.NoError(t, err)
	want := []*entity.TestValue{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ─────────────────────────── unit of work ─────────────────────────── */

func TestStore_Atomic_Commit(t *testing.T) {
	store, mock := newStore(t, nil)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "user_events" WHERE user_id = $1`)).
		WithArgs(userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1`)).
		WithArgs(userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var removed int64
	err := store.Atomic(context.Background(), func(tx repository.Collections) error {
		n, err := tx.UserEvents().DeleteByUser(context.Background(), userID)
		if err != nil {
			return err
		}
		removed = n
		return tx.Users().Delete(context.Background(), userID)
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Atomic_RollbackOnError(t *testing.T) {
	store, mock := newStore(t, nil)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "articles"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := store.Atomic(context.Background(), func(tx repository.Collections) error {
		if err := tx.Articles().Create(context.Background(), &entity.Article{ID: uuid.New(), Title: "t"}); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Atomic_BreakerOpensOnDatabaseFailures(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test-db",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Hour,
		FailureThreshold: 1.0,
		MinRequests:      2,
	})
	store, mock := newStore(t, cb)
	down := errors.New("connection reset")

	mock.ExpectBegin().WillReturnError(down)
	mock.ExpectBegin().WillReturnError(down)

	noop := func(repository.Collections) error { return nil }
	assert.Error(t, store.Atomic(context.Background(), noop))
	assert.Error(t, store.Atomic(context.Background(), noop))

	err := store.Atomic(context.Background(), noop)
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Atomic_DomainErrorsKeepBreakerClosed(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test-db",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Hour,
		FailureThreshold: 1.0,
		MinRequests:      1,
	})
	store, mock := newStore(t, cb)

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
		err := store.Atomic(context.Background(), func(repository.Collections) error {
			return entity.NewNotFound("Post", i)
		})
		assert.ErrorIs(t, err, entity.ErrNotFound)
	}

	assert.False(t, cb.IsOpen())
	assert.NoError(t, mock.ExpectationsWereMet())
}
