package event_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sk-api/internal/domain/entity"
	"sk-api/internal/mediator"
	"sk-api/internal/repository"
	"sk-api/internal/repository/repotest"
	"sk-api/internal/usecase/event"
)

func setup(t *testing.T, events ...*entity.Event) *mediator.Mediator {
	t.Helper()
	store := repotest.New()
	require.NoError(t, store.Atomic(context.Background(), func(tx repository.Collections) error {
		for _, e := range events {
			if err := tx.Events().Create(context.Background(), e); err != nil {
				return err
			}
		}
		return nil
	}))
	m := mediator.New(nil)
	event.Register(m, &event.Handlers{Store: store})
	return m
}

func TestList_LatestDateFirst(t *testing.T) {
	now := time.Now().UTC()
	event1 := &entity.Event{ID: uuid.New(), Title: "Test Event 1", Date: now, City: "London"}
	event2 := &entity.Event{ID: uuid.New(), Title: "Test Event 2", Date: now.AddDate(0, 0, 1), City: "London"}
	event3 := &entity.Event{ID: uuid.New(), Title: "Test Event 3", Date: now.AddDate(0, 0, -1), City: "London"}
	m := setup(t, event1, event2, event3)

	got, err := mediator.Send[[]event.DTO](context.Background(), m, entity.Actor{}, event.ListQuery{})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{event2.ID, event1.ID, event3.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
}

func TestList_EqualDatesOrderedByID(t *testing.T) {
	date := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	events := make([]*entity.Event, 8)
	want := make([]string, len(events))
	for i := range events {
		events[i] = &entity.Event{ID: uuid.New(), Title: "Same Night", Date: date}
		want[i] = events[i].ID.String()
	}
	sort.Strings(want)
	m := setup(t, events...)

	for run := 0; run < 20; run++ {
		got, err := mediator.Send[[]event.DTO](context.Background(), m, entity.Actor{}, event.ListQuery{})
		require.NoError(t, err)
		ids := make([]string, len(got))
		for i, dto := range got {
			ids[i] = dto.ID.String()
		}
		require.Equal(t, want, ids, "run %d", run)
	}
}

func TestDetails(t *testing.T) {
	e := &entity.Event{ID: uuid.New(), Title: "Meetup", Venue: "Hall", Date: time.Now().UTC()}
	m := setup(t, e)

	got, err := mediator.Send[event.DTO](context.Background(), m, entity.Actor{}, event.DetailsQuery{ID: e.ID})
	require.NoError(t, err)
	assert.Equal(t, "Hall", got.Venue)

	_, err = mediator.Send[event.DTO](context.Background(), m, entity.Actor{}, event.DetailsQuery{ID: uuid.New()})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
