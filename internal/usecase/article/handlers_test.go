package article_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sk-api/internal/domain/entity"
	"sk-api/internal/mediator"
	"sk-api/internal/repository"
	"sk-api/internal/repository/repotest"
	"sk-api/internal/usecase/article"
)

/* ─────────────────────────── helpers ─────────────────────────── */

var scott = entity.Actor{Username: "scott@localhost"}

func setup(t *testing.T) (*mediator.Mediator, *repotest.Store) {
	t.Helper()
	store := repotest.New()
	m := mediator.New(nil)
	article.Register(m, &article.Handlers{Store: store, Now: time.Now})
	return m, store
}

func create(t *testing.T, m *mediator.Mediator, cmd article.CreateCommand) uuid.UUID {
	t.Helper()
	id, err := mediator.Send[uuid.UUID](context.Background(), m, scott, cmd)
	require.NoError(t, err)
	return id
}

func validCreate() article.CreateCommand {
	return article.CreateCommand{
		ID:       uuid.New(),
		Title:    "Article Title",
		Abstract: "Article Abstract",
		Content:  "Article Content",
	}
}

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve entity.ValidationErrors
	require.True(t, errors.As(err, &ve), "want ValidationErrors, got %v", err)
	return ve.Fields()
}

/* ─────────────────────────── 1. Create ─────────────────────────── */

func TestCreate_StampsAuditAndKeepsClientID(t *testing.T) {
	m, store := setup(t)
	cmd := validCreate()

	id := create(t, m, cmd)

	assert.Equal(t, cmd.ID, id)
	stored, err := store.Articles().Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, cmd.Title, stored.Title)
	assert.Equal(t, "scott@localhost", stored.CreatedBy)
	assert.WithinDuration(t, time.Now(), stored.Created, time.Second)
	assert.Nil(t, stored.LastModifiedBy)
	assert.Nil(t, stored.LastModified)
}

func TestCreate_GeneratesIDWhenMissing(t *testing.T) {
	m, _ := setup(t)
	cmd := validCreate()
	cmd.ID = uuid.Nil

	id := create(t, m, cmd)

	assert.NotEqual(t, uuid.Nil, id)
}

func TestCreate_RequiresFields(t *testing.T) {
	m, store := setup(t)

	_, err := mediator.Send[uuid.UUID](context.Background(), m, scott, article.CreateCommand{Title: "  "})

	assert.ErrorIs(t, err, entity.ErrValidationFailed)
	fields := fieldsOf(t, err)
	assert.Equal(t, []string{"Title is required."}, fields["title"])
	assert.Contains(t, fields, "abstract")
	assert.Contains(t, fields, "content")
	assert.Zero(t, store.Commits(), "nothing is written when validation fails")
}

func TestCreate_TitleTooLong(t *testing.T) {
	m, _ := setup(t)
	cmd := validCreate()
	cmd.Title = strings.Repeat("é", 256)

	_, err := mediator.Send[uuid.UUID](context.Background(), m, scott, cmd)

	assert.Equal(t, []string{"Title must not exceed 255 characters."}, fieldsOf(t, err)["title"])
}

func TestCreate_DuplicateID(t *testing.T) {
	m, _ := setup(t)
	cmd := validCreate()
	create(t, m, cmd)

	_, err := mediator.Send[uuid.UUID](context.Background(), m, scott, cmd)

	assert.Contains(t, fieldsOf(t, err), "id")
}

func TestCreate_DuplicateIDAtInsert(t *testing.T) {
	m, store := setup(t)
	cmd := validCreate()
	create(t, m, cmd)
	// call the handler directly so the id rule cannot catch the clash first
	h := &article.Handlers{Store: store, Now: time.Now}

	_, err := h.Create(context.Background(), scott, cmd)

	assert.NotErrorIs(t, err, repository.ErrDuplicate)
	assert.Equal(t, map[string][]string{"id": {"Article with this id already exists."}}, fieldsOf(t, err))
}

func TestCreate_RejectsPrivateImage(t *testing.T) {
	m, _ := setup(t)
	cmd := validCreate()
	img := "http://127.0.0.1/x.png"
	cmd.Image = &img

	_, err := mediator.Send[uuid.UUID](context.Background(), m, scott, cmd)

	assert.Contains(t, fieldsOf(t, err), "image")
}

/* ─────────────────────────── 2. Edit ─────────────────────────── */

func TestEdit_UpdatesAndStampsModified(t *testing.T) {
	m, store := setup(t)
	id := create(t, m, validCreate())
	img := "https://example.com/cover.png"
	editor := entity.Actor{Username: "editor"}

	_, err := mediator.Send[mediator.None](context.Background(), m, editor, article.EditCommand{
		ID: id, Title: "Updated Title", Abstract: "Updated Abstract", Content: "Updated Content", Image: &img,
	})
	require.NoError(t, err)

	stored, err := store.Articles().Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", stored.Title)
	assert.Equal(t, &img, stored.Image)
	assert.Equal(t, "scott@localhost", stored.CreatedBy)
	require.NotNil(t, stored.LastModifiedBy)
	assert.Equal(t, "editor", *stored.LastModifiedBy)
	require.NotNil(t, stored.LastModified)
	assert.WithinDuration(t, time.Now(), *stored.LastModified, time.Second)
}

func TestEdit_UnknownIDIsNotFound(t *testing.T) {
	m, _ := setup(t)

	_, err := mediator.Send[mediator.None](context.Background(), m, scott, article.EditCommand{
		ID: uuid.New(), Title: "t", Abstract: "a", Content: "c",
	})

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestEdit_ValidationBeforeLookup(t *testing.T) {
	m, _ := setup(t)

	_, err := mediator.Send[mediator.None](context.Background(), m, scott, article.EditCommand{ID: uuid.New()})

	assert.ErrorIs(t, err, entity.ErrValidationFailed)
	assert.NotErrorIs(t, err, entity.ErrNotFound)
	assert.Equal(t, []string{"abstract", "content", "title"}, func() []string {
		var ve entity.ValidationErrors
		require.True(t, errors.As(err, &ve))
		return ve.FieldNames()
	}())
}

/* ─────────────────────────── 3. Delete / queries ─────────────────────────── */

func TestDelete(t *testing.T) {
	m, _ := setup(t)
	id := create(t, m, validCreate())

	_, err := mediator.Send[mediator.None](context.Background(), m, scott, article.DeleteCommand{ID: id})
	require.NoError(t, err)

	_, err = mediator.Send[article.DTO](context.Background(), m, entity.Actor{}, article.DetailsQuery{ID: id})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = mediator.Send[mediator.None](context.Background(), m, scott, article.DeleteCommand{ID: id})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListAndDetails(t *testing.T) {
	m, _ := setup(t)
	cmd := validCreate()
	id := create(t, m, cmd)

	list, err := mediator.Send[[]article.DTO](context.Background(), m, entity.Actor{}, article.ListQuery{})
	require.NoError(t, err)

	want := []article.DTO{{ID: id, Title: cmd.Title, Abstract: cmd.Abstract, Content: cmd.Content}}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	got, err := mediator.Send[article.DTO](context.Background(), m, entity.Actor{}, article.DetailsQuery{ID: id})
	require.NoError(t, err)
	assert.Equal(t, want[0], got)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	m, _ := setup(t)

	list, err := mediator.Send[[]article.DTO](context.Background(), m, entity.Actor{}, article.ListQuery{})

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStoreFailureSurfaces(t *testing.T) {
	m, store := setup(t)
	down := errors.New("db down")
	store.FailWith(down)

	_, err := mediator.Send[[]article.DTO](context.Background(), m, entity.Actor{}, article.ListQuery{})

	assert.ErrorIs(t, err, down)
}
