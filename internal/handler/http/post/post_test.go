package post_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sk-api/internal/domain/entity"
	"sk-api/internal/handler/http/auth"
	"sk-api/internal/handler/http/post"
	"sk-api/internal/mediator"
	"sk-api/internal/repository"
	"sk-api/internal/repository/repotest"
	postUC "sk-api/internal/usecase/post"
)

func asHost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), entity.Actor{Username: "host"})))
	})
}

func newServer(t *testing.T) (http.Handler, *repotest.Store, uuid.UUID) {
	t.Helper()
	store := repotest.New()
	eventID := uuid.New()
	require.NoError(t, store.Atomic(context.Background(), func(tx repository.Collections) error {
		return tx.Events().Create(context.Background(), &entity.Event{ID: eventID, Title: "Meetup", Date: time.Now()})
	}))
	m := mediator.New(nil)
	postUC.Register(m, &postUC.Handlers{Store: store, Now: time.Now})
	mux := http.NewServeMux()
	post.Register(mux, m, asHost)
	return mux, store, eventID
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func createPost(t *testing.T, h http.Handler, eventID uuid.UUID) string {
	t.Helper()
	rec := do(h, http.MethodPost, "/posts", `{"eventId":"`+eventID.String()+`","title":"Welcome","content":"Doors open at 7."}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out.ID
}

func TestCreate_UnknownEvent(t *testing.T) {
	h, _, _ := newServer(t)

	rec := do(h, http.MethodPost, "/posts", `{"eventId":"`+uuid.NewString()+`","title":"t","content":"c"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":{"eventId":["Event does not exist."]}}`, rec.Body.String())
}

func TestPinUnpin(t *testing.T) {
	h, store, eventID := newServer(t)
	id := createPost(t, h, eventID)

	require.Equal(t, http.StatusNoContent, do(h, http.MethodPut, "/posts/"+id+"/pin", "").Code)
	require.Equal(t, http.StatusNoContent, do(h, http.MethodPut, "/posts/"+id+"/pin", "").Code)

	p, err := store.Posts().Get(context.Background(), uuid.MustParse(id))
	require.NoError(t, err)
	assert.True(t, p.Pinned)

	require.Equal(t, http.StatusNoContent, do(h, http.MethodPut, "/posts/"+id+"/unpin", "").Code)
	p, err = store.Posts().Get(context.Background(), uuid.MustParse(id))
	require.NoError(t, err)
	assert.False(t, p.Pinned)

	assert.Equal(t, http.StatusNotFound, do(h, http.MethodPut, "/posts/"+uuid.NewString()+"/pin", "").Code)
}

func TestList_FilterByEvent(t *testing.T) {
	h, _, eventID := newServer(t)
	createPost(t, h, eventID)

	tests := []struct {
		name  string
		query string
		code  int
		count int
	}{
		{"all", "", http.StatusOK, 1},
		{"matching event", "?eventId=" + eventID.String(), http.StatusOK, 1},
		{"other event", "?eventId=" + uuid.NewString(), http.StatusOK, 0},
		{"bad id", "?eventId=nope", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodGet, "/posts"+tt.query, "")
			require.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusOK {
				return
			}
			var got []postUC.DTO
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Len(t, got, tt.count)
		})
	}
}

func TestUpdateGetDelete(t *testing.T) {
	h, _, eventID := newServer(t)
	id := createPost(t, h, eventID)

	require.Equal(t, http.StatusNoContent, do(h, http.MethodPut, "/posts/"+id, `{"title":"Changed","content":"New"}`).Code)

	rec := do(h, http.MethodGet, "/posts/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got postUC.DTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Changed", got.Title)
	require.NotNil(t, got.LastModifiedBy)
	assert.Equal(t, "host", *got.LastModifiedBy)

	require.Equal(t, http.StatusNoContent, do(h, http.MethodDelete, "/posts/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/posts/"+id, "").Code)
}
