// Package repotest provides an in-memory repository.Store for use-case and
// controller tests. It honours unit-of-work semantics: Atomic works on a copy
// of the data and only publishes it when the callback succeeds.
package repotest

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
	"sk-api/internal/repository"
)

type data struct {
	articles   map[uuid.UUID]entity.Article
	posts      map[uuid.UUID]entity.Post
	events     map[uuid.UUID]entity.Event
	userEvents []entity.UserEvent
	users      map[uuid.UUID]entity.AppUser
	testValues map[int64]entity.TestValue
	nextTVID   int64
}

func newData() *data {
	return &data{
		articles:   map[uuid.UUID]entity.Article{},
		posts:      map[uuid.UUID]entity.Post{},
		events:     map[uuid.UUID]entity.Event{},
		users:      map[uuid.UUID]entity.AppUser{},
		testValues: map[int64]entity.TestValue{},
		nextTVID:   1,
	}
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.articles {
		c.articles[k] = v
	}
	for k, v := range d.posts {
		c.posts[k] = v
	}
	for k, v := range d.events {
		c.events[k] = v
	}
	c.userEvents = append(c.userEvents, d.userEvents...)
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.testValues {
		c.testValues[k] = v
	}
	c.nextTVID = d.nextTVID
	return c
}

// Store is an in-memory repository.Store.
type Store struct {
	mu      sync.Mutex
	d       *data
	err     error
	commits int
}

var _ repository.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{d: newData()}
}

// FailWith makes every subsequent operation return err. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Commits reports how many units of work were committed.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Atomic runs fn against a private copy and publishes it when fn succeeds.
func (s *Store) Atomic(ctx context.Context, fn func(tx repository.Collections) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.d.clone()
	if err := fn(&collections{d: work, fail: func() error { return nil }}); err != nil {
		return err
	}
	s.d = work
	s.commits++
	return nil
}

func (s *Store) view() *collections {
	return &collections{d: nil, fail: s.failure, store: s}
}

func (s *Store) failure() error {
	return s.err
}

func (s *Store) Articles() repository.ArticleRepository     { return articleRepo{s.view()} }
func (s *Store) Posts() repository.PostRepository           { return postRepo{s.view()} }
func (s *Store) Events() repository.EventRepository         { return eventRepo{s.view()} }
func (s *Store) UserEvents() repository.UserEventRepository { return userEventRepo{s.view()} }
func (s *Store) Users() repository.UserRepository           { return userRepo{s.view()} }
func (s *Store) TestValues() repository.TestValueRepository { return testValueRepo{s.view()} }

// collections binds repositories either to a transaction copy (d != nil) or,
// for reads outside Atomic, to the committed data of store under its lock.
type collections struct {
	d     *data
	store *Store
	fail  func() error
}

func (c *collections) Articles() repository.ArticleRepository     { return articleRepo{c} }
func (c *collections) Posts() repository.PostRepository           { return postRepo{c} }
func (c *collections) Events() repository.EventRepository         { return eventRepo{c} }
func (c *collections) UserEvents() repository.UserEventRepository { return userEventRepo{c} }
func (c *collections) Users() repository.UserRepository           { return userRepo{c} }
func (c *collections) TestValues() repository.TestValueRepository { return testValueRepo{c} }

// with runs fn with the bound data. Outside a transaction it takes the store lock.
func (c *collections) with(ctx context.Context, fn func(d *data) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.d != nil {
		return fn(c.d)
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if err := c.fail(); err != nil {
		return err
	}
	return fn(c.store.d)
}

// idLess orders uuids bytewise, the way postgres compares uuid columns.
func idLess(a, b uuid.UUID) bool { return bytes.Compare(a[:], b[:]) < 0 }

/* ───────── articles ───────── */

type articleRepo struct{ c *collections }

func (r articleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	var out []*entity.Article
	err := r.c.with(ctx, func(d *data) error {
		for _, a := range d.articles {
			a := a
			out = append(out, &a)
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].Created.Equal(out[j].Created) {
				return out[i].Created.After(out[j].Created)
			}
			return idLess(out[i].ID, out[j].ID)
		})
		return nil
	})
	return out, err
}

func (r articleRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	var out *entity.Article
	err := r.c.with(ctx, func(d *data) error {
		if a, ok := d.articles[id]; ok {
			out = &a
		}
		return nil
	})
	return out, err
}

func (r articleRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	a, err := r.Get(ctx, id)
	return a != nil, err
}

func (r articleRepo) Create(ctx context.Context, a *entity.Article) error {
	return r.c.with(ctx, func(d *data) error {
		if _, ok := d.articles[a.ID]; ok {
			return repository.ErrDuplicate
		}
		d.articles[a.ID] = *a
		return nil
	})
}

func (r articleRepo) Update(ctx context.Context, a *entity.Article) error {
	return r.c.with(ctx, func(d *data) error {
		if _, ok := d.articles[a.ID]; !ok {
			return entity.NewNotFound("Article", a.ID)
		}
		d.articles[a.ID] = *a
		return nil
	})
}

func (r articleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.with(ctx, func(d *data) error {
		if _, ok := d.articles[id]; !ok {
			return entity.NewNotFound("Article", id)
		}
		delete(d.articles, id)
		return nil
	})
}

/* ───────── posts ───────── */

type postRepo struct{ c *collections }

func (r postRepo) List(ctx context.Context, f repository.PostFilter) ([]*entity.Post, error) {
	var out []*entity.Post
	err := r.c.with(ctx, func(d *data) error {
		for _, p := range d.posts {
			if f.EventID != nil && p.EventID != *f.EventID {
				continue
			}
			p := p
			out = append(out, &p)
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].Created.Equal(out[j].Created) {
				return out[i].Created.After(out[j].Created)
			}
			return idLess(out[i].ID, out[j].ID)
		})
		return nil
	})
	return out, err
}

func (r postRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var out *entity.Post
	err := r.c.with(ctx, func(d *data) error {
		if p, ok := d.posts[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r postRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	p, err := r.Get(ctx, id)
	return p != nil, err
}

func (r postRepo) Create(ctx context.Context, p *entity.Post) error {
	return r.c.with(ctx, func(d *data) error { d.posts[p.ID] = *p; return nil })
}

func (r postRepo) Update(ctx context.Context, p *entity.Post) error {
	return r.c.with(ctx, func(d *data) error {
		if _, ok := d.posts[p.ID]; !ok {
			return entity.NewNotFound("Post", p.ID)
		}
		d.posts[p.ID] = *p
		return nil
	})
}

func (r postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.with(ctx, func(d *data) error {
		if _, ok := d.posts[id]; !ok {
			return entity.NewNotFound("Post", id)
		}
		delete(d.posts, id)
		return nil
	})
}

/* ───────── events ───────── */

type eventRepo struct{ c *collections }

func (r eventRepo) List(ctx context.Context) ([]*entity.Event, error) {
	var out []*entity.Event
	err := r.c.with(ctx, func(d *data) error {
		for _, e := range d.events {
			e := e
			out = append(out, &e)
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].Date.Equal(out[j].Date) {
				return out[i].Date.After(out[j].Date)
			}
			return idLess(out[i].ID, out[j].ID)
		})
		return nil
	})
	return out, err
}

func (r eventRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var out *entity.Event
	err := r.c.with(ctx, func(d *data) error {
		if e, ok := d.events[id]; ok {
			out = &e
		}
		return nil
	})
	return out, err
}

func (r eventRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	e, err := r.Get(ctx, id)
	return e != nil, err
}

func (r eventRepo) Create(ctx context.Context, e *entity.Event) error {
	return r.c.with(ctx, func(d *data) error { d.events[e.ID] = *e; return nil })
}

type userEventRepo struct{ c *collections }

func (r userEventRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserEvent, error) {
	var out []*entity.UserEvent
	err := r.c.with(ctx, func(d *data) error {
		for _, ue := range d.userEvents {
			if ue.UserID == userID {
				ue := ue
				out = append(out, &ue)
			}
		}
		return nil
	})
	return out, err
}

func (r userEventRepo) Create(ctx context.Context, ue *entity.UserEvent) error {
	return r.c.with(ctx, func(d *data) error { d.userEvents = append(d.userEvents, *ue); return nil })
}

func (r userEventRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.c.with(ctx, func(d *data) error {
		kept := d.userEvents[:0:0]
		for _, ue := range d.userEvents {
			if ue.UserID == userID {
				n++
				continue
			}
			kept = append(kept, ue)
		}
		d.userEvents = kept
		return nil
	})
	return n, err
}

/* ───────── users ───────── */

type userRepo struct{ c *collections }

func (r userRepo) find(ctx context.Context, match func(entity.AppUser) bool) (*entity.AppUser, error) {
	var out *entity.AppUser
	err := r.c.with(ctx, func(d *data) error {
		for _, u := range d.users {
			if match(u) {
				u := u
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r userRepo) Get(ctx context.Context, id uuid.UUID) (*entity.AppUser, error) {
	return r.find(ctx, func(u entity.AppUser) bool { return u.ID == id })
}

func (r userRepo) GetByUsername(ctx context.Context, username string) (*entity.AppUser, error) {
	return r.find(ctx, func(u entity.AppUser) bool { return strings.EqualFold(u.Username, username) })
}

func (r userRepo) GetByEmail(ctx context.Context, email string) (*entity.AppUser, error) {
	return r.find(ctx, func(u entity.AppUser) bool { return strings.EqualFold(u.Email, email) })
}

func (r userRepo) Create(ctx context.Context, u *entity.AppUser) error {
	return r.c.with(ctx, func(d *data) error {
		for _, existing := range d.users {
			if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
				return repository.ErrDuplicate
			}
		}
		d.users[u.ID] = *u
		return nil
	})
}

func (r userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.with(ctx, func(d *data) error {
		if _, ok := d.users[id]; !ok {
			return entity.NewNotFound("User", id)
		}
		delete(d.users, id)
		return nil
	})
}

/* ───────── test values ───────── */

type testValueRepo struct{ c *collections }

func (r testValueRepo) List(ctx context.Context) ([]*entity.TestValue, error) {
	var out []*entity.TestValue
	err := r.c.with(ctx, func(d *data) error {
		for _, tv := range d.testValues {
			tv := tv
			out = append(out, &tv)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		return nil
	})
	return out, err
}

func (r testValueRepo) Get(ctx context.Context, id int64) (*entity.TestValue, error) {
	var out *entity.TestValue
	err := r.c.with(ctx, func(d *data) error {
		if tv, ok := d.testValues[id]; ok {
			out = &tv
		}
		return nil
	})
	return out, err
}

func (r testValueRepo) Create(ctx context.Context, tv *entity.TestValue) error {
	return r.c.with(ctx, func(d *data) error {
		tv.ID = d.nextTVID
		d.nextTVID++
		d.testValues[tv.ID] = *tv
		return nil
	})
}

func (r testValueRepo) Update(ctx context.Context, tv *entity.TestValue) error {
	return r.c.with(ctx, func(d *data) error {
		if _, ok := d.testValues[tv.ID]; !ok {
			return entity.NewNotFound("TestValue", tv.ID)
		}
		d.testValues[tv.ID] = *tv
		return nil
	})
}

func (r testValueRepo) Delete(ctx context.Context, id int64) error {
	return r.c.with(ctx, func(d *data) error {
		if _, ok := d.testValues[id]; !ok {
			return entity.NewNotFound("TestValue", id)
		}
		delete(d.testValues, id)
		return nil
	})
}
