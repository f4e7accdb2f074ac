package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nonprofit-cms-backend/internal/domains/about"
	"nonprofit-cms-backend/internal/domains/about/service"
)

// fakeAboutRepo is an in-memory repository with the same activation
// semantics as the SQL one: deactivate-all-then-activate under a lock.
type fakeAboutRepo struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*about.Document
}

var _ about.Repository = (*fakeAboutRepo)(nil)

func newFakeAboutRepo() *fakeAboutRepo {
	return &fakeAboutRepo{docs: make(map[uuid.UUID]*about.Document)}
}

func (r *fakeAboutRepo) Create(ctx context.Context, doc *about.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.docs {
		if existing.Version == doc.Version {
			return about.ErrVersionTaken
		}
	}
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *fakeAboutRepo) FindByID(ctx context.Context, id uuid.UUID) (*about.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, about.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (r *fakeAboutRepo) FindActive(ctx context.Context) (*about.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var newest *about.Document
	for _, doc := range r.docs {
		if !doc.IsActive {
			continue
		}
		if newest == nil || doc.CreatedAt.After(newest.CreatedAt) {
			newest = doc
		}
	}
	if newest == nil {
		return nil, about.ErrNoActiveDoc
	}
	copied := *newest
	return &copied, nil
}

func (r *fakeAboutRepo) List(ctx context.Context, filter about.ListFilter) ([]about.Document, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []about.Document
	for _, doc := range r.docs {
		out = append(out, *doc)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAboutRepo) Update(ctx context.Context, doc *about.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[doc.ID]; !ok {
		return about.ErrNotFound
	}
	doc.UpdatedAt = time.Now()
	copied := *doc
	copied.IsActive = r.docs[doc.ID].IsActive
	r.docs[doc.ID] = &copied
	return nil
}

func (r *fakeAboutRepo) Activate(ctx context.Context, id uuid.UUID) (*about.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.docs[id]
	if !ok {
		return nil, about.ErrNotFound
	}
	for _, doc := range r.docs {
		doc.IsActive = false
	}
	target.IsActive = true
	copied := *target
	return &copied, nil
}

func (r *fakeAboutRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return about.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeAboutRepo) Stats(ctx context.Context) (*about.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &about.Stats{Total: int64(len(r.docs))}
	for _, doc := range r.docs {
		if doc.IsActive {
			s.Active++
		}
	}
	return s, nil
}

func (r *fakeAboutRepo) activeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, doc := range r.docs {
		if doc.IsActive {
			n++
		}
	}
	return n
}

func validCreate(version string) about.CreateRequest {
	return about.CreateRequest{
		Vision:  "A world with clean water for everyone",
		Mission: "Build and maintain wells",
		Version: version,
	}
}

func TestCreateStartsInactive(t *testing.T) {
	repo := newFakeAboutRepo()
	svc := service.NewAboutService(repo)

	doc, err := svc.Create(context.Background(), validCreate("v1"), nil)
	require.NoError(t, err)

	assert.False(t, doc.IsActive)

	_, err = svc.GetActive(context.Background())
	assert.ErrorIs(t, err, about.ErrNoActiveDoc)
}

func TestCreateDuplicateVersionRejected(t *testing.T) {
	repo := newFakeAboutRepo()
	svc := service.NewAboutService(repo)

	_, err := svc.Create(context.Background(), validCreate("v1"), nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreate("v1"), nil)
	assert.ErrorIs(t, err, about.ErrVersionTaken)
}

func TestActivateLeavesExactlyOneActive(t *testing.T) {
	repo := newFakeAboutRepo()
	svc := service.NewAboutService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, validCreate("v1"), nil)
	require.NoError(t, err)
	b, err := svc.Create(ctx, validCreate("v2"), nil)
	require.NoError(t, err)

	_, err = svc.Activate(ctx, a.ID)
	require.NoError(t, err)
	_, err = svc.Activate(ctx, b.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.activeCount())

	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, active.ID)

	aNow, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, aNow.IsActive)
}

func TestConcurrentActivationsNeverLeaveTwoActive(t *testing.T) {
	repo := newFakeAboutRepo()
	svc := service.NewAboutService(repo)
	ctx := context.Background()

	ids := make([]uuid.UUID, 0, 4)
	for _, v := range []string{"v1", "v2", "v3", "v4"} {
		doc, err := svc.Create(ctx, validCreate(v), nil)
		require.NoError(t, err)
		ids = append(ids, doc.ID)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, _ = svc.Activate(ctx, id)
		}(ids[i%len(ids)])
	}
	wg.Wait()

	assert.Equal(t, 1, repo.activeCount())
}

func TestUpdatePatchesOnlySentSections(t *testing.T) {
	repo := newFakeAboutRepo()
	svc := service.NewAboutService(repo)
	ctx := context.Background()

	doc, err := svc.Create(ctx, validCreate("v1"), nil)
	require.NoError(t, err)

	editor := uuid.New()
	newMission := "Build wells and train local crews"
	updated, err := svc.Update(ctx, doc.ID, about.UpdateRequest{Mission: &newMission}, &editor)
	require.NoError(t, err)

	assert.Equal(t, newMission, updated.Mission)
	assert.Equal(t, doc.Vision, updated.Vision)
	require.NotNil(t, updated.LastUpdatedBy)
	assert.Equal(t, editor, *updated.LastUpdatedBy)
}

func TestActivateMissingDoc(t *testing.T) {
	repo := newFakeAboutRepo()
	svc := service.NewAboutService(repo)

	_, err := svc.Activate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, about.ErrNotFound)
}
