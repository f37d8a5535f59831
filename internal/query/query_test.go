package query_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/domain/mocks"
	"github.com/Guyuepp/social-feed/internal/metrics"
	"github.com/Guyuepp/social-feed/internal/query"
)

type memEntry struct {
	data  []byte
	stale bool
}

type memCache struct {
	mu      sync.Mutex
	entries map[string]memEntry
	getErr  error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]memEntry{}}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	e, ok := m.entries[key]
	if !ok {
		return nil, false, domain.ErrCacheMiss
	}
	return e.data, e.stale, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memEntry{data: data}
	return nil
}

func (m *memCache) Invalidate(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}

func (m *memCache) markStale(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entries[key]
	e.stale = true
	m.entries[key] = e
}

func (m *memCache) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]string, 0, len(m.entries))
	for k := range m.entries {
		res = append(res, k)
	}
	return res
}

func TestPostsIsCached(t *testing.T) {
	cache := newMemCache()
	posts := new(mocks.PostService)
	opts := domain.ListOptions{Limit: 10}
	posts.On("GetPosts", mock.Anything, opts).Return([]domain.PostDTO{{ID: "1", Title: "hello"}}, nil).Once()

	q := query.NewQueries(query.NewClient(cache, time.Minute), posts, new(mocks.CommentService))

	first := q.Posts(context.TODO(), opts)
	require.True(t, first.IsSuccess())
	second := q.Posts(context.TODO(), opts)
	require.True(t, second.IsSuccess())
	assert.Equal(t, first.Data, second.Data)
	posts.AssertNumberOfCalls(t, "GetPosts", 1)
}

func TestCacheOutcomesAreCounted(t *testing.T) {
	hits := promtest.ToFloat64(metrics.QueryCacheResults.WithLabelValues("hit"))
	misses := promtest.ToFloat64(metrics.QueryCacheResults.WithLabelValues("miss"))

	posts := new(mocks.PostService)
	posts.On("SearchPosts", mock.Anything, "metrics").Return([]domain.PostDTO{}, nil).Once()
	q := query.NewQueries(query.NewClient(newMemCache(), time.Minute), posts, new(mocks.CommentService))
	q.SearchPosts(context.TODO(), "metrics")
	q.SearchPosts(context.TODO(), "metrics")

	assert.Equal(t, float64(1), promtest.ToFloat64(metrics.QueryCacheResults.WithLabelValues("miss"))-misses)
	assert.Equal(t, float64(1), promtest.ToFloat64(metrics.QueryCacheResults.WithLabelValues("hit"))-hits)
}

func TestStaleEntryIsServedAndRefreshed(t *testing.T) {
	cache := newMemCache()
	comments := new(mocks.CommentService)
	comments.On("GetCommentsByPostID", mock.Anything, "p1").Return([]domain.CommentDTO{{ID: "c1", Body: "old"}}, nil).Once()
	refreshed := make(chan struct{})
	comments.On("GetCommentsByPostID", mock.Anything, "p1").Return([]domain.CommentDTO{{ID: "c1", Body: "new"}}, nil).Once().
		Run(func(mock.Arguments) { close(refreshed) })

	q := query.NewQueries(query.NewClient(cache, time.Minute), new(mocks.PostService), comments)
	require.Equal(t, "old", q.CommentsByPostID(context.TODO(), "p1").Data[0].Body)

	for _, k := range cache.keys() {
		cache.markStale(k)
	}
	res := q.CommentsByPostID(context.TODO(), "p1")
	assert.Equal(t, "old", res.Data[0].Body)

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatal("stale entry was not refreshed")
	}
	assert.Eventually(t, func() bool {
		r := q.CommentsByPostID(context.TODO(), "p1")
		return r.IsSuccess() && r.Data[0].Body == "new"
	}, time.Second, 10*time.Millisecond)
}

func TestErrorsAreBaseErrors(t *testing.T) {
	posts := new(mocks.PostService)
	posts.On("SearchPosts", mock.Anything, "go").Return(nil, errors.New("boom")).Once()
	posts.On("GetPostByID", mock.Anything, "p9").Return(nil, domain.NewNotFoundError(domain.ResourcePost, "p9")).Once()

	q := query.NewQueries(query.NewClient(newMemCache(), time.Minute), posts, new(mocks.CommentService))

	res := q.SearchPosts(context.TODO(), "go")
	require.True(t, res.IsError())
	assert.Equal(t, domain.KindFetchFailed, res.Err.Kind)
	assert.Equal(t, "Failed to fetch posts", res.Err.Error())

	detail := q.PostByID(context.TODO(), "p9", true)
	require.True(t, detail.IsError())
	assert.Equal(t, "Post with ID p9 not found", detail.Err.Error())
}

func TestPostByIDDisabled(t *testing.T) {
	posts := new(mocks.PostService)
	q := query.NewQueries(query.NewClient(newMemCache(), time.Minute), posts, new(mocks.CommentService))

	res := q.PostByID(context.TODO(), "p1", false)
	assert.Equal(t, query.StatusIdle, res.Status)
	assert.False(t, res.IsSuccess())
	assert.False(t, res.IsError())
	posts.AssertNotCalled(t, "GetPostByID", mock.Anything, mock.Anything)
}

func TestCacheFailureFallsBackToFetch(t *testing.T) {
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	posts := new(mocks.PostService)
	posts.On("GetPostByID", mock.Anything, "p1").Return(&domain.PostWithComments{PostDTO: domain.PostDTO{ID: "p1"}}, nil).Once()

	q := query.NewQueries(query.NewClient(cache, time.Minute), posts, new(mocks.CommentService))
	res := q.PostByID(context.TODO(), "p1", true)
	require.True(t, res.IsSuccess())
	assert.Equal(t, domain.StringID("p1"), res.Data.ID)
}

func TestInvalidation(t *testing.T) {
	cache := newMemCache()
	posts := new(mocks.PostService)
	posts.On("GetPostByID", mock.Anything, "1").Return(&domain.PostWithComments{PostDTO: domain.PostDTO{ID: "1"}}, nil)
	posts.On("GetPostByID", mock.Anything, "10").Return(&domain.PostWithComments{PostDTO: domain.PostDTO{ID: "10"}}, nil)
	posts.On("GetPosts", mock.Anything, mock.Anything).Return([]domain.PostDTO{}, nil)
	comments := new(mocks.CommentService)
	comments.On("GetCommentsByPostID", mock.Anything, "1").Return([]domain.CommentDTO{}, nil)

	q := query.NewQueries(query.NewClient(cache, time.Minute), posts, comments)
	q.PostByID(context.TODO(), "1", true)
	q.PostByID(context.TODO(), "10", true)
	q.Posts(context.TODO(), domain.ListOptions{Limit: 10})
	q.CommentsByPostID(context.TODO(), "1")
	require.Len(t, cache.keys(), 4)

	q.InvalidateComments(context.TODO(), "1")
	assert.ElementsMatch(t, []string{"post:10:", "posts:list:10:0"}, cache.keys())

	q.InvalidatePost(context.TODO(), "10")
	assert.Empty(t, cache.keys())
}

func TestSharedFetchOutlivesCancelledCaller(t *testing.T) {
	opts := domain.ListOptions{Limit: 10}
	started := make(chan struct{})
	release := make(chan struct{})
	var fetchCtxErr error
	posts := new(mocks.PostService)
	posts.On("GetPosts", mock.Anything, opts).Return([]domain.PostDTO{{ID: "1"}}, nil).Once().
		Run(func(args mock.Arguments) {
			close(started)
			<-release
			fetchCtxErr = args.Get(0).(context.Context).Err()
		})

	q := query.NewQueries(query.NewClient(newMemCache(), time.Minute), posts, new(mocks.CommentService))

	first, cancel := context.WithCancel(context.Background())
	firstDone := make(chan query.Result[[]domain.PostDTO], 1)
	go func() { firstDone <- q.Posts(first, opts) }()
	<-started

	secondDone := make(chan query.Result[[]domain.PostDTO], 1)
	go func() { secondDone <- q.Posts(context.Background(), opts) }()

	cancel()
	assert.True(t, (<-firstDone).IsError())

	close(release)
	second := <-secondDone
	require.True(t, second.IsSuccess())
	assert.Equal(t, domain.StringID("1"), second.Data[0].ID)
	assert.NoError(t, fetchCtxErr)
	posts.AssertNumberOfCalls(t, "GetPosts", 1)
}

func TestSharedFetchTimeout(t *testing.T) {
	posts := new(mocks.PostService)
	posts.On("SearchPosts", mock.Anything, "slow").Return(nil, nil).Once().
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		})

	client := query.NewClient(newMemCache(), time.Minute).WithFetchTimeout(20 * time.Millisecond)
	q := query.NewQueries(client, posts, new(mocks.CommentService))

	res := q.SearchPosts(context.Background(), "slow")
	assert.True(t, res.IsSuccess())
	posts.AssertNumberOfCalls(t, "SearchPosts", 1)
}
