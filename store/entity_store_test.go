package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orbitsocial/orbit-core/model"
	"github.com/orbitsocial/orbit-core/seed"
	"github.com/orbitsocial/orbit-core/storage"
)

func testSeed() seed.Data {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	users := []model.User{
		{Id: "a", Username: "a", DisplayName: "Ann"},
		{Id: "b", Username: "b", DisplayName: "Ben"},
		{Id: "c", Username: "c", DisplayName: "Cam"},
	}
	return seed.Data{
		Users: users,
		Groups: []model.Group{
			{Id: "g1", Name: "Gophers", Tags: []string{"golang"}},
		},
		Events: []model.Event{
			{Id: "e1", Title: "Meetup", StartDate: base.AddDate(0, 0, 7), EndDate: base.AddDate(0, 0, 7), AttendeesCount: 1, Capacity: 2},
			{Id: "e2", Title: "Full house", StartDate: base.AddDate(0, 0, 3), EndDate: base.AddDate(0, 0, 3), AttendeesCount: 2, Capacity: 2},
		},
		Posts: []model.Post{
			{Id: "p1", Content: "first", Author: users[0], CreatedAt: base},
			{Id: "p2", Content: "second", Author: users[1], GroupId: "g1", CreatedAt: base.Add(time.Hour)},
			{Id: "p3", Content: "third", Author: users[0], GroupId: "g1", CreatedAt: base.Add(2 * time.Hour)},
		},
		Comments: map[string][]model.Comment{
			"p1": {
				{Id: "c1", PostId: "p1", Content: "hi", Author: users[1]},
				{Id: "c2", PostId: "p1", Content: "hello", Author: users[2]},
			},
		},
	}
}

func newTestEntityStore() *EntityStore {
	s := NewEntityStore(storage.NewMemoryKV())
	s.Initialize(testSeed())
	return s
}

func TestGetByIdAbsence(t *testing.T) {
	s := newTestEntityStore()

	_, ok := s.GetUserById("nope")
	require.False(t, ok)
	_, ok = s.GetGroupById("nope")
	require.False(t, ok)
	_, ok = s.GetEventById("nope")
	require.False(t, ok)
	_, ok = s.GetPostById("nope")
	require.False(t, ok)

	u, ok := s.GetUserById("b")
	require.True(t, ok)
	require.Equal(t, "Ben", u.DisplayName)
}

func TestPostComments(t *testing.T) {
	s := newTestEntityStore()

	comments := s.GetPostComments("p1")
	require.Len(t, comments, 2)
	require.Equal(t, "c1", comments[0].Id)
	require.Equal(t, "c2", comments[1].Id)

	// unknown and comment-less posts both yield an empty sequence
	require.Empty(t, s.GetPostComments("p2"))
	require.Empty(t, s.GetPostComments("nope"))
	require.NotNil(t, s.GetPostComments("nope"))
}

func TestReturnedEntitiesAreDetached(t *testing.T) {
	s := newTestEntityStore()
	author, _ := s.GetUserById("c")
	_, ok := s.AddComment("p1", author, "a reply", "c1")
	require.True(t, ok)

	t.Run("mutating returned replies leaves the store alone", func(t *testing.T) {
		got := s.GetPostComments("p1")
		require.Len(t, got[0].Replies, 1)
		got[0].Replies[0].Content = "defaced"
		got[0].Replies = append(got[0].Replies, model.Comment{Id: "bogus"})

		fresh := s.GetPostComments("p1")
		require.Len(t, fresh[0].Replies, 1)
		require.Equal(t, "a reply", fresh[0].Replies[0].Content)
	})

	t.Run("mutating returned attachments leaves the store alone", func(t *testing.T) {
		data := testSeed()
		data.Posts[0].Attachments = []model.Attachment{{Type: "image", Url: "https://img.test/1.png"}}
		s := NewEntityStore(storage.NewMemoryKV())
		s.Initialize(data)

		got, ok := s.GetPostById("p1")
		require.True(t, ok)
		got.Attachments[0].Url = "defaced"

		fresh, _ := s.GetPostById("p1")
		require.Equal(t, "https://img.test/1.png", fresh.Attachments[0].Url)
	})
}

func TestPostFilters(t *testing.T) {
	s := newTestEntityStore()

	byAnn := s.GetUserPosts("a")
	require.Len(t, byAnn, 2)
	require.Equal(t, "p1", byAnn[0].Id)
	require.Equal(t, "p3", byAnn[1].Id)

	inGroup := s.GetGroupPosts("g1")
	require.Len(t, inGroup, 2)
	require.Equal(t, "p2", inGroup[0].Id)
	require.Equal(t, "p3", inGroup[1].Id)

	require.Empty(t, s.GetUserPosts("nope"))
	require.Empty(t, s.GetGroupPosts("nope"))
}

func TestInitializeReplacesWholesale(t *testing.T) {
	s := newTestEntityStore()
	require.True(t, s.Initialized())
	require.Len(t, s.Users(), 3)

	s.Initialize(seed.Data{Users: []model.User{{Id: "z"}}})
	require.Len(t, s.Users(), 1)
	require.Empty(t, s.Posts())
	require.Empty(t, s.GetPostComments("p1"))
}

func TestInitializeIfNeeded(t *testing.T) {
	s := NewEntityStore(storage.NewMemoryKV())
	calls := 0
	src := func() seed.Data {
		calls++
		return testSeed()
	}

	require.True(t, s.InitializeIfNeeded(src))
	require.False(t, s.InitializeIfNeeded(src))
	require.Equal(t, 1, calls)
}

func TestInitializedFlagPersists(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewEntityStore(kv)
	require.False(t, s.Initialized())
	s.Initialize(testSeed())

	reloaded := NewEntityStore(kv)
	require.True(t, reloaded.Initialized())
	// only the flag survives, collections are rebuilt from seed each session
	require.Empty(t, reloaded.Users())
}

func TestToggleLike(t *testing.T) {
	s := newTestEntityStore()

	p, ok := s.ToggleLike("p1")
	require.True(t, ok)
	require.True(t, p.IsLiked)
	require.Equal(t, 1, p.LikesCount)

	p, ok = s.ToggleLike("p1")
	require.True(t, ok)
	require.False(t, p.IsLiked)
	require.Equal(t, 0, p.LikesCount)

	_, ok = s.ToggleLike("nope")
	require.False(t, ok)
}

func TestToggleBookmarkAndShare(t *testing.T) {
	s := newTestEntityStore()

	p, ok := s.ToggleBookmark("p2")
	require.True(t, ok)
	require.True(t, p.IsBookmarked)

	p, ok = s.SharePost("p2")
	require.True(t, ok)
	require.Equal(t, 1, p.SharesCount)

	_, ok = s.SharePost("nope")
	require.False(t, ok)
}

func TestAddComment(t *testing.T) {
	s := newTestEntityStore()
	author, _ := s.GetUserById("c")

	t.Run("appends in order and bumps the counter", func(t *testing.T) {
		c, ok := s.AddComment("p1", author, "third comment", "")
		require.True(t, ok)
		require.NotEmpty(t, c.Id)

		comments := s.GetPostComments("p1")
		require.Len(t, comments, 3)
		require.Equal(t, "third comment", comments[2].Content)

		p, _ := s.GetPostById("p1")
		require.Equal(t, 1, p.CommentsCount)
	})

	t.Run("threads under a known parent", func(t *testing.T) {
		c, ok := s.AddComment("p1", author, "a reply", "c1")
		require.True(t, ok)
		require.Equal(t, "c1", c.ParentId)

		comments := s.GetPostComments("p1")
		require.Len(t, comments, 3)
		require.Len(t, comments[0].Replies, 1)
		require.Equal(t, "a reply", comments[0].Replies[0].Content)
	})

	t.Run("unknown parent degrades to top level", func(t *testing.T) {
		c, ok := s.AddComment("p1", author, "orphan", "ghost")
		require.True(t, ok)
		require.Empty(t, c.ParentId)
	})

	t.Run("unknown post is refused", func(t *testing.T) {
		_, ok := s.AddComment("nope", author, "void", "")
		require.False(t, ok)
	})
}

func TestToggleAttendance(t *testing.T) {
	s := newTestEntityStore()

	t.Run("join and leave", func(t *testing.T) {
		e, ok := s.ToggleAttendance("e1")
		require.True(t, ok)
		require.True(t, e.IsAttending)
		require.Equal(t, 2, e.AttendeesCount)

		e, ok = s.ToggleAttendance("e1")
		require.True(t, ok)
		require.False(t, e.IsAttending)
		require.Equal(t, 1, e.AttendeesCount)
	})

	t.Run("full event refuses new attendees", func(t *testing.T) {
		e, ok := s.ToggleAttendance("e2")
		require.False(t, ok)
		require.False(t, e.IsAttending)
		require.Equal(t, 2, e.AttendeesCount)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, ok := s.ToggleAttendance("nope")
		require.False(t, ok)
	})
}

func TestToggleMembership(t *testing.T) {
	s := newTestEntityStore()

	g, ok := s.ToggleMembership("g1")
	require.True(t, ok)
	require.True(t, g.IsJoined)
	require.Equal(t, 1, g.MembersCount)

	g, ok = s.ToggleMembership("g1")
	require.True(t, ok)
	require.False(t, g.IsJoined)
	require.Equal(t, 0, g.MembersCount)
}

func TestEntityStoreSubscribe(t *testing.T) {
	s := newTestEntityStore()

	fired := 0
	unsubscribe := s.Subscribe(func() { fired++ })

	s.ToggleLike("p1")
	require.Equal(t, 1, fired)

	unsubscribe()
	s.ToggleLike("p1")
	require.Equal(t, 1, fired)
}
