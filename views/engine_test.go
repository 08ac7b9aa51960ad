package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orbitsocial/orbit-core/model"
	"github.com/orbitsocial/orbit-core/seed"
	"github.com/orbitsocial/orbit-core/storage"
	"github.com/orbitsocial/orbit-core/store"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func nineUsers() []model.User {
	users := make([]model.User, 0, 9)
	ids := []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8", "u9"}
	for _, id := range ids {
		users = append(users, model.User{Id: id, Username: id})
	}
	return users
}

func newTestEngine(data seed.Data) *Engine {
	entities := store.NewEntityStore(storage.NewMemoryKV())
	entities.Initialize(data)
	return NewEngine(entities, nil)
}

func TestFilterEvents(t *testing.T) {
	day := func(offset int) time.Time { return testNow.AddDate(0, 0, offset) }
	e := newTestEngine(seed.Data{
		Events: []model.Event{
			{Id: "e1", StartDate: day(5), IsAttending: true},
			{Id: "e2", StartDate: day(-2), IsVirtual: true},
			{Id: "e3", StartDate: day(1)},
			{Id: "e4", StartDate: day(-30)},
			{Id: "e5", StartDate: day(12), IsVirtual: true},
		},
	})

	t.Run("upcoming is strictly future, soonest first", func(t *testing.T) {
		got := e.FilterEvents(model.EventFilterUpcoming, testNow)
		require.Equal(t, []string{"e3", "e1", "e5"}, eventIds(got))
	})

	t.Run("past is strictly before now, most recent first", func(t *testing.T) {
		got := e.FilterEvents(model.EventFilterPast, testNow)
		require.Equal(t, []string{"e2", "e4"}, eventIds(got))
	})

	t.Run("attending", func(t *testing.T) {
		got := e.FilterEvents(model.EventFilterAttending, testNow)
		require.Equal(t, []string{"e1"}, eventIds(got))
	})

	t.Run("virtual sorts soonest first", func(t *testing.T) {
		got := e.FilterEvents(model.EventFilterVirtual, testNow)
		require.Equal(t, []string{"e2", "e5"}, eventIds(got))
	})
}

func TestTrendingPosts(t *testing.T) {
	post := func(id string, likes, comments, shares int) model.Post {
		return model.Post{Id: id, LikesCount: likes, CommentsCount: comments, SharesCount: shares}
	}

	t.Run("ties keep insertion order", func(t *testing.T) {
		e := newTestEngine(seed.Data{Posts: []model.Post{
			post("p1", 10, 0, 0),
			post("p2", 10, 10, 10),
			post("p3", 30, 0, 0),
			post("p4", 5, 0, 0),
		}})
		// scores 10, 30, 30, 5: the two 30s keep their relative order
		require.Equal(t, []string{"p2", "p3", "p1", "p4"}, postIds(e.TrendingPosts()))
	})

	t.Run("truncates to top 5", func(t *testing.T) {
		posts := []model.Post{}
		for i, score := range []int{1, 9, 2, 8, 3, 7, 4} {
			posts = append(posts, post(string(rune('a'+i)), score, 0, 0))
		}
		e := newTestEngine(seed.Data{Posts: posts})
		got := e.TrendingPosts()
		require.Len(t, got, 5)
		require.Equal(t, []string{"b", "d", "f", "g", "e"}, postIds(got))
	})
}

func TestGroupMembersSampling(t *testing.T) {
	e := newTestEngine(seed.Data{
		Users:  nineUsers(),
		Groups: []model.Group{{Id: "g1", Name: "Gophers"}},
	})

	// keySum("g1") = 103+49 = 152, stride 3 keeps indices where
	// (i+152)%3 == 0, so i = 1, 4, 7
	got := e.GroupMembers("g1")
	require.Equal(t, []string{"u2", "u5", "u8"}, userIds(got))

	t.Run("pure function of id and collection", func(t *testing.T) {
		require.Equal(t, got, e.GroupMembers("g1"))
	})

	t.Run("unknown group yields empty", func(t *testing.T) {
		require.Empty(t, e.GroupMembers("nope"))
	})
}

func TestEventAttendeesSampling(t *testing.T) {
	e := newTestEngine(seed.Data{
		Users:  nineUsers(),
		Events: []model.Event{{Id: "e1", StartDate: testNow}},
	})

	// keySum("e1") = 101+49 = 150, stride 4 keeps i = 2, 6
	require.Equal(t, []string{"u3", "u7"}, userIds(e.EventAttendees("e1")))
	require.Empty(t, e.EventAttendees("nope"))
}

func TestRecommendedUsers(t *testing.T) {
	t.Run("samples over everyone but the viewer", func(t *testing.T) {
		e := newTestEngine(seed.Data{Users: nineUsers()})
		// candidates u2..u9, keySum("u1") = 117+49 = 166, stride 3 keeps
		// candidate indices 2 and 5
		require.Equal(t, []string{"u4", "u7"}, userIds(e.RecommendedUsers("u1")))
	})

	t.Run("already-followed users are skipped", func(t *testing.T) {
		entities := store.NewEntityStore(storage.NewMemoryKV())
		entities.Initialize(seed.Data{Users: nineUsers()})
		connections := store.NewConnectionsStore(storage.NewMemoryKV())
		connections.Follow("u4")
		e := NewEngine(entities, connections)

		got := userIds(e.RecommendedUsers("u1"))
		require.NotContains(t, got, "u4")
		require.NotContains(t, got, "u1")
	})

	t.Run("no viewer id returns the first five in insertion order", func(t *testing.T) {
		e := newTestEngine(seed.Data{Users: nineUsers()})
		require.Equal(t, []string{"u1", "u2", "u3", "u4", "u5"}, userIds(e.RecommendedUsers("")))
	})

	t.Run("no viewer id with a short collection returns all of it", func(t *testing.T) {
		e := newTestEngine(seed.Data{Users: []model.User{{Id: "a"}, {Id: "b"}, {Id: "c"}}})
		require.Equal(t, []string{"a", "b", "c"}, userIds(e.RecommendedUsers("")))
	})
}

func TestRecommendedGroups(t *testing.T) {
	groups := []model.Group{
		{Id: "g1"}, {Id: "g2"}, {Id: "g3"}, {Id: "g4"}, {Id: "g5"},
	}

	t.Run("samples unjoined groups", func(t *testing.T) {
		e := newTestEngine(seed.Data{Groups: groups})
		// keySum("u1") = 166, stride 2 keeps even candidate indices
		require.Equal(t, []string{"g1", "g3", "g5"}, groupIds(e.RecommendedGroups("u1")))
	})

	t.Run("joined groups are not recommended", func(t *testing.T) {
		joined := append([]model.Group(nil), groups...)
		joined[0].IsJoined = true
		e := newTestEngine(seed.Data{Groups: joined})
		require.Equal(t, []string{"g2", "g4"}, groupIds(e.RecommendedGroups("u1")))
	})
}

func eventIds(events []model.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Id)
	}
	return out
}

func postIds(posts []model.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Id)
	}
	return out
}

func userIds(users []model.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Id)
	}
	return out
}

func groupIds(groups []model.Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Id)
	}
	return out
}
