package views

import (
	"sort"
	"time"

	"github.com/jinzhu/copier"

	"github.com/orbitsocial/orbit-core/model"
	"github.com/orbitsocial/orbit-core/store"
	Logger "github.com/orbitsocial/orbit-core/utils/log"
)

const (
	trendingLimit = 5

	groupMemberStride   = 3
	groupMemberLimit    = 10
	eventAttendeeStride = 4
	eventAttendeeLimit  = 8
	recGroupStride      = 2
	recGroupLimit       = 3
	recUserStride       = 3
	recUserLimit        = 5
)

/*

Engine computes read-only derived views over the entity store: filtered and
sorted projections, engagement ranking and the deterministic sampling that
stands in for a real relevance model. It never mutates store state.

Connections is optional. When present, recommendations exclude users the
viewer already follows.

*/

type Engine struct {
	Entities    *store.EntityStore
	Connections *store.ConnectionsStore
}

func NewEngine(entities *store.EntityStore, connections *store.ConnectionsStore) *Engine {
	return &Engine{Entities: entities, Connections: connections}
}

// ===== events =====

// FilterEvents partitions the event collection at time now. Past events
// sort most recent first, every other partition sorts soonest first.
func (e *Engine) FilterEvents(filter model.EventFilter, now time.Time) []model.Event {
	events := e.Entities.Events()
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		switch filter {
		case model.EventFilterUpcoming:
			if ev.StartDate.After(now) {
				out = append(out, ev)
			}
		case model.EventFilterPast:
			if ev.StartDate.Before(now) {
				out = append(out, ev)
			}
		case model.EventFilterAttending:
			if ev.IsAttending {
				out = append(out, ev)
			}
		case model.EventFilterVirtual:
			if ev.IsVirtual {
				out = append(out, ev)
			}
		default:
			out = append(out, ev)
		}
	}

	if filter == model.EventFilterPast {
		sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	}
	return out
}

// ===== trending =====

// TrendingPosts ranks posts by engagement score, stable on insertion order
// for ties, and keeps the top 5.
func (e *Engine) TrendingPosts() []model.Post {
	posts := clonePosts(e.Entities.Posts())
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].EngagementScore() > posts[j].EngagementScore()
	})
	if len(posts) > trendingLimit {
		posts = posts[:trendingLimit]
	}
	return posts
}

// ===== deterministic sampling =====

// keySum folds an id into a small integer by summing its byte values. The
// same id always lands on the same subset, which is the invariant the demo
// relies on for stable group member and attendee lists.
func keySum(id string) int {
	sum := 0
	for _, b := range []byte(id) {
		sum += int(b)
	}
	return sum
}

func sampleUsers(users []model.User, id string, stride, limit int) []model.User {
	out := make([]model.User, 0, limit)
	if id == "" {
		// no key to sample on, take the insertion-order prefix
		for _, u := range users {
			if len(out) == limit {
				break
			}
			out = append(out, u)
		}
		return out
	}
	key := keySum(id)
	for i, u := range users {
		if (i+key)%stride != 0 {
			continue
		}
		out = append(out, u)
		if len(out) == limit {
			break
		}
	}
	return out
}

// GroupMembers returns the deterministic member sample for a group, empty
// when the group is unknown.
func (e *Engine) GroupMembers(groupId string) []model.User {
	if _, ok := e.Entities.GetGroupById(groupId); !ok {
		return []model.User{}
	}
	return sampleUsers(e.Entities.Users(), groupId, groupMemberStride, groupMemberLimit)
}

// EventAttendees returns the deterministic attendee sample for an event,
// empty when the event is unknown.
func (e *Engine) EventAttendees(eventId string) []model.User {
	if _, ok := e.Entities.GetEventById(eventId); !ok {
		return []model.User{}
	}
	return sampleUsers(e.Entities.Users(), eventId, eventAttendeeStride, eventAttendeeLimit)
}

// RecommendedUsers samples the user collection for the viewer, skipping the
// viewer and anyone already followed. An empty viewer id disables sampling
// and yields the insertion-order prefix.
func (e *Engine) RecommendedUsers(userId string) []model.User {
	users := e.Entities.Users()
	candidates := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Id == userId {
			continue
		}
		if e.Connections != nil && e.Connections.IsFollowing(u.Id) {
			continue
		}
		candidates = append(candidates, u)
	}
	return sampleUsers(candidates, userId, recUserStride, recUserLimit)
}

// RecommendedGroups samples the group collection for the viewer, skipping
// groups the viewer has joined.
func (e *Engine) RecommendedGroups(userId string) []model.Group {
	groups := e.Entities.Groups()
	candidates := make([]model.Group, 0, len(groups))
	for _, g := range groups {
		if g.IsJoined {
			continue
		}
		candidates = append(candidates, g)
	}

	out := make([]model.Group, 0, recGroupLimit)
	if userId == "" {
		for _, g := range candidates {
			if len(out) == recGroupLimit {
				break
			}
			out = append(out, g)
		}
		return out
	}
	key := keySum(userId)
	for i, g := range candidates {
		if (i+key)%recGroupStride != 0 {
			continue
		}
		out = append(out, g)
		if len(out) == recGroupLimit {
			break
		}
	}
	return out
}

func clonePosts(posts []model.Post) []model.Post {
	out := make([]model.Post, 0, len(posts))
	if err := copier.CopyWithOption(&out, &posts, copier.Option{DeepCopy: true}); err != nil {
		Logger.LogV2.Errorf("fail to clone posts", err)
	}
	return out
}
