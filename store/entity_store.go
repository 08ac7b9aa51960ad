package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orbitsocial/orbit-core/model"
	"github.com/orbitsocial/orbit-core/seed"
	"github.com/orbitsocial/orbit-core/storage"
	Logger "github.com/orbitsocial/orbit-core/utils/log"
)

// DemoDataSlot is the persistence slot for the entity store. Only the
// initialized flag goes in there, the seed collections themselves are
// rebuilt on every startup. The slot name is part of the observable
// contract, renaming it breaks cross-session continuity.
const DemoDataSlot = "demo-data-storage"

type demoDataState struct {
	IsInitialized bool `json:"isInitialized"`
}

/*

EntityStore owns the canonical in-memory collections: users, groups, events,
posts, comments keyed by post id, plus the opaque side collections. UI
consumers and the view engine only ever get copies or ids back, never a
reference into store-owned memory.

Lookups are linear scans on purpose, the collections are demo sized and
insertion order is the contract everywhere.

*/

type EntityStore struct {
	listenerHub

	mu                sync.RWMutex
	users             []model.User
	groups            []model.Group
	events            []model.Event
	posts             []model.Post
	comments          map[string][]model.Comment
	featuredContent   []model.Payload
	mediaGallery      []model.Payload
	activityLogs      []model.ActivityLog
	engagementMetrics model.Payload
	trendingTopics    []model.TrendingTopic
	initialized       bool

	kv storage.KV
}

func NewEntityStore(kv storage.KV) *EntityStore {
	s := &EntityStore{
		comments: map[string][]model.Comment{},
		kv:       kv,
	}
	var state demoDataState
	if kv.Get(DemoDataSlot, &state) {
		s.initialized = state.IsInitialized
	}
	return s
}

// Initialize replaces every collection wholesale with the given seed and
// marks the store initialized. Calling it on a populated store reseeds it.
func (s *EntityStore) Initialize(data seed.Data) {
	s.mu.Lock()
	s.users = append([]model.User(nil), data.Users...)
	s.groups = append([]model.Group(nil), data.Groups...)
	s.events = append([]model.Event(nil), data.Events...)
	s.posts = append([]model.Post(nil), data.Posts...)
	s.comments = map[string][]model.Comment{}
	for postId, seq := range data.Comments {
		s.comments[postId] = append([]model.Comment(nil), seq...)
	}
	s.featuredContent = append([]model.Payload(nil), data.FeaturedContent...)
	s.mediaGallery = append([]model.Payload(nil), data.MediaGallery...)
	s.activityLogs = append([]model.ActivityLog(nil), data.ActivityLogs...)
	s.engagementMetrics = data.EngagementMetrics
	s.trendingTopics = append([]model.TrendingTopic(nil), data.TrendingTopics...)
	s.initialized = true
	s.mu.Unlock()

	s.persistFlag()
	s.notify()
}

// InitializeIfNeeded seeds from src only when the store holds no data yet.
// Reports whether seeding happened.
func (s *EntityStore) InitializeIfNeeded(src func() seed.Data) bool {
	s.mu.RLock()
	populated := len(s.users) > 0
	s.mu.RUnlock()
	if populated {
		return false
	}
	s.Initialize(src())
	return true
}

func (s *EntityStore) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

func (s *EntityStore) persistFlag() {
	s.mu.RLock()
	state := demoDataState{IsInitialized: s.initialized}
	s.mu.RUnlock()
	if err := s.kv.Set(DemoDataSlot, state); err != nil {
		Logger.LogV2.Errorf("fail to persist demo data flag", err)
	}
}

// ===== lookups =====

func (s *EntityStore) GetUserById(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Id == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *EntityStore) GetGroupById(id string) (model.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.groups {
		if g.Id == id {
			return g, true
		}
	}
	return model.Group{}, false
}

func (s *EntityStore) GetEventById(id string) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.Id == id {
			return e, true
		}
	}
	return model.Event{}, false
}

func (s *EntityStore) GetPostById(id string) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.Id == id {
			return clonePost(p), true
		}
	}
	return model.Post{}, false
}

// ===== collection views, insertion order, copied =====

func (s *EntityStore) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

func (s *EntityStore) Groups() []model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Group(nil), s.groups...)
}

func (s *EntityStore) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Event(nil), s.events...)
}

func (s *EntityStore) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, clonePost(p))
	}
	return out
}

// GetPostComments returns the ordered comment sequence for a post, empty
// when the post has no comments or does not exist. Reply lists are copied
// all the way down.
func (s *EntityStore) GetPostComments(postId string) []model.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneComments(s.comments[postId])
}

func (s *EntityStore) GetUserPosts(userId string) []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, 0)
	for _, p := range s.posts {
		if p.Author.Id == userId {
			out = append(out, clonePost(p))
		}
	}
	return out
}

func (s *EntityStore) GetGroupPosts(groupId string) []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, 0)
	for _, p := range s.posts {
		if p.GroupId == groupId {
			out = append(out, clonePost(p))
		}
	}
	return out
}

func (s *EntityStore) FeaturedContent() []model.Payload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Payload(nil), s.featuredContent...)
}

func (s *EntityStore) MediaGallery() []model.Payload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Payload(nil), s.mediaGallery...)
}

func (s *EntityStore) ActivityLogs() []model.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ActivityLog(nil), s.activityLogs...)
}

func (s *EntityStore) EngagementMetrics() model.Payload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engagementMetrics
}

func (s *EntityStore) TrendingTopics() []model.TrendingTopic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.TrendingTopic(nil), s.trendingTopics...)
}

// ===== engagement actions =====
// These are the only mutations after seeding. They touch counters and
// per-viewer flags only, never identity fields.

// ToggleLike flips the viewer's like on a post and adjusts the counter.
func (s *EntityStore) ToggleLike(postId string) (model.Post, bool) {
	s.mu.Lock()
	idx := s.postIndex(postId)
	if idx < 0 {
		s.mu.Unlock()
		return model.Post{}, false
	}
	p := s.posts[idx]
	if p.IsLiked {
		p.IsLiked = false
		p.LikesCount--
	} else {
		p.IsLiked = true
		p.LikesCount++
	}
	s.posts[idx] = p
	s.mu.Unlock()

	s.notify()
	return clonePost(p), true
}

// ToggleBookmark flips the viewer's bookmark on a post.
func (s *EntityStore) ToggleBookmark(postId string) (model.Post, bool) {
	s.mu.Lock()
	idx := s.postIndex(postId)
	if idx < 0 {
		s.mu.Unlock()
		return model.Post{}, false
	}
	p := s.posts[idx]
	p.IsBookmarked = !p.IsBookmarked
	s.posts[idx] = p
	s.mu.Unlock()

	s.notify()
	return clonePost(p), true
}

// SharePost bumps the share counter.
func (s *EntityStore) SharePost(postId string) (model.Post, bool) {
	s.mu.Lock()
	idx := s.postIndex(postId)
	if idx < 0 {
		s.mu.Unlock()
		return model.Post{}, false
	}
	p := s.posts[idx]
	p.SharesCount++
	s.posts[idx] = p
	s.mu.Unlock()

	s.notify()
	return clonePost(p), true
}

// AddComment appends a comment to the post's sequence, or to the parent's
// reply list when parentId names a top level comment, and bumps the post's
// comment counter either way.
func (s *EntityStore) AddComment(postId string, author model.User, content string, parentId string) (model.Comment, bool) {
	s.mu.Lock()
	idx := s.postIndex(postId)
	if idx < 0 {
		s.mu.Unlock()
		return model.Comment{}, false
	}

	c := model.Comment{
		Id:        uuid.New().String(),
		PostId:    postId,
		ParentId:  parentId,
		Content:   content,
		Author:    author,
		CreatedAt: time.Now(),
	}

	if parentId == "" {
		s.comments[postId] = append(s.comments[postId], c)
	} else {
		attached := false
		seq := s.comments[postId]
		for i := range seq {
			if seq[i].Id == parentId {
				seq[i].Replies = append(seq[i].Replies, c)
				attached = true
				break
			}
		}
		if !attached {
			// unknown parent degrades to a top level comment
			c.ParentId = ""
			s.comments[postId] = append(s.comments[postId], c)
		}
	}

	p := s.posts[idx]
	p.CommentsCount++
	s.posts[idx] = p
	s.mu.Unlock()

	s.notify()
	return c, true
}

// ToggleAttendance flips the viewer's attendance on an event. Joining a
// full event is refused.
func (s *EntityStore) ToggleAttendance(eventId string) (model.Event, bool) {
	s.mu.Lock()
	idx := -1
	for i, e := range s.events {
		if e.Id == eventId {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return model.Event{}, false
	}
	e := s.events[idx]
	if e.IsAttending {
		e.IsAttending = false
		e.AttendeesCount--
	} else {
		if !e.HasCapacity() {
			s.mu.Unlock()
			return e, false
		}
		e.IsAttending = true
		e.AttendeesCount++
	}
	s.events[idx] = e
	s.mu.Unlock()

	s.notify()
	return e, true
}

// ToggleMembership flips the viewer's membership in a group.
func (s *EntityStore) ToggleMembership(groupId string) (model.Group, bool) {
	s.mu.Lock()
	idx := -1
	for i, g := range s.groups {
		if g.Id == groupId {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return model.Group{}, false
	}
	g := s.groups[idx]
	if g.IsJoined {
		g.IsJoined = false
		g.MembersCount--
	} else {
		g.IsJoined = true
		g.MembersCount++
	}
	s.groups[idx] = g
	s.mu.Unlock()

	s.notify()
	return g, true
}

func (s *EntityStore) postIndex(postId string) int {
	for i, p := range s.posts {
		if p.Id == postId {
			return i
		}
	}
	return -1
}

// clonePost detaches the slice-typed fields so callers never hold a
// reference into store-owned memory.
func clonePost(p model.Post) model.Post {
	if len(p.Attachments) > 0 {
		p.Attachments = append([]model.Attachment(nil), p.Attachments...)
	}
	return p
}

func cloneComments(seq []model.Comment) []model.Comment {
	out := make([]model.Comment, 0, len(seq))
	for _, c := range seq {
		if len(c.Replies) > 0 {
			c.Replies = cloneComments(c.Replies)
		}
		out = append(out, c)
	}
	return out
}
