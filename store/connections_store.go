package store

import (
	"sync"

	"github.com/orbitsocial/orbit-core/storage"
	Logger "github.com/orbitsocial/orbit-core/utils/log"
)

// ConnectionsSlot is the persistence slot carrying the viewer's full
// relationship state. The slot name is part of the observable contract.
const ConnectionsSlot = "connections-storage"

type connectionsState struct {
	Following      []string `json:"following"`
	Followers      []string `json:"followers"`
	FollowRequests []string `json:"followRequests"`
}

/*

ConnectionsStore holds the directed relationship edges of the single local
viewer: who they follow, who follows them, and pending follow requests.
Each relation is an ordered set, insertion order preserved, no duplicates.

Every mutation writes the full state through the persistence boundary
synchronously, so a reload sees exactly what the last action left behind.

*/

type ConnectionsStore struct {
	listenerHub

	mu             sync.RWMutex
	following      []string
	followers      []string
	followRequests []string

	kv storage.KV
}

// NewConnectionsStore builds the store and rehydrates relationship state
// from the persistence boundary. Absent or corrupt state degrades to empty.
func NewConnectionsStore(kv storage.KV) *ConnectionsStore {
	s := &ConnectionsStore{kv: kv}
	var state connectionsState
	if kv.Get(ConnectionsSlot, &state) {
		s.following = state.Following
		s.followers = state.Followers
		s.followRequests = state.FollowRequests
	}
	return s
}

// Follow adds userId to the following set. Re-following is a no-op, the
// relation is a set rather than an append log.
func (s *ConnectionsStore) Follow(userId string) {
	if userId == "" {
		return
	}
	s.mu.Lock()
	if contains(s.following, userId) {
		s.mu.Unlock()
		return
	}
	s.following = append(s.following, userId)
	s.mu.Unlock()

	s.persist()
	s.notify()
}

// Unfollow removes every occurrence of userId from the following set.
func (s *ConnectionsStore) Unfollow(userId string) {
	s.mu.Lock()
	s.following = removeAll(s.following, userId)
	s.mu.Unlock()

	s.persist()
	s.notify()
}

// AcceptFollowRequest moves userId out of the pending requests and into
// followers.
func (s *ConnectionsStore) AcceptFollowRequest(userId string) {
	s.mu.Lock()
	s.followRequests = removeAll(s.followRequests, userId)
	if !contains(s.followers, userId) {
		s.followers = append(s.followers, userId)
	}
	s.mu.Unlock()

	s.persist()
	s.notify()
}

// RejectFollowRequest drops userId from the pending requests without
// touching followers.
func (s *ConnectionsStore) RejectFollowRequest(userId string) {
	s.mu.Lock()
	s.followRequests = removeAll(s.followRequests, userId)
	s.mu.Unlock()

	s.persist()
	s.notify()
}

// AddFollowRequest records an incoming request unless the user already
// follows the viewer or has a request pending.
func (s *ConnectionsStore) AddFollowRequest(userId string) {
	if userId == "" {
		return
	}
	s.mu.Lock()
	if contains(s.followRequests, userId) || contains(s.followers, userId) {
		s.mu.Unlock()
		return
	}
	s.followRequests = append(s.followRequests, userId)
	s.mu.Unlock()

	s.persist()
	s.notify()
}

func (s *ConnectionsStore) IsFollowing(userId string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.following, userId)
}

func (s *ConnectionsStore) HasFollowRequest(userId string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.followRequests, userId)
}

func (s *ConnectionsStore) Following() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.following...)
}

func (s *ConnectionsStore) Followers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.followers...)
}

func (s *ConnectionsStore) FollowRequests() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.followRequests...)
}

func (s *ConnectionsStore) persist() {
	s.mu.RLock()
	state := connectionsState{
		Following:      append([]string{}, s.following...),
		Followers:      append([]string{}, s.followers...),
		FollowRequests: append([]string{}, s.followRequests...),
	}
	s.mu.RUnlock()
	if err := s.kv.Set(ConnectionsSlot, state); err != nil {
		Logger.LogV2.Errorf("fail to persist connections", err)
	}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func removeAll(list []string, v string) []string {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
