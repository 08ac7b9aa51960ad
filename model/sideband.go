package model

import (
	"encoding/json"
	"time"
)

/*

TrendingTopic is a data model for an entry on the trending page sidebar

Id: primary key
Topic: hashtag or phrase being tracked
Category: coarse bucket the topic is filed under
PostsCount: how many posts carry the topic

*/

type TrendingTopic struct {
	Id         string `json:"id"`
	Topic      string `json:"topic"`
	Category   string `json:"category"`
	PostsCount int    `json:"postsCount"`
}

/*

ActivityLog is a data model for one entry of the viewer's activity history

Type: what happened (like, comment, follow, join, ...)
ActorId / TargetId: who did it and what it was done to
CreatedAt: when it happened

*/

type ActivityLog struct {
	Id        string    `json:"id"`
	Type      string    `json:"type"`
	ActorId   string    `json:"actorId"`
	TargetId  string    `json:"targetId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Payload is an opaque serializable blob for the side collections the core
// stores but never interprets (featured content, media gallery, engagement
// metrics). Kept as raw JSON on purpose, nothing in the core reads into it.
type Payload = json.RawMessage
