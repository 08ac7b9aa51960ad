package model

import (
	"time"
)

/*

Post is a data model for a piece of content on the feed

Id: primary key, use to identify a post
Content: the post body, plain text
Author: denormalized snapshot of the authoring user at post time
GroupId: optional group the post was published into, empty for profile posts
Attachments: media attached to the post, render-only
LikesCount / CommentsCount / SharesCount: engagement counters, these are the
only fields mutated after construction
IsLiked / IsBookmarked: per-viewer flags for the single local viewer
CreatedAt / UpdatedAt: entity timestamps

*/

type Post struct {
	Id            string       `json:"id"`
	Content       string       `json:"content"`
	Author        User         `json:"author"`
	GroupId       string       `json:"groupId"`
	Attachments   []Attachment `json:"attachments"`
	LikesCount    int          `json:"likesCount"`
	CommentsCount int          `json:"commentsCount"`
	SharesCount   int          `json:"sharesCount"`
	IsLiked       bool         `json:"isLiked"`
	IsBookmarked  bool         `json:"isBookmarked"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Attachment is a media item rendered inside a post card.
type Attachment struct {
	Type string `json:"type"`
	Url  string `json:"url"`
	Alt  string `json:"alt"`
}

// EngagementScore is the ranking metric for trending content: the flat sum
// of like, comment and share counts, no decay or time-window weighting.
func (p Post) EngagementScore() int {
	return p.LikesCount + p.CommentsCount + p.SharesCount
}
