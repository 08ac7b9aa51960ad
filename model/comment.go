package model

import (
	"time"
)

/*

Comment is a data model for a reply under a post

Id: primary key, use to identify a comment
PostId: post this comment belongs to
ParentId: optional parent comment for threaded replies, empty for top level
Content: the comment body
Author: denormalized snapshot of the authoring user
LikesCount: like counter
IsLiked: per-viewer like flag for the single local viewer
Replies: nested replies, ordered oldest first
CreatedAt: time when the comment was written

*/

type Comment struct {
	Id         string    `json:"id"`
	PostId     string    `json:"postId"`
	ParentId   string    `json:"parentId"`
	Content    string    `json:"content"`
	Author     User      `json:"author"`
	LikesCount int       `json:"likesCount"`
	IsLiked    bool      `json:"isLiked"`
	Replies    []Comment `json:"replies"`
	CreatedAt  time.Time `json:"createdAt"`
}
