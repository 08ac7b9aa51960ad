package model

import (
	"time"
)

/*

Group is a data model for a community inside the network

Id: primary key, use to identify a group
Name: group's display name
Description: what the group is about, searchable
IsPrivate: private groups require approval to join; public groups do not
MembersCount / PostsCount: denormalized counters
Tags: free-form topic tags, drive category filtering and search
CreatorId: user who created this group, "belongs-to" relation
CreatedAt: time when the group was created

IsJoined: whether the viewing user is a member, local-session flag only

*/

type Group struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	IsPrivate    bool      `json:"isPrivate"`
	MembersCount int       `json:"membersCount"`
	PostsCount   int       `json:"postsCount"`
	Tags         []string  `json:"tags"`
	CreatorId    string    `json:"creatorId"`
	CreatedAt    time.Time `json:"createdAt"`
	IsJoined     bool      `json:"isJoined"`
}

func (g Group) GetID() string   { return g.Id }
func (g Group) GetName() string { return g.Name }
