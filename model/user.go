package model

import (
	"time"
)

/*

User is a data model for a member of the network

Id: primary key, use to identify a user, stable for the process lifetime
Username: unique handle shown in mentions and profile URLs
Email: contact address, not verified in the demo
DisplayName: name rendered on cards and posts, can be changed
AvatarUrl: user's icon URL
Bio: short self description
Location: free-form location string
Website: personal link shown on the profile
FollowersCount / FollowingCount / PostsCount: denormalized counters
IsVerified: verification badge flag
JoinedAt: time when the account was created

*/

type User struct {
	Id             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	AvatarUrl      string    `json:"avatarUrl"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	Website        string    `json:"website"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
	PostsCount     int       `json:"postsCount"`
	IsVerified     bool      `json:"isVerified"`
	JoinedAt       time.Time `json:"joinedAt"`
}

func (u User) GetID() string        { return u.Id }
func (u User) GetName() string      { return u.DisplayName }
func (u User) GetAvatarURL() string { return u.AvatarUrl }
