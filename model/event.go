package model

import (
	"time"
)

/*

Event is a data model for a scheduled gathering, physical or virtual

Id: primary key, use to identify an event
Title: event's display name
Description: details shown on the event page, searchable
StartDate / EndDate: the event's time window, StartDate is never after EndDate
Location: physical venue, empty for virtual events
IsVirtual: whether the event happens online
MeetingUrl: join link for virtual events
OrganizerId: user hosting the event, "belongs-to" relation
GroupId: optional group this event is attached to, empty when standalone
AttendeesCount: denormalized attendee counter
Capacity: maximum attendees, 0 means unlimited
IsAttending: whether the viewing user plans to attend, local-session flag
Tags: free-form topic tags

*/

type Event struct {
	Id             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Location       string    `json:"location"`
	IsVirtual      bool      `json:"isVirtual"`
	MeetingUrl     string    `json:"meetingUrl"`
	OrganizerId    string    `json:"organizerId"`
	GroupId        string    `json:"groupId"`
	AttendeesCount int       `json:"attendeesCount"`
	Capacity       int       `json:"capacity"`
	IsAttending    bool      `json:"isAttending"`
	Tags           []string  `json:"tags"`
}

// EventFilter selects one partition of the event collection.
type EventFilter string

const (
	EventFilterUpcoming  EventFilter = "upcoming"
	EventFilterAttending EventFilter = "attending"
	EventFilterPast      EventFilter = "past"
	EventFilterVirtual   EventFilter = "virtual"
)

// HasCapacity reports whether another attendee still fits.
func (e Event) HasCapacity() bool {
	return e.Capacity == 0 || e.AttendeesCount < e.Capacity
}
