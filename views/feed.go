package views

import (
	"sort"
	"strings"

	"github.com/orbitsocial/orbit-core/model"
)

// FeedTab selects the feed's sort policy.
type FeedTab string

const (
	FeedTabRecent FeedTab = "recent"
	FeedTabHot    FeedTab = "hot"
)

// FeedQuery narrows and orders the post collection for the feed page.
// Authors, when set, keeps only posts by those author ids (the "following"
// feed is this with the viewer's following list). Tags keeps posts whose
// group carries any of the given tags, matched case-insensitively; posts
// without a group never match a tag filter.
type FeedQuery struct {
	Tab     FeedTab
	Authors []string
	Tags    []string
	GroupId string
}

// Feed returns decorated post copies for the query. Hot ranks by engagement
// score with recency breaking ties, recent is newest first.
func (e *Engine) Feed(q FeedQuery) []model.Post {
	var base []model.Post
	if q.GroupId != "" {
		base = e.Entities.GetGroupPosts(q.GroupId)
	} else {
		base = e.Entities.Posts()
	}

	if len(q.Authors) > 0 {
		authorSet := map[string]struct{}{}
		for _, a := range q.Authors {
			a = strings.TrimSpace(a)
			if a != "" {
				authorSet[a] = struct{}{}
			}
		}
		filtered := make([]model.Post, 0, len(base))
		for _, p := range base {
			if _, ok := authorSet[p.Author.Id]; ok {
				filtered = append(filtered, p)
			}
		}
		base = filtered
	}

	if len(q.Tags) > 0 {
		tagSet := map[string]struct{}{}
		for _, t := range q.Tags {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				tagSet[t] = struct{}{}
			}
		}
		if len(tagSet) > 0 {
			filtered := make([]model.Post, 0, len(base))
			for _, p := range base {
				if p.GroupId == "" {
					continue
				}
				g, ok := e.Entities.GetGroupById(p.GroupId)
				if !ok {
					continue
				}
				for _, gt := range g.Tags {
					if _, ok := tagSet[strings.ToLower(gt)]; ok {
						filtered = append(filtered, p)
						break
					}
				}
			}
			base = filtered
		}
	}

	out := clonePosts(base)
	if q.Tab == FeedTabHot {
		sort.SliceStable(out, func(i, j int) bool {
			si, sj := out[i].EngagementScore(), out[j].EngagementScore()
			if si == sj {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return si > sj
		})
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// FollowingFeed is the home timeline: posts from the accounts the viewer
// follows, newest first. Without a connections store it is empty.
func (e *Engine) FollowingFeed() []model.Post {
	if e.Connections == nil {
		return []model.Post{}
	}
	return e.Feed(FeedQuery{Tab: FeedTabRecent, Authors: e.Connections.Following()})
}
