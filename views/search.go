package views

import (
	"strings"

	"github.com/orbitsocial/orbit-core/model"
)

// CategoryAll matches every group regardless of tags.
const CategoryAll = "all"

// categoryTags is the fixed mapping from coarse UI categories to the group
// tags that file under them. Tags not listed anywhere simply never match a
// category filter, they stay reachable through text search.
var categoryTags = map[string][]string{
	"technology": {"golang", "backend", "programming", "gamedev"},
	"sports":     {"running", "fitness", "chess", "climbing"},
	"art":        {"photography", "film", "art", "design"},
	"food":       {"cooking", "food", "recipes"},
	"lifestyle":  {"gardening", "sustainability", "outdoors", "music", "vinyl"},
	"gaming":     {"gaming", "gamedev", "games"},
}

// Categories lists the known category keys plus the catch-all, for the UI's
// filter chips. Order is fixed so the chips do not jump around.
func Categories() []string {
	return []string{CategoryAll, "technology", "sports", "art", "food", "lifestyle", "gaming"}
}

// SearchGroups filters groups by a category chip and a free-text query.
// The query matches case-insensitively against name, description and tags;
// empty query and the "all" (or empty) category match everything. Result
// order is insertion order.
func (e *Engine) SearchGroups(query, category string) []model.Group {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Group, 0)
	for _, g := range e.Entities.Groups() {
		if !matchesCategory(g, category) {
			continue
		}
		if q != "" && !matchesQuery(g, q) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func matchesCategory(g model.Group, category string) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == CategoryAll {
		return true
	}
	tags, ok := categoryTags[category]
	if !ok {
		return false
	}
	for _, gt := range g.Tags {
		for _, t := range tags {
			if strings.EqualFold(gt, t) {
				return true
			}
		}
	}
	return false
}

func matchesQuery(g model.Group, q string) bool {
	if strings.Contains(strings.ToLower(g.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(g.Description), q) {
		return true
	}
	for _, t := range g.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
