package seed

import (
	"encoding/json"
	"time"

	"github.com/orbitsocial/orbit-core/model"
)

/*

Data is the static seed source consumed once by the entity store's
Initialize. Collections are plain slices in insertion order; Comments maps a
post id to its ordered comment sequence. The side collections are opaque
payloads the core stores but never interprets.

*/

type Data struct {
	Users             []model.User
	Groups            []model.Group
	Events            []model.Event
	Posts             []model.Post
	Comments          map[string][]model.Comment
	FeaturedContent   []model.Payload
	MediaGallery      []model.Payload
	ActivityLogs      []model.ActivityLog
	EngagementMetrics model.Payload
	TrendingTopics    []model.TrendingTopic
}

// Demo builds the demo dataset. Event windows are anchored to the call time
// so the upcoming/past partitions stay meaningful across sessions.
func Demo() Data {
	now := time.Now()
	joined := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	users := []model.User{
		{Id: "u1", Username: "ava_codes", Email: "ava@orbit.test", DisplayName: "Ava Lindqvist", AvatarUrl: "https://img.orbit.test/a/u1.png", Bio: "Frontend tinkerer, coffee first.", Location: "Stockholm", Website: "https://ava.dev", FollowersCount: 812, FollowingCount: 240, PostsCount: 54, IsVerified: true, JoinedAt: joined(900)},
		{Id: "u2", Username: "marcus.w", Email: "marcus@orbit.test", DisplayName: "Marcus Webb", AvatarUrl: "https://img.orbit.test/a/u2.png", Bio: "Runner. Photographer on weekends.", Location: "Denver", FollowersCount: 433, FollowingCount: 310, PostsCount: 87, JoinedAt: joined(740)},
		{Id: "u3", Username: "priya_r", Email: "priya@orbit.test", DisplayName: "Priya Raman", AvatarUrl: "https://img.orbit.test/a/u3.png", Bio: "Data viz and long hikes.", Location: "Bangalore", Website: "https://priya.io", FollowersCount: 1190, FollowingCount: 85, PostsCount: 132, IsVerified: true, JoinedAt: joined(1460)},
		{Id: "u4", Username: "tom_ok", Email: "tom@orbit.test", DisplayName: "Tom Okafor", AvatarUrl: "https://img.orbit.test/a/u4.png", Bio: "Game dev, synths, pixel art.", Location: "Lagos", FollowersCount: 256, FollowingCount: 198, PostsCount: 41, JoinedAt: joined(365)},
		{Id: "u5", Username: "elenam", Email: "elena@orbit.test", DisplayName: "Elena Moretti", AvatarUrl: "https://img.orbit.test/a/u5.png", Bio: "Cooking my way through Italy.", Location: "Bologna", FollowersCount: 2048, FollowingCount: 402, PostsCount: 230, IsVerified: true, JoinedAt: joined(1100)},
		{Id: "u6", Username: "jricher", Email: "jay@orbit.test", DisplayName: "Jay Richer", AvatarUrl: "https://img.orbit.test/a/u6.png", Bio: "Bikes and backend systems.", Location: "Montreal", FollowersCount: 77, FollowingCount: 143, PostsCount: 12, JoinedAt: joined(120)},
		{Id: "u7", Username: "sofia.design", Email: "sofia@orbit.test", DisplayName: "Sofia Alvarez", AvatarUrl: "https://img.orbit.test/a/u7.png", Bio: "Product design, typography nerd.", Location: "Mexico City", Website: "https://sofia.design", FollowersCount: 950, FollowingCount: 501, PostsCount: 98, JoinedAt: joined(610)},
		{Id: "u8", Username: "kenji_t", Email: "kenji@orbit.test", DisplayName: "Kenji Tanaka", AvatarUrl: "https://img.orbit.test/a/u8.png", Bio: "Street photography, film only.", Location: "Osaka", FollowersCount: 1544, FollowingCount: 66, PostsCount: 310, IsVerified: true, JoinedAt: joined(1700)},
		{Id: "u9", Username: "nina_k", Email: "nina@orbit.test", DisplayName: "Nina Kovac", AvatarUrl: "https://img.orbit.test/a/u9.png", Bio: "Climbing and chess.", Location: "Zagreb", FollowersCount: 302, FollowingCount: 280, PostsCount: 65, JoinedAt: joined(480)},
		{Id: "u10", Username: "dre", Email: "dre@orbit.test", DisplayName: "Andre Boyd", AvatarUrl: "https://img.orbit.test/a/u10.png", Bio: "Vinyl collector. Hip hop history.", Location: "Atlanta", FollowersCount: 620, FollowingCount: 350, PostsCount: 140, JoinedAt: joined(820)},
		{Id: "u11", Username: "lotte", Email: "lotte@orbit.test", DisplayName: "Lotte de Vries", AvatarUrl: "https://img.orbit.test/a/u11.png", Bio: "Urban gardening in small spaces.", Location: "Utrecht", FollowersCount: 188, FollowingCount: 96, PostsCount: 33, JoinedAt: joined(200)},
		{Id: "u12", Username: "sam_ml", Email: "sam@orbit.test", DisplayName: "Sam Whitfield", AvatarUrl: "https://img.orbit.test/a/u12.png", Bio: "Machine learning, mostly broken.", Location: "Bristol", FollowersCount: 410, FollowingCount: 220, PostsCount: 58, JoinedAt: joined(300)},
	}

	byId := map[string]model.User{}
	for _, u := range users {
		byId[u.Id] = u
	}

	groups := []model.Group{
		{Id: "g1", Name: "Go & Systems", Description: "Backend engineering, Go, databases and everything below the API.", MembersCount: 1843, PostsCount: 412, Tags: []string{"golang", "backend", "programming"}, CreatorId: "u6", CreatedAt: joined(700)},
		{Id: "g2", Name: "Trail Runners", Description: "Weekly runs, race reports and shoe talk.", MembersCount: 620, PostsCount: 150, Tags: []string{"running", "fitness", "outdoors"}, CreatorId: "u2", CreatedAt: joined(540)},
		{Id: "g3", Name: "Film Photography Club", Description: "Analog only. Share scans, chemistry tips and camera finds.", MembersCount: 980, PostsCount: 233, Tags: []string{"photography", "film", "art"}, CreatorId: "u8", CreatedAt: joined(1200)},
		{Id: "g4", Name: "Home Cooks United", Description: "Recipes, failures and the occasional triumph from home kitchens.", MembersCount: 2410, PostsCount: 601, Tags: []string{"cooking", "food", "recipes"}, CreatorId: "u5", CreatedAt: joined(880)},
		{Id: "g5", Name: "Indie Game Makers", Description: "Devlogs, playtesting swaps and engine arguments.", IsPrivate: true, MembersCount: 356, PostsCount: 89, Tags: []string{"gamedev", "gaming", "art"}, CreatorId: "u4", CreatedAt: joined(260)},
		{Id: "g6", Name: "City Gardeners", Description: "Balcony beds, community plots and compost science.", MembersCount: 512, PostsCount: 120, Tags: []string{"gardening", "outdoors", "sustainability"}, CreatorId: "u11", CreatedAt: joined(150)},
	}

	events := []model.Event{
		{Id: "e1", Title: "Go Meetup: Profiling in Production", Description: "Two talks on pprof and continuous profiling, pizza after.", StartDate: now.AddDate(0, 0, 9), EndDate: now.AddDate(0, 0, 9).Add(3 * time.Hour), Location: "Hub 42, Montreal", OrganizerId: "u6", GroupId: "g1", AttendeesCount: 48, Capacity: 80, Tags: []string{"golang", "backend"}},
		{Id: "e2", Title: "Sunrise Trail Run", Description: "Easy 12k on the ridge loop. All paces welcome.", StartDate: now.AddDate(0, 0, 2), EndDate: now.AddDate(0, 0, 2).Add(2 * time.Hour), Location: "Ridge trailhead, Denver", OrganizerId: "u2", GroupId: "g2", AttendeesCount: 17, IsAttending: true, Tags: []string{"running", "outdoors"}},
		{Id: "e3", Title: "Darkroom Basics Workshop", Description: "Hands-on B&W development session, materials provided.", StartDate: now.AddDate(0, 0, -20), EndDate: now.AddDate(0, 0, -20).Add(4 * time.Hour), Location: "Community darkroom, Osaka", OrganizerId: "u8", GroupId: "g3", AttendeesCount: 12, Capacity: 12, Tags: []string{"photography", "film"}},
		{Id: "e4", Title: "Pasta From Scratch (Live)", Description: "Follow along at home, ingredient list posted in the group.", StartDate: now.AddDate(0, 0, 5), EndDate: now.AddDate(0, 0, 5).Add(90 * time.Minute), IsVirtual: true, MeetingUrl: "https://meet.orbit.test/pasta-live", OrganizerId: "u5", GroupId: "g4", AttendeesCount: 230, Tags: []string{"cooking", "food"}},
		{Id: "e5", Title: "Playtest Night #7", Description: "Bring a build, leave with notes. Private group members only.", StartDate: now.AddDate(0, 0, -6), EndDate: now.AddDate(0, 0, -6).Add(3 * time.Hour), IsVirtual: true, MeetingUrl: "https://meet.orbit.test/playtest-7", OrganizerId: "u4", GroupId: "g5", AttendeesCount: 22, Tags: []string{"gamedev", "gaming"}},
		{Id: "e6", Title: "Seed Swap & Soil Clinic", Description: "Bring labeled seeds, take home new ones. Soil testing on site.", StartDate: now.AddDate(0, 0, 16), EndDate: now.AddDate(0, 0, 16).Add(4 * time.Hour), Location: "Griftpark, Utrecht", OrganizerId: "u11", GroupId: "g6", AttendeesCount: 40, Capacity: 40, Tags: []string{"gardening", "outdoors"}},
		{Id: "e7", Title: "Open Chess Evening", Description: "Casual boards, clocks optional.", StartDate: now.AddDate(0, 0, 1), EndDate: now.AddDate(0, 0, 1).Add(3 * time.Hour), Location: "Cafe Lovac, Zagreb", OrganizerId: "u9", AttendeesCount: 9, IsAttending: true, Tags: []string{"chess", "games"}},
		{Id: "e8", Title: "Vinyl Listening Session: '94", Description: "One year, one crate. Come argue about the best record of 1994.", StartDate: now.AddDate(0, 0, -45), EndDate: now.AddDate(0, 0, -45).Add(4 * time.Hour), Location: "Waveform Records, Atlanta", OrganizerId: "u10", AttendeesCount: 31, Tags: []string{"music", "vinyl"}},
	}

	post := func(id, authorId, groupId, content string, likes, comments, shares int, hoursAgo int) model.Post {
		created := now.Add(-time.Duration(hoursAgo) * time.Hour)
		return model.Post{
			Id:            id,
			Content:       content,
			Author:        byId[authorId],
			GroupId:       groupId,
			LikesCount:    likes,
			CommentsCount: comments,
			SharesCount:   shares,
			CreatedAt:     created,
			UpdatedAt:     created,
		}
	}

	posts := []model.Post{
		post("p1", "u1", "", "Rebuilt my portfolio with no framework at all. 14kb total. I forgot how fast the web can feel.", 145, 32, 18, 2),
		post("p2", "u3", "g1", "Wrote up our migration from one big table to partitioned storage. Query p99 went from 1.2s to 40ms.", 321, 77, 102, 5),
		post("p3", "u2", "g2", "Ridge loop conditions this morning: icy above 2400m, microspikes recommended through the weekend.", 58, 21, 9, 8),
		post("p4", "u8", "g3", "Found a Pentax 67 at an estate sale for the price of a dinner. The meter even works.", 412, 95, 44, 12),
		post("p5", "u5", "g4", "The secret to silky carbonara is temperature, not cream. Full method in the comments.", 388, 120, 67, 18),
		post("p6", "u4", "g5", "Devlog 12: rewrote the dialogue system for the third time. This one sparks joy.", 76, 19, 5, 24),
		post("p7", "u7", "", "Hot take: most design systems die because they ship components before vocabulary.", 204, 88, 31, 30),
		post("p8", "u9", "", "Flashed my first 7a today. Eight months of hangboarding finally paid off.", 167, 41, 6, 36),
		post("p9", "u10", "", "Digging through a storage unit of 90s promos. Found three white labels nobody has catalogued.", 93, 27, 12, 48),
		post("p10", "u11", "g6", "Tomato update: the balcony jungle has reached the railing. Send trellis ideas.", 121, 54, 8, 60),
		post("p11", "u12", "g1", "Benchmarked five ways to decode JSON streams in Go. The boring answer won again.", 189, 36, 29, 72),
		post("p12", "u6", "g1", "TIL you can pprof a single test run. Where has this been all my life.", 64, 11, 4, 96),
	}

	comment := func(id, postId, authorId, content string, likes int, hoursAgo int) model.Comment {
		return model.Comment{
			Id:         id,
			PostId:     postId,
			Content:    content,
			Author:     byId[authorId],
			LikesCount: likes,
			CreatedAt:  now.Add(-time.Duration(hoursAgo) * time.Hour),
		}
	}

	comments := map[string][]model.Comment{
		"p1": {
			comment("c1", "p1", "u7", "Link? I want to see the 14kb.", 12, 1),
			comment("c2", "p1", "u6", "The web was always fast. We made it slow.", 30, 1),
		},
		"p2": {
			comment("c3", "p2", "u12", "What partition key did you settle on?", 8, 4),
			comment("c4", "p2", "u6", "Saving this for our next storage argument.", 15, 3),
		},
		"p4": {
			comment("c5", "p4", "u3", "Estate sales are the last good marketplace.", 22, 10),
		},
		"p5": {
			comment("c6", "p5", "u11", "Tried this tonight. Family silent for a full minute.", 41, 15),
			comment("c7", "p5", "u2", "Carb loading counts as training, right?", 19, 14),
			comment("c8", "p5", "u10", "Method or it didn't happen.", 7, 13),
		},
		"p10": {
			comment("c9", "p10", "u5", "Bamboo and jute twine, nothing fancier.", 9, 50),
		},
	}

	featured := []model.Payload{
		json.RawMessage(`{"kind":"spotlight","title":"Community spotlight: Film Photography Club","ref":"g3"}`),
		json.RawMessage(`{"kind":"editorial","title":"Five feeds worth following this month","refs":["u3","u5","u8"]}`),
	}

	gallery := []model.Payload{
		json.RawMessage(`{"id":"m1","type":"image","url":"https://img.orbit.test/g/ridge.jpg","caption":"Ridge loop at dawn"}`),
		json.RawMessage(`{"id":"m2","type":"image","url":"https://img.orbit.test/g/darkroom.jpg","caption":"Workshop contact sheets"}`),
		json.RawMessage(`{"id":"m3","type":"video","url":"https://img.orbit.test/g/pasta.mp4","caption":"Pasta live replay"}`),
	}

	activity := []model.ActivityLog{
		{Id: "al1", Type: "like", ActorId: "u1", TargetId: "p4", CreatedAt: now.Add(-1 * time.Hour)},
		{Id: "al2", Type: "follow", ActorId: "u9", TargetId: "u3", CreatedAt: now.Add(-3 * time.Hour)},
		{Id: "al3", Type: "join", ActorId: "u12", TargetId: "g1", CreatedAt: now.Add(-26 * time.Hour)},
		{Id: "al4", Type: "comment", ActorId: "u5", TargetId: "p10", CreatedAt: now.Add(-50 * time.Hour)},
	}

	metrics := json.RawMessage(`{"dailyActiveUsers":412,"postsToday":57,"topCategory":"technology"}`)

	topics := []model.TrendingTopic{
		{Id: "t1", Topic: "#golang", Category: "technology", PostsCount: 240},
		{Id: "t2", Topic: "#filmisnotdead", Category: "art", PostsCount: 185},
		{Id: "t3", Topic: "#trailrunning", Category: "sports", PostsCount: 142},
		{Id: "t4", Topic: "#carbonara", Category: "food", PostsCount: 97},
		{Id: "t5", Topic: "#balconygarden", Category: "lifestyle", PostsCount: 61},
	}

	return Data{
		Users:             users,
		Groups:            groups,
		Events:            events,
		Posts:             posts,
		Comments:          comments,
		FeaturedContent:   featured,
		MediaGallery:      gallery,
		ActivityLogs:      activity,
		EngagementMetrics: metrics,
		TrendingTopics:    topics,
	}
}
