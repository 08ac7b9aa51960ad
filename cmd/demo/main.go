package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/orbitsocial/orbit-core/model"
	"github.com/orbitsocial/orbit-core/seed"
	"github.com/orbitsocial/orbit-core/storage"
	"github.com/orbitsocial/orbit-core/store"
	"github.com/orbitsocial/orbit-core/utils/dotenv"
	Logger "github.com/orbitsocial/orbit-core/utils/log"
	"github.com/orbitsocial/orbit-core/views"
)

var (
	dataDir = flag.String("data_dir", "", "directory for persisted slots, overrides ORBIT_DATA_DIR")
	viewer  = flag.String("viewer", "u1", "user id to compute viewer-relative views for")
)

func main() {
	flag.Parse()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic("fail to load env : " + err.Error())
	}

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("ORBIT_DATA_DIR")
	}

	var kv storage.KV
	if dir == "" {
		Logger.LogV2.Infof("no data dir configured, running without durable storage")
		kv = storage.NewMemoryKV()
	} else {
		fileKV, err := storage.NewJSONFileKV(dir)
		if err != nil {
			panic("fail to open storage : " + err.Error())
		}
		kv = fileKV
	}

	entities := store.NewEntityStore(kv)
	connections := store.NewConnectionsStore(kv)
	if entities.InitializeIfNeeded(seed.Demo) {
		Logger.LogV2.Infof("seeded demo data")
	}

	engine := views.NewEngine(entities, connections)
	now := time.Now()

	fmt.Println("== trending ==")
	for i, p := range engine.TrendingPosts() {
		fmt.Printf("%d. [%d] %s: %s\n", i+1, p.EngagementScore(), p.Author.DisplayName, oneline(p.Content))
	}

	fmt.Println("\n== upcoming events ==")
	for _, e := range engine.FilterEvents(model.EventFilterUpcoming, now) {
		fmt.Printf("%s  %s (%d attending)\n", e.StartDate.Format("Jan 02 15:04"), e.Title, e.AttendeesCount)
	}

	fmt.Println("\n== recommended for", *viewer, "==")
	for _, u := range engine.RecommendedUsers(*viewer) {
		fmt.Printf("@%s (%s)\n", u.Username, u.DisplayName)
	}
	for _, g := range engine.RecommendedGroups(*viewer) {
		fmt.Printf("%s (%d members)\n", g.Name, g.MembersCount)
	}

	fmt.Println("\n== connections ==")
	fmt.Printf("following %d, followers %d, pending %d\n",
		len(connections.Following()), len(connections.Followers()), len(connections.FollowRequests()))
}

func oneline(s string) string {
	const max = 60
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
