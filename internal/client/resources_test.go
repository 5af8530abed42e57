package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oubasys/portfolio/internal/models"
)

// countingServer serves canned JSON per path and counts hits.
func countingServer(t *testing.T, data map[string]any) (*httptest.Server, map[string]*int) {
	t.Helper()
	counts := map[string]*int{}
	for path := range data {
		n := 0
		counts[path] = &n
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := data[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		*counts[r.URL.Path]++
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, counts
}

func TestStoreFetchesOncePerResource(t *testing.T) {
	srv, counts := countingServer(t, map[string]any{
		"/api/skills": []models.Skill{{ID: 1, Name: "Go"}},
	})

	store := NewStore(New(Config{BaseURL: srv.URL}))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Skills(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if n := *counts["/api/skills"]; n != 1 {
		t.Errorf("skills fetched %d times, want 1", n)
	}

	store.Invalidate(keySkills)
	if _, err := store.Skills(ctx); err != nil {
		t.Fatal(err)
	}
	if n := *counts["/api/skills"]; n != 2 {
		t.Errorf("skills fetched %d times after invalidation, want 2", n)
	}
}

func TestGroupSkills(t *testing.T) {
	rows := []models.Skill{
		{ID: 1, Name: "React.js", Category: "Web", Icon: models.IconGlobe, Order: 2},
		{ID: 2, Name: "Go", Category: "Développement", Icon: models.IconCode, Order: 1},
		{ID: 3, Name: "HTML/CSS", Category: "Web", Icon: models.IconServer, Order: 3},
		{ID: 4, Name: "Docker", Category: "", Order: 4},
	}

	cats := GroupSkills(rows)
	if len(cats) != 3 {
		t.Fatalf("got %d categories, want 3", len(cats))
	}

	// lowest order decides category sequence
	if cats[0].Title != "Développement" || cats[1].Title != "Web" || cats[2].Title != "Other" {
		t.Errorf("category order = %q, %q, %q", cats[0].Title, cats[1].Title, cats[2].Title)
	}

	// icon comes from the first member, later members don't override
	if cats[1].Icon != models.IconGlobe {
		t.Errorf("Web icon = %q, want %q", cats[1].Icon, models.IconGlobe)
	}
	if cats[1].Skills[0].Name != "React.js" || cats[1].Skills[1].Name != "HTML/CSS" {
		t.Errorf("Web members out of order: %+v", cats[1].Skills)
	}

	// blank category lands in Other with the default icon
	if cats[2].Icon != models.IconCode {
		t.Errorf("Other icon = %q, want %q", cats[2].Icon, models.IconCode)
	}
}

func TestGroupSkillsStableTies(t *testing.T) {
	rows := []models.Skill{
		{ID: 1, Name: "MySQL", Category: "Data", Order: 5},
		{ID: 2, Name: "NoSQL", Category: "Data", Order: 5},
		{ID: 3, Name: "Big Data", Category: "Data", Order: 5},
	}
	cats := GroupSkills(rows)
	if len(cats) != 1 {
		t.Fatalf("got %d categories, want 1", len(cats))
	}
	want := []string{"MySQL", "NoSQL", "Big Data"}
	for i, sk := range cats[0].Skills {
		if sk.Name != want[i] {
			t.Errorf("member %d = %q, want %q (ties must keep input order)", i, sk.Name, want[i])
		}
	}
}

func TestExperienceEducationPartition(t *testing.T) {
	rows := []models.Experience{
		{ID: 1, Role: "Développeur Web Front-end", Company: "Maktoub-Tech", Type: "Stage"},
		{ID: 2, Role: "DUT", Company: "EST d'Oujda", Type: models.TypeEducation},
		{ID: 3, Role: "Bootcamp", Company: "Campus", Type: models.TypeFormation},
		{ID: 4, Role: "Freelance", Company: "Self", Type: ""},
	}
	srv, _ := countingServer(t, map[string]any{"/api/experiences": rows})

	store := NewStore(New(Config{BaseURL: srv.URL}))
	ctx := context.Background()

	pro, err := store.Experiences(ctx)
	if err != nil {
		t.Fatal(err)
	}
	edu, err := store.Education(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(pro)+len(edu) != len(rows) {
		t.Fatalf("partition not total: %d + %d != %d", len(pro), len(edu), len(rows))
	}
	for _, e := range pro {
		if e.ID == 2 || e.ID == 3 {
			t.Errorf("education row %d leaked into experiences", e.ID)
		}
	}
	if len(edu) != 2 {
		t.Fatalf("got %d education entries, want 2", len(edu))
	}
	if edu[0].Degree != "DUT" || edu[0].School != "EST d'Oujda" {
		t.Errorf("degree/school mapping wrong: %+v", edu[0])
	}
}

func TestStaticProviderServesFallback(t *testing.T) {
	// no server at all: the static provider never touches the network
	store := NewStore(New(Config{BaseURL: "http://127.0.0.1:1", Provider: ProviderStatic}))
	ctx := context.Background()

	p, err := store.Profile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Oussama Oubaha" {
		t.Errorf("fallback profile name = %q", p.Name)
	}

	cats, err := store.SkillCategories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 4 {
		t.Errorf("got %d fallback skill categories, want 4", len(cats))
	}
}
