package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/oubasys/portfolio/internal/models"
)

func editorFixture(t *testing.T, handler http.HandlerFunc) (*Editor, *Store, *int64) {
	t.Helper()
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := New(Config{BaseURL: srv.URL})
	store := NewStore(c)
	return NewEditor(c, store), store, &hits
}

func TestValidationRejectsBeforeNetwork(t *testing.T) {
	editor, _, hits := editorFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	calls := []struct {
		name string
		run  func() error
	}{
		{"skill without name", func() error { return editor.CreateSkill(ctx, &models.Skill{}) }},
		{"experience without role", func() error {
			return editor.CreateExperience(ctx, &models.Experience{Company: "X", Period: "2024"})
		}},
		{"experience without period", func() error {
			return editor.CreateExperience(ctx, &models.Experience{Role: "Dev", Company: "X"})
		}},
		{"education without school", func() error {
			return editor.CreateEducation(ctx, &EducationEntry{Degree: "DUT", Period: "2024"})
		}},
		{"project without description", func() error { return editor.CreateProject(ctx, &models.Project{Title: "App"}) }},
		{"knowledge without answer", func() error {
			return editor.CreateKnowledge(ctx, &models.KnowledgeItem{Question: "stage"})
		}},
		{"profile without name", func() error { return editor.SaveProfile(ctx, &models.Profile{}) }},
	}
	for _, tc := range calls {
		if err := tc.run(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: error = %v, want ErrInvalid", tc.name, err)
		}
	}
	if n := atomic.LoadInt64(hits); n != 0 {
		t.Errorf("validation failures made %d network calls, want 0", n)
	}
}

func TestMutationInvalidatesCacheOnce(t *testing.T) {
	var skillGets int
	editor, store, _ := editorFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/skills":
			skillGets++
			json.NewEncoder(w).Encode([]models.Skill{{ID: 1, Name: "Go"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/skills":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":2,"name":"Gin"}`))
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	// prime the cache
	store.Skills(ctx)
	store.Skills(ctx)
	if skillGets != 1 {
		t.Fatalf("cache priming fetched %d times", skillGets)
	}

	if err := editor.CreateSkill(ctx, &models.Skill{Name: "Gin"}); err != nil {
		t.Fatal(err)
	}

	store.Skills(ctx)
	store.Skills(ctx)
	if skillGets != 2 {
		t.Errorf("skills fetched %d times, want 2 (one refetch after the mutation)", skillGets)
	}
}

func TestFailedMutationLeavesCacheAlone(t *testing.T) {
	var skillGets int
	editor, store, _ := editorFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/skills":
			skillGets++
			json.NewEncoder(w).Encode([]models.Skill{{ID: 1, Name: "Go"}})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"code":"INTERNAL","message":"boom"}`))
		}
	})
	ctx := context.Background()

	store.Skills(ctx)
	if err := editor.CreateSkill(ctx, &models.Skill{Name: "Gin"}); err == nil {
		t.Fatal("expected error from failed create")
	}
	store.Skills(ctx)
	if skillGets != 1 {
		t.Errorf("failed mutation invalidated the cache (fetched %d times, want 1)", skillGets)
	}
}

func TestDeclinedConfirmMakesNoNetworkCall(t *testing.T) {
	editor, _, hits := editorFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	ctx := context.Background()
	decline := func() bool { return false }

	if err := editor.DeleteSkill(ctx, 1, decline); err != nil {
		t.Fatal(err)
	}
	if err := editor.DeleteProject(ctx, 1, decline); err != nil {
		t.Fatal(err)
	}
	if err := editor.DeleteReview(ctx, 1, decline); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt64(hits); n != 0 {
		t.Errorf("declined deletes made %d network calls, want 0", n)
	}
}

func TestTogglePublishHitsDedicatedEndpoint(t *testing.T) {
	var gotMethod, gotPath string
	editor, _, _ := editorFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewEncoder(w).Encode(models.Review{ID: 7, IsPublished: true})
	})

	rv, err := editor.TogglePublishReview(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/api/avis/7/publish" {
		t.Errorf("request = %s %s, want PATCH /api/avis/7/publish", gotMethod, gotPath)
	}
	if !rv.IsPublished {
		t.Error("expected the toggled review back")
	}
}

func TestEducationCreateSetsTypeTag(t *testing.T) {
	var got models.Experience
	editor, _, _ := editorFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		got.ID = 5
		json.NewEncoder(w).Encode(got)
	})

	ed := EducationEntry{Degree: "DUT", School: "EST d'Oujda", Period: "2024 – 2026"}
	if err := editor.CreateEducation(context.Background(), &ed); err != nil {
		t.Fatal(err)
	}
	if got.Type != models.TypeEducation {
		t.Errorf("type = %q, want %q", got.Type, models.TypeEducation)
	}
	if got.Role != "DUT" || got.Company != "EST d'Oujda" {
		t.Errorf("degree/school not mapped: %+v", got)
	}
	if ed.ID != 5 {
		t.Errorf("created id not adopted: %d", ed.ID)
	}
}

func TestProfileMultipartCarriesEverything(t *testing.T) {
	var formValues map[string][]string
	var fileNames []string
	editor, _, _ := editorFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("not multipart: %v", err)
		}
		formValues = r.MultipartForm.Value
		for field := range r.MultipartForm.File {
			fileNames = append(fileNames, field)
		}
		w.Write([]byte(`{}`))
	})

	p := models.Profile{
		Name:      "Oussama Oubaha",
		Title:     "Étudiant en Génie Informatique",
		AboutText: "...",
		SocialLinks: map[string]interface{}{
			"github":   "https://github.com/oubasys",
			"linkedin": "https://linkedin.com/in/oubaha",
		},
	}
	hero := &Upload{Filename: "hero.png", Reader: strings.NewReader("png-bytes")}
	if err := editor.SaveProfileWithFiles(context.Background(), &p, hero, nil); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"name", "title", "about_text", "social_links[github]", "social_links[linkedin]"} {
		if _, ok := formValues[key]; !ok {
			t.Errorf("multipart form missing %q", key)
		}
	}
	if len(fileNames) != 1 || fileNames[0] != "hero_image" {
		t.Errorf("file fields = %v, want [hero_image]", fileNames)
	}
}
