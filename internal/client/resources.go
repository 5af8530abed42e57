package client

import (
	"context"
	"sort"

	"github.com/oubasys/portfolio/internal/models"
)

// Cache keys, one per backend resource.
const (
	keyProfile     = "profile"
	keyProjects    = "projects"
	keySkills      = "skills"
	keyExperiences = "experiences"
	keyReviews     = "reviews"
)

// SkillCategory is one grouped block of the skills section.
type SkillCategory struct {
	Title  string         `json:"title"`
	Icon   string         `json:"icon"`
	Skills []models.Skill `json:"skills"`
}

// EducationEntry is an education-tagged experience row reshaped for display.
type EducationEntry struct {
	ID          uint   `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Location    string `json:"location"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Store is the typed, cached read layer over the API. Each resource is
// fetched at most once until a mutation invalidates it.
type Store struct {
	c     *Client
	cache *queryCache
}

func NewStore(c *Client) *Store {
	return &Store{c: c, cache: newQueryCache()}
}

// Invalidate drops the cached value for one resource key.
func (s *Store) Invalidate(key string) { s.cache.Invalidate(key) }

func (s *Store) Profile(ctx context.Context) (*models.Profile, error) {
	if s.c.provider == ProviderStatic {
		p := fallbackProfile
		return &p, nil
	}
	if v, ok := s.cache.get(keyProfile); ok {
		return v.(*models.Profile), nil
	}
	var p models.Profile
	if err := s.c.get(ctx, "/profile", &p); err != nil {
		return nil, err
	}
	s.cache.set(keyProfile, &p)
	return &p, nil
}

func (s *Store) Projects(ctx context.Context) ([]models.Project, error) {
	if s.c.provider == ProviderStatic {
		return append([]models.Project(nil), fallbackProjects...), nil
	}
	if v, ok := s.cache.get(keyProjects); ok {
		return v.([]models.Project), nil
	}
	var rows []models.Project
	if err := s.c.get(ctx, "/projects", &rows); err != nil {
		return nil, err
	}
	s.cache.set(keyProjects, rows)
	return rows, nil
}

func (s *Store) Skills(ctx context.Context) ([]models.Skill, error) {
	if s.c.provider == ProviderStatic {
		return append([]models.Skill(nil), fallbackSkills...), nil
	}
	if v, ok := s.cache.get(keySkills); ok {
		return v.([]models.Skill), nil
	}
	var rows []models.Skill
	if err := s.c.get(ctx, "/skills", &rows); err != nil {
		return nil, err
	}
	s.cache.set(keySkills, rows)
	return rows, nil
}

// SkillCategories groups skills by category in ascending order with stable
// ties. Each category takes its icon from its first member; a blank category
// lands in "Other".
func (s *Store) SkillCategories(ctx context.Context) ([]SkillCategory, error) {
	rows, err := s.Skills(ctx)
	if err != nil {
		return nil, err
	}
	return GroupSkills(rows), nil
}

// GroupSkills is the pure grouping step behind SkillCategories.
func GroupSkills(rows []models.Skill) []SkillCategory {
	sorted := append([]models.Skill(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	var cats []SkillCategory
	index := map[string]int{}
	for _, sk := range sorted {
		title := sk.Category
		if title == "" {
			title = "Other"
		}
		i, ok := index[title]
		if !ok {
			icon := sk.Icon
			if icon == "" {
				icon = models.IconCode
			}
			index[title] = len(cats)
			cats = append(cats, SkillCategory{Title: title, Icon: icon})
			i = index[title]
		}
		cats[i].Skills = append(cats[i].Skills, sk)
	}
	return cats
}

// Experiences returns professional entries only; education-tagged rows go to
// Education. Together the two cover every row exactly once.
func (s *Store) Experiences(ctx context.Context) ([]models.Experience, error) {
	rows, err := s.allExperiences(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Experience
	for _, e := range rows {
		if !e.IsEducation() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) Education(ctx context.Context) ([]EducationEntry, error) {
	rows, err := s.allExperiences(ctx)
	if err != nil {
		return nil, err
	}
	var out []EducationEntry
	for _, e := range rows {
		if e.IsEducation() {
			out = append(out, EducationEntry{
				ID:          e.ID,
				Degree:      e.Role,
				School:      e.Company,
				Location:    e.Location,
				Period:      e.Period,
				Description: e.Description,
			})
		}
	}
	return out, nil
}

func (s *Store) allExperiences(ctx context.Context) ([]models.Experience, error) {
	if s.c.provider == ProviderStatic {
		return append([]models.Experience(nil), fallbackExperiences...), nil
	}
	if v, ok := s.cache.get(keyExperiences); ok {
		return v.([]models.Experience), nil
	}
	var rows []models.Experience
	if err := s.c.get(ctx, "/experiences", &rows); err != nil {
		return nil, err
	}
	s.cache.set(keyExperiences, rows)
	return rows, nil
}

// ApprovedReviews returns the published testimonials.
func (s *Store) ApprovedReviews(ctx context.Context) ([]models.Review, error) {
	if s.c.provider == ProviderStatic {
		return nil, nil
	}
	if v, ok := s.cache.get(keyReviews); ok {
		return v.([]models.Review), nil
	}
	var rows []models.Review
	if err := s.c.get(ctx, "/reviews", &rows); err != nil {
		return nil, err
	}
	s.cache.set(keyReviews, rows)
	return rows, nil
}
