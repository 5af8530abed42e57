package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/oubasys/portfolio/internal/models"
)

// ErrInvalid marks client-side validation failures. No request is sent when
// validation fails.
var ErrInvalid = errors.New("invalid input")

// ConfirmFunc guards destructive operations. Returning false cancels the
// operation without any network call.
type ConfirmFunc func() bool

// SuggestedSkillCategories mirrors the category picker in the admin editor.
var SuggestedSkillCategories = []string{"Développement", "Web", "Data", "Systèmes", "Other"}

// SkillIcons is the icon enumeration the editor offers.
var SkillIcons = []string{models.IconCode, models.IconGlobe, models.IconDatabase, models.IconServer}

// Editor bundles the admin mutation flows. Every mutation validates locally
// first, then invalidates the matching Store key exactly once on success.
type Editor struct {
	c     *Client
	store *Store
}

func NewEditor(c *Client, store *Store) *Editor {
	return &Editor{c: c, store: store}
}

// Profile

func (e *Editor) SaveProfile(ctx context.Context, p *models.Profile) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if err := e.c.post(ctx, "/profile", p, p); err != nil {
		return err
	}
	e.store.Invalidate(keyProfile)
	return nil
}

// Upload is a file attached to a profile save.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// SaveProfileWithFiles sends one multipart submission carrying every text
// field, the social links as social_links[name] keys, and the attached
// files. The backend treats it as a wholesale replace, same as SaveProfile.
func (e *Editor) SaveProfileWithFiles(ctx context.Context, p *models.Profile, heroImage, cv *Upload) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":       p.Name,
		"title":      p.Title,
		"subtitle":   p.Subtitle,
		"email":      p.Email,
		"location":   p.Location,
		"about_text": p.AboutText,
		"hero_image": p.HeroImage,
		"cv_url":     p.CVURL,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	for name, url := range p.SocialLinks {
		v, _ := url.(string)
		if err := w.WriteField(fmt.Sprintf("social_links[%s]", name), v); err != nil {
			return err
		}
	}

	attach := func(field string, up *Upload) error {
		if up == nil {
			return nil
		}
		fw, err := w.CreateFormFile(field, up.Filename)
		if err != nil {
			return err
		}
		_, err = io.Copy(fw, up.Reader)
		return err
	}
	if err := attach("hero_image", heroImage); err != nil {
		return err
	}
	if err := attach("cv", cv); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.c.base+"/profile", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := e.c.send(req, p); err != nil {
		return err
	}
	e.store.Invalidate(keyProfile)
	return nil
}

// Skills

func (e *Editor) CreateSkill(ctx context.Context, sk *models.Skill) error {
	if sk.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if err := e.c.post(ctx, "/skills", sk, sk); err != nil {
		return err
	}
	e.store.Invalidate(keySkills)
	return nil
}

func (e *Editor) DeleteSkill(ctx context.Context, id uint, confirm ConfirmFunc) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := e.c.delete(ctx, fmt.Sprintf("/skills/%d", id)); err != nil {
		return err
	}
	e.store.Invalidate(keySkills)
	return nil
}

// Experiences

func validateExperience(ex *models.Experience) error {
	switch {
	case ex.Role == "":
		return fmt.Errorf("%w: role is required", ErrInvalid)
	case ex.Company == "":
		return fmt.Errorf("%w: company is required", ErrInvalid)
	case ex.Period == "":
		return fmt.Errorf("%w: period is required", ErrInvalid)
	}
	return nil
}

func (e *Editor) CreateExperience(ctx context.Context, ex *models.Experience) error {
	if err := validateExperience(ex); err != nil {
		return err
	}
	if err := e.c.post(ctx, "/experiences", ex, ex); err != nil {
		return err
	}
	e.store.Invalidate(keyExperiences)
	return nil
}

func (e *Editor) UpdateExperience(ctx context.Context, ex *models.Experience) error {
	if err := validateExperience(ex); err != nil {
		return err
	}
	if err := e.c.put(ctx, fmt.Sprintf("/experiences/%d", ex.ID), ex, ex); err != nil {
		return err
	}
	e.store.Invalidate(keyExperiences)
	return nil
}

func (e *Editor) DeleteExperience(ctx context.Context, id uint, confirm ConfirmFunc) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := e.c.delete(ctx, fmt.Sprintf("/experiences/%d", id)); err != nil {
		return err
	}
	e.store.Invalidate(keyExperiences)
	return nil
}

// Education rows ride the experiences resource with a fixed type tag. Degree
// maps to role and school to company.

func educationToExperience(ed *EducationEntry) (*models.Experience, error) {
	switch {
	case ed.Degree == "":
		return nil, fmt.Errorf("%w: degree is required", ErrInvalid)
	case ed.School == "":
		return nil, fmt.Errorf("%w: school is required", ErrInvalid)
	case ed.Period == "":
		return nil, fmt.Errorf("%w: period is required", ErrInvalid)
	}
	return &models.Experience{
		ID:          ed.ID,
		Role:        ed.Degree,
		Company:     ed.School,
		Location:    ed.Location,
		Period:      ed.Period,
		Type:        models.TypeEducation,
		Description: ed.Description,
	}, nil
}

func (e *Editor) CreateEducation(ctx context.Context, ed *EducationEntry) error {
	ex, err := educationToExperience(ed)
	if err != nil {
		return err
	}
	if err := e.c.post(ctx, "/experiences", ex, ex); err != nil {
		return err
	}
	ed.ID = ex.ID
	e.store.Invalidate(keyExperiences)
	return nil
}

func (e *Editor) UpdateEducation(ctx context.Context, ed *EducationEntry) error {
	ex, err := educationToExperience(ed)
	if err != nil {
		return err
	}
	if err := e.c.put(ctx, fmt.Sprintf("/experiences/%d", ex.ID), ex, ex); err != nil {
		return err
	}
	e.store.Invalidate(keyExperiences)
	return nil
}

// Projects

func validateProject(p *models.Project) error {
	switch {
	case p.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalid)
	case p.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalid)
	}
	return nil
}

func (e *Editor) CreateProject(ctx context.Context, p *models.Project) error {
	if err := validateProject(p); err != nil {
		return err
	}
	if err := e.c.post(ctx, "/projects", p, p); err != nil {
		return err
	}
	e.store.Invalidate(keyProjects)
	return nil
}

func (e *Editor) UpdateProject(ctx context.Context, p *models.Project) error {
	if err := validateProject(p); err != nil {
		return err
	}
	if err := e.c.put(ctx, fmt.Sprintf("/projects/%d", p.ID), p, p); err != nil {
		return err
	}
	e.store.Invalidate(keyProjects)
	return nil
}

func (e *Editor) DeleteProject(ctx context.Context, id uint, confirm ConfirmFunc) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := e.c.delete(ctx, fmt.Sprintf("/projects/%d", id)); err != nil {
		return err
	}
	e.store.Invalidate(keyProjects)
	return nil
}

// Reviews

// AllReviews lists every testimonial including unpublished ones. Admin only,
// never cached.
func (e *Editor) AllReviews(ctx context.Context) ([]models.Review, error) {
	var rows []models.Review
	if err := e.c.get(ctx, "/admin/reviews", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TogglePublishReview flips visibility through the dedicated publish
// endpoint rather than a generic update.
func (e *Editor) TogglePublishReview(ctx context.Context, id uint) (*models.Review, error) {
	var rv models.Review
	if err := e.c.patch(ctx, fmt.Sprintf("/avis/%d/publish", id), nil, &rv); err != nil {
		return nil, err
	}
	e.store.Invalidate(keyReviews)
	return &rv, nil
}

func (e *Editor) DeleteReview(ctx context.Context, id uint, confirm ConfirmFunc) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := e.c.delete(ctx, fmt.Sprintf("/reviews/%d", id)); err != nil {
		return err
	}
	e.store.Invalidate(keyReviews)
	return nil
}

// SubmitReview is the public feedback form: no auth, created unpublished.
func (e *Editor) SubmitReview(ctx context.Context, rv *models.Review) error {
	switch {
	case rv.Author == "":
		return fmt.Errorf("%w: author is required", ErrInvalid)
	case rv.Content == "":
		return fmt.Errorf("%w: content is required", ErrInvalid)
	}
	return e.c.post(ctx, "/reviews", rv, rv)
}

// Assistant knowledge & settings

func validateKnowledge(k *models.KnowledgeItem) error {
	switch {
	case k.Question == "":
		return fmt.Errorf("%w: question is required", ErrInvalid)
	case k.Answer == "":
		return fmt.Errorf("%w: answer is required", ErrInvalid)
	}
	return nil
}

func (e *Editor) Knowledge(ctx context.Context) ([]models.KnowledgeItem, error) {
	var rows []models.KnowledgeItem
	if err := e.c.get(ctx, "/assistant-knowledge", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (e *Editor) CreateKnowledge(ctx context.Context, k *models.KnowledgeItem) error {
	if err := validateKnowledge(k); err != nil {
		return err
	}
	return e.c.post(ctx, "/assistant-knowledge", k, k)
}

func (e *Editor) UpdateKnowledge(ctx context.Context, k *models.KnowledgeItem) error {
	if err := validateKnowledge(k); err != nil {
		return err
	}
	return e.c.put(ctx, fmt.Sprintf("/assistant-knowledge/%d", k.ID), k, k)
}

func (e *Editor) DeleteKnowledge(ctx context.Context, id uint, confirm ConfirmFunc) error {
	if confirm != nil && !confirm() {
		return nil
	}
	return e.c.delete(ctx, fmt.Sprintf("/assistant-knowledge/%d", id))
}

func (e *Editor) AssistantSettings(ctx context.Context) (map[string]string, error) {
	out := map[string]string{}
	if err := e.c.get(ctx, "/assistant-settings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Editor) SetAssistantSetting(ctx context.Context, key, value string) error {
	if !models.KnownSettingKey(key) {
		return fmt.Errorf("%w: unknown setting %q", ErrInvalid, key)
	}
	return e.c.put(ctx, "/assistant-settings/"+key, map[string]string{"value": value}, nil)
}

// AI sessions

func (e *Editor) AISessions(ctx context.Context) ([]models.ChatSession, error) {
	var rows []models.ChatSession
	if err := e.c.get(ctx, "/ai-sessions", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (e *Editor) AISession(ctx context.Context, id string) (*models.ChatSession, error) {
	var sess models.ChatSession
	if err := e.c.get(ctx, "/ai-sessions/"+id, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (e *Editor) DeleteAISession(ctx context.Context, id string, confirm ConfirmFunc) error {
	if confirm != nil && !confirm() {
		return nil
	}
	return e.c.delete(ctx, "/ai-sessions/"+id)
}
