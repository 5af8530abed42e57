package handlers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/services"
	"github.com/oubasys/portfolio/internal/storage"
	"github.com/oubasys/portfolio/internal/utils"
	"gorm.io/datatypes"
)

type ProfileHandler struct {
	svc      services.ProfileService
	uploader storage.Uploader
}

func NewProfileHandler(svc services.ProfileService, uploader storage.Uploader) *ProfileHandler {
	return &ProfileHandler{svc: svc, uploader: uploader}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type saveProfileRequest struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	Email       string            `json:"email"`
	Location    string            `json:"location"`
	AboutText   string            `json:"about_text"`
	HeroImage   string            `json:"hero_image"`
	CVURL       string            `json:"cv_url"`
	SocialLinks map[string]string `json:"social_links"`
}

// Save replaces the profile wholesale. The admin dashboard sends either plain
// JSON or, when a new hero image or CV is attached, a single multipart
// submission carrying ALL text fields plus the file, with nested social links
// flattened as social_links[name] keys.
func (h *ProfileHandler) Save(c *gin.Context) {
	const op = "ProfileHandler.Save"

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.saveMultipart(c)
		return
	}

	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}

	p := req.toModel()
	if err := h.svc.Save(c.Request.Context(), p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

var socialLinkKey = regexp.MustCompile(`^social_links\[(.+)\]$`)

func (h *ProfileHandler) saveMultipart(c *gin.Context) {
	const op = "ProfileHandler.Save"

	form, err := c.MultipartForm()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid multipart form", err))
		return
	}

	value := func(key string) string {
		if vs := form.Value[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	req := saveProfileRequest{
		Name:        value("name"),
		Title:       value("title"),
		Subtitle:    value("subtitle"),
		Email:       value("email"),
		Location:    value("location"),
		AboutText:   value("about_text"),
		HeroImage:   value("hero_image"),
		CVURL:       value("cv_url"),
		SocialLinks: map[string]string{},
	}
	for key, vs := range form.Value {
		if m := socialLinkKey.FindStringSubmatch(key); m != nil && len(vs) > 0 {
			req.SocialLinks[m[1]] = vs[0]
		}
	}

	if fhs := form.File["hero_image"]; len(fhs) > 0 {
		url, err := h.upload(c, "hero", fhs[0])
		if err != nil {
			writeError(c, err)
			return
		}
		req.HeroImage = url
	}
	if fhs := form.File["cv"]; len(fhs) > 0 {
		url, err := h.upload(c, "cv", fhs[0])
		if err != nil {
			writeError(c, err)
			return
		}
		req.CVURL = url
	}

	p := req.toModel()
	if err := h.svc.Save(c.Request.Context(), p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) upload(c *gin.Context, prefix string, fh *multipart.FileHeader) (string, error) {
	const op = "ProfileHandler.Save"

	if h.uploader == nil {
		return "", utils.E(utils.CodeUnavailable, op, "file uploads are not configured", nil)
	}

	file, err := fh.Open()
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to open upload", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	objectName := prefix + "/" + uuid.NewString() + ext

	contentType := "application/octet-stream"
	switch ext {
	case ".png":
		contentType = "image/png"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".webp":
		contentType = "image/webp"
	case ".pdf":
		contentType = "application/pdf"
	}

	url, err := h.uploader.Upload(c.Request.Context(), objectName, contentType, file)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to store upload", err)
	}
	return url, nil
}

func (r saveProfileRequest) toModel() *models.Profile {
	links := datatypes.JSONMap{}
	for k, v := range r.SocialLinks {
		links[k] = v
	}
	return &models.Profile{
		Name:        r.Name,
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Email:       r.Email,
		Location:    r.Location,
		AboutText:   r.AboutText,
		HeroImage:   r.HeroImage,
		CVURL:       r.CVURL,
		SocialLinks: links,
		UpdatedAt:   time.Now().UTC(),
	}
}
