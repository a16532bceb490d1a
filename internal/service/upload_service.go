package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reborn-nursery/storefront/internal/config"

	"github.com/google/uuid"
)

var allowedUploadScenes = map[string]struct{}{
	"product":     {},
	"hero":        {},
	"gallery":     {},
	"testimonial": {},
	"common":      {},
}

// UploadService stores uploaded images on disk and returns their URLs.
type UploadService struct {
	cfg *config.Config
}

// NewUploadService creates the upload service.
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

func normalizeUploadScene(scene string) string {
	scene = strings.ToLower(strings.TrimSpace(scene))
	if _, ok := allowedUploadScenes[scene]; ok {
		return scene
	}
	return "common"
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}

// SaveFile validates and stores an uploaded file, returning its public path.
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (string, error) {
	if file.Size > s.cfg.Upload.MaxSize {
		return "", NewValidationError(fmt.Sprintf("file exceeds size limit of %d MB", s.cfg.Upload.MaxSize/1024/1024))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.Upload.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.Upload.AllowedExtensions) {
			return "", NewValidationError("file extension is not allowed: " + ext)
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Sniff the real content type from the first bytes.
	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}

	contentType := http.DetectContentType(buffer)
	if len(s.cfg.Upload.AllowedTypes) > 0 {
		allowed := false
		for _, t := range s.cfg.Upload.AllowedTypes {
			if strings.EqualFold(contentType, t) {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", NewValidationError("file type is not allowed: " + contentType)
		}
	}

	scene = normalizeUploadScene(scene)
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	now := time.Now()
	relPath := filepath.Join(scene, now.Format("2006"), now.Format("01"), filename)

	baseDir := strings.TrimSpace(s.cfg.Upload.Dir)
	if baseDir == "" {
		baseDir = "./uploads"
	}
	savePath := filepath.Join(baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + filepath.ToSlash(relPath), nil
}

// DeleteFile removes a previously stored upload by its public path.
func (s *UploadService) DeleteFile(publicPath string) error {
	rel := strings.TrimPrefix(strings.TrimSpace(publicPath), "/uploads/")
	if rel == "" || strings.Contains(rel, "..") {
		return NewValidationError("invalid upload path")
	}
	baseDir := strings.TrimSpace(s.cfg.Upload.Dir)
	if baseDir == "" {
		baseDir = "./uploads"
	}
	target := filepath.Join(baseDir, filepath.FromSlash(rel))
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
