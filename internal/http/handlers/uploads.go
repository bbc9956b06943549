package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"video/mp4":  {},
}

type uploadedFile struct {
	ID           string `json:"id"`
	OriginalName string `json:"originalName"`
	Filename     string `json:"filename"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
	Path         string `json:"path"`
}

type uploadResponse struct {
	Success bool         `json:"success"`
	File    uploadedFile `json:"file"`
}

// UploadMedia accepts one multipart file under the "media" field and persists
// it for later generation requests.
func (a *App) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentCredential(r); !ok {
		a.error(w, http.StatusUnauthorized, "API key is required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUploadBytes)
	file, header, err := r.FormFile("media")
	if err != nil {
		if isTooLarge(err) {
			a.error(w, http.StatusBadRequest, fmt.Sprintf("File too large. Maximum size is %dMB.", a.MaxUploadBytes/(1024*1024)))
			return
		}
		a.error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if _, ok := allowedUploadTypes[mimeType]; !ok {
		a.error(w, http.StatusBadRequest, "Invalid file type. Only JPG, PNG, GIF and MP4 files are allowed.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			a.error(w, http.StatusBadRequest, fmt.Sprintf("File too large. Maximum size is %dMB.", a.MaxUploadBytes/(1024*1024)))
			return
		}
		a.Logger.Error().Err(err).Msg("upload read failed")
		a.error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	filename := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Base(header.Filename))
	key, err := a.Uploads.Write(r.Context(), filename, data)
	if err != nil {
		a.Logger.Error().Err(err).Str("filename", filename).Msg("upload write failed")
		a.error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	a.json(w, http.StatusOK, uploadResponse{
		Success: true,
		File: uploadedFile{
			ID:           uuid.NewString(),
			OriginalName: header.Filename,
			Filename:     key,
			Size:         int64(len(data)),
			MimeType:     mimeType,
			Path:         a.Uploads.Path(key),
		},
	})
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
