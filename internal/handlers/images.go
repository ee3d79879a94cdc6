package handlers

import (
	"bytes"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/omytic/storefront/internal/config"
	"github.com/omytic/storefront/internal/storage"
)

// UploadImageHandler runs the upload pipeline: validate the declared
// type and size, downscale oversized images, put the object under a
// generated key and answer with its public URL.
func UploadImageHandler(w http.ResponseWriter, r *http.Request, bucket *storage.Bucket, cfg *config.Config, log *zap.Logger) {
	// Bound the whole request body; the form field itself is checked
	// against the declared size below.
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes+(1<<20))

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := storage.Validate(contentType, header.Size); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	buf, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Normalization is best effort: an image libvips cannot decode is
	// uploaded as-is rather than rejected.
	if scaled, err := storage.Downscale(buf, cfg.MaxImageWidth); err != nil {
		log.Warn("could not downscale upload", zap.String("filename", header.Filename), zap.Error(err))
	} else {
		buf = scaled
	}

	key := storage.NewKey(header.Filename)
	url, err := bucket.Upload(r.Context(), key, contentType, bytes.NewReader(buf))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Görsel başarıyla yüklendi!",
		"url":     url,
	})
}
