// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"aulait/internal/imaging"
	"aulait/internal/storage"
)

// maxUploadSize caps media uploads at 32 MiB, enough for hero videos.
const maxUploadSize = 32 << 20

// allowedMediaTypes are the content types the editor may upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"image/x-icon":    true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

// Media serves admin media uploads, backed by S3-compatible storage.
// When storage is not configured every endpoint answers 501 so the
// editor can fall back to pasting external URLs.
type Media struct {
	storage *storage.Client
}

// NewMedia creates the media handler group. storage may be nil.
func NewMedia(sc *storage.Client) *Media {
	return &Media{storage: sc}
}

// Upload accepts a multipart file and stores it under a generated key,
// answering with the public URL to embed in content fields.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusNotImplemented, "Media storage is not configured", "")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "File too large or malformed upload", "")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "File is required", "")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("Unsupported media type: %s", contentType), "")
		return
	}

	key := mediaKey(header.Filename)
	url, err := h.storage.Upload(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		slog.Error("media upload failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to upload file", "")
		return
	}

	result := map[string]any{"url": url, "key": key}

	// Resizable photos additionally get responsive variants. Variant
	// failures never fail the upload; the original is already stored.
	if imaging.Resizable(contentType) {
		if variants := h.uploadVariants(r, file, key); len(variants) > 0 {
			result["variants"] = variants
		}
	}

	slog.Info("media uploaded", "key", key, "size", header.Size)
	respondData(w, result)
}

// uploadVariants generates responsive breakpoint variants of an already
// uploaded photo and stores them next to the original.
func (h *Media) uploadVariants(r *http.Request, file io.ReadSeeker, key string) map[string]string {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	original, err := io.ReadAll(file)
	if err != nil {
		return nil
	}

	processed, err := imaging.GenerateVariants(original, nil)
	if err != nil {
		slog.Warn("variant generation failed", "key", key, "error", err)
		return nil
	}

	base := strings.TrimSuffix(key, filepath.Ext(key))
	urls := make(map[string]string, len(processed))
	for _, p := range processed {
		variantKey := fmt.Sprintf("%s-%s.jpg", base, p.Name)
		url, err := h.storage.Upload(r.Context(), variantKey, p.ContentType,
			bytes.NewReader(p.Data), int64(len(p.Data)))
		if err != nil {
			slog.Warn("variant upload failed", "key", variantKey, "error", err)
			continue
		}
		urls[p.Name] = url
	}
	return urls
}

// Delete removes an uploaded file by its public URL.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusNotImplemented, "Media storage is not configured", "")
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URL == "" {
		respondError(w, http.StatusBadRequest, "File url is required", "")
		return
	}

	key, ok := h.storage.ExtractKey(body.URL)
	if !ok {
		respondError(w, http.StatusBadRequest, "URL does not belong to media storage", "")
		return
	}
	if err := h.storage.Delete(r.Context(), key); err != nil {
		slog.Error("media delete failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete file", "")
		return
	}

	respondData(w, map[string]string{"key": key})
}

// mediaKey builds an object key from the upload date, a fresh id, and
// the original file extension.
func mediaKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("media/%s/%s%s",
		time.Now().UTC().Format("2006/01"), uuid.NewString(), ext)
}
