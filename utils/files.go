package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadPath returns the root upload directory from the environment.
func UploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

// GenerateUniqueFilename returns a filename that does not collide with an
// existing file in dir, appending a numeric suffix when needed.
func GenerateUniqueFilename(dir, filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	candidate := base
	for i := 1; ; i++ {
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
}

// DocumentStoredName builds the stored filename for an uploaded document,
// e.g. PHASE2_PAYMENT_SLIP-9f1c...-b2.pdf.
func DocumentStoredName(documentType, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".pdf"
	}
	return fmt.Sprintf("%s-%s%s", documentType, uuid.NewString(), ext)
}

// CanonicalMime resolves the effective content type of an upload from its
// declared type or, failing that, the file extension. Returns false when
// neither is allowed.
func CanonicalMime(declared, filename string, allowedMimeToExt, extToMime map[string]string) (string, bool) {
	declared = strings.TrimSpace(strings.ToLower(strings.Split(declared, ";")[0]))
	if _, ok := allowedMimeToExt[declared]; ok {
		return declared, true
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if mime, ok := extToMime[ext]; ok {
		return mime, true
	}
	return "", false
}
