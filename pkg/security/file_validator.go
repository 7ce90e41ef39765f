package security

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSize is the hard cap for a single uploaded file (5 MiB).
const MaxFileSize = 5 * 1024 * 1024

// UploadRole identifies the purpose of an uploaded file part.
type UploadRole string

const (
	RoleResume   UploadRole = "resume"
	RoleHeadshot UploadRole = "headshot"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // File extension derived from the original name
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// Magic byte signatures for the allowed upload types
var magicBytes = map[string][][]byte{
	"application/pdf": {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	"image/jpeg":      {{0xFF, 0xD8, 0xFF}},
	"image/png":       {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
}

// Per-role MIME whitelists. Resumes must be exactly PDF; headshots may be
// JPEG or PNG. application/octet-stream is never accepted.
var allowedMIMEs = map[UploadRole]map[string]bool{
	RoleResume: {
		"application/pdf": true,
	},
	RoleHeadshot: {
		"image/jpeg": true,
		"image/png":  true,
	},
}

// ValidateUpload performs 3-layer validation of an uploaded file part:
// 1. Size cap
// 2. MIME whitelist for the role
// 3. Magic byte verification (content matches the declared type)
func ValidateUpload(role UploadRole, filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{
		Extension:    strings.ToLower(filepath.Ext(filename)),
		DetectedMIME: detectedMIME,
	}

	// Layer 1: size cap
	if int64(len(data)) > MaxFileSize {
		result.Error = fmt.Sprintf("file exceeds the %d MiB limit", MaxFileSize/(1024*1024))
		return result
	}
	if len(data) < 4 {
		result.Error = "file is empty or too small to identify"
		return result
	}

	// Layer 2: MIME whitelist per role
	allowed, ok := allowedMIMEs[role]
	if !ok {
		result.Error = "unknown upload role: " + string(role)
		return result
	}
	// Some browsers declare JPEGs as image/jpg
	if detectedMIME == "image/jpg" {
		detectedMIME = "image/jpeg"
		result.DetectedMIME = detectedMIME
	}
	if !allowed[detectedMIME] {
		result.Error = fmt.Sprintf("type %s not allowed for %s upload", detectedMIME, role)
		return result
	}

	// Layer 3: magic bytes (content must match the declared MIME)
	if !validateMagicBytes(detectedMIME, data) {
		result.Error = "file content does not match its declared type (potential file spoofing detected)"
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(mimeType string, data []byte) bool {
	signatures, ok := magicBytes[mimeType]
	if !ok {
		return false
	}
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
