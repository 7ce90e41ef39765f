package security_test

import (
	"bytes"
	"testing"

	"go-portfolio-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

func pdfBytes() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
}

func jpegBytes() []byte {
	return append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x00}, 64)...)
}

func pngBytes() []byte {
	return append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x00}, 64)...)
}

func TestValidateUploadAcceptsResumePDF(t *testing.T) {
	result := security.ValidateUpload(security.RoleResume, "cv.pdf", pdfBytes(), "application/pdf")

	assert.True(t, result.Valid)
	assert.Empty(t, result.Error)
	assert.Equal(t, ".pdf", result.Extension)
}

func TestValidateUploadAcceptsHeadshotImages(t *testing.T) {
	jpeg := security.ValidateUpload(security.RoleHeadshot, "me.jpg", jpegBytes(), "image/jpeg")
	assert.True(t, jpeg.Valid)

	png := security.ValidateUpload(security.RoleHeadshot, "me.png", pngBytes(), "image/png")
	assert.True(t, png.Valid)
}

func TestValidateUploadNormalizesImageJpg(t *testing.T) {
	result := security.ValidateUpload(security.RoleHeadshot, "me.jpg", jpegBytes(), "image/jpg")

	assert.True(t, result.Valid)
	assert.Equal(t, "image/jpeg", result.DetectedMIME)
}

func TestValidateUploadRejectsWrongTypeForRole(t *testing.T) {
	// A JPEG is not a resume, and a PDF is not a headshot
	asResume := security.ValidateUpload(security.RoleResume, "cv.jpg", jpegBytes(), "image/jpeg")
	assert.False(t, asResume.Valid)
	assert.Contains(t, asResume.Error, "not allowed")

	asHeadshot := security.ValidateUpload(security.RoleHeadshot, "me.pdf", pdfBytes(), "application/pdf")
	assert.False(t, asHeadshot.Valid)
}

func TestValidateUploadRejectsTextResume(t *testing.T) {
	result := security.ValidateUpload(security.RoleResume, "cv.txt", []byte("just plain text"), "text/plain")

	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "not allowed")
}

func TestValidateUploadRejectsOversizedFile(t *testing.T) {
	data := bytes.Repeat([]byte{0x41}, security.MaxFileSize+1)

	result := security.ValidateUpload(security.RoleResume, "cv.pdf", data, "application/pdf")

	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "limit")
}

func TestValidateUploadRejectsSpoofedContent(t *testing.T) {
	// Declared as PDF but the bytes are a JPEG
	result := security.ValidateUpload(security.RoleResume, "cv.pdf", jpegBytes(), "application/pdf")

	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "spoofing")
}

func TestValidateUploadRejectsTinyFile(t *testing.T) {
	result := security.ValidateUpload(security.RoleResume, "cv.pdf", []byte{0x25}, "application/pdf")

	assert.False(t, result.Valid)
}
