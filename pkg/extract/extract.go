// Package extract pulls plain text out of uploaded documents.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ai-chat-be/internal/apperrors"
)

// SupportedExtensions lists the formats the ingestion pipeline accepts.
var SupportedExtensions = []string{".pdf", ".docx", ".xlsx", ".pptx", ".txt", ".md"}

// Supported reports whether the extension (with leading dot) has a loader.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pdf", ".docx", ".xlsx", ".pptx", ".txt", ".md":
		return true
	}
	return false
}

// ExtractFile reads the file at path and extracts its text content.
func ExtractFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(ext) {
		return "", apperrors.NewUnsupportedFormat(ext)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return ExtractBytes(content, ext)
}

// ExtractBytes extracts text from content based on the given extension.
// ext should include the leading dot (e.g. ".pdf").
func ExtractBytes(content []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDOCX(content)
	case ".xlsx":
		return extractExcel(content)
	case ".pptx":
		return extractPPTX(content)
	case ".txt", ".md":
		return extractPlain(content)
	default:
		return "", apperrors.NewUnsupportedFormat(ext)
	}
}
