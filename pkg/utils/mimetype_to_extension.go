package utils

import "strings"

// mimeTypeToExtension maps the MIME types the library accepts to their
// typical file extensions. Audio and images dominate; the rest covers
// attachments linked from blog posts.
var mimeTypeToExtension = map[string]string{
	"audio/aac":                ".aac",
	"audio/flac":               ".flac",
	"audio/mpeg":               ".mp3",
	"audio/ogg":                ".ogg",
	"audio/wav":                ".wav",
	"audio/webm":               ".webm",
	"image/bmp":                ".bmp",
	"image/gif":                ".gif",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"image/webp":               ".webp",
	"application/epub+zip":     ".epub",
	"application/json":         ".json",
	"application/pdf":          ".pdf",
	"application/zip":          ".zip",
	"application/octet-stream": ".bin",
	"text/csv":                 ".csv",
	"text/html":                ".html",
	"text/markdown":            ".md",
	"text/plain":               ".txt",
	"video/mp4":                ".mp4",
	"video/webm":               ".webm",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "text/plain; charset=utf-8")
	cleanedMimeType := strings.Split(mimeType, ";")[0]
	if ext, ok := mimeTypeToExtension[strings.TrimSpace(cleanedMimeType)]; ok {
		return ext
	}

	return ".bin"
}
