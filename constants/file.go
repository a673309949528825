package constants

import "strings"

// FileTypes holds the allowed source formats for the format field in a batch record.
var FileTypes = []string{"PDF", "ZIP"}

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"zip": {},
}

// Magic-byte prefixes used to sniff real content type regardless of extension.
var (
	MagicPDF = []byte("%PDF")
	MagicZIP = []byte{0x50, 0x4B, 0x03, 0x04}
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
