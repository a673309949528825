package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/fiscaldata/nf-extractor/constants"
)

var (
	nfseMarkers = []string{
		"NFS-E", "NOTA FISCAL DE SERVIÇO", "NOTA FISCAL DE SERVIÇOS",
		"NOTA DE SERVIÇO", "NFSE", "PRESTADOR DE SERVIÇO",
	}
	nfeMarkers = []string{
		"NF-E", "NOTA FISCAL ELETRÔNICA", "NOTA FISCAL ELETRONICA",
		"DANFE", "NFE",
	}
)

// DetectDocumentType classifies the text as a service invoice (NFS-e), a
// goods invoice (NF-e) or unknown. Service markers are checked first since
// service layouts routinely mention the NF-e standard in footnotes.
func DetectDocumentType(text string) constants.DocumentType {
	upper := strings.ToUpper(text)
	for _, m := range nfseMarkers {
		if strings.Contains(upper, m) {
			return constants.DocTypeNFSE
		}
	}
	for _, m := range nfeMarkers {
		if strings.Contains(upper, m) {
			return constants.DocTypeNFE
		}
	}
	return constants.DocTypeUnknown
}

// IsTextBased reports whether the first page carries enough embedded text
// to skip rasterization. Empty or near-empty pages classify as scanned.
func (e *Engine) IsTextBased(firstPage string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(firstPage)) >= e.minTextLength
}
