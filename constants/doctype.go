package constants

// DocumentType identifies the fiscal document class. Values are the display
// strings the documents themselves use, so they flow into reports unchanged.
type DocumentType string

const (
	DocTypeNFE     DocumentType = "NF-e"
	DocTypeNFSE    DocumentType = "NFS-e"
	DocTypeUnknown DocumentType = "Desconhecido"
)

// DocumentTypes holds the allowed values for the document_type field.
var DocumentTypes = []string{string(DocTypeNFE), string(DocTypeNFSE), string(DocTypeUnknown)}
