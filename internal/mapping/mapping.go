// Package mapping resolves tax IDs to the organizational units that own
// them. The table is a JSON object keyed by CNPJ (formatted or bare) whose
// values carry coligada, filial, and the unit's display name.
package mapping

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// Unmapped marks a document whose tax ID has no table entry.
const Unmapped = "N/A"

// Unit is one organizational assignment.
type Unit struct {
	Coligada string `json:"coligada"`
	Filial   string `json:"filial"`
	Nome     string `json:"nome"`
}

// Mapper holds the CNPJ table. Lookups are read-only and safe for
// concurrent use once loaded.
type Mapper struct {
	units  map[string]Unit
	logger *slog.Logger
}

// New returns an empty mapper; every lookup misses.
func New(logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{units: make(map[string]Unit), logger: logger}
}

// Load reads the JSON table from path, normalizing keys to bare digits. A
// missing or malformed file yields an empty mapper and an error the caller
// may treat as non-fatal; running without a table only costs the
// organizational columns.
func Load(path string, logger *slog.Logger) (*Mapper, error) {
	m := New(logger)
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read mapping table: %w", err)
	}
	var raw map[string]Unit
	if err := json.Unmarshal(data, &raw); err != nil {
		return m, fmt.Errorf("decode mapping table: %w", err)
	}
	for cnpj, u := range raw {
		m.units[fiscal.DigitsOnly(cnpj)] = u
	}
	m.logger.Info("mapping.loaded", "path", path, "entries", len(m.units))
	return m, nil
}

// Lookup returns the unit for a tax ID, reducing formatting to digits first.
func (m *Mapper) Lookup(cnpj string) (Unit, bool) {
	if cnpj == "" {
		return Unit{}, false
	}
	u, ok := m.units[fiscal.DigitsOnly(cnpj)]
	return u, ok
}

// Len reports the number of table entries.
func (m *Mapper) Len() int {
	return len(m.units)
}

// Apply resolves the document's identifying tax ID (recipient first, then
// issuer) and stamps the organizational fields. A mapped display name
// overwrites the extracted recipient name, creating the recipient entity
// when extraction found none. An unmapped ID marks both fields N/A; a
// document with no ID at all is left untouched.
func (m *Mapper) Apply(doc *fiscal.Document) {
	cnpj := doc.IdentifierCNPJ()
	if cnpj == "" {
		m.logger.Warn("mapping.no_cnpj", "file", doc.Filename)
		return
	}

	u, ok := m.Lookup(cnpj)
	if !ok {
		m.logger.Warn("mapping.miss", "cnpj", cnpj)
		doc.Coligada = Unmapped
		doc.Filial = Unmapped
		return
	}

	doc.Coligada = u.Coligada
	doc.Filial = u.Filial
	if u.Nome != "" {
		if doc.Destinatario != nil {
			doc.Destinatario.RazaoSocial = u.Nome
		} else {
			doc.Destinatario = &fiscal.Entity{CNPJ: cnpj, RazaoSocial: u.Nome}
		}
	}
	m.logger.Debug("mapping.applied",
		"cnpj", cnpj, "coligada", u.Coligada, "filial", u.Filial)
}
