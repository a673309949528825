// Package export renders batch extraction results into the fiscal XLSX
// report consumed by the accounting side.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

const (
	sheetDocuments = "Documentos Fiscais"
	sheetItems     = "Itens e Serviços"

	headerFillColor = "4472C4"
	maxColWidth     = 50
)

// Column layout of the documents sheet. Order is fixed: downstream
// spreadsheets reference these positions.
var documentHeaders = []string{
	"Tipo Documento",
	"Número Documento",
	"Data Emissão",
	"Data Saída/Entrada",
	"Emitente CNPJ/CPF",
	"Emitente Nome/Razão Social",
	"Emitente Endereço",
	"Destinatário CNPJ/CPF",
	"COLIGADA",
	"FILIAL",
	"Destinatário Nome/Razão Social",
	"Destinatário Endereço",
	"Valor Total Documento",
	"Valor Líquido Documento",
	"Valor Total Produtos/Serviços",
	"Valor Frete",
	"Valor Desconto",
	"ICMS",
	"IPI",
	"PIS",
	"COFINS",
	"ISS",
	"IRRF Retido",
	"INSS Retido",
	"PIS Retido",
	"COFINS Retido",
	"CSLL Retida",
	"ISS Retido (Serviço)",
	"Chave Acesso NF-e",
	"Observações Extração",
}

var itemHeaders = []string{
	"Arquivo",
	"Número Documento",
	"Item",
	"Descrição",
	"Quantidade",
	"Valor Unitário",
	"Valor Total",
}

// Reporter writes the two-sheet fiscal report.
type Reporter struct {
	outputDir string
	logger    *slog.Logger
}

func NewReporter(outputDir string, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{outputDir: outputDir, logger: logger}
}

// FromBatch pulls the documents out of a batch aggregate for reporting.
func FromBatch(b *fiscal.BatchResult) []*fiscal.Document {
	if b == nil {
		return nil
	}
	docs := make([]*fiscal.Document, 0, len(b.Results))
	for _, res := range b.Results {
		if res.Document != nil {
			docs = append(docs, res.Document)
		}
	}
	return docs
}

// Render builds the report workbook and returns its bytes. Rows are ordered
// by filename so a report is stable regardless of completion order.
func (r *Reporter) Render(docs []*fiscal.Document) ([]byte, error) {
	if len(docs) == 0 {
		return nil, errors.New("no documents to report")
	}
	start := time.Now()

	ordered := make([]*fiscal.Document, len(docs))
	copy(ordered, docs)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Filename < ordered[j].Filename })

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetDocuments); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetItems); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	writeDocumentsSheet(f, ordered)
	writeItemsSheet(f, ordered)

	style, err := newHeaderStyle(f)
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}
	for _, sheet := range []string{sheetDocuments, sheetItems} {
		if err := formatSheet(f, sheet, style); err != nil {
			return nil, fmt.Errorf("format %s: %w", sheet, err)
		}
	}

	if idx, err := f.GetSheetIndex(sheetDocuments); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	r.logger.Info("export.xlsx.ok",
		"documents", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ReportFilename builds the timestamped report name for the given moment.
func ReportFilename(at time.Time) string {
	return fmt.Sprintf("relatorio_fiscal_%s.xlsx", at.Format("20060102_150405"))
}

// WriteReport renders the report and writes it under the output directory as
// relatorio_fiscal_YYYYMMDD_HHMMSS.xlsx, returning the full path.
func (r *Reporter) WriteReport(docs []*fiscal.Document) (string, error) {
	data, err := r.Render(docs)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("output dir: %w", err)
	}
	path := filepath.Join(r.outputDir, ReportFilename(time.Now()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	r.logger.Info("export.xlsx.written", "path", path)
	return path, nil
}

func writeDocumentsSheet(f *excelize.File, docs []*fiscal.Document) {
	for i, h := range documentHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetDocuments, cell, h)
	}

	for i, d := range docs {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheetDocuments, cell, v)
		}
		money := func(col int, v *float64) {
			if v != nil {
				write(col, *v)
			}
		}

		write(1, string(d.DocumentType))
		write(2, d.Numero)
		write(3, d.DataEmissao)
		write(4, d.DataSaidaEntrada)

		if d.Emitente != nil {
			write(5, fiscal.DigitsOnly(d.Emitente.CNPJ))
			write(6, d.Emitente.RazaoSocial)
			if !d.Emitente.Endereco.Empty() {
				write(7, d.Emitente.Endereco.String())
			}
		}
		if d.Destinatario != nil {
			write(8, fiscal.DigitsOnly(d.Destinatario.CNPJ))
			write(11, d.Destinatario.RazaoSocial)
			if !d.Destinatario.Endereco.Empty() {
				write(12, d.Destinatario.Endereco.String())
			}
		}
		write(9, d.Coligada)
		write(10, d.Filial)

		if v := d.Valores; v != nil {
			money(13, v.ValorTotal)
			money(14, v.ValorLiquido)
			money(15, v.ValorServicos)
			// Column 16 (Valor Frete) is not extracted; kept for layout parity.
			money(17, v.Desconto)
			money(18, v.ICMS)
			money(19, v.IPI)
			money(20, v.PIS)
			money(21, v.COFINS)
			money(22, v.ISS)
			money(23, v.IR)
			money(24, v.INSS)
			money(25, v.PISRetido)
			money(26, v.COFINSRetido)
			money(27, v.CSLLRetida)
			money(28, v.ISSRetido)
		}

		write(29, d.ChaveAcesso)
		write(30, observacao(d))
	}
}

func writeItemsSheet(f *excelize.File, docs []*fiscal.Document) {
	for i, h := range itemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetItems, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheetItems, cell, v)
		}
		if len(d.Itens) == 0 {
			// One reference row so every document shows up on this sheet too.
			write(1, d.Filename)
			write(2, d.Numero)
			row++
			continue
		}
		for n, item := range d.Itens {
			write(1, d.Filename)
			write(2, d.Numero)
			write(3, n+1)
			write(4, item.Descricao)
			if item.Quantidade != nil {
				write(5, *item.Quantidade)
			}
			if item.ValorUnitario != nil {
				write(6, *item.ValorUnitario)
			}
			if item.ValorTotal != nil {
				write(7, *item.ValorTotal)
			}
			row++
		}
	}
}

func observacao(d *fiscal.Document) string {
	if d.ErrorMessage != "" {
		return d.ErrorMessage
	}
	if d.IsScanned {
		return "Documento Escaneado"
	}
	return ""
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
}

// formatSheet styles the header row, fits column widths to content, and pins
// the header with an autofilter over the data range.
func formatSheet(f *excelize.File, sheet string, headerStyle int) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])

	lastHeader, _ := excelize.CoordinatesToCellName(cols, 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for c := 1; c <= cols; c++ {
		width := 0
		for _, row := range rows {
			if c <= len(row) {
				if n := utf8.RuneCountInString(row[c-1]); n > width {
					width = n
				}
			}
		}
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(min(width+2, maxColWidth))); err != nil {
			return err
		}
	}

	lastCell, _ := excelize.CoordinatesToCellName(cols, len(rows))
	if err := f.AutoFilter(sheet, "A1:"+lastCell, nil); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
