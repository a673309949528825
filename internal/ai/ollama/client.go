package ollama

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fiscaldata/nf-extractor/internal/ai"
	"github.com/fiscaldata/nf-extractor/internal/common"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// tagsTimeout bounds the availability probe so a down backend answers fast.
const tagsTimeout = 5 * time.Second

var visionMarkers = []string{"llava", "bakllava", "moondream"}

// IsVisionModel reports whether a model name names a multimodal family.
func IsVisionModel(name string) bool {
	n := strings.ToLower(name)
	for _, m := range visionMarkers {
		if strings.Contains(n, m) {
			return true
		}
	}
	return false
}

// VisionCapable reports whether the configured model reads images.
func (c *Client) VisionCapable() bool {
	return IsVisionModel(c.cfg.Model)
}

// ExtractFromText implements ai.TextExtractor.
func (c *Client) ExtractFromText(ctx context.Context, text, filename string) (*fiscal.Document, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()
	c.logger.Info("ai.extract.start",
		"req_id", rid,
		"strategy", "text",
		"model", c.cfg.Model,
		"file", filename,
		"text_len", len(text),
	)

	raw, err := c.generate(ctx, c.cfg.Model, ai.BuildTextPrompt(text), nil)
	if err != nil {
		c.logger.Error("ai.extract.request_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, err
	}
	return c.decode(rid, start, raw, filename, false)
}

// ExtractFromImages implements ai.VisionExtractor. Pages are PNG renders;
// callers rasterize with ai.VisionRenderDPI and at most ai.VisionMaxPages
// pages.
func (c *Client) ExtractFromImages(ctx context.Context, pages [][]byte, filename string) (*fiscal.Document, []byte, error) {
	if len(pages) == 0 {
		return nil, nil, common.NewAppError("AI_NO_PAGES", "no rendered pages to send", common.ErrAIUnavailable)
	}
	if len(pages) > ai.VisionMaxPages {
		pages = pages[:ai.VisionMaxPages]
	}
	images := make([]string, len(pages))
	for i, p := range pages {
		images[i] = base64.StdEncoding.EncodeToString(p)
	}

	model := c.modelName()
	rid := uuid.New().String()
	start := time.Now()
	c.logger.Info("ai.extract.start",
		"req_id", rid,
		"strategy", "vision",
		"model", model,
		"file", filename,
		"pages", len(images),
	)

	raw, err := c.generate(ctx, model, ai.BuildVisionPrompt(), images)
	if err != nil {
		c.logger.Error("ai.extract.request_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, err
	}
	return c.decode(rid, start, raw, filename, true)
}

// decode validates the model response and folds it into a document, running
// the lenient sanitize pass when strict validation rejects the raw object.
func (c *Client) decode(rid string, start time.Time, raw, filename string, scanned bool) (*fiscal.Document, []byte, error) {
	block, err := ai.ExtractJSONBlock(raw)
	if err != nil {
		c.logger.Error("ai.extract.bad_response",
			"req_id", rid, "error", err, "raw_len", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, common.NewAppError("AI_BAD_RESPONSE", err.Error(), common.ErrAIUnavailable)
	}

	schema := ai.BuildFiscalJSONSchema()
	if err := ai.ValidateAgainstSchema(schema, block); err != nil {
		cleaned, dropped, sErr := ai.NormalizeResponse(block, c.logger)
		if sErr != nil {
			c.logger.Error("ai.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, block, common.NewAppError("AI_BAD_RESPONSE", "response is not a json object", common.ErrAIUnavailable)
		}
		if vErr := ai.ValidateAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("ai.extract.schema_failed",
				"req_id", rid, "error", vErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, cleaned, common.NewAppError("AI_BAD_RESPONSE", "response does not match schema", common.ErrAIUnavailable)
		}
		c.logger.Warn("ai.extract.sanitize_applied",
			"req_id", rid, "dropped", len(dropped),
		)
		block = cleaned
	}

	var fields ai.FiscalFields
	if err := json.Unmarshal(block, &fields); err != nil {
		c.logger.Error("ai.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, block, common.NewAppError("AI_BAD_RESPONSE", "response does not unmarshal", common.ErrAIUnavailable)
	}

	doc := fields.Document(filename)
	if scanned {
		doc.IsScanned = true
	}

	var total float64
	if doc.Valores != nil && doc.Valores.ValorTotal != nil {
		total = *doc.Valores.ValorTotal
	}
	c.logger.Info("ai.extract.ok",
		"req_id", rid,
		"tipo", string(doc.DocumentType),
		"numero", doc.Numero,
		"total", total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return doc, block, nil
}

// generate calls /api/generate in non-streaming JSON mode and returns the
// response text.
func (c *Client) generate(ctx context.Context, model, prompt string, images []string) (string, error) {
	body := map[string]any{
		"model":  model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
		"options": map[string]any{
			"temperature": c.cfg.Temperature,
			"num_ctx":     c.cfg.NumCtx,
		},
	}
	if len(images) > 0 {
		body["images"] = images
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", common.NewAppError("AI_UNAVAILABLE",
			fmt.Sprintf("generate request: %v", err), common.ErrAIUnavailable)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("ai.http.body_close", "error", cerr)
		}
	}(resp.Body)

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", common.NewAppError("AI_UNAVAILABLE",
			fmt.Sprintf("ollama status %d: %s", resp.StatusCode, firstBytes(data, 512)),
			common.ErrAIUnavailable)
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", common.NewAppError("AI_BAD_RESPONSE",
			fmt.Sprintf("decode generate response: %v", err), common.ErrAIUnavailable)
	}
	if strings.TrimSpace(out.Response) == "" {
		return "", common.NewAppError("AI_BAD_RESPONSE", "empty model response", common.ErrAIUnavailable)
	}
	return out.Response, nil
}

// Available reports whether the backend serves the configured model. For a
// vision-capable config the served variant is resolved here, so a generic
// family name like "llava" lands on whatever tag is actually pulled.
func (c *Client) Available(ctx context.Context) bool {
	names, err := c.listModels(ctx)
	if err != nil {
		c.logger.Debug("ai.tags.failed", "error", err)
		return false
	}

	if !c.VisionCapable() {
		for _, n := range names {
			if strings.Contains(n, c.cfg.Model) {
				return true
			}
		}
		return false
	}

	resolved := ""
	for _, n := range names {
		if n == c.cfg.Model {
			resolved = n
			break
		}
		if resolved == "" && IsVisionModel(n) {
			resolved = n
		}
	}
	if resolved == "" {
		return false
	}
	c.mu.Lock()
	if c.resolved != resolved {
		c.resolved = resolved
		c.logger.Info("ai.vision.model", "model", resolved)
	}
	c.mu.Unlock()
	return true
}

func (c *Client) listModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, tagsTimeout)
	defer cancel()

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("ai.http.body_close", "error", cerr)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama tags status %d", resp.StatusCode)
	}
	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// modelName returns the served vision variant when one has been resolved.
func (c *Client) modelName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resolved != "" {
		return c.resolved
	}
	return c.cfg.Model
}

func firstBytes(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return strings.TrimSpace(string(b))
}
