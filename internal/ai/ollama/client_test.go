package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/ai"
	"github.com/fiscaldata/nf-extractor/internal/common"
)

func moneyEq(t *testing.T, got *float64, want float64) {
	t.Helper()
	require.NotNil(t, got)
	assert.InDelta(t, want, *got, 0.0001)
}

// newBackend stubs the two Ollama endpoints. generate requests are decoded
// and recorded; modelOut is wrapped as the response field the way the real
// server answers in non-streaming mode.
func newBackend(t *testing.T, tags []string, modelOut string) (*httptest.Server, *[]map[string]any) {
	t.Helper()
	calls := &[]map[string]any{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		models := make([]map[string]string, 0, len(tags))
		for _, n := range tags {
			models = append(models, map[string]string{"name": n})
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"models": models}))
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		*calls = append(*calls, body)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]string{"response": modelOut}))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, calls
}

const fencedResponse = "```json\n" +
	`{"tipoDocumento": "NFS-e", "numeroDocumento": 144, "dataEmissao": "2024-01-15",
	  "emitente": {"cnpjCpf": "12.345.678/0001-90", "nomeRazaoSocial": "ACME LTDA"},
	  "valores": {"totalDocumento": "1.500,00", "iss": 75.0}}` +
	"\n```"

func TestExtractFromText(t *testing.T) {
	srv, calls := newBackend(t, nil, fencedResponse)
	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3:8b"}, nil)

	doc, raw, err := c.ExtractFromText(context.Background(), "PREFEITURA NFS-e Número 144", "nota.pdf")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.NotEmpty(t, raw)

	assert.Equal(t, constants.DocTypeNFSE, doc.DocumentType)
	assert.Equal(t, "144", doc.Numero)
	assert.Equal(t, "15/01/2024", doc.DataEmissao)
	require.NotNil(t, doc.Emitente)
	assert.Equal(t, "12345678000190", doc.Emitente.CNPJ)
	assert.Equal(t, "ACME LTDA", doc.Emitente.RazaoSocial)
	require.NotNil(t, doc.Valores)
	moneyEq(t, doc.Valores.ValorTotal, 1500)
	moneyEq(t, doc.Valores.ISS, 75)
	assert.False(t, doc.IsScanned)

	require.Len(t, *calls, 1)
	req := (*calls)[0]
	assert.Equal(t, "llama3:8b", req["model"])
	assert.Equal(t, false, req["stream"])
	assert.Equal(t, "json", req["format"])
	opts := req["options"].(map[string]any)
	assert.InDelta(t, 0.1, opts["temperature"], 0.0001)
	assert.InDelta(t, 4096, opts["num_ctx"], 0.0001)
	_, hasImages := req["images"]
	assert.False(t, hasImages)
	assert.Contains(t, req["prompt"], "PREFEITURA NFS-e Número 144")
	assert.Contains(t, req["prompt"], "TEXTO DO DOCUMENTO")
}

func TestExtractFromImages(t *testing.T) {
	srv, calls := newBackend(t, []string{"mistral:7b", "llava:13b"}, fencedResponse)
	c := NewClient(Config{BaseURL: srv.URL, Model: "llava"}, nil)

	require.True(t, c.VisionCapable())
	require.True(t, c.Available(context.Background()))

	pages := [][]byte{[]byte("PAGE-1"), []byte("PAGE-2"), []byte("PAGE-3")}
	doc, _, err := c.ExtractFromImages(context.Background(), pages, "scan.pdf")
	require.NoError(t, err)
	assert.True(t, doc.IsScanned)
	assert.Equal(t, "144", doc.Numero)

	require.Len(t, *calls, 1)
	req := (*calls)[0]
	assert.Equal(t, "llava:13b", req["model"], "served variant resolved by Available")

	imgs := req["images"].([]any)
	require.Len(t, imgs, ai.VisionMaxPages)
	decoded, err := base64.StdEncoding.DecodeString(imgs[0].(string))
	require.NoError(t, err)
	assert.Equal(t, []byte("PAGE-1"), decoded)
}

func TestExtractFromImagesNoPages(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1", Model: "llava"}, nil)
	_, _, err := c.ExtractFromImages(context.Background(), nil, "scan.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAIUnavailable))
}

func TestExtractErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(Config{BaseURL: srv.URL}, nil)
		_, _, err := c.ExtractFromText(context.Background(), "texto", "nota.pdf")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrAIUnavailable))
	})

	t.Run("connection refused", func(t *testing.T) {
		c := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, nil)
		_, _, err := c.ExtractFromText(context.Background(), "texto", "nota.pdf")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrAIUnavailable))
	})

	t.Run("blank model response", func(t *testing.T) {
		srv, _ := newBackend(t, nil, "   ")
		c := NewClient(Config{BaseURL: srv.URL}, nil)
		_, _, err := c.ExtractFromText(context.Background(), "texto", "nota.pdf")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrAIUnavailable))
	})

	t.Run("response without json", func(t *testing.T) {
		srv, _ := newBackend(t, nil, "não encontrei dados no documento")
		c := NewClient(Config{BaseURL: srv.URL}, nil)
		_, _, err := c.ExtractFromText(context.Background(), "texto", "nota.pdf")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrAIUnavailable))
	})
}

func TestAvailable(t *testing.T) {
	t.Run("text model substring match", func(t *testing.T) {
		srv, _ := newBackend(t, []string{"llama3:8b-instruct", "mistral:7b"}, "")
		c := NewClient(Config{BaseURL: srv.URL, Model: "llama3:8b"}, nil)
		assert.True(t, c.Available(context.Background()))
	})

	t.Run("model not served", func(t *testing.T) {
		srv, _ := newBackend(t, []string{"mistral:7b"}, "")
		c := NewClient(Config{BaseURL: srv.URL, Model: "llama3:8b"}, nil)
		assert.False(t, c.Available(context.Background()))
	})

	t.Run("vision family with no variant", func(t *testing.T) {
		srv, _ := newBackend(t, []string{"mistral:7b"}, "")
		c := NewClient(Config{BaseURL: srv.URL, Model: "llava:7b"}, nil)
		assert.False(t, c.Available(context.Background()))
	})

	t.Run("exact vision model wins over variant", func(t *testing.T) {
		srv, _ := newBackend(t, []string{"moondream:latest", "llava:7b"}, "")
		c := NewClient(Config{BaseURL: srv.URL, Model: "llava:7b"}, nil)
		require.True(t, c.Available(context.Background()))
		assert.Equal(t, "llava:7b", c.modelName())
	})

	t.Run("backend down", func(t *testing.T) {
		c := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, nil)
		assert.False(t, c.Available(context.Background()))
	})
}

func TestIsVisionModel(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{"llava tag", "llava:7b", true},
		{"case insensitive", "LLaVA:13b", true},
		{"bakllava", "bakllava", true},
		{"moondream", "moondream:latest", true},
		{"llama is not llava", "llama3:8b", false},
		{"text model", "phi3", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVisionModel(tt.model))
		})
	}
}
