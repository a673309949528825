package ingest

import (
	"context"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvPath(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case p, ok := <-ch:
		require.True(t, ok, "watcher channel closed early")
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
		return ""
	}
}

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	assert.Error(t, err)
}

func TestStartWatcherMissingRoot(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{
		Roots: []string{filepath.Join(t.TempDir(), "nao_existe")},
	})
	assert.Error(t, err)
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nfse_um.pdf", pdfPayload("um"))
	writeFile(t, dir, filepath.Join("arquivadas", "nfse_dois.pdf"), pdfPayload("dois"))
	writeFile(t, dir, "planilha.xlsx", []byte("x"))
	writeFile(t, dir, ".parcial.pdf", pdfPayload("parcial"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	require.NoError(t, err)

	got := []string{recvPath(t, evCh), recvPath(t, evCh)}
	sort.Strings(got)
	assert.Equal(t, []string{
		filepath.Join(dir, "arquivadas", "nfse_dois.pdf"),
		filepath.Join(dir, "nfse_um.pdf"),
	}, got)

	cancel()
	for range evCh {
	}
}

func TestWatcherEmitsCreatedFile(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	writeFile(t, dir, "ignorado.txt", []byte("x"))
	nota := writeFile(t, dir, "nfse_nova.pdf", pdfPayload("nova"))

	assert.Equal(t, nota, recvPath(t, evCh))

	select {
	case p := <-evCh:
		t.Fatalf("unexpected extra event: %s", p)
	case <-time.After(50 * time.Millisecond):
	}
}
