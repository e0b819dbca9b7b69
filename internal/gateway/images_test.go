package gateway

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// gifBytes arma un GIF mínimo; alcanza con la firma para la
// detección de tipo.
func gifBytes(padding int) []byte {
	return append([]byte("GIF89a"), bytes.Repeat([]byte{0}, padding)...)
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestEncodeImages_DataURI(t *testing.T) {
	dir := t.TempDir()
	gif := writeFile(t, dir, "dog.gif", gifBytes(16))

	uris, skipped := EncodeImages([]string{gif})
	if len(skipped) != 0 {
		t.Fatalf("expected no skipped files, got %v", skipped)
	}
	if len(uris) != 1 {
		t.Fatalf("expected 1 uri, got %d", len(uris))
	}
	if !strings.HasPrefix(uris[0], "data:image/gif;base64,") {
		t.Fatalf("expected gif data uri, got %q", uris[0])
	}
}

func TestEncodeImages_SkipsInvalidAndContinues(t *testing.T) {
	dir := t.TempDir()

	txt := writeFile(t, dir, "notes.txt", []byte("this is not an image"))
	huge := writeFile(t, dir, "huge.gif", gifBytes(maxImageBytes))
	ok := writeFile(t, dir, "dog.gif", gifBytes(16))
	missing := filepath.Join(dir, "nope.gif")

	uris, skipped := EncodeImages([]string{txt, huge, missing, ok})

	// Los tres inválidos se reportan, el válido sigue adelante
	if len(skipped) != 3 {
		t.Fatalf("expected 3 skipped files, got %d: %v", len(skipped), skipped)
	}
	if len(uris) != 1 {
		t.Fatalf("expected 1 uri, got %d", len(uris))
	}
	if !strings.HasPrefix(uris[0], "data:image/gif;base64,") {
		t.Fatalf("expected the valid gif encoded, got %q", uris[0])
	}

	// Cada error nombra su archivo
	for _, err := range skipped {
		if !strings.Contains(err.Error(), dir) {
			t.Fatalf("skipped error should name the file, got %v", err)
		}
	}
}

func TestEncodeImages_EmptyInput(t *testing.T) {
	uris, skipped := EncodeImages(nil)
	if uris == nil || len(uris) != 0 {
		t.Fatalf("expected empty non-nil uris, got %#v", uris)
	}
	if len(skipped) != 0 {
		t.Fatalf("expected no skipped, got %v", skipped)
	}
}
