package gateway

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// Límites para las imágenes adjuntas, los mismos que aplicaba el
// admin web antes de guardar.
const maxImageBytes = 5 << 20 // 5 MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// EncodeImages convierte archivos locales a data URIs, de a uno y en
// orden. Un archivo inválido (tipo o tamaño) se saltea y se reporta;
// el resto sigue. Nunca es fatal para el guardado.
func EncodeImages(paths []string) (uris []string, skipped []error) {
	uris = make([]string, 0, len(paths))

	for _, p := range paths {
		uri, err := encodeImage(p)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%s: %w", p, err))
			continue
		}
		uris = append(uris, uri)
	}

	return uris, skipped
}

func encodeImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxImageBytes {
		return "", fmt.Errorf("supera el máximo de %d bytes", maxImageBytes)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mime := http.DetectContentType(raw)
	if !allowedImageTypes[mime] {
		return "", fmt.Errorf("tipo no soportado %s", mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
