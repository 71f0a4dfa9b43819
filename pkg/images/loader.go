package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrInvalidDataURI = errors.New("invalid data URI")

// Cache loads background images once per source. Sources are file paths,
// relative to BaseDir unless absolute, or data: URIs.
type Cache struct {
	BaseDir string

	mu    sync.RWMutex
	cache map[string]image.Image
}

func NewCache(baseDir string) *Cache {
	return &Cache{BaseDir: baseDir, cache: make(map[string]image.Image)}
}

// Load returns the decoded image for src.
func (c *Cache) Load(src string) (image.Image, error) {
	c.mu.RLock()
	img, ok := c.cache[src]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	var err error
	if IsDataURI(src) {
		img, err = LoadImageFromDataURI(src)
	} else {
		img, err = loadFile(c.resolve(src))
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[src] = img
	c.mu.Unlock()
	return img, nil
}

// Dimensions returns the pixel size of the image at src.
func (c *Cache) Dimensions(src string) (width, height int, err error) {
	img, err := c.Load(src)
	if err != nil {
		return 0, 0, err
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

func (c *Cache) resolve(path string) string {
	if filepath.IsAbs(path) || c.BaseDir == "" {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

func loadFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func IsDataURI(src string) bool {
	return strings.HasPrefix(src, "data:")
}

// LoadImageFromDataURI decodes "data:<mime>[;base64],<payload>".
func LoadImageFromDataURI(uri string) (image.Image, error) {
	if !IsDataURI(uri) {
		return nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing payload", ErrInvalidDataURI)
	}

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
		data = []byte(unescaped)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode data URI: %w", err)
	}
	return img, nil
}

// ParseURL extracts the source from a url(...) value, with or without quotes.
func ParseURL(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "url(") || !strings.HasSuffix(value, ")") {
		return "", false
	}
	src := strings.TrimSpace(value[len("url(") : len(value)-1])
	src = strings.Trim(src, `"'`)
	return src, src != ""
}
