package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/ubuntu/decorate"

	fxMonitor "github.com/malusev998/fx-monitor"
)

type jsonStorage struct {
	dir string
}

func NewJSONStorage(config JSONConfig) fxMonitor.Storage {
	return jsonStorage{dir: config.Dir}
}

func (j jsonStorage) Store(name string, payload interface{}) (string, error) {
	path := filepath.Join(j.dir, name)

	if err := WriteJSON(path, payload); err != nil {
		return "", err
	}

	return path, nil
}

func (j jsonStorage) GetStorageProviderName() string {
	return string(JSON)
}

// WriteJSON writes payload as two-space indented UTF-8 JSON followed by a newline, creating
// missing parent directories. An existing file is replaced only once the new content is complete.
func WriteJSON(path string, payload interface{}) (err error) {
	defer decorate.OnError(&err, "could not write %s", path)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(payload); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return atomicWrite(path, buf.Bytes())
}

func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", tmp.Name()).Msg("Failed to remove temporary file")
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("could not write to temporary file: %w", err)
	}

	// CreateTemp uses 0600; published files must stay readable by the web server.
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("could not set permissions on temporary file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not rename temporary file: %w", err)
	}

	return nil
}
