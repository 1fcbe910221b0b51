package generator

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/minio/highwayhash"
	"github.com/viant/afs"
)

const artifactMode = 0o644

var fingerprintKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint returns HighwayHash-64 of artifact content
func Fingerprint(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	if _, err = hash.Write(data); err != nil {
		return 0, err
	}
	return hash.Sum64(), nil
}

type record struct {
	version     string
	fingerprint uint64
}

// writer uploads artifacts only when their content changed, so unchanged artifacts keep their
// timestamps and do not trigger IDE reloads. It records the fingerprint of every artifact it wrote
// or confirmed, keyed by location, with the size and modification time observed at that point.
// While the artifact on disk keeps that version the recorded fingerprint stands for its content.
type writer struct {
	fs      afs.Service
	logger  *slog.Logger
	mux     sync.Mutex
	records map[string]*record
}

func newWriter(fs afs.Service, logger *slog.Logger) *writer {
	return &writer{fs: fs, logger: logger, records: map[string]*record{}}
}

// fingerprint returns recorded fingerprint of the artifact at URL
func (w *writer) fingerprint(URL string) (uint64, bool) {
	w.mux.Lock()
	defer w.mux.Unlock()
	rec, ok := w.records[URL]
	if !ok {
		return 0, false
	}
	return rec.fingerprint, true
}

func (w *writer) record(ctx context.Context, URL string, fingerprint uint64) {
	version, err := w.version(ctx, URL)
	w.mux.Lock()
	defer w.mux.Unlock()
	if err != nil {
		delete(w.records, URL)
		return
	}
	w.records[URL] = &record{version: version, fingerprint: fingerprint}
}

func (w *writer) version(ctx context.Context, URL string) (string, error) {
	object, err := w.fs.Object(ctx, URL)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d|%d", object.Size(), object.ModTime().UnixNano()), nil
}

// unchanged returns true if URL holds data. A recorded fingerprint of the current version is
// compared without reading the artifact, otherwise the artifact is downloaded and compared.
func (w *writer) unchanged(ctx context.Context, URL string, data []byte, fingerprint uint64) bool {
	exists, err := w.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return false
	}
	version, err := w.version(ctx, URL)
	if err != nil {
		return false
	}
	w.mux.Lock()
	rec, ok := w.records[URL]
	w.mux.Unlock()
	if ok && rec.version == version {
		return rec.fingerprint == fingerprint
	}
	existing, err := w.fs.DownloadWithURL(ctx, URL)
	if err != nil || !bytes.Equal(existing, data) {
		return false
	}
	w.mux.Lock()
	w.records[URL] = &record{version: version, fingerprint: fingerprint}
	w.mux.Unlock()
	return true
}

// write uploads data to URL unless unchanged, it returns true when the artifact was written
func (w *writer) write(ctx context.Context, URL string, data []byte) (bool, error) {
	fingerprint, err := Fingerprint(data)
	if err != nil {
		return false, err
	}
	if w.unchanged(ctx, URL, data, fingerprint) {
		w.logger.Debug("artifact unchanged", "url", URL)
		return false, nil
	}
	if err = w.fs.Upload(ctx, URL, artifactMode, bytes.NewReader(data)); err != nil {
		return false, fmt.Errorf("failed to write artifact %v: %w", URL, err)
	}
	w.record(ctx, URL, fingerprint)
	w.logger.Info("artifact written", "url", URL, "bytes", len(data), "fingerprint", fingerprint)
	return true, nil
}

// create uploads data to URL only when nothing exists there yet
func (w *writer) create(ctx context.Context, URL string, data []byte) (bool, error) {
	exists, err := w.fs.Exists(ctx, URL)
	if err != nil {
		return false, fmt.Errorf("failed to check artifact %v: %w", URL, err)
	}
	if exists {
		return false, nil
	}
	return w.write(ctx, URL, data)
}
