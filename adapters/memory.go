// Package adapters provides the ambient, minimal implementations of the
// capability ports: a file-backed key/value memory, a rotating raw-output
// storage sink, a zap-backed telemetry emitter, and an unwired HTTP search
// stub.
package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arclight-labs/dsbeam/dserrors"
)

// FileMemory persists opaque blobs as files under root, one file per key.
type FileMemory struct {
	Root string
}

// Get reads the blob stored for key.
func (m *FileMemory) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(m.Root, key+".bin"))
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", dserrors.ErrPort, key, err)
	}
	return data, nil
}

// Put writes value for key, creating the root directory if needed.
func (m *FileMemory) Put(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(m.Root, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %q: %v", dserrors.ErrPort, m.Root, err)
	}
	if err := os.WriteFile(filepath.Join(m.Root, key+".bin"), value, 0o644); err != nil {
		return fmt.Errorf("%w: write %q: %v", dserrors.ErrPort, key, err)
	}
	return nil
}
