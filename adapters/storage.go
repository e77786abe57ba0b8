package adapters

import (
	"fmt"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/arclight-labs/dsbeam/objective"
)

// FileStorage reads and writes whole files without rotation. The rotating
// raw objective CSV sink is the separate RawObjectiveWriter type.
type FileStorage struct{}

// Write overwrites path with data.
func (FileStorage) Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("adapters: write %q: %w", path, err)
	}
	return nil
}

// Read returns the contents of path.
func (FileStorage) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("adapters: read %q: %w", path, err)
	}
	return data, nil
}

const rawObjectiveHeader = "depth,candidate_id,objective_0,objective_1,objective_2,objective_3_shape"

// RawObjectiveWriter appends per-depth candidate objective rows to a
// lumberjack-rotated CSV file, writing the header exactly once, at depth 1.
type RawObjectiveWriter struct {
	logger *lumberjack.Logger
}

// NewRawObjectiveWriter opens (or rotates into) path, capping it at
// maxSizeMB before lumberjack rotates it out, answering the "callers are
// expected to rotate" requirement on the raw objective sink.
func NewRawObjectiveWriter(path string, maxSizeMB int) *RawObjectiveWriter {
	return &RawObjectiveWriter{logger: &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 5,
		Compress:   true,
	}}
}

// AppendRawObjectives writes one CSV row per candidate at depth, preceded
// by the header row the first time depth == 1.
func (w *RawObjectiveWriter) AppendRawObjectives(depth int, candidates []objective.Vector) error {
	var out []byte
	if depth == 1 {
		out = append(out, rawObjectiveHeader+"\n"...)
	}
	for i, v := range candidates {
		out = append(out, fmt.Sprintf("%d,%d,%g,%g,%g,%g\n", depth, i, v.Struct, v.Field, v.Risk, v.Shape)...)
	}
	if _, err := w.logger.Write(out); err != nil {
		return fmt.Errorf("adapters: append raw objectives: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying rotated file.
func (w *RawObjectiveWriter) Close() error {
	return w.logger.Close()
}
