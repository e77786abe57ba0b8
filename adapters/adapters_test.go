package adapters

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-labs/dsbeam/dserrors"
	"github.com/arclight-labs/dsbeam/objective"
)

func TestFileMemoryRoundTrip(t *testing.T) {
	r := require.New(t)
	m := &FileMemory{Root: t.TempDir()}
	r.NoError(m.Put(context.Background(), "k", []byte("v")))
	got, err := m.Get(context.Background(), "k")
	r.NoError(err)
	r.Equal([]byte("v"), got)
}

func TestFileMemoryGetMissingKey(t *testing.T) {
	r := require.New(t)
	m := &FileMemory{Root: t.TempDir()}
	_, err := m.Get(context.Background(), "missing")
	r.Error(err)
	r.True(errors.Is(err, dserrors.ErrPort))
}

func TestRawObjectiveWriterHeaderOnlyAtDepthOne(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "raw.csv")
	w := NewRawObjectiveWriter(path, 1)
	defer w.Close()

	r.NoError(w.AppendRawObjectives(1, []objective.Vector{{Struct: 0.1, Field: 0.2, Risk: 0.3, Shape: 0.4}}))
	r.NoError(w.AppendRawObjectives(2, []objective.Vector{{Struct: 0.5, Field: 0.6, Risk: 0.7, Shape: 0.8}}))

	data, err := FileStorage{}.Read(path)
	r.NoError(err)
	r.Equal(1, countOccurrences(string(data), rawObjectiveHeader))
}

func countOccurrences(haystack, needle string) int {
	count := 0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			count++
		}
	}
	return count
}

func TestHTTPSearchUnsupported(t *testing.T) {
	r := require.New(t)
	_, err := HTTPSearch{}.Search(context.Background(), "q")
	r.True(errors.Is(err, dserrors.ErrUnsupported))
}
