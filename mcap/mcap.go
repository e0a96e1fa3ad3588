package mcap

import (
	"fmt"
	"io"

	"github.com/foxglove/mcap/go/mcap"
)

/*
Helpers for embedding generated message definitions in MCAP files. An MCAP
schema record carries a message definition verbatim, so a file written here
hands the merged definition text to any MCAP tooling unmodified.
*/

////////////////////////////////////////////////////////////////////////////////

const megabyte = 1024 * 1024

type WriterOption func(*mcap.WriterOptions)

func WithCompression(compression mcap.CompressionFormat) WriterOption {
	return func(o *mcap.WriterOptions) {
		o.Compression = compression
	}
}

// NewWriter returns a new mcap writer with defaults suited to small
// schema-bearing files.
func NewWriter(w io.Writer, options ...WriterOption) (*mcap.Writer, error) {
	opts := &mcap.WriterOptions{
		IncludeCRC:  true,
		Chunked:     true,
		ChunkSize:   1 * megabyte,
		Compression: "zstd",
	}
	for _, opt := range options {
		opt(opts)
	}
	writer, err := mcap.NewWriter(w, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build writer: %w", err)
	}
	return writer, nil
}

// NewReader returns a new mcap reader with sensible defaults.
func NewReader(r io.Reader) (*mcap.Reader, error) {
	reader, err := mcap.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to build reader: %w", err)
	}
	return reader, nil
}

// WriteSchemaFile writes an mcap file containing a single schema record
// holding the supplied definition text.
func WriteSchemaFile(w io.Writer, name string, encoding string, data []byte, options ...WriterOption) error {
	writer, err := NewWriter(w, options...)
	if err != nil {
		return fmt.Errorf("failed to construct mcap writer: %w", err)
	}
	if err := writer.WriteHeader(&mcap.Header{Library: "rosgen"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteSchema(&mcap.Schema{
		ID:       1,
		Name:     name,
		Encoding: encoding,
		Data:     data,
	}); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}
