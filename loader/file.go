package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kpaths/core"
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Compression selects the stream wrapper around a document.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// DetectFormat derives format and compression from a file name such as
// "graph.yaml", "graph.json.gz", "graph.yml.zst" or "graph.json.lz4".
//
// Errors:
//   - ErrUnknownFormat: the extension is not .yaml, .yml or .json.
func DetectFormat(name string) (Format, Compression, error) {
	comp := CompressionNone
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".gz":
		comp = CompressionGzip
		name = strings.TrimSuffix(name, filepath.Ext(name))
	case ".zst", ".zstd":
		comp = CompressionZstd
		name = strings.TrimSuffix(name, filepath.Ext(name))
	case ".lz4":
		comp = CompressionLZ4
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		return FormatYAML, comp, nil
	case ".json":
		return FormatJSON, comp, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// FromFile reads the graph document at path; the extension selects the
// format and compression (see DetectFormat).
func FromFile(path string) (*core.Graph, error) {
	format, comp, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := FromReader(f, format, comp)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	return g, nil
}

// FromReader decodes a graph document from r.
func FromReader(r io.Reader, format Format, comp Compression) (*core.Graph, error) {
	doc, err := ReadDocument(r, format, comp)
	if err != nil {
		return nil, err
	}

	return doc.Graph()
}

// ReadDocument decodes a Document without building the graph.
func ReadDocument(r io.Reader, format Format, comp Compression) (Document, error) {
	var doc Document

	src, closeFn, err := decompress(r, comp)
	if err != nil {
		return doc, err
	}
	defer closeFn()

	raw, err := io.ReadAll(src)
	if err != nil {
		return doc, fmt.Errorf("loader: read: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return doc, ErrEmptyDocument
	}

	switch format {
	case FormatJSON:
		err = json.Unmarshal(raw, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(raw, &doc)
	default:
		return doc, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return doc, fmt.Errorf("loader: decode %s: %w", format, err)
	}

	return doc, nil
}

// WriteDocument encodes doc to w with the given format and compression.
func WriteDocument(w io.Writer, doc Document, format Format, comp Compression) error {
	var (
		raw []byte
		err error
	)
	switch format {
	case FormatJSON:
		raw, err = json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		raw, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("loader: encode %s: %w", format, err)
	}

	switch comp {
	case CompressionGzip:
		zw := gzip.NewWriter(w)
		if _, err = zw.Write(raw); err != nil {
			return fmt.Errorf("loader: gzip: %w", err)
		}
		return zw.Close()
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("loader: zstd: %w", err)
		}
		if _, err = zw.Write(raw); err != nil {
			_ = zw.Close()
			return fmt.Errorf("loader: zstd: %w", err)
		}
		return zw.Close()
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if _, err = zw.Write(raw); err != nil {
			return fmt.Errorf("loader: lz4: %w", err)
		}
		return zw.Close()
	default:
		_, err = w.Write(raw)
		return err
	}
}

func decompress(r io.Reader, comp Compression) (io.Reader, func(), error) {
	switch comp {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("loader: gzip: %w", err)
		}
		return zr, func() { _ = zr.Close() }, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("loader: zstd: %w", err)
		}
		return zr, zr.Close, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}
