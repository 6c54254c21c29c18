package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/andrescamacho/spacerush-go/internal/domain/save"
)

// Compression selects how encoded documents are packed
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ParseCompression converts a config value into a Compression
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(s); c {
	case CompressionNone, CompressionZstd, CompressionLZ4:
		return c, nil
	case "":
		return CompressionNone, nil
	default:
		return "", fmt.Errorf("unknown compression %q", s)
	}
}

// Codec turns documents into bytes and back. Decode detects the compression
// from the payload, so a store can switch compression without losing old saves.
type Codec struct {
	compression Compression
}

// NewCodec creates a codec writing with the given compression
func NewCodec(compression Compression) *Codec {
	if compression == "" {
		compression = CompressionNone
	}
	return &Codec{compression: compression}
}

// Compression returns the compression used by Encode
func (c *Codec) Compression() Compression {
	return c.compression
}

// Encode serializes doc as JSON and compresses it
func (c *Codec) Encode(doc *save.Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save document: %w", err)
	}

	switch c.compression {
	case CompressionNone:
		return raw, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			return nil, fmt.Errorf("failed to lz4 compress save: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("failed to lz4 compress save: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression %q", c.compression)
	}
}

// Decode decompresses and parses a payload written by any codec
func (c *Codec) Decode(payload []byte) (*save.Document, error) {
	raw, err := decompress(payload)
	if err != nil {
		return nil, err
	}

	var doc save.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save document: %w", err)
	}
	return &doc, nil
}

func decompress(payload []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(payload, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()
		raw, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to zstd decompress save: %w", err)
		}
		return raw, nil
	case bytes.HasPrefix(payload, lz4Magic):
		raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
		if err != nil {
			return nil, fmt.Errorf("failed to lz4 decompress save: %w", err)
		}
		return raw, nil
	default:
		return payload, nil
	}
}
