package savegame

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"starmap-server/internal/shared/errors"
	"starmap-server/internal/world"
)

// Encode renders w as a YAML document
func Encode(w *world.World) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(w)); err != nil {
		return nil, errors.WrapInternal("failed to encode world", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapInternal("failed to encode world", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a YAML document produced by Encode
func Decode(data []byte) (*world.World, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapValidation("malformed save document", err)
	}
	return doc.Restore()
}

// Compress gzips data at the default compression level
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, errors.WrapInternal("failed to compress save", err)
	}
	if err := zw.Close(); err != nil {
		return nil, errors.WrapInternal("failed to compress save", err)
	}
	return buf.Bytes(), nil
}

func Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapValidation("save is not gzip data", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.WrapValidation("corrupt compressed save", err)
	}
	return out, nil
}

// Pack encodes and compresses w
func Pack(w *world.World) ([]byte, error) {
	data, err := Encode(w)
	if err != nil {
		return nil, err
	}
	return Compress(data)
}

// Unpack reverses Pack
func Unpack(data []byte) (*world.World, error) {
	raw, err := Decompress(data)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}
