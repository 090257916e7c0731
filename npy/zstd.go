package npy

import (
	"bytes"
	"os"

	"github.com/klauspost/compress/zstd"
)

// zstd frame magic, little-endian 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// SaveBoolZstd writes the .npy container compressed as a single zstd
// frame. LoadBool reads such files transparently.
func SaveBoolZstd(path string, shape []int, data []byte) error {
	var buf bytes.Buffer
	if err := WriteBool(&buf, shape, data); err != nil {
		return err
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	out := enc.EncodeAll(buf.Bytes(), nil)
	_ = enc.Close()
	return os.WriteFile(path, out, 0o644)
}

// LoadBool reads a stored bool array, decompressing zstd-wrapped
// containers when the frame magic is present.
func LoadBool(path string) ([]int, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if len(raw) >= 4 && bytes.Equal(raw[:4], zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, nil, err
		}
		defer dec.Close()
		raw, err = dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, nil, err
		}
	}
	return ReadBool(bytes.NewReader(raw))
}
