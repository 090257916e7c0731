// Package npy reads and writes NumPy .npy v1.0 containers holding
// boolean arrays. The header embeds shape, dtype and byte order, so a
// stored array reloads without any external schema.
package npy

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const magic = "\x93NUMPY"

// boolDescr is the dtype tag for one-byte booleans; '|' marks the
// element as byte-order independent.
const boolDescr = "|b1"

var (
	ErrBadMagic = errors.New("npy: not a .npy file")
	ErrVersion  = errors.New("npy: unsupported .npy version")
	ErrDType    = errors.New("npy: unsupported dtype")
	ErrFortran  = errors.New("npy: fortran order not supported")
	ErrHeader   = errors.New("npy: malformed header")
	ErrShape    = errors.New("npy: shape does not match data length")
)

func headerBytes(shape []int) []byte {
	var tuple strings.Builder
	tuple.WriteByte('(')
	for i, d := range shape {
		if i > 0 {
			tuple.WriteString(", ")
		}
		tuple.WriteString(strconv.Itoa(d))
	}
	if len(shape) == 1 {
		tuple.WriteByte(',')
	}
	tuple.WriteByte(')')

	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': %s, }",
		boolDescr, tuple.String())
	// Pad with spaces so the data section starts on a 64-byte boundary;
	// the preamble (magic, version, header length) is 10 bytes.
	size := len(magic) + 4 + len(header) + 1
	if rem := size % 64; rem != 0 {
		header += strings.Repeat(" ", 64-rem)
	}
	return []byte(header + "\n")
}

func elements(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension %d", ErrShape, d)
		}
		n *= d
	}
	return n, nil
}

// WriteBool writes data as a bool array of the given shape.
func WriteBool(w io.Writer, shape []int, data []byte) error {
	n, err := elements(shape)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: shape %v holds %d elements, got %d bytes", ErrShape, shape, n, len(data))
	}
	header := headerBytes(shape)
	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}
	if _, err := w.Write([]byte{1, 0}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(header))); err != nil {
		return err
	}
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadBool parses a .npy bool array, returning its shape and the
// row-major element bytes.
func ReadBool(r io.Reader) ([]int, []byte, error) {
	pre := make([]byte, 10)
	if _, err := io.ReadFull(r, pre); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if string(pre[:6]) != magic {
		return nil, nil, ErrBadMagic
	}
	if pre[6] != 1 || pre[7] != 0 {
		return nil, nil, fmt.Errorf("%w: %d.%d", ErrVersion, pre[6], pre[7])
	}
	hlen := binary.LittleEndian.Uint16(pre[8:])
	header := make([]byte, hlen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, nil, fmt.Errorf("%w: truncated header: %v", ErrHeader, err)
	}
	shape, err := parseHeader(string(header))
	if err != nil {
		return nil, nil, err
	}
	n, err := elements(shape)
	if err != nil {
		return nil, nil, err
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, nil, fmt.Errorf("npy: truncated data: %w", err)
	}
	return shape, data, nil
}

func parseHeader(h string) ([]int, error) {
	descr, ok := quotedValue(h, "'descr':")
	if !ok {
		return nil, fmt.Errorf("%w: missing descr", ErrHeader)
	}
	if descr != boolDescr {
		return nil, fmt.Errorf("%w: %q", ErrDType, descr)
	}
	switch {
	case strings.Contains(h, "'fortran_order': False"):
	case strings.Contains(h, "'fortran_order': True"):
		return nil, ErrFortran
	default:
		return nil, fmt.Errorf("%w: missing fortran_order", ErrHeader)
	}
	i := strings.Index(h, "'shape':")
	if i < 0 {
		return nil, fmt.Errorf("%w: missing shape", ErrHeader)
	}
	open := strings.Index(h[i:], "(")
	end := strings.Index(h[i:], ")")
	if open < 0 || end < open {
		return nil, fmt.Errorf("%w: bad shape tuple", ErrHeader)
	}
	shape := []int{}
	for _, tok := range strings.Split(h[i+open+1:i+end], ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		d, err := strconv.Atoi(tok)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: bad dimension %q", ErrHeader, tok)
		}
		shape = append(shape, d)
	}
	return shape, nil
}

// quotedValue extracts the single-quoted string following key in the
// header dict.
func quotedValue(h, key string) (string, bool) {
	i := strings.Index(h, key)
	if i < 0 {
		return "", false
	}
	rest := h[i+len(key):]
	a := strings.Index(rest, "'")
	if a < 0 {
		return "", false
	}
	b := strings.Index(rest[a+1:], "'")
	if b < 0 {
		return "", false
	}
	return rest[a+1 : a+1+b], true
}

// SaveBool builds the full container in memory and writes it in one
// shot, so a failed write never leaves a partially valid file behind.
func SaveBool(path string, shape []int, data []byte) error {
	var buf bytes.Buffer
	if err := WriteBool(&buf, shape, data); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
