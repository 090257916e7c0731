package npy

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	shape := []int{4, 3, 3, 3}
	data := make([]byte, 4*27)
	for i := range data {
		data[i] = byte(i % 2)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBool(&buf, shape, data))

	gotShape, gotData, err := ReadBool(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, shape, gotShape)
	assert.Equal(t, data, gotData)
}

func TestWriteReadOneDimensional(t *testing.T) {
	// 1-tuples are written with a trailing comma, "(5,)".
	var buf bytes.Buffer
	require.NoError(t, WriteBool(&buf, []int{5}, []byte{1, 0, 1, 0, 1}))
	assert.Contains(t, buf.String(), "(5,)")

	shape, data, err := ReadBool(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []int{5}, shape)
	assert.Equal(t, []byte{1, 0, 1, 0, 1}, data)
}

func TestHeaderAlignment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBool(&buf, []int{2, 3, 3, 3}, make([]byte, 54)))

	raw := buf.Bytes()
	headerEnd := len(raw) - 54
	assert.Equal(t, 0, headerEnd%64, "data section must start on a 64-byte boundary")
	assert.Equal(t, byte('\n'), raw[headerEnd-1], "header must end with newline")
}

func TestWriteShapeMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBool(&buf, []int{3, 3}, make([]byte, 8))
	assert.True(t, errors.Is(err, ErrShape))

	err = WriteBool(&buf, []int{-1}, nil)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestReadErrors(t *testing.T) {
	_, _, err := ReadBool(bytes.NewReader([]byte("not a numpy file")))
	assert.True(t, errors.Is(err, ErrBadMagic))

	_, _, err = ReadBool(bytes.NewReader(nil))
	assert.True(t, errors.Is(err, ErrBadMagic))

	// Valid preamble and header, truncated data.
	var buf bytes.Buffer
	require.NoError(t, WriteBool(&buf, []int{10}, make([]byte, 10)))
	raw := buf.Bytes()
	_, _, err = ReadBool(bytes.NewReader(raw[:len(raw)-4]))
	assert.Error(t, err)
}

func TestReadRejectsOtherDtypes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBool(&buf, []int{2}, []byte{0, 1}))
	raw := bytes.Replace(buf.Bytes(), []byte("|b1"), []byte("<f8"), 1)

	_, _, err := ReadBool(bytes.NewReader(raw))
	assert.True(t, errors.Is(err, ErrDType))
}

func TestReadRejectsFortranOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBool(&buf, []int{2}, []byte{0, 1}))
	raw := bytes.Replace(buf.Bytes(), []byte("False"), []byte("True "), 1)

	_, _, err := ReadBool(bytes.NewReader(raw))
	assert.True(t, errors.Is(err, ErrFortran))
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.npy")
	shape := []int{2, 3, 3, 3}
	data := make([]byte, 54)
	data[0], data[53] = 1, 1

	require.NoError(t, SaveBool(path, shape, data))
	gotShape, gotData, err := LoadBool(path)
	require.NoError(t, err)
	assert.Equal(t, shape, gotShape)
	assert.Equal(t, data, gotData)
}

func TestSaveLoadZstd(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "t.npy")
	packed := filepath.Join(dir, "t.npy.zst")
	shape := []int{3, 3, 3}
	data := make([]byte, 27)
	for i := range data {
		data[i] = byte((i + 1) % 2)
	}

	require.NoError(t, SaveBool(plain, shape, data))
	require.NoError(t, SaveBoolZstd(packed, shape, data))

	s1, d1, err := LoadBool(plain)
	require.NoError(t, err)
	s2, d2, err := LoadBool(packed)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, d1, d2)
}

func TestSaveBoolUnwritablePath(t *testing.T) {
	err := SaveBool(filepath.Join(t.TempDir(), "missing", "dir", "t.npy"), []int{1}, []byte{1})
	assert.Error(t, err)
}
