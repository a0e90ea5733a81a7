package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, value string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Name"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", value))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestSessionLifecycle(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID())
	assert.False(t, s.Loaded())
	assert.Nil(t, s.Workbook())

	wb, err := s.LoadBytes(workbookBytes(t, "first"))
	require.NoError(t, err)
	assert.True(t, s.Loaded())
	assert.Equal(t, 1, wb.NumSheets())
	assert.Equal(t, "upload", s.Source())
	assert.False(t, s.LoadedAt().IsZero())

	s.Reset()
	assert.False(t, s.Loaded())
	assert.Nil(t, s.Workbook())
	assert.True(t, s.LoadedAt().IsZero())
}

func TestSessionFingerprintShortCircuit(t *testing.T) {
	s := New()
	b := workbookBytes(t, "same")

	first, err := s.LoadBytes(b)
	require.NoError(t, err)
	second, err := s.LoadBytes(b)
	require.NoError(t, err)
	assert.Same(t, first, second, "identical bytes should reuse the normalized workbook")

	third, err := s.LoadBytes(workbookBytes(t, "different"))
	require.NoError(t, err)
	assert.NotSame(t, first, third, "different bytes must replace the workbook wholesale")
}

func TestSessionLoadBadBytes(t *testing.T) {
	s := New()
	_, err := s.LoadBytes([]byte("junk"))
	require.Error(t, err)
	assert.False(t, s.Loaded())
}

func TestLoadFromPaths(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "Data.xlsx")
	require.NoError(t, os.WriteFile(good, workbookBytes(t, "x"), 0o644))

	s := New()
	wb, path, err := s.LoadFromPaths(filepath.Join(dir, "missing.xlsx"), good)
	require.NoError(t, err)
	assert.Equal(t, good, path)
	assert.Equal(t, "Data.xlsx", wb.BookName)
	assert.Equal(t, good, s.Source())
}

func TestLoadFromPathsAllFail(t *testing.T) {
	s := New()
	_, _, err := s.LoadFromPaths(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoWorkbook)
}
