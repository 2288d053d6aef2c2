package fs

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tempDir(t *testing.T) Dir {
	t.Helper()
	dir, err := ioutil.TempDir("", "fs-test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.RemoveAll(dir)
	})
	return Dir(dir)
}

func TestDir_FileExists(t *testing.T) {
	dir := tempDir(t)

	exists, err := dir.FileExists("nope")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, dir.CreateOrReplaceFile("yep", []byte("hello"), false))
	exists, err = dir.FileExists("yep")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestDir_ReadFileInto(t *testing.T) {
	dir := tempDir(t)
	assert.NoError(t, dir.CreateOrReplaceFile("data", []byte("12345678"), false))

	buf := make([]byte, 8)
	assert.NoError(t, dir.ReadFileInto("data", buf))
	assert.EqualValues(t, "12345678", string(buf))
}

func TestDir_ReadFileInto_missing(t *testing.T) {
	dir := tempDir(t)

	buf := make([]byte, 8)
	err := dir.ReadFileInto("data", buf)
	if assert.Error(t, err) {
		ioErr, ok := err.(IoErr)
		assert.True(t, ok)
		assert.EqualValues(t, "open", ioErr.Op)
		assert.EqualValues(t, "data", ioErr.File)
		assert.Error(t, ioErr.Unwrap())
	}
}

func TestDir_ReadFileInto_sizeMismatch(t *testing.T) {
	type sizes struct {
		written int
		wanted  int
	}
	tests := []struct {
		name      string
		sizes     sizes
		wantShort bool
	}{
		{
			name:      "shorter than wanted",
			sizes:     sizes{written: 3, wanted: 8},
			wantShort: true,
		},
		{
			name:      "longer than wanted",
			sizes:     sizes{written: 13, wanted: 8},
			wantShort: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tempDir(t)
			assert.NoError(t, dir.CreateOrReplaceFile("data", make([]byte, tt.sizes.written), false))

			err := dir.ReadFileInto("data", make([]byte, tt.sizes.wanted))
			if assert.Error(t, err) {
				sizeErr, ok := err.(SizeErr)
				assert.True(t, ok)
				assert.EqualValues(t, tt.sizes.written, sizeErr.Actual)
				assert.EqualValues(t, tt.sizes.wanted, sizeErr.Expected)
				assert.EqualValues(t, tt.wantShort, sizeErr.Short())
			}
		})
	}
}

func TestDir_CreateOrReplaceFile(t *testing.T) {
	dir := tempDir(t)

	assert.NoError(t, dir.CreateOrReplaceFile("data", []byte("first"), false))
	assert.NoError(t, dir.CreateOrReplaceFile("data", []byte("second, and longer"), true))

	content, err := ioutil.ReadFile(filepath.Join(string(dir), "data"))
	assert.NoError(t, err)
	assert.EqualValues(t, "second, and longer", string(content))
}

func TestDir_Sync(t *testing.T) {
	dir := tempDir(t)
	assert.NoError(t, dir.Sync())
}

func TestDir_Sync_missingDir(t *testing.T) {
	dir := Dir(filepath.Join(string(tempDir(t)), "does-not-exist"))
	err := dir.Sync()
	if assert.Error(t, err) {
		_, ok := err.(IoErr)
		assert.True(t, ok)
	}
}
