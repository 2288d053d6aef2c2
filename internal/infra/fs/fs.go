// fs contains thin, directory-scoped wrappers around the handful of
// filesystem operations the disk layer is allowed to perform.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dir is a data directory that all operations are scoped to.
type Dir string

// IoErr is returned when an underlying filesystem operation fails for
// reasons unrelated to content: device errors, permissions and the like.
type IoErr struct {
	Op         string
	File       string
	Underlying error
}

func (e IoErr) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.File, e.Underlying)
}

func (e IoErr) Unwrap() error {
	return e.Underlying
}

// SizeErr is returned by ReadFileInto when the file does not hold exactly
// the requested number of bytes.
type SizeErr struct {
	File     string
	Actual   int64
	Expected int64
}

func (e SizeErr) Error() string {
	return fmt.Sprintf("read %s: expected %d bytes, found %d", e.File, e.Expected, e.Actual)
}

// Short reports whether the file held fewer bytes than requested, which is
// what a write interrupted by a crash leaves behind.
func (e SizeErr) Short() bool {
	return e.Actual < e.Expected
}

// FileExists checks whether name exists in the directory.
func (d Dir) FileExists(name string) (bool, error) {
	_, err := os.Stat(d.join(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, IoErr{Op: "check if exists", File: name, Underlying: err}
}

// ReadFileInto fills buf with the content of name, requiring the file to
// hold exactly len(buf) bytes.
func (d Dir) ReadFileInto(name string, buf []byte) error {
	f, err := os.Open(d.join(name))
	if err != nil {
		return IoErr{Op: "open", File: name, Underlying: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return IoErr{Op: "stat", File: name, Underlying: err}
	}
	if info.Size() != int64(len(buf)) {
		return SizeErr{File: name, Actual: info.Size(), Expected: int64(len(buf))}
	}

	if _, err := io.ReadFull(f, buf); err != nil {
		return IoErr{Op: "read", File: name, Underlying: err}
	}
	return nil
}

// CreateOrReplaceFile writes data as the entire new content of name,
// creating the file if it does not exist. When flush is true the file is
// fsynced before returning.
//
// The replacement is not atomic: a crash mid-write can leave a truncated
// file. Callers that need to survive that keep more than one copy.
func (d Dir) CreateOrReplaceFile(name string, data []byte, flush bool) error {
	f, err := os.OpenFile(d.join(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return IoErr{Op: "create", File: name, Underlying: err}
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return IoErr{Op: "write", File: name, Underlying: err}
	}

	if flush {
		if err := f.Sync(); err != nil {
			_ = f.Close()
			return IoErr{Op: "sync", File: name, Underlying: err}
		}
	}

	if err := f.Close(); err != nil {
		return IoErr{Op: "close", File: name, Underlying: err}
	}
	return nil
}

// Sync fsyncs the directory itself, making the directory entries of newly
// created files durable.
func (d Dir) Sync() error {
	f, err := os.Open(string(d))
	if err != nil {
		return IoErr{Op: "open", File: string(d), Underlying: err}
	}
	defer f.Close()

	if err := f.Sync(); err != nil {
		return IoErr{Op: "sync", File: string(d), Underlying: err}
	}
	return nil
}

func (d Dir) join(name string) string {
	return filepath.Join(string(d), name)
}
