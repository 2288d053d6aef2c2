package metadata

import "fmt"

// A Service that takes care of the persistence of replica metadata.
//
// Implementations are synchronous and are not safe for concurrent use on
// the same data directory; the owning replica's control loop is expected
// to serialise calls.
type Service interface {
	// Load returns the authoritative Record for the data directory. On
	// success both on-disk copies are guaranteed to exist and agree on
	// term and vote, with consecutive versions.
	//
	// A directory that has never held metadata yields a Record with zero
	// term and no vote.
	Load() (*Record, error)

	// Store persists the given Record.
	//
	// The caller is responsible for having incremented Version from the
	// last loaded or stored value; passing a Record with Version 0 is a
	// caller bug and panics rather than returning an error.
	Store(record *Record) error
}

// Corrupted is implemented by errors that mean the persisted state violates
// an invariant that a correct writer can never produce. These are fatal to
// Load and never silently recovered from.
type Corrupted interface {
	error
	corrupted()
}

// BadFormat is returned when a slot file was read fully but its format tag
// is not one this build understands.
type BadFormat struct {
	File   string
	Format uint64
}

func (e BadFormat) Error() string {
	return fmt.Sprintf("load %s: unknown format [%d]", e.File, e.Format)
}

func (e BadFormat) corrupted() {}

// ZeroVersion is returned when a slot file decodes to version 0, a value
// that is never written by a correct Store.
type ZeroVersion struct {
	File string
}

func (e ZeroVersion) Error() string {
	return fmt.Sprintf("load %s: version is set to zero", e.File)
}

func (e ZeroVersion) corrupted() {}

// OversizedSlot is returned when a slot file holds more bytes than an
// encoded Record. A write interrupted by a crash can only truncate the
// file, never lengthen it, so the extra bytes mean corruption.
type OversizedSlot struct {
	File string
	Size int64
}

func (e OversizedSlot) Error() string {
	return fmt.Sprintf("load %s: file has %d bytes, more than a metadata record", e.File, e.Size)
}

func (e OversizedSlot) corrupted() {}

// EqualVersions is returned when both slots decode to the same nonzero
// version. Writes alternate between the slots, so this can never happen
// in a directory only ever touched by one replica.
type EqualVersions struct {
	Version Version
}

func (e EqualVersions) Error() string {
	return fmt.Sprintf("metadata1 and metadata2 are both at version %d", e.Version)
}

func (e EqualVersions) corrupted() {}
