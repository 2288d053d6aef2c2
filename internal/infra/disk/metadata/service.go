// metadata persists replica metadata Records as two alternating fixed-size
// slot files, `metadata1` and `metadata2`, in the replica's data directory.
//
// A single slot file cannot be replaced atomically, so overwriting the only
// copy would risk losing the previous value to a crash mid-write. Instead,
// writes alternate between the two slots based on the parity of the record
// version: odd versions go to slot 1, even versions to slot 2. A crash can
// only ever tear the slot being written; the other slot still holds the
// previous good value, and the loader picks whichever decodable slot has
// the strictly higher version.
package metadata

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lloydmeta/raftmeta/internal/domain/metadata"
	"github.com/lloydmeta/raftmeta/internal/infra/fs"
)

// FS is the slice of filesystem behaviour the disk service needs. fs.Dir
// implements it; tests can substitute failing implementations.
type FS interface {
	FileExists(name string) (bool, error)
	ReadFileInto(name string, buf []byte) error
	CreateOrReplaceFile(name string, data []byte, flush bool) error
	Sync() error
}

var _ FS = fs.Dir("")

type DiskService struct {
	dir FS
}

func NewService(dir FS) metadata.Service {
	return &DiskService{dir: dir}
}

// Load reads both slots, picks the authoritative Record, and rewrites both
// slots from it so that they exist and are consistent even on a directory
// that has never been written to. The returned Record carries the version
// of the newer rewritten slot, so a caller bumping it by one keeps the
// alternation going.
func (s *DiskService) Load() (*metadata.Record, error) {
	record1, err := s.loadSlot(1)
	if err != nil {
		return nil, err
	}
	logSlot(1, record1)

	record2, err := s.loadSlot(2)
	if err != nil {
		return nil, err
	}
	logSlot(2, record2)

	var authoritative *metadata.Record
	switch {
	case record1.Version == 0 && record2.Version == 0:
		// Neither slot exists: a brand new replica.
		authoritative = &metadata.Record{}
	case record1.Version == record2.Version:
		// Writes alternate slots, so two slots at the same version can
		// never have been produced by a correct writer.
		return nil, metadata.EqualVersions{Version: record1.Version}
	case record1.Version > record2.Version:
		authoritative = record1
	default:
		authoritative = record2
	}

	if err := s.ensure(authoritative); err != nil {
		return nil, err
	}
	return authoritative, nil
}

// Store encodes the record and durably writes it to the slot implied by the
// parity of its version. Only this method may write slot files.
func (s *DiskService) Store(record *metadata.Record) error {
	if record.Version == 0 {
		panic("refusing to store metadata with version 0")
	}

	var buf [recordSize]byte
	encodeRecord(record, &buf)

	name := slotName(slotOf(record.Version))
	return s.dir.CreateOrReplaceFile(name, buf[:], true)
}

// loadSlot reads and validates slot n.
//
// A missing file is not an error: the zero Record is returned. The same
// goes for a file shorter than a full Record, which is what a crash during
// a write leaves behind; treating it as data loss would needlessly discard
// the other, possibly good slot.
func (s *DiskService) loadSlot(n int) (*metadata.Record, error) {
	name := slotName(n)

	exists, err := s.dir.FileExists(name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &metadata.Record{}, nil
	}

	var buf [recordSize]byte
	if err := s.dir.ReadFileInto(name, buf[:]); err != nil {
		if sizeErr, ok := err.(fs.SizeErr); ok {
			if sizeErr.Short() {
				log.Warn().
					Str("file", name).
					Int64("size", sizeErr.Actual).
					Msg("Ignoring incomplete metadata slot")
				return &metadata.Record{}, nil
			}
			// A torn write can only shorten the file; extra bytes mean
			// something else mangled it.
			return nil, metadata.OversizedSlot{File: name, Size: sizeErr.Actual}
		}
		return nil, err
	}

	record, err := decodeRecord(&buf)
	if err != nil {
		malformed := err.(MalformedErr)
		log.Error().
			Str("file", name).
			Uint64("format", malformed.Format).
			Msg("Bad metadata format")
		return nil, metadata.BadFormat{File: name, Format: malformed.Format}
	}

	if record.Version == 0 {
		log.Error().
			Str("file", name).
			Msg("Metadata slot version is set to zero")
		return nil, metadata.ZeroVersion{File: name}
	}

	return record, nil
}

// ensure rewrites both slots from the given record, bumping its version
// before each write, then syncs the directory so the entries for any newly
// created slot files are themselves durable. No rollback is attempted on
// failure; the next Load redoes the reconciliation from whatever slots
// ended up present.
func (s *DiskService) ensure(record *metadata.Record) error {
	for i := 0; i < 2; i++ {
		record.Version++
		if err := s.Store(record); err != nil {
			return err
		}
	}
	return s.dir.Sync()
}

// slotName returns the file name of slot n, which must be 1 or 2.
func slotName(n int) string {
	if n != 1 && n != 2 {
		panic(fmt.Sprintf("invalid metadata slot [%d]", n))
	}
	return fmt.Sprintf("metadata%d", n)
}

// slotOf returns the slot a record with the given version is written to:
// odd versions go to slot 1, even versions to slot 2.
func slotOf(version metadata.Version) int {
	if version%2 == 1 {
		return 1
	}
	return 2
}

func logSlot(n int, record *metadata.Record) {
	log.Debug().
		Int("slot", n).
		Uint64("version", uint64(record.Version)).
		Uint64("term", uint64(record.Term)).
		Uint64("voted_for", uint64(record.VotedFor)).
		Msg("Loaded metadata slot")
}
