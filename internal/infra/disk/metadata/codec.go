package metadata

import (
	"encoding/binary"
	"fmt"

	"github.com/lloydmeta/raftmeta/internal/domain/metadata"
)

// diskFormat is the on-disk format tag, the first field of every slot file.
const diskFormat uint64 = 1

// recordSize is the encoded size of a Record: format tag, version, term and
// voted_for, 8 bytes each.
const recordSize = 8 * 4

// MalformedErr is returned by decodeRecord when the format tag is not one
// this build understands.
type MalformedErr struct {
	Format uint64
}

func (e MalformedErr) Error() string {
	return fmt.Sprintf("unknown disk format [%d], expected [%d]", e.Format, diskFormat)
}

// encodeRecord renders the record into its fixed 32-byte on-disk form,
// all fields little-endian.
func encodeRecord(record *metadata.Record, buf *[recordSize]byte) {
	binary.LittleEndian.PutUint64(buf[0:8], diskFormat)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(record.Version))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(record.Term))
	binary.LittleEndian.PutUint64(buf[24:32], uint64(record.VotedFor))
}

// decodeRecord parses the fixed 32-byte on-disk form. The only validation
// done here is the format tag; semantic checks like a nonzero version
// belong to the slot loader.
func decodeRecord(buf *[recordSize]byte) (*metadata.Record, error) {
	format := binary.LittleEndian.Uint64(buf[0:8])
	if format != diskFormat {
		return nil, MalformedErr{Format: format}
	}
	return &metadata.Record{
		Version:  metadata.Version(binary.LittleEndian.Uint64(buf[8:16])),
		Term:     metadata.Term(binary.LittleEndian.Uint64(buf[16:24])),
		VotedFor: metadata.CandidateID(binary.LittleEndian.Uint64(buf[24:32])),
	}, nil
}
