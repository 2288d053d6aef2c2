// metadata contains models for the durable state a consensus replica must
// never lose across restarts: the current election term and the candidate
// voted for in it, stamped with a write-sequence version.
package metadata

type Version uint64
type Term uint64
type CandidateID uint64

// None is the CandidateID of a Record that holds no vote.
const None CandidateID = 0

// Record is the replica metadata as persisted in the data directory.
//
// Version is a logical write-sequence number; it determines which on-disk
// slot a write targets and which of the two slots is authoritative on load.
// Version 0 means "never written" and is only ever an in-memory value: a
// Record that has been durably written always has Version >= 1.
type Record struct {
	Version  Version
	Term     Term
	VotedFor CandidateID
}

// HasVote returns whether the Record carries a vote.
func (r *Record) HasVote() bool {
	return r.VotedFor != None
}
