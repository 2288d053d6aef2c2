package metadata

import (
	domainMetadata "github.com/lloydmeta/raftmeta/internal/domain/metadata"
)

// Record is the API representation of the persisted replica metadata.
type Record struct {
	Version  uint64 `json:"version"`
	Term     uint64 `json:"term"`
	VotedFor uint64 `json:"voted_for"`
}

func FromDomainRecord(record *domainMetadata.Record) Record {
	return Record{
		Version:  uint64(record.Version),
		Term:     uint64(record.Term),
		VotedFor: uint64(record.VotedFor),
	}
}

// NewState is a request to overwrite the persisted term and vote. Intended
// for operator intervention on a stopped replica; the version is managed by
// the server, not the caller.
type NewState struct {
	Term     uint64 `json:"term" binding:"required"`
	VotedFor uint64 `json:"voted_for"`
}

func (n *NewState) ToDomainRecord(version domainMetadata.Version) domainMetadata.Record {
	return domainMetadata.Record{
		Version:  version,
		Term:     domainMetadata.Term(n.Term),
		VotedFor: domainMetadata.CandidateID(n.VotedFor),
	}
}
