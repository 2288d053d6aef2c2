package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainMetadata "github.com/lloydmeta/raftmeta/internal/domain/metadata"
)

func TestFromDomainRecord(t *testing.T) {
	tests := []struct {
		name   string
		record domainMetadata.Record
		want   Record
	}{
		{
			name:   "zero record",
			record: domainMetadata.Record{},
			want:   Record{},
		},
		{
			name: "all fields",
			record: domainMetadata.Record{
				Version:  8,
				Term:     3,
				VotedFor: 1,
			},
			want: Record{
				Version:  8,
				Term:     3,
				VotedFor: 1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualValues(t, tt.want, FromDomainRecord(&tt.record))
		})
	}
}

func TestNewState_ToDomainRecord(t *testing.T) {
	newState := NewState{
		Term:     5,
		VotedFor: 2,
	}
	want := domainMetadata.Record{
		Version:  9,
		Term:     5,
		VotedFor: 2,
	}
	assert.EqualValues(t, want, newState.ToDomainRecord(9))
}
