package metadata

import (
	"testing"
)

func TestBadFormat_Error(t *testing.T) {
	type fields struct {
		File   string
		Format uint64
	}
	tests := []struct {
		name   string
		fields fields
		want   string
	}{
		{
			name: "error string",
			fields: fields{
				File:   "metadata1",
				Format: 7,
			},
			want: "load metadata1: unknown format [7]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := BadFormat{
				File:   tt.fields.File,
				Format: tt.fields.Format,
			}
			if got := e.Error(); got != tt.want {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZeroVersion_Error(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{
			name: "error string",
			file: "metadata2",
			want: "load metadata2: version is set to zero",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ZeroVersion{
				File: tt.file,
			}
			if got := e.Error(); got != tt.want {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualVersions_Error(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		want    string
	}{
		{
			name:    "error string",
			version: 42,
			want:    "metadata1 and metadata2 are both at version 42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EqualVersions{
				Version: tt.version,
			}
			if got := e.Error(); got != tt.want {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOversizedSlot_Error(t *testing.T) {
	tests := []struct {
		name   string
		fields OversizedSlot
		want   string
	}{
		{
			name: "error string",
			fields: OversizedSlot{
				File: "metadata1",
				Size: 64,
			},
			want: "load metadata1: file has 64 bytes, more than a metadata record",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fields.Error(); got != tt.want {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecord_HasVote(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   bool
	}{
		{
			name:   "no vote",
			record: Record{Version: 1, Term: 1, VotedFor: None},
			want:   false,
		},
		{
			name:   "voted",
			record: Record{Version: 1, Term: 1, VotedFor: 3},
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.HasVote(); got != tt.want {
				t.Errorf("HasVote() = %v, want %v", got, tt.want)
			}
		})
	}
}
