package metadata

import (
	"net/http"

	"github.com/lloydmeta/raftmeta/internal/api/models/common"
	"github.com/lloydmeta/raftmeta/internal/api/models/metadata"
	domainMetadata "github.com/lloydmeta/raftmeta/internal/domain/metadata"
	"github.com/lloydmeta/raftmeta/internal/infra/fs"
)

// Controller is an interface that defines the methods that are available to the routing
// layer. It is framework-agnostic
type Controller interface {

	// Get returns the current authoritative metadata Record, re-establishing
	// both on-disk copies along the way.
	Get() (*metadata.Record, *common.ApiError)

	// Set force-sets the persisted term and vote, returning the Record that
	// was written.
	Set(newState *metadata.NewState) (*metadata.Record, *common.ApiError)
}

func New(service domainMetadata.Service) Controller {
	return &impl{
		service: service,
	}
}

type impl struct {
	service domainMetadata.Service
}

func (c *impl) Get() (*metadata.Record, *common.ApiError) {
	result, err := c.service.Load()
	if err != nil {
		return nil, handleErr(err)
	} else {
		r := metadata.FromDomainRecord(result)
		return &r, nil
	}
}

func (c *impl) Set(newState *metadata.NewState) (*metadata.Record, *common.ApiError) {
	current, err := c.service.Load()
	if err != nil {
		return nil, handleErr(err)
	}
	next := newState.ToDomainRecord(current.Version + 1)
	if err := c.service.Store(&next); err != nil {
		return nil, handleErr(err)
	}
	r := metadata.FromDomainRecord(&next)
	return &r, nil
}

func handleErr(err error) *common.ApiError {
	switch v := err.(type) {
	case domainMetadata.Corrupted:
		return corrupted(v)
	case fs.IoErr:
		return storageFailure(v)
	default:
		return unhandledErr(v)
	}
}

func corrupted(corrupted domainMetadata.Corrupted) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusInternalServerError,
		Body: common.Body{
			Message: corrupted.Error(),
		},
	}
}

func storageFailure(ioErr fs.IoErr) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusServiceUnavailable,
		Body: common.Body{
			Message: ioErr.Error(),
		},
	}
}

func unhandledErr(err error) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusInternalServerError,
		Body: common.Body{
			Message: err.Error(),
		},
	}
}
