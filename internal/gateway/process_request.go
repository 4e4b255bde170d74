package gateway

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/model"
)

var (
	errBadPathID    = errors.New("id must be a positive integer")
	errNegativeFrom = errors.New("from must not be negative")
	errBadSize      = errors.New("size must be positive")
)

// pathID parses the :id URI param.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadPathID
	}
	return id, nil
}

// listBookingsReq carries the booking list query parameters.
type listBookingsReq struct {
	State string `form:"state,default=ALL"`
	From  int    `form:"from,default=0"`
	Size  int    `form:"size,default=10"`
}

// validate rejects unknown states and out-of-range pagination before
// anything reaches the server tier.
func (r listBookingsReq) validate() error {
	if _, err := model.ParseSearchState(r.State); err != nil {
		return err
	}
	if r.From < 0 {
		return errNegativeFrom
	}
	if r.Size <= 0 {
		return errBadSize
	}
	return nil
}
