package gateway

import (
	"errors"
	"strings"
	"time"

	"github.com/msshishlin/shareit/pkg/response"
)

// Request DTOs with the validation the server tier relies on. Bind tags
// reject missing or malformed fields; validate methods add the blank and
// time-window checks tags cannot express.

var (
	errBlankName        = errors.New("name must not be blank")
	errBlankDescription = errors.New("description must not be blank")
	errBlankText        = errors.New("text must not be blank")
	errStartInPast      = errors.New("start must not be in the past")
	errEndNotFuture     = errors.New("end must be in the future")
)

type createUserReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (r createUserReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errBlankName
	}
	return nil
}

type updateUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

type createItemReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   int64  `json:"requestId"`
}

func (r createItemReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errBlankName
	}
	if strings.TrimSpace(r.Description) == "" {
		return errBlankDescription
	}
	return nil
}

type updateItemReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

type createCommentReq struct {
	Text string `json:"text" binding:"required,max=512"`
}

func (r createCommentReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errBlankText
	}
	return nil
}

type createRequestReq struct {
	Description string `json:"description" binding:"required,max=512"`
}

func (r createRequestReq) validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return errBlankDescription
	}
	return nil
}

type createBookingReq struct {
	ItemID int64              `json:"itemId" binding:"required"`
	Start  *response.DateTime `json:"start" binding:"required"`
	End    *response.DateTime `json:"end" binding:"required"`
}

// validate checks the booking window against the gateway's clock: start
// may be now or later, end must be strictly in the future.
func (r createBookingReq) validate(now time.Time) error {
	if time.Time(*r.Start).Before(now) {
		return errStartInPast
	}
	if !time.Time(*r.End).After(now) {
		return errEndNotFuture
	}
	return nil
}
