package http

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/pkg/response"
)

// Create godoc
// @Summary     Register a user
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User data"
// @Success     201 {object} userResp
// @Failure     409 {object} response.ErrResp "Email already in use"
// @Router      /users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, newUserResp(created))
}

// GetByID godoc
// @Summary     Get a user by id
// @Tags        User
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} userResp
// @Failure     404 {object} response.ErrResp
// @Router      /users/{id} [GET]
func (h *handler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	found, err := h.uc.GetByID(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByID: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newUserResp(found))
}

// Update godoc
// @Summary     Partially update a user
// @Description Blank fields keep the stored values.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       id   path int       true "User ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} userResp
// @Failure     404 {object} response.ErrResp
// @Failure     409 {object} response.ErrResp "Email already in use"
// @Router      /users/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	updated, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newUserResp(updated))
}

// Delete godoc
// @Summary     Delete a user
// @Tags        User
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} nil
// @Failure     404 {object} response.ErrResp
// @Router      /users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
