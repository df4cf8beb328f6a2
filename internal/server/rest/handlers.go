package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/radar/internal/common"
	"github.com/dmitrijs2005/radar/internal/server/models"
	"github.com/labstack/echo/v4"
)

// UserGateway is the store-facing side the handlers depend on.
type UserGateway interface {
	Create(ctx context.Context, email, password string) (int64, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

const (
	detailEmailExists      = "Email already exists"
	detailUserNotFound     = "User not found"
	detailUpdateNotFound   = "User not found or no fields to update"
	detailNoFieldsToUpdate = "No fields to update"
	detailInvalidBody      = "Invalid request body"
	detailInvalidUserID    = "Invalid user id"
	detailFieldsRequired   = "Email and password are required"
	detailInvalidFields    = "Invalid email or password"
	messageUserUpdated     = "User updated successfully"
	messageUserDeleted     = "User deleted successfully"
)

func (s *Server) registerRoutes() {
	g := s.echo.Group("/users")
	g.POST("", s.createUser)
	g.GET("", s.listUsers)
	g.GET("/:id", s.getUser)
	g.PUT("/:id", s.updateUser)
	g.DELETE("/:id", s.deleteUser)
}

// createUser (POST /users) returns 201 {id, email}; a taken email is a 400.
func (s *Server) createUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, detailInvalidBody, err)
	}
	if req.Email == "" || req.Password == "" {
		return NewAPIError(http.StatusBadRequest, detailFieldsRequired, common.ErrorValidation)
	}

	id, err := s.users.Create(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapGatewayError(err)
	}

	return c.JSON(http.StatusCreated, userResponse{ID: id, Email: req.Email})
}

// listUsers (GET /users)
func (s *Server) listUsers(c echo.Context) error {
	list, err := s.users.List(c.Request().Context())
	if err != nil {
		return mapGatewayError(err)
	}
	return c.JSON(http.StatusOK, toUsersResponse(list))
}

// getUser (GET /users/:id)
func (s *Server) getUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	u, err := s.users.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return NewAPIError(http.StatusNotFound, detailUserNotFound, err)
		}
		return mapGatewayError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(*u))
}

// updateUser (PUT /users/:id) changes only the supplied fields. Zero affected
// rows is reported as 404 unless strict mode rejects empty updates up front.
func (s *Server) updateUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, detailInvalidBody, err)
	}

	upd := req.toModel()
	if s.strictUpdate && upd.Empty() {
		return NewAPIError(http.StatusBadRequest, detailNoFieldsToUpdate, common.ErrNoFieldsToUpdate)
	}

	n, err := s.users.Update(c.Request().Context(), id, upd)
	if err != nil {
		return mapGatewayError(err)
	}
	if n == 0 {
		return NewAPIError(http.StatusNotFound, detailUpdateNotFound, nil)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: messageUserUpdated})
}

// deleteUser (DELETE /users/:id)
func (s *Server) deleteUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	n, err := s.users.Delete(c.Request().Context(), id)
	if err != nil {
		return mapGatewayError(err)
	}
	if n == 0 {
		return NewAPIError(http.StatusNotFound, detailUserNotFound, nil)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: messageUserDeleted})
}

func userID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, NewAPIError(http.StatusBadRequest, detailInvalidUserID, err)
	}
	return id, nil
}

// mapGatewayError turns domain errors into client errors. Everything else is
// returned as is and ends up as a logged 500.
func mapGatewayError(err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return NewAPIError(http.StatusBadRequest, detailEmailExists, err)
	case errors.Is(err, common.ErrorValidation):
		return NewAPIError(http.StatusBadRequest, detailInvalidFields, err)
	case errors.Is(err, common.ErrorNotFound):
		return NewAPIError(http.StatusNotFound, detailUserNotFound, err)
	}
	return err
}
