package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nine-chairs/myflix-api/internal/api/metrics"
	"github.com/nine-chairs/myflix-api/internal/core/ports"
)

// UserHandler handles profile and favorites operations. All routes sit behind
// the access gate; mutations additionally require the acting principal to own
// the target record (enforced in the service layer).
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns all registered users (projections, no password hashes).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single user by username.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  domain.User
// @Failure      404       {object}  map[string]string
// @Router       /users/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update applies a partial profile update to the caller's own record.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string             true  "Username"
// @Param        body      body      updateUserRequest  true  "Fields to update"
// @Success      200       {object}  domain.User
// @Failure      403       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /users/{username} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), actor.Username, c.Param("username"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete deregisters the caller's own account.
//
// @Summary      Deregister a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  deleteUserResponse
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}

	username := c.Param("username")
	if err := h.service.Delete(c.Request().Context(), actor.Username, username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteUserResponse{Message: username + " was deleted"})
}

// AddFavorite appends a movie to the caller's favorites.
//
// @Summary      Add a favorite movie
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        movieID   path      string  true  "Movie ID"
// @Success      200       {object}  domain.User
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /users/{username}/movies/{movieID} [post]
func (h *UserHandler) AddFavorite(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}

	updated, err := h.service.AddFavorite(c.Request().Context(), actor.Username, c.Param("username"), c.Param("movieID"))
	if err != nil {
		return err
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, updated)
}

// RemoveFavorite removes a movie from the caller's favorites. Removing an ID
// that is not in the list succeeds and leaves the list unchanged.
//
// @Summary      Remove a favorite movie
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        movieID   path      string  true  "Movie ID"
// @Success      200       {object}  domain.User
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /users/{username}/movies/{movieID} [delete]
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}

	updated, err := h.service.RemoveFavorite(c.Request().Context(), actor.Username, c.Param("username"), c.Param("movieID"))
	if err != nil {
		return err
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, updated)
}

// ListFavorites returns the ordered favorites sequence for a user.
//
// @Summary      List a user's favorite movies
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {array}   string
// @Failure      404       {object}  map[string]string
// @Router       /users/{username}/movies [get]
func (h *UserHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.service.ListFavorites(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favorites)
}
