package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/config"
	"github.com/iliyamo/movie-catalog-api/internal/model"
	"github.com/iliyamo/movie-catalog-api/internal/repository"
	"github.com/iliyamo/movie-catalog-api/internal/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore is the user data access, implemented by *repository.UserRepo.
type UserStore interface {
	Create(ctx context.Context, email, password string, cost int) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, u UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /user/register. Both fields are required, the email
// must look like an address, and a duplicate registration is a conflict.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest,
			"Request body incomplete, both email and password are required")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest,
			"Request body incomplete, both email and password are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return fail(c, http.StatusBadRequest, "Invalid email address")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Users.Create(ctx, req.Email, req.Password, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return fail(c, http.StatusConflict, "User already exists.")
		}
		return fail(c, http.StatusInternalServerError, "create user failed")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User created"})
}

// Login handles POST /user/login. Unknown email and wrong password produce
// the same 401 so the response does not leak which accounts exist. A
// missing signing secret is a server configuration problem, reported as 500
// at request time.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest,
			"Request body incomplete, both email and password are required")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest,
			"Request body incomplete, both email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusUnauthorized, "Incorrect email or password")
		}
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	if !utils.VerifyPassword(u.Hash, req.Password) {
		return fail(c, http.StatusUnauthorized, "Incorrect email or password")
	}

	if h.Cfg.JWTSecret == "" {
		return fail(c, http.StatusInternalServerError, "Server configuration error")
	}
	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.Email)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Server configuration error")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token":      token,
		"token_type": "Bearer",
		"expires_in": utils.TokenTTLSeconds,
	})
}
