package handler

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/usecase"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/response"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type createProfileRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,len=10,numeric"`
	Bio      string `json:"bio"`
	Pincode  string `json:"pincode" validate:"omitempty,len=6,numeric"`
}

func (h *UserHandler) CreateProfile(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.CreateProfile(
		c.Request().Context(),
		uid,
		usecase.CreateProfileInput{
			Username: req.Username,
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Bio:      req.Bio,
			Pincode:  req.Pincode,
		},
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone" validate:"omitempty,len=10,numeric"`
	Bio     string `json:"bio"`
	Pincode string `json:"pincode" validate:"omitempty,len=6,numeric"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(
		c.Request().Context(),
		uid,
		usecase.UpdateProfileInput{
			Name:    req.Name,
			Phone:   req.Phone,
			Bio:     req.Bio,
			Pincode: req.Pincode,
		},
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
