package handler

import (
	"github.com/labstack/echo/v4"

	"protegeo/internal/usecase"
	"protegeo/pkg/errors"
	"protegeo/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req struct {
		Name  string `json:"name" validate:"required,min=2,max=100"`
		Phone string `json:"phone" validate:"omitempty,min=8,max=20"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, req.Name, req.Phone)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
