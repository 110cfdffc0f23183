package handler

import (
	"github.com/labstack/echo/v4"

	"protegeo/internal/usecase"
	"protegeo/pkg/errors"
	"protegeo/pkg/response"
)

type CommentHandler struct {
	commentUseCase *usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
	}
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required,min=3,max=500"`
}

func (h *CommentHandler) AddComment(c echo.Context) error {
	userID := c.Get("uid").(string)
	reportID := c.Param("id")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comment, err := h.commentUseCase.AddComment(c.Request().Context(), reportID, userID, req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, comment)
}

func (h *CommentHandler) ListComments(c echo.Context) error {
	reportID := c.Param("id")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	comments, err := h.commentUseCase.ListComments(c.Request().Context(), reportID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, comments)
}
