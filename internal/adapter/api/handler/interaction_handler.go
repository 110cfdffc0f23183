package handler

import (
	"github.com/labstack/echo/v4"

	"protegeo/internal/usecase"
	"protegeo/pkg/errors"
	"protegeo/pkg/response"
)

type InteractionHandler struct {
	interactionUseCase *usecase.InteractionUseCase
}

func NewInteractionHandler(interactionUseCase *usecase.InteractionUseCase) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
	}
}

func (h *InteractionHandler) GetInteractions(c echo.Context) error {
	reportID := c.Param("id")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	interactions, err := h.interactionUseCase.GetInteractions(c.Request().Context(), reportID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, interactions)
}

func (h *InteractionHandler) ToggleFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	reportID := c.Param("id")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	result, err := h.interactionUseCase.ToggleFavorite(c.Request().Context(), reportID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *InteractionHandler) RecordVote(c echo.Context) error {
	userID := c.Get("uid").(string)
	reportID := c.Param("id")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	interactions, err := h.interactionUseCase.RecordVote(c.Request().Context(), reportID, userID)
	if err != nil {
		// A duplicate vote is a no-op notice, not a failure.
		if errors.Is(err, "ALREADY_VOTED") {
			return response.Success(c, map[string]interface{}{
				"already_voted": true,
				"message":       "You already indicated this report as resolved",
			})
		}
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"already_voted": false,
		"votes_count":   len(interactions.ResolvedVotes),
	})
}
