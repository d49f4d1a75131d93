package handler

import (
	"github.com/labstack/echo/v4"

	"tokohub/internal/usecase"
	"tokohub/pkg/response"
)

type InteractionHandler struct {
	interactionUseCase *usecase.InteractionUseCase
	commentUseCase     *usecase.CommentUseCase
	ratingUseCase      *usecase.RatingUseCase
}

func NewInteractionHandler(
	interactionUseCase *usecase.InteractionUseCase,
	commentUseCase *usecase.CommentUseCase,
	ratingUseCase *usecase.RatingUseCase,
) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		commentUseCase:     commentUseCase,
		ratingUseCase:      ratingUseCase,
	}
}

// likeRequest has no required tags: an absent user id is a documented no-op,
// not a validation failure.
type likeRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

func (h *InteractionHandler) ToggleLike(c echo.Context) error {
	id := c.Param("id")

	var req likeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.interactionUseCase.ToggleLike(c.Request().Context(), id, req.UserID, req.UserName)
	if err != nil {
		return response.Error(c, err)
	}

	message := "No action taken"
	if result.Changed {
		if result.Liked {
			message = "Product liked"
		} else {
			message = "Product unliked"
		}
	}

	return response.Success(c, map[string]interface{}{
		"liked":   result.Liked,
		"changed": result.Changed,
		"message": message,
	})
}

type commentRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

func (h *InteractionHandler) UpsertComment(c echo.Context) error {
	id := c.Param("id")

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	replaced, err := h.commentUseCase.UpsertComment(c.Request().Context(), id, req.UserID, req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	message := "Comment added"
	if replaced {
		message = "Comment updated"
	}

	return response.Success(c, map[string]string{
		"message": message,
	})
}

type ratingRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Rating int    `json:"rating" validate:"required"`
}

func (h *InteractionHandler) UpsertRating(c echo.Context) error {
	id := c.Param("id")

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.ratingUseCase.UpsertRating(c.Request().Context(), id, req.UserID, req.Rating)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message":        "Rating submitted successfully",
		"overall_rating": product.OverallRating,
	})
}
