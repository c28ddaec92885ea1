package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/tradeflows/promoflow/internal/queue"
	"github.com/tradeflows/promoflow/internal/scheduler"
	"github.com/tradeflows/promoflow/internal/service"
	"github.com/tradeflows/promoflow/internal/transfer"
)

type PostHandler struct {
	s           service.PostService
	engine      *scheduler.Engine
	AsynqClient *asynq.Client
}

func NewPostHandler(s service.PostService, engine *scheduler.Engine, asynqClient *asynq.Client) *PostHandler {
	return &PostHandler{s: s, engine: engine, AsynqClient: asynqClient}
}

// CreatePost inserts a manually authored post and hands it to the publish
// queue so it goes out at its scheduled time without waiting for a sweep.
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	postID, delay, err := h.s.Create(c.Context(), &pc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	err = queue.EnqueuePost(h.AsynqClient, queue.PublishPostPayload{PostID: postID}, delay)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error scheduling post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post scheduled successfully",
		"id":      postID,
	})
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	postID := c.QueryInt("id", 0)
	if postID != 0 {
		post, err := h.s.PostInfo(c.Context(), int64(postID))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusOK).JSON(post)
	}

	posts, err := h.s.List(c.Context(), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	postID := c.QueryInt("id", 0)

	err := h.s.Remove(c.Context(), int64(postID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove post",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

// PublishPost enqueues an immediate publish for one pending post.
func (h *PostHandler) PublishPost(c *fiber.Ctx) error {
	postID := c.QueryInt("id", 0)
	if postID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id is required",
		})
	}

	err := queue.EnqueuePost(h.AsynqClient, queue.PublishPostPayload{PostID: int64(postID)}, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error enqueueing publish",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Publish enqueued",
	})
}

// GenerateSchedule forces a daily-plan generation run, bypassing the
// once-per-day guard.
func (h *PostHandler) GenerateSchedule(c *fiber.Ctx) error {
	if err := h.engine.GenerateDailySchedule(c.Context(), true); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Schedule generated",
	})
}
