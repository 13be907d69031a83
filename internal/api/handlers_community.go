package api

import (
	"github.com/daithanwa/dsi202-2025/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListProgress(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	entries, err := handler.progress.List(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func (handler *Handler) RecordProgress(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input services.ProgressInput
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	entry, err := handler.progress.Record(user.ID, input, handler.now())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": handler.translate(c, "success.progress_saved"),
		"entry":   entry,
	})
}

func (handler *Handler) ContentLibrary(c *fiber.Ctx) error {
	library, err := handler.content.Library(c.Query("category"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(library)
}

func (handler *Handler) ForumOverview(c *fiber.Ctx) error {
	overview, err := handler.forum.Overview()
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(overview)
}

func (handler *Handler) ForumTopic(c *fiber.Ctx) error {
	topicID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	topic, threads, err := handler.forum.Topic(topicID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"topic": topic, "threads": threads})
}

func (handler *Handler) CreateForumThread(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	topicID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	var input services.ThreadInput
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	thread, err := handler.forum.CreateThread(user.ID, topicID, input, handler.now())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": handler.translate(c, "success.thread_created"),
		"thread":  thread,
	})
}

func (handler *Handler) ForumThread(c *fiber.Ctx) error {
	threadID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	thread, err := handler.forum.Thread(threadID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"thread": thread})
}

func (handler *Handler) ReplyForumThread(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	threadID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	var input services.ReplyInput
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	reply, err := handler.forum.Reply(user.ID, threadID, input, handler.now())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": handler.translate(c, "success.reply_posted"),
		"reply":   reply,
	})
}
