package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

func TestForumThreadAndReplyFlow(t *testing.T) {
	harness := newTestApp(t)
	harness.seedCatalog(t)
	cookie := harness.register(t, "runner")
	topicID := harness.firstID(t, &models.ForumTopic{})

	harness.expect(t, http.MethodPost, fmt.Sprintf("/api/forum/topics/%d/threads", topicID), cookie, map[string]string{
		"title": "   ", "content": "body",
	}, http.StatusBadRequest)
	harness.expect(t, http.MethodPost, "/api/forum/topics/999999/threads", cookie, map[string]string{
		"title": "Lost", "content": "body",
	}, http.StatusNotFound)

	created := harness.expect(t, http.MethodPost, fmt.Sprintf("/api/forum/topics/%d/threads", topicID), cookie, map[string]string{
		"title": "  First 5k  ", "content": "How do I pace it?",
	}, http.StatusCreated)
	thread := jsonObject(t, created["thread"])
	if thread["title"] != "First 5k" {
		t.Fatalf("thread title = %v, want trimmed title", thread["title"])
	}
	threadID := jsonNumber(t, thread["id"])

	harness.expect(t, http.MethodPost, fmt.Sprintf("/api/forum/threads/%d/replies", threadID), cookie, map[string]string{"content": ""}, http.StatusBadRequest)
	harness.expect(t, http.MethodPost, fmt.Sprintf("/api/forum/threads/%d/replies", threadID), cookie, map[string]string{"content": "Start slow."}, http.StatusCreated)

	detail := harness.expect(t, http.MethodGet, fmt.Sprintf("/api/forum/threads/%d", threadID), cookie, nil, http.StatusOK)
	loaded := jsonObject(t, detail["thread"])
	replies := jsonArray(t, loaded["replies"])
	if len(replies) != 1 || jsonNumber(t, loaded["reply_count"]) != 1 {
		t.Fatalf("thread = %v, want one reply", loaded)
	}

	topic := harness.expect(t, http.MethodGet, fmt.Sprintf("/api/forum/topics/%d/threads", topicID), cookie, nil, http.StatusOK)
	if len(jsonArray(t, topic["threads"])) != 1 {
		t.Fatalf("topic = %v, want one thread", topic)
	}

	overview := harness.expect(t, http.MethodGet, "/api/forum", cookie, nil, http.StatusOK)
	topics := jsonArray(t, overview["topics"])
	if len(topics) != 1 {
		t.Fatalf("forum topics = %v, want one", topics)
	}
	lastActivity, _ := jsonObject(t, topics[0])["last_activity"].(string)
	if !strings.HasPrefix(lastActivity, "2026-03-04") {
		t.Fatalf("topic last_activity = %q, want bumped to today", lastActivity)
	}
}

func TestProgressEntries(t *testing.T) {
	harness := newTestApp(t)
	cookie := harness.register(t, "runner")

	harness.expect(t, http.MethodPost, "/api/progress", cookie, map[string]any{"weight_kg": 5}, http.StatusBadRequest)
	harness.expect(t, http.MethodPost, "/api/progress", cookie, map[string]any{"exercise_minutes": 2000}, http.StatusBadRequest)

	harness.expect(t, http.MethodPost, "/api/progress", cookie, map[string]any{
		"weight_kg": 61.5, "exercise_minutes": 45, "notes": "tempo run",
	}, http.StatusCreated)

	listed := harness.expect(t, http.MethodGet, "/api/progress", cookie, nil, http.StatusOK)
	entries := jsonArray(t, listed["entries"])
	if len(entries) != 1 || jsonObject(t, entries[0])["notes"] != "tempo run" {
		t.Fatalf("progress entries = %v, want the recorded entry", entries)
	}

	other := harness.register(t, "walker")
	otherList := harness.expect(t, http.MethodGet, "/api/progress", other, nil, http.StatusOK)
	if len(jsonArray(t, otherList["entries"])) != 0 {
		t.Fatalf("other user progress = %v, want empty", otherList)
	}
}

func TestContentLibraryIsPublic(t *testing.T) {
	harness := newTestApp(t)

	library := harness.expect(t, http.MethodGet, "/api/content", "", nil, http.StatusOK)
	if _, ok := library["articles"]; !ok {
		t.Fatalf("content library = %v, want articles key", library)
	}
}
