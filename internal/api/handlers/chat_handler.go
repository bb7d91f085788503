package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const maxMessageLength = 2000

// ChatPipeline is the single inbound operation the handler exposes
type ChatPipeline interface {
	Process(ctx context.Context, sessionID, message string) string
}

// ChatHandler handles chat requests. It owns nothing but the JSON plumbing
// around the pipeline: session assignment, payload validation, response
// shape.
type ChatHandler struct {
	pipeline ChatPipeline
}

// NewChatHandler creates a new chat handler
func NewChatHandler(pipeline ChatPipeline) *ChatHandler {
	return &ChatHandler{pipeline: pipeline}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Message = strings.TrimSpace(payload.Message)
	if payload.Message == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}
	if len(payload.Message) > maxMessageLength {
		respondWithError(w, http.StatusBadRequest, "message is too long")
		return
	}

	sessionID := strings.TrimSpace(payload.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply := h.pipeline.Process(r.Context(), sessionID, payload.Message)

	respondWithJSON(w, http.StatusOK, chatResponse{
		SessionID: sessionID,
		Reply:     reply,
	})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
