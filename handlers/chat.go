package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/chibuzordev/posterio/config"
	"github.com/chibuzordev/posterio/llm"
	"github.com/chibuzordev/posterio/middleware"
	"github.com/chibuzordev/posterio/types"

	"github.com/google/uuid"
)

// Handler carries the chat pipeline's dependencies. Everything is injected
// at construction so tests can swap in fake completers and prompts.
type Handler struct {
	completer llm.Completer
	selector  *llm.Selector
	model     string
}

func NewHandler(completer llm.Completer, selector *llm.Selector, model string) *Handler {
	return &Handler{
		completer: completer,
		selector:  selector,
		model:     model,
	}
}

// Chat handles one turn: select mode, assemble the bounded context, call the
// model, and compose the response. Every failure path still returns a
// well-formed JSON body with accurate meta.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeError(w, "Missing message", http.StatusBadRequest)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	log := config.Logger.WithField("session_id", sessionID)
	if userID := middleware.UserID(r.Context()); userID != "" {
		log = log.WithField("user_id", userID)
	}

	mode, systemPrompt := h.selector.Select(req.ForceTemplate, req.Message)
	conversation := llm.Assemble(systemPrompt, req.Messages, req.Message)

	completion, err := h.completer.Complete(r.Context(), conversation)
	if err != nil {
		// Boundary failures degrade to a best-effort reply; they never
		// become a transport fault.
		log.Error("Completion request failed:", err)
		writeJSON(w, http.StatusOK, types.ChatResponse{
			SessionID: sessionID,
			ReplyText: "Error: " + err.Error(),
			Meta:      types.Meta{TokensUsed: 0, Model: "error"},
		})
		return
	}

	resp := types.ChatResponse{SessionID: sessionID}

	if mode == llm.ModeStructured {
		result, repairErr := llm.Repair(completion.Text)
		if repairErr != nil {
			log.Warnf("Structured repair failed: %s", repairErr.Error)
			resp.Error = repairErr.Error
			resp.RawOutput = repairErr.RawOutput
		} else {
			resp.Goal = result.Goal
			resp.Templates = result.Templates
			resp.ActionItems = result.ActionItems
			resp.Deadline = result.Deadline
			resp.Reminders = result.Reminders
		}
	} else {
		resp.ReplyText = completion.Text
	}

	// Meta is set last and unconditionally, so it can never be supplied by
	// the model itself.
	resp.Meta = types.Meta{TokensUsed: completion.TokensUsed, Model: h.model}

	writeJSON(w, http.StatusOK, resp)
}
