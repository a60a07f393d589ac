package llm

import (
	"github.com/chibuzordev/posterio/types"
)

// MaxHistoryMessages is the fixed window of prior history retained when
// assembling a request.
const MaxHistoryMessages = 5

// Assemble builds the ordered message sequence sent to the model: one system
// message, then the trailing history window in its original order, then the
// new user message. The input slice is never modified; the result is at most
// MaxHistoryMessages+2 long.
func Assemble(systemPrompt string, history []types.Message, newMessage string) []types.Message {
	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}

	conversation := make([]types.Message, 0, len(history)+2)
	conversation = append(conversation, types.Message{Role: types.RoleSystem, Content: systemPrompt})
	conversation = append(conversation, history...)
	conversation = append(conversation, types.Message{Role: types.RoleUser, Content: newMessage})
	return conversation
}
