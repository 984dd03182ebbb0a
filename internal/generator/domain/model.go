package domain

// ChatMessage is a single conversation turn handed to the retrieval augmentor.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

const RoleUser = "user"

// UserMessage wraps free text as a user turn.
func UserMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleUser, Text: text}
}

// AugmentationRequest lives only for the duration of one generate call.
type AugmentationRequest struct {
	UserMessage   ChatMessage
	CorrelationID string
	History       []ChatMessage
}

// Content is one retrieved text segment. Metadata is carried through but
// never consumed by prompt rendering.
type Content struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type AugmentationResult struct {
	Contents []Content
}

// Texts returns the text of every content item in collaborator order.
func (r *AugmentationResult) Texts() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.Contents))
	for _, c := range r.Contents {
		out = append(out, c.Text)
	}
	return out
}
