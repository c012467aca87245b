package edenai

// generationRequest is the body of POST /v2/text/generation.
type generationRequest struct {
	Providers   string  `json:"providers"`
	Text        string  `json:"text"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// providerResult is one provider's entry in the response, which is keyed by
// provider name.
type providerResult struct {
	GeneratedText string    `json:"generated_text"`
	Status        string    `json:"status"`
	Error         *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

const statusSuccess = "success"
