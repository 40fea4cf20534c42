// Package backend implements [askbook.Answerer] for the book's answering
// service, a JSON-over-HTTP RAG endpoint. One Ask is one POST to the chat
// path; there are no retries and no timeout beyond the transport's defaults.
package backend

const (
	defaultBaseURL = "http://localhost:8000"
	chatPath       = "/chat"

	// Fixed context fields identifying what the questions are about. The
	// service uses them to tailor retrieved passages to the reader's setup.
	softwareContext = "ROS 2"
	hardwareContext = "NVIDIA Jetson"
)

// apiRequest is the JSON body sent to the chat endpoint.
type apiRequest struct {
	Query    string `json:"query"`
	Software string `json:"software"`
	Hardware string `json:"hardware"`
}

// apiResponse is the JSON body of a successful reply. Fields beyond answer
// and sources are ignored.
type apiResponse struct {
	Answer  string      `json:"answer"`
	Sources []apiSource `json:"sources"`
}

type apiSource struct {
	Chapter string `json:"chapter"`
	Section string `json:"section,omitempty"`
	URL     string `json:"url,omitempty"`
}
