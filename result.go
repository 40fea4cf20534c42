package askbook

import "fmt"

// Fixed transcript texts for the non-answer outcomes.
const (
	unreachableText = "Unable to reach the answer service. Check your connection and try again."
	noAnswerText    = "The answer service returned no response. Try rephrasing your question."
)

// Result is a sealed interface representing the outcome of one exchange
// with the answering service. Every outcome, success or failure, renders as
// exactly one assistant transcript entry, produced by Message(). The
// unexported marker method prevents external implementations.
type Result interface {
	result()
	Message() Message
}

// Answer is a successful exchange carrying non-empty answer text.
// Text is trimmed by the backend client before construction.
type Answer struct {
	Text    string
	Sources []Source
}

func (Answer) result() {}

// Message returns the answer as an assistant turn.
func (a Answer) Message() Message {
	return Message{Origin: OriginAssistant, Text: a.Text}
}

// Unreachable means the transport could not reach the endpoint at all.
type Unreachable struct{}

func (Unreachable) result() {}

// Message returns the fixed connectivity-error text as an assistant turn.
func (Unreachable) Message() Message {
	return Message{Origin: OriginAssistant, Text: unreachableText}
}

// Failure means the endpoint was reached but responded with a non-success
// status. Body carries any diagnostic text the endpoint returned.
type Failure struct {
	Status int
	Body   string
}

func (Failure) result() {}

// Message returns an assistant turn embedding the status code and the
// diagnostic body verbatim.
func (f Failure) Message() Message {
	text := fmt.Sprintf("The answer service returned an error (status %d)", f.Status)
	if f.Body != "" {
		text += ": " + f.Body
	}
	return Message{Origin: OriginAssistant, Text: text}
}

// NoAnswer means the endpoint responded successfully but supplied no usable
// answer text.
type NoAnswer struct{}

func (NoAnswer) result() {}

// Message returns the fixed empty-answer fallback text as an assistant turn.
func (NoAnswer) Message() Message {
	return Message{Origin: OriginAssistant, Text: noAnswerText}
}

// Interface compliance checks.
var (
	_ Result = Answer{}
	_ Result = Unreachable{}
	_ Result = Failure{}
	_ Result = NoAnswer{}
)
