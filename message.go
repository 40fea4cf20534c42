package askbook

// Origin identifies which side of the conversation produced a message.
type Origin string

const (
	OriginUser      Origin = "user"
	OriginAssistant Origin = "assistant"
)

// Message is one transcript turn. Immutable once created: the widget owns
// the only copy and never mutates or shares it after append.
type Message struct {
	Origin Origin
	Text   string
}

// Source points at the book location an answer was grounded on. Sources are
// optional metadata on a successful answer; they never affect how an
// exchange outcome is classified.
type Source struct {
	Chapter string
	Section string
	URL     string
}
