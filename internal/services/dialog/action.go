package dialog

// ActionKind discriminates outbound actions
type ActionKind int

const (
	// KindNoOp means nothing should be sent
	KindNoOp ActionKind = iota

	// KindPrompt asks the user the next question, with selectable options
	KindPrompt

	// KindResult delivers a computed result
	KindResult
)

// Action is what the transport should send back to the user.
// Options, when present, are rendered as selectable buttons.
type Action struct {
	Kind    ActionKind
	Text    string
	Options []string
}

// Prompt builds a prompt action
func Prompt(text string, options []string) Action {
	return Action{Kind: KindPrompt, Text: text, Options: options}
}

// Result builds a result action. Options carry the follow-up menu
// (continue / stop) shown alongside the result.
func Result(text string, options []string) Action {
	return Action{Kind: KindResult, Text: text, Options: options}
}

// NoOp builds an empty action
func NoOp() Action {
	return Action{Kind: KindNoOp}
}
