package menu

import (
	"fmt"

	"deptbot/internal/domain"
)

// Kind classifies what activating a menu node does
type Kind int

const (
	// KindMenu renders the node text with its buttons
	KindMenu Kind = iota
	// KindReply sends the node text followed by the exit prompt
	KindReply
	// KindSetState arms a dialog flag and prompts for input
	KindSetState
	// KindEnd thanks the user and restarts at the root menu
	KindEnd
	// KindRestart re-renders the root menu
	KindRestart
	// KindFallback is the absorbing default for unknown callback keys
	KindFallback
)

// Button is a single inline button. Exactly one of Key or URL is set.
type Button struct {
	Label string
	Key   string
	URL   string
}

// Node is a static, immutable node of the menu tree
type Node struct {
	Key      string
	Kind     Kind
	Text     string
	State    domain.State // only for KindSetState
	Markdown bool         // reply text carries Markdown links
	Buttons  [][]Button
}

// Registry is the read-only callback-key -> node mapping, built once at startup
type Registry struct {
	nodes    map[string]*Node
	root     *Node
	fallback *Node
}

// Callback keys referenced across the tree
const (
	KeyRoot           = "start_over"
	KeyAIAssistance   = "ai_assistance"
	KeyCourse         = "course"
	KeyAboutDeveloper = "about_developer"
	KeyFAQ            = "faq"
	KeyFeedback       = "feedback"
	KeyEnd            = "end"
)

// User-visible prompts shared with the dispatcher
const (
	RootPrompt      = "Choose an option:"
	ExitPrompt      = "Do you need anything else?"
	QuestionPrompt  = "Please type your question:"
	FeedbackPrompt  = "Please type your feedback:"
	FarewellText    = "Thank you! Have a great day!"
	AboutDeveloper  = "This bot was developed by kidus shimelis(@kipa_s)."
	ChooseACourse   = "Choose a course:"
	ChooseAQuestion = "Choose a question:"
	ChooseYourYear  = "Choose your year:"
)

// New builds the full static menu tree. The tree never changes at runtime.
func New() *Registry {
	r := &Registry{nodes: make(map[string]*Node)}

	r.fallback = &Node{
		Kind:    KindFallback,
		Text:    ExitPrompt,
		Buttons: [][]Button{{{Label: "Exit", Key: KeyEnd}}},
	}

	r.root = r.add(&Node{
		Key:  KeyRoot,
		Kind: KindRestart,
		Text: RootPrompt,
		Buttons: [][]Button{
			{
				{Label: "AI Assistance", Key: KeyAIAssistance},
				{Label: "Course", Key: KeyCourse},
			},
			{
				{Label: "About Developer", Key: KeyAboutDeveloper},
				{Label: "FAQ", Key: KeyFAQ},
			},
			{
				{Label: "Feedback", Key: KeyFeedback},
			},
		},
	})

	r.add(&Node{
		Key:   KeyAIAssistance,
		Kind:  KindSetState,
		Text:  QuestionPrompt,
		State: domain.StateAwaitingQuestion,
	})
	r.add(&Node{
		Key:   KeyFeedback,
		Kind:  KindSetState,
		Text:  FeedbackPrompt,
		State: domain.StateAwaitingFeedback,
	})
	r.add(&Node{
		Key:  KeyAboutDeveloper,
		Kind: KindReply,
		Text: AboutDeveloper,
	})
	r.add(&Node{
		Key:  KeyEnd,
		Kind: KindEnd,
		Text: FarewellText,
	})

	r.addCourseTree()
	r.addFAQ()

	return r
}

// Resolve returns the node for a callback key. Unknown keys resolve to the
// absorbing exit-prompt fallback, never an error.
func (r *Registry) Resolve(key string) *Node {
	if node, ok := r.nodes[key]; ok {
		return node
	}
	return r.fallback
}

// Root returns the root menu node
func (r *Registry) Root() *Node {
	return r.root
}

// Fallback returns the absorbing exit-prompt node
func (r *Registry) Fallback() *Node {
	return r.fallback
}

// Validate checks that every callback key referenced by a button resolves to
// exactly one registered node. A dead link is a construction defect.
func (r *Registry) Validate() error {
	for key, node := range r.nodes {
		for _, row := range node.Buttons {
			for _, btn := range row {
				if btn.URL != "" {
					continue
				}
				if _, ok := r.nodes[btn.Key]; !ok {
					return fmt.Errorf("menu %q references unknown callback key %q", key, btn.Key)
				}
			}
		}
	}
	for _, row := range r.fallback.Buttons {
		for _, btn := range row {
			if _, ok := r.nodes[btn.Key]; btn.URL == "" && !ok {
				return fmt.Errorf("fallback references unknown callback key %q", btn.Key)
			}
		}
	}
	return nil
}

func (r *Registry) add(node *Node) *Node {
	if _, exists := r.nodes[node.Key]; exists {
		panic(fmt.Sprintf("menu: duplicate callback key %q", node.Key))
	}
	r.nodes[node.Key] = node
	return node
}
