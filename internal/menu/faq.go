package menu

import "fmt"

// FAQ is one static question/answer entry
type FAQ struct {
	Question string
	Answer   string
}

// FAQs is the static ordered FAQ list. Callback keys are generated from the
// slice index, so only valid indices are ever dispatchable.
var FAQs = []FAQ{
	{
		Question: "Where is the department located?",
		Answer: "The School of Information Science is located at 6K FBE Campus.\n\n" +
			"[View on Google Maps](https://maps.app.goo.gl/3nX9U6cePwRnRHL5A)",
	},
	{
		Question: "What are the criteria for joining the department?",
		Answer: "Students are admitted based on a department-specific cutoff, which is determined annually.\n" +
			"The cutoff is calculated using:\n\n" +
			"50% Entrance Exam Score\n" +
			"50% GPA\n" +
			"Please note that the cutoff may vary from year to year based on departmental decisions.",
	},
	{
		Question: "How long is the course duration?",
		Answer:   "The program takes four years, including the freshman year.",
	},
}

// FAQKey returns the callback key for FAQ entry i
func FAQKey(i int) string {
	return fmt.Sprintf("faq_%d", i)
}

// addFAQ registers the FAQ selector and one reply leaf per entry
func (r *Registry) addFAQ() {
	rows := make([][]Button, 0, len(FAQs))
	for i, entry := range FAQs {
		rows = append(rows, []Button{{Label: entry.Question, Key: FAQKey(i)}})

		r.add(&Node{
			Key:      FAQKey(i),
			Kind:     KindReply,
			Text:     entry.Question + "\n" + entry.Answer,
			Markdown: true,
		})
	}

	r.add(&Node{
		Key:     KeyFAQ,
		Kind:    KindMenu,
		Text:    ChooseAQuestion,
		Buttons: rows,
	})
}
