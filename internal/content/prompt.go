package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/miguel/internal/profile"
)

const storySystemPrompt = `You write gentle bedtime stories for children aged 3 to 10. Stories are warm, never scary, and use words a young child knows.`

const devotionalSystemPrompt = `You write short Christian devotionals for children aged 3 to 10. Retell one Bible passage in simple words and end with something the child can do today.`

func buildUserMessage(kind string, p profile.ChildProfile, date string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Child: %s\n", p.PromptDescription())
	fmt.Fprintf(&b, "Date: %s\n", date)

	switch kind {
	case kindDevotional:
		b.WriteString(`
Instructions:
1. Pick one well-known Bible story and retell it in 4-8 short sentences.
2. Speak to the child by name once.
3. The moral is one small action the child can take today.
4. Plain text only. No emoji, no markdown.`)
	default:
		b.WriteString(`
Instructions:
1. Make the child the hero of a 4-8 sentence story.
2. Keep the sentences short, one idea each.
3. End with a happy resolution and a one-sentence moral.
4. Plain text only. No emoji, no markdown.`)
	}

	return b.String()
}

func buildImagePrompt(p profile.ChildProfile, c Content) string {
	return fmt.Sprintf("A soft watercolor children's book illustration of %s in a scene from the story %q: %s",
		p.PromptDescription(), c.Title, firstSentence(c.Body))
}

func firstSentence(s string) string {
	if i := strings.IndexAny(s, ".!?"); i >= 0 {
		return s[:i+1]
	}
	return s
}
