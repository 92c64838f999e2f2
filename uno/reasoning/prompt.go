package reasoning

import (
	"fmt"
	"strings"
)

const promptTemplate = `
You are playing UNO as an expert AI player. Analyze the game state and choose the best card to play.

GAME STATE:
- Current top card: %s
- Current color: %s
- Your hand: %s
- Playable cards: %s
- Opponent hand size: %d
- My hand size: %d
- Cards left in deck: %d

STRATEGY PRIORITIES:
1. If opponent has 1 card (UNO), prioritize aggressive cards (Wild Draw Four, Draw Two, Skip)
2. If you have few cards, play conservatively to win
3. If you have many cards, get rid of high-value cards first
4. Consider color strategy for Wild cards

PLAYABLE CARDS (choose from these):
%s

Respond with ONLY a JSON object in this exact format:
{
    "card_index": <index of chosen card from playable_cards list (0-based)>,
    "reasoning": "<brief explanation>",
    "wild_color": "<Red/Blue/Green/Yellow - only if playing Wild card, otherwise null>"
}

Example response:
{"card_index": 0, "reasoning": "Playing Draw Two to prevent opponent from winning", "wild_color": null}
`

// BuildPrompt renders the instructions sent along with request.
func BuildPrompt(request Request) (string, error) {
	topCard, err := json.MarshalToString(request.TopCard)
	if err != nil {
		return "", err
	}
	hand, err := json.MarshalToString(request.MyHand)
	if err != nil {
		return "", err
	}
	playable, err := json.MarshalToString(request.PlayableCards)
	if err != nil {
		return "", err
	}
	indented, err := json.MarshalIndent(request.PlayableCards, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(promptTemplate,
		topCard,
		request.CurrentColor,
		hand,
		playable,
		request.OpponentHandSize,
		request.MyHandSize,
		request.DeckSize,
		indented,
	), nil
}

// extractJSONObject cuts the outermost object out of text, dropping markdown
// code fences around it.
func extractJSONObject(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[i+1:]
		}
	}
	text = strings.TrimSuffix(text, "```")
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	end := strings.LastIndexByte(text, '}')
	if end <= start {
		return ""
	}
	return strings.TrimSpace(text[start : end+1])
}

// ParseReply reads the decision out of the model's text.
func ParseReply(text string) (Reply, error) {
	object := extractJSONObject(text)
	if object == "" {
		return Reply{}, fmt.Errorf("%w: %q", ErrNoJSONObject, text)
	}
	var reply Reply
	if err := json.UnmarshalFromString(object, &reply); err != nil {
		return Reply{}, fmt.Errorf("decode reply %q: %w", object, err)
	}
	if reply.CardIndex == nil {
		return Reply{}, ErrNoCardIndex
	}
	if reply.Reasoning == "" {
		reply.Reasoning = "AI strategic choice"
	}
	return reply, nil
}
