package fallback

import "emotiai/internal/model"

const defaultResponseKey = "default"

var cannedResponses = map[string][]string{
	string(model.EmotionJoy): {
		"That's wonderful to hear! Your positive energy is contagious. 😊",
		"I'm so happy for you! It's great to see you in such good spirits.",
		"What fantastic news! Your joy really shines through in your message.",
	},
	string(model.EmotionSadness): {
		"I'm sorry you're feeling this way. Remember that difficult moments are temporary. 💙",
		"It sounds like you're going through a tough time. I'm here to listen and support you.",
		"Your feelings are completely valid. Take things one step at a time.",
	},
	string(model.EmotionAnger): {
		"I can sense your frustration. Sometimes expressing these feelings can be cathartic.",
		"It's understandable to feel angry in this situation. Let's work through this together.",
		"Strong emotions like anger can be powerful motivators for change when channeled constructively.",
	},
	string(model.EmotionFear): {
		"It's okay to feel afraid. Facing our fears is how we grow stronger.",
		"I understand this might be scary. Remember that you've overcome challenges before.",
		"Take a deep breath. You're stronger than you think, and you can handle this.",
	},
	defaultResponseKey: {
		"Thank you for sharing that with me. I'm here to help however I can.",
		"I appreciate you opening up about this. Let me know how I can support you.",
		"That's really interesting. Tell me more about how you're feeling.",
	},
}

// ResponseStyle is the style reported for every canned reply.
const ResponseStyle = model.StyleEmpathetic

// EstimateResponse picks a canned reply for emotion uniformly at random.
// Emotions without a dedicated set, including the empty one, use the default set.
func (e *Estimator) EstimateResponse(text, emotion string) string {
	set, ok := cannedResponses[emotion]
	if !ok {
		set = cannedResponses[defaultResponseKey]
	}
	return set[e.rnd.IntN(len(set))]
}

// CannedResponses returns the reply set used for emotion.
func CannedResponses(emotion string) []string {
	set, ok := cannedResponses[emotion]
	if !ok {
		set = cannedResponses[defaultResponseKey]
	}
	out := make([]string, len(set))
	copy(out, set)
	return out
}
