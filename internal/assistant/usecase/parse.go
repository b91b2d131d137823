package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/MGhunch/dot-hub-api/internal/assistant"
)

// Models are told to respond with bare JSON but still wrap replies in
// markdown fences or conversational filler often enough that we try a
// series of progressively looser extraction strategies, in order:
//
//  1. the whole trimmed text as JSON
//  2. a ```json fenced block
//  3. any ``` fenced block whose body looks like an object
//  4. the substring from the first "{" to the last "}"
//
// The brace-scan fallback does not balance braces, so a reply with two
// separate objects yields an invalid candidate and the turn degrades.
var extractStrategies = []func(string) (json.RawMessage, bool){
	extractWholeText,
	extractJSONFence,
	extractAnyFence,
	extractBraceSpan,
}

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFenceRe  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON pulls the first parseable JSON object out of raw model
// text. The second return is false when no strategy produced one.
func ExtractJSON(text string) (json.RawMessage, bool) {
	for _, strategy := range extractStrategies {
		if raw, ok := strategy(text); ok {
			return raw, true
		}
	}
	return nil, false
}

// ParseStructured turns raw model text into the response contract. When
// no strategy yields a JSON object the raw text is preserved verbatim
// as the message and ok is false.
func ParseStructured(text string) (assistant.StructuredResponse, bool) {
	raw, ok := ExtractJSON(text)
	if !ok {
		return assistant.StructuredResponse{Message: text}, false
	}
	var parsed assistant.StructuredResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return assistant.StructuredResponse{Message: text}, false
	}
	return parsed, true
}

func extractWholeText(text string) (json.RawMessage, bool) {
	return asJSONObject(strings.TrimSpace(text))
}

func extractJSONFence(text string) (json.RawMessage, bool) {
	m := jsonFenceRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return asJSONObject(m[1])
}

func extractAnyFence(text string) (json.RawMessage, bool) {
	m := anyFenceRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	body := strings.TrimSpace(m[1])
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
		return nil, false
	}
	return asJSONObject(body)
}

func extractBraceSpan(text string) (json.RawMessage, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}
	return asJSONObject(text[start : end+1])
}

// asJSONObject accepts a candidate only when it decodes as a JSON
// object. This rejects bare scalars like "null" or "42" that would
// otherwise unmarshal cleanly into an empty response. Unmarshalling
// "null" into a map succeeds but leaves it nil, so the nil check does
// the real work there.
func asJSONObject(candidate string) (json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil || obj == nil {
		return nil, false
	}
	return json.RawMessage(candidate), true
}
