package utils

import (
	"bytes"
	"encoding/json"
	"regexp"
)

var fencedJSONPattern = regexp.MustCompile("(?s)```json\\n(.*?)\\n```")

// ExtractFencedJSON returns the first ```json fenced block of text, compacted.
// ok is false when there is no such block or its content is not a JSON object.
func ExtractFencedJSON(text string) (json.RawMessage, bool) {
	match := fencedJSONPattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return nil, false
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(match[1]), &object); err != nil || object == nil {
		return nil, false
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(match[1])); err != nil {
		return nil, false
	}
	return json.RawMessage(buf.Bytes()), true
}
