package openai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

const systemPrompt = "You are a helpful medical assistant for doctors. " +
	"Answer professionally, clearly, and concisely based only on the provided context."

func buildUserPrompt(query, context string) string {
	return fmt.Sprintf(
		"Here is background information retrieved from internal systems:\n\n%s\n\nDoctor's question:\n%s\n",
		context, query,
	)
}

// BuildContext renders retrieved facts as a readable context block. Lists
// become one JSON object per line; composite records become [SECTION]
// blocks per top-level key.
func BuildContext(facts any) string {
	if facts == nil {
		return "No relevant data was found in the system."
	}

	raw, err := json.Marshal(facts)
	if err != nil {
		return "Context could not be formatted."
	}
	if len(raw) == 0 || string(raw) == "null" {
		return "No relevant data was found in the system."
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			break
		}
		if len(items) == 0 {
			return "No relevant data was found in the system."
		}
		var b strings.Builder
		for _, item := range items {
			writeIndented(&b, item)
		}
		return b.String()

	case '{':
		var sections map[string]json.RawMessage
		if err := json.Unmarshal(raw, &sections); err != nil {
			break
		}
		if len(sections) == 0 {
			return "No relevant data was found in the system."
		}
		keys := make([]string, 0, len(sections))
		for k := range sections {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var b strings.Builder
		for _, key := range keys {
			fmt.Fprintf(&b, "[%s]\n", strings.ToUpper(key))
			section := sections[key]
			var items []json.RawMessage
			if json.Unmarshal(section, &items) == nil {
				for _, item := range items {
					writeIndented(&b, item)
				}
			} else {
				writeIndented(&b, section)
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	return string(raw)
}

func writeIndented(b *strings.Builder, raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		b.Write(raw)
	} else {
		b.Write(buf.Bytes())
	}
	b.WriteString("\n")
}
