package artifact

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// payloadMarker identifies the script that carries the embedded audit
// payload. Lighthouse HTML reports assign the full result JSON to a global:
//
//	window.__LIGHTHOUSE_JSON__ = {...};
//
// The marker and surrounding format are dictated by the Lighthouse CLI and
// must be treated as a black box we probe for, not a format we control.
const payloadMarker = "__LIGHTHOUSE_JSON__"

// Extractor locates the embedded audit payload inside a report artifact.
// Implementations return the raw JSON bytes and true on success, or nil and
// false when the artifact carries no recognizable payload. Extraction never
// fails with an error: a truncated or foreign file is simply "no data".
type Extractor interface {
	Extract(artifact []byte) ([]byte, bool)
}

// ScriptExtractor finds the payload by walking the artifact's HTML node
// tree and inspecting script elements for the payload marker.
//
// Design decision: we parse the HTML properly instead of scanning raw bytes
// because report artifacts are large, self-contained pages whose markup may
// mention the marker in comments or displayed text. x/net/html tolerates
// the malformed fragments real-world reports sometimes contain.
type ScriptExtractor struct{}

// NewScriptExtractor creates a ScriptExtractor.
func NewScriptExtractor() *ScriptExtractor {
	return &ScriptExtractor{}
}

// Extract returns the embedded JSON payload of the artifact, if any.
func (e *ScriptExtractor) Extract(artifact []byte) ([]byte, bool) {
	doc, err := html.Parse(bytes.NewReader(artifact))
	if err != nil {
		return nil, false
	}

	for node := range doc.Descendants() {
		if node.Type != html.ElementNode || node.Data != "script" {
			continue
		}

		text := scriptText(node)
		if !strings.Contains(text, payloadMarker) {
			continue
		}

		if payload, ok := slicePayload(text); ok {
			return payload, true
		}
	}

	return nil, false
}

// scriptText concatenates the text children of a script element.
func scriptText(node *html.Node) string {
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return b.String()
}

// slicePayload cuts the JSON object out of the marker script's text: from
// the first opening brace after the marker to the last closing brace.
func slicePayload(text string) ([]byte, bool) {
	at := strings.Index(text, payloadMarker)
	if at < 0 {
		return nil, false
	}

	start := strings.Index(text[at:], "{")
	if start < 0 {
		return nil, false
	}
	start += at

	end := strings.LastIndex(text, "}")
	if end < start {
		return nil, false
	}

	return []byte(text[start : end+1]), true
}
