package webgen

import (
	"fmt"
	"strings"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

const outputDirective = "\nRespond with ONLY the complete HTML document. No explanations, no markdown fences."

// BuildPrompt turns a generation request into the single instruction
// sent upstream. Revision mode is selected by the presence of an
// existing document; the user's text passes through verbatim in both
// modes.
func BuildPrompt(req GenerationRequest) string {
	if req.ExistingCode != "" {
		return revisionPrompt(req)
	}
	return creationPrompt(req)
}

func creationPrompt(req GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("You are an expert web designer and engineer.\n")
	sb.WriteString("Generate a complete website for the request below.\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("1. Output a single self-contained HTML document with all CSS and JavaScript inline\n")
	sb.WriteString("2. The layout must be fully responsive\n")
	sb.WriteString("3. Load Tailwind CSS from " + tailwindCDN + "\n")
	sb.WriteString("4. Aim for a modern, polished, visually striking design\n")

	sb.WriteString("\nREQUEST:\n")
	sb.WriteString(req.Prompt)
	sb.WriteString("\n")

	if n := len(req.Images); n > 0 {
		fmt.Fprintf(&sb, "\nThe user attached %d reference image(s). Let their visual mood and style inform the design; do not reproduce them literally.\n", n)
	}

	sb.WriteString(outputDirective)
	return sb.String()
}

func revisionPrompt(req GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("You are revising an existing website.\n\n")
	sb.WriteString("CURRENT DOCUMENT:\n")
	sb.WriteString(req.ExistingCode)
	sb.WriteString("\n\nREQUESTED CHANGE:\n")
	sb.WriteString(req.Prompt)
	sb.WriteString("\n\nChange only what is requested and preserve everything else exactly as it is.\n")

	sb.WriteString(outputDirective)
	return sb.String()
}
