package tools

import (
	"context"
	"fmt"

	"personal-assistant-be/pkg/llm"
)

// NewRewriteTools returns the text rewriting tool set.
func NewRewriteTools(provider llm.LLMProvider) []Descriptor {
	return []Descriptor{
		{
			Name:        "rewrite_text",
			Description: "Rewrite a piece of text in the requested tone.",
			Parameters: []Parameter{
				{Name: "text", Type: TypeString, Description: "The text to rewrite.", Required: true},
				{Name: "tone", Type: TypeString, Description: "Target tone.", Default: "professional", Enum: []string{"polite", "professional", "casual"}},
				{Name: "instructions", Type: TypeString, Description: "Extra rewriting instructions.", Default: ""},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				tone := ArgString(args, "tone")

				system := fmt.Sprintf("You are a professional text editor. Rewrite the given text in a %s tone.\n"+
					"Make improvements to grammar, clarity, and style while maintaining the original meaning.", tone)
				if instructions := ArgString(args, "instructions"); instructions != "" {
					system += "\nAdditional instructions: " + instructions
				}
				system += "\n\nReturn ONLY the rewritten text, no explanations."

				rewritten, err := provider.Chat(ctx, []llm.Message{
					{Role: "system", Content: system},
					{Role: "user", Content: ArgString(args, "text")},
				}, llm.WithTemperature(0.5))
				if err != nil {
					return Fail("failed to rewrite text: %v", err)
				}

				return Ok(map[string]interface{}{
					"rewritten": rewritten,
					"tone":      tone,
				})
			},
		},
	}
}
