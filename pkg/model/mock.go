package model

import (
	"context"
	"fmt"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

const mockPromptPreview = 50

// MockModel returns a deterministic placeholder response so the full
// pipeline runs without a credential. Same prompt, same response, always.
type MockModel struct {
	NameValue    string
	ResponseText string
}

func (m MockModel) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

func (m MockModel) Generate(_ context.Context, prompt string, _ core.GenerateOptions) (core.Response, error) {
	content := m.ResponseText
	if content == "" {
		preview := prompt
		if len(preview) > mockPromptPreview {
			preview = preview[:mockPromptPreview]
		}
		content = fmt.Sprintf("[Mock Response] This is a simulated response to demonstrate the evaluation framework. In production, this would be the model's actual response to: '%s...'", preview)
	}
	return core.Response{Content: content}, nil
}
