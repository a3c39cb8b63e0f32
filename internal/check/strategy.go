package check

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/plancheck/plancheck/internal/brief"
	"github.com/plancheck/plancheck/internal/catalog"
)

// strategyTextLimit caps the narrative excerpt sent to the model, in runes.
const strategyTextLimit = 2000

// checkStrategy asks the configured chat model whether the strategy
// narrative is coherent with the brief. The model is a black-box classifier
// with a fixed prompt contract: a reply starting with CONSISTENT passes,
// PARTIALLY_CONSISTENT warns, anything else fails. Without a client the
// check is skipped; a transport failure fails this check only.
func (e *Engine) checkStrategy(ctx context.Context, b *brief.Brief, strategyText string) Result {
	const name = "strategy_ai_check"

	if e.AI == nil {
		return Result{CheckName: name, Status: Skip, Details: "Model client not available for AI validation"}
	}

	if strings.TrimSpace(strategyText) == "" {
		return Result{CheckName: name, Status: Warning, Details: "No substantial strategy text found in document"}
	}
	if r := []rune(strategyText); len(r) > strategyTextLimit {
		strategyText = string(r[:strategyTextLimit])
	}

	prompt := fmt.Sprintf(catalog.StrategyPromptTemplate,
		b.Business.Description,
		b.Business.Location,
		fmt.Sprintf("%v", b.TargetMarket),
		fmt.Sprintf("%v", b.Objectives),
		b.BudgetText(),
		fmt.Sprintf("%v", b.Platforms()),
		strategyText,
	)

	resp, err := e.AI.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: catalog.StrategySystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   300,
		Temperature: 0.1,
	})
	if err != nil {
		return Result{CheckName: name, Status: Fail, Details: fmt.Sprintf("Error in AI validation: %v", err)}
	}
	if len(resp.Choices) == 0 {
		return Result{CheckName: name, Status: Fail, Details: "Error in AI validation: model returned no choices"}
	}

	verdict := strings.TrimSpace(resp.Choices[0].Message.Content)
	status := Fail
	switch {
	case strings.HasPrefix(verdict, "CONSISTENT"):
		status = Pass
	case strings.HasPrefix(verdict, "PARTIALLY_CONSISTENT"):
		status = Warning
	}

	return Result{CheckName: name, Status: status, Details: verdict}
}
