// Package agent implements the interactive financial advisor: a Gemini chat
// wired to read-only tools over the user's financial state.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemInstruction = `
You are a personal finance advisor. The user tracks income, expenses, fixed
monthly bills, category budgets, investments and third-party financial
support in a local ledger.

Use the available tools to read the user's actual numbers before answering:
never guess an amount you can look up. Amounts are in the user's configured
currency. Be concrete and brief, and when the data shows a problem (a budget
over its limit, a thin emergency fund, everything in one asset class), say
so plainly.`

// Advisor is the chat session between the user and the financial assistant.
type Advisor struct {
	w       io.Writer
	r       *bufio.Reader
	library Library
	tools   []Function
	chat    *genai.Chat
}

// New creates an advisor over the given tools. Output goes to w, user input
// is read from r.
func New(w io.Writer, r io.Reader, tools []Function) *Advisor {
	return &Advisor{
		w:       w,
		r:       bufio.NewReader(r),
		library: NewLibrary(tools),
		tools:   tools,
	}
}

// Start opens the chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: Declarations(a.tools)},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return fmt.Errorf("create advisor chat: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one part to the advisor, resolving tool calls until the model
// produces a text answer.
func (a *Advisor) Ask(ctx context.Context, part *genai.Part) (string, error) {
	resp, err := a.chat.Send(ctx, part)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := a.library(ctx, part0.FunctionCall)
		return a.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return part0.Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL. Initial prompts are consumed before
// reading from the user; "bye" or EOF ends the session.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the cofi financial advisor. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
