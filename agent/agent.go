// Package agent provides an interactive AI analyst over the portfolio.
//
// The analyst is a Gemini chat seeded with a markdown briefing of the
// current portfolio state (summary, holdings, recent trades), so it can
// answer questions about concentration, performance and cash without any
// further plumbing.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a pragmatic financial analyst for a single private
portfolio. The user's current portfolio state is given below in markdown.
Answer questions about it plainly and concretely. You are not a licensed
advisor; say so when asked for investment advice.`

// Analyst is a chat session with the portfolio analyst.
type Analyst struct {
	w     io.Writer
	r     *bufio.Reader
	Model string
	chat  *genai.Chat
}

// New creates an analyst writing to w and reading user input from r.
func New(w io.Writer, r io.Reader) *Analyst {
	return &Analyst{w: w, r: bufio.NewReader(r), Model: defaultModel}
}

// Start creates the Gemini chat, seeding it with the portfolio briefing.
func (a *Analyst) Start(ctx context.Context, client *genai.Client, briefing string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt + "\n\n" + briefing}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.Model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session. Any prompts given are consumed
// first, then input is read from the reader. Type 'bye' (or Ctrl+D) to exit.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, briefing string, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, briefing); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the portfolio assistant. Type 'bye' to exit.")
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
		if strings.TrimSpace(input) == "" {
			continue
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
