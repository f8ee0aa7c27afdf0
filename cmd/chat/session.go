package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"emotiai/internal/analysis"
	"emotiai/internal/model"
)

const (
	cmdReset = "/reset"
	cmdQuit  = "/quit"
	prompt   = "you> "
)

// session holds one terminal conversation.
type session struct {
	uc   analysis.UseCase
	cfg  chatConfig
	conv *model.Conversation
	now  func() time.Time
}

func newSession(uc analysis.UseCase, cfg chatConfig) *session {
	return &session{
		uc:   uc,
		cfg:  cfg,
		conv: model.NewConversation(time.Now()),
		now:  time.Now,
	}
}

// run reads one message per line until EOF, /quit or ctx is done.
func (s *session) run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "assistant> %s\n", model.Greeting)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case cmdQuit:
			return nil
		case cmdReset:
			s.conv.Reset(s.now())
			fmt.Fprintf(out, "assistant> %s\n", model.Greeting)
			continue
		}

		reply, err := s.exchange(ctx, line, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "assistant> %s\n", reply)
	}
}

// exchange detects the emotion of text, then asks for a reply with the prior turns as context.
func (s *session) exchange(ctx context.Context, text string, out io.Writer) (string, error) {
	history := s.conv.Transcript(s.cfg.ContextTurns)

	emotion, err := s.uc.DetectEmotion(ctx, analysis.DetectEmotionInput{Text: text})
	if err != nil {
		return "", fmt.Errorf("detect emotion: %w", err)
	}

	if s.cfg.ShowAnalysis {
		sentiment, err := s.uc.AnalyzeSentiment(ctx, analysis.AnalyzeSentimentInput{Text: text})
		if err != nil {
			return "", fmt.Errorf("analyze sentiment: %w", err)
		}
		fmt.Fprintf(out, "  emotion=%s (%.2f, %s) sentiment=%s (%.2f, %s)\n",
			emotion.DominantEmotion, emotion.Confidence, emotion.Source,
			sentiment.Sentiment.Label, sentiment.Sentiment.Score, sentiment.Source)
	}

	if _, err := s.conv.Append(model.RoleUser, text, s.now()); err != nil {
		return "", err
	}

	resp, err := s.uc.GenerateResponse(ctx, analysis.GenerateResponseInput{
		Text:    text,
		Context: history,
		Emotion: string(emotion.DominantEmotion),
	})
	if err != nil {
		return "", fmt.Errorf("generate response: %w", err)
	}

	if _, err := s.conv.Append(model.RoleAssistant, resp.AIResponse, s.now()); err != nil {
		return "", err
	}
	return resp.AIResponse, nil
}
