package googlenl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	language "google.golang.org/api/language/v1"
	"google.golang.org/api/option"
)

// Client wraps the Cloud Natural Language v1 service.
type Client struct {
	svc *language.Service
}

// New creates a Natural Language client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	switch {
	case cfg.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	case cfg.CredentialsFile != "":
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("googlenl: failed to read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, language.CloudLanguageScope)
		if err != nil {
			return nil, fmt.Errorf("googlenl: invalid credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	default:
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := language.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("googlenl: failed to create service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Annotate extracts document sentiment, entities and, for long enough texts,
// content categories in a single annotateText call.
func (c *Client) Annotate(ctx context.Context, text string) (*Annotation, error) {
	req := &language.AnnotateTextRequest{
		Document: &language.Document{
			Content: text,
			Type:    documentTypePlainText,
		},
		EncodingType: encodingUTF8,
		Features: &language.AnnotateTextRequestFeatures{
			ExtractDocumentSentiment: true,
			ExtractEntities:          true,
			ClassifyText:             len(strings.Fields(text)) >= classifyMinWords,
		},
	}

	resp, err := c.svc.Documents.AnnotateText(req).Context(ctx).Do()
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) {
			return nil, &APIError{StatusCode: gErr.Code, Message: gErr.Message}
		}
		return nil, fmt.Errorf("googlenl: API call failed: %w", err)
	}

	out := &Annotation{
		Entities:   make([]Entity, 0, len(resp.Entities)),
		Categories: make([]Category, 0, len(resp.Categories)),
	}
	if resp.DocumentSentiment != nil {
		out.SentimentScore = resp.DocumentSentiment.Score
		out.Magnitude = resp.DocumentSentiment.Magnitude
	}
	for _, e := range resp.Entities {
		if e == nil {
			continue
		}
		out.Entities = append(out.Entities, Entity{Name: e.Name, Type: e.Type, Salience: e.Salience})
	}
	for _, cat := range resp.Categories {
		if cat == nil {
			continue
		}
		out.Categories = append(out.Categories, Category{Name: cat.Name, Confidence: cat.Confidence})
	}
	return out, nil
}
