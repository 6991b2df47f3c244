// Package suggest generates an alternative, AI-proposed directory structure
// for a document. Its output is unvalidated text expected to resemble JSON;
// it is written beside the heuristic tree and never merged into it.
package suggest

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

// Client calls the OpenAI Responses API for structure suggestions.
type Client struct {
	api   openai.Client
	model string
	stats *Stats
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: model,
		stats: NewStats(time.Hour),
	}
}

// Stats returns the rolling latency window for suggestion calls.
func (c *Client) StatsSnapshot() StatsSnapshot {
	return c.stats.Snapshot()
}

// GenerateTree uploads the document inline and asks for a JSON directory
// structure. The raw model output is returned with markdown fences
// stripped; no schema validation is applied.
func (c *Client) GenerateTree(ctx context.Context, pdfData []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(pdfData)

	start := time.Now()
	resp, err := c.api.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(
					responses.ResponseInputMessageContentListParam{
						responses.ResponseInputContentUnionParam{
							OfInputFile: &responses.ResponseInputFileParam{
								FileData: openai.String("data:application/pdf;base64," + encoded),
								Filename: openai.String("datasheet.pdf"),
							},
						},
						responses.ResponseInputContentParamOfInputText(TreePrompt),
					},
					"user",
				),
			},
		},
	})
	c.stats.Record(time.Since(start).Milliseconds())
	if err != nil {
		return "", classifyErr(err)
	}

	return StripCodeBlock(resp.OutputText()), nil
}

// RefineTree asks the model to improve its earlier structure using the
// headers the heuristic detector found.
func (c *Client) RefineTree(ctx context.Context, aiStructure string, headers []string) (string, error) {
	prompt := BuildRefinePrompt(aiStructure, headers)

	start := time.Now()
	resp, err := c.api.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(
					responses.ResponseInputMessageContentListParam{
						responses.ResponseInputContentParamOfInputText(prompt),
					},
					"user",
				),
			},
		},
	})
	c.stats.Record(time.Since(start).Milliseconds())
	if err != nil {
		return "", classifyErr(err)
	}

	return StripCodeBlock(resp.OutputText()), nil
}

// classifyErr wraps rate-limit and server errors as retryable.
func classifyErr(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode >= 500 {
			return &RetryableError{StatusCode: apierr.StatusCode, Message: apierr.Message}
		}
	}
	return fmt.Errorf("openai api: %w", err)
}

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// StripCodeBlock removes a surrounding markdown code fence, if any.
func StripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// RetryableError indicates a transient failure that can be retried.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}
