package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/capturedesk/capturedesk/internal/reasoning"
)

// Analyze implements reasoning.Service using text-only chat/completions
// with a JSON-schema constrained response.
func (c *Client) Analyze(ctx context.Context, req reasoning.AnalyzeRequest) (reasoning.Analysis, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("reasoning.analyze.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.Text),
		"modality", req.Modality,
		"has_place", req.PlaceName != "",
		"siblings", len(req.SiblingSummaries),
	)

	schema := reasoning.BuildAnalysisJSONSchema()
	sys := reasoning.BuildSystemPrompt(req)
	user := reasoning.BuildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, err := c.chat(ctx, rid, body)
	if err != nil {
		c.log.Error("reasoning.analyze.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return reasoning.Analysis{}, nil, err
	}
	rawContent := []byte(content)

	// Validate strictly first.
	if err := reasoning.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if !c.cfg.LenientOptional {
			c.log.Error("reasoning.analyze.schema_validation_failed",
				"req_id", rid, "error", err, "content", content,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return reasoning.Analysis{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
		}
		// Lenient sanitize: drop/normalize optional offenders and re-validate.
		cleaned, dropped, sErr := reasoning.SanitizeAnalysisJSON(rawContent)
		if sErr != nil {
			c.log.Error("reasoning.analyze.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return reasoning.Analysis{}, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := reasoning.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("reasoning.analyze.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", content,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return reasoning.Analysis{}, rawContent, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("reasoning.analyze.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var out reasoning.Analysis
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("reasoning.analyze.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return reasoning.Analysis{}, rawContent, fmt.Errorf("unmarshal analysis: %w", err)
	}

	c.log.Info("reasoning.analyze.ok",
		"req_id", rid,
		"title", out.Title,
		"entity_type", out.EntityType,
		"tags", len(out.Tags),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

// Summarize implements the rolling session summary as a plain-text call.
func (c *Client) Summarize(ctx context.Context, req reasoning.SummarizeRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	sys, user := reasoning.BuildSummarizePrompt(req)
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user},
		},
	}

	content, err := c.chat(ctx, rid, body)
	if err != nil {
		c.log.Error("reasoning.summarize.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}
	c.log.Info("reasoning.summarize.ok",
		"req_id", rid, "chars", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return strings.TrimSpace(content), nil
}

// chat posts a chat/completions body and returns the first choice content.
func (c *Client) chat(ctx context.Context, rid string, body map[string]any) (string, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("reasoning.no_choices", "req_id", rid, "raw", string(raw))
		return "", fmt.Errorf("no choices in openai response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
