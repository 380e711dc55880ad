package docintel

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"labelscan/internal/analysis"
	"labelscan/internal/common"
)

// Client calls a document-intelligence HTTP service to extract label fields
// from a PDF. HTTP 5xx responses and transport errors are classified as
// recoverable; 4xx responses and schema violations are fatal for the file.
type Client struct {
	cfg    common.DocIntelConfig
	http   *http.Client
	log    *slog.Logger
	schema map[string]any
}

func NewClient(cfg common.DocIntelConfig, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("document-intelligence base URL is required: %w", common.ErrInvalidInput)
	}
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		log:    logger,
		schema: analysis.BuildFieldsSchema(),
	}, nil
}

type analyzeRequest struct {
	Filename   string         `json:"filename"`
	ContentB64 string         `json:"content_b64"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

type analyzeResponse struct {
	Fields     json.RawMessage `json:"fields"`
	Confidence float64         `json:"confidence"`
}

func (c *Client) AnalyzeFile(ctx context.Context, path string, meta analysis.FileMetadata) (analysis.Fields, error) {
	rid := uuid.New().String()
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return analysis.Fields{}, &analysis.FatalError{Reason: "read input file", Err: err}
	}

	body := analyzeRequest{
		Filename:   meta.Filename,
		ContentB64: base64.StdEncoding.EncodeToString(content),
		Parameters: meta.Parameters,
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/analyze"

	c.log.Info("docintel.analyze.start",
		"req_id", rid,
		"worker_id", common.WorkerIDFromContext(ctx),
		"filename", meta.Filename,
		"bytes", len(content),
	)

	raw, status, err := c.post(ctx, endpoint, body)
	if err != nil {
		elapsed := time.Since(start).Milliseconds()
		if status >= 400 && status < 500 {
			c.log.Error("docintel.analyze.rejected", "req_id", rid, "status", status, "elapsed_ms", elapsed)
			return analysis.Fields{}, &analysis.FatalError{
				Reason: fmt.Sprintf("document intelligence rejected %s (status %d)", meta.Filename, status),
				Err:    err,
			}
		}
		c.log.Warn("docintel.analyze.unavailable", "req_id", rid, "status", status, "error", err, "elapsed_ms", elapsed)
		return analysis.Fields{}, &analysis.RecoverableError{
			Reason: fmt.Sprintf("document intelligence unavailable for %s", meta.Filename),
			Err:    err,
		}
	}

	var resp analyzeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return analysis.Fields{}, &analysis.FatalError{Reason: "decode analysis response", Err: err}
	}
	if err := analysis.ValidateJSONAgainstSchema(c.schema, resp.Fields); err != nil {
		return analysis.Fields{}, &analysis.FatalError{
			Reason: fmt.Sprintf("analysis result for %s failed validation", meta.Filename),
			Err:    err,
		}
	}
	var fields analysis.Fields
	if err := json.Unmarshal(resp.Fields, &fields); err != nil {
		return analysis.Fields{}, &analysis.FatalError{Reason: "decode analysis fields", Err: err}
	}

	c.log.Info("docintel.analyze.ok",
		"req_id", rid,
		"filename", meta.Filename,
		"confidence", resp.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, nil
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, int, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(bs)))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
