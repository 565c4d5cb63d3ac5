package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/dshills/sheetdiff/internal/redact"
)

const (
	// DefaultBaseURL is where a locally run backend serves its API.
	DefaultBaseURL = "http://localhost:8080/api"

	defaultMaxRetries = 3
	defaultBackoff    = time.Second
	maxErrorBody      = 512
)

// Client provides access to the backend REST API.
type Client struct {
	token      string
	baseURL    string
	httpCli    *http.Client
	logger     *slog.Logger
	maxRetries int
	backoff    time.Duration
}

var _ API = (*Client)(nil)

// NewClient creates a client for baseURL. An empty token sends no
// Authorization header.
func NewClient(baseURL, token string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpCli:    &http.Client{Timeout: timeout},
		logger:     logger,
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
	}
}

// Commits lists the commit history, optionally narrowed by a message search.
func (c *Client) Commits(ctx context.Context, search string) ([]Commit, error) {
	path := "/commits"
	if search != "" {
		path += "?" + url.Values{"search": {search}}.Encode()
	}
	var out []Commit
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, errors.Wrap(err, "listing commits")
	}
	return out, nil
}

// Commit fetches one commit with its files.
func (c *Client) Commit(ctx context.Context, sha string) (*CommitDetails, error) {
	var out CommitDetails
	if err := c.getJSON(ctx, "/commits/"+url.PathEscape(sha), &out); err != nil {
		return nil, errors.Wrapf(err, "fetching commit %s", sha)
	}
	return &out, nil
}

// CommitChanges fetches the cell changes introduced by a commit.
func (c *Client) CommitChanges(ctx context.Context, sha string) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/commits/"+url.PathEscape(sha)+"/changes", nil, "")
	if err != nil {
		return nil, errors.Wrapf(err, "fetching changes of commit %s", sha)
	}
	return body, nil
}

// PendingApprovals lists pull requests awaiting the caller's decision.
func (c *Client) PendingApprovals(ctx context.Context) ([]PullRequest, error) {
	var out []PullRequest
	if err := c.getJSON(ctx, "/approvals/pending", &out); err != nil {
		return nil, errors.Wrap(err, "listing pending approvals")
	}
	return out, nil
}

// SentApprovals lists pull requests the caller opened.
func (c *Client) SentApprovals(ctx context.Context) ([]PullRequest, error) {
	var out []PullRequest
	if err := c.getJSON(ctx, "/approvals/sent", &out); err != nil {
		return nil, errors.Wrap(err, "listing sent approvals")
	}
	return out, nil
}

// PRChanges fetches the cell changes proposed by a pull request.
func (c *Client) PRChanges(ctx context.Context, number int) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/approvals/"+strconv.Itoa(number)+"/changes", nil, "")
	if err != nil {
		return nil, errors.Wrapf(err, "fetching changes of PR #%d", number)
	}
	return body, nil
}

// Approve approves and merges a pull request.
func (c *Client) Approve(ctx context.Context, number int, comment string) (*Decision, error) {
	d, err := c.decide(ctx, number, "approve", comment)
	return d, errors.Wrapf(err, "approving PR #%d", number)
}

// Reject rejects and closes a pull request. A comment is required.
func (c *Client) Reject(ctx context.Context, number int, comment string) (*Decision, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, ErrCommentRequired
	}
	d, err := c.decide(ctx, number, "reject", comment)
	return d, errors.Wrapf(err, "rejecting PR #%d", number)
}

func (c *Client) decide(ctx context.Context, number int, action, comment string) (*Decision, error) {
	payload, err := json.Marshal(map[string]string{"comment": comment})
	if err != nil {
		return nil, errors.Wrap(err, "marshaling decision")
	}
	path := "/approvals/" + strconv.Itoa(number) + "/" + action
	body, err := c.do(ctx, http.MethodPost, path, payload, "application/json")
	if err != nil {
		return nil, err
	}
	var d Decision
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, errors.Wrap(err, "parsing response")
	}
	return &d, nil
}

// Collaborators lists users who can approve uploads.
func (c *Client) Collaborators(ctx context.Context) ([]Collaborator, error) {
	var out []Collaborator
	if err := c.getJSON(ctx, "/collaborators", &out); err != nil {
		return nil, errors.Wrap(err, "listing collaborators")
	}
	return out, nil
}

// Upload sends workbooks for review. The response is the backend's upload
// result, passed through unchanged.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (json.RawMessage, error) {
	if len(req.Files) == 0 {
		return nil, errors.New("upload needs at least one file")
	}
	payload, contentType, err := buildUploadBody(req)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPost, "/upload", payload, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "uploading")
	}
	return body, nil
}

func buildUploadBody(req UploadRequest) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, path := range req.Files {
		if err := addFilePart(mw, path); err != nil {
			return nil, "", err
		}
	}
	if req.CommitMessage != "" {
		if err := mw.WriteField("commitMessage", req.CommitMessage); err != nil {
			return nil, "", errors.Wrap(err, "writing commit message")
		}
	}
	for _, a := range req.Approvers {
		if err := mw.WriteField("approvers", a); err != nil {
			return nil, "", errors.Wrap(err, "writing approvers")
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", errors.Wrap(err, "closing multipart body")
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}

func addFilePart(mw *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening upload file")
	}
	defer f.Close()

	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "creating file part")
	}
	if _, err := io.Copy(part, f); err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "parsing response")
	}
	return nil
}

// do sends one request, retrying transient failures, and returns the body of
// a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, contentType string) ([]byte, error) {
	var body []byte
	err := retryWithBackoff(ctx, c.maxRetries, c.backoff, func() error {
		var err error
		body, err = c.doOnce(ctx, method, path, payload, contentType)
		var te *transientError
		if errors.As(err, &te) {
			c.logger.Warn("backend request failed, retrying",
				"method", method, "path", path, "status", te.status)
		}
		return err
	})
	return body, err
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, contentType string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}
	c.logger.Debug("backend request",
		"method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{Status: resp.StatusCode, Message: c.errorText(body)}
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrapf(ErrNotFound, "%s %s", method, path)
	case retryable(resp.StatusCode):
		return nil, &transientError{status: resp.StatusCode, body: c.errorText(body)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("backend error (status %d): %s", resp.StatusCode, c.errorText(body))
	}
	return body, nil
}

// errorText prepares a response body for an error message.
func (c *Client) errorText(body []byte) string {
	s := redact.Secrets(strings.TrimSpace(string(body)), c.token)
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
