// Package sandbox manages remote execution sandboxes: provider API client,
// lifecycle manager (resume → reconnect → fresh clone), and the gone-retry
// wrapper used by every tool-level command.
package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "https://api.vercel.com/v1/sandboxes"

// Credentials authenticate against the sandbox provider.
type Credentials struct {
	Token     string
	ProjectID string
	TeamID    string
}

// CredentialsFromEnv reads provider credentials from the environment.
func CredentialsFromEnv() (Credentials, error) {
	creds := Credentials{
		Token:     os.Getenv("VERCEL_TOKEN"),
		ProjectID: os.Getenv("VERCEL_PROJECT_ID"),
		TeamID:    os.Getenv("VERCEL_TEAM_ID"),
	}
	if creds.Token == "" || creds.ProjectID == "" || creds.TeamID == "" {
		return Credentials{}, ErrMissingCredentials
	}
	return creds, nil
}

// Client talks to the sandbox provider's HTTP API.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
}

// NewClient creates a provider client.
func NewClient(creds Credentials) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		creds:   creds,
		httpClient: &http.Client{
			// Command runs can legitimately take minutes (installs, builds).
			Timeout: 15 * time.Minute,
		},
	}
}

// NewClientWithBaseURL creates a provider client against a custom endpoint
// (tests point this at a local httptest server).
func NewClientWithBaseURL(creds Credentials, baseURL string) *Client {
	c := NewClient(creds)
	c.baseURL = baseURL
	return c
}

// CreateParams configures sandbox creation.
type CreateParams struct {
	Runtime        string `json:"runtime"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	// SourceSnapshotID resumes from a snapshot instead of a blank image.
	SourceSnapshotID string `json:"source_snapshot_id,omitempty"`
}

// Instance describes a provider-side sandbox.
type Instance struct {
	SandboxID string `json:"sandbox_id"`
	Status    string `json:"status"`
}

// CommandResult is the outcome of one command run inside a sandbox.
type CommandResult struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Create provisions a new sandbox, optionally from a snapshot.
func (c *Client) Create(ctx context.Context, params CreateParams) (*Instance, error) {
	var inst Instance
	if err := c.do(ctx, http.MethodPost, "", params, &inst); err != nil {
		return nil, fmt.Errorf("sandbox create failed: %w", err)
	}
	return &inst, nil
}

// Get fetches a sandbox by id.
func (c *Client) Get(ctx context.Context, sandboxID string) (*Instance, error) {
	var inst Instance
	if err := c.do(ctx, http.MethodGet, "/"+sandboxID, nil, &inst); err != nil {
		return nil, fmt.Errorf("sandbox get failed: %w", err)
	}
	return &inst, nil
}

// RunCommand executes a command inside the sandbox and waits for it.
func (c *Client) RunCommand(ctx context.Context, sandboxID, cmd string, args []string) (*CommandResult, error) {
	req := struct {
		Cmd  string   `json:"cmd"`
		Args []string `json:"args"`
	}{Cmd: cmd, Args: args}
	var res CommandResult
	if err := c.do(ctx, http.MethodPost, "/"+sandboxID+"/commands", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Snapshot freezes the sandbox into a resumable image. The provider stops
// the sandbox as a side effect.
func (c *Client) Snapshot(ctx context.Context, sandboxID string) (string, error) {
	var res struct {
		SnapshotID string `json:"snapshot_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/"+sandboxID+"/snapshot", nil, &res); err != nil {
		return "", fmt.Errorf("sandbox snapshot failed: %w", err)
	}
	return res.SnapshotID, nil
}

// Stop shuts the sandbox down without snapshotting.
func (c *Client) Stop(ctx context.Context, sandboxID string) error {
	if err := c.do(ctx, http.MethodPost, "/"+sandboxID+"/stop", nil, nil); err != nil {
		return fmt.Errorf("sandbox stop failed: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	url := c.baseURL + path + "?projectId=" + c.creds.ProjectID + "&teamId=" + c.creds.TeamID
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sandbox provider request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &msg) == nil && msg.Error != "" {
			apiErr.Message = msg.Error
		} else {
			apiErr.Message = string(data)
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}
	return nil
}
