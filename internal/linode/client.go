// internal/linode/client.go
package linode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/xmdragon/linode-manager/internal/models"
)

// UpstreamError reports a failed provider call: a non-2xx response or a
// transport failure (StatusCode 0). The message is passed through to the
// operator for visibility.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("linode api request failed: %s", e.Message)
	}
	return fmt.Sprintf("linode api returned %d: %s", e.StatusCode, e.Message)
}

// Client issues calls against the Linode v4 REST API. One outbound call per
// logical operation; no retries, no cross-call ordering guarantees.
type Client struct {
	baseURL    string
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient builds a client for the given API base URL and bearer token.
// Every request is bounded by the given timeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// providerErrorBody matches the Linode API error payload.
type providerErrorBody struct {
	Errors []struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	} `json:"errors"`
}

// listEnvelope matches the provider's paginated list responses.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// do performs one request and decodes a 2xx response body into out (skipped
// when out is nil). Any other outcome is an *UpstreamError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	log.Debugf("[linode] %s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("[linode] %s %s failed: %v", method, path, err)
		return &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{StatusCode: resp.StatusCode, Message: "failed to read response body: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := upstreamMessage(respBody, resp.StatusCode)
		log.Errorf("[linode] %s %s returned %d: %s", method, path, resp.StatusCode, msg)
		return &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &UpstreamError{StatusCode: resp.StatusCode, Message: "failed to decode response: " + err.Error()}
	}
	return nil
}

// upstreamMessage extracts the provider's error reason, falling back to the
// HTTP status text.
func upstreamMessage(body []byte, statusCode int) string {
	var parsed providerErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		reasons := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			if e.Field != "" {
				reasons = append(reasons, e.Field+": "+e.Reason)
			} else {
				reasons = append(reasons, e.Reason)
			}
		}
		return strings.Join(reasons, "; ")
	}
	return http.StatusText(statusCode)
}

// fetchList retrieves one page of a provider list endpoint and unwraps the
// data envelope.
func fetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var envelope listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return []T{}, nil
	}
	return envelope.Data, nil
}

// ListInstances returns all compute instances on the account.
func (c *Client) ListInstances(ctx context.Context) ([]models.Instance, error) {
	return fetchList[models.Instance](ctx, c, "/linode/instances")
}

// GetInstance returns a single instance by id.
func (c *Client) GetInstance(ctx context.Context, id int) (*models.Instance, error) {
	var instance models.Instance
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/linode/instances/%d", id), nil, &instance); err != nil {
		return nil, err
	}
	return &instance, nil
}

// CreateInstance provisions a new instance. The request is forwarded to the
// provider verbatim, optional references included.
func (c *Client) CreateInstance(ctx context.Context, req *models.CreateInstanceRequest) (*models.Instance, error) {
	var instance models.Instance
	if err := c.do(ctx, http.MethodPost, "/linode/instances", req, &instance); err != nil {
		return nil, err
	}
	return &instance, nil
}

// DeleteInstance removes an instance.
func (c *Client) DeleteInstance(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/linode/instances/%d", id), nil, nil)
}

// RebootInstance requests a reboot.
func (c *Client) RebootInstance(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/linode/instances/%d/reboot", id), nil, nil)
}

// BootInstance powers an instance on.
func (c *Client) BootInstance(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/linode/instances/%d/boot", id), nil, nil)
}

// ShutdownInstance powers an instance off.
func (c *Client) ShutdownInstance(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/linode/instances/%d/shutdown", id), nil, nil)
}

// ListTypes returns all compute plans.
func (c *Client) ListTypes(ctx context.Context) ([]models.InstanceType, error) {
	return fetchList[models.InstanceType](ctx, c, "/linode/types")
}

// ListSSHKeys returns the SSH keys on the operator's provider profile.
func (c *Client) ListSSHKeys(ctx context.Context) ([]models.SSHKey, error) {
	return fetchList[models.SSHKey](ctx, c, "/profile/sshkeys")
}

// ListBackups returns stored backups.
func (c *Client) ListBackups(ctx context.Context) ([]models.Backup, error) {
	return fetchList[models.Backup](ctx, c, "/linode/backups")
}

// ListFirewalls returns cloud firewalls.
func (c *Client) ListFirewalls(ctx context.Context) ([]models.Firewall, error) {
	return fetchList[models.Firewall](ctx, c, "/networking/firewalls")
}

// ListAccountUsers returns users on the provider account.
func (c *Client) ListAccountUsers(ctx context.Context) ([]models.AccountUser, error) {
	return fetchList[models.AccountUser](ctx, c, "/account/users")
}
