package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// RoleClient resolves a caller's roles from the user service.
//
// Two endpoint shapes coexist:
//
//	GET {base}/role/user/{id} → {success, message, data: ["admin", …], error}
//	GET {base}/role/{id}      → [{id, name, …}, …]  or  {data: [{id, name, …}, …]}
//
// The second is the legacy shape still used by parts of the CRUD surface.
type RoleClient struct {
	baseURL string
	client  *http.Client
}

// NewRoleClient constructs a client for the user service at baseURL.
func NewRoleClient(baseURL string) *RoleClient {
	return &RoleClient{baseURL: baseURL, client: newHTTPClient()}
}

// Role mirrors a role record on the legacy endpoint.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// rolesEnvelope mirrors the per-user role listing response.
type rolesEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    []string `json:"data"`
}

// UserRoles returns the caller's role names from the per-user listing
// endpoint. The credential is forwarded verbatim.
func (c *RoleClient) UserRoles(ctx context.Context, userID int64, credential string) ([]string, error) {
	var envelope rolesEnvelope
	url := joinURL(c.baseURL, "role", "user", strconv.FormatInt(userID, 10))
	if err := getJSON(ctx, c.client, url, credential, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// LegacyRoleNames returns the caller's role names from the legacy endpoint,
// accepting both the bare-array and the wrapped response shape.
func (c *RoleClient) LegacyRoleNames(ctx context.Context, userID int64, credential string) ([]string, error) {
	url := joinURL(c.baseURL, "role", strconv.FormatInt(userID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", credential)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote returned %d: %s", resp.StatusCode, string(body))
	}

	var bare []Role
	if err := json.Unmarshal(body, &bare); err == nil {
		return roleNames(bare), nil
	}

	var wrapped struct {
		Data []Role `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return roleNames(wrapped.Data), nil
}

func roleNames(roles []Role) []string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names
}
