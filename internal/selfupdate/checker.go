package selfupdate

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultRepo is the release repository queried when UPPIES_REPO is not
// set.
const DefaultRepo = "bradcypert/uppies"

// Release is the latest-release metadata fetched from the release API.
// Ephemeral: fetched fresh on every self-update invocation, never
// cached.
type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// Asset is a named downloadable artifact attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// FindAsset returns the asset whose name matches exactly, or false.
func (r *Release) FindAsset(name string) (Asset, bool) {
	for _, a := range r.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// GitHubClient fetches release metadata from the GitHub releases API.
type GitHubClient struct {
	repo    string // owner/name
	token   string // Optional, for rate limiting
	client  *http.Client
	baseURL string // Base URL for the API (injectable for testing)
}

// NewGitHubClient creates a client for the given "owner/name" repo.
func NewGitHubClient(repo string) *GitHubClient {
	return &GitHubClient{
		repo: repo,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: "https://api.github.com",
	}
}

// WithToken sets an optional GitHub token for authentication.
func (c *GitHubClient) WithToken(token string) *GitHubClient {
	c.token = token
	return c
}

// WithBaseURL overrides the API base URL.
func (c *GitHubClient) WithBaseURL(baseURL string) *GitHubClient {
	c.baseURL = baseURL
	return c
}

// LatestRelease fetches the latest release's tag and asset list.
func (c *GitHubClient) LatestRelease() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, c.repo)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release API returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode release response: %w", err)
	}

	return &release, nil
}
