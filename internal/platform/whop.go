package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.whop.com"

// Client talks to the community platform's REST API: channel directory,
// message posting, media uploads and member profiles.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (client *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	payload := struct {
		Data []Channel `json:"data"`
	}{}
	if err := client.getJSON(ctx, "/v5/app/channels", &payload); err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	if payload.Data == nil {
		return []Channel{}, nil
	}
	return payload.Data, nil
}

func (client *Client) GetUser(ctx context.Context, userID string) (UserInfo, error) {
	user := UserInfo{}
	if err := client.getJSON(ctx, "/v5/app/users/"+userID, &user); err != nil {
		return UserInfo{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// PostToChannel delivers the message synchronously. Failures are returned to
// the caller untouched; posting is never retried here.
func (client *Client) PostToChannel(ctx context.Context, channelID string, text string, mediaIDs []string) error {
	body := struct {
		Content       string   `json:"content"`
		AttachmentIDs []string `json:"attachment_ids,omitempty"`
	}{Content: text, AttachmentIDs: mediaIDs}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode channel message: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+"/v5/app/channels/"+channelID+"/messages", bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build channel post request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.send(request)
	if err != nil {
		return fmt.Errorf("post to channel %s: %w", channelID, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("post to channel %s: status %d", channelID, response.StatusCode)
	}
	return nil
}

// UploadMedia streams a file to the platform and returns its opaque media
// reference id.
func (client *Client) UploadMedia(ctx context.Context, filename string, content io.Reader) (string, error) {
	buffer := &bytes.Buffer{}
	form := multipart.NewWriter(buffer)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build media form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("read media content: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("finalize media form: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+"/v5/app/media", buffer)
	if err != nil {
		return "", fmt.Errorf("build media upload request: %w", err)
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	response, err := client.send(request)
	if err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", fmt.Errorf("upload media: status %d", response.StatusCode)
	}

	payload := struct {
		ID string `json:"id"`
	}{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode media upload response: %w", err)
	}
	if payload.ID == "" {
		return "", fmt.Errorf("upload media: response missing id")
	}
	return payload.ID, nil
}

func (client *Client) getJSON(ctx context.Context, path string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	response, err := client.send(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("status %d", response.StatusCode)
	}
	return json.NewDecoder(response.Body).Decode(out)
}

func (client *Client) send(request *http.Request) (*http.Response, error) {
	request.Header.Set("Authorization", "Bearer "+client.apiKey)
	request.Header.Set("Accept", "application/json")
	return client.httpClient.Do(request)
}
