package remote

import (
	"context"
	"encoding/json"
	"f1-standings-service/internal/domain"
	"f1-standings-service/internal/platform/obs"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const ClassificationPath = "/api/classification"

type classificationResponse struct {
	Data []domain.Standing `json:"data"`
}

// Client implements StandingsSource against a classification API.
// One GET per call, no retries.
type Client struct {
	session *http.Client
	baseURL string
}

// NewClient builds a client for baseURL. A nil session gets a 10s-timeout client.
func NewClient(baseURL string, session *http.Client) *Client {
	if session == nil {
		session = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		session: session,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) URL() string {
	return c.baseURL + ClassificationPath
}

func (c *Client) ListStandings(ctx context.Context) (_ []domain.Standing, err error) {
	defer obs.Time(ctx, "remote.ListStandings")(&err)

	// a request that cannot be built never reached the wire
	req, err := c.newRequest(ctx, c.URL())
	if err != nil {
		return nil, &FetchError{Message: unexpectedMessage, Err: err}
	}

	standings, err := c.fetch(req)
	if err != nil {
		return nil, newFetchError(err)
	}
	return standings, nil
}

func (c *Client) fetch(req *http.Request) ([]domain.Standing, error) {
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body classificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode classification: %w", err)
	}
	if body.Data == nil {
		body.Data = []domain.Standing{}
	}

	return body.Data, nil
}
