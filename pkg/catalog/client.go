package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"movie-reviews/pkg/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	fetchTimeout = 10 * time.Second
	pingTimeout  = 3 * time.Second
)

// Film is the upstream catalogue record. Movies are never stored locally;
// reviews reference them by the upstream ID only.
type Film struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	Description   string `json:"description"`
	Director      string `json:"director"`
	Producer      string `json:"producer"`
	ReleaseDate   string `json:"release_date"`
	RunningTime   string `json:"running_time"`
	RTScore       string `json:"rt_score"`
	Image         string `json:"image"`
	MovieBanner   string `json:"movie_banner"`
	URL           string `json:"url"`
}

// Client fetches films from the public Ghibli API.
type Client struct {
	http *resty.Client
	url  string
	log  *zap.Logger
}

func NewClient(config utils.CatalogConfig, log *zap.Logger) *Client {
	return &Client{
		http: resty.New().SetTimeout(fetchTimeout),
		url:  config.FilmsURL,
		log:  log.With(zap.String("client", "catalog")),
	}
}

// Films fetches the full catalogue.
func (c *Client) Films(ctx context.Context) ([]Film, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		c.log.Error("Failed to fetch films", zap.Error(err))
		return nil, fmt.Errorf("fetch films: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.log.Error("Unexpected films status", zap.Int("status", resp.StatusCode()))
		return nil, fmt.Errorf("fetch films: status %d", resp.StatusCode())
	}

	var films []Film
	if err := json.Unmarshal(resp.Body(), &films); err != nil {
		return nil, fmt.Errorf("decode films: %w", err)
	}

	return films, nil
}

// Ping checks upstream reachability for the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	_, err := c.http.R().
		SetContext(pingCtx).
		Get(c.url)
	if err != nil {
		return fmt.Errorf("ping catalog: %w", err)
	}

	return nil
}
