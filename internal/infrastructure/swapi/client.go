// Package swapi implements the film fetcher against the public Star Wars
// API (https://swapi.dev), used by the movie seed endpoint.
package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tomyolivera/star-wars-api/internal/core/ports"
)

const requestTimeout = 15 * time.Second

// Client fetches films from a SWAPI-compatible endpoint.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a Client against baseURL (e.g. "https://swapi.dev/api").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

type film struct {
	Title        string   `json:"title"`
	EpisodeID    int      `json:"episode_id"`
	OpeningCrawl string   `json:"opening_crawl"`
	Director     string   `json:"director"`
	Producer     string   `json:"producer"`
	ReleaseDate  string   `json:"release_date"`
	Characters   []string `json:"characters"`
	Planets      []string `json:"planets"`
	Starships    []string `json:"starships"`
	Vehicles     []string `json:"vehicles"`
	Species      []string `json:"species"`
	Created      string   `json:"created"`
	Edited       string   `json:"edited"`
	URL          string   `json:"url"`
}

type filmsResponse struct {
	Results []film `json:"results"`
}

// FetchFilms retrieves the film catalog in a single request. No retries:
// seeding is a one-shot convenience operation.
func (c *Client) FetchFilms(ctx context.Context) ([]ports.MovieInput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/films", nil)
	if err != nil {
		return nil, fmt.Errorf("swapi request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("swapi fetch films: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("swapi fetch films: unexpected status %d", resp.StatusCode)
	}

	var payload filmsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("swapi decode films: %w", err)
	}

	films := make([]ports.MovieInput, len(payload.Results))
	for i, f := range payload.Results {
		films[i] = ports.MovieInput{
			Title:        f.Title,
			EpisodeID:    f.EpisodeID,
			OpeningCrawl: f.OpeningCrawl,
			Director:     f.Director,
			Producer:     f.Producer,
			ReleaseDate:  f.ReleaseDate,
			Characters:   f.Characters,
			Planets:      f.Planets,
			Starships:    f.Starships,
			Vehicles:     f.Vehicles,
			Species:      f.Species,
			Created:      f.Created,
			Edited:       f.Edited,
			URL:          f.URL,
		}
	}
	return films, nil
}
