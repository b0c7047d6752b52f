package handler

import "github.com/tomyolivera/star-wars-api/internal/core/ports"

// movieRequest carries the writable movie fields, shared by create and
// update. The field names mirror the SWAPI films payload.
type movieRequest struct {
	Title        string   `json:"title"         validate:"required"`
	EpisodeID    int      `json:"episode_id"    validate:"required"`
	OpeningCrawl string   `json:"opening_crawl" validate:"required"`
	Director     string   `json:"director"      validate:"required"`
	Producer     string   `json:"producer"      validate:"required"`
	ReleaseDate  string   `json:"release_date"  validate:"required"`
	Characters   []string `json:"characters"    validate:"required"`
	Planets      []string `json:"planets"       validate:"required"`
	Starships    []string `json:"starships"     validate:"required"`
	Vehicles     []string `json:"vehicles"      validate:"required"`
	Species      []string `json:"species"       validate:"required"`
	Created      string   `json:"created"`
	Edited       string   `json:"edited"`
	URL          string   `json:"url"`
}

type seedResponse struct {
	Seeded int `json:"seeded"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toMovieInput(req movieRequest) ports.MovieInput {
	return ports.MovieInput{
		Title:        req.Title,
		EpisodeID:    req.EpisodeID,
		OpeningCrawl: req.OpeningCrawl,
		Director:     req.Director,
		Producer:     req.Producer,
		ReleaseDate:  req.ReleaseDate,
		Characters:   req.Characters,
		Planets:      req.Planets,
		Starships:    req.Starships,
		Vehicles:     req.Vehicles,
		Species:      req.Species,
		Created:      req.Created,
		Edited:       req.Edited,
		URL:          req.URL,
	}
}
