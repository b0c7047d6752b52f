package domain

import (
	"errors"
	"time"
)

var ErrMovieNotFound = errors.New("movie not found")

// Movie is the film resource served by the API. The field set mirrors the
// SWAPI films payload so seeded records round-trip without translation.
type Movie struct {
	ID           int64     `json:"id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	EpisodeID    int       `json:"episode_id" bson:"episode_id"`
	OpeningCrawl string    `json:"opening_crawl" bson:"opening_crawl"`
	Director     string    `json:"director" bson:"director"`
	Producer     string    `json:"producer" bson:"producer"`
	ReleaseDate  string    `json:"release_date" bson:"release_date"`
	Characters   []string  `json:"characters" bson:"characters"`
	Planets      []string  `json:"planets" bson:"planets"`
	Starships    []string  `json:"starships" bson:"starships"`
	Vehicles     []string  `json:"vehicles" bson:"vehicles"`
	Species      []string  `json:"species" bson:"species"`
	Created      string    `json:"created" bson:"created"`
	Edited       string    `json:"edited" bson:"edited"`
	URL          string    `json:"url" bson:"url"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
