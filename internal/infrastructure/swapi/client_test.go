package swapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const filmsPayload = `{
	"count": 2,
	"results": [
		{
			"title": "A New Hope",
			"episode_id": 4,
			"opening_crawl": "It is a period of civil war.",
			"director": "George Lucas",
			"producer": "Gary Kurtz, Rick McCallum",
			"release_date": "1977-05-25",
			"characters": ["https://swapi.dev/api/people/1/"],
			"planets": ["https://swapi.dev/api/planets/1/"],
			"starships": ["https://swapi.dev/api/starships/2/"],
			"vehicles": ["https://swapi.dev/api/vehicles/4/"],
			"species": ["https://swapi.dev/api/species/1/"],
			"created": "2014-12-10T14:23:31.880000Z",
			"edited": "2014-12-20T19:49:45.256000Z",
			"url": "https://swapi.dev/api/films/1/"
		},
		{
			"title": "The Empire Strikes Back",
			"episode_id": 5,
			"opening_crawl": "It is a dark time for the Rebellion.",
			"director": "Irvin Kershner",
			"producer": "Gary Kurtz, Rick McCallum",
			"release_date": "1980-05-17",
			"characters": [],
			"planets": [],
			"starships": [],
			"vehicles": [],
			"species": [],
			"created": "2014-12-12T11:26:24.656000Z",
			"edited": "2014-12-15T13:07:53.386000Z",
			"url": "https://swapi.dev/api/films/2/"
		}
	]
}`

func TestFetchFilms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/films" {
			t.Errorf("path = %q, want /films", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(filmsPayload))
	}))
	defer srv.Close()

	films, err := NewClient(srv.URL).FetchFilms(context.Background())
	if err != nil {
		t.Fatalf("FetchFilms returned error: %v", err)
	}
	if len(films) != 2 {
		t.Fatalf("expected 2 films, got %d", len(films))
	}
	if films[0].Title != "A New Hope" || films[0].EpisodeID != 4 {
		t.Errorf("unexpected first film: %+v", films[0])
	}
	if films[0].Director != "George Lucas" {
		t.Errorf("director = %q", films[0].Director)
	}
	if len(films[0].Characters) != 1 {
		t.Errorf("expected 1 character url, got %d", len(films[0].Characters))
	}
	if films[1].EpisodeID != 5 {
		t.Errorf("unexpected second film: %+v", films[1])
	}
}

func TestFetchFilms_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).FetchFilms(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestFetchFilms_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).FetchFilms(context.Background()); err == nil {
		t.Fatal("expected error on malformed payload")
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/films" {
			t.Errorf("path = %q, want /films", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL + "/").FetchFilms(context.Background()); err != nil {
		t.Fatalf("FetchFilms returned error: %v", err)
	}
}
