package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
	"github.com/tomyolivera/star-wars-api/internal/core/ports"
)

type stubMovieService struct {
	movies []domain.Movie
	movie  *domain.Movie
	seeded int
	err    error

	gotID    int64
	gotInput ports.MovieInput
}

func (s *stubMovieService) List(_ context.Context) ([]domain.Movie, error) {
	return s.movies, s.err
}

func (s *stubMovieService) Get(_ context.Context, id int64) (*domain.Movie, error) {
	s.gotID = id
	return s.movie, s.err
}

func (s *stubMovieService) Create(_ context.Context, in ports.MovieInput) (*domain.Movie, error) {
	s.gotInput = in
	return s.movie, s.err
}

func (s *stubMovieService) Update(_ context.Context, id int64, in ports.MovieInput) (*domain.Movie, error) {
	s.gotID = id
	s.gotInput = in
	return s.movie, s.err
}

func (s *stubMovieService) Delete(_ context.Context, id int64) error {
	s.gotID = id
	return s.err
}

func (s *stubMovieService) Seed(_ context.Context) (int, error) {
	return s.seeded, s.err
}

const movieBody = `{
	"title": "A New Hope",
	"episode_id": 4,
	"opening_crawl": "It is a period of civil war.",
	"director": "George Lucas",
	"producer": "Gary Kurtz",
	"release_date": "1977-05-25",
	"characters": ["Luke Skywalker"],
	"planets": ["Tatooine"],
	"starships": ["X-wing"],
	"vehicles": ["Sand Crawler"],
	"species": ["Human"]
}`

func movieContext(t *testing.T, method, path, body, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	return c, rec
}

func TestMovieHandler_List(t *testing.T) {
	svc := &stubMovieService{movies: []domain.Movie{{ID: 1, Title: "A New Hope"}}}
	h := NewMovieHandler(svc)

	c, rec := movieContext(t, http.MethodGet, "/api/movies", "", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var movies []domain.Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &movies); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "A New Hope" {
		t.Errorf("unexpected movies: %+v", movies)
	}
}

func TestMovieHandler_Get(t *testing.T) {
	svc := &stubMovieService{movie: &domain.Movie{ID: 7, Title: "Return of the Jedi"}}
	h := NewMovieHandler(svc)

	c, rec := movieContext(t, http.MethodGet, "/api/movies/7", "", "7")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if svc.gotID != 7 {
		t.Errorf("id = %d, want 7", svc.gotID)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMovieHandler_Get_InvalidID(t *testing.T) {
	h := NewMovieHandler(&stubMovieService{})

	c, _ := movieContext(t, http.MethodGet, "/api/movies/abc", "", "abc")
	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", he.Code)
	}
}

func TestMovieHandler_Get_NotFound(t *testing.T) {
	h := NewMovieHandler(&stubMovieService{err: domain.ErrMovieNotFound})

	c, _ := movieContext(t, http.MethodGet, "/api/movies/99", "", "99")
	if err := h.Get(c); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound to propagate, got %v", err)
	}
}

func TestMovieHandler_Create(t *testing.T) {
	svc := &stubMovieService{movie: &domain.Movie{ID: 1, Title: "A New Hope"}}
	h := NewMovieHandler(svc)

	c, rec := movieContext(t, http.MethodPost, "/api/movies", movieBody, "")
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.gotInput.Title != "A New Hope" || svc.gotInput.EpisodeID != 4 {
		t.Errorf("input not forwarded: %+v", svc.gotInput)
	}
}

func TestMovieHandler_Create_MissingFields(t *testing.T) {
	h := NewMovieHandler(&stubMovieService{})

	c, _ := movieContext(t, http.MethodPost, "/api/movies", `{"title":"A New Hope"}`, "")
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", he.Code)
	}
}

func TestMovieHandler_Update(t *testing.T) {
	svc := &stubMovieService{movie: &domain.Movie{ID: 3, Title: "A New Hope"}}
	h := NewMovieHandler(svc)

	c, rec := movieContext(t, http.MethodPut, "/api/movies/3", movieBody, "3")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if svc.gotID != 3 {
		t.Errorf("id = %d, want 3", svc.gotID)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMovieHandler_Delete(t *testing.T) {
	svc := &stubMovieService{}
	h := NewMovieHandler(svc)

	c, rec := movieContext(t, http.MethodDelete, "/api/movies/5", "", "5")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if svc.gotID != 5 {
		t.Errorf("id = %d, want 5", svc.gotID)
	}
	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "movie deleted successfully" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestMovieHandler_Seed(t *testing.T) {
	svc := &stubMovieService{seeded: 6}
	h := NewMovieHandler(svc)

	c, rec := movieContext(t, http.MethodGet, "/api/movies/seed", "", "")
	if err := h.Seed(c); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	var resp seedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Seeded != 6 {
		t.Errorf("seeded = %d, want 6", resp.Seeded)
	}
}
