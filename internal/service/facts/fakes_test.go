package facts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/core"
)

type fakeUsers map[string]core.User

func (f fakeUsers) GetUser(_ context.Context, id string) (core.User, error) {
	u, ok := f[id]
	if !ok {
		return core.User{}, core.ErrUserNotFound
	}
	return u, nil
}

type fakeMovies map[string]core.Movie

func (f fakeMovies) GetMovie(_ context.Context, id string) (core.Movie, error) {
	m, ok := f[id]
	if !ok {
		return core.Movie{}, core.ErrMovieNotFound
	}
	return m, nil
}

// fakeFacts keeps facts in creation order, oldest first.
type fakeFacts struct {
	facts        []core.Fact
	seq          int
	err          error
	beforeCreate func()
	creates      int
}

func (f *fakeFacts) add(movieID, text, key string, cat core.Category) core.Fact {
	f.seq++
	fact := core.Fact{
		ID:        fmt.Sprintf("f%d", f.seq),
		MovieID:   movieID,
		Text:      text,
		Key:       key,
		Category:  cat,
		CreatedAt: time.Unix(int64(f.seq), 0),
	}
	f.facts = append(f.facts, fact)
	return fact
}

func (f *fakeFacts) GetFactsByIDs(_ context.Context, ids []string) ([]core.Fact, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []core.Fact
	for _, fact := range f.facts {
		if want[fact.ID] {
			out = append(out, fact)
		}
	}
	return out, nil
}

func (f *fakeFacts) GetFactsForMovieExcluding(_ context.Context, movieID string, excludeIDs []string, limit int, order core.SortOrder) ([]core.Fact, error) {
	exclude := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		exclude[id] = true
	}
	var out []core.Fact
	for _, fact := range f.ordered(order) {
		if fact.MovieID == movieID && !exclude[fact.ID] && len(out) < limit {
			out = append(out, fact)
		}
	}
	return out, nil
}

func (f *fakeFacts) GetFactByID(_ context.Context, id string) (core.Fact, error) {
	for _, fact := range f.facts {
		if fact.ID == id {
			return fact, nil
		}
	}
	return core.Fact{}, core.ErrFactNotFound
}

func (f *fakeFacts) GetFactsForMovie(_ context.Context, movieID string, limit int) ([]core.Fact, error) {
	var out []core.Fact
	for _, fact := range f.ordered(core.SortDesc) {
		if fact.MovieID == movieID && len(out) < limit {
			out = append(out, fact)
		}
	}
	return out, nil
}

func (f *fakeFacts) CreateFact(_ context.Context, movieID, text, key string, category core.Category) (core.Fact, error) {
	f.creates++
	if f.beforeCreate != nil {
		f.beforeCreate()
	}
	for _, fact := range f.facts {
		if key != "" && fact.MovieID == movieID && fact.Key == key {
			return fact, nil
		}
	}
	return f.add(movieID, text, key, category), nil
}

func (f *fakeFacts) ordered(order core.SortOrder) []core.Fact {
	out := make([]core.Fact, len(f.facts))
	copy(out, f.facts)
	if order == core.SortDesc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// fakeGenerator replays candidates in order and repeats the last one.
type fakeGenerator struct {
	candidates []core.Candidate
	requests   []core.GenerateRequest
}

func (g *fakeGenerator) Generate(_ context.Context, req core.GenerateRequest) core.Candidate {
	g.requests = append(g.requests, req)
	if len(g.candidates) == 0 {
		return core.Candidate{}
	}
	i := min(len(g.requests)-1, len(g.candidates)-1)
	return g.candidates[i]
}

var errStoreDown = errors.New("store down")

const (
	testUser  = "u1"
	testMovie = "m1"
)

type fixture struct {
	facts  *fakeFacts
	gen    *fakeGenerator
	engine *Engine
}

func newFixture(candidates ...core.Candidate) *fixture {
	f := &fixture{
		facts: &fakeFacts{},
		gen:   &fakeGenerator{candidates: candidates},
	}
	users := fakeUsers{
		testUser: {ID: testUser, Email: "u1@example.com", FavoriteMovieID: testMovie},
		"nofav":  {ID: "nofav", Email: "nofav@example.com"},
		"orphan": {ID: "orphan", Email: "orphan@example.com", FavoriteMovieID: "gone"},
	}
	movies := fakeMovies{
		testMovie: {ID: testMovie, Title: "The Matrix", Year: 1999},
		"m2":      {ID: "m2", Title: "Heat", Year: 1995},
	}
	f.engine = NewEngine(users, movies, f.facts, f.gen, config.DefaultSelectionConfig())
	return f
}
