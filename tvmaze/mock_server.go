// SPDX-License-Identifier: MIT
package tvmaze

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MockServer provides a configurable TVMaze mock server for testing.
type MockServer struct {
	*httptest.Server
	mu       sync.RWMutex
	shows    map[int]Show
	seasons  map[int][]Season
	episodes map[int][]Episode
	updates  map[string]any // raw values so tests can inject malformed entries
	pageSize int
	delay    map[string]time.Duration // artificial delay per endpoint
	failures map[string]int           // number of 500s before success per endpoint
}

// NewMockServer creates a new TVMaze mock server with default data.
func NewMockServer() *MockServer {
	mock := &MockServer{
		shows:    make(map[int]Show),
		seasons:  make(map[int][]Season),
		episodes: make(map[int][]Episode),
		updates:  make(map[string]any),
		pageSize: 250,
		delay:    make(map[string]time.Duration),
		failures: make(map[string]int),
	}

	mock.SetDefaultData()

	mux := http.NewServeMux()
	mux.HandleFunc("/shows", mock.handleShowIndex)
	mux.HandleFunc("/shows/", mock.handleShowSubtree)
	mux.HandleFunc("/updates/shows", mock.handleUpdates)
	mux.HandleFunc("/search/shows", mock.handleSearch)
	mux.HandleFunc("/singlesearch/shows", mock.handleSingleSearch)
	mux.HandleFunc("/schedule", mock.handleSchedule)
	mux.HandleFunc("/people/", mock.handlePerson)

	mock.Server = httptest.NewServer(mux)
	return mock
}

// SetDefaultData sets up realistic test data.
func (m *MockServer) SetDefaultData() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setDefaultDataNoLock()
}

func (m *MockServer) setDefaultDataNoLock() {
	runtime60 := 60
	rating := 8.2
	m.shows = map[int]Show{
		1: {
			ID: 1, Name: "Under the Dome", Type: "Scripted",
			Language: "English", Status: "Ended", Runtime: &runtime60,
			Genres:    []string{"Drama", "Science-Fiction", "Thriller"},
			Premiered: "2013-06-24",
			Rating:    Rating{Average: &rating},
			Network: &Network{ID: 2, Name: "CBS", Country: &Country{
				Name: "United States", Code: "US", Timezone: "America/New_York",
			}},
			Externals: Externals{IMDB: "tt1553656"},
			Updated:   1631010933,
		},
		2: {
			ID: 2, Name: "Person of Interest", Type: "Scripted",
			Language: "English", Status: "Ended", Runtime: &runtime60,
			Genres:    []string{"Action", "Crime", "Science-Fiction"},
			Premiered: "2011-09-22",
			Updated:   1631565378,
		},
	}

	m.seasons = map[int][]Season{
		1: {
			{ID: 1, Number: 1, Name: "Season 1", PremiereDate: "2013-06-24", EndDate: "2013-09-16"},
			{ID: 2, Number: 2, Name: "Season 2", PremiereDate: "2014-06-30", EndDate: "2014-09-22"},
		},
	}

	m.episodes = map[int][]Episode{
		1: {
			{ID: 1, Name: "Pilot", Season: 1, Number: 1, Airdate: "2013-06-24"},
			{ID: 2, Name: "The Fire", Season: 1, Number: 2, Airdate: "2013-07-01"},
		},
	}

	m.updates = map[string]any{
		"1": 1631010933,
		"2": 1631565378,
	}
}

// AddShow registers a show, replacing any existing entry with the same ID.
func (m *MockServer) AddShow(show Show) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shows[show.ID] = show
}

// SetSeasons replaces the season list for a show.
func (m *MockServer) SetSeasons(showID int, seasons []Season) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seasons[showID] = seasons
}

// SetEpisodes replaces the episode list for a show.
func (m *MockServer) SetEpisodes(showID int, episodes []Episode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.episodes[showID] = episodes
}

// SetUpdates replaces the raw updates feed. Values may be any JSON value to
// exercise the client's per-entry filtering.
func (m *MockServer) SetUpdates(updates map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = updates
}

// SetPageSize controls how many shows appear per index page.
func (m *MockServer) SetPageSize(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageSize = n
}

// SetFailures makes the named endpoint return 500 for the next n requests.
func (m *MockServer) SetFailures(endpoint string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[endpoint] = n
}

// SetDelay adds an artificial delay before the named endpoint responds.
func (m *MockServer) SetDelay(endpoint string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay[endpoint] = d
}

// Reset restores default data and clears injected failures and delays.
func (m *MockServer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = make(map[string]time.Duration)
	m.failures = make(map[string]int)
	m.pageSize = 250
	m.setDefaultDataNoLock()
}

// intercept applies injected delay and failure behavior; it reports whether
// the request was already answered.
func (m *MockServer) intercept(w http.ResponseWriter, endpoint string) bool {
	m.mu.Lock()
	d := m.delay[endpoint]
	fail := m.failures[endpoint] > 0
	if fail {
		m.failures[endpoint]--
	}
	m.mu.Unlock()

	if d > 0 {
		time.Sleep(d)
	}
	if fail {
		http.Error(w, "injected failure", http.StatusInternalServerError)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (m *MockServer) handleShowIndex(w http.ResponseWriter, r *http.Request) {
	if m.intercept(w, "/shows") {
		return
	}

	page := 0
	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			http.Error(w, "bad page", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	m.mu.RLock()
	ids := make([]int, 0, len(m.shows))
	for id := range m.shows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	size := m.pageSize
	var shows []Show
	for i := page * size; i < len(ids) && i < (page+1)*size; i++ {
		shows = append(shows, m.shows[ids[i]])
	}
	m.mu.RUnlock()

	if len(shows) == 0 {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, shows)
}

func (m *MockServer) handleShowSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/shows/")
	parts := strings.Split(rest, "/")
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch {
	case len(parts) == 1:
		if m.intercept(w, "/shows/:id") {
			return
		}
		m.mu.RLock()
		show, ok := m.shows[id]
		m.mu.RUnlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, show)

	case len(parts) == 2 && parts[1] == "seasons":
		if m.intercept(w, "/shows/:id/seasons") {
			return
		}
		m.mu.RLock()
		seasons, ok := m.seasons[id]
		m.mu.RUnlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, seasons)

	case len(parts) == 2 && parts[1] == "episodes":
		if m.intercept(w, "/shows/:id/episodes") {
			return
		}
		m.mu.RLock()
		episodes, ok := m.episodes[id]
		m.mu.RUnlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, episodes)

	case len(parts) == 2 && parts[1] == "episodebynumber":
		if m.intercept(w, "/shows/:id/episodebynumber") {
			return
		}
		season, err1 := strconv.Atoi(r.URL.Query().Get("season"))
		number, err2 := strconv.Atoi(r.URL.Query().Get("number"))
		if err1 != nil || err2 != nil {
			http.Error(w, "bad season or number", http.StatusBadRequest)
			return
		}
		m.mu.RLock()
		defer m.mu.RUnlock()
		for _, ep := range m.episodes[id] {
			if ep.Season == season && ep.Number == number {
				writeJSON(w, ep)
				return
			}
		}
		http.NotFound(w, r)

	case len(parts) == 2 && parts[1] == "cast":
		if m.intercept(w, "/shows/:id/cast") {
			return
		}
		writeJSON(w, []CastEntry{})

	default:
		http.NotFound(w, r)
	}
}

func (m *MockServer) handleUpdates(w http.ResponseWriter, r *http.Request) {
	if m.intercept(w, "/updates/shows") {
		return
	}

	since := r.URL.Query().Get("since")
	switch since {
	case "", "day", "week", "month":
	default:
		http.Error(w, "bad since", http.StatusBadRequest)
		return
	}

	m.mu.RLock()
	updates := m.updates
	m.mu.RUnlock()
	if updates == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, updates)
}

func (m *MockServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	if m.intercept(w, "/search/shows") {
		return
	}

	q := strings.ToLower(r.URL.Query().Get("q"))
	m.mu.RLock()
	var results []SearchResult
	for _, show := range m.shows {
		if strings.Contains(strings.ToLower(show.Name), q) {
			results = append(results, SearchResult{Score: 1, Show: show})
		}
	}
	m.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool { return results[i].Show.ID < results[j].Show.ID })
	if results == nil {
		results = []SearchResult{}
	}
	writeJSON(w, results)
}

func (m *MockServer) handleSingleSearch(w http.ResponseWriter, r *http.Request) {
	if m.intercept(w, "/singlesearch/shows") {
		return
	}

	q := strings.ToLower(r.URL.Query().Get("q"))
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, show := range m.shows {
		if strings.Contains(strings.ToLower(show.Name), q) {
			writeJSON(w, show)
			return
		}
	}
	http.NotFound(w, r)
}

func (m *MockServer) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if m.intercept(w, "/schedule") {
		return
	}
	writeJSON(w, []Episode{})
}

func (m *MockServer) handlePerson(w http.ResponseWriter, r *http.Request) {
	if m.intercept(w, "/people/:id") {
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/people/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, Person{ID: id, Name: "Mock Person"})
}
