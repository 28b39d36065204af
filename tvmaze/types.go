// SPDX-License-Identifier: MIT

package tvmaze

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Show is a TVMaze show record as returned by /shows and /shows/:id.
type Show struct {
	ID             int       `json:"id"`
	URL            string    `json:"url"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Language       string    `json:"language"`
	Genres         []string  `json:"genres"`
	Status         string    `json:"status"`
	Runtime        *int      `json:"runtime"`
	AverageRuntime *int      `json:"averageRuntime"`
	Premiered      string    `json:"premiered"`
	Ended          string    `json:"ended"`
	OfficialSite   string    `json:"officialSite"`
	Schedule       Airing    `json:"schedule"`
	Rating         Rating    `json:"rating"`
	Weight         int       `json:"weight"`
	Network        *Network  `json:"network"`
	WebChannel     *Network  `json:"webChannel"`
	Externals      Externals `json:"externals"`
	Image          *Image    `json:"image"`
	Summary        string    `json:"summary"`
	Updated        int64     `json:"updated"`
}

// Airing describes when new episodes air.
type Airing struct {
	Time string   `json:"time"`
	Days []string `json:"days"`
}

// Rating carries the weighted show rating; Average is null for unrated shows.
type Rating struct {
	Average *float64 `json:"average"`
}

// Network identifies a broadcast network or streaming channel.
type Network struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Country      *Country `json:"country"`
	OfficialSite string   `json:"officialSite"`
}

// Country is the network's home country.
type Country struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Timezone string `json:"timezone"`
}

// Externals holds cross-reference IDs into other show databases.
type Externals struct {
	TVRage  *int   `json:"tvrage"`
	TheTVDB *int   `json:"thetvdb"`
	IMDB    string `json:"imdb"`
}

// Image holds medium and original resolution artwork URLs.
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// Season is a TVMaze season record as returned by /shows/:id/seasons.
type Season struct {
	ID           int      `json:"id"`
	URL          string   `json:"url"`
	Number       int      `json:"number"`
	Name         string   `json:"name"`
	EpisodeOrder *int     `json:"episodeOrder"`
	PremiereDate string   `json:"premiereDate"`
	EndDate      string   `json:"endDate"`
	Network      *Network `json:"network"`
	WebChannel   *Network `json:"webChannel"`
	Image        *Image   `json:"image"`
	Summary      string   `json:"summary"`
}

// Episode is a TVMaze episode record.
type Episode struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Name     string `json:"name"`
	Season   int    `json:"season"`
	Number   int    `json:"number"`
	Type     string `json:"type"`
	Airdate  string `json:"airdate"`
	Airtime  string `json:"airtime"`
	Airstamp string `json:"airstamp"`
	Runtime  *int   `json:"runtime"`
	Rating   Rating `json:"rating"`
	Image    *Image `json:"image"`
	Summary  string `json:"summary"`
	Show     *Show  `json:"show,omitempty"` // populated by /schedule
}

// SearchResult is one fuzzy-search hit from /search/shows.
type SearchResult struct {
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}

// Person is a TVMaze person record as returned by /people/:id.
type Person struct {
	ID       int      `json:"id"`
	URL      string   `json:"url"`
	Name     string   `json:"name"`
	Country  *Country `json:"country"`
	Birthday string   `json:"birthday"`
	Deathday string   `json:"deathday"`
	Gender   string   `json:"gender"`
	Image    *Image   `json:"image"`
	Updated  int64    `json:"updated"`
}

// Character is a role within a show.
type Character struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Name  string `json:"name"`
	Image *Image `json:"image"`
}

// CastEntry pairs a person with the character they play.
type CastEntry struct {
	Person    Person    `json:"person"`
	Character Character `json:"character"`
	Self      bool      `json:"self"`
	Voice     bool      `json:"voice"`
}

// Timestamp handles JSON fields that can be 1678886400 or "1678886400".
// The updates feed has been observed serving both.
type Timestamp int64

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		*t = 0
		return nil
	}
	// If it's a JSON string: "12345"
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*t = 0
			return nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("timestamp: invalid string %q", s)
		}
		*t = Timestamp(i)
		return nil
	}
	// Otherwise treat as number
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("timestamp: invalid json value: %s", string(b))
	}
	i, err := n.Int64()
	if err != nil {
		return fmt.Errorf("timestamp: not int64: %s", n.String())
	}
	*t = Timestamp(i)
	return nil
}
