package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	MovieTypeMovie       = "movie"
	MovieTypeSeries      = "series"
	MovieTypeDocumentary = "documentary"
)

// Movie is the stored movie record. Fields after Directors are descriptive
// and carry no business meaning.
type Movie struct {
	ID        string    `json:"id" bson:"-"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Title     string    `json:"title" bson:"title"`
	Plot      string    `json:"plot" bson:"plot"`
	Released  time.Time `json:"released" bson:"released"`
	Directors []string  `json:"directors" bson:"directors"`

	Genres           []string               `json:"genres,omitempty" bson:"genres,omitempty"`
	Runtime          int                    `json:"runtime,omitempty" bson:"runtime,omitempty"`
	Cast             []string               `json:"cast,omitempty" bson:"cast,omitempty"`
	Poster           string                 `json:"poster,omitempty" bson:"poster,omitempty"`
	FullPlot         string                 `json:"fullplot,omitempty" bson:"fullplot,omitempty"`
	Languages        []string               `json:"languages,omitempty" bson:"languages,omitempty"`
	Rated            string                 `json:"rated,omitempty" bson:"rated,omitempty"`
	Awards           map[string]interface{} `json:"awards,omitempty" bson:"awards,omitempty"`
	LastUpdated      string                 `json:"lastupdated,omitempty" bson:"lastupdated,omitempty"`
	Year             int                    `json:"year,omitempty" bson:"year,omitempty"`
	IMDB             map[string]interface{} `json:"imdb,omitempty" bson:"imdb,omitempty"`
	Countries        []string               `json:"countries,omitempty" bson:"countries,omitempty"`
	Type             string                 `json:"type,omitempty" bson:"type,omitempty"`
	Tomatoes         map[string]interface{} `json:"tomatoes,omitempty" bson:"tomatoes,omitempty"`
	NumMflixComments *int                   `json:"num_mflix_comments,omitempty" bson:"num_mflix_comments,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// MovieSummary is the list projection of a movie.
type MovieSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Released  time.Time `json:"released"`
	Directors []string  `json:"directors"`
}

// MovieDetail is the single-record projection; directors are joined.
type MovieDetail struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Released  time.Time `json:"released"`
	Directors string    `json:"directors"`
}

func (m *Movie) Summary() MovieSummary {
	return MovieSummary{
		ID:        m.ID,
		Title:     m.Title,
		Released:  m.Released,
		Directors: m.Directors,
	}
}

func (m *Movie) Detail() MovieDetail {
	return MovieDetail{
		ID:        m.ID,
		Title:     m.Title,
		Released:  m.Released,
		Directors: strings.Join(m.Directors, ","),
	}
}

// MoviePatch is a partial update. Nil fields are left untouched.
type MoviePatch struct {
	Title     *string
	Plot      *string
	Released  *time.Time
	Directors []string

	Genres           []string
	Runtime          *int
	Cast             []string
	Poster           *string
	FullPlot         *string
	Languages        []string
	Rated            *string
	Awards           map[string]interface{}
	LastUpdated      *string
	Year             *int
	IMDB             map[string]interface{}
	Countries        []string
	Type             *string
	Tomatoes         map[string]interface{}
	NumMflixComments *int
}

// Fields returns the set fields keyed by their stored names.
func (p *MoviePatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})

	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	setInt := func(key string, v *int) {
		if v != nil {
			fields[key] = *v
		}
	}
	setList := func(key string, v []string) {
		if v != nil {
			fields[key] = v
		}
	}
	setObject := func(key string, v map[string]interface{}) {
		if v != nil {
			fields[key] = v
		}
	}

	setString("title", p.Title)
	setString("plot", p.Plot)
	if p.Released != nil {
		fields["released"] = *p.Released
	}
	setList("directors", p.Directors)
	setList("genres", p.Genres)
	setInt("runtime", p.Runtime)
	setList("cast", p.Cast)
	setString("poster", p.Poster)
	setString("fullplot", p.FullPlot)
	setList("languages", p.Languages)
	setString("rated", p.Rated)
	setObject("awards", p.Awards)
	setString("lastupdated", p.LastUpdated)
	setInt("year", p.Year)
	setObject("imdb", p.IMDB)
	setList("countries", p.Countries)
	setString("type", p.Type)
	setObject("tomatoes", p.Tomatoes)
	setInt("num_mflix_comments", p.NumMflixComments)

	return fields
}

// Apply copies the set fields of p onto m.
func (p *MoviePatch) Apply(m *Movie) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Plot != nil {
		m.Plot = *p.Plot
	}
	if p.Released != nil {
		m.Released = *p.Released
	}
	if p.Directors != nil {
		m.Directors = p.Directors
	}
	if p.Genres != nil {
		m.Genres = p.Genres
	}
	if p.Runtime != nil {
		m.Runtime = *p.Runtime
	}
	if p.Cast != nil {
		m.Cast = p.Cast
	}
	if p.Poster != nil {
		m.Poster = *p.Poster
	}
	if p.FullPlot != nil {
		m.FullPlot = *p.FullPlot
	}
	if p.Languages != nil {
		m.Languages = p.Languages
	}
	if p.Rated != nil {
		m.Rated = *p.Rated
	}
	if p.Awards != nil {
		m.Awards = p.Awards
	}
	if p.LastUpdated != nil {
		m.LastUpdated = *p.LastUpdated
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.IMDB != nil {
		m.IMDB = p.IMDB
	}
	if p.Countries != nil {
		m.Countries = p.Countries
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Tomatoes != nil {
		m.Tomatoes = p.Tomatoes
	}
	if p.NumMflixComments != nil {
		n := *p.NumMflixComments
		m.NumMflixComments = &n
	}
}

// MovieRequest is the request body accepted for create and update.
type MovieRequest struct {
	Title     string   `json:"title" validate:"required"`
	Plot      string   `json:"plot" validate:"required"`
	Released  string   `json:"released" validate:"required,isodate"`
	Directors []string `json:"directors" validate:"required,min=1,dive,required"`

	Genres           []string               `json:"genres,omitempty" validate:"omitempty,min=1,dive,required"`
	Runtime          *int                   `json:"runtime,omitempty" validate:"omitempty,gt=0"`
	Cast             []string               `json:"cast,omitempty" validate:"omitempty,min=1,dive,required"`
	Poster           string                 `json:"poster,omitempty" validate:"omitempty,url"`
	FullPlot         string                 `json:"fullplot,omitempty"`
	Languages        []string               `json:"languages,omitempty" validate:"omitempty,min=1,dive,required"`
	Rated            string                 `json:"rated,omitempty"`
	Awards           map[string]interface{} `json:"awards,omitempty"`
	LastUpdated      string                 `json:"lastupdated,omitempty"`
	Year             *int                   `json:"year,omitempty" validate:"omitempty,min=1800,notfutureyear"`
	IMDB             map[string]interface{} `json:"imdb,omitempty"`
	Countries        []string               `json:"countries,omitempty" validate:"omitempty,min=1,dive,required"`
	Type             string                 `json:"type,omitempty" validate:"omitempty,oneof=movie series documentary"`
	Tomatoes         map[string]interface{} `json:"tomatoes,omitempty"`
	NumMflixComments *int                   `json:"num_mflix_comments,omitempty" validate:"omitempty,min=0"`
}

// MovieInput is the subset of a create request that is persisted.
type MovieInput struct {
	Title     string
	Plot      string
	Released  time.Time
	Directors []string
}

// ToInput converts a validated request into a create input. Optional fields
// are not carried over.
func (r *MovieRequest) ToInput() (*MovieInput, error) {
	released, err := ParseReleased(r.Released)
	if err != nil {
		return nil, err
	}

	return &MovieInput{
		Title:     r.Title,
		Plot:      r.Plot,
		Released:  released,
		Directors: r.Directors,
	}, nil
}

// ToPatch converts a validated request into a patch of the submitted fields.
func (r *MovieRequest) ToPatch() (*MoviePatch, error) {
	patch := r.optionalPatch()

	if r.Title != "" {
		title := r.Title
		patch.Title = &title
	}
	if r.Plot != "" {
		plot := r.Plot
		patch.Plot = &plot
	}
	if r.Released != "" {
		released, err := ParseReleased(r.Released)
		if err != nil {
			return nil, err
		}
		patch.Released = &released
	}
	if r.Directors != nil {
		patch.Directors = r.Directors
	}

	return patch, nil
}

func (r *MovieRequest) optionalPatch() *MoviePatch {
	patch := &MoviePatch{
		Genres:           r.Genres,
		Runtime:          r.Runtime,
		Cast:             r.Cast,
		Languages:        r.Languages,
		Awards:           r.Awards,
		Year:             r.Year,
		IMDB:             r.IMDB,
		Countries:        r.Countries,
		Tomatoes:         r.Tomatoes,
		NumMflixComments: r.NumMflixComments,
	}
	optString := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}
	patch.Poster = optString(r.Poster)
	patch.FullPlot = optString(r.FullPlot)
	patch.Rated = optString(r.Rated)
	patch.LastUpdated = optString(r.LastUpdated)
	patch.Type = optString(r.Type)
	return patch
}

var releasedLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseReleased accepts an ISO 8601 date or date-time.
func ParseReleased(s string) (time.Time, error) {
	for _, layout := range releasedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO 8601 date: %q", s)
}

// Pagination bounds a movie listing.
type Pagination struct {
	Skip  int
	Limit int
}
