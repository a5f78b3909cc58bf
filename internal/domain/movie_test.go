package domain

import (
	"testing"
	"time"
)

func TestParseReleased(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"date only", "1999-03-31", time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339", "1999-03-31T10:00:00Z", time.Date(1999, 3, 31, 10, 0, 0, 0, time.UTC), false},
		{"offset is normalized to utc", "1999-03-31T12:00:00+02:00", time.Date(1999, 3, 31, 10, 0, 0, 0, time.UTC), false},
		{"not a date", "yesterday", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReleased(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Error("ParseReleased() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseReleased() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseReleased() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMovieRequestToPatchOnlySetsSubmittedFields(t *testing.T) {
	runtime := 136
	req := &MovieRequest{
		Title:   "The Matrix",
		Runtime: &runtime,
	}

	patch, err := req.ToPatch()
	if err != nil {
		t.Fatalf("ToPatch() error = %v", err)
	}

	fields := patch.Fields()
	if len(fields) != 2 {
		t.Fatalf("Fields() = %v, want title and runtime only", fields)
	}
	if fields["title"] != "The Matrix" {
		t.Errorf("title = %v", fields["title"])
	}
	if fields["runtime"] != 136 {
		t.Errorf("runtime = %v", fields["runtime"])
	}
	if patch.Plot != nil {
		t.Error("Plot should be nil when not submitted")
	}
}

func TestMoviePatchApply(t *testing.T) {
	movie := &Movie{Title: "Old", Plot: "Old plot", Directors: []string{"A"}}
	title := "New"

	patch := &MoviePatch{Title: &title, Genres: []string{"Drama"}}
	patch.Apply(movie)

	if movie.Title != "New" {
		t.Errorf("Title = %q", movie.Title)
	}
	if movie.Plot != "Old plot" {
		t.Errorf("Plot changed to %q", movie.Plot)
	}
	if len(movie.Genres) != 1 || movie.Genres[0] != "Drama" {
		t.Errorf("Genres = %v", movie.Genres)
	}
}

func TestMovieProjections(t *testing.T) {
	movie := &Movie{
		ID:        "65f1a2b3c4d5e6f7a8b9c0d1",
		Title:     "Heat",
		Plot:      "secret plot",
		Directors: []string{"Michael Mann", "Someone Else"},
	}

	if got := movie.Detail().Directors; got != "Michael Mann,Someone Else" {
		t.Errorf("Detail().Directors = %q", got)
	}
	if got := movie.Summary().Directors; len(got) != 2 {
		t.Errorf("Summary().Directors = %v", got)
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()

	if len(a) != 24 || !IsValidID(a) {
		t.Errorf("NewID() = %q, want 24 hex characters", a)
	}
	if a == b {
		t.Error("NewID() returned duplicate identifiers")
	}
	if a > b {
		t.Errorf("NewID() not increasing: %s then %s", a, b)
	}
	if IsValidID("not-an-id") {
		t.Error("IsValidID() accepted a malformed id")
	}
}

func TestMovieRequestToInputDropsOptionalFields(t *testing.T) {
	runtime := 117
	req := &MovieRequest{
		Title:     "Alien",
		Plot:      "A crew meets a creature.",
		Released:  "1979-05-25",
		Directors: []string{"Ridley Scott"},
		Runtime:   &runtime,
		Genres:    []string{"Horror"},
	}

	input, err := req.ToInput()
	if err != nil {
		t.Fatalf("ToInput() error = %v", err)
	}

	want := time.Date(1979, 5, 25, 0, 0, 0, 0, time.UTC)
	if input.Title != "Alien" || input.Plot != req.Plot || !input.Released.Equal(want) {
		t.Errorf("ToInput() = %+v", input)
	}
	if len(input.Directors) != 1 || input.Directors[0] != "Ridley Scott" {
		t.Errorf("Directors = %v", input.Directors)
	}

	req.Released = "not-a-date"
	if _, err := req.ToInput(); err == nil {
		t.Error("ToInput() expected error for invalid released date")
	}
}
