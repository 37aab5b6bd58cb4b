package domain

import "errors"

// ErrInvalidMovieID covers both a malformed identifier and an identifier
// that resolves to no movie. The two cases intentionally share one error
// kind; callers see a single 400-class failure.
var ErrInvalidMovieID = errors.New("invalid movie id")

// Movie is a catalog entry. The video and thumbnail URLs point at
// externally hosted media; this system never owns or validates the bytes
// behind them. Catalog entries are seeded externally and immutable here —
// no in-scope flow updates or deletes them.
type Movie struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Genre        string `json:"genre"`
	Duration     string `json:"duration"`
}
