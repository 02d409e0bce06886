package content

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/deanos-app/deanos-jobs/app/feed"
	"github.com/deanos-app/deanos-jobs/app/fetch"
	"github.com/deanos-app/deanos-jobs/app/snapshot"
)

const goodreadsShelfURL = "https://www.goodreads.com/review/list_rss/%s?key=%s&shelf=to-read"

// Book is one entry from the Goodreads to-read shelf. Goodreads extends
// RSS items with non-namespaced elements (author_name, book_image_url),
// which gofeed surfaces through the item's custom field map.
type Book struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Link          string `json:"link"`
	ImageURL      string `json:"image_url"`
	AverageRating string `json:"average_rating"`
	DateAdded     string `json:"date_added"`
}

// BooksDocument is the goodreads-feed.json snapshot.
type BooksDocument struct {
	Updated time.Time `json:"updated"`
	Books   []Book    `json:"books"`
	Error   string    `json:"error,omitempty"`
}

// GoodreadsJob fetches the to-read shelf RSS and writes goodreads-feed.json.
type GoodreadsJob struct {
	fetcher    *fetch.Client
	userID     string
	rssKey     string
	shelfURL   string
	outputPath string
}

func NewGoodreadsJob(fetcher *fetch.Client, userID, rssKey, outputPath string) *GoodreadsJob {
	return &GoodreadsJob{
		fetcher:    fetcher,
		userID:     userID,
		rssKey:     rssKey,
		shelfURL:   goodreadsShelfURL,
		outputPath: outputPath,
	}
}

// SetShelfURL overrides the shelf URL format, for tests.
func (j *GoodreadsJob) SetShelfURL(format string) {
	j.shelfURL = format
}

func (j *GoodreadsJob) Name() string {
	return "goodreads"
}

func (j *GoodreadsJob) Run(ctx context.Context) error {
	updated := time.Now().UTC()

	if j.userID == "" || j.rssKey == "" {
		slog.Warn("GOODREADS_USER_ID and GOODREADS_RSS_KEY not configured, writing empty report")
		return snapshot.Write(j.outputPath, BooksDocument{
			Updated: updated,
			Books:   []Book{},
			Error:   "Goodreads credentials not configured",
		})
	}

	url := fmt.Sprintf(j.shelfURL, j.userID, j.rssKey)
	data, err := j.fetcher.Get(ctx, url)
	if err != nil {
		slog.Warn("Failed to fetch Goodreads shelf", "error", err)
		return snapshot.Write(j.outputPath, BooksDocument{
			Updated: updated,
			Books:   []Book{},
			Error:   "Goodreads shelf unavailable",
		})
	}

	books, err := ParseShelf(data)
	if err != nil {
		slog.Warn("Failed to parse Goodreads shelf", "error", err)
		books = nil
	}
	if books == nil {
		books = []Book{}
	}

	if err := snapshot.Write(j.outputPath, BooksDocument{Updated: updated, Books: books}); err != nil {
		return err
	}

	slog.Info("Goodreads shelf synced", "books", len(books))
	return nil
}

// ParseShelf extracts books from the shelf RSS payload. Items without a
// title are dropped.
func ParseShelf(data []byte) ([]Book, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(feed.Sanitize(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse shelf feed: %w", err)
	}

	books := make([]Book, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}

		books = append(books, Book{
			Title:         title,
			Author:        strings.TrimSpace(custom(item, "author_name")),
			Link:          strings.TrimSpace(item.Link),
			ImageURL:      strings.TrimSpace(custom(item, "book_image_url")),
			AverageRating: strings.TrimSpace(custom(item, "average_rating")),
			DateAdded:     strings.TrimSpace(custom(item, "user_date_added")),
		})
	}

	return books, nil
}

func custom(item *gofeed.Item, key string) string {
	if item.Custom == nil {
		return ""
	}
	return item.Custom[key]
}
