package youtube

import (
	"fmt"

	"github.com/diwise/dcat-mapper/internal/pkg/application/records"
)

const Source string = "YouTube"

//PlaylistItem is the subset of a YouTube playlist item resource that is used for mapping
type PlaylistItem struct {
	Snippet struct {
		Title                  string `json:"title"`
		Description            string `json:"description"`
		PublishedAt            string `json:"publishedAt"`
		VideoOwnerChannelTitle string `json:"videoOwnerChannelTitle"`
		Thumbnails             struct {
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	ContentDetails struct {
		VideoID string `json:"videoId"`
	} `json:"contentDetails"`
}

func (item PlaylistItem) URL() string {
	return "https://www.youtube.com/watch?v=" + item.ContentDetails.VideoID
}

//Parse accepts the playlist item either as an object or as a string holding its json encoding
func Parse(raw []byte) (records.Record, error) {
	item, ok := records.Decode[PlaylistItem](records.Embedded(raw))
	if !ok {
		return records.Record{}, fmt.Errorf("failed to decode playlist item: %w", records.ErrNoRecord)
	}

	if item.ContentDetails.VideoID == "" {
		return records.Record{}, fmt.Errorf("playlist item has no video id: %w", records.ErrNoRecord)
	}

	return item.Record(), nil
}

func (item PlaylistItem) Record() records.Record {
	s := item.Snippet
	thumbnail := s.Thumbnails.Default.URL

	return records.Record{
		Source:       Source,
		Identifier:   item.URL(),
		Titles:       []string{s.Title},
		Descriptions: []string{s.Description},
		Issued:       s.PublishedAt,
		Modified:     s.PublishedAt,
		Publisher:    &records.Publisher{Name: s.VideoOwnerChannelTitle},
		LandingPage:  item.URL(),
		ThumbnailURL: thumbnail,
		Distributions: []records.Distribution{
			{
				Title:        s.Title,
				Description:  s.Description,
				AccessURL:    item.URL(),
				Issued:       s.PublishedAt,
				Modified:     s.PublishedAt,
				Formats:      []string{"text/html"},
				ThumbnailURL: thumbnail,
			},
		},
	}
}
