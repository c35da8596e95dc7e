package gitlab

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diwise/dcat-mapper/internal/pkg/application/records"
)

const Source string = "GitLab"

//Project is the raw project record as harvested from a GitLab instance.
//Nested values are stored as json encoded strings.
type Project struct {
	Identifier   string           `json:"identifier"`
	Description  string           `json:"description"`
	HTMLURL      string           `json:"html_url"`
	Author       records.Embedded `json:"author"`
	Contributors records.Embedded `json:"contributors"`
	License      records.Embedded `json:"license"`
	Releases     records.Embedded `json:"releases"`
	Zenodo       records.Embedded `json:"zenodojson"`
	Topics       records.Embedded `json:"topics"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

type person struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type license struct {
	HTMLURL string `json:"html_url"`
	Name    string `json:"name"`
}

type release struct {
	Name        string `json:"name"`
	Body        string `json:"body"`
	TarballURL  string `json:"tarball_url"`
	PublishedAt string `json:"published_at"`
}

type zenodo struct {
	Creators []person `json:"creators"`
	Keywords []string `json:"keywords"`
	Version  string   `json:"version"`
}

func Parse(raw []byte) (records.Record, error) {
	p := Project{}

	if err := json.Unmarshal(raw, &p); err != nil {
		return records.Record{}, fmt.Errorf("failed to decode gitlab project: %w", err)
	}

	if p.Identifier == "" {
		return records.Record{}, fmt.Errorf("gitlab project has no identifier: %w", records.ErrNoRecord)
	}

	return p.Record(), nil
}

func (p Project) Record() records.Record {
	authors, _ := records.Decode[[]person](p.Author)
	contributors, _ := records.Decode[[]person](p.Contributors)
	releases, _ := records.Decode[[]release](p.Releases)
	topics, _ := records.Decode[[]string](p.Topics)
	lic, hasLicense := records.Decode[license](p.License)
	z, hasZenodo := records.Decode[zenodo](p.Zenodo)

	creators := contributors
	keywords := topics
	if hasZenodo {
		creators = z.Creators
		keywords = z.Keywords
	}

	rec := records.Record{
		Source:       Source,
		Identifier:   p.Identifier,
		Titles:       []string{p.Identifier},
		Descriptions: []string{p.Description},
		Version:      z.Version,
		Issued:       p.CreatedAt,
		Modified:     p.UpdatedAt,
		Homepage:     p.HTMLURL,
		LandingPage:  p.HTMLURL,
		Publisher:    &records.Publisher{Name: strings.ToUpper(strings.Split(p.Identifier, "/")[0])},
		Keywords:     keywords,
	}

	if hasLicense {
		rec.License = &records.License{URL: lic.HTMLURL, Name: lic.Name}
	}

	rec.Creators = contacts(creators)
	rec.Contributors = contacts(contributors)
	rec.ContactPoints = append(contacts(creators), contacts(authors)...)

	for _, r := range releases {
		rec.Distributions = append(rec.Distributions, records.Distribution{
			Title:       r.Name,
			Description: r.Body,
			DownloadURL: r.TarballURL,
			Issued:      r.PublishedAt,
			Modified:    r.PublishedAt,
			Formats:     []string{"application/x-tar"},
			Licensed:    true,
		})
	}

	if len(releases) == 0 && hasLicense {
		rec.Distributions = []records.Distribution{{Modified: p.UpdatedAt, Licensed: true}}
	}

	return rec
}

func contacts(people []person) []records.Contact {
	result := make([]records.Contact, 0, len(people))
	for _, p := range people {
		result = append(result, records.Contact{Name: p.Name, Email: p.Email})
	}
	return result
}
