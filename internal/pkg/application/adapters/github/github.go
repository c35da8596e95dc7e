package github

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diwise/dcat-mapper/internal/pkg/application/records"
)

const Source string = "GitHub"

//Repository is the raw repository record as harvested from the GitHub api.
//Nested values are stored as json encoded strings.
type Repository struct {
	Identifier  string           `json:"identifier"`
	Description string           `json:"description"`
	HTMLURL     string           `json:"html_url"`
	Author      records.Embedded `json:"author"`
	License     records.Embedded `json:"license"`
	Releases    records.Embedded `json:"releases"`
	Zenodo      records.Embedded `json:"zenodojson"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type author struct {
	Login string `json:"login"`
}

type license struct {
	SPDXID string `json:"spdx_id"`
	Name   string `json:"name"`
}

type release struct {
	Name        string `json:"name"`
	Body        string `json:"body"`
	TarballURL  string `json:"tarball_url"`
	PublishedAt string `json:"published_at"`
}

//Zenodo is the subset of a repository's .zenodo.json that is used for mapping
type Zenodo struct {
	Creators []struct {
		Name string `json:"name"`
	} `json:"creators"`
	Keywords []string `json:"keywords"`
	Version  string   `json:"version"`
}

func Parse(raw []byte) (records.Record, error) {
	repo := Repository{}

	if err := json.Unmarshal(raw, &repo); err != nil {
		return records.Record{}, fmt.Errorf("failed to decode github repository: %w", err)
	}

	if repo.Identifier == "" {
		return records.Record{}, fmt.Errorf("github repository has no identifier: %w", records.ErrNoRecord)
	}

	return repo.Record(), nil
}

func (repo Repository) Record() records.Record {
	org := strings.ToUpper(strings.Split(repo.Identifier, "/")[0])

	a, _ := records.Decode[author](repo.Author)
	lic, hasLicense := records.Decode[license](repo.License)
	releases, _ := records.Decode[[]release](repo.Releases)
	zenodo, hasZenodo := records.Decode[Zenodo](repo.Zenodo)

	rec := records.Record{
		Source:       Source,
		Identifier:   repo.Identifier,
		Titles:       []string{repo.Identifier},
		Descriptions: []string{repo.Description},
		Types:        []string{"Software"},
		Issued:       repo.CreatedAt,
		Modified:     repo.UpdatedAt,
		Homepage:     repo.HTMLURL,
		LandingPage:  repo.HTMLURL,
		Publisher:    &records.Publisher{Name: org},
	}

	if a.Login != "" {
		rec.Publisher.Name = a.Login
		rec.ContactPoints = append(rec.ContactPoints, records.Contact{Name: a.Login})
	}

	if hasLicense {
		rec.License = &records.License{
			URL:        fmt.Sprintf("https://raw.githubusercontent.com/%s/main/LICENSE", repo.Identifier),
			Name:       lic.Name,
			Identifier: lic.SPDXID,
		}
	}

	if hasZenodo {
		for _, c := range zenodo.Creators {
			rec.Creators = append(rec.Creators, records.Contact{Name: c.Name})
		}
		rec.Keywords = zenodo.Keywords
		rec.Version = zenodo.Version
	} else if a.Login != "" {
		rec.Creators = []records.Contact{{Name: a.Login}}
	}

	rec.ContactPoints = append(rec.ContactPoints, rec.Creators...)

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
		rec.Distributions = []records.Distribution{{Modified: repo.UpdatedAt, Licensed: true}}
	}

	return rec
}
