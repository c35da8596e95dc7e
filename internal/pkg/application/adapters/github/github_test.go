package github

import (
	"errors"
	"testing"

	"github.com/diwise/dcat-mapper/internal/pkg/application/config"
	"github.com/diwise/dcat-mapper/internal/pkg/application/records"
	"github.com/diwise/dcat-mapper/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestParseRepositoryWithReleases(t *testing.T) {
	is := is.New(t)

	rec, err := Parse([]byte(repositoryJSON))
	is.NoErr(err)

	ds := records.ToDataset(rec, config.Default())

	is.Equal(ds.Title.String(), "quadriga-dk/Text-Mining")
	is.Equal(ds.Title[0].Language, config.DefaultLanguage)
	is.Equal(ds.Publisher.Name, "octocat") // publisher should be the author login
	is.Equal(ds.Licenses[0].Locator(), "https://raw.githubusercontent.com/quadriga-dk/Text-Mining/main/LICENSE")
	is.Equal(ds.Licenses[0].Identifier(), "MIT")

	is.Equal(len(ds.Distributions), 2) // one distribution per release
	is.Equal(ds.Distributions[0].DownloadURL, "https://api.github.com/repos/quadriga-dk/Text-Mining/tarball/v1.0.0")
	is.Equal(ds.Distributions[0].Format[0], domain.FormatTarGz)
	is.True(ds.Distributions[1].License == ds.Licenses[0])

	is.Equal(len(ds.ContactPoints), 2) // author and zenodo creators, deduplicated
	is.Equal(ds.ContactPoints[1].FN, "Jane Doe")
	is.Equal(ds.Keywords, []string{"text mining", "nlp"})
	is.Equal(ds.Version, "1.1.0")
	is.Equal(ds.LandingPage.ID, "https://github.com/quadriga-dk/Text-Mining")
	is.Equal(ds.Provenance[0].Label, Source)
}

func TestParseRepositoryWithoutReleases(t *testing.T) {
	is := is.New(t)

	rec, err := Parse([]byte(`{"identifier":"diwise/dcat","author":"not json","license":"{\"spdx_id\":\"MIT\",\"name\":\"MIT License\"}","releases":"[]","updated_at":"2024-01-01"}`))
	is.NoErr(err)

	ds := records.ToDataset(rec, config.Default())

	is.Equal(ds.Publisher.Name, "DIWISE") // publisher should fall back to the organisation
	is.Equal(len(ds.ContactPoints), 0)    // a malformed author should give no contact points
	is.Equal(len(ds.Distributions), 1)    // a licensed repository should get a bare distribution
	is.Equal(string(ds.Distributions[0].Modified), `"2024-01-01"`)
	is.True(ds.Distributions[0].License == ds.Licenses[0])
}

func TestParseRepositoryWithoutIdentifier(t *testing.T) {
	is := is.New(t)

	_, err := Parse([]byte(`{"description":"nameless"}`))
	is.True(errors.Is(err, records.ErrNoRecord))
}

const repositoryJSON string = `{
	"identifier": "quadriga-dk/Text-Mining",
	"description": "Text mining course",
	"html_url": "https://github.com/quadriga-dk/Text-Mining",
	"author": "{\"login\":\"octocat\"}",
	"license": "{\"spdx_id\":\"MIT\",\"name\":\"MIT License\"}",
	"releases": "[{\"name\":\"v1.0.0\",\"body\":\"first\",\"tarball_url\":\"https://api.github.com/repos/quadriga-dk/Text-Mining/tarball/v1.0.0\",\"published_at\":\"2024-05-01T10:00:00Z\"},{\"name\":\"v1.1.0\",\"tarball_url\":\"https://api.github.com/repos/quadriga-dk/Text-Mining/tarball/v1.1.0\",\"published_at\":\"2024-06-01T10:00:00Z\"}]",
	"zenodojson": "{\"creators\":[{\"name\":\"octocat\"},{\"name\":\"Jane Doe\"}],\"keywords\":[\"text mining\",\"nlp\",\"text mining\"],\"version\":\"1.1.0\"}",
	"created_at": "2023-01-01T00:00:00Z",
	"updated_at": "2024-06-01T10:00:00Z"
}`
