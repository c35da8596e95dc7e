package oaidc

import (
	"errors"
	"testing"

	"github.com/diwise/dcat-mapper/internal/pkg/application/config"
	"github.com/diwise/dcat-mapper/internal/pkg/application/records"
	"github.com/diwise/dcat-mapper/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestParseDublinCoreRecord(t *testing.T) {
	is := is.New(t)

	rec, err := Parse([]byte(dcJSON))
	is.NoErr(err)

	ds := records.ToDataset(rec, config.Default())

	is.Equal(len(ds.Title), 2) // every title should be kept
	is.Equal(ds.Title[1].Language, "de")
	is.Equal(ds.Language[0].Language, "de")
	is.Equal(ds.Identifier, "10.5281/zenodo.42")
	is.Equal(ds.Publisher.AgentType.ID, records.PublisherTypeNationalAuthority)
	is.Equal(ds.Rights[0].Value, "CC BY 4.0")
	is.Equal(len(ds.ContactPoints), 2)
	is.Equal(ds.ContactPoints[0].Type, domain.TypeKind)
	is.Equal(ds.Keywords, []string{"history"})

	is.Equal(len(ds.Distributions), 1)
	d := ds.Distributions[0]
	is.Equal(d.AccessURL, "https://doi.org/10.5281/zenodo.42")
	is.Equal(d.Format[0], domain.FormatTarGz)
	is.Equal(d.Format[1].Type, domain.TypeMediaType) // unknown formats should pass through as opaque values
	is.Equal(d.Format[1].Value, "application/x-unknown")
	is.Equal(string(d.Issued), `"2021-05-05"`)
}

func TestSingleValuedElements(t *testing.T) {
	is := is.New(t)

	rec, err := Parse([]byte(`{"oai_dc:dc":{"dc:title":"Only","dc:creator":"Ann","dc:subject":["a","a"]}}`))
	is.NoErr(err)

	ds := records.ToDataset(rec, &config.Settings{Language: "sv"})

	is.Equal(ds.Title.String(), "Only")
	is.Equal(ds.Language[0].Language, "sv") // language should default to the configured one
	is.Equal(ds.Keywords, []string{"a"})
	is.Equal(len(ds.Distributions), 0) // no distribution without an id
}

func TestParseWithoutDublinCore(t *testing.T) {
	is := is.New(t)

	_, err := Parse([]byte(`{"header":{}}`))
	is.True(errors.Is(err, records.ErrNoRecord))
}

func TestDOILocator(t *testing.T) {
	is := is.New(t)
	is.Equal(DOILocator("doi:10.1/x"), "https://doi.org/10.1/x")
	is.Equal(DOILocator("https://example.org/x"), "https://example.org/x")
}

const dcJSON string = `{
	"oai_dc:dc": {
		"id": "doi:10.5281/zenodo.42",
		"dc:identifier": ["10.5281/zenodo.42", "oai:zenodo.org:42"],
		"dc:title": ["A corpus", "Ein Korpus"],
		"dc:description": "Texts from 1900",
		"dc:type": "Dataset",
		"dc:format": ["application/x-tar", "application/x-unknown"],
		"dc:date": ["2021-05-05", "2021-06-06"],
		"dc:publisher": "Staatsbibliothek",
		"dc:language": "de",
		"dc:creator": ["Doe, Jane", "Roe, John"],
		"dc:rights": "CC BY 4.0",
		"dc:subject": "history"
	}
}`
