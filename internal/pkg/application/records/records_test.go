package records

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/diwise/dcat-mapper/internal/pkg/application/config"
	"github.com/diwise/dcat-mapper/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestContactPointsAreDeduplicatedByDisplayName(t *testing.T) {
	is := is.New(t)

	ds := ToDataset(Record{
		ContactPoints: []Contact{
			{Name: "octocat"},
			{Name: "Jane Doe", Email: "jane@example.org"},
			{Name: "octocat"},
			{Name: "Jane Doe"},
			{Name: "Jane Doe", Email: "jane@example.org"},
		},
	}, config.Default())

	is.Equal(len(ds.ContactPoints), 3) // duplicates should be dropped
	is.Equal(ds.ContactPoints[0].FN, "octocat")
	is.Equal(ds.ContactPoints[1].FN, "Jane Doe (jane@example.org)")
	is.Equal(ds.ContactPoints[1].HasEmail, "jane@example.org")
	is.Equal(ds.ContactPoints[2].FN, "Jane Doe")
}

func TestDistributionsShareTheLicense(t *testing.T) {
	is := is.New(t)

	ds := ToDataset(Record{
		License: &License{URL: "https://example.org/LICENSE", Name: "MIT License", Identifier: "MIT"},
		Distributions: []Distribution{
			{Title: "v1", Formats: []string{"application/x-tar"}, Licensed: true},
			{Title: "v2", Formats: []string{"application/x-weird"}, Licensed: true},
			{Title: "unlicensed"},
		},
	}, config.Default())

	is.Equal(len(ds.Licenses), 1)
	is.True(ds.Distributions[0].License == ds.Licenses[0]) // distributions should share the license document
	is.True(ds.Distributions[1].License == ds.Licenses[0])
	is.Equal(ds.Distributions[2].License, nil)
	is.Equal(ds.Distributions[0].Format[0], domain.FormatTarGz)
	is.Equal(ds.Distributions[1].Format[0].Value, "application/x-weird") // unknown formats should pass through
}

func TestLanguageTaggedLiterals(t *testing.T) {
	is := is.New(t)

	ds := ToDataset(Record{Titles: []string{"a title"}, Rights: []string{"CC0"}}, &config.Settings{Language: "sv"})

	b, err := json.Marshal(ds)
	is.NoErr(err)

	is.True(strings.Contains(string(b), `"dct:title":{"@value":"a title","@language":"sv"}`))
	is.True(strings.Contains(string(b), `"dct:rights":{"@value":"CC0","@language":"sv"}`))
	is.True(!strings.Contains(string(b), `"dct:language"`)) // language should only be listed when asked for
}

func TestRecordLanguageOverridesDefault(t *testing.T) {
	is := is.New(t)

	ds := ToDataset(Record{Language: "de", IncludeLanguage: true, Titles: []string{"Titel"}}, config.Default())

	is.Equal(ds.Title[0].Language, "de")
	is.Equal(ds.Language[0].Language, "de")
}

func TestKeywordsAreDeduplicated(t *testing.T) {
	is := is.New(t)

	ds := ToDataset(Record{Keywords: []string{"go", "dcat", "go"}}, nil)
	is.Equal(ds.Keywords, []string{"go", "dcat"})
}

func TestPublisherAndProvenance(t *testing.T) {
	is := is.New(t)

	ds := ToDataset(Record{
		Source:    "GitHub",
		Publisher: &Publisher{Name: "Agency", Type: PublisherTypeNationalAuthority},
	}, &config.Settings{Categories: []string{"TECH"}, Activity: "harvest"})

	is.Equal(ds.Publisher.Name, "Agency")
	is.Equal(ds.Publisher.AgentType.ID, PublisherTypeNationalAuthority)
	is.Equal(ds.Provenance[0].Label, "GitHub")
	is.Equal(ds.GeneratedBy[0].Label, "harvest")
	is.Equal(len(ds.Themes), 1)
}

func TestDecodeEmbedded(t *testing.T) {
	is := is.New(t)

	type author struct {
		Login string `json:"login"`
	}

	a, ok := Decode[author](Embedded(`"{\"login\":\"octocat\"}"`))
	is.True(ok)
	is.Equal(a.Login, "octocat")

	a, ok = Decode[author](Embedded(`{"login":"hubot"}`))
	is.True(ok) // an object should be accepted as is
	is.Equal(a.Login, "hubot")

	for _, raw := range []string{``, `null`, `""`, `"{not json"`, `"[1,2"`} {
		a, ok = Decode[author](Embedded(raw))
		is.True(!ok) // malformed content should not decode
		is.Equal(a, author{})
	}
}

func TestValues(t *testing.T) {
	is := is.New(t)

	var v struct {
		Single Values `json:"single"`
		List   Values `json:"list"`
		Other  Values `json:"other"`
	}

	is.NoErr(json.Unmarshal([]byte(`{"single":"a","list":["b","c"],"other":{"x":1}}`), &v))
	is.Equal([]string(v.Single), []string{"a"})
	is.Equal(v.List.First(), "b")
	is.Equal(len(v.Other), 0)
}
