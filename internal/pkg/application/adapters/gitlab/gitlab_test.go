package gitlab

import (
	"testing"

	"github.com/diwise/dcat-mapper/internal/pkg/application/config"
	"github.com/diwise/dcat-mapper/internal/pkg/application/records"
	"github.com/matryer/is"
)

func TestParseProject(t *testing.T) {
	is := is.New(t)

	rec, err := Parse([]byte(projectJSON))
	is.NoErr(err)

	ds := records.ToDataset(rec, config.Default())

	is.Equal(ds.Publisher.Name, "HU-BERLIN")
	is.Equal(ds.Licenses[0].Locator(), "https://gitlab.com/hu-berlin/corpus/-/blob/main/LICENSE")
	is.Equal(ds.Licenses[0].Name(), "Apache License 2.0")

	is.Equal(len(ds.ContactPoints), 2) // contributor and author share a display name
	is.Equal(ds.ContactPoints[0].FN, "Jane Doe (jane@example.org)")
	is.Equal(ds.ContactPoints[1].FN, "John Roe (john@example.org)")

	is.Equal(len(ds.Creators), 2)
	is.Equal(ds.Creators[0].Name, "Jane Doe")
	is.Equal(ds.Contributors[1].FN, "John Roe")
	is.Equal(ds.Keywords, []string{"corpus", "linguistics"})

	is.Equal(len(ds.Distributions), 1) // a licensed project without releases gets a bare distribution
	is.True(ds.Distributions[0].License == ds.Licenses[0])
}

func TestMalformedEmbeddedFieldsAreIgnored(t *testing.T) {
	is := is.New(t)

	rec, err := Parse([]byte(`{"identifier":"org/repo","contributors":"[{","topics":"oops","license":"{","releases":"nope"}`))
	is.NoErr(err)

	ds := records.ToDataset(rec, config.Default())

	is.Equal(len(ds.Contributors), 0) // a malformed contributor list yields no contributors
	is.Equal(len(ds.Keywords), 0)
	is.Equal(len(ds.Licenses), 0)
	is.Equal(len(ds.Distributions), 0)
}

const projectJSON string = `{
	"identifier": "hu-berlin/corpus",
	"description": "A corpus",
	"html_url": "https://gitlab.com/hu-berlin/corpus",
	"author": "[{\"name\":\"John Roe\",\"email\":\"john@example.org\"},{\"name\":\"Jane Doe\",\"email\":\"jane@example.org\"}]",
	"contributors": "[{\"name\":\"Jane Doe\",\"email\":\"jane@example.org\"},{\"name\":\"John Roe\",\"email\":\"john@example.org\"}]",
	"license": "{\"html_url\":\"https://gitlab.com/hu-berlin/corpus/-/blob/main/LICENSE\",\"name\":\"Apache License 2.0\"}",
	"releases": "[]",
	"topics": "[\"corpus\",\"linguistics\"]",
	"created_at": "2022-02-02",
	"updated_at": "2024-02-02"
}`
