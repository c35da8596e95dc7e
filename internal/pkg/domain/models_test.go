package domain

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestTextsSerializeAsStringOrTaggedValue(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(PlainText("a title"))
	is.NoErr(err)
	is.Equal(string(b), `"a title"`)

	b, err = json.Marshal(TaggedText("a title", "en"))
	is.NoErr(err)
	is.Equal(string(b), `{"@value":"a title","@language":"en"}`)

	b, err = json.Marshal(Texts{{Value: "a"}, {Value: "b", Language: "sv"}})
	is.NoErr(err)
	is.Equal(string(b), `["a",{"@value":"b","@language":"sv"}]`)
}

func TestLicenseDocumentSerialization(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(NewLicenseDocument("https://license/code", ""))
	is.NoErr(err)
	is.Equal(string(b), `{"@id":"https://license/code","@type":"dct:LicenseDocument"}`)

	b, err = json.Marshal(NewLicenseDocument("https://creativecommons.org/licenses/by/4.0/", "CC-BY-4.0"))
	is.NoErr(err)
	is.Equal(string(b), `{"@id":"https://creativecommons.org/licenses/by/4.0/","@type":"dct:LicenseDocument","foaf:name":"CC-BY-4.0"}`)
}

func TestLookupFormat(t *testing.T) {
	is := is.New(t)

	is.Equal(LookupFormat("application/x-tar"), FormatTarGz)
	is.Equal(LookupFormat(" Text/HTML "), FormatHTML)
	is.Equal(LookupFormat("application/x-custom"), Format{Type: TypeMediaType, Value: "application/x-custom"}) // unknown formats should pass through
}

func TestEmptyDatasetOnlyCarriesContextAndType(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(NewDataset())
	is.NoErr(err)

	m := map[string]any{}
	is.NoErr(json.Unmarshal(b, &m))
	is.Equal(len(m), 2)
	is.Equal(m["@type"], "dcat:Dataset")
}
