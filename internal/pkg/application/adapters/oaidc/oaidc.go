package oaidc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diwise/dcat-mapper/internal/pkg/application/records"
)

const Source string = "OAI-PMH"

//Envelope wraps a Dublin Core record as delivered by an OAI-PMH ListRecords harvest
type Envelope struct {
	DC *Record `json:"oai_dc:dc"`
}

//Record holds the Dublin Core elements. Every element may be given as a single
//value or as a list.
type Record struct {
	ID           string         `json:"id"`
	Identifiers  records.Values `json:"dc:identifier"`
	Titles       records.Values `json:"dc:title"`
	Descriptions records.Values `json:"dc:description"`
	Types        records.Values `json:"dc:type"`
	Formats      records.Values `json:"dc:format"`
	Dates        records.Values `json:"dc:date"`
	Publisher    records.Values `json:"dc:publisher"`
	Language     records.Values `json:"dc:language"`
	Creators     records.Values `json:"dc:creator"`
	Rights       records.Values `json:"dc:rights"`
	Subjects     records.Values `json:"dc:subject"`
}

func Parse(raw []byte) (records.Record, error) {
	env := Envelope{}

	if err := json.Unmarshal(raw, &env); err != nil {
		return records.Record{}, fmt.Errorf("failed to decode dublin core record: %w", err)
	}

	if env.DC == nil {
		return records.Record{}, fmt.Errorf("no oai_dc:dc element: %w", records.ErrNoRecord)
	}

	return env.DC.Record(), nil
}

//DOILocator turns a doi: prefixed identifier into a resolvable url
func DOILocator(id string) string {
	return strings.Replace(id, "doi:", "https://doi.org/", 1)
}

func (dc Record) Record() records.Record {
	date := dc.Dates.First()

	rec := records.Record{
		Source:          Source,
		Language:        dc.Language.First(),
		IncludeLanguage: true,
		Identifier:      dc.Identifiers.First(),
		Titles:          dc.Titles,
		Descriptions:    dc.Descriptions,
		Types:           dc.Types,
		Issued:          date,
		Modified:        date,
		Rights:          dc.Rights,
		Keywords:        dc.Subjects,
	}

	if publisher := dc.Publisher.First(); publisher != "" {
		rec.Publisher = &records.Publisher{Name: publisher, Type: records.PublisherTypeNationalAuthority}
	}

	for _, creator := range dc.Creators {
		rec.Creators = append(rec.Creators, records.Contact{Name: creator})
		rec.ContactPoints = append(rec.ContactPoints, records.Contact{Name: creator})
	}

	if dc.ID != "" {
		rec.Distributions = []records.Distribution{{
			Title:       dc.Titles.First(),
			Description: dc.Descriptions.First(),
			Identifier:  dc.Identifiers.First(),
			AccessURL:   DOILocator(dc.ID),
			Issued:      date,
			Modified:    date,
			Formats:     dc.Formats,
		}}
	}

	return rec
}
