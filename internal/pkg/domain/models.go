package domain

import (
	"encoding/json"
)

const (
	TypeDataset             string = "dcat:Dataset"
	TypeDatasetSeries       string = "dcat:DatasetSeries"
	TypeDistribution        string = "dcat:Distribution"
	TypeDataService         string = "dcat:DataService"
	TypeKind                string = "vcard:Kind"
	TypeOrganization        string = "vcard:Organization"
	TypeAgent               string = "foaf:Agent"
	TypeDocument            string = "foaf:Document"
	TypeProvenanceStatement string = "dct:ProvenanceStatement"
	TypeActivity            string = "prov:Activity"
	TypeConcept             string = "skos:Concept"
	TypeConceptScheme       string = "skos:ConceptScheme"
)

//Dataset is the canonical record produced for every harvested resource
type Dataset struct {
	Context Context `json:"@context"`
	ID      string  `json:"@id,omitempty"`
	Type    string  `json:"@type"`

	Identifier      string          `json:"dct:identifier,omitempty"`
	Title           Texts           `json:"dct:title,omitempty"`
	Description     Texts           `json:"dct:description,omitempty"`
	TableOfContents string          `json:"dct:tableOfContents,omitempty"`
	DatasetType     Texts           `json:"dct:type,omitempty"`
	Publisher       *Agent          `json:"dct:publisher,omitempty"`
	Issued          json.RawMessage `json:"dct:issued,omitempty"`
	Modified        json.RawMessage `json:"dct:modified,omitempty"`
	Version         string          `json:"owl:versionInfo,omitempty"`
	Language        []Language      `json:"dct:language,omitempty"`
	Homepage        *Resource       `json:"foaf:homepage,omitempty"`
	ThumbnailURL    string          `json:"schema:thumbnailUrl,omitempty"`

	ContactPoints []*Agent              `json:"dcat:contactPoint,omitempty"`
	Creators      []*Agent              `json:"dct:creator,omitempty"`
	Contributors  []*Agent              `json:"dct:contributor,omitempty"`
	Licenses      []*LicenseDocument    `json:"dct:license,omitempty"`
	Rights        Texts                 `json:"dct:rights,omitempty"`
	Pages         []Document            `json:"foaf:page,omitempty"`
	Distributions []*Distribution       `json:"dcat:distribution,omitempty"`
	Keywords      []string              `json:"dcat:keyword,omitempty"`
	LandingPage   *Document             `json:"dcat:landingPage,omitempty"`
	InSeries      *DatasetSeries        `json:"dcat:inSeries,omitempty"`
	Themes        []Concept             `json:"dcat:theme,omitempty"`
	Provenance    []ProvenanceStatement `json:"dct:provenance,omitempty"`
	GeneratedBy   []Activity            `json:"prov:wasGeneratedBy,omitempty"`
}

//NewDataset returns an empty dataset carrying the fixed prefix table
func NewDataset() *Dataset {
	return &Dataset{
		Context: DefaultContext(),
		Type:    TypeDataset,
	}
}

//Distribution is one retrievable manifestation of a Dataset
type Distribution struct {
	Type          string           `json:"@type"`
	AccessURL     string           `json:"dcat:accessURL,omitempty"`
	DownloadURL   string           `json:"dcat:downloadURL,omitempty"`
	Title         Texts            `json:"dct:title,omitempty"`
	Description   Texts            `json:"dct:description,omitempty"`
	Identifier    string           `json:"dct:identifier,omitempty"`
	Issued        json.RawMessage  `json:"dct:issued,omitempty"`
	Modified      json.RawMessage  `json:"dct:modified,omitempty"`
	AccessService *DataService     `json:"dcat:accessService,omitempty"`
	Format        []Format         `json:"dct:format,omitempty"`
	License       *LicenseDocument `json:"dct:license,omitempty"`
	ThumbnailURL  string           `json:"schema:thumbnailUrl,omitempty"`
}

//DataService is an interactive endpoint associated with a Dataset
type DataService struct {
	ID                  string           `json:"@id,omitempty"`
	Type                string           `json:"@type"`
	EndpointURL         string           `json:"dcat:endpointURL"`
	EndpointDescription string           `json:"dcat:endpointDescription,omitempty"`
	Title               string           `json:"dct:title,omitempty"`
	ContactPoints       []*Agent         `json:"dcat:contactPoint,omitempty"`
	Format              []Format         `json:"dct:format,omitempty"`
	License             *LicenseDocument `json:"dct:license,omitempty"`
}

//Agent is used both for vcard contact points and foaf agents
type Agent struct {
	Type           string        `json:"@type"`
	FN             string        `json:"vcard:fn,omitempty"`
	GivenName      string        `json:"vcard:given-name,omitempty"`
	FamilyName     string        `json:"vcard:family-name,omitempty"`
	Name           string        `json:"foaf:name,omitempty"`
	HasEmail       string        `json:"vcard:hasEmail,omitempty"`
	HasAffiliation *Organization `json:"vcard:hasAffiliation,omitempty"`
	SameAs         string        `json:"owl:sameAs,omitempty"`
	AgentType      *Resource     `json:"dct:type,omitempty"`
}

type Organization struct {
	Type string `json:"@type"`
	FN   string `json:"vcard:fn"`
}

func NewOrganization(name string) *Organization {
	return &Organization{Type: TypeOrganization, FN: name}
}

//Document is a foaf:Document reference, such as a landing page
type Document struct {
	ID   string `json:"@id"`
	Type string `json:"@type"`
}

func NewDocument(locator string) Document {
	return Document{ID: locator, Type: TypeDocument}
}

//Resource is a bare IRI reference
type Resource struct {
	ID string `json:"@id"`
}

type DatasetSeries struct {
	ID    string `json:"@id"`
	Type  string `json:"@type"`
	Title string `json:"dct:title,omitempty"`
}

type ConceptScheme struct {
	ID    string `json:"@id"`
	Type  string `json:"@type"`
	Title string `json:"dct:title,omitempty"`
}

type Concept struct {
	ID       string         `json:"@id"`
	Type     string         `json:"@type"`
	InScheme *ConceptScheme `json:"skos:inScheme,omitempty"`
}

type ProvenanceStatement struct {
	Type  string `json:"@type"`
	Label string `json:"rdfs:label"`
}

type Activity struct {
	Type  string `json:"@type"`
	Label string `json:"rdfs:label"`
}

//Language is a bare language tag node
type Language struct {
	Language string `json:"@language"`
}
