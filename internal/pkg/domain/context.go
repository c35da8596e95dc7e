package domain

//Context is the JSON-LD prefix table shared by every produced document
type Context struct {
	VCard  string `json:"vcard"`
	OWL    string `json:"owl"`
	DCAT   string `json:"dcat"`
	DCT    string `json:"dct"`
	Schema string `json:"schema"`
	RDF    string `json:"rdf"`
	RDFS   string `json:"rdfs"`
	FOAF   string `json:"foaf"`
	SKOS   string `json:"skos"`
	PROV   string `json:"prov"`
}

func DefaultContext() Context {
	return Context{
		VCard:  "http://www.w3.org/2006/vcard/ns#",
		OWL:    "http://www.w3.org/2002/07/owl#",
		DCAT:   "http://www.w3.org/ns/dcat#",
		DCT:    "http://purl.org/dc/terms/",
		Schema: "http://schema.org/",
		RDF:    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		RDFS:   "http://www.w3.org/2000/01/rdf-schema#",
		FOAF:   "http://xmlns.com/foaf/0.1/",
		SKOS:   "http://www.w3.org/2004/02/skos/core#",
		PROV:   "http://www.w3.org/ns/prov#",
	}
}
