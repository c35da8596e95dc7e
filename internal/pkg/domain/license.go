package domain

import (
	"encoding/json"
)

const TypeLicenseDocument string = "dct:LicenseDocument"

//LicenseDocument is immutable once constructed. The same instance is meant to
//be shared by every node that falls under the license's scope.
type LicenseDocument struct {
	locator    string
	name       string
	identifier string
}

func NewLicenseDocument(locator, name string) *LicenseDocument {
	return &LicenseDocument{locator: locator, name: name}
}

//NewIdentifiedLicenseDocument also carries a short license identifier, such as an SPDX id
func NewIdentifiedLicenseDocument(locator, name, identifier string) *LicenseDocument {
	return &LicenseDocument{locator: locator, name: name, identifier: identifier}
}

func (l *LicenseDocument) Locator() string {
	return l.locator
}

func (l *LicenseDocument) Name() string {
	return l.name
}

func (l *LicenseDocument) Identifier() string {
	return l.identifier
}

func (l *LicenseDocument) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string `json:"@id,omitempty"`
		Type       string `json:"@type"`
		Identifier string `json:"dct:identifier,omitempty"`
		Name       string `json:"foaf:name,omitempty"`
	}{
		ID:         l.locator,
		Type:       TypeLicenseDocument,
		Identifier: l.identifier,
		Name:       l.name,
	})
}
