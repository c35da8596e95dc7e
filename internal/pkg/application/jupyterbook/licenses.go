package jupyterbook

import (
	"github.com/diwise/dcat-mapper/internal/pkg/domain"
)

const (
	ScopeContent string = "content"
	ScopeCode    string = "code"
)

//scopeOrder lists content before code on every record kind, including books
var scopeOrder = []string{ScopeContent, ScopeCode}

//licenses maps each resolved scope to the one license document that every
//node under that scope refers to
type licenses struct {
	byScope map[string]*domain.LicenseDocument
}

func resolveLicenses(l License) *licenses {
	resolved := &licenses{byScope: map[string]*domain.LicenseDocument{}}

	scopes := map[string]*LicenseScope{
		ScopeContent: l.Content,
		ScopeCode:    l.Code,
	}

	for name, scope := range scopes {
		if scope.empty() {
			continue
		}

		locator := scope.URL
		if locator != "" {
			locator = domain.NormalizeLocator(locator)
		}

		resolved.byScope[name] = domain.NewLicenseDocument(locator, scope.Name)
	}

	return resolved
}

//scope returns the shared document for a scope, or nil when the scope was not given
func (l *licenses) scope(name string) *domain.LicenseDocument {
	return l.byScope[name]
}

//forChapters returns the content license, or the code license when the book
//only declares that one
func (l *licenses) forChapters() *domain.LicenseDocument {
	if doc := l.scope(ScopeContent); doc != nil {
		return doc
	}
	return l.scope(ScopeCode)
}

func (l *licenses) all() []*domain.LicenseDocument {
	var docs []*domain.LicenseDocument

	for _, name := range scopeOrder {
		if doc, ok := l.byScope[name]; ok {
			docs = append(docs, doc)
		}
	}

	return docs
}
