package themes

import (
	"github.com/diwise/dcat-mapper/internal/pkg/domain"
)

const DataThemeAuthority string = "http://publications.europa.eu/resource/authority/data-theme"

//FromCategories builds one data-theme concept per configured category name.
//The list is kept as configured, duplicates included.
func FromCategories(categories []string) []domain.Concept {
	if len(categories) == 0 {
		return nil
	}

	scheme := &domain.ConceptScheme{
		ID:    DataThemeAuthority,
		Type:  domain.TypeConceptScheme,
		Title: "Data theme",
	}

	concepts := make([]domain.Concept, 0, len(categories))
	for _, name := range categories {
		concepts = append(concepts, domain.Concept{
			ID:       DataThemeAuthority + "/" + name,
			Type:     domain.TypeConcept,
			InScheme: scheme,
		})
	}

	return concepts
}
