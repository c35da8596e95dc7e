package themes

import (
	"testing"

	"github.com/matryer/is"
)

func TestFromCategories(t *testing.T) {
	is := is.New(t)

	concepts := FromCategories([]string{"SCIE", "TECH", "SCIE"})

	is.Equal(len(concepts), 3) // themes should not be deduplicated
	is.Equal(concepts[0].ID, "http://publications.europa.eu/resource/authority/data-theme/SCIE")
	is.Equal(concepts[1].InScheme.Title, "Data theme")
}

func TestFromNoCategories(t *testing.T) {
	is := is.New(t)
	is.Equal(len(FromCategories(nil)), 0)
}
