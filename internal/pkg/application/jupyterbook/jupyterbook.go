package jupyterbook

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/dcat-mapper/internal/pkg/application/config"
	"github.com/diwise/dcat-mapper/internal/pkg/application/themes"
	"github.com/diwise/dcat-mapper/internal/pkg/domain"
)

var (
	ErrMissingIdentity       = errors.New("book identifier and title are required")
	ErrDuplicateChapterTitle = errors.New("chapter titles must be unique within a book")
)

const (
	MissingMetadataDescription string = "metadata.yml is missing"
	ProvenanceLabel            string = "GitHub"
)

//Kind tells which shape of record an input maps to
type Kind int

const (
	KindStub Kind = iota
	KindBook
	KindChapter
)

func (k Kind) String() string {
	switch k {
	case KindBook:
		return "book"
	case KindChapter:
		return "chapter"
	default:
		return "stub"
	}
}

//Kind is decided once per input. A chapter takes precedence over a book, and
//an input with neither maps to a stub built from the configuration.
func (in Input) Kind() Kind {
	if in.Chapter != nil {
		return KindChapter
	}
	if in.Book != nil {
		return KindBook
	}
	return KindStub
}

//Transform maps a book, one of its chapters, or a bare book configuration into a dataset
func Transform(ctx context.Context, in Input, settings *config.Settings) (*domain.Dataset, error) {
	if settings == nil {
		settings = config.Default()
	}

	var dataset *domain.Dataset
	var err error

	switch in.Kind() {
	case KindChapter:
		dataset, err = mapChapter(ctx, in.Book, in.Chapter, in.Config)
	case KindBook:
		dataset, err = mapBook(ctx, in.Book, in.Config)
	default:
		dataset = mapStub(in.Config)
	}

	if err != nil {
		return nil, err
	}

	dataset.Themes = themes.FromCategories(settings.Categories)
	dataset.Provenance = []domain.ProvenanceStatement{
		{Type: domain.TypeProvenanceStatement, Label: ProvenanceLabel},
	}
	dataset.GeneratedBy = []domain.Activity{
		{Type: domain.TypeActivity, Label: settings.Activity},
	}

	return dataset, nil
}

//Validate checks the preconditions that the transform itself does not guard against
func Validate(in Input) error {
	if in.Book == nil {
		if in.Chapter != nil {
			return fmt.Errorf("chapter %q has no book: %w", in.Chapter.Title, ErrMissingIdentity)
		}
		return nil
	}

	if in.Book.Identifier == "" || in.Book.Title == "" {
		return ErrMissingIdentity
	}

	titles := domain.NewOrderedSet[string]()
	for _, ch := range in.Book.Chapters {
		if !titles.Add(ch.Title) {
			return fmt.Errorf("%q appears more than once in %s: %w", ch.Title, in.Book.Identifier, ErrDuplicateChapterTitle)
		}
	}

	return nil
}

//Expand returns the input for the whole book followed by one input per
//chapter, in chapter order
func Expand(in Input) []Input {
	if in.Book == nil {
		return []Input{in}
	}

	inputs := make([]Input, 0, len(in.Book.Chapters)+1)
	inputs = append(inputs, Input{Book: in.Book, Config: in.Config})

	for i := range in.Book.Chapters {
		inputs = append(inputs, Input{
			Book:    in.Book,
			Chapter: &in.Book.Chapters[i],
			Config:  in.Config,
		})
	}

	return inputs
}

func mapStub(cfg *Config) *domain.Dataset {
	dataset := domain.NewDataset()
	dataset.Description = domain.PlainText(MissingMetadataDescription)

	if cfg != nil {
		dataset.Identifier = cfg.Identifier
		if cfg.Title != "" {
			dataset.Title = domain.PlainText(cfg.Title)
		}
	}

	return dataset
}

func mapBook(ctx context.Context, book *Book, cfg *Config) (*domain.Dataset, error) {
	b, err := newBuilder(ctx, book, cfg)
	if err != nil {
		return nil, err
	}

	dataset := b.dataset
	dataset.ID = book.Identifier
	dataset.Identifier = book.Identifier
	dataset.Title = domain.PlainText(book.Title)
	b.describe(nil)

	b.keywords.Add(book.Disciplines...)

	for i := range book.Chapters {
		ch := &book.Chapters[i]
		b.addChapter(ch)
		dataset.Pages = append(dataset.Pages, domain.NewDocument(domain.NormalizeLocator(ch.URL)))
	}

	b.launch()

	return b.finish(), nil
}

func mapChapter(ctx context.Context, book *Book, ch *Chapter, cfg *Config) (*domain.Dataset, error) {
	b, err := newBuilder(ctx, book, cfg)
	if err != nil {
		return nil, err
	}

	dataset := b.dataset
	dataset.Identifier = fmt.Sprintf("%s#%s", book.Identifier, ch.Title)
	dataset.Title = domain.PlainText(fmt.Sprintf("%s - %s", book.Title, ch.Title))
	b.describe(ch)

	b.addChapter(ch)

	page := domain.NewDocument(domain.NormalizeLocator(ch.URL))
	dataset.LandingPage = &page
	dataset.Pages = []domain.Document{page}
	dataset.InSeries = &domain.DatasetSeries{
		ID:    book.Identifier,
		Type:  domain.TypeDatasetSeries,
		Title: book.Title,
	}

	b.launch()

	return b.finish(), nil
}
