package jupyterbook

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/diwise/dcat-mapper/internal/pkg/domain"
)

const tableOfContentsHeading string = "\n\n## Table of Contents\n"

//builder owns the record being produced for a single invocation
type builder struct {
	ctx      context.Context
	book     *Book
	config   *Config
	dataset  *domain.Dataset
	licenses *licenses
	keywords *domain.OrderedSet[string]
	services *domain.OrderedSet[string]
	modified json.RawMessage
}

func newBuilder(ctx context.Context, book *Book, cfg *Config) (*builder, error) {
	if book == nil || book.Identifier == "" || book.Title == "" {
		return nil, ErrMissingIdentity
	}

	b := &builder{
		ctx:      ctx,
		book:     book,
		config:   cfg,
		dataset:  domain.NewDataset(),
		licenses: resolveLicenses(book.License),
		keywords: domain.NewOrderedSet[string](),
		services: domain.NewOrderedSet[string](),
		modified: book.DateOfLastChange.Formatted(),
	}

	ds := b.dataset
	ds.Issued = book.PublicationDate.Formatted()
	ds.Modified = b.modified
	ds.Version = string(book.Version)
	ds.ContactPoints = contactPoints(book.Authors)
	ds.Licenses = b.licenses.all()

	return b, nil
}

//describe assembles the description from the introduction, the table of
//contents and, for a chapter record, the chapter's own description
func (b *builder) describe(ch *Chapter) {
	var sb strings.Builder

	d := b.book.Description
	sb.WriteString(d.Introduction)

	if d.TableOfContents != "" {
		sb.WriteString(tableOfContentsHeading)
		sb.WriteString(d.TableOfContents)
		b.dataset.TableOfContents = d.TableOfContents
	}

	if ch != nil && ch.Description != "" {
		sb.WriteString("\n\n## ")
		sb.WriteString(ch.Title)
		sb.WriteString("\n\n")
		sb.WriteString(ch.Description)
	}

	if sb.Len() > 0 {
		b.dataset.Description = domain.PlainText(sb.String())
	}
}

//addChapter emits the chapter's distribution and collects its learning objectives as keywords
func (b *builder) addChapter(ch *Chapter) {
	dist := &domain.Distribution{
		Type:      domain.TypeDistribution,
		AccessURL: domain.NormalizeLocator(ch.URL),
		Title:     domain.PlainText(ch.Title),
		Modified:  b.modified,
		Format:    []domain.Format{domain.FormatHTML},
		License:   b.licenses.forChapters(),
	}

	if ch.Description != "" {
		dist.Description = domain.PlainText(ch.Description)
	}

	b.dataset.Distributions = append(b.dataset.Distributions, dist)

	for _, objective := range ch.LearningObjectives {
		for _, entry := range objective {
			for _, value := range entry.Values {
				b.keywords.Add(entry.Key + ":" + value)
			}
		}
	}
}

func (b *builder) finish() *domain.Dataset {
	if b.keywords.Len() > 0 {
		b.dataset.Keywords = b.keywords.Values()
	}
	return b.dataset
}

func contactPoints(authors []Author) []*domain.Agent {
	if len(authors) == 0 {
		return nil
	}

	agents := make([]*domain.Agent, 0, len(authors))

	for _, a := range authors {
		agent := &domain.Agent{
			Type:       domain.TypeKind,
			FN:         strings.TrimSpace(a.GivenNames + " " + a.FamilyNames),
			GivenName:  a.GivenNames,
			FamilyName: a.FamilyNames,
			SameAs:     a.ORCID,
		}

		if a.Affiliation != "" {
			agent.HasAffiliation = domain.NewOrganization(a.Affiliation)
		}

		agents = append(agents, agent)
	}

	return agents
}
