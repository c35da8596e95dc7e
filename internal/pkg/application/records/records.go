package records

import (
	"errors"

	"github.com/diwise/dcat-mapper/internal/pkg/application/config"
	"github.com/diwise/dcat-mapper/internal/pkg/application/themes"
	"github.com/diwise/dcat-mapper/internal/pkg/domain"
)

var ErrNoRecord = errors.New("raw input does not contain a record")

const PublisherTypeNationalAuthority string = "http://purl.org/adms/publishertype/NationalAuthority"

//Record is the source neutral form that every flat source is parsed into
//before it is mapped to a dataset
type Record struct {
	Source          string
	Language        string
	IncludeLanguage bool

	Identifier   string
	Titles       []string
	Descriptions []string
	Types        []string
	Version      string
	Issued       string
	Modified     string

	Publisher    *Publisher
	Homepage     string
	LandingPage  string
	ThumbnailURL string

	License *License
	Rights  []string

	ContactPoints []Contact
	Creators      []Contact
	Contributors  []Contact

	Keywords      []string
	Distributions []Distribution
}

type Publisher struct {
	Name string
	Type string
}

type License struct {
	URL        string
	Name       string
	Identifier string
}

//Contact is a person or organisation in any of the contact, creator or contributor roles
type Contact struct {
	Name  string
	Email string
}

//DisplayName is the name, followed by the email address when there is one
func (c Contact) DisplayName() string {
	if c.Email == "" {
		return c.Name
	}
	return c.Name + " (" + c.Email + ")"
}

type Distribution struct {
	Title        string
	Description  string
	Identifier   string
	AccessURL    string
	DownloadURL  string
	Issued       string
	Modified     string
	Formats      []string
	ThumbnailURL string
	Licensed     bool
}

//ToDataset maps a parsed record into a dataset, using settings for the
//default language and themes
func ToDataset(rec Record, settings *config.Settings) *domain.Dataset {
	if settings == nil {
		settings = config.Default()
	}

	lang := rec.Language
	if lang == "" {
		lang = settings.Language
	}

	ds := domain.NewDataset()
	ds.Identifier = rec.Identifier
	ds.Title = tagged(rec.Titles, lang)
	ds.Description = tagged(rec.Descriptions, lang)
	ds.DatasetType = tagged(rec.Types, lang)
	ds.Version = rec.Version
	ds.Issued = domain.DateString(rec.Issued)
	ds.Modified = domain.DateString(rec.Modified)
	ds.ThumbnailURL = rec.ThumbnailURL
	ds.Rights = tagged(rec.Rights, lang)

	if rec.IncludeLanguage {
		ds.Language = []domain.Language{{Language: lang}}
	}

	if rec.Publisher != nil && rec.Publisher.Name != "" {
		ds.Publisher = &domain.Agent{Type: domain.TypeAgent, Name: rec.Publisher.Name}
		if rec.Publisher.Type != "" {
			ds.Publisher.AgentType = &domain.Resource{ID: rec.Publisher.Type}
		}
	}

	if rec.Homepage != "" {
		ds.Homepage = &domain.Resource{ID: domain.NormalizeLocator(rec.Homepage)}
	}

	if rec.LandingPage != "" {
		page := domain.NewDocument(domain.NormalizeLocator(rec.LandingPage))
		ds.LandingPage = &page
	}

	var license *domain.LicenseDocument
	if rec.License != nil && (rec.License.URL != "" || rec.License.Name != "") {
		license = domain.NewIdentifiedLicenseDocument(locator(rec.License.URL), rec.License.Name, rec.License.Identifier)
		ds.Licenses = []*domain.LicenseDocument{license}
	}

	for _, d := range rec.Distributions {
		ds.Distributions = append(ds.Distributions, distribution(d, license))
	}

	ds.ContactPoints = contactPoints(rec.ContactPoints)
	ds.Creators = agents(rec.Creators, false)
	ds.Contributors = agents(rec.Contributors, true)

	if keywords := domain.NewOrderedSet(rec.Keywords...); keywords.Len() > 0 {
		ds.Keywords = keywords.Values()
	}

	ds.Themes = themes.FromCategories(settings.Categories)

	if rec.Source != "" {
		ds.Provenance = []domain.ProvenanceStatement{{Type: domain.TypeProvenanceStatement, Label: rec.Source}}
	}
	ds.GeneratedBy = []domain.Activity{{Type: domain.TypeActivity, Label: settings.Activity}}

	return ds
}

func distribution(d Distribution, license *domain.LicenseDocument) *domain.Distribution {
	dist := &domain.Distribution{
		Type:         domain.TypeDistribution,
		AccessURL:    locator(d.AccessURL),
		DownloadURL:  locator(d.DownloadURL),
		Title:        plain(d.Title),
		Description:  plain(d.Description),
		Identifier:   d.Identifier,
		Issued:       domain.DateString(d.Issued),
		Modified:     domain.DateString(d.Modified),
		ThumbnailURL: d.ThumbnailURL,
	}

	for _, f := range d.Formats {
		dist.Format = append(dist.Format, domain.LookupFormat(f))
	}

	if d.Licensed {
		dist.License = license
	}

	return dist
}

//contactPoints keeps the first contact for every display name, in input order
func contactPoints(contacts []Contact) []*domain.Agent {
	seen := domain.NewOrderedSet[string]()
	var result []*domain.Agent

	for _, c := range contacts {
		name := c.DisplayName()
		if name == "" || !seen.Add(name) {
			continue
		}

		result = append(result, &domain.Agent{
			Type:     domain.TypeKind,
			FN:       name,
			HasEmail: c.Email,
		})
	}

	return result
}

func agents(contacts []Contact, withFN bool) []*domain.Agent {
	var result []*domain.Agent

	for _, c := range contacts {
		if c.Name == "" {
			continue
		}

		agent := &domain.Agent{Type: domain.TypeAgent, Name: c.Name, HasEmail: c.Email}
		if withFN {
			agent.FN = c.Name
		}
		result = append(result, agent)
	}

	return result
}

func tagged(values []string, lang string) domain.Texts {
	var texts domain.Texts
	for _, v := range values {
		if v != "" {
			texts = append(texts, domain.Text{Value: v, Language: lang})
		}
	}
	return texts
}

func plain(value string) domain.Texts {
	if value == "" {
		return nil
	}
	return domain.PlainText(value)
}

func locator(value string) string {
	if value == "" {
		return ""
	}
	return domain.NormalizeLocator(value)
}
