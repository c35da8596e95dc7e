package jupyterbook

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/diwise/dcat-mapper/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	KeywordGoogleColab string = "Google Colab"
	KeywordBinderHub   string = "BinderHub"
	KeywordThebe       string = "Thebe"
)

var githubRepository = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+)`)

type repository struct {
	org  string
	repo string
}

//parseRepository extracts the organisation and repository names from a
//GitHub url, in either https or ssh form
func parseRepository(git string) (repository, bool) {
	match := githubRepository.FindStringSubmatch(git)
	if match == nil {
		return repository{}, false
	}

	repo := strings.TrimSuffix(match[2], ".git")
	if repo == "" {
		return repository{}, false
	}

	return repository{org: match[1], repo: repo}, true
}

//launcher is a hosted environment that can run the book's notebooks
type launcher struct {
	kind     string
	enabled  func(*LaunchButtons) bool
	endpoint func(repository) string
}

var launchers = []launcher{
	{
		kind:    KeywordBinderHub,
		enabled: func(lb *LaunchButtons) bool { return lb.BinderhubURL.Set },
		endpoint: func(r repository) string {
			return fmt.Sprintf("https://mybinder.org/v2/gh/%s/%s/main", r.org, r.repo)
		},
	},
	{
		kind:    KeywordGoogleColab,
		enabled: func(lb *LaunchButtons) bool { return lb.ColabURL.Set },
		endpoint: func(r repository) string {
			return fmt.Sprintf("https://colab.research.google.com/github/%s/%s", r.org, r.repo)
		},
	},
}

//launch adds the keywords of the execution configuration and a data service
//for every enabled hosted launcher
func (b *builder) launch() {
	if b.config == nil || b.config.LaunchButtons == nil {
		return
	}

	lb := b.config.LaunchButtons

	if lb.NotebookInterface.Set {
		b.keywords.Add(lb.NotebookInterface.Value)
	}
	if lb.ColabURL.Set {
		b.keywords.Add(KeywordGoogleColab)
	}
	if lb.BinderhubURL.Set {
		b.keywords.Add(KeywordBinderHub)
	}
	if lb.Thebe.Set {
		b.keywords.Add(KeywordThebe)
	}

	repo, repoOK := parseRepository(b.book.Git)

	for _, l := range launchers {
		if !l.enabled(lb) {
			continue
		}

		if !repoOK {
			logger := logging.GetFromContext(b.ctx)
			logger.Debug().Str("git", b.book.Git).Str("launcher", l.kind).Msg("no github repository to launch from")
			continue
		}

		b.addService(l.kind, l.endpoint(repo))
	}
}

//addService emits a data service and its accompanying distribution, at most once per kind
func (b *builder) addService(kind, endpoint string) {
	if !b.services.Add(kind) {
		return
	}

	endpoint = domain.NormalizeLocator(endpoint)
	format := []domain.Format{domain.FormatHTML}
	code := b.licenses.scope(ScopeCode)

	svc := &domain.DataService{
		ID:                  endpoint,
		Type:                domain.TypeDataService,
		EndpointURL:         endpoint,
		EndpointDescription: kind,
		Title:               "Run on " + kind,
		ContactPoints:       b.dataset.ContactPoints,
		Format:              format,
		License:             code,
	}

	b.dataset.Distributions = append(b.dataset.Distributions, &domain.Distribution{
		Type:          domain.TypeDistribution,
		AccessURL:     endpoint,
		Title:         domain.PlainText(kind),
		Modified:      b.modified,
		AccessService: svc,
		Format:        format,
		License:       code,
	})
}
