package report

import (
	"fmt"
	"sort"

	"obrahub/internal/project"
	"obrahub/pkg/models"
)

// Scope narrows which cards a project report covers. An empty
// BoardName means every board; Query is echoed on the title line when
// the input collection was search-filtered.
type Scope struct {
	BoardName string
	Query     string
	Cards     []models.Card
}

// Generator renders card collections into paginated PDF reports.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// entry is one printable project row.
type entry struct {
	code string
	name string // display name with the code stripped
	card models.Card
}

type group struct {
	board   string
	entries []entry
}

// FormatRow is the single place a project row's text is built:
// "<code> - <name without code>".
func FormatRow(code, name string) string {
	return fmt.Sprintf("%s - %s", code, name)
}

// groupProjects keeps project-coded cards (dropping the template
// sentinel), groups them by origin board and orders everything:
// boards alphabetically, entries by code, codeless entries last by
// name.
func groupProjects(cards []models.Card, boardName string) []group {
	byBoard := make(map[string][]entry)
	for _, card := range cards {
		if boardName != "" && card.BoardName != boardName {
			continue
		}
		code, residual := project.ParseCode(card.Name)
		if code == "" || code == project.SentinelCode {
			continue
		}
		byBoard[card.BoardName] = append(byBoard[card.BoardName], entry{
			code: code,
			name: residual,
			card: card,
		})
	}

	names := make([]string, 0, len(byBoard))
	for name := range byBoard {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]group, 0, len(names))
	for _, name := range names {
		entries := byBoard[name]
		sort.SliceStable(entries, func(i, j int) bool {
			// Post-filter every entry has a code, but keep the
			// defensive ordering: codeless last, by name.
			if entries[i].code == "" || entries[j].code == "" {
				if entries[i].code != entries[j].code {
					return entries[j].code == ""
				}
				return entries[i].name < entries[j].name
			}
			return entries[i].code < entries[j].code
		})
		groups = append(groups, group{board: name, entries: entries})
	}
	return groups
}

func projectListTitle(scope Scope) string {
	title := "Lista de Proyectos"
	if scope.BoardName != "" {
		title += " - Tablero: " + scope.BoardName
	}
	if scope.Query != "" {
		title += fmt.Sprintf(" - Búsqueda: %q", scope.Query)
	}
	return title
}

// ProjectList renders the grouped project list for the scope.
func (g *Generator) ProjectList(scope Scope) ([]byte, error) {
	return g.renderProjectList(scope).bytes()
}

func (g *Generator) renderProjectList(scope Scope) *docWriter {
	d := newDocWriter()
	d.title(projectListTitle(scope))

	for _, grp := range groupProjects(scope.Cards, scope.BoardName) {
		d.header(grp.board)
		for _, e := range grp.entries {
			d.line(FormatRow(e.code, e.name))
		}
		d.endGroup()
		d.gap()
	}
	return d
}
