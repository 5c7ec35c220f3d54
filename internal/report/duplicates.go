package report

import (
	"errors"
	"sort"

	"obrahub/internal/project"
	"obrahub/pkg/models"
)

// ErrNoDuplicates is the informational outcome of a duplicates report
// over a collection where every project code is unique. It is not a
// failure and must not be logged as one.
var ErrNoDuplicates = errors.New("report: no duplicate project codes found")

type dupGroup struct {
	code    string
	entries []entry
}

// Column offsets for the two-column duplicate listing, mm from the
// left page edge.
const (
	dupNameX     = pageMargin
	dupBoardX    = 140.0
	dupNameWidth = dupBoardX - pageMargin - 5
)

// duplicateGroups collects project codes appearing on more than one
// card across all boards. Groups sort by code, members by board name.
func duplicateGroups(cards []models.Card) []dupGroup {
	byCode := make(map[string][]entry)
	for _, card := range cards {
		code, residual := project.ParseCode(card.Name)
		if code == "" || code == project.SentinelCode {
			continue
		}
		byCode[code] = append(byCode[code], entry{code: code, name: residual, card: card})
	}

	codes := make([]string, 0, len(byCode))
	for code, entries := range byCode {
		if len(entries) > 1 {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	groups := make([]dupGroup, 0, len(codes))
	for _, code := range codes {
		entries := byCode[code]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].card.BoardName < entries[j].card.BoardName
		})
		groups = append(groups, dupGroup{code: code, entries: entries})
	}
	return groups
}

// Duplicates renders the duplicate-code report, or returns
// ErrNoDuplicates when there is nothing to report.
func (g *Generator) Duplicates(cards []models.Card) ([]byte, error) {
	groups := duplicateGroups(cards)
	if len(groups) == 0 {
		return nil, ErrNoDuplicates
	}
	return g.renderDuplicates(groups).bytes()
}

func (g *Generator) renderDuplicates(groups []dupGroup) *docWriter {
	d := newDocWriter()
	d.title("Códigos de proyecto duplicados")

	boardWidth := d.pageW - dupBoardX - pageMargin
	for _, grp := range groups {
		d.header("Código duplicado: " + grp.code)
		for _, e := range grp.entries {
			d.row(
				[]string{FormatRow(e.code, e.name), e.card.BoardName},
				[]float64{dupNameX, dupBoardX},
				[]float64{dupNameWidth, boardWidth},
			)
		}
		d.endGroup()
		d.gap()
	}
	return d
}
