package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obrahub/pkg/models"
)

func TestGroupProjectsFiltersAndOrders(t *testing.T) {
	cards := []models.Card{
		{Name: "Zanja (RSA002)", BoardName: "Salado"},
		{Name: "Puente X (RSA001)", BoardName: "Salado"},
		{Name: "Sin código", BoardName: "Salado"},
		{Name: "Tarjeta de ejemplo (XXX000)", BoardName: "Salado"},
		{Name: "Alcantarilla (RRQ003)", BoardName: "Reconquista"},
	}

	groups := groupProjects(cards, "")
	require.Len(t, groups, 2)

	assert.Equal(t, "Reconquista", groups[0].board)
	assert.Equal(t, "Salado", groups[1].board)

	salado := groups[1]
	require.Len(t, salado.entries, 2, "codeless and sentinel cards are excluded")
	assert.Equal(t, "RSA001", salado.entries[0].code)
	assert.Equal(t, "RSA002", salado.entries[1].code)
	assert.Equal(t, "Puente X", salado.entries[0].name)
}

func TestGroupProjectsBoardScope(t *testing.T) {
	cards := []models.Card{
		{Name: "Puente X (RSA001)", BoardName: "Salado"},
		{Name: "Alcantarilla (RRQ003)", BoardName: "Reconquista"},
	}

	groups := groupProjects(cards, "Salado")
	require.Len(t, groups, 1)
	assert.Equal(t, "Salado", groups[0].board)
}

func TestFormatRow(t *testing.T) {
	assert.Equal(t, "RSA001 - Puente X", FormatRow("RSA001", "Puente X"))
}

func TestProjectListTitle(t *testing.T) {
	assert.Equal(t, "Lista de Proyectos", projectListTitle(Scope{}))
	assert.Equal(t, "Lista de Proyectos - Tablero: Salado", projectListTitle(Scope{BoardName: "Salado"}))
	assert.Equal(t, `Lista de Proyectos - Búsqueda: "puente"`, projectListTitle(Scope{Query: "puente"}))
}

func TestDuplicateGroups(t *testing.T) {
	cards := []models.Card{
		{Name: "Puente X (RSA001)", BoardName: "C"},
		{Name: "Puente X bis (RSA001)", BoardName: "A"},
		{Name: "Puente X tris (RSA001)", BoardName: "B"},
		{Name: "Único (MAR001)", BoardName: "A"},
		{Name: "Plantilla (XXX000)", BoardName: "A"},
		{Name: "Plantilla copia (XXX000)", BoardName: "B"},
	}

	groups := duplicateGroups(cards)
	require.Len(t, groups, 1, "unique codes and the sentinel are omitted")

	grp := groups[0]
	assert.Equal(t, "RSA001", grp.code)
	require.Len(t, grp.entries, 3)
	assert.Equal(t, "A", grp.entries[0].card.BoardName)
	assert.Equal(t, "B", grp.entries[1].card.BoardName)
	assert.Equal(t, "C", grp.entries[2].card.BoardName)
}

func TestDuplicatesNoneIsInformational(t *testing.T) {
	gen := NewGenerator()
	_, err := gen.Duplicates([]models.Card{
		{Name: "Puente X (RSA001)", BoardName: "Salado"},
	})
	assert.ErrorIs(t, err, ErrNoDuplicates)
}

func TestProjectListProducesPDF(t *testing.T) {
	gen := NewGenerator()
	pdf, err := gen.ProjectList(Scope{Cards: []models.Card{
		{Name: "Puente X (RSA001)", BoardName: "Salado"},
		{Name: "Sin código", BoardName: "Salado"},
	}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF-"))
}

func TestProjectListPaginates(t *testing.T) {
	var cards []models.Card
	for i := 1; i <= 120; i++ {
		cards = append(cards, models.Card{
			Name:      fmt.Sprintf("Obra de defensa número %d sobre la margen izquierda (RSA%03d)", i, i),
			BoardName: "Salado",
		})
	}

	gen := NewGenerator()
	d := gen.renderProjectList(Scope{Cards: cards})
	require.Greater(t, d.pdf.PageCount(), 1, "120 rows at 7mm each cannot fit one A4 page")

	// Breaks happen mid-group, so continuation pages must repeat the
	// board header with the continuation suffix. Compression is off so
	// the content streams are inspectable; the parentheses are escaped
	// in the stream, so match on the inner text.
	d.pdf.SetCompression(false)
	out, err := d.bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "cont.")
}

func TestDuplicatesPaginates(t *testing.T) {
	var cards []models.Card
	for i := 1; i <= 60; i++ {
		code := fmt.Sprintf("RSA%03d", i)
		cards = append(cards,
			models.Card{Name: fmt.Sprintf("Obra %d (%s)", i, code), BoardName: "Salado"},
			models.Card{Name: fmt.Sprintf("Obra %d copia (%s)", i, code), BoardName: "Reconquista"},
		)
	}

	gen := NewGenerator()
	groups := duplicateGroups(cards)
	require.Len(t, groups, 60)
	d := gen.renderDuplicates(groups)
	assert.Greater(t, d.pdf.PageCount(), 1)
}

func TestEndToEndSaladoScenario(t *testing.T) {
	cards := []models.Card{
		{Name: "Puente X (RSA001)", Desc: "cruce sobre el río", BoardName: "Salado"},
		{Name: "Sin código", Desc: "nota", BoardName: "Salado"},
	}

	groups := groupProjects(cards, "")
	require.Len(t, groups, 1)
	assert.Equal(t, "Salado", groups[0].board)
	require.Len(t, groups[0].entries, 1)
	assert.Equal(t, "RSA001 - Puente X", FormatRow(groups[0].entries[0].code, groups[0].entries[0].name))
}
