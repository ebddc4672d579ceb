package screens

import (
	"petitions/internal/domain"
	"petitions/internal/render"
)

// DetailScreen shows one petition. It holds a copy of the petition and
// never mutates it.
type DetailScreen struct {
	Chrome

	petition         domain.Petition
	collapseOnScroll bool
	html             string
}

// NewDetailScreen creates the detail screen for a selected petition.
func NewDetailScreen(p domain.Petition, hideOnScroll bool) *DetailScreen {
	return &DetailScreen{petition: p, collapseOnScroll: hideOnScroll}
}

// OnLoad implements Screen. It builds the HTML document once.
func (d *DetailScreen) OnLoad() {
	d.html = render.Document(d.petition.Body)
}

// OnShow implements Screen.
func (d *DetailScreen) OnShow() { d.show(d.collapseOnScroll) }

// OnHide implements Screen.
func (d *DetailScreen) OnHide() { d.hide() }

// Title implements Screen.
func (d *DetailScreen) Title() string { return d.petition.Title }

// Petition returns the petition being shown.
func (d *DetailScreen) Petition() domain.Petition { return d.petition }

// HTML returns the rendered document, building it if OnLoad has not run.
func (d *DetailScreen) HTML() string {
	if d.html == "" {
		d.OnLoad()
	}
	return d.html
}

// Text renders the document for a terminal of the given width.
func (d *DetailScreen) Text(width int) (string, error) {
	return render.Text(d.HTML(), width)
}
