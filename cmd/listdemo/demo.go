package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/go-theft-auto/listkit"
	"github.com/go-theft-auto/listkit/internal/config"
)

// level is a sample element: a mission level with a stable identity that
// survives reordering.
type level struct {
	ID       uuid.UUID
	Name     string
	District string
}

func (l level) String() string {
	return l.Name + " (" + l.District + ")"
}

var districts = []string{"Portland", "Staunton", "Shoreside", "Downtown", "Harwood", "Chinatown"}

var missionNames = []string{
	"Give Me Liberty", "Luigi's Girls", "Don't Spank Ma Bitch Up", "Drive Misty For Me",
	"Pump-Action Pimp", "The Fuzz Ball", "Mike Lips Last Lunch", "Farewell Salvatore",
	"Turismo", "Cutting the Grass", "Bomb Da Base", "Last Requests",
}

func newLevel(n int) level {
	name := missionNames[n%len(missionNames)]
	if n >= len(missionNames) {
		name = fmt.Sprintf("%s %d", name, n/len(missionNames)+1)
	}
	return level{ID: uuid.New(), Name: name, District: districts[n%len(districts)]}
}

func sampleLevels(n int) []level {
	out := make([]level, n)
	for i := range out {
		out[i] = newLevel(i)
	}
	return out
}

// loadThemes returns the built-in themes followed by those of the theme
// file, if configured.
func loadThemes(cfg config.Config) (*listkit.ThemeDatabase, error) {
	db := listkit.NewThemeDatabase(listkit.BuiltinThemes()...)
	if cfg.Theme.File == "" {
		return db, nil
	}
	file, err := listkit.LoadThemeDatabase(cfg.Theme.File)
	if err != nil {
		return nil, err
	}
	for _, t := range file.Themes() {
		db.Add(t)
	}
	return db, nil
}

func matcherFor(name string) listkit.Matcher {
	switch name {
	case "fuzzy":
		return listkit.FuzzyMatcher{}
	case "typo":
		return listkit.TypoTolerantMatcher{MaxDistance: 1}
	}
	return listkit.SubstringMatcher{}
}

// demo owns the sample collection and the list editing it.
type demo struct {
	levels  []level
	list    *listkit.ListView
	history []string
	notice  string
	toasts  listkit.ToastStack
	log     *logrus.Entry
}

func newDemo(cfg config.Config, theme *listkit.Theme) *demo {
	d := &demo{
		levels: sampleLevels(cfg.Demo.Samples),
		log:    listkit.Logger().WithField("component", "listdemo"),
	}
	src := listkit.NewSliceSource(&d.levels)
	next := len(d.levels)
	src.New = func() level {
		next++
		return newLevel(next - 1)
	}

	d.list = listkit.NewListView(src,
		listkit.WithTheme(theme),
		listkit.WithMatcher(matcherFor(cfg.Demo.Matcher)),
		listkit.WithHeaderLabel(func() string { return "Levels" }),
		listkit.WithCallbacks(listkit.ListCallbacks{
			UndoCheckpoint: d.checkpoint,
			ReorderedWithDetails: func(from, to int) {
				d.notice = fmt.Sprintf("moved %d -> %d", from, to)
			},
			ElementDoubleClicked: func(index int) {
				d.notice = "opened " + d.levels[index].ID.String()[:8]
				d.toasts.Push(d.levels[index].Name, listkit.ToastSuccess, 0)
				d.log.WithFields(logrus.Fields{"index": index, "id": d.levels[index].ID}).Info("level opened")
			},
		}),
	)
	return d
}

func (d *demo) checkpoint(msg string) {
	d.history = append(d.history, msg)
	d.notice = msg
	d.toasts.Info(msg)
	d.log.WithField("step", len(d.history)).Debug(msg)
}

// margin keeps the list off the window edges.
const margin = 8

func (d *demo) draw(ctx *listkit.Context) {
	size := ctx.DisplaySize
	hintH := ctx.LineHeight() + 4
	area := listkit.Rect{X: margin, Y: margin, W: size.X - 2*margin, H: size.Y - 2*margin - hintH}
	ctx.Area(area, listkit.LayoutVertical)(func() {
		d.list.Display(ctx)
	})
	ctx.HintBar(listkit.Rect{X: margin, Y: area.YMax(), W: area.W, H: hintH}, listkit.ListHints(d.list)...)
	ctx.DrawToasts(&d.toasts)
}

func (d *demo) status() string {
	parts := []string{fmt.Sprintf("page %d/%d", d.list.CurrentPage()+1, d.list.PagesCount())}
	if sel := d.list.SelectedIndex(); sel >= 0 && sel < len(d.levels) {
		parts = append(parts, d.levels[sel].Name)
	}
	if d.notice != "" {
		parts = append(parts, d.notice)
	}
	parts = append(parts, "ctrl+c quit")
	return strings.Join(parts, "  |  ")
}
