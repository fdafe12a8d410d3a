package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"

	"git.sr.ht/~gioverse/datagrid"
	"git.sr.ht/~gioverse/datagrid/column"
	"git.sr.ht/~gioverse/datagrid/metrics"
	"git.sr.ht/~gioverse/datagrid/profile"
	"git.sr.ht/~gioverse/datagrid/selection"
	gridwidget "git.sr.ht/~gioverse/datagrid/widget"
	gridmaterial "git.sr.ht/~gioverse/datagrid/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// less orders two records. Columns carry it in their Meta.
type less func(a, b Record) bool

// UI holds state for, and lays out, the demo.
type UI struct {
	th      *material.Theme
	palette Palette
	logger  logrus.FieldLogger
	cfg     Config

	records  []Record
	table    *datagrid.Table[Record]
	state    gridwidget.Grid
	selected *selection.Keys

	sortKey    column.Key
	descending bool
}

// NewUI generates the records and configures the grid presenting them.
func NewUI(cfg Config, logger logrus.FieldLogger, m *metrics.Metrics) *UI {
	ui := &UI{
		th:       material.NewTheme(gofont.Collection()),
		palette:  NewPalette(210),
		logger:   logger,
		cfg:      cfg,
		records:  Generate(cfg.Rows, cfg.Seed),
		selected: selection.NewKeys(),
	}
	ui.table = datagrid.New(Columns(), ui.records)
	ui.table.Logger = logger
	ui.table.Metrics = m
	if cfg.Selection {
		ui.table.Update(datagrid.SetSelection[Record]{Selection: &selection.Facade[Record]{
			Selected: ui.selected,
			OnChange: ui.selectionChanged,
			Key: func(r Record, _ int) selection.Key {
				return selection.Key(r.ID.String())
			},
		}})
	}
	return ui
}

// Columns describes how records are presented.
func Columns() []column.Column[Record] {
	cols := column.Fields[Record]("grid")
	for i := range cols {
		c := &cols[i]
		switch c.Key {
		case "name":
			c.Meta = less(func(a, b Record) bool { return a.Name < b.Name })
		case "company":
			c.Meta = less(func(a, b Record) bool { return a.Company < b.Company })
		case "city":
			c.Width = 160
			c.Meta = less(func(a, b Record) bool { return a.City < b.City })
		case "amount":
			c.Width = 140
			c.Align = text.End
			c.Format = func(v any, _ Record, _ int) string {
				n := v.(int)
				return fmt.Sprintf("$%d.%02d", n/100, n%100)
			}
			c.Meta = less(func(a, b Record) bool { return a.Amount < b.Amount })
		case "joined":
			c.Width = 140
			c.Align = text.Middle
			c.Format = func(v any, _ Record, _ int) string {
				return v.(time.Time).Format("2006-01-02")
			}
			c.Meta = less(func(a, b Record) bool { return a.Joined.Before(b.Joined) })
		case "notes":
			c.Value = func(r Record) (any, bool) {
				if r.Notes == nil {
					return nil, false
				}
				return *r.Notes, true
			}
		}
	}
	return cols
}

func (ui *UI) selectionChanged(key selection.Key, selected bool) {
	ui.selected.Set(key, selected)
	ui.logger.WithFields(logrus.Fields{
		"key":      key,
		"selected": selected,
		"count":    ui.selected.Len(),
	}).Debug("selection changed")
}

// sortBy reorders the records by col, reversing the order when col is
// already the sort column. Columns without an ordering are ignored.
func (ui *UI) sortBy(col column.Resolved[Record]) {
	fn, ok := col.Meta.(less)
	if !ok {
		return
	}
	if ui.sortKey == col.Key {
		ui.descending = !ui.descending
	} else {
		ui.sortKey, ui.descending = col.Key, false
	}
	desc := ui.descending
	sort.SliceStable(ui.records, func(i, j int) bool {
		if desc {
			return fn(ui.records[j], ui.records[i])
		}
		return fn(ui.records[i], ui.records[j])
	})
	ui.table.Update(datagrid.SetRows[Record]{Rows: ui.records})
	ui.logger.WithFields(logrus.Fields{
		"column":     col.Key,
		"descending": desc,
	}).Debug("sorted records")
}

// Run handles window events and renders the application.
func (ui *UI) Run(w *app.Window) error {
	opt, err := profile.ParseOpt(ui.cfg.Profile)
	if err != nil {
		return err
	}
	profiler := opt.NewProfiler(ui.logger)
	profiler.Start()
	defer profiler.Stop()
	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			profiler.Record(gtx)
			ui.Layout(gtx)
			e.Frame(&ops)
		}
	}
	return nil
}

// Layout the grid below a status line.
func (ui *UI) Layout(gtx C) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, ui.layoutStatus)
		}),
		layout.Flexed(1, ui.layoutGrid),
	)
}

func (ui *UI) layoutStatus(gtx C) D {
	parts := []string{fmt.Sprintf("%d records", len(ui.records))}
	if ui.cfg.Selection {
		parts = append(parts, fmt.Sprintf("%d selected", ui.selected.Len()))
	}
	if err := ui.table.Warning(); err != nil {
		parts = append(parts, err.Error())
	}
	l := material.Body1(ui.th, strings.Join(parts, " · "))
	l.Color = ui.palette.Accent
	return l.Layout(gtx)
}

func (ui *UI) layoutGrid(gtx C) D {
	g := gridmaterial.Grid(ui.th, &ui.state, ui.table)
	g.HeaderBg = ui.palette.Header
	g.Stripe.Even = ui.palette.Even
	g.Stripe.Odd = ui.palette.Odd
	g.Divider.Color = ui.palette.Divider
	g.Debug = ui.cfg.Debug
	g.SortColumn = ui.sortKey
	g.SortIcon = SortAscending
	if ui.descending {
		g.SortIcon = SortDescending
	}
	g.OnHeaderClick = ui.sortBy
	return g.Layout(gtx)
}
