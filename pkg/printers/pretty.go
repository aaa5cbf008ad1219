package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/ryansoe/eventory/pkg/category"
	"github.com/ryansoe/eventory/pkg/deadline"
	"github.com/ryansoe/eventory/pkg/timeutil"
	"github.com/ryansoe/eventory/pkg/views"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" deadline")
	default:
		_, _ = c.Println(" deadlines")
	}
}

// Feed prints one category section of the dashboard.
func (pp *PrettyPrint) Feed(records ...deadline.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range records {
		due := r.DateText
		if due == "" {
			due = "no date"
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(r.ID), due, r.Title, r.Provenance())
		} else {
			tbl.AddRow(due, r.Title, r.Provenance())
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Sections prints every non-empty category bucket with its heading, in feed
// order, then any empty ones so the reader sees the full shape.
func (pp *PrettyPrint) Sections(v views.Views) {
	for _, c := range category.All() {
		pp.TitleWithCount(c.Heading(), len(v.ByCategory[c]))
		pp.Feed(v.ByCategory[c]...)
	}
}

// Detail prints the full record, detail fields included.
func (pp *PrettyPrint) Detail(r deadline.Record) {
	pp.Title(orPlaceholder(r.Title, "Untitled"))

	tbl := uitable.New()
	tbl.Separator = "  "
	due := orPlaceholder(r.DateText, "no date")
	if d, ok := r.Due(); ok {
		due = fmt.Sprintf("%s (%s)", due, timeutil.Until(time.Now(), d.Time()))
	}
	tbl.AddRow("Due", due)
	tbl.AddRow("Category", category.Classify(r.Title, r.Description).Heading())
	if r.Provenance() != "" {
		tbl.AddRow("Source", r.Provenance())
	}
	if r.AuthorName != "" {
		tbl.AddRow("Posted by", r.AuthorName)
	}
	if r.Description != "" {
		tbl.AddRow("Description", r.Description)
	}
	if r.RawContent != "" {
		tbl.AddRow("Original message", r.RawContent)
	}
	if r.SourceLink != "" {
		tbl.AddRow("Link", r.SourceLink)
	}
	if !r.Timestamp.IsZero() {
		tbl.AddRow("Harvested", r.Timestamp.String())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
