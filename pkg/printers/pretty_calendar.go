package printers

import (
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/ryansoe/eventory/pkg/calendar"
	"github.com/ryansoe/eventory/pkg/deadline"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month grid one day per line with the deadlines due on
// each day, followed by an Undated section for records whose date text never
// parsed.
func (pp *PrettyPrint) Calendar(m calendar.Month, buckets []calendar.DayBucket, undated []deadline.Record) {
	p := color.New()
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)
	i := color.New(color.Italic)

	pp.monthHeader(m)

	today := time.Now()
	d := m.StartWeekday()
	for _, bucket := range buckets {
		printer := p
		if len(bucket.Records) == 0 {
			printer = f
		}
		if d == time.Sunday {
			printer = s
		}
		if sameDay(bucket.Date, today) {
			printer = b
			if d == time.Sunday {
				printer = bs
			}
		}

		_, _ = printer.Printf("%2d %s", bucket.Date.Day(), d.String()[0:1])

		for n, r := range bucket.Records {
			if n > 0 {
				_, _ = p.Print("\n    ")
			}
			_, _ = p.Printf("  %s", r.Title)
			if r.ChannelName != "" {
				_, _ = f.Printf("  #%s", r.ChannelName)
			}
		}
		_, _ = p.Print("\n")

		d++
		if d > time.Saturday {
			d = time.Sunday
		}
	}

	if len(undated) > 0 {
		_, _ = i.Print("\nUndated\n")
		for _, r := range undated {
			_, _ = p.Printf("  %s", r.Title)
			if r.DateText != "" {
				_, _ = f.Printf("  (%s)", r.DateText)
			}
			_, _ = p.Print("\n")
		}
	}
}

func (pp *PrettyPrint) monthHeader(m calendar.Month) {
	tf := color.New(color.FgWhite, color.Italic)
	name := m.String()
	mid := (width - len(name)) / 2
	if mid < 0 {
		mid = 0
	}
	pad := width - mid - len(name)
	if pad < 0 {
		pad = 0
	}
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), name, strings.Repeat(" ", pad))
}

func sameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}
