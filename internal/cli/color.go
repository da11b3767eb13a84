package cli

import (
	"github.com/fatih/color"

	"github.com/tiwariParth/go-tasklist/internal/models"
)

type palette struct {
	bold *color.Color
	ok   *color.Color
	fail *color.Color
	done *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		bold: color.New(color.Bold),
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		done: color.New(color.FgGreen, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.bold, p.ok, p.fail, p.done} {
			c.DisableColor()
		}
	}
	return p
}

// task renders "[X] 1. description" with the mark and id highlighted.
func (p palette) task(t models.Task) string {
	mark := "[" + t.StatusMark() + "]"
	if t.Completed {
		mark = p.done.Sprint(mark)
	}
	return mark + " " + p.bold.Sprintf("%d.", t.ID) + " " + t.Description
}
