package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/domain"
)

// Browser displays discovered test files in an interactive TUI
type Browser struct {
	config *config.Config
}

// NewBrowser creates a new Browser
func NewBrowser(cfg *config.Config) *Browser {
	return &Browser{config: cfg}
}

// Browse shows the test files in a two-pane view: the file list on the left,
// details for the selected file on the right. Quit with q or Escape.
func (b *Browser) Browse(tests []domain.TestFile) error {
	if len(tests) == 0 {
		color.Yellow("No test files found")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Test files (%d) ", len(tests)))

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Details ")

	showDetails := func(index int) {
		if index < 0 || index >= len(tests) {
			return
		}
		tf := tests[index]
		detailsView.Clear()
		fmt.Fprintf(detailsView, "[yellow]File:[white] %s\n", tf.Path)
		fmt.Fprintf(detailsView, "[yellow]URL:[white]  http://%s%s\n", b.config.Addr(), tf.URL)
		if info, err := os.Stat(tf.Path); err == nil {
			fmt.Fprintf(detailsView, "[yellow]Size:[white] %d bytes\n", info.Size())
			fmt.Fprintf(detailsView, "[yellow]Modified:[white] %s\n", info.ModTime().Format("2006-01-02 15:04:05"))
		} else {
			fmt.Fprintf(detailsView, "\n[red]file is missing on disk[white]\n")
		}
	}

	for i, tf := range tests {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tf.Path), "", 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetails(index)
	})
	showDetails(0)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
