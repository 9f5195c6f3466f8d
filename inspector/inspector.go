// Package inspector is a read-only terminal viewer for an assembled
// program: it renders the disassembled instruction stream, the label
// table, and the subroutine table in three panes. It never executes a
// program — the full interpreter execution engine is out of scope — so
// unlike the teacher's debugger TUI there is no register/memory/stack
// view, no command input, and no breakpoints.
package inspector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/logicalclocks/rondb-sub003/config"
	"github.com/logicalclocks/rondb-sub003/isa"
)

// Inspector is the TUI application.
type Inspector struct {
	cfg *config.Config
	App *tview.Application

	MainLayout       *tview.Flex
	InstructionsView *tview.TextView
	LabelsView       *tview.TextView
	SubsView         *tview.TextView
	StatusView       *tview.TextView

	words  []isa.Word
	labels map[uint32]int
	subs   map[uint32]int
}

// New builds an Inspector over an already-finalised (or pre-finalise, for
// browsing a partially built program) word stream plus its label and
// subroutine tables.
func New(cfg *config.Config, words []isa.Word, labels, subs map[uint32]int) *Inspector {
	insp := &Inspector{
		cfg:    cfg,
		App:    tview.NewApplication(),
		words:  words,
		labels: labels,
		subs:   subs,
	}
	insp.initializeViews()
	insp.buildLayout()
	insp.setupKeyBindings()
	insp.RefreshAll()
	return insp
}

func (insp *Inspector) initializeViews() {
	insp.InstructionsView = tview.NewTextView().
		SetDynamicColors(insp.cfg.Inspector.ColorOutput).
		SetScrollable(true).
		SetWrap(false)
	insp.InstructionsView.SetBorder(true).SetTitle(" Instructions ")

	insp.LabelsView = tview.NewTextView().
		SetDynamicColors(insp.cfg.Inspector.ColorOutput).
		SetScrollable(true)
	insp.LabelsView.SetBorder(true).SetTitle(" Labels ")

	insp.SubsView = tview.NewTextView().
		SetDynamicColors(insp.cfg.Inspector.ColorOutput).
		SetScrollable(true)
	insp.SubsView.SetBorder(true).SetTitle(" Subroutines ")

	insp.StatusView = tview.NewTextView().
		SetDynamicColors(insp.cfg.Inspector.ColorOutput)
	insp.StatusView.SetBorder(true).SetTitle(" Status ")
}

func (insp *Inspector) buildLayout() {
	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(insp.LabelsView, 0, 1, false).
		AddItem(insp.SubsView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(insp.InstructionsView, 0, 2, false).
		AddItem(rightPanel, 0, 1, false)

	insp.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(insp.StatusView, 3, 0, false)
}

func (insp *Inspector) setupKeyBindings() {
	insp.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			insp.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			insp.RefreshAll()
			return nil
		}
		if event.Rune() == 'q' {
			insp.App.Stop()
			return nil
		}
		return event
	})
}

// Run starts the TUI event loop. It blocks until the user quits (Ctrl-C or
// 'q').
func (insp *Inspector) Run() error {
	return insp.App.SetRoot(insp.MainLayout, true).SetFocus(insp.InstructionsView).Run()
}

// RefreshAll redraws every pane from the current word/label/sub state.
func (insp *Inspector) RefreshAll() {
	insp.updateInstructionsView()
	insp.updateLabelsView()
	insp.updateSubsView()
	insp.StatusView.SetText(fmt.Sprintf("%d word(s)  %d label(s)  %d subroutine(s)  [q] quit",
		len(insp.words), len(insp.labels), len(insp.subs)))
}

func (insp *Inspector) numberFormat(v int) string {
	if insp.cfg.Inspector.NumberFormat == "dec" {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("0x%04x", v)
}

func (insp *Inspector) updateInstructionsView() {
	insp.InstructionsView.Clear()
	lines := Disassemble(insp.words)

	byPos := make(map[int][]string)
	for label, pos := range insp.labels {
		byPos[pos] = append(byPos[pos], fmt.Sprintf("L%d", label))
	}
	for sub, pos := range insp.subs {
		byPos[pos] = append(byPos[pos], fmt.Sprintf("S%d", sub))
	}

	var b strings.Builder
	for _, line := range lines {
		if tags, ok := byPos[line.Pos]; ok {
			sort.Strings(tags)
			fmt.Fprintf(&b, "[yellow]%s:[white]\n", strings.Join(tags, " "))
		}
		fmt.Fprintf(&b, "%s  %s\n", insp.numberFormat(line.Pos), line.Text)
	}
	insp.InstructionsView.SetText(b.String())
}

func (insp *Inspector) updateLabelsView() {
	insp.LabelsView.Clear()
	nums := sortedKeys(insp.labels)
	var b strings.Builder
	for _, n := range nums {
		fmt.Fprintf(&b, "%-6d -> %s\n", n, insp.numberFormat(insp.labels[n]))
	}
	insp.LabelsView.SetText(b.String())
}

func (insp *Inspector) updateSubsView() {
	insp.SubsView.Clear()
	nums := sortedKeys(insp.subs)
	var b strings.Builder
	for _, n := range nums {
		fmt.Fprintf(&b, "%-6d -> %s\n", n, insp.numberFormat(insp.subs[n]))
	}
	insp.SubsView.SetText(b.String())
}

func sortedKeys(m map[uint32]int) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
