package tui

import (
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"

	"dungeonescape/pkg/engine/terminal"
	"dungeonescape/pkg/engine/world"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/renderer"
	"dungeonescape/pkg/game/state"
	"dungeonescape/pkg/game/text"
	gameworld "dungeonescape/pkg/game/world"
)

// Icon constants
const (
	IconFloor = "·"
	IconVoid  = " "
)

// Border pieces around the room grid
const (
	borderTopLeft     = "┌"
	borderTopRight    = "┐"
	borderBottomLeft  = "└"
	borderBottomRight = "┘"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// dynamicGet is used for runtime catalog lookups from markup.
// We use a function variable to avoid go vet's non-constant format string check.
var dynamicGet = text.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	colors bool

	// width of the output, used for centering and the messages pane
	width int

	styles map[renderer.TextStyle]color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out. With colors false every
// style renders as plain text.
func New(out io.Writer, colors bool) *TUIRenderer {
	return &TUIRenderer{
		out:    out,
		colors: colors,
		width:  terminal.DefaultWidth,
	}
}

// Init initializes the TUI renderer (colors, markup)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleSubtle:      {color.FgGray},
		renderer.StyleBorder:      {color.FgGray, color.OpBold},
		renderer.StyleAction:      {color.FgMagenta},
		renderer.StyleActionShort: {color.FgMagenta, color.OpBold},
		renderer.StyleDenied:      {color.FgRed, color.OpBold},
		renderer.StyleHero:        {color.FgGreen, color.OpBold},
		renderer.StyleMonster:     {color.FgRed},
		renderer.StyleWeapon:      {color.FgCyan},
		renderer.StylePotion:      {color.FgMagenta},
		renderer.StyleKey:         {color.FgYellow, color.OpBold},
		renderer.StyleDoor:        {color.FgYellow},
		renderer.StyleLockedDoor:  {color.FgRed, color.OpBold},
	}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([a-z A-Z0-9_,:.?-]+)}`)

	if terminal.IsInteractive() {
		t.width = terminal.GetWidth()
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(s string, style renderer.TextStyle) string {
	if !t.colors {
		return s
	}
	st, ok := t.styles[style]
	if !ok {
		return s
	}
	return st.Sprint(s)
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ROOM":
			val = t.StyleText(operand, renderer.StyleDoor)
		case "ACTION":
			val = t.StyleText(operand[0:1], renderer.StyleActionShort) + t.StyleText(operand[1:], renderer.StyleAction)
		case "DENIED":
			val = t.StyleText(operand, renderer.StyleDenied)
		case "SUBTLE":
			val = t.StyleText(operand, renderer.StyleSubtle)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	if g.CurrentRoom != nil {
		t.printString("GT{ROOM} ROOM{%s}   SUBTLE{%s: %d}\n\n", g.CurrentRoom.ID, text.Get("MONSTERS_LEFT"), g.CurrentRoom.MonsterCount())
		t.printMap(g)
	}

	t.printStatusBar(g)

	if g.Pending == nil && !g.IsOver() {
		t.printPossibleActions()
	}

	t.printMessagesPane(g)

	switch {
	case g.IsOver():
	case g.Pending != nil:
		fmt.Fprintf(t.out, "\n%s %s", g.Pending.Prompt, text.Get("PROMPT_DECISION"))
	default:
		fmt.Fprintf(t.out, "\n%s", text.Get("PROMPT"))
	}
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// renderCell returns the styled glyph for a cell
func (t *TUIRenderer) renderCell(cell *world.Cell) string {
	if cell == nil {
		return IconVoid
	}

	data := gameworld.GetGameData(cell)
	if data.Hero != nil {
		return t.StyleText(string(data.Hero.Symbol()), renderer.StyleHero)
	}
	if data.Object == nil {
		return t.StyleText(IconFloor, renderer.StyleSubtle)
	}
	if m, ok := data.Object.(*entities.Monster); ok && m.IsDead() {
		return t.StyleText(IconFloor, renderer.StyleSubtle)
	}
	return t.StyleText(string(data.Object.Symbol()), renderer.StyleFor(data.Object))
}

// printMap renders the room inside a border, centered on the output width
func (t *TUIRenderer) printMap(g *state.Game) {
	room := g.CurrentRoom

	// Each cell is a glyph followed by a space
	inner := room.Cols()*2 + 1
	indent := (t.width - inner - 2) / 2
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)

	fmt.Fprintln(t.out, pad+t.StyleText(borderTopLeft+strings.Repeat(borderHorizontal, inner)+borderTopRight, renderer.StyleBorder))

	for row := 0; row < room.Rows(); row++ {
		var b strings.Builder
		b.WriteString(pad)
		b.WriteString(t.StyleText(borderVertical, renderer.StyleBorder))
		b.WriteString(" ")
		for col := 0; col < room.Cols(); col++ {
			b.WriteString(t.renderCell(room.Cell(row, col)))
			b.WriteString(" ")
		}
		b.WriteString(t.StyleText(borderVertical, renderer.StyleBorder))
		fmt.Fprintln(t.out, b.String())
	}

	fmt.Fprintln(t.out, pad+t.StyleText(borderBottomLeft+strings.Repeat(borderHorizontal, inner)+borderBottomRight, renderer.StyleBorder))
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out)
	t.printString("ACTION{up} ACTION{down} ACTION{left} ACTION{right}  ACTION{attack}  ACTION{save}  ACTION{quit}  ACTION{?help}\n")
}

// printStatusBar renders the hero's HP, weapon and key
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	hero := g.Hero
	fmt.Fprintln(t.out)

	hpStyle := renderer.StyleHero
	if hero.IsHurt() && hero.HP*3 <= hero.MaxHP {
		hpStyle = renderer.StyleDenied
	}

	weapon := t.StyleText(text.Get("NONE"), renderer.StyleSubtle)
	if hero.Weapon != nil {
		weapon = t.StyleText(fmt.Sprintf("%c %s (%d)", hero.Weapon.Symbol(), hero.Weapon.Name, hero.Weapon.Damage), renderer.StyleWeapon)
	}

	key := t.StyleText(text.Get("NO"), renderer.StyleSubtle)
	if hero.HasKey {
		key = t.StyleText(text.Get("YES"), renderer.StyleKey)
	}

	sep := t.StyleText(" | ", renderer.StyleSubtle)
	fmt.Fprintln(t.out, strings.Join([]string{
		text.Get("STATUS_HP") + " " + t.StyleText(fmt.Sprintf("%d/%d", hero.HP, hero.MaxHP), hpStyle),
		text.Get("STATUS_WEAPON") + " " + weapon,
		text.Get("STATUS_KEY") + " " + key,
	}, sep))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := t.width

	label := " " + text.Get("MESSAGES") + " "
	labelLen := utf8.RuneCountInString(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.StyleText(strings.Repeat(borderHorizontal, sideLen)+label+strings.Repeat(borderHorizontal, rightLen), renderer.StyleSubtle))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.StyleText("  "+text.Get("NO_MESSAGES"), renderer.StyleSubtle))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.StyleText(strings.Repeat(borderHorizontal, width), renderer.StyleSubtle))
}
