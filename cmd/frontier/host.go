package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/game"
	"github.com/cory-johannsen/frontier/internal/game/state"
	"github.com/cory-johannsen/frontier/internal/save"
)

// hostCommand is a command handled by the host rather than the game.
type hostCommand int

const (
	hostNone hostCommand = iota
	hostSave
	hostLoad
	hostSlots
	hostHelp
	hostQuit
)

var errUnknownCommand = errors.New("unknown command")

const helpText = `commands:
  up | down            move the highlight
  <n> | select <n>     pick entry n (party member, card, choice, recruit)
  ok                   confirm
  back                 cancel, retreat or return
  end                  end the combat turn
  missions | recruit   leave the base
  build <id>           construct a building
  heal <n> | tavern <n> treat roster entry n
  rest                 pass a day
  save | load | slots  manage the save slot
  help | quit`

// parseCommand maps one input line onto a game input or a host command.
func parseCommand(line string) (state.Input, hostCommand, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return state.Input{}, hostNone, errUnknownCommand
	}
	arg := func() (int, error) {
		if len(fields) < 2 {
			return 0, fmt.Errorf("%s needs a number", fields[0])
		}
		return strconv.Atoi(fields[1])
	}

	if n, err := strconv.Atoi(fields[0]); err == nil {
		return state.Input{Action: state.ActionSelect, Index: n}, hostNone, nil
	}
	switch fields[0] {
	case "up", "w", "k":
		return state.Input{Action: state.ActionUp}, hostNone, nil
	case "down", "s", "j":
		return state.Input{Action: state.ActionDown}, hostNone, nil
	case "select":
		n, err := arg()
		return state.Input{Action: state.ActionSelect, Index: n}, hostNone, err
	case "ok", "confirm", "enter", "go":
		return state.Input{Action: state.ActionConfirm}, hostNone, nil
	case "back", "cancel", "retreat", "esc":
		return state.Input{Action: state.ActionCancel}, hostNone, nil
	case "end", "e":
		return state.Input{Action: state.ActionEndTurn}, hostNone, nil
	case "missions", "m":
		return state.Input{Action: state.ActionMissions}, hostNone, nil
	case "recruit", "r":
		return state.Input{Action: state.ActionRecruit}, hostNone, nil
	case "build", "b":
		if len(fields) < 2 {
			return state.Input{}, hostNone, errors.New("build needs a building id")
		}
		return state.Input{Action: state.ActionBuild, Target: fields[1]}, hostNone, nil
	case "heal", "h":
		n, err := arg()
		return state.Input{Action: state.ActionHeal, Index: n}, hostNone, err
	case "tavern", "t":
		n, err := arg()
		return state.Input{Action: state.ActionTavern, Index: n}, hostNone, err
	case "rest":
		return state.Input{Action: state.ActionRestDay}, hostNone, nil
	case "save":
		return state.Input{}, hostSave, nil
	case "load":
		return state.Input{}, hostLoad, nil
	case "slots":
		return state.Input{}, hostSlots, nil
	case "help", "?":
		return state.Input{}, hostHelp, nil
	case "quit", "exit", "q":
		return state.Input{}, hostQuit, nil
	}
	return state.Input{}, hostNone, fmt.Errorf("%w: %q", errUnknownCommand, fields[0])
}

type host struct {
	game   *game.Game
	store  save.Store
	slot   string
	out    io.Writer
	logger *zap.Logger
}

// run feeds lines to the game until quit or end of input, redrawing after each.
func (h *host) run(ctx context.Context, in *bufio.Scanner) error {
	r := &textRenderer{w: h.out}
	h.game.Draw(r)
	for {
		fmt.Fprint(h.out, "> ")
		if !in.Scan() {
			return in.Err()
		}
		inp, cmd, err := parseCommand(in.Text())
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		switch cmd {
		case hostQuit:
			return nil
		case hostHelp:
			fmt.Fprintln(h.out, helpText)
			continue
		case hostSave:
			h.report(h.game.Save(ctx, h.store, h.slot), "saved")
		case hostLoad:
			h.report(h.game.Load(ctx, h.store, h.slot), "loaded")
		case hostSlots:
			slots, err := h.store.List(ctx)
			h.report(err, strings.Join(slots, ", "))
			continue
		default:
			h.game.Update(inp)
		}
		h.game.Draw(r)
	}
}

func (h *host) report(err error, ok string) {
	if err != nil {
		h.logger.Warn("save operation failed", zap.Error(err))
		fmt.Fprintln(h.out, "error:", err)
		return
	}
	fmt.Fprintln(h.out, ok)
}

// textRenderer draws game states as plain text lines.
type textRenderer struct {
	w io.Writer
}

func (t *textRenderer) Title(text string) {
	fmt.Fprintf(t.w, "\n== %s ==\n", text)
}

func (t *textRenderer) Line(text string) { fmt.Fprintln(t.w, text) }

func (t *textRenderer) Option(index int, text string, selected bool) {
	mark := " "
	if selected {
		mark = ">"
	}
	fmt.Fprintf(t.w, "%s %d) %s\n", mark, index, text)
}

func (t *textRenderer) Meter(label string, current, total int) {
	const width = 20
	filled := 0
	if total > 0 {
		filled = min(width, max(0, current)*width/total)
	}
	fmt.Fprintf(t.w, "%-18s [%s%s] %d/%d\n", label, strings.Repeat("#", filled), strings.Repeat(".", width-filled), current, total)
}
