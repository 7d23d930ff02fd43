// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
)

// HostOptions configures a Host.
type HostOptions struct {
	Theme Theme
	Keys  KeyMap

	// Base draws the screen beneath the surfaces, width by height
	// cells. The bottom row of the terminal is the status line and is
	// not part of it.
	Base func(width, height int) string

	// OnScroll scrolls the base view when the wheel turns outside
	// every surface. Nil means the base does not scroll.
	OnScroll func(delta int)

	// Intercept sees every key before the layers and the tree.
	// Returning true consumes the key.
	Intercept func(message tea.KeyMsg) bool

	Logger *slog.Logger
}

// fadeTickMsg re-renders fading surfaces.
type fadeTickMsg struct{}

// Host is a bubbletea model that owns an overlay tree: it translates
// terminal input into overlay events, runs timers on the update loop,
// fades closing surfaces, and splices every visible layer over the
// base view.
type Host struct {
	tree    *overlay.Tree
	loop    *LoopClock
	options HostOptions
	help    help.Model
	fade    *FadeTracker
	layers  []Layer

	fadeTicking bool

	width  int
	height int

	status           string
	statusLevel      slog.Level
	statusGeneration uint64
}

// NewHost wraps tree. loop must be the tree's clock when timers are
// expected to fire; a nil loop leaves timer delivery to the caller.
func NewHost(tree *overlay.Tree, loop *LoopClock, options HostOptions) *Host {
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.Base == nil {
		options.Base = func(int, int) string { return "" }
	}
	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().Foreground(options.Theme.NormalText)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().Foreground(options.Theme.HelpText)
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(options.Theme.BorderColor)
	return &Host{
		tree:    tree,
		loop:    loop,
		options: options,
		help:    helpModel,
		fade:    NewFadeTracker(),
	}
}

// Tree returns the overlay tree.
func (host *Host) Tree() *overlay.Tree { return host.tree }

// Add registers layers for drawing.
func (host *Host) Add(layers ...Layer) {
	host.layers = append(host.layers, layers...)
}

// Status returns the status line message, if any.
func (host *Host) Status() string { return host.status }

// Init implements tea.Model.
func (host *Host) Init() tea.Cmd {
	if host.loop == nil {
		return nil
	}
	return host.loop.Listen()
}

// Update implements tea.Model.
func (host *Host) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var commands []tea.Cmd

	switch message := message.(type) {
	case tea.WindowSizeMsg:
		host.width, host.height = message.Width, message.Height
		host.tree.Viewport().Resize(geometry.Rect{Width: message.Width, Height: max(message.Height-1, 0)})

	case tea.KeyMsg:
		if key.Matches(message, host.options.Keys.Quit) {
			return host, tea.Quit
		}
		host.handleKey(message)

	case tea.MouseMsg:
		host.handleMouse(message)

	case tea.BlurMsg:
		host.tree.Blur()

	case TimerMsg:
		if host.loop != nil {
			host.loop.Fire(message)
			commands = append(commands, host.loop.Listen())
		}

	case fadeTickMsg:
		host.fadeTicking = false

	case LogRecordMsg:
		host.status = message.Summary
		host.statusLevel = message.Level
		host.statusGeneration++
		generation := host.statusGeneration
		commands = append(commands, tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
			return statusFadeMsg{generation: generation}
		}))

	case statusFadeMsg:
		if message.generation == host.statusGeneration {
			host.status = ""
		}
	}

	if host.fade.Advance(host.tree.Nodes(), host.tree.Clock().Now()) && !host.fadeTicking {
		host.fadeTicking = true
		commands = append(commands, tea.Tick(FadeTickInterval, func(time.Time) tea.Msg {
			return fadeTickMsg{}
		}))
	}
	return host, tea.Batch(commands...)
}

func (host *Host) handleKey(message tea.KeyMsg) {
	if host.options.Intercept != nil && host.options.Intercept(message) {
		return
	}
	for _, layer := range host.layers {
		if interceptor, ok := layer.(KeyInterceptor); ok && interceptor.InterceptKey(message, host.options.Keys) {
			return
		}
	}
	event, ok := TranslateKey(message, host.options.Keys)
	if !ok {
		return
	}
	if !host.tree.HandleKey(event) {
		host.options.Logger.Debug("key not consumed", "key", message.String())
	}
}

func (host *Host) handleMouse(message tea.MouseMsg) {
	event, ok := TranslateMouse(message)
	if !ok {
		return
	}
	host.tree.HandlePointer(event)
	if event.Action != overlay.PointerWheel {
		return
	}
	delta := WheelDelta(message)
	if layer := host.layerAt(event.Position); layer != nil {
		if scroller, ok := layer.(Scroller); ok {
			scroller.Scroll(delta)
		}
		return
	}
	if host.options.OnScroll != nil {
		host.options.OnScroll(delta)
		host.tree.HandleScroll()
	}
}

// layerAt returns the topmost visible layer containing point.
func (host *Host) layerAt(point geometry.Point) Layer {
	layers := host.drawOrder()
	for index := len(layers) - 1; index >= 0; index-- {
		node := layers[index].Node()
		if !node.Content().Visible() {
			continue
		}
		if rect, ok := node.FloatingRect(); ok && rect.Contains(point) {
			return layers[index]
		}
	}
	return nil
}

// drawOrder returns the layers with ancestors before descendants.
func (host *Host) drawOrder() []Layer {
	layers := make([]Layer, len(host.layers))
	copy(layers, host.layers)
	depth := func(node *overlay.Node) int {
		count := 0
		for parent := host.tree.Node(node.ParentID()); parent != nil; parent = host.tree.Node(parent.ParentID()) {
			count++
		}
		return count
	}
	sort.SliceStable(layers, func(i, j int) bool {
		return depth(layers[i].Node()) < depth(layers[j].Node())
	})
	return layers
}

// View implements tea.Model.
func (host *Host) View() string {
	if host.width <= 0 || host.height <= 0 {
		return ""
	}
	baseHeight := host.height - 1
	view := fitLines(host.options.Base(host.width, baseHeight), baseHeight)

	theme := host.options.Theme
	now := host.tree.Clock().Now()
	for _, layer := range host.drawOrder() {
		node := layer.Node()
		if !node.Content().Visible() {
			continue
		}
		rect, ok := node.FloatingRect()
		if !ok {
			continue
		}
		lines := FadeLines(theme, layer.Render(theme, rect), host.fade.Opacity(node.ID(), now))
		view = SpliceOverlay(view, lines, rect.X, rect.Y)
	}
	return view + "\n" + host.statusLine()
}

func (host *Host) statusLine() string {
	theme := host.options.Theme
	var line string
	if host.status != "" {
		color := theme.WarnText
		if host.statusLevel >= slog.LevelError {
			color = theme.ErrorText
		}
		line = lipgloss.NewStyle().Foreground(color).Render(" " + host.status)
	} else {
		line = " " + host.help.ShortHelpView(host.options.Keys.ShortHelp())
	}
	return ansi.Truncate(line, host.width, "…")
}

// fitLines pads or cuts view to exactly height lines.
func fitLines(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
