package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay  key.Binding
	reset       key.Binding
	finishNow   key.Binding
	mode        key.Binding
	next        key.Binding
	prev        key.Binding
	choose      key.Binding
	category    key.Binding
	duration    key.Binding
	tab         key.Binding
	period      key.Binding
	drill       key.Binding
	scrollUp    key.Binding
	scrollDown  key.Binding
	addCategory key.Binding
	delCategory key.Binding
	quit        key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	finishNow: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finish now"),
	),
	mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mode"),
	),
	next: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/k", "select dish"),
	),
	prev: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("", ""),
	),
	choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "put on stove"),
	),
	category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "category"),
	),
	duration: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit duration"),
	),
	tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "stove/history"),
	),
	period: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1/2/3", "day/week/month"),
	),
	drill: key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "drill down"),
	),
	scrollUp: key.NewBinding(
		key.WithKeys("pgup", "K"),
		key.WithHelp("pgup", "scroll up"),
	),
	scrollDown: key.NewBinding(
		key.WithKeys("pgdown", "J"),
		key.WithHelp("pgdn", "scroll down"),
	),
	addCategory: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add category"),
	),
	delCategory: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove category"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
