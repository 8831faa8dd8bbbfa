package ui

import "github.com/charmbracelet/bubbletea"

func IsQuit(msg tea.KeyMsg) bool {
	return msg.String() == "ctrl+c"
}

func IsBack(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEscape
}

func IsUp(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyUp || msg.String() == "k"
}

func IsDown(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyDown || msg.String() == "j"
}

func IsLeft(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyLeft || msg.String() == "h"
}

func IsRight(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRight || msg.String() == "l"
}

func IsEnter(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter
}

func IsTab(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyTab
}

func IsShiftTab(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyShiftTab
}
