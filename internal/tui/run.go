package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adnxy/react-native-lupin/internal/types"
)

// Run opens the interactive findings browser and blocks until the user quits.
func Run(findings []types.Finding) error {
	p := tea.NewProgram(NewModel(findings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
