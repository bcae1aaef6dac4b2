package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/they4kman/termsweep/game"
)

type stage int

const (
	stageMenu stage = iota
	stagePlay
)

type Options struct {
	// Base configuration; the chosen difficulty overrides its dimensions.
	Config       game.GameConfig
	Difficulties []game.Difficulty
	// Skip the menu and start straight away with Config as given.
	SkipMenu bool
}

// Model is the bubbletea model for the whole program: a difficulty menu
// followed by the game itself.
type Model struct {
	options Options
	stage   stage
	menu    menuModel
	play    playModel
}

func New(options Options) (Model, error) {
	if len(options.Difficulties) == 0 {
		options.Difficulties = game.Difficulties
	}

	m := Model{
		options: options,
		stage:   stageMenu,
		menu:    newMenuModel(options.Difficulties),
	}

	if options.SkipMenu {
		session, err := game.StartGame(options.Config)
		if err != nil {
			return Model{}, err
		}
		m.play = newPlayModel(session, customTitle(options.Config))
		m.stage = stagePlay
	}
	return m, nil
}

func customTitle(config game.GameConfig) string {
	return game.Difficulty{Name: "custom", Width: config.Width, Height: config.Height, NumMines: config.NumMines}.String()
}

func (m Model) Init() tea.Cmd {
	if m.stage == stagePlay {
		return m.play.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.stage {
	case stageMenu:
		m.menu, cmd = m.menu.Update(msg)
		if m.menu.chosen {
			m.menu.chosen = false
			return m.start(m.menu.selected())
		}
	case stagePlay:
		m.play, cmd = m.play.Update(msg)
		if m.play.toMenu {
			m.play.toMenu = false
			m.stage = stageMenu
			m.menu.err = nil
		}
	}
	return m, cmd
}

func (m Model) start(difficulty game.Difficulty) (tea.Model, tea.Cmd) {
	config := m.options.Config
	difficulty.Apply(&config)

	session, err := game.StartGame(config)
	if err != nil {
		m.menu.err = err
		return m, nil
	}

	m.play = newPlayModel(session, difficulty.String())
	m.stage = stagePlay
	return m, m.play.Init()
}

func (m Model) View() string {
	if m.stage == stageMenu {
		return m.menu.View()
	}
	return m.play.View()
}

func Run(options Options) error {
	m, err := New(options)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
