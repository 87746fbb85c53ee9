// Package tui is a small dashboard over the habit list: streak status at a
// glance, tracking with a single keypress, and a form for adding habits.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/mkessler-dev/habitkit/internal/analytics"
	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/period"
	"github.com/mkessler-dev/habitkit/internal/storage"
	"github.com/mkessler-dev/habitkit/internal/utils"
)

type sessionState int

const (
	stateList sessionState = iota
	stateAdd
	stateConfirmDelete
)

type KeyMap struct {
	Track     key.Binding
	Add       key.Binding
	Archive   key.Binding
	Unarchive key.Binding
	Delete    key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Track: key.NewBinding(
			key.WithKeys("t", "enter"),
			key.WithHelp("t", "track"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Unarchive: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unarchive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type habitForm struct {
	Name        string
	Description string
	Periodicity period.Periodicity
}

type Model struct {
	store    storage.Provider
	svc      *analytics.Service
	state    sessionState
	keys     KeyMap
	list     list.Model
	form     *huh.Form
	formData *habitForm
	toDelete *item
	status   string
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(true)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Track, keys.Add, keys.Archive, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Track, keys.Add, keys.Archive, keys.Unarchive, keys.Delete}
	}

	m := Model{
		store: store,
		svc:   analytics.New(store),
		keys:  keys,
		list:  l,
	}
	m.refresh()
	return m
}

func (m *Model) now() time.Time {
	settings, err := m.store.GetSettings()
	if err != nil {
		return time.Now()
	}
	now, err := utils.NowFromSettings(settings)
	if err != nil {
		return time.Now()
	}
	return now
}

func (m *Model) refresh() {
	now := m.now()
	habits, err := m.store.GetAllHabits(true)
	if err != nil {
		m.status = err.Error()
		return
	}

	items := make([]list.Item, 0, len(habits))
	for _, habit := range habits {
		it := item{archived: habit.ArchivedAt != nil}
		if it.archived {
			it.hs = analytics.HabitStreaks{Habit: habit}
		} else {
			hs, err := m.svc.StreaksFor(habit.Name, now)
			if err != nil {
				m.status = err.Error()
				continue
			}
			it.hs = hs
			it.done = hs.Result.LastPeriod != nil && hs.Result.LastPeriod.Contains(now)
		}
		items = append(items, it)
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
	}

	switch m.state {
	case stateAdd:
		return m.updateAdd(msg)
	case stateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Add):
			m.formData = &habitForm{Periodicity: period.Daily}
			m.form = newHabitForm(m.formData)
			m.state = stateAdd
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Track):
			if it, ok := m.list.SelectedItem().(item); ok && !it.archived {
				m.track(it)
			}
			return m, nil

		case key.Matches(msg, m.keys.Archive):
			if it, ok := m.list.SelectedItem().(item); ok && !it.archived {
				if err := m.store.ArchiveHabit(it.hs.Habit.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("archived %q", it.hs.Habit.Name)
					m.refresh()
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Unarchive):
			if it, ok := m.list.SelectedItem().(item); ok && it.archived {
				if err := m.store.UnarchiveHabit(it.hs.Habit.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("unarchived %q", it.hs.Habit.Name)
					m.refresh()
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if it, ok := m.list.SelectedItem().(item); ok {
				m.toDelete = &it
				m.state = stateConfirmDelete
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) track(it item) {
	completion := models.Completion{
		ID:          uuid.New().String(),
		HabitID:     it.hs.Habit.ID,
		CompletedAt: m.now(),
	}
	if err := m.store.AddCompletion(completion); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("tracked %q", it.hs.Habit.Name)
	m.refresh()
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateList
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		habit := models.Habit{
			ID:          uuid.New().String(),
			Name:        m.formData.Name,
			Description: m.formData.Description,
			Periodicity: m.formData.Periodicity,
			Goal:        models.NormalizeGoal(m.formData.Periodicity, 0),
			CreatedAt:   time.Now(),
		}
		if err := habit.Validate(); err != nil {
			m.status = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		if err := m.store.AddHabit(habit); err != nil {
			m.status = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.status = fmt.Sprintf("added %q", habit.Name)
		m.state = stateList
		m.refresh()
	case huh.StateAborted:
		m.state = stateList
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.store.DeleteHabit(m.toDelete.hs.Habit.ID); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("deleted %q", m.toDelete.hs.Habit.Name)
				m.refresh()
			}
			m.toDelete = nil
			m.state = stateList
		case "n", "N", "esc":
			m.toDelete = nil
			m.state = stateList
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateAdd:
		return docStyle.Render(titleStyle.Render("Add habit") + "\n\n" + m.form.View())
	case stateConfirmDelete:
		prompt := brokenStyle.Render(fmt.Sprintf("Delete %q and its entire completion log?", m.toDelete.hs.Habit.Name))
		return docStyle.Render(prompt + "\n\n" + statusStyle.Render("y to delete, n to cancel"))
	}

	view := titleStyle.Render("habitkit") + "\n\n" + m.list.View()
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}
	return docStyle.Render(view)
}

func newHabitForm(fm *habitForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewSelect[period.Periodicity]().
				Title("Periodicity").
				Options(
					huh.NewOption("Daily", period.Daily),
					huh.NewOption("Weekly", period.Weekly),
				).
				Value(&fm.Periodicity),
		),
	)
}
