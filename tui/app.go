package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"movie-booking-cli/model"
	"movie-booking-cli/service"
)

const (
	appTitle           = "Movie Ticket Booking System"
	defaultSeatsPerRow = 5
	gridIndent         = "  "
)

type appState int

const (
	stateSelectMovie appState = iota
	stateShowSeats
	stateNotice
)

type noticeKind int

const (
	noticeSuccess noticeKind = iota
	noticeFailure
)

type notice struct {
	kind    noticeKind
	message string
	detail  string
}

// Options tune the shell. Zero values fall back to defaults.
type Options struct {
	SeatsPerRow int
	Logger      *zap.Logger
}

type appModel struct {
	booking *service.Booking
	log     *zap.Logger

	state appState

	width  int
	height int

	selected    int
	cursor      int
	seatsPerRow int

	movieList list.Model
	notice    notice
}

// seatPressedMsg is dispatched by an enabled seat control. The movie index is
// captured when the control is rendered.
type seatPressedMsg struct {
	movie int
	seat  int
}

// seatControl is the declarative description of one seat button.
type seatControl struct {
	Number  int
	Enabled bool
	OnPress tea.Cmd
}

func New(booking *service.Booking, opts Options) tea.Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	perRow := opts.SeatsPerRow
	if perRow <= 0 {
		perRow = defaultSeatsPerRow
	}

	m := appModel{
		booking:     booking,
		log:         log.With(zap.String("component", "tui")),
		state:       stateSelectMovie,
		seatsPerRow: perRow,
	}
	m.movieList = newList("Select Movie")
	m.movieList.SetItems(buildMovieItems(booking))
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var cmd tea.Cmd
		var handled bool
		m, cmd, handled = m.handleKey(msg)
		if handled {
			return m, cmd
		}
		// fallthrough to component update

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case seatPressedMsg:
		return m.bookSeat(msg), nil
	}

	var cmd tea.Cmd
	if m.state == stateSelectMovie {
		m.movieList, cmd = m.movieList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateShowSeats:
		return header + "\n\n" + m.seatPanelView()
	case stateNotice:
		return header + "\n\n" + m.noticeView()
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render(appTitle)
	sub := []string{}
	if m.state != stateSelectMovie {
		if movie := m.currentMovie(); movie != nil {
			sub = append(sub, fmt.Sprintf("Movie: %s", movie))
			sub = append(sub, fmt.Sprintf("Seats: %d/%d available", m.booking.AvailableSeats(movie), len(movie.Seats)))
		}
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • type to filter • enter select movie"
	switch m.state {
	case stateShowSeats:
		hints = "q quit • esc movies • tab/shift+tab change movie • arrows move • enter book • 1-0 jump to seat"
	case stateNotice:
		hints = "q/ctrl+c quit • enter/esc continue"
	}
	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "q":
		if m.state != stateSelectMovie {
			return m, tea.Quit, true
		}
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		return m.goBack(), nil, true
	}

	switch m.state {
	case stateSelectMovie:
		if msg.Type == tea.KeyEnter {
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.movieList.ResetFilter()
			m.selectMovie(item.index)
			m.state = stateShowSeats
			return m, nil, true
		}
	case stateShowSeats:
		return m.handleSeatKey(msg)
	case stateNotice:
		switch msg.String() {
		case "enter", " ":
			m.state = stateShowSeats
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	controls := m.seatControls()
	key := msg.String()
	switch key {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil, true
	case "right", "l":
		if m.cursor < len(controls)-1 {
			m.cursor++
		}
		return m, nil, true
	case "up", "k":
		if m.cursor-m.seatsPerRow >= 0 {
			m.cursor -= m.seatsPerRow
		}
		return m, nil, true
	case "down", "j":
		if m.cursor+m.seatsPerRow < len(controls) {
			m.cursor += m.seatsPerRow
		}
		return m, nil, true
	case "tab", "]":
		m.selectMovie(m.selected + 1)
		return m, nil, true
	case "shift+tab", "[":
		m.selectMovie(m.selected - 1)
		return m, nil, true
	case "enter", " ":
		if m.cursor < 0 || m.cursor >= len(controls) {
			return m, nil, true
		}
		return m, controls[m.cursor].OnPress, true
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		n, _ := strconv.Atoi(key)
		if n == 0 {
			n = 10
		}
		if n <= len(controls) {
			m.cursor = n - 1
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state != stateShowSeats {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	controls := m.seatControls()
	index, ok := m.seatIndexAt(msg.X, msg.Y, len(controls))
	if !ok {
		return m, nil
	}
	m.cursor = index
	return m, controls[index].OnPress
}

// bookSeat applies a seat press to the booking model and turns the outcome into a notice.
func (m appModel) bookSeat(msg seatPressedMsg) appModel {
	m.state = stateNotice

	movie, err := m.booking.Movie(msg.movie)
	if err != nil {
		m.notice = notice{kind: noticeFailure, message: err.Error()}
		return m
	}

	ticket, err := m.booking.BookSeat(movie, msg.seat)
	switch {
	case err == nil:
		m.notice = notice{
			kind:    noticeSuccess,
			message: fmt.Sprintf("Seat %d booked successfully for %s.", ticket.Seat, ticket.Title),
			detail:  fmt.Sprintf("Reference: %s", ticket.Reference),
		}
	case service.IsUnavailable(err):
		m.notice = notice{kind: noticeFailure, message: fmt.Sprintf("Seat %d is not available.", msg.seat)}
	default:
		m.log.Warn("Seat press failed", zap.Int("seat", msg.seat), zap.Error(err))
		m.notice = notice{kind: noticeFailure, message: err.Error()}
	}
	return m
}

func (m appModel) goBack() appModel {
	switch m.state {
	case stateShowSeats:
		m.state = stateSelectMovie
	case stateNotice:
		m.state = stateShowSeats
	}
	return m
}

func (m *appModel) selectMovie(index int) {
	count := len(m.booking.Movies())
	if count == 0 {
		return
	}
	index %= count
	if index < 0 {
		index += count
	}
	m.selected = index
	m.cursor = 0
	m.movieList.Select(index)
}

func (m appModel) currentMovie() *model.Movie {
	movie, err := m.booking.Movie(m.selected)
	if err != nil {
		return nil
	}
	return movie
}

func (m appModel) seatControls() []seatControl {
	return renderSeatPanel(m.currentMovie(), m.dispatchSeat)
}

func (m appModel) dispatchSeat(seat int) tea.Cmd {
	movie := m.selected
	return func() tea.Msg {
		return seatPressedMsg{movie: movie, seat: seat}
	}
}

// renderSeatPanel describes the seat buttons of movie in seat-number order.
// Booked seats get no press action.
func renderSeatPanel(movie *model.Movie, dispatch func(seat int) tea.Cmd) []seatControl {
	if movie == nil {
		return nil
	}
	controls := make([]seatControl, 0, len(movie.Seats))
	for _, seat := range movie.Seats {
		control := seatControl{Number: seat.Number, Enabled: seat.Available()}
		if control.Enabled {
			control.OnPress = dispatch(seat.Number)
		}
		controls = append(controls, control)
	}
	return controls
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	if m.state == stateSelectMovie {
		return &m.movieList
	}
	return nil
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}
