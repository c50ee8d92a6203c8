package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"carrego/internal/domain"
	"carrego/internal/services"
	"carrego/internal/state"
	"carrego/internal/theme"
)

// uiState identifies the active screen
type uiState int

const (
	stateRestoring uiState = iota
	stateLogin
	stateRegister
	stateOTP
	stateMenu
	stateTrips
	stateTripForm
	stateVehicles
	stateVehicleForm
	stateReports
	stateReportForm
	stateProfile
)

var menuItems = []string{"Trips", "Vehicles", "Reports", "Complete profile"}

const defaultErrorClearDelay = 4 * time.Second

// Dependencies carries the wired services the model runs on
type Dependencies struct {
	Auth     *services.AuthService
	Trips    *services.TripService
	Vehicles *services.VehicleService
	Reports  *services.ReportService
	Profile  *services.ProfileService

	DefaultMode     domain.TripMode
	ErrorClearDelay time.Duration
}

type pendingUpload struct {
	which string
	path  string
}

// Model is the root bubbletea model. All state containers are mutated only
// from Update; commands never touch them directly.
type Model struct {
	state  uiState
	width  int
	height int

	keys    KeyMap
	spinner spinner.Model
	errors  *ErrorManager

	session       *state.SessionStore
	tripsState    *state.TripsStore
	vehiclesState *state.VehiclesStore
	reportsState  *state.ReportsStore
	profileState  *state.ProfileStore

	auth     *services.AuthService
	trips    *services.TripService
	vehicles *services.VehicleService
	reports  *services.ReportService
	profile  *services.ProfileService

	loginForm    *LoginForm
	registerForm *RegisterForm
	otpForm      *OTPForm
	tripForm     *TripForm
	vehicleForm  *VehicleForm
	reportForm   *ReportForm
	wizard       *ProfileWizard

	menuIndex    int
	tripIndex    int
	vehicleIndex int
	reportIndex  int

	uploadQueue   []pendingUpload
	submitPending bool // profile submit deferred until uploads drain
}

// NewModel creates the root model with fresh state containers
func NewModel(deps Dependencies) *Model {
	mode := deps.DefaultMode
	if !domain.ValidMode(string(mode)) {
		mode = domain.ModeAir
	}
	delay := deps.ErrorClearDelay
	if delay <= 0 {
		delay = defaultErrorClearDelay
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorPrimary)

	return &Model{
		state:         stateRestoring,
		keys:          NewKeyMap(),
		spinner:       sp,
		errors:        NewErrorManager(delay),
		session:       state.NewSessionStore(),
		tripsState:    state.NewTripsStore(mode),
		vehiclesState: state.NewVehiclesStore(),
		reportsState:  state.NewReportsStore(),
		profileState:  state.NewProfileStore(),
		auth:          deps.Auth,
		trips:         deps.Trips,
		vehicles:      deps.Vehicles,
		reports:       deps.Reports,
		profile:       deps.Profile,
	}
}

func (m *Model) Init() tea.Cmd {
	m.session.Begin()
	return tea.Batch(m.spinner.Tick, m.restoreSessionCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearErrorMsg:
		m.errors.ClearError()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && !m.inForm() {
			return m, tea.Quit
		}
	}

	if model, cmd, handled := m.handleResult(msg); handled {
		return model, cmd
	}

	return m.handleScreen(msg)
}

// inForm reports whether a huh form currently owns the keyboard, so global
// shortcuts like q don't swallow typed text
func (m *Model) inForm() bool {
	switch m.state {
	case stateLogin, stateRegister, stateOTP, stateTripForm,
		stateVehicleForm, stateReportForm, stateProfile:
		return true
	}
	return false
}

// handleResult applies request outcomes to the state containers. Returns
// handled=false for messages that are not request results.
func (m *Model) handleResult(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case sessionRestoredMsg:
		m.session.FinishRestore(msg.session)
		m.session.MarkLaunched()
		if m.session.IsAuthenticated() {
			model, cmd := m.enterMenu()
			return model, cmd, true
		}
		if msg.err != nil {
			// Session file unreadable; signed out, but the user should know
			model, cmd := m.showError(msg.err, m.enterLogin)
			return model, cmd, true
		}
		model, cmd := m.enterLogin()
		return model, cmd, true

	case loginResultMsg:
		if msg.err != nil {
			m.session.Fail(toAPIErr(msg.err))
			model, cmd := m.showError(msg.err, m.enterLogin)
			return model, cmd, true
		}
		m.session.Authenticate(msg.session.User, msg.session.Token)
		model, cmd := m.enterMenu()
		return model, cmd, true

	case registerResultMsg:
		if msg.err != nil {
			m.session.Fail(toAPIErr(msg.err))
			model, cmd := m.showError(msg.err, m.enterRegister)
			return model, cmd, true
		}
		m.session.Succeed()
		model, cmd := m.enterOTP(msg.user.Email)
		return model, cmd, true

	case otpVerifiedMsg:
		if msg.err != nil {
			m.session.Fail(toAPIErr(msg.err))
			model, cmd := m.showError(msg.err, func() (tea.Model, tea.Cmd) { return m.enterOTP(m.otpForm.Email()) })
			return model, cmd, true
		}
		m.session.Authenticate(msg.session.User, msg.session.Token)
		model, cmd := m.enterMenu()
		return model, cmd, true

	case otpResentMsg:
		if msg.err != nil {
			m.session.Resend.Fail(toAPIErr(msg.err))
			return m, m.setError(msg.err), true
		}
		m.session.Resend.Succeed()
		return m, nil, true

	case loggedOutMsg:
		// Local session clears even when clearing storage failed
		m.session.Reset()
		if msg.err != nil {
			model, cmd := m.showError(msg.err, m.enterLogin)
			return model, cmd, true
		}
		model, cmd := m.enterLogin()
		return model, cmd, true

	case tripsLoadedMsg:
		if msg.mode != m.tripsState.Mode() {
			// Stale response from before a mode switch. The snapshot stays
			// untouched, but the fetch lifecycle must still complete so the
			// current mode's refresh (refused while this request was
			// pending) can go out now.
			m.tripsState.Fetch.Succeed()
			return m, m.refreshTrips(), true
		}
		m.tripsState.FinishFetch(msg.trips, toAPIErr(msg.err))
		return m, m.setError(msg.err), true

	case cachedTripsMsg:
		if msg.mode == m.tripsState.Mode() {
			m.tripsState.SetCached(msg.trips)
		}
		return m, nil, true

	case tripSavedMsg:
		m.tripsState.FinishSave(msg.trip, toAPIErr(msg.err))
		if msg.err != nil {
			return m, m.setError(msg.err), true
		}
		m.state = stateTrips
		return m, m.refreshTrips(), true

	case airportsFoundMsg:
		m.tripsState.FinishAirportSearch(msg.airports, toAPIErr(msg.err))
		if msg.err != nil {
			m.state = stateTrips
			return m, m.setError(msg.err), true
		}
		if m.tripForm != nil {
			m.tripForm.SetAirports(msg.airports)
			return m, m.tripForm.Init(), true
		}
		return m, nil, true

	case marineReferenceMsg:
		m.tripsState.FinishPortSearch(msg.seaports, toAPIErr(msg.err))
		m.tripsState.FinishOperators(msg.operators, toAPIErr(msg.err))
		if msg.err != nil {
			m.state = stateTrips
			return m, m.setError(msg.err), true
		}
		if m.tripForm != nil {
			m.tripForm.SetMarine(msg.seaports, msg.operators)
			return m, m.tripForm.Init(), true
		}
		return m, nil, true

	case vehiclesLoadedMsg:
		m.vehiclesState.FinishFetch(msg.vehicles, toAPIErr(msg.err))
		m.clampVehicleIndex()
		return m, m.setError(msg.err), true

	case cachedVehiclesMsg:
		m.vehiclesState.SetCached(msg.vehicles)
		m.clampVehicleIndex()
		return m, nil, true

	case vehicleAddedMsg:
		m.vehiclesState.FinishAdd(msg.vehicle, toAPIErr(msg.err))
		if msg.err != nil {
			return m, m.setError(msg.err), true
		}
		m.state = stateVehicles
		return m, nil, true

	case vehicleDeletedMsg:
		m.vehiclesState.FinishDelete(msg.id, toAPIErr(msg.err))
		m.clampVehicleIndex()
		return m, m.setError(msg.err), true

	case reportsLoadedMsg:
		m.reportsState.FinishFetch(msg.reports, toAPIErr(msg.err))
		m.clampReportIndex()
		return m, m.setError(msg.err), true

	case cachedReportsMsg:
		m.reportsState.SetCached(msg.reports)
		m.clampReportIndex()
		return m, nil, true

	case reportSubmittedMsg:
		// The pending list stays server-authoritative: no local append
		m.reportsState.FinishSubmit(toAPIErr(msg.err))
		if msg.err != nil {
			return m, m.setError(msg.err), true
		}
		m.state = stateReports
		return m, m.refreshReports(), true

	case profileCompletedMsg:
		m.profileState.FinishSubmit(toAPIErr(msg.err))
		if msg.err != nil {
			return m, m.setError(msg.err), true
		}
		m.session.SetProfile(msg.profile)
		model, cmd := m.enterMenu()
		return model, cmd, true

	case documentUploadedMsg:
		m.profileState.FinishUpload(toAPIErr(msg.err))
		if msg.err != nil {
			m.uploadQueue = nil
			m.submitPending = false
			return m, m.setError(msg.err), true
		}
		patch := domain.ProfilePatch{}
		if msg.which == "selfie" {
			patch.SelfieURL = &msg.url
		} else {
			patch.IDDocumentURL = &msg.url
		}
		m.profileState.ApplyPatch(patch)
		return m, m.nextUploadOrSubmit(), true
	}

	return m, nil, false
}

// nextUploadOrSubmit dispatches the next queued document upload, or the
// deferred complete-profile submission once the queue is drained
func (m *Model) nextUploadOrSubmit() tea.Cmd {
	if len(m.uploadQueue) > 0 {
		next := m.uploadQueue[0]
		m.uploadQueue = m.uploadQueue[1:]
		if m.profileState.Upload.Begin() {
			return m.uploadDocumentCmd(next.which, next.path)
		}
		return nil
	}
	if m.submitPending {
		m.submitPending = false
		if m.profileState.Submit.Begin() {
			return m.completeProfileCmd(m.profileState.Draft())
		}
	}
	return nil
}

// handleScreen routes remaining messages to the active screen
func (m *Model) handleScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateRestoring:
		return m, nil
	case stateLogin:
		return m.updateLogin(msg)
	case stateRegister:
		return m.updateRegister(msg)
	case stateOTP:
		return m.updateOTP(msg)
	case stateMenu:
		return m.updateMenu(msg)
	case stateTrips:
		return m.updateTrips(msg)
	case stateTripForm:
		return m.updateTripForm(msg)
	case stateVehicles:
		return m.updateVehicles(msg)
	case stateVehicleForm:
		return m.updateVehicleForm(msg)
	case stateReports:
		return m.updateReports(msg)
	case stateReportForm:
		return m.updateReportForm(msg)
	case stateProfile:
		return m.updateProfile(msg)
	}
	return m, nil
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.loginForm.Update(msg)
	if !m.loginForm.Completed {
		return m, cmd
	}
	if m.loginForm.Cancelled {
		return m.enterRegister()
	}
	if !m.session.Begin() {
		return m, cmd
	}
	creds := m.loginForm.Credentials()
	return m, tea.Batch(cmd, m.spinner.Tick, m.loginCmd(creds))
}

func (m *Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.registerForm.Update(msg)
	if !m.registerForm.Completed {
		return m, cmd
	}
	if m.registerForm.Cancelled {
		return m.enterLogin()
	}
	if !m.session.Begin() {
		return m, cmd
	}
	reg := m.registerForm.Registration()
	return m, tea.Batch(cmd, m.spinner.Tick, m.registerCmd(reg))
}

func (m *Model) updateOTP(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.otpForm.Update(msg)
	if m.otpForm.ResendWanted {
		m.otpForm.ResendWanted = false
		if m.session.Resend.Begin() {
			return m, tea.Batch(cmd, m.resendOTPCmd(m.otpForm.Email()))
		}
		return m, cmd
	}
	if !m.otpForm.Completed {
		return m, cmd
	}
	if m.otpForm.Cancelled {
		return m.enterLogin()
	}
	if !m.session.Begin() {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.spinner.Tick, m.verifyOTPCmd(m.otpForm.Email(), m.otpForm.Code()))
}

func (m *Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case key.Matches(keyMsg, m.keys.Logout):
		if m.session.Begin() {
			return m, tea.Batch(m.spinner.Tick, m.logoutCmd())
		}
	case key.Matches(keyMsg, m.keys.Select):
		switch m.menuIndex {
		case 0:
			return m.enterTrips()
		case 1:
			return m.enterVehicles()
		case 2:
			return m.enterReports()
		case 3:
			return m.enterProfile()
		}
	}
	return m, nil
}

func (m *Model) updateTrips(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.state = stateMenu
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		if m.tripIndex > 0 {
			m.tripIndex--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.tripIndex < len(m.tripsState.Trips())-1 {
			m.tripIndex++
		}
	case key.Matches(keyMsg, m.keys.Refresh):
		return m, m.refreshTrips()
	case key.Matches(keyMsg, m.keys.New):
		m.tripForm = NewTripForm(m.tripsState.Mode(), m.vehiclesState.Vehicles())
		m.state = stateTripForm
		return m, m.tripForm.Init()
	case keyMsg.String() == "tab":
		m.tripsState.SetMode(nextMode(m.tripsState.Mode()))
		m.tripIndex = 0
		return m, m.refreshTrips()
	}
	return m, nil
}

func (m *Model) updateTripForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.tripForm.Update(msg)
	if m.tripForm.Cancelled {
		m.tripForm = nil
		m.state = stateTrips
		return m, nil
	}
	if m.tripForm.LookupReady {
		if !m.tripsState.Lookup.Begin() {
			return m, cmd
		}
		query := m.tripForm.Query()
		switch m.tripForm.Mode() {
		case domain.ModeMarine:
			return m, tea.Batch(cmd, m.spinner.Tick, m.marineReferenceCmd(query))
		default:
			return m, tea.Batch(cmd, m.spinner.Tick, m.searchAirportsCmd(query))
		}
	}
	if m.tripForm.Completed {
		if !m.tripsState.Save.Begin() {
			return m, cmd
		}
		trip := m.tripForm.Trip()
		m.tripForm = nil
		return m, tea.Batch(cmd, m.spinner.Tick, m.saveTripCmd(trip))
	}
	return m, cmd
}

func (m *Model) updateVehicles(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.state = stateMenu
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		if m.vehicleIndex > 0 {
			m.vehicleIndex--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.vehicleIndex < len(m.vehiclesState.Vehicles())-1 {
			m.vehicleIndex++
		}
	case key.Matches(keyMsg, m.keys.Refresh):
		return m, m.refreshVehicles()
	case key.Matches(keyMsg, m.keys.New):
		m.vehicleForm = NewVehicleForm()
		m.state = stateVehicleForm
		return m, m.vehicleForm.Init()
	case key.Matches(keyMsg, m.keys.Delete):
		vehicles := m.vehiclesState.Vehicles()
		if m.vehicleIndex < len(vehicles) && m.vehiclesState.Delete.Begin() {
			return m, tea.Batch(m.spinner.Tick, m.deleteVehicleCmd(vehicles[m.vehicleIndex].ID))
		}
	}
	return m, nil
}

func (m *Model) updateVehicleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.vehicleForm.Update(msg)
	if !m.vehicleForm.Completed {
		return m, cmd
	}
	if m.vehicleForm.Cancelled {
		m.vehicleForm = nil
		m.state = stateVehicles
		return m, nil
	}
	if !m.vehiclesState.Add.Begin() {
		return m, cmd
	}
	vehicle := m.vehicleForm.Vehicle()
	m.vehicleForm = nil
	return m, tea.Batch(cmd, m.spinner.Tick, m.addVehicleCmd(vehicle))
}

func (m *Model) updateReports(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.state = stateMenu
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		if m.reportIndex > 0 {
			m.reportIndex--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.reportIndex < len(m.reportsState.Reports())-1 {
			m.reportIndex++
		}
	case key.Matches(keyMsg, m.keys.Refresh):
		return m, m.refreshReports()
	case key.Matches(keyMsg, m.keys.New):
		m.reportForm = NewReportForm()
		m.state = stateReportForm
		return m, m.reportForm.Init()
	}
	return m, nil
}

func (m *Model) updateReportForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.reportForm.Update(msg)
	if !m.reportForm.Completed {
		return m, cmd
	}
	if m.reportForm.Cancelled {
		m.reportForm = nil
		m.state = stateReports
		return m, nil
	}
	if !m.reportsState.Submit.Begin() {
		return m, cmd
	}
	report := m.reportForm.Report()
	m.reportForm = nil
	return m, tea.Batch(cmd, m.spinner.Tick, m.submitReportCmd(report))
}

func (m *Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.wizard.Update(msg)
	if m.wizard.Cancelled {
		m.wizard = nil
		m.uploadQueue = nil
		m.submitPending = false
		m.state = stateMenu
		return m, nil
	}
	if !m.wizard.StepDone {
		return m, cmd
	}

	m.profileState.ApplyPatch(m.wizard.Patch())

	var cmds []tea.Cmd
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for which, path := range m.wizard.PendingUploads() {
		m.uploadQueue = append(m.uploadQueue, pendingUpload{which: which, path: path})
	}
	if len(m.uploadQueue) > 0 && !m.profileState.Upload.Loading() {
		next := m.uploadQueue[0]
		m.uploadQueue = m.uploadQueue[1:]
		if m.profileState.Upload.Begin() {
			cmds = append(cmds, m.spinner.Tick, m.uploadDocumentCmd(next.which, next.path))
		}
	}

	if m.wizard.Advance() {
		cmds = append(cmds, m.wizard.Init())
		return m, tea.Batch(cmds...)
	}

	// All steps done; submit once uploads drain
	if m.profileState.Upload.Loading() || len(m.uploadQueue) > 0 {
		m.submitPending = true
		return m, tea.Batch(cmds...)
	}
	if m.profileState.Submit.Begin() {
		cmds = append(cmds, m.spinner.Tick, m.completeProfileCmd(m.profileState.Draft()))
	}
	return m, tea.Batch(cmds...)
}

// Screen transitions

func (m *Model) enterLogin() (tea.Model, tea.Cmd) {
	m.loginForm = NewLoginForm()
	m.state = stateLogin
	return m, m.loginForm.Init()
}

func (m *Model) enterRegister() (tea.Model, tea.Cmd) {
	m.registerForm = NewRegisterForm()
	m.state = stateRegister
	return m, m.registerForm.Init()
}

func (m *Model) enterOTP(email string) (tea.Model, tea.Cmd) {
	m.otpForm = NewOTPForm(email)
	m.state = stateOTP
	return m, m.otpForm.Init()
}

func (m *Model) enterMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.menuIndex = 0
	return m, nil
}

func (m *Model) enterTrips() (tea.Model, tea.Cmd) {
	m.state = stateTrips
	m.tripIndex = 0
	return m, tea.Batch(m.cachedTripsCmd(m.tripsState.Mode()), m.refreshTrips())
}

func (m *Model) enterVehicles() (tea.Model, tea.Cmd) {
	m.state = stateVehicles
	m.vehicleIndex = 0
	return m, tea.Batch(m.cachedVehiclesCmd(), m.refreshVehicles())
}

func (m *Model) enterReports() (tea.Model, tea.Cmd) {
	m.state = stateReports
	m.reportIndex = 0
	return m, tea.Batch(m.cachedReportsCmd(), m.refreshReports())
}

func (m *Model) enterProfile() (tea.Model, tea.Cmd) {
	m.wizard = NewProfileWizard(m.profileState.Draft())
	m.state = stateProfile
	return m, m.wizard.Init()
}

func (m *Model) refreshTrips() tea.Cmd {
	if !m.tripsState.Fetch.Begin() {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadTripsCmd(m.tripsState.Mode()))
}

func (m *Model) refreshVehicles() tea.Cmd {
	if !m.vehiclesState.Fetch.Begin() {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadVehiclesCmd())
}

func (m *Model) refreshReports() tea.Cmd {
	if !m.reportsState.Fetch.Begin() {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadReportsCmd())
}

// setError records the error for display and arms the auto-clear timer
func (m *Model) setError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	m.errors.SetError(err)
	return m.errors.ClearAfterDelay()
}

// showError records the error and runs a screen transition
func (m *Model) showError(err error, enter func() (tea.Model, tea.Cmd)) (tea.Model, tea.Cmd) {
	errCmd := m.setError(err)
	model, cmd := enter()
	return model, tea.Batch(errCmd, cmd)
}

func (m *Model) clampVehicleIndex() {
	if n := len(m.vehiclesState.Vehicles()); m.vehicleIndex >= n && n > 0 {
		m.vehicleIndex = n - 1
	} else if n == 0 {
		m.vehicleIndex = 0
	}
}

func (m *Model) clampReportIndex() {
	if n := len(m.reportsState.Reports()); m.reportIndex >= n && n > 0 {
		m.reportIndex = n - 1
	} else if n == 0 {
		m.reportIndex = 0
	}
}

func nextMode(mode domain.TripMode) domain.TripMode {
	switch mode {
	case domain.ModeAir:
		return domain.ModeGround
	case domain.ModeGround:
		return domain.ModeMarine
	default:
		return domain.ModeAir
	}
}

// View

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.bodyView())

	if m.errors.HasError() {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorStyle.Render("✗ " + m.errors.GetError().Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m *Model) headerView() string {
	title := theme.AppNameStyle.Render("carrego")
	if user := m.session.User(); user != nil {
		return title + "  " + theme.MutedStyle.Render(user.FullName())
	}
	return title
}

func (m *Model) bodyView() string {
	switch m.state {
	case stateRestoring:
		return m.spinner.View() + " restoring session..."
	case stateLogin:
		return theme.TitleStyle.Render("Sign in") + "\n\n" + m.loginForm.View()
	case stateRegister:
		return theme.TitleStyle.Render("Create account") + "\n\n" + m.registerForm.View()
	case stateOTP:
		return theme.TitleStyle.Render("Verify email") + "\n\n" + m.otpForm.View()
	case stateMenu:
		return m.menuView()
	case stateTrips:
		return m.tripsView()
	case stateTripForm:
		return theme.TitleStyle.Render("New trip") + "\n\n" + m.tripFormView()
	case stateVehicles:
		return m.vehiclesView()
	case stateVehicleForm:
		return theme.TitleStyle.Render("Add vehicle") + "\n\n" + m.vehicleForm.View()
	case stateReports:
		return m.reportsView()
	case stateReportForm:
		return theme.TitleStyle.Render("Report an issue") + "\n\n" + m.reportForm.View()
	case stateProfile:
		return theme.TitleStyle.Render("Complete profile") + "  " +
			theme.SubtitleStyle.Render(m.wizard.Step()) + "\n\n" + m.wizard.View()
	}
	return ""
}

func (m *Model) menuView() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Menu"))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		if i == m.menuIndex {
			b.WriteString(theme.SelectedStyle.Render("> " + item))
		} else {
			b.WriteString(theme.NormalStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) tripsView() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Trips"))
	b.WriteString("  ")
	b.WriteString(modeStyle(m.tripsState.Mode()).Render(string(m.tripsState.Mode())))
	if m.tripsState.Fetch.Loading() {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")

	trips := m.tripsState.Trips()
	if len(trips) == 0 {
		b.WriteString(theme.MutedStyle.Render("No trips yet. Press n to post one."))
		return b.String()
	}
	for i, trip := range trips {
		line := fmt.Sprintf("%s → %s  %s  %.0fkg @ %.2f/kg",
			trip.Origin, trip.Destination,
			trip.DepartureDate.Format("2006-01-02"),
			trip.CapacityKg, trip.PricePerKg)
		if i == m.tripIndex {
			b.WriteString(theme.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(theme.NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) tripFormView() string {
	if m.tripForm.LookupReady || m.tripsState.Lookup.Loading() {
		return m.spinner.View() + " looking up routes..."
	}
	return m.tripForm.View()
}

func (m *Model) vehiclesView() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Vehicles"))
	if m.vehiclesState.Fetch.Loading() {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")

	vehicles := m.vehiclesState.Vehicles()
	if len(vehicles) == 0 {
		b.WriteString(theme.MutedStyle.Render("No vehicles yet. Press n to add one."))
		return b.String()
	}
	for i, v := range vehicles {
		line := fmt.Sprintf("%s %s %d  %s  %s",
			v.Make, v.Model, v.Year, v.LicensePlate,
			statusStyle(v.Status).Render(string(v.Status)))
		if i == m.vehicleIndex {
			b.WriteString(theme.SelectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) reportsView() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Pending reports"))
	if m.reportsState.Fetch.Loading() {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")

	reports := m.reportsState.Reports()
	if len(reports) == 0 {
		b.WriteString(theme.MutedStyle.Render("No pending reports. Press n to file one."))
		return b.String()
	}
	for i, r := range reports {
		desc := r.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		line := fmt.Sprintf("%s  %s", r.ReportType, desc)
		if i == m.reportIndex {
			b.WriteString(theme.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(theme.NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) helpView() string {
	var entries []string
	switch m.state {
	case stateMenu:
		entries = []string{"↑/↓ navigate", "enter select", "L logout", "q quit"}
	case stateTrips:
		entries = []string{"tab mode", "n new", "r refresh", "esc back"}
	case stateVehicles:
		entries = []string{"n new", "d delete", "r refresh", "esc back"}
	case stateReports:
		entries = []string{"n new", "r refresh", "esc back"}
	case stateOTP:
		entries = []string{"ctrl+r resend code", "esc back"}
	case stateLogin:
		entries = []string{"esc create account"}
	case stateRegister:
		entries = []string{"esc sign in"}
	default:
		entries = []string{"esc back"}
	}
	return theme.HelpStyle.Render(strings.Join(entries, "  •  "))
}

func modeStyle(mode domain.TripMode) lipgloss.Style {
	switch mode {
	case domain.ModeGround:
		return theme.GroundStyle
	case domain.ModeMarine:
		return theme.MarineStyle
	default:
		return theme.AirStyle
	}
}

func statusStyle(status domain.VehicleStatus) lipgloss.Style {
	switch status {
	case domain.VehicleApproved:
		return theme.ApprovedStyle
	case domain.VehicleDisabled:
		return theme.DisabledStyle
	default:
		return theme.PendingStyle
	}
}

// toAPIErr normalizes a command error to the API error shape, nil-safe
func toAPIErr(err error) *domain.APIError {
	if err == nil {
		return nil
	}
	return domain.AsAPIError(err)
}
