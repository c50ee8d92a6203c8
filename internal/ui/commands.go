package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"carrego/internal/domain"
	"carrego/internal/logging"
)

// Commands run one request each off the update loop and hand the outcome
// back as a result message. No retries, no deadlines beyond the context.

func (m *Model) restoreSessionCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Restore(context.Background())
		return sessionRestoredMsg{session: session, err: err}
	}
}

func (m *Model) loginCmd(creds domain.Credentials) tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Login(context.Background(), creds)
		return loginResultMsg{session: session, err: err}
	}
}

func (m *Model) registerCmd(reg domain.Registration) tea.Cmd {
	return func() tea.Msg {
		user, err := m.auth.Register(context.Background(), reg)
		return registerResultMsg{user: user, err: err}
	}
}

func (m *Model) verifyOTPCmd(email, code string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.VerifyOTP(context.Background(), email, code)
		return otpVerifiedMsg{session: session, err: err}
	}
}

func (m *Model) resendOTPCmd(email string) tea.Cmd {
	return func() tea.Msg {
		return otpResentMsg{err: m.auth.ResendOTP(context.Background(), email)}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.auth.Logout()}
	}
}

func (m *Model) loadTripsCmd(mode domain.TripMode) tea.Cmd {
	return func() tea.Msg {
		trips, err := m.trips.ListTrips(context.Background(), mode)
		return tripsLoadedMsg{mode: mode, trips: trips, err: err}
	}
}

func (m *Model) cachedTripsCmd(mode domain.TripMode) tea.Cmd {
	return func() tea.Msg {
		trips, err := m.trips.CachedTrips(context.Background(), mode)
		if err != nil {
			// Cache misses are invisible; the live fetch still runs
			logging.Logger.Warn("Failed to read trip cache", "error", err)
			return nil
		}
		return cachedTripsMsg{mode: mode, trips: trips}
	}
}

func (m *Model) saveTripCmd(trip domain.NewTrip) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.trips.SaveTrip(context.Background(), trip)
		return tripSavedMsg{trip: saved, err: err}
	}
}

func (m *Model) searchAirportsCmd(city string) tea.Cmd {
	return func() tea.Msg {
		airports, err := m.trips.SearchAirports(context.Background(), city)
		return airportsFoundMsg{airports: airports, err: err}
	}
}

func (m *Model) marineReferenceCmd(portQuery string) tea.Cmd {
	return func() tea.Msg {
		seaports, operators, err := m.trips.MarineReference(context.Background(), portQuery)
		return marineReferenceMsg{seaports: seaports, operators: operators, err: err}
	}
}

func (m *Model) loadVehiclesCmd() tea.Cmd {
	return func() tea.Msg {
		vehicles, err := m.vehicles.ListVehicles(context.Background())
		return vehiclesLoadedMsg{vehicles: vehicles, err: err}
	}
}

func (m *Model) cachedVehiclesCmd() tea.Cmd {
	return func() tea.Msg {
		vehicles, err := m.vehicles.CachedVehicles(context.Background())
		if err != nil {
			logging.Logger.Warn("Failed to read vehicle cache", "error", err)
			return nil
		}
		return cachedVehiclesMsg{vehicles: vehicles}
	}
}

func (m *Model) addVehicleCmd(vehicle domain.NewVehicle) tea.Cmd {
	return func() tea.Msg {
		added, err := m.vehicles.AddVehicle(context.Background(), vehicle)
		return vehicleAddedMsg{vehicle: added, err: err}
	}
}

func (m *Model) deleteVehicleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return vehicleDeletedMsg{id: id, err: m.vehicles.DeleteVehicle(context.Background(), id)}
	}
}

func (m *Model) loadReportsCmd() tea.Cmd {
	return func() tea.Msg {
		reports, err := m.reports.PendingReports(context.Background())
		return reportsLoadedMsg{reports: reports, err: err}
	}
}

func (m *Model) cachedReportsCmd() tea.Cmd {
	return func() tea.Msg {
		reports, err := m.reports.CachedReports(context.Background())
		if err != nil {
			logging.Logger.Warn("Failed to read report cache", "error", err)
			return nil
		}
		return cachedReportsMsg{reports: reports}
	}
}

func (m *Model) submitReportCmd(report domain.NewReport) tea.Cmd {
	return func() tea.Msg {
		filed, err := m.reports.SubmitReport(context.Background(), report)
		return reportSubmittedMsg{report: filed, err: err}
	}
}

func (m *Model) completeProfileCmd(draft domain.ProfileDraft) tea.Cmd {
	return func() tea.Msg {
		profile, err := m.profile.Complete(context.Background(), draft)
		return profileCompletedMsg{profile: profile, err: err}
	}
}

func (m *Model) uploadDocumentCmd(which, path string) tea.Cmd {
	return func() tea.Msg {
		url, err := m.profile.UploadDocument(context.Background(), path)
		return documentUploadedMsg{which: which, url: url, err: err}
	}
}
