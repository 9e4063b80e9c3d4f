package service

import (
	"careportal_backend/internal/appointments/transport"
	"careportal_backend/platform/apperr"
)

// allowedTransitions maps each status to the statuses it may move to.
// Completed, cancelled and no-show are terminal. A status never
// transitions to itself.
var allowedTransitions = map[transport.AppointmentStatus][]transport.AppointmentStatus{
	transport.AppointmentStatusScheduled: {
		transport.AppointmentStatusConfirmed,
		transport.AppointmentStatusCancelled,
		transport.AppointmentStatusNoShow,
	},
	transport.AppointmentStatusConfirmed: {
		transport.AppointmentStatusCompleted,
		transport.AppointmentStatusCancelled,
		transport.AppointmentStatusNoShow,
	},
	transport.AppointmentStatusCompleted: {},
	transport.AppointmentStatusCancelled: {},
	transport.AppointmentStatusNoShow:    {},
}

// ValidateTransition checks a status change before anything is written.
// Illegal transitions surface as a conflict carrying both statuses.
func ValidateTransition(from, to transport.AppointmentStatus) error {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return nil
		}
	}

	return apperr.Conflict("invalid status transition").WithDetails(map[string]string{
		"from": string(from),
		"to":   string(to),
	})
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status transport.AppointmentStatus) bool {
	return len(allowedTransitions[status]) == 0
}
