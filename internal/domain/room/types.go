package room

import "errors"

var ErrInvalidMaintenanceStatus = errors.New("invalid maintenance status")

// MaintenanceStatus reflects physical readiness, independent of reservations.
type MaintenanceStatus string

const (
	MaintenanceAvailable    MaintenanceStatus = "available"
	MaintenanceInProgress   MaintenanceStatus = "maintenance"
	MaintenanceOutOfService MaintenanceStatus = "out_of_service"
)

func (s MaintenanceStatus) String() string {
	return string(s)
}

func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceAvailable, MaintenanceInProgress, MaintenanceOutOfService:
		return true
	default:
		return false
	}
}

func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	status := MaintenanceStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidMaintenanceStatus
	}
	return status, nil
}
