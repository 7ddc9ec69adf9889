package api

// The JSON field names below are the backend's wire contract and must not be
// renamed.

// LoginResponse is returned by POST auth/login.
type LoginResponse struct {
	Token           string `json:"token"`
	Username        string `json:"usuario"`
	DeviceID        string `json:"deviceId"`
	PasswordDefault bool   `json:"passwordDefault"`
}

// ProfileResponse is returned by GET auth/me.
type ProfileResponse struct {
	Username    string `json:"usuario"`
	ActiveShift string `json:"turnoActivoHoy"`
	FullName    string `json:"nombreCompleto"`
	AllowsBreak bool   `json:"aceptaPausa"`
}

// TodayResponse is returned by GET asistencia/hoy.
type TodayResponse struct {
	Date         string `json:"fecha"`
	EntryClocked bool   `json:"yaFichoEntrada"`
	EntryTime    string `json:"horaEntrada"`
	ExitClocked  bool   `json:"yaFichoSalida"`
	ExitTime     string `json:"horaSalida"`
	OnLeave      bool   `json:"tieneLicencia"`
	LeaveKind    string `json:"tipoLicencia"`
	LeaveDesc    string `json:"descripcionLicencia"`
	Holiday      bool   `json:"esFeriado"`
	HolidayDesc  string `json:"descripcionFeriado"`
}

// MovementRequest is the body of POST asistencia. Location is a "lat,lon"
// pair in decimal degrees.
type MovementRequest struct {
	Kind     string `json:"tipoMovimiento"`
	Location string `json:"ubicacion"`
}

// MovementResponse is returned by POST asistencia. Time is the
// server-assigned "HH:mm" timestamp of the movement.
type MovementResponse struct {
	Status      string `json:"estado"`
	Date        string `json:"fecha"`
	Time        string `json:"hora"`
	Kind        string `json:"tipo"`
	Message     string `json:"mensaje"`
	FullName    string `json:"nombreCompleto"`
	ActiveShift string `json:"turnoActivoHoy"`
}

// ChangePasswordResponse is returned by POST auth/cambiarClave.
type ChangePasswordResponse struct {
	Success bool `json:"success"`
}
