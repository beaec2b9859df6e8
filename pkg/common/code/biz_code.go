package code

var (
	UnDefineErr = New(10000, "undefined error")

	// session / auth
	UnLogin      = New(10100, "not logged in")
	Unauthorized = New(10101, "unauthorized, please log in again")
	LoginErr     = New(10102, "login failed")
	RegisterErr  = New(10103, "registration failed")
	RoleDenied   = New(10104, "operation not allowed for this role")

	// transport
	RPCHttpErr     = New(10200, "backend request failed")
	RPCHttpCodeErr = New(10201, "backend returned unexpected status")
	BackendErr     = New(10202, "backend rejected the request")

	// reservation workflow
	InvalidTimeWindow   = New(10300, "end time must be after start time")
	OutsideSchoolHours  = New(10301, "reservations can only be made during school hours (08:00 - 18:00)")
	NotAvailable        = New(10302, "not available at the requested time")
	ReservationCreate   = New(10303, "failed to submit reservation")
	LabNotFound         = New(10304, "lab not found")
	ResearchLabRestrict = New(10305, "research labs are restricted to doctors")

	// collections
	RecordNotFound = New(10400, "record not found")
	NotOwner       = New(10401, "only the owner may delete a shared tool")
	BadTransition  = New(10402, "maintenance status transition not allowed")
	StaleResult    = New(10403, "superseded by a newer load")
)
