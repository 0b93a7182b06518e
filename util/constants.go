package util

const (
	RegisterCollection     = "registers"
	DoctorCollection       = "doctors"
	BookingCollection      = "bookings"
	PrescriptionCollection = "prescriptions"
	CounterCollection      = "counters"
)

// Cache key prefixes.
const (
	DoctorKey = "DOCTOR:"
)

// Counter names stored in CounterCollection.
const (
	BookingTokenSequence = "bookingToken"
)

const (
	MISSING_FIELDS              = "Missing fields"
	USER_ALREADY_EXISTS         = "User already exists"
	INVALID_CREDENTIALS         = "Invalid credentials"
	INVALID_ROLE                = "Invalid role"
	NO_TOKEN                    = "No token, authorization denied"
	TOKEN_NOT_VALID             = "Token is not valid"
	FORBIDDEN                   = "Forbidden"
	SERVER_ERROR                = "Server error"
	INVALID_ID                  = "Invalid id"
	INVALID_REQUEST_BODY        = "Invalid request body"
	DOCTOR_NOT_FOUND            = "Doctor not found"
	DOCTOR_ID_REQUIRED          = "doctorId is required"
	DOCTOR_ID_ALREADY_EXISTS    = "Doctor with this doctorId already exists"
	DOCTOR_EMAIL_REQUIRED       = "Doctor email is required"
	PATIENT_EMAIL_REQUIRED      = "patientEmail is required"
	BOOKING_NOT_FOUND           = "Booking not found"
	APPOINTMENT_NOT_FOUND       = "Appointment not found"
	RECORD_NOT_FOUND            = "Record not found"
	PRESCRIPTION_NOT_FOUND      = "Prescription not found"
	INVALID_STATUS              = "Invalid status"
	INVALID_DOCTOR_STATUS       = "Invalid doctorStatus"
	DOCTOR_STATUS_REQUIRED      = "doctorStatus is required"
	TOKEN_NUMBER_NOT_ASSIGNABLE = "Unable to assign token number"
)

const (
	REGISTERED_SUCCESSFULLY      = "Registered successfully"
	BOOKING_CREATED_SUCCESSFULLY = "Booking created successfully"
	BOOKING_DELETED              = "Booking deleted"
	DOCTOR_DELETED               = "Doctor deleted"
	APPOINTMENT_DELETED          = "Appointment deleted successfully"
	RECORD_DELETED               = "Record deleted successfully"
	PRESCRIPTION_DELETED         = "Prescription deleted successfully"
	INVALID_DATE                 = "Invalid date, expected YYYY-MM-DD or RFC3339"
	INVALID_NUMBER               = "Invalid number"
	FIELD_NOT_UPDATABLE          = "Field cannot be updated"
)
