package forms

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/garagekit/pkg/validator"
)

// Status is the lifecycle state of a rescue.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every accepted rescue status in display order.
var Statuses = []Status{StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled}

// Rating bounds for feedback.
const (
	MinRating = 1
	MaxRating = 5
)

// Heading bounds in degrees.
const (
	MinHeading = 0
	MaxHeading = 360
)

// RescueRequestData is submitted by a customer asking for roadside help.
type RescueRequestData struct {
	Location         *validator.Location `json:"location"`
	VehicleType      string              `json:"vehicleType"`
	IssueDescription string              `json:"issueDescription"`
	Notes            string              `json:"notes"`
}

// RescueCreationData is a rescue request created on behalf of a customer.
type RescueCreationData struct {
	RescueRequestData
	ContactPhone string `json:"contactPhone"`
	VehiclePlate string `json:"vehiclePlate"`
}

type StatusUpdateData struct {
	RescueID           string `json:"rescueId"`
	Status             Status `json:"status"`
	TechnicianID       string `json:"technicianId"`
	CompletionNotes    string `json:"completionNotes"`
	CancellationReason string `json:"cancellationReason"`
}

// FeedbackSubmissionData carries a customer rating. Rating stays untyped so
// that non-numeric submissions are reported instead of failing to decode.
type FeedbackSubmissionData struct {
	RescueID string `json:"rescueId"`
	Rating   any    `json:"rating"`
	Comments string `json:"comments"`
}

type EtaUpdateData struct {
	RescueID         string `json:"rescueId"`
	EstimatedArrival string `json:"estimatedArrival"`
}

// LocationUpdateData is a technician position report. Heading and Speed are optional.
type LocationUpdateData struct {
	Location *validator.Location `json:"location"`
	Heading  *float64            `json:"heading"`
	Speed    *float64            `json:"speed"`
}

func ValidateRescueRequest(d RescueRequestData) validator.Result {
	return validator.Collect(rescueRequestRules(d)...)
}

// ValidateRescueCreation runs the request checks, then requires a contact
// phone of at least ContactPhoneMinLength characters. A vehicle plate is
// checked only when supplied.
func ValidateRescueCreation(d RescueCreationData) validator.Result {
	rules := rescueRequestRules(d.RescueRequestData)
	rules = append(rules,
		rule(length(strings.TrimSpace(d.ContactPhone)) >= ContactPhoneMinLength, "contactPhone", KeyContactPhoneMinLength,
			fmt.Sprintf("Contact phone must be at least %d characters", ContactPhoneMinLength),
			"min", strconv.Itoa(ContactPhoneMinLength)),
		validator.When(present(d.VehiclePlate),
			validator.ValidateLicensePlateField(d.VehiclePlate, validator.LicensePlateFieldOptions{}).Rule("vehiclePlate")),
	)
	return validator.Collect(rules...)
}

func rescueRequestRules(d RescueRequestData) []validator.Rule {
	return []validator.Rule{
		locationRule(d.Location, "location", KeyLocationInvalid, "Valid location is required"),
		rule(present(d.VehicleType), "vehicleType", KeyVehicleTypeRequired, "Vehicle type is required"),
		rule(present(d.IssueDescription), "issueDescription", KeyIssueDescriptionRequired, "Issue description is required"),
		validator.When(present(d.Notes), maxLength("notes", d.Notes, NotesMaxLength, KeyNotesMaxLength, "Notes")),
	}
}

// ValidateStatusUpdate checks the status against Statuses. The per-status
// requirements run on the raw value whether or not the enum check passed.
func ValidateStatusUpdate(d StatusUpdateData) validator.Result {
	return validator.Collect(
		rescueIDRequired(d.RescueID),
		rule(slices.Contains(Statuses, d.Status), "status", KeyStatusInvalid,
			"Status must be one of: "+statusList(), "allowed", statusList()),
		validator.When(d.Status == StatusAccepted,
			rule(present(d.TechnicianID), "technicianId", KeyTechnicianRequired,
				"Technician ID is required when accepting a rescue")),
		validator.When(d.Status == StatusCompleted,
			rule(present(d.CompletionNotes), "completionNotes", KeyCompletionNotesRequired,
				"Completion notes are required when completing a rescue")),
		validator.When(d.Status == StatusCancelled,
			rule(present(d.CancellationReason), "cancellationReason", KeyCancellationRequired,
				"Cancellation reason is required when cancelling a rescue")),
	)
}

func statusList() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// ValidateFeedbackSubmission accepts only numeric ratings within [MinRating, MaxRating].
func ValidateFeedbackSubmission(d FeedbackSubmissionData) validator.Result {
	rating, ok := numeric(d.Rating)
	return validator.Collect(
		rescueIDRequired(d.RescueID),
		rule(ok && rating >= MinRating && rating <= MaxRating, "rating", KeyRatingInvalid,
			fmt.Sprintf("Rating must be a number between %d and %d", MinRating, MaxRating),
			"min", strconv.Itoa(MinRating), "max", strconv.Itoa(MaxRating)),
		validator.When(present(d.Comments), maxLength("comments", d.Comments, CommentsMaxLength, KeyCommentsMaxLength, "Comments")),
	)
}

// ValidateEtaUpdate requires an estimated arrival strictly after clock.Now().
// A nil clock reads the system time.
func ValidateEtaUpdate(d EtaUpdateData, clock validator.Clock) validator.Result {
	arrival, ok := validator.ParseDate(d.EstimatedArrival)
	return validator.Collect(
		rescueIDRequired(d.RescueID),
		rule(ok, "estimatedArrival", KeyEtaInvalid, "Valid estimated arrival time is required"),
		validator.When(ok, rule(arrival.After(clock.Now()), "estimatedArrival", KeyEtaNotFuture,
			"Estimated arrival time must be in the future")),
	)
}

func ValidateLocationUpdate(d LocationUpdateData) validator.Result {
	return validator.Collect(
		locationRule(d.Location, "location", KeyLocationInvalid, "Valid location is required"),
		validator.When(d.Heading != nil, rule(d.Heading != nil && *d.Heading >= MinHeading && *d.Heading <= MaxHeading,
			"heading", KeyHeadingRange,
			fmt.Sprintf("Heading must be between %d and %d degrees", MinHeading, MaxHeading),
			"min", strconv.Itoa(MinHeading), "max", strconv.Itoa(MaxHeading))),
		validator.When(d.Speed != nil, rule(d.Speed != nil && *d.Speed >= 0, "speed", KeySpeedInvalid,
			"Speed must not be negative")),
	)
}
