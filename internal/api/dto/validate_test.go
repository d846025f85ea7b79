package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/support-desk/ticket-dashboard/pkg/errorutil"
)

func validTicketRequest() TicketRequest {
	return TicketRequest{
		Title:       "Fiber break downtown",
		Status:      "In Progress",
		Priority:    "High",
		ProductType: "GPON",
		DueDate:     "2024-03-15",
	}
}

func TestValidateAcceptsWellFormedTicket(t *testing.T) {
	assert.NoError(t, Validate(validTicketRequest()))
}

func TestValidateRejectsBadEnum(t *testing.T) {
	req := validTicketRequest()
	req.Status = "Closed"
	err := Validate(req)

	var domainErr *errorutil.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Contains(t, domainErr.Details, "Status")
}

func TestValidateRejectsBadDate(t *testing.T) {
	for _, due := range []string{"15/03/2024", "2024-3-5", "tomorrow", ""} {
		req := validTicketRequest()
		req.DueDate = due
		assert.Error(t, Validate(req), "due date %q", due)
	}
}

func TestValidateRejectsOutOfRangeCoordinates(t *testing.T) {
	req := validTicketRequest()
	req.Coordinates = &CoordinatesPayload{Lat: 123.0, Lng: 10.0}
	assert.Error(t, Validate(req))

	req.Coordinates = &CoordinatesPayload{Lat: 36.8, Lng: 10.18}
	assert.NoError(t, Validate(req))
}

func TestValidateRequiresTitle(t *testing.T) {
	req := validTicketRequest()
	req.Title = ""
	err := Validate(req)

	var domainErr *errorutil.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Details, "Title")
}
