package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/nexus-lab/frontdesk/pkg/agent/tool"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/store"
)

// bookAppointmentTool records a new appointment, linking it to an existing
// customer when the given name matches one.
type bookAppointmentTool struct {
	store *store.Store
}

func (t *bookAppointmentTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "bookAppointment",
		Description: "Book a new appointment for a customer. Use this when the user explicitly requests to schedule a meeting or call.",
		Parameters: map[string]*gollem.Parameter{
			"customerName": {
				Type:        gollem.TypeString,
				Description: "Name of the customer booking the appointment.",
				Required:    true,
			},
			"date": {
				Type:        gollem.TypeString,
				Description: "Date of the appointment in YYYY-MM-DD format.",
				Required:    true,
			},
			"time": {
				Type:        gollem.TypeString,
				Description: "Time of the appointment in HH:MM format (24hr).",
				Required:    true,
			},
			"type": {
				Type:        gollem.TypeString,
				Description: `Type of appointment: "Phone", "Video", or "In-Person". Defaults to "Video".`,
			},
			"notes": {
				Type:        gollem.TypeString,
				Description: "Any specific topic or agenda mentioned.",
			},
		},
	}
}

func (t *bookAppointmentTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	customerName, err := extractString(args, "customerName")
	if err != nil {
		return nil, err
	}
	date, err := extractString(args, "date")
	if err != nil {
		return nil, err
	}
	timeOfDay, err := extractString(args, "time")
	if err != nil {
		return nil, err
	}
	kind, _ := args["type"].(string)
	notes, _ := args["notes"].(string)

	tool.Update(ctx, fmt.Sprintf("Booking appointment for %s...", customerName))

	customerID := model.GuestCustomerID
	customers, err := store.Read[model.Customer](ctx, t.store, types.CollectionCustomers)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up customers")
	}
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(customerName)) {
			customerID = c.ID
			break
		}
	}

	title := "Consultation"
	if notes != "" {
		title = "Meeting: " + notes
	}
	apptNotes := notes
	if apptNotes == "" {
		apptNotes = "Booked via AI Receptionist"
	}

	appt := model.Appointment{
		ID:           types.NewRecordID(),
		CustomerID:   customerID,
		CustomerName: customerName,
		Title:        title,
		Date:         date,
		Time:         timeOfDay,
		Duration:     model.DefaultAppointmentMinutes,
		Kind:         types.AppointmentKind(kind).Normalize(),
		Status:       types.AppointmentStatusScheduled,
		Notes:        apptNotes,
	}
	if err := store.Append(ctx, t.store, types.CollectionAppointments, appt); err != nil {
		return nil, goerr.Wrap(err, "failed to save appointment")
	}

	return map[string]any{
		"success": true,
		"message": fmt.Sprintf("Appointment confirmed for %s at %s.", date, timeOfDay),
	}, nil
}

func extractString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", goerr.New("missing required argument", goerr.V("key", key))
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", goerr.New("argument must be a non-empty string", goerr.V("key", key))
	}
	return s, nil
}
