package core_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexus-lab/frontdesk/pkg/agent/tool"
	"github.com/nexus-lab/frontdesk/pkg/agent/tool/core"
	"github.com/nexus-lab/frontdesk/pkg/codec"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/kvs/memory"
	"github.com/nexus-lab/frontdesk/pkg/store"
)

func TestBookAppointmentLinksKnownCustomer(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())
	gt.NoError(t, store.Append(ctx, s, types.CollectionCustomers, model.Customer{
		ID:   "c1",
		Name: "Jane Doe Realty",
	})).Required()

	booking := core.New(s)[0]
	out, err := booking.Run(ctx, map[string]any{
		"customerName": "Jane Doe",
		"date":         "2023-11-02",
		"time":         "14:00",
		"notes":        "Property walkthrough",
	})
	gt.NoError(t, err).Required()
	gt.Value(t, out["success"]).Equal(true)
	gt.Value(t, out["message"]).Equal("Appointment confirmed for 2023-11-02 at 14:00.")

	appts, err := store.Read[model.Appointment](ctx, s, types.CollectionAppointments)
	gt.NoError(t, err).Required()
	gt.Array(t, appts).Length(1)
	gt.Value(t, appts[0].CustomerID).Equal(types.RecordID("c1"))
	gt.Value(t, appts[0].CustomerName).Equal("Jane Doe")
	gt.Value(t, appts[0].Title).Equal("Meeting: Property walkthrough")
	gt.Value(t, appts[0].Notes).Equal("Property walkthrough")
	gt.Value(t, appts[0].Kind).Equal(types.AppointmentKindVideo)
	gt.Value(t, appts[0].Status).Equal(types.AppointmentStatusScheduled)
	gt.Value(t, appts[0].Duration).Equal(model.DefaultAppointmentMinutes)
}

func TestBookAppointmentFallsBackToGuest(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())

	booking := core.New(s)[0]
	out, err := booking.Run(ctx, map[string]any{
		"customerName": "Unknown Caller",
		"date":         "2023-11-03",
		"time":         "09:30",
	})
	gt.NoError(t, err).Required()
	gt.Value(t, out["success"]).Equal(true)

	appts, err := store.Read[model.Appointment](ctx, s, types.CollectionAppointments)
	gt.NoError(t, err).Required()
	gt.Array(t, appts).Length(1)
	gt.Value(t, appts[0].CustomerID).Equal(model.GuestCustomerID)
	gt.Value(t, appts[0].Title).Equal("Consultation")
	gt.Value(t, appts[0].Notes).Equal("Booked via AI Receptionist")
}

func TestBookAppointmentHonorsKind(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())

	booking := core.New(s)[0]
	_, err := booking.Run(ctx, map[string]any{
		"customerName": "Someone",
		"date":         "2023-11-04",
		"time":         "11:00",
		"type":         "In-Person",
	})
	gt.NoError(t, err).Required()

	appts, err := store.Read[model.Appointment](ctx, s, types.CollectionAppointments)
	gt.NoError(t, err).Required()
	gt.Array(t, appts).Length(1)
	gt.Value(t, appts[0].Kind).Equal(types.AppointmentKindInPerson)
}

func TestBookAppointmentReportsProgress(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())

	var messages []string
	ctx = tool.WithUpdate(ctx, func(_ context.Context, message string) {
		messages = append(messages, message)
	})

	booking := core.New(s)[0]
	_, err := booking.Run(ctx, map[string]any{
		"customerName": "Someone",
		"date":         "2023-11-05",
		"time":         "10:00",
	})
	gt.NoError(t, err).Required()
	gt.Array(t, messages).Length(1)
	gt.Value(t, messages[0]).Equal("Booking appointment for Someone...")
}

func TestBookAppointmentRejectsMissingArgs(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())

	booking := core.New(s)[0]
	_, err := booking.Run(ctx, map[string]any{
		"customerName": "Someone",
	})
	gt.Error(t, err)
}
