package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexus-lab/frontdesk/pkg/codec"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/kvs/memory"
	"github.com/nexus-lab/frontdesk/pkg/service/importer"
	"github.com/nexus-lab/frontdesk/pkg/store"
)

func TestImportCustomers(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())
	im := importer.New(s)

	csvData := strings.Join([]string{
		"Full Name,Email,Mobile,Organization",
		"Jane Doe,jane@example.com,+1 555 0100,Jane Doe Realty",
		"Mike Smith,mike@example.com,,Mike's Plumbing",
		",orphan@example.com,,No Name Corp",
	}, "\n")

	result, err := im.ImportCustomers(ctx, strings.NewReader(csvData))
	gt.NoError(t, err).Required()
	gt.Value(t, result.Imported).Equal(2)
	gt.Value(t, result.Skipped).Equal(1)

	customers, err := store.Read[model.Customer](ctx, s, types.CollectionCustomers)
	gt.NoError(t, err).Required()
	gt.Array(t, customers).Length(2)
	gt.Value(t, customers[0].Name).Equal("Jane Doe")
	gt.Value(t, customers[0].Company).Equal("Jane Doe Realty")
	gt.Value(t, customers[0].Status).Equal(types.CustomerStatusLead)
	gt.Array(t, customers[0].Tags).Length(1)
	gt.Value(t, customers[0].Tags[0]).Equal(model.ImportedTag)
	gt.Value(t, customers[1].Name).Equal("Mike Smith")
}

func TestImportCustomersPrependsToExisting(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())
	gt.NoError(t, store.Append(ctx, s, types.CollectionCustomers, model.Customer{
		ID:   "existing",
		Name: "Existing Customer",
	})).Required()

	im := importer.New(s)
	_, err := im.ImportCustomers(ctx, strings.NewReader("name,email\nNew Person,new@example.com\n"))
	gt.NoError(t, err).Required()

	customers, err := store.Read[model.Customer](ctx, s, types.CollectionCustomers)
	gt.NoError(t, err).Required()
	gt.Array(t, customers).Length(2)
	gt.Value(t, customers[0].Name).Equal("New Person")
	gt.Value(t, customers[1].ID).Equal(types.RecordID("existing"))
}

func TestImportCustomersRejectsMissingNameColumn(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())
	im := importer.New(s)

	_, err := im.ImportCustomers(ctx, strings.NewReader("email,phone\na@example.com,123\n"))
	gt.Error(t, err)
}

func TestImportCustomersRejectsEmptyInput(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())
	im := importer.New(s)

	_, err := im.ImportCustomers(ctx, strings.NewReader(""))
	gt.Error(t, err)
}
