// Package importer bulk-loads customer records from CSV exports of other
// CRM systems.
package importer

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/store"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
)

// Result summarizes one import run.
type Result struct {
	Imported int
	Skipped  int
}

type Importer struct {
	store *store.Store
}

func New(s *store.Store) *Importer {
	return &Importer{store: s}
}

// header aliases accepted in the CSV's first row, lowercased.
var (
	nameHeaders    = []string{"name", "full name"}
	emailHeaders   = []string{"email"}
	phoneHeaders   = []string{"phone", "mobile"}
	companyHeaders = []string{"company", "organization"}
)

// ImportCustomers reads a CSV with a header row and appends one customer per
// data row. Rows without a name are skipped, not fatal. All imported
// customers start as leads and carry the imported tag.
func (im *Importer) ImportCustomers(ctx context.Context, r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, goerr.New("CSV is empty")
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read CSV header")
	}

	nameIdx := findColumn(header, nameHeaders)
	if nameIdx < 0 {
		return nil, goerr.New("CSV has no name column", goerr.V("header", header))
	}
	emailIdx := findColumn(header, emailHeaders)
	phoneIdx := findColumn(header, phoneHeaders)
	companyIdx := findColumn(header, companyHeaders)

	var customers []model.Customer
	result := &Result{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read CSV row")
		}

		name := strings.TrimSpace(field(row, nameIdx))
		if name == "" {
			result.Skipped++
			continue
		}

		customers = append(customers, model.Customer{
			ID:      types.NewRecordID(),
			Name:    name,
			Email:   strings.TrimSpace(field(row, emailIdx)),
			Phone:   strings.TrimSpace(field(row, phoneIdx)),
			Company: strings.TrimSpace(field(row, companyIdx)),
			Status:  types.CustomerStatusLead,
			Tags:    []string{model.ImportedTag},
		})
		result.Imported++
	}

	if len(customers) > 0 {
		if err := store.BulkAppend(ctx, im.store, types.CollectionCustomers, customers); err != nil {
			return nil, err
		}
	}

	logging.From(ctx).Info("imported customers",
		"imported", result.Imported,
		"skipped", result.Skipped,
	)
	return result, nil
}

func findColumn(header []string, names []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range names {
			if h == name {
				return i
			}
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
