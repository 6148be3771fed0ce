// Package core builds the receptionist's action tools.
package core

import (
	"github.com/m-mizutani/gollem"
	"github.com/nexus-lab/frontdesk/pkg/store"
)

// New builds the tools exposed to the receptionist model: currently
// appointment booking against the domain store.
func New(s *store.Store) []gollem.Tool {
	return []gollem.Tool{
		&bookAppointmentTool{store: s},
	}
}
