package types

// Collection identifies one named, ordered record collection in the domain
// store. Records are kept newest-first; new records are prepended.
type Collection string

const (
	CollectionCustomers        Collection = "customers"
	CollectionCalls            Collection = "calls"
	CollectionEmails           Collection = "emails"
	CollectionAdminProfiles    Collection = "admin_profiles"
	CollectionTenants          Collection = "tenants"
	CollectionTransactions     Collection = "transactions"
	CollectionPlans            Collection = "plans"
	CollectionAppointments     Collection = "appointments"
	CollectionTasks            Collection = "tasks"
	CollectionJobs             Collection = "jobs"
	CollectionWorkers          Collection = "workers"
	CollectionKnowledgeSources Collection = "knowledge_sources"
	CollectionBusinessProfiles Collection = "business_profiles"
)

// AllCollections returns every collection the store manages, in seeding order.
func AllCollections() []Collection {
	return []Collection{
		CollectionCustomers,
		CollectionCalls,
		CollectionEmails,
		CollectionAdminProfiles,
		CollectionTenants,
		CollectionTransactions,
		CollectionPlans,
		CollectionAppointments,
		CollectionTasks,
		CollectionJobs,
		CollectionWorkers,
		CollectionKnowledgeSources,
		CollectionBusinessProfiles,
	}
}

// Key returns the blob-store key under which the collection is persisted.
func (c Collection) Key() string {
	return "frontdesk_db_" + string(c)
}

// String returns the string representation of the collection
func (c Collection) String() string {
	return string(c)
}
