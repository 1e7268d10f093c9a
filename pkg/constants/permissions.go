package constants

// Permission names, matching the seeded rows in permissions. Route guards
// and seeders share these so the two can never drift.
const (
	PermOrdersRead         = "orders:read"
	PermOrdersCreate       = "orders:create"
	PermOrdersUpdate       = "orders:update"
	PermOrdersDelete       = "orders:delete"
	PermOrdersChangeStatus = "orders:change_status"

	PermBillingRead   = "billing:read"
	PermBillingManage = "billing:manage"

	PermPaymentsRead   = "payments:read"
	PermPaymentsCreate = "payments:create"

	PermTrialsRead   = "trials:read"
	PermTrialsManage = "trials:manage"

	PermCatalogRead   = "catalog:read"
	PermCatalogManage = "catalog:manage"

	PermCustomersRead   = "customers:read"
	PermCustomersManage = "customers:manage"

	PermInventoryRead   = "inventory:read"
	PermInventoryManage = "inventory:manage"

	PermUsersRead   = "users:read"
	PermUsersManage = "users:manage"

	PermRegistryRead   = "registry:read"
	PermRegistryManage = "registry:manage"

	PermConfigRead   = "config:read"
	PermConfigManage = "config:manage"

	PermReportsRead = "reports:read"
)

// AllPermissions drives the permission seeder.
var AllPermissions = []string{
	PermOrdersRead, PermOrdersCreate, PermOrdersUpdate, PermOrdersDelete, PermOrdersChangeStatus,
	PermBillingRead, PermBillingManage,
	PermPaymentsRead, PermPaymentsCreate,
	PermTrialsRead, PermTrialsManage,
	PermCatalogRead, PermCatalogManage,
	PermCustomersRead, PermCustomersManage,
	PermInventoryRead, PermInventoryManage,
	PermUsersRead, PermUsersManage,
	PermRegistryRead, PermRegistryManage,
	PermConfigRead, PermConfigManage,
	PermReportsRead,
}
