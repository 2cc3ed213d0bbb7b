// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAuthTokenExpired  = "auth.token_expired"
	KeyAdminAccessDenied = "admin.access_denied"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductNotFound = "product.not_found"
	KeyProductInvalid  = "product.invalid_id"

	// Inventory
	KeyInventoryUpdated = "inventory.updated"

	// Observers
	KeyObserverAttached = "observer.attached"
	KeyObserverDetached = "observer.detached"
	KeyObserverNotFound = "observer.not_found"
	KeyObserverExists   = "observer.exists"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Rate limiting
	KeyRateLimited = "rate.limited"
)
