package constants

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Product status constants.
const (
	ProductStatusDraft     = "draft"
	ProductStatusAvailable = "available"
	ProductStatusReserved  = "reserved"
	ProductStatusSold      = "sold"
)

// Admin role constants.
const (
	AdminRoleAdmin = "admin"
	AdminRoleSuper = "super_admin"
)

// QueueDefault is the asynq queue every task lands on.
const QueueDefault = "default"

// Custom request headers.
const (
	HeaderCartSession    = "X-Cart-Session"
	HeaderIdempotencyKey = "X-Idempotency-Key"
	HeaderRequestID      = "X-Request-ID"
)

// Order reference format. The alphabet omits 0/O/1/I/L to keep references
// readable over the phone.
const (
	OrderReferencePrefix   = "RB"
	OrderReferenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	OrderReferenceLength   = 8
)
