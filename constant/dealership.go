package constant

type ContextKey string

const (
	EmployeeUsernameKey ContextKey = "employee_username"
	CustomerSessionKey  ContextKey = "customer_session"
	CustomerPhoneKey    ContextKey = "customer_phone"
)

// Cookie names, one per identity class.
const (
	EmployeeSessionCookie = "employee_session"
	CustomerSessionCookie = "customer_session"
)

// AdminUsername is the single privileged employee identity.
const AdminUsername = "admin"

const (
	CarStatusAvailable = "available"
	CarStatusSold      = "sold"
)

const (
	SellRequestStatusPending  = "pending"
	SellRequestStatusApproved = "approved"
)

const (
	ServiceStatusScheduled = "scheduled"
	ServiceStatusCompleted = "completed"
)

// CacheKeyCars holds the full car list; mutations of the inventory delete it.
const CacheKeyCars = "dealership:cars"

// Settings keys.
const (
	SettingHeroVideo    = "hero_video"
	SettingLogoURL      = "logo_url"
	SettingFacebookURL  = "facebook_url"
	SettingWhatsappURL  = "whatsapp_url"
	SettingInstagramURL = "instagram_url"
)
