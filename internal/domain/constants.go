package domain

const (
	RoleUser      = "USER"
	RoleCompanion = "COMPANION"
	RoleModerator = "MODERATOR"
	RoleAdmin     = "ADMIN"
)

const (
	ServiceGaming    = "GAMING"
	ServiceChat      = "CHAT"
	ServiceCoaching  = "COACHING"
	ServiceStreaming = "STREAMING"
)

const (
	NotifLike        = "LIKE"
	NotifComment     = "COMMENT"
	NotifFollow      = "FOLLOW"
	NotifAchievement = "ACHIEVEMENT"
	NotifEvent       = "EVENT"
)

const (
	SortByRating   = "rating"
	SortByPrice    = "price"
	SortBySessions = "sessions"
	SortByRecent   = "recent"
)

// XP needed per level step.
const XPPerLevel = 1000

// ValidRole reports whether role is one of the assignable roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleCompanion, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// ValidServiceType reports whether t is a known companion service type.
func ValidServiceType(t string) bool {
	switch t {
	case ServiceGaming, ServiceChat, ServiceCoaching, ServiceStreaming:
		return true
	}
	return false
}
