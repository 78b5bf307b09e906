package notenet

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Label is the plan name as shown next to the tenant.
func (p Plan) Label() string {
	if p == PlanPro {
		return "Pro Plan"
	}
	return "Free Plan"
}

type Tenant struct {
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	SubscriptionPlan Plan   `json:"subscriptionPlan"`
}

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Tenant Tenant `json:"tenant"`
}

// TokenStore persists the bearer token between runs. Get returns an empty
// string when no token is stored.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}
