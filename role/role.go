package role

const (
	User   = "user"
	Doctor = "doctor"
	Admin  = "admin"
)

// All lists every role an account may hold.
var All = []string{User, Doctor, Admin}

func Valid(r string) bool {
	for _, known := range All {
		if r == known {
			return true
		}
	}
	return false
}

// Default is assigned when registration does not name a role.
func Default(r string) string {
	if r == "" {
		return User
	}
	return r
}
