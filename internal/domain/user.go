package domain

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the login response of the remote API: the bearer token plus the
// employee it belongs to.
type Profile struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (p Profile) DisplayName() string {
	name := p.FirstName
	if p.LastName != "" {
		if name != "" {
			name += " "
		}
		name += p.LastName
	}
	if name == "" {
		return p.Email
	}
	return name
}
