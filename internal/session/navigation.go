package session

// Root identifies which of the mutually exclusive screen trees a client
// should mount for a given session state.
type Root string

const (
	RootLoading  Root = "loading"
	RootAuth     Root = "auth"
	RootCustomer Root = "customer"
	RootAdmin    Root = "admin"
)

// Resolve maps a session state to exactly one root. It is a pure, total
// function: any non-admin role of a logged-in session lands on the customer
// tree.
func Resolve(s State) Root {
	if s.Phase != PhaseReady {
		return RootLoading
	}
	if !s.LoggedIn {
		return RootAuth
	}
	if s.Role == RoleAdmin {
		return RootAdmin
	}
	return RootCustomer
}
