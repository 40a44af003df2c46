package repositories

// ClientScope is everything one client brings to a domain command: its
// session, its way of navigating and its view memory. The web dashboard
// builds one per request, the terminal client one per process.
type ClientScope struct {
	Session   SessionRepository
	Navigator Navigator
	Views     ViewStateRepository
}
