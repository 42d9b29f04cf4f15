// Package messages holds the fixed user-facing response strings.
package messages

const (
	// The 401 message is deliberately identical for a missing cookie, an
	// undecodable token and an unknown user.
	InvalidLogin = "You have to be logged in to access this feature."

	UnexpectedDB = "Unexpected database error."

	InvalidName        = "Name not valid."
	InvalidEmail       = "E-mail not valid."
	InvalidPassword    = "Password not valid."
	InvalidDescription = "Description not valid."
	InvalidTags        = "Tags not valid."
	InvalidSkills      = "Skills not valid."
	InvalidProjectID   = "Project id not valid."
	InvalidBody        = "Request body not valid."

	ProjectNotFound = "Project not found."
	EmailTaken      = "This e-mail is already registered."
	InvalidSignIn   = "This user/password does not correspond to a valid user."

	UserLogged    = "User logged."
	UserLoggedOut = "User logged out"
)

// Error category names returned in 500 bodies. The category never exposes
// driver detail.
const (
	CategoryUniqueViolation     = "UniqueConstraintError"
	CategoryForeignKeyViolation = "ForeignKeyConstraintError"
	CategoryDatabase            = "DatabaseError"
)
