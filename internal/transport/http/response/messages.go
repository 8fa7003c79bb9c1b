package response

// Client-facing messages are fixed strings; they never echo internal error
// detail. The credential message is deliberately uniform so callers cannot
// tell which half of the pair was wrong, and the note message covers both
// missing and foreign-owned notes.
const (
	MsgDuplicateUsername  = "Username already registered"
	MsgInvalidCredentials = "Incorrect username or password"
	MsgCouldNotValidate   = "Could not validate credentials"
	MsgNoteNotFound       = "Note not found or access denied"
	MsgNoteDeleted        = "Note deleted"
	MsgInternal           = "Internal server error"
)
