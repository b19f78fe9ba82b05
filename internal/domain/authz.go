package domain

// AccountableUser returns the user id allowed to modify the given resource.
// Each ownable kind is listed explicitly; anything else is not modifiable
// through the API.
func AccountableUser(resource any) (int64, bool) {
	switch v := resource.(type) {
	case *Garage:
		return v.OwnerID, true
	case *ForumThread:
		return v.AuthorID, true
	case *ForumPost:
		return v.AuthorID, true
	default:
		return 0, false
	}
}

// CanModify reports whether userID may write to the resource.
func CanModify(userID int64, resource any) bool {
	owner, ok := AccountableUser(resource)
	return ok && owner == userID
}
