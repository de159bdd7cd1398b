package post

// CanModify reports whether the viewer may edit or delete content owned by
// authorID. Covers posts and comments; anonymous viewers never qualify.
func CanModify(viewerID, authorID string) bool {
	return viewerID != "" && viewerID == authorID
}
