package storefront

// ViewerContext carries the identity facts every widget on a project page
// needs. It is resolved once when the page loads and passed down explicitly,
// so no widget reaches into ambient session state on its own.
type ViewerContext struct {
	// ViewerID is empty for anonymous visitors.
	ViewerID string

	// IsOwner reports whether the viewer created the project being shown.
	IsOwner bool
}

func NewViewerContext(viewerID, projectOwnerID string) ViewerContext {
	return ViewerContext{
		ViewerID: viewerID,
		IsOwner:  viewerID != "" && viewerID == projectOwnerID,
	}
}

func (v ViewerContext) IsAuthenticated() bool {
	return v.ViewerID != ""
}
