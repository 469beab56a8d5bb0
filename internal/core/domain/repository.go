package domain

// Repository is a repository visible to the authenticated user.
// Fields the API returned as null (or omitted) are left nil.
type Repository struct {
	// Name is the repository name without the owner prefix.
	Name *string `json:"name"`

	// URL is the HTTP URL of the repository.
	URL *string `json:"url"`

	// Owner is the user or organisation that owns the repository.
	Owner *Owner `json:"owner"`
}

// Owner identifies the account a repository belongs to.
type Owner struct {
	// URL is the HTTP URL of the owner.
	URL *string `json:"url"`

	// ResourcePath is the owner's path on the host, e.g. "/octocat".
	ResourcePath *string `json:"resourcePath"`
}

// GetName returns the Name field if it's non-nil, zero value otherwise.
func (r *Repository) GetName() string {
	if r == nil || r.Name == nil {
		return ""
	}
	return *r.Name
}

// GetURL returns the URL field if it's non-nil, zero value otherwise.
func (r *Repository) GetURL() string {
	if r == nil || r.URL == nil {
		return ""
	}
	return *r.URL
}

// GetOwner returns the Owner field.
func (r *Repository) GetOwner() *Owner {
	if r == nil {
		return nil
	}
	return r.Owner
}

// GetURL returns the URL field if it's non-nil, zero value otherwise.
func (o *Owner) GetURL() string {
	if o == nil || o.URL == nil {
		return ""
	}
	return *o.URL
}

// GetResourcePath returns the ResourcePath field if it's non-nil, zero value otherwise.
func (o *Owner) GetResourcePath() string {
	if o == nil || o.ResourcePath == nil {
		return ""
	}
	return *o.ResourcePath
}

// PageInfo describes the position of a page within a paginated connection.
type PageInfo struct {
	// EndCursor is the cursor of the last item on the page.
	EndCursor *string `json:"endCursor"`

	// HasNextPage reports whether more items follow this page.
	HasNextPage bool `json:"hasNextPage"`

	// HasPreviousPage reports whether items precede this page.
	HasPreviousPage bool `json:"hasPreviousPage"`

	// StartCursor is the cursor of the first item on the page.
	StartCursor *string `json:"startCursor"`
}

// GetEndCursor returns the EndCursor field if it's non-nil, zero value otherwise.
func (p PageInfo) GetEndCursor() string {
	if p.EndCursor == nil {
		return ""
	}
	return *p.EndCursor
}

// RepositoryPage is one page of repositories as returned by the API.
type RepositoryPage struct {
	Repositories []Repository
	PageInfo     PageInfo
}

// ListOptions controls which repositories a listing returns.
type ListOptions struct {
	// OwnerFilter keeps only repositories whose owner resource path matches.
	// A missing leading slash is added. Empty means no filtering.
	OwnerFilter string
}

// String returns a pointer to a copy of s.
// Handy for building Repository values in tests and fixtures.
func String(s string) *string {
	return &s
}
